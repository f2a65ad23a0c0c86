// Package clock abstracts wall-clock reads so time-dependent logic can be
// driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns a Clock backed by time.Now in UTC.
func System() Clock { return systemClock{} }

// Manual is a Clock whose time only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock positioned at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// OrSystem returns c, or the system clock when c is nil.
func OrSystem(c Clock) Clock {
	if c == nil {
		return System()
	}
	return c
}
