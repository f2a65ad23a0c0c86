package domain

import (
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
)

// FocusSession is one timed work period using a technique. Durations are in
// minutes. A zero StartTime means the session has not been started.
type FocusSession struct {
	ID             string
	Task           string
	Technique      TechniqueID
	Duration       int
	BreakDuration  int
	StartTime      *time.Time
	EndTime        *time.Time
	Completed      bool
	Accommodations []string
	CreatedAt      time.Time

	clock clock.Clock
}

// NewFocusSession creates an unstarted session that reads time from c.
func NewFocusSession(technique TechniqueID, duration, breakDuration int, c clock.Clock) *FocusSession {
	return &FocusSession{
		Technique:     technique,
		Duration:      duration,
		BreakDuration: breakDuration,
		clock:         clock.OrSystem(c),
	}
}

// SetClock replaces the time source, e.g. after loading from storage.
func (s *FocusSession) SetClock(c clock.Clock) {
	s.clock = clock.OrSystem(c)
}

func (s *FocusSession) now() time.Time {
	if s.clock == nil {
		s.clock = clock.System()
	}
	return s.clock.Now()
}

// Start records the start time and computes the end time from Duration.
func (s *FocusSession) Start() {
	start := s.now()
	end := start.Add(time.Duration(s.Duration) * time.Minute)
	s.StartTime = &start
	s.EndTime = &end
	s.Completed = false
}

// IsActive reports whether the session has started and its end time has not
// passed yet. Expiry is recomputed on every call.
func (s *FocusSession) IsActive() bool {
	if s.StartTime == nil || s.EndTime == nil {
		return false
	}
	return s.now().Before(*s.EndTime)
}

// TimeRemaining returns the time left until EndTime, never negative.
func (s *FocusSession) TimeRemaining() time.Duration {
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	remaining := s.EndTime.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Elapsed returns the time since Start, or zero for an unstarted session.
func (s *FocusSession) Elapsed() time.Duration {
	if s.StartTime == nil {
		return 0
	}
	elapsed := s.now().Sub(*s.StartTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Complete marks the session done. Start and end timestamps are kept.
func (s *FocusSession) Complete() {
	s.Completed = true
}

// State derives the lifecycle state from the stored fields and current time.
func (s *FocusSession) State() SessionState {
	switch {
	case s.Completed:
		return SessionCompleted
	case s.StartTime == nil:
		return SessionUninitialized
	case s.IsActive():
		return SessionActive
	default:
		return SessionExpired
	}
}
