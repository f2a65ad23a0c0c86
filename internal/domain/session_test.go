package domain

import (
	"testing"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, minutes int) (*FocusSession, *clock.Manual, time.Time) {
	t.Helper()
	start := time.Date(2025, 5, 12, 14, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)
	return NewFocusSession(TechniquePomodoro, minutes, 5, c), c, start
}

func TestFocusSession_IsActiveLifecycle(t *testing.T) {
	s, c, start := newTestSession(t, 25)

	assert.False(t, s.IsActive(), "not active before start")
	assert.Equal(t, SessionUninitialized, s.State())

	s.Start()
	require.NotNil(t, s.StartTime)
	require.NotNil(t, s.EndTime)
	assert.Equal(t, start, *s.StartTime)
	assert.Equal(t, start.Add(25*time.Minute), *s.EndTime)
	assert.True(t, s.IsActive(), "active right after start")
	assert.Equal(t, SessionActive, s.State())

	c.Advance(25*time.Minute + time.Second)
	assert.False(t, s.IsActive(), "inactive once end time passes")
	assert.Equal(t, SessionExpired, s.State())
}

func TestFocusSession_EndTimeIsExclusive(t *testing.T) {
	s, c, _ := newTestSession(t, 10)
	s.Start()
	c.Advance(10 * time.Minute)
	assert.False(t, s.IsActive())
	assert.Zero(t, s.TimeRemaining())
}

func TestFocusSession_TimeRemainingNeverNegative(t *testing.T) {
	s, c, _ := newTestSession(t, 15)
	assert.Zero(t, s.TimeRemaining(), "unstarted session has nothing remaining")

	s.Start()
	c.Advance(5 * time.Minute)
	assert.Equal(t, 10*time.Minute, s.TimeRemaining())
	assert.Equal(t, 5*time.Minute, s.Elapsed())

	c.Advance(time.Hour)
	assert.Zero(t, s.TimeRemaining())
}

func TestFocusSession_CompleteKeepsTimestamps(t *testing.T) {
	s, c, start := newTestSession(t, 25)
	s.Start()
	c.Advance(3 * time.Minute)

	s.Complete()
	assert.True(t, s.Completed)
	assert.Equal(t, SessionCompleted, s.State())
	require.NotNil(t, s.StartTime)
	assert.Equal(t, start, *s.StartTime)
	assert.True(t, s.IsActive(), "completion does not change the timing window")
}

func TestFocusSession_CompleteAfterExpiry(t *testing.T) {
	s, c, _ := newTestSession(t, 5)
	s.Start()
	c.Advance(time.Hour)
	require.Equal(t, SessionExpired, s.State())

	s.Complete()
	assert.Equal(t, SessionCompleted, s.State())
}

func TestFocusSession_NilClockFallsBackToSystem(t *testing.T) {
	s := &FocusSession{Technique: TechniqueChunking, Duration: 15}
	s.Start()
	assert.True(t, s.IsActive())
}
