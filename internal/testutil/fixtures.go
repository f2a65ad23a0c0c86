package testutil

import (
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/google/uuid"
)

// Epoch is a second-aligned instant used as the default fixture time, so
// values survive the RFC3339 round trip through SQLite unchanged.
var Epoch = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// Session options
type SessionOption func(*domain.FocusSession)

func WithTask(task string) SessionOption {
	return func(s *domain.FocusSession) {
		s.Task = task
	}
}

func WithDurations(work, brk int) SessionOption {
	return func(s *domain.FocusSession) {
		s.Duration = work
		s.BreakDuration = brk
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.CreatedAt = t
	}
}

func WithAccommodations(a ...string) SessionOption {
	return func(s *domain.FocusSession) {
		s.Accommodations = a
	}
}

// WithStarted starts the session at the clock's current time.
func WithStarted() SessionOption {
	return func(s *domain.FocusSession) {
		s.Start()
	}
}

func NewTestSession(technique domain.TechniqueID, c clock.Clock, opts ...SessionOption) *domain.FocusSession {
	s := domain.NewFocusSession(technique, 25, 5, c)
	s.ID = uuid.New().String()
	s.CreatedAt = clock.OrSystem(c).Now()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Breakdown options
type BreakdownOption func(*domain.TaskBreakdown)

func WithSteps(estimates ...string) BreakdownOption {
	return func(b *domain.TaskBreakdown) {
		b.Steps = b.Steps[:0]
		for i, e := range estimates {
			b.Steps = append(b.Steps, domain.Step{
				Description:   "step " + string(rune('A'+i)),
				EstimatedTime: e,
			})
		}
	}
}

func NewTestBreakdown(opts ...BreakdownOption) domain.TaskBreakdown {
	b := domain.TaskBreakdown{
		Steps: []domain.Step{
			{Description: "Outline", EstimatedTime: "10", Tip: "Keep it short"},
			{Description: "Draft", EstimatedTime: "20", Tip: "Do not edit yet"},
		},
		FocusTechniques: []string{"Pomodoro Technique"},
		Accommodations:  []string{"Use a checklist"},
		SensoryTips:     []string{"Use headphones"},
		Encouragement:   "One step at a time.",
		Match:           domain.MatchGeneric,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
