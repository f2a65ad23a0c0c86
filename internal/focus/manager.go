package focus

import (
	"strings"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/domain"
)

// Manager bundles the catalog lookups with the two impure dependencies the
// focus features need: a clock for sessions and a random source for
// encouragement.
type Manager struct {
	clock clock.Clock
	rand  RandomSource
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used by created sessions.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithRandom sets the source used to pick encouragement messages.
func WithRandom(r RandomSource) Option {
	return func(m *Manager) { m.rand = r }
}

// NewManager creates a Manager using the system clock and global random
// source unless overridden.
func NewManager(opts ...Option) *Manager {
	m := &Manager{clock: clock.System(), rand: globalRand{}}
	for _, opt := range opts {
		opt(m)
	}
	if m.clock == nil {
		m.clock = clock.System()
	}
	if m.rand == nil {
		m.rand = globalRand{}
	}
	return m
}

// Clock exposes the manager's time source.
func (m *Manager) Clock() clock.Clock { return m.clock }

func (m *Manager) GetTechniqueInfo(id domain.TechniqueID) (domain.TechniqueEntry, bool) {
	return GetTechniqueInfo(id)
}

func (m *Manager) SuggestTechnique(taskType string, prefs domain.Preferences) domain.TechniqueID {
	return SuggestTechnique(taskType, prefs)
}

func (m *Manager) GetAccommodations(challenge string) []string {
	return GetAccommodations(challenge)
}

func (m *Manager) GetSensoryTips(needs []string) []string {
	return GetSensoryTips(needs)
}

// CreateFocusSession builds an unstarted session for a technique. A positive
// customDuration replaces the technique's default length. Techniques without
// a catalog entry get 25/5 minutes and no accommodations.
func (m *Manager) CreateFocusSession(id domain.TechniqueID, customDuration int) *domain.FocusSession {
	info, _ := GetTechniqueInfo(id)

	duration := customDuration
	if duration <= 0 {
		duration = info.Duration
	}
	if duration <= 0 {
		duration = defaultDuration
	}
	breakDuration := info.BreakDuration
	if breakDuration <= 0 {
		breakDuration = defaultBreakDuration
	}

	s := domain.NewFocusSession(id, duration, breakDuration, m.clock)
	s.Accommodations = info.Accommodations
	return s
}

// GetEncouragement picks one message from the pool for mood.
func (m *Manager) GetEncouragement(mood domain.Mood) string {
	return pickEncouragement(m.rand, mood)
}

// CreatePersonalizedPlan combines technique, session length, accommodations,
// sensory tips and encouragement for one task and profile.
func (m *Manager) CreatePersonalizedPlan(task string, profile domain.UserProfile) domain.PlanResult {
	taskType := profile.TaskType
	if strings.TrimSpace(taskType) == "" {
		taskType = "general"
	}
	technique := m.SuggestTechnique(taskType, profile.Preferences)
	session := m.CreateFocusSession(technique, 0)

	var accommodations []string
	for _, challenge := range profile.Challenges {
		accommodations = append(accommodations, GetAccommodations(challenge)...)
	}

	mood := profile.Mood
	if mood == "" {
		mood = domain.MoodNeutral
	}
	info, _ := GetTechniqueInfo(technique)

	return domain.PlanResult{
		Task:            task,
		Technique:       technique,
		SessionDuration: session.Duration,
		BreakDuration:   session.BreakDuration,
		Accommodations:  dedupe(accommodations),
		SensoryTips:     GetSensoryTips(profile.SensoryNeeds),
		TechniqueInfo:   info,
		Encouragement:   m.GetEncouragement(mood),
	}
}
