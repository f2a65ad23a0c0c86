package focus

import (
	"testing"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIndex always picks the same pool index.
type fixedIndex int

func (f fixedIndex) IntN(n int) int { return int(f) % n }

func TestCreateFocusSession_UsesCatalogDefaults(t *testing.T) {
	m := NewManager()
	s := m.CreateFocusSession(domain.TechniqueTimeBlocking, 0)
	assert.Equal(t, 45, s.Duration)
	assert.Equal(t, 15, s.BreakDuration)
	assert.Equal(t, domain.SessionUninitialized, s.State())
	assert.Len(t, s.Accommodations, 4)
}

func TestCreateFocusSession_CustomDuration(t *testing.T) {
	m := NewManager()
	s := m.CreateFocusSession(domain.TechniqueChunking, 40)
	assert.Equal(t, 40, s.Duration)
	assert.Equal(t, 5, s.BreakDuration)
}

func TestCreateFocusSession_UnknownTechniqueGetsFallbacks(t *testing.T) {
	m := NewManager()
	s := m.CreateFocusSession(domain.TechniqueVisualTimers, 0)
	assert.Equal(t, 25, s.Duration)
	assert.Equal(t, 5, s.BreakDuration)
	assert.Empty(t, s.Accommodations)
}

func TestCreateFocusSession_UsesInjectedClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)
	m := NewManager(WithClock(c))

	s := m.CreateFocusSession(domain.TechniquePomodoro, 0)
	s.Start()
	require.NotNil(t, s.EndTime)
	assert.Equal(t, start.Add(25*time.Minute), *s.EndTime)
}

func TestGetEncouragement_Deterministic(t *testing.T) {
	m := NewManager(WithRandom(fixedIndex(1)))
	assert.Equal(t,
		"It's okay to take breaks when you need them. Your well-being comes first.",
		m.GetEncouragement(domain.MoodFrustrated))
	assert.Equal(t,
		"Every small step forward is progress. Keep going!",
		m.GetEncouragement("confused"))
}

func TestGetEncouragement_SeededSourceStable(t *testing.T) {
	a := NewManager(WithRandom(NewSeededRandom(7)))
	b := NewManager(WithRandom(NewSeededRandom(7)))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.GetEncouragement(domain.MoodMotivated), b.GetEncouragement(domain.MoodMotivated))
	}
	assert.Contains(t, Encouragements(domain.MoodMotivated), a.GetEncouragement(domain.MoodMotivated))
}

func TestCreatePersonalizedPlan(t *testing.T) {
	m := NewManager(WithRandom(fixedIndex(0)))
	profile := domain.UserProfile{
		TaskType:     "writing",
		Challenges:   []string{"focus_difficulties", "time_management"},
		SensoryNeeds: []string{"visual", "auditory"},
		Preferences:  domain.Preferences{NeedsAccountability: true},
		Mood:         domain.MoodOverwhelmed,
	}

	plan := m.CreatePersonalizedPlan("Write a report", profile)

	assert.Equal(t, "Write a report", plan.Task)
	assert.Equal(t, domain.TechniqueBodyDoubling, plan.Technique)
	assert.Equal(t, 30, plan.SessionDuration)
	assert.Equal(t, 10, plan.BreakDuration)
	assert.Equal(t, "Body Doubling", plan.TechniqueInfo.Name)
	assert.Len(t, plan.Accommodations, 10)
	assert.Len(t, plan.SensoryTips, 10)
	assert.Equal(t, Encouragements(domain.MoodOverwhelmed)[0], plan.Encouragement)
}

func TestCreatePersonalizedPlan_EmptyProfileDefaults(t *testing.T) {
	m := NewManager(WithRandom(fixedIndex(2)))
	plan := m.CreatePersonalizedPlan("anything", domain.UserProfile{})

	assert.Equal(t, DefaultTechnique, plan.Technique)
	assert.Equal(t, 25, plan.SessionDuration)
	assert.Empty(t, plan.Accommodations)
	assert.Empty(t, plan.SensoryTips)
	assert.Equal(t, Encouragements(domain.MoodNeutral)[2], plan.Encouragement)
}
