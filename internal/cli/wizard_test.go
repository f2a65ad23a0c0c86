package cli

import (
	"testing"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfileAnswers_RoundTrip(t *testing.T) {
	p := domain.UserProfile{
		TaskType:     "reading",
		Challenges:   []string{"motivation"},
		SensoryNeeds: []string{"visual"},
		Mood:         domain.MoodFrustrated,
		Preferences:  domain.Preferences{NeedsAccountability: true, GetsOverwhelmed: true},
	}

	a := answersFromProfile(p)
	assert.Equal(t, []string{prefAccountability, prefOverwhelmed}, a.Preferences)
	assert.Equal(t, p, a.profile())
}

func TestProfileAnswers_Defaults(t *testing.T) {
	a := answersFromProfile(domain.UserProfile{})
	assert.Equal(t, "general", a.TaskType)
	assert.Equal(t, string(domain.MoodNeutral), a.Mood)
	assert.Empty(t, a.Preferences)

	a.Preferences = []string{prefSensory, "unknown"}
	got := a.profile()
	assert.True(t, got.Preferences.SensorySensitive)
	assert.False(t, got.Preferences.NeedsAccountability)
}

func TestLabelledOptions(t *testing.T) {
	opts := labelledOptions([]string{"sensory_overload", ""})
	assert.Equal(t, "Sensory overload", opts[0].Key)
	assert.Equal(t, "sensory_overload", opts[0].Value)
	assert.Equal(t, "", opts[1].Key)
}

func TestNewProfileForm_Builds(t *testing.T) {
	assert.NotNil(t, newProfileForm(answersFromProfile(domain.UserProfile{})))
}
