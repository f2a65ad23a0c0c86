package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskBreakdown_CloneDoesNotAlias(t *testing.T) {
	orig := TaskBreakdown{
		Steps:           []Step{{Description: "a", EstimatedTime: "10", Tip: "t"}},
		FocusTechniques: []string{"Pomodoro"},
		Accommodations:  []string{"Headphones"},
		SensoryTips:     []string{"Lighting"},
	}

	c := orig.Clone()
	c.Steps[0].EstimatedTime = "5"
	c.FocusTechniques[0] = "x"
	c.Accommodations = append(c.Accommodations, "y")
	c.SensoryTips[0] = "z"

	assert.Equal(t, "10", orig.Steps[0].EstimatedTime)
	assert.Equal(t, "Pomodoro", orig.FocusTechniques[0])
	assert.Len(t, orig.Accommodations, 1)
	assert.Equal(t, "Lighting", orig.SensoryTips[0])
}

func TestParseUrgency(t *testing.T) {
	assert.Equal(t, UrgencyHigh, ParseUrgency("high"))
	assert.Equal(t, UrgencyLow, ParseUrgency("low"))
	assert.Equal(t, UrgencyMedium, ParseUrgency("medium"))
	assert.Equal(t, UrgencyMedium, ParseUrgency(""))
	assert.Equal(t, UrgencyMedium, ParseUrgency("whenever"))
}
