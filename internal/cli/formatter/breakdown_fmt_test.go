package formatter

import (
	"testing"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleBreakdown() domain.TaskBreakdown {
	return domain.TaskBreakdown{
		Steps: []domain.Step{
			{Description: "Gather data", EstimatedTime: "15", Tip: "Use last quarter's sheet"},
			{Description: "Write summary", EstimatedTime: "30", Tip: "Bullets first"},
		},
		FocusTechniques: []string{"Pomodoro Technique"},
		Accommodations:  []string{"Use a checklist"},
		SensoryTips:     []string{"Noise-cancelling headphones"},
		Encouragement:   "You've got this!",
		Match:           domain.MatchExact,
	}
}

func TestFormatBreakdown_Plain(t *testing.T) {
	out := stripANSI(FormatBreakdown("prepare quarterly report", sampleBreakdown()))

	assert.Contains(t, out, "prepare quarterly report  exact plan")
	assert.Contains(t, out, "Gather data")
	assert.Contains(t, out, "15m")
	assert.Contains(t, out, "Total: 45m")
	assert.Contains(t, out, "FOCUS TECHNIQUES")
	assert.Contains(t, out, "  • Use a checklist")
	assert.Contains(t, out, "You've got this!")
	assert.NotContains(t, out, "DEADLINES")
	assert.NotContains(t, out, "Context:")
}

func TestFormatBreakdown_Personalized(t *testing.T) {
	b := sampleBreakdown()
	b.UserContext = "due Friday"
	b.DeadlineContext = "Found 1 related deadline(s): Quarterly Report Due"
	b.UrgencyNote = "High urgency detected"
	b.DeadlineTips = []string{"Start with the essentials"}

	out := stripANSI(FormatBreakdown("prepare quarterly report", b))
	assert.Contains(t, out, "Context: due Friday")
	assert.Contains(t, out, "DEADLINES")
	assert.Contains(t, out, "Found 1 related deadline(s)")
	assert.Contains(t, out, "High urgency detected")
	assert.Contains(t, out, "  • Start with the essentials")
}

func TestTotalMinutes(t *testing.T) {
	total, ok := TotalMinutes(sampleBreakdown().Steps)
	assert.True(t, ok)
	assert.Equal(t, 45, total)

	_, ok = TotalMinutes([]domain.Step{{EstimatedTime: "soon"}})
	assert.False(t, ok)
}
