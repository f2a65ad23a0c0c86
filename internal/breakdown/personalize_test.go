package breakdown

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deadline(title string, p domain.Priority) domain.DeadlineRecord {
	return domain.DeadlineRecord{Title: title, Date: "2025-01-15", Priority: p, Source: "test"}
}

func TestAnalyzeDeadlinesForTask(t *testing.T) {
	tests := []struct {
		name         string
		task         string
		deadlines    []domain.DeadlineRecord
		def          domain.Urgency
		wantRelevant int
		wantUrgency  domain.Urgency
	}{
		{"no deadlines keeps default", "prepare quarterly report", nil, "", 0, domain.UrgencyMedium},
		{"high priority relevant", "prepare quarterly report", []domain.DeadlineRecord{deadline("Quarterly Report Due", domain.PriorityHigh)}, domain.UrgencyMedium, 1, domain.UrgencyHigh},
		{"irrelevant high priority ignored", "prepare quarterly report", []domain.DeadlineRecord{deadline("Dentist appointment", domain.PriorityHigh)}, domain.UrgencyLow, 0, domain.UrgencyLow},
		{"task without keyword", "clean my room", []domain.DeadlineRecord{deadline("Quarterly Report Due", domain.PriorityHigh)}, domain.UrgencyMedium, 0, domain.UrgencyMedium},
		{"two medium stay default", "tax and audit meeting", []domain.DeadlineRecord{
			deadline("Tax filing", domain.PriorityMedium),
			deadline("Audit prep", domain.PriorityLow),
		}, domain.UrgencyMedium, 2, domain.UrgencyMedium},
		{"more than two relevant is high", "tax and audit meeting", []domain.DeadlineRecord{
			deadline("Tax filing", domain.PriorityMedium),
			deadline("Audit prep", domain.PriorityLow),
			deadline("Team meeting notes", domain.PriorityLow),
		}, domain.UrgencyLow, 3, domain.UrgencyHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AnalyzeDeadlinesForTask(tt.task, tt.deadlines, tt.def)
			assert.Len(t, a.Relevant, tt.wantRelevant)
			assert.Equal(t, tt.wantUrgency, a.Urgency)
		})
	}
}

func TestIsRelevant_CaseInsensitive(t *testing.T) {
	assert.True(t, IsRelevant("Prepare QUARTERLY numbers", "quarterly review"))
	assert.False(t, IsRelevant("prepare quarterly numbers", "report due"))
}

func TestPersonalize_HighUrgencyTrimsWithFloor(t *testing.T) {
	task := "prepare quarterly report"
	orig := Match(task)
	a := AnalyzeDeadlinesForTask(task, []domain.DeadlineRecord{deadline("Q3 report due", domain.PriorityHigh)}, domain.UrgencyMedium)
	require.Equal(t, domain.UrgencyHigh, a.Urgency)

	got, err := PersonalizeTaskBreakdown(orig, a)
	require.NoError(t, err)
	require.Len(t, got.Steps, len(orig.Steps))
	for i := range orig.Steps {
		before, _ := strconv.Atoi(orig.Steps[i].EstimatedTime)
		want := max(5, before-5)
		assert.Equal(t, strconv.Itoa(want), got.Steps[i].EstimatedTime, "step %d", i+1)
	}
	assert.Equal(t, []string{"5", "10", "5", "15", "10", "10", "15", "5", "10", "5"}, estimates(got))
	assert.NotEmpty(t, got.UrgencyNote)
	assert.Equal(t, highUrgencyTips, got.DeadlineTips)
	assert.Contains(t, got.DeadlineContext, "Q3 report due")

	// Input is untouched.
	assert.Equal(t, "15", orig.Steps[1].EstimatedTime)
}

func TestPersonalize_LowUrgencyAddsWithoutCeiling(t *testing.T) {
	b := Match("clean my room")
	got, err := PersonalizeTaskBreakdown(b, DeadlineAnalysis{Urgency: domain.UrgencyLow})
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "15", "20", "15", "25", "10", "20", "15"}, estimates(got))
	assert.Equal(t, lowUrgencyTips, got.DeadlineTips)
	assert.Empty(t, got.DeadlineContext)
}

func TestPersonalize_MediumLeavesEstimates(t *testing.T) {
	b := Match("study for exam")
	a := DeadlineAnalysis{Urgency: domain.UrgencyMedium, Relevant: []domain.DeadlineRecord{deadline("Exam meeting", domain.PriorityLow)}}
	got, err := PersonalizeTaskBreakdown(b, a)
	require.NoError(t, err)
	assert.Equal(t, estimates(b), estimates(got))
	assert.Empty(t, got.UrgencyNote)
	assert.Empty(t, got.DeadlineTips)
	assert.Contains(t, got.DeadlineContext, "Found 1 related deadline(s)")
}

func TestPersonalize_MalformedEstimate(t *testing.T) {
	b := domain.TaskBreakdown{Steps: []domain.Step{{Description: "x", EstimatedTime: "ten"}}}
	_, err := PersonalizeTaskBreakdown(b, DeadlineAnalysis{Urgency: domain.UrgencyHigh})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEstimate)

	// Medium urgency never parses estimates.
	_, err = PersonalizeTaskBreakdown(b, DeadlineAnalysis{Urgency: domain.UrgencyMedium})
	assert.NoError(t, err)
}

type stubSource struct {
	records []domain.DeadlineRecord
	err     error
	calls   int
}

func (s *stubSource) Deadlines(context.Context, string) ([]domain.DeadlineRecord, error) {
	s.calls++
	return s.records, s.err
}

func TestDemoTaskBreakdown_WithoutAddressSkipsSource(t *testing.T) {
	src := &stubSource{}
	p := NewPlanner(src, "")
	b, err := p.DemoTaskBreakdown(context.Background(), "prepare quarterly report", "  I get distracted  ", "")
	require.NoError(t, err)
	assert.Zero(t, src.calls)
	assert.Equal(t, "I get distracted", b.UserContext)
	assert.Equal(t, "5", b.Steps[0].EstimatedTime)
}

func TestDemoTaskBreakdown_Personalizes(t *testing.T) {
	src := &stubSource{records: []domain.DeadlineRecord{deadline("Quarterly Report Due", domain.PriorityHigh)}}
	p := NewPlanner(src, domain.UrgencyMedium)
	b, err := p.DemoTaskBreakdown(context.Background(), "prepare quarterly report", "", "me@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "10", b.Steps[1].EstimatedTime)
	assert.NotEmpty(t, b.UrgencyNote)
}

func TestDemoTaskBreakdown_SourceErrorStillReturnsPlan(t *testing.T) {
	boom := errors.New("inbox offline")
	p := NewPlanner(&stubSource{err: boom}, domain.UrgencyMedium)
	b, err := p.DemoTaskBreakdown(context.Background(), "clean my room", "", "me@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, b.Steps, 8)
}
