package breakdown

import (
	"testing"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_CleanMyRoom(t *testing.T) {
	b := Match("clean my room")
	require.Len(t, b.Steps, 8)
	assert.Equal(t, "Start by making your bed", b.Steps[0].Description)
	assert.Equal(t, domain.MatchExact, b.Match)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		task      string
		wantFirst string
		wantKind  domain.MatchKind
	}{
		{"exact phrase inside longer task", "Please PREPARE QUARTERLY REPORT by Friday", "Set up your document and add the title", domain.MatchExact},
		{"first catalog phrase wins", "study for exam then write a blog post", "Gather all your study materials (books, notes, laptop)", domain.MatchExact},
		{"catalog order not position in task", "plan a presentation to prepare quarterly report", "Set up your document and add the title", domain.MatchExact},
		{"keyword clean", "tidy the garage", "Start by making your bed", domain.MatchKeyword},
		{"keyword report", "finish the sales summary", "Set up your document and add the title", domain.MatchKeyword},
		{"keyword presentation", "practice my speech", "Open a new document and write your topic at the top", domain.MatchKeyword},
		{"keyword rule order", "write the quiz answers", "Gather all your study materials (books, notes, laptop)", domain.MatchKeyword},
		{"keyword with punctuation", "essay: draft #2", "Open your document and add a working title", domain.MatchKeyword},
		{"partial word is not a keyword", "reporting tool setup", "Start with: reporting tool setup", domain.MatchGeneric},
		{"generic keeps original case", "Water the Plants", "Start with: Water the Plants", domain.MatchGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Match(tt.task)
			require.NotEmpty(t, b.Steps)
			assert.Equal(t, tt.wantFirst, b.Steps[0].Description)
			assert.Equal(t, tt.wantKind, b.Match)
		})
	}
}

func TestMatch_GenericShape(t *testing.T) {
	b := Match("water the plants")
	assert.Len(t, b.Steps, 4)
	assert.Equal(t, "Remember: progress, not perfection. You're doing great!", b.Encouragement)
	assert.Equal(t, []string{"15", "5", "15", "10"}, estimates(b))
}

func TestMatch_ReturnsIndependentCopies(t *testing.T) {
	first := Match("clean my room")
	first.Steps[0].Description = "changed"
	first.Accommodations[0] = "changed"

	second := Match("clean my room")
	assert.Equal(t, "Start by making your bed", second.Steps[0].Description)
	assert.Equal(t, "Play music you enjoy", second.Accommodations[0])
}

func TestKeys_Order(t *testing.T) {
	assert.Equal(t, []string{
		"prepare quarterly report",
		"clean my room",
		"study for exam",
		"write a blog post",
		"plan a presentation",
	}, Keys())
}

func TestKeywordRules_PointAtTemplates(t *testing.T) {
	for _, rule := range keywordRules {
		_, ok := Template(rule.template)
		assert.True(t, ok, rule.template)
	}
}

func estimates(b domain.TaskBreakdown) []string {
	out := make([]string, len(b.Steps))
	for i, s := range b.Steps {
		out[i] = s.EstimatedTime
	}
	return out
}
