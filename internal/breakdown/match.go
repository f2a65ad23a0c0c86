package breakdown

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// keywordRule maps a set of words to a catalog template.
type keywordRule struct {
	template string
	words    []string
}

// keywordRules are evaluated top to bottom after exact phrase matching; the
// first rule sharing a word with the task wins.
var keywordRules = []keywordRule{
	{template: "prepare quarterly report", words: []string{"report", "quarterly", "metrics", "summary"}},
	{template: "clean my room", words: []string{"clean", "tidy", "declutter", "organize", "laundry"}},
	{template: "study for exam", words: []string{"study", "exam", "test", "quiz", "revise", "homework"}},
	{template: "write a blog post", words: []string{"write", "blog", "article", "essay", "post", "draft"}},
	{template: "plan a presentation", words: []string{"presentation", "slides", "talk", "pitch", "speech"}},
}

// Match resolves task to a plan: first a catalog phrase contained in the
// task, then the keyword rules, then the generic plan. The result is always
// a fresh copy.
func Match(task string) domain.TaskBreakdown {
	lower := strings.ToLower(task)

	for _, t := range templates {
		if strings.Contains(lower, t.key) {
			b := t.breakdown.Clone()
			b.Match = domain.MatchExact
			return b
		}
	}

	if key, ok := matchKeywords(lower); ok {
		b, _ := Template(key)
		b.Match = domain.MatchKeyword
		return b
	}

	b := generic(task)
	b.Match = domain.MatchGeneric
	return b
}

func matchKeywords(lower string) (string, bool) {
	words := make(map[string]struct{})
	for _, w := range tokenize(lower) {
		words[w] = struct{}{}
	}
	for _, rule := range keywordRules {
		for _, kw := range rule.words {
			if _, ok := words[kw]; ok {
				return rule.template, true
			}
		}
	}
	return "", false
}

// tokenize splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
