package focus

import (
	"math/rand/v2"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewSeededRandom returns a deterministic RandomSource for tests and
// reproducible runs.
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}

var encouragements = map[domain.Mood][]string{
	domain.MoodOverwhelmed: {
		"It's okay to feel overwhelmed. Take a deep breath and remember: you don't have to do everything at once.",
		"You're not alone in feeling this way. Many successful people face these challenges too.",
		"Start with just one small step. That's already progress worth celebrating.",
	},
	domain.MoodFrustrated: {
		"Frustration is a normal part of learning and growing. You're doing better than you think.",
		"It's okay to take breaks when you need them. Your well-being comes first.",
		"Every expert was once a beginner. You're learning and that's amazing.",
	},
	domain.MoodMotivated: {
		"You've got this! Your determination is inspiring.",
		"Look at you taking charge of your productivity. That's fantastic!",
		"Your commitment to finding what works for you is admirable.",
	},
	domain.MoodNeutral: {
		"You're taking steps to improve your productivity. That's worth celebrating.",
		"Every small step forward is progress. Keep going!",
		"You're building skills and strategies that will serve you well.",
	},
}

// Encouragements returns the message pool for mood, falling back to the
// neutral pool.
func Encouragements(mood domain.Mood) []string {
	pool, ok := encouragements[mood]
	if !ok {
		pool = encouragements[domain.MoodNeutral]
	}
	return append([]string(nil), pool...)
}

func pickEncouragement(r RandomSource, mood domain.Mood) string {
	pool, ok := encouragements[mood]
	if !ok {
		pool = encouragements[domain.MoodNeutral]
	}
	return pool[r.IntN(len(pool))]
}
