package focus

import "strings"

// DefaultChallenge is used for challenges that have no table of their own.
const DefaultChallenge = "focus_difficulties"

var challengeAccommodations = map[string][]string{
	"focus_difficulties": {
		"Use a visual timer with color changes",
		"Try the Pomodoro technique (25 min work, 5 min break)",
		"Use noise-cancelling headphones",
		"Create a distraction-free workspace",
		"Use focus apps like Forest or Freedom",
	},
	"time_management": {
		"Use visual timers and calendars",
		"Set multiple alarms and reminders",
		"Use time estimation games",
		"Try body doubling for accountability",
		"Use calendar blocking techniques",
	},
	"sensory_overload": {
		"Adjust lighting (natural light preferred)",
		"Use fidget tools or stress balls",
		"Try different seating options",
		"Use white noise or calming music",
		"Take regular movement breaks",
	},
	"executive_function": {
		"Break tasks into smaller steps",
		"Use visual organization tools",
		"Create step-by-step checklists",
		"Use task management apps",
		"Ask for help when needed",
	},
	"motivation": {
		"Set small, achievable goals",
		"Use rewards and celebrations",
		"Find an accountability partner",
		"Track progress visually",
		"Remember that progress, not perfection, matters",
	},
}

var sensoryTips = map[string][]string{
	"visual": {
		"Use natural lighting when possible",
		"Adjust screen brightness and contrast",
		"Use color-coding for organization",
		"Create visual progress indicators",
		"Use large, clear fonts",
	},
	"auditory": {
		"Use noise-cancelling headphones",
		"Try white noise or nature sounds",
		"Use instrumental music for focus",
		"Create a quiet workspace",
		"Use earplugs if needed",
	},
	"tactile": {
		"Use fidget tools and stress balls",
		"Try different seating options",
		"Use weighted blankets or compression",
		"Have comfortable clothing",
		"Use textured materials for grounding",
	},
	"movement": {
		"Take regular movement breaks",
		"Use a standing desk or exercise ball",
		"Practice stretching and yoga",
		"Take short walks",
		"Use fidget tools that allow movement",
	},
	"proprioceptive": {
		"Use weighted blankets or compression",
		"Try deep pressure activities",
		"Use resistance bands or exercise",
		"Practice deep breathing",
		"Use grounding techniques",
	},
}

// GetAccommodations returns the accommodations for a challenge. Unknown
// challenges get the focus_difficulties list.
func GetAccommodations(challenge string) []string {
	list, ok := challengeAccommodations[strings.ToLower(challenge)]
	if !ok {
		list = challengeAccommodations[DefaultChallenge]
	}
	return append([]string(nil), list...)
}

// Challenges lists the challenges with a dedicated accommodation table.
func Challenges() []string {
	return []string{"executive_function", "focus_difficulties", "motivation", "sensory_overload", "time_management"}
}

// GetSensoryTips merges the tips for every need, dropping duplicates.
// Unknown needs contribute nothing. Callers must not rely on the order.
func GetSensoryTips(needs []string) []string {
	var tips []string
	for _, need := range needs {
		tips = append(tips, sensoryTips[strings.ToLower(need)]...)
	}
	return dedupe(tips)
}

// SensoryNeeds lists the needs with a dedicated tip table.
func SensoryNeeds() []string {
	return []string{"auditory", "movement", "proprioceptive", "tactile", "visual"}
}

// dedupe keeps the first occurrence of each string.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
