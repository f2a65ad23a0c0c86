package focus

import (
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// DefaultTechnique is suggested when neither preferences nor the task type
// select anything.
const DefaultTechnique = domain.TechniquePomodoro

var taskTypeTechniques = map[string]domain.TechniqueID{
	"writing":       domain.TechniquePomodoro,
	"reading":       domain.TechniqueChunking,
	"planning":      domain.TechniqueTimeBlocking,
	"creative":      domain.TechniqueSensoryBreaks,
	"collaborative": domain.TechniqueBodyDoubling,
	"overwhelming":  domain.TechniqueChunking,
	"repetitive":    domain.TechniquePomodoro,
	"complex":       domain.TechniqueTimeBlocking,
}

// SuggestTechnique picks a technique for a task type. Stated needs win over
// the task type, checked in the order accountability, sensory sensitivity,
// overwhelm.
func SuggestTechnique(taskType string, prefs domain.Preferences) domain.TechniqueID {
	switch {
	case prefs.NeedsAccountability:
		return domain.TechniqueBodyDoubling
	case prefs.SensorySensitive:
		return domain.TechniqueSensoryBreaks
	case prefs.GetsOverwhelmed:
		return domain.TechniqueChunking
	}

	if id, ok := taskTypeTechniques[strings.ToLower(strings.TrimSpace(taskType))]; ok {
		return id
	}
	return DefaultTechnique
}

// TaskTypes returns the task types with a dedicated suggestion, sorted.
func TaskTypes() []string {
	return []string{
		"collaborative", "complex", "creative", "overwhelming",
		"planning", "reading", "repetitive", "writing",
	}
}
