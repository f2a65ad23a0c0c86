// Package focus holds the focus technique catalog, the rules that pick a
// technique for a task, and the session helpers built on top of them.
//
// All tables are read-only after package initialization. Lookups never fail:
// a miss returns the documented default for that table.
package focus

import "github.com/alexanderramin/focuscoach/internal/domain"

const (
	defaultDuration      = 25
	defaultBreakDuration = 5
)

// techniqueOrder fixes the listing order of catalog entries.
var techniqueOrder = []domain.TechniqueID{
	domain.TechniquePomodoro,
	domain.TechniqueBodyDoubling,
	domain.TechniqueTimeBlocking,
	domain.TechniqueChunking,
	domain.TechniqueSensoryBreaks,
}

var techniques = map[domain.TechniqueID]domain.TechniqueEntry{
	domain.TechniquePomodoro: {
		ID:            domain.TechniquePomodoro,
		Name:          "Pomodoro Technique",
		Description:   "25 minutes of focused work followed by a 5-minute break",
		Duration:      25,
		BreakDuration: 5,
		Accommodations: []string{
			"Use a visual timer",
			"Set up a comfortable workspace",
			"Have water and snacks nearby",
			"Use noise-cancelling headphones if needed",
		},
		SensoryConsiderations: []string{
			"Adjust lighting to reduce eye strain",
			"Use fidget tools if helpful",
			"Take movement breaks between sessions",
		},
	},
	domain.TechniqueBodyDoubling: {
		ID:            domain.TechniqueBodyDoubling,
		Name:          "Body Doubling",
		Description:   "Work alongside someone else for accountability and motivation",
		Duration:      30,
		BreakDuration: 10,
		Accommodations: []string{
			"Find a study/work partner",
			"Use video calls for virtual body doubling",
			"Join online focus groups",
			"Set up regular check-ins",
		},
		SensoryConsiderations: []string{
			"Choose a quiet, comfortable space",
			"Use headphones to reduce distractions",
			"Have backup plans if partner cancels",
		},
	},
	domain.TechniqueTimeBlocking: {
		ID:            domain.TechniqueTimeBlocking,
		Name:          "Time Blocking",
		Description:   "Dedicate specific time slots to different tasks",
		Duration:      45,
		BreakDuration: 15,
		Accommodations: []string{
			"Use calendar apps with visual blocks",
			"Set multiple reminders",
			"Color-code different task types",
			"Build in buffer time between blocks",
		},
		SensoryConsiderations: []string{
			"Use visual timers and calendars",
			"Create a dedicated workspace for each block",
			"Have transition rituals between blocks",
		},
	},
	domain.TechniqueChunking: {
		ID:            domain.TechniqueChunking,
		Name:          "Task Chunking",
		Description:   "Break large tasks into small, manageable pieces",
		Duration:      15,
		BreakDuration: 5,
		Accommodations: []string{
			"Use task management apps",
			"Create visual progress trackers",
			"Set micro-goals for each chunk",
			"Celebrate completion of each chunk",
		},
		SensoryConsiderations: []string{
			"Use visual progress indicators",
			"Have sensory rewards for completed chunks",
			"Take movement breaks between chunks",
		},
	},
	domain.TechniqueSensoryBreaks: {
		ID:            domain.TechniqueSensoryBreaks,
		Name:          "Sensory Breaks",
		Description:   "Regular breaks that address sensory needs",
		Duration:      20,
		BreakDuration: 10,
		Accommodations: []string{
			"Set up a sensory break station",
			"Use fidget tools and stress balls",
			"Practice deep breathing exercises",
			"Take short walks or stretches",
		},
		SensoryConsiderations: []string{
			"Adjust lighting and temperature",
			"Use weighted blankets or compression",
			"Listen to calming music or white noise",
			"Practice grounding techniques",
		},
	},
}

// GetTechniqueInfo returns the catalog entry for id. Unknown ids return the
// zero entry and false.
func GetTechniqueInfo(id domain.TechniqueID) (domain.TechniqueEntry, bool) {
	e, ok := techniques[id]
	if !ok {
		return domain.TechniqueEntry{}, false
	}
	return e.Clone(), true
}

// Techniques lists every catalog entry in display order.
func Techniques() []domain.TechniqueEntry {
	out := make([]domain.TechniqueEntry, 0, len(techniqueOrder))
	for _, id := range techniqueOrder {
		out = append(out, techniques[id].Clone())
	}
	return out
}
