package domain

// UserProfile describes the person a plan is built for.
type UserProfile struct {
	TaskType     string
	Preferences  Preferences
	Challenges   []string
	SensoryNeeds []string
	Mood         Mood
}

// PlanResult aggregates a technique suggestion with the supporting advice
// for one task.
type PlanResult struct {
	Task            string
	Technique       TechniqueID
	SessionDuration int
	BreakDuration   int
	Accommodations  []string
	SensoryTips     []string
	TechniqueInfo   TechniqueEntry
	Encouragement   string
}
