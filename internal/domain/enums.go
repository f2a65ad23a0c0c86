package domain

type TechniqueID string

const (
	TechniquePomodoro       TechniqueID = "pomodoro"
	TechniqueBodyDoubling   TechniqueID = "body_doubling"
	TechniqueTimeBlocking   TechniqueID = "time_blocking"
	TechniqueChunking       TechniqueID = "chunking"
	TechniqueSensoryBreaks  TechniqueID = "sensory_breaks"
	TechniqueVisualTimers   TechniqueID = "visual_timers"
	TechniqueAccountability TechniqueID = "accountability"
)

// ValidTechniqueIDs is the canonical set of accepted technique identifiers.
// Not every identifier has a catalog entry.
var ValidTechniqueIDs = map[string]bool{
	"pomodoro": true, "body_doubling": true, "time_blocking": true,
	"chunking": true, "sensory_breaks": true, "visual_timers": true,
	"accountability": true,
}

type SessionState string

const (
	SessionUninitialized SessionState = "uninitialized"
	SessionActive        SessionState = "active"
	SessionExpired       SessionState = "expired"
	SessionCompleted     SessionState = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency maps a user-supplied string to an Urgency. Unknown or empty
// values resolve to medium.
func ParseUrgency(s string) Urgency {
	switch Urgency(s) {
	case UrgencyLow, UrgencyHigh:
		return Urgency(s)
	default:
		return UrgencyMedium
	}
}

type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchKeyword MatchKind = "keyword"
	MatchGeneric MatchKind = "generic"
)

type Mood string

const (
	MoodOverwhelmed Mood = "overwhelmed"
	MoodFrustrated  Mood = "frustrated"
	MoodMotivated   Mood = "motivated"
	MoodNeutral     Mood = "neutral"
)
