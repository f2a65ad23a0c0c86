package domain

// Step is one item of a task breakdown. EstimatedTime holds integer minutes
// encoded as a string.
type Step struct {
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	Tip           string `json:"tips"`
}

// TaskBreakdown is the ordered plan returned for a task, plus the advice
// that goes with it. The deadline fields are only set by personalization.
type TaskBreakdown struct {
	Steps           []Step   `json:"steps"`
	FocusTechniques []string `json:"focus_techniques"`
	Accommodations  []string `json:"accommodations"`
	SensoryTips     []string `json:"sensory_tips"`
	Encouragement   string   `json:"encouragement"`
	DeadlineContext string   `json:"deadline_context,omitempty"`
	UrgencyNote     string   `json:"urgency_note,omitempty"`
	DeadlineTips    []string `json:"deadline_tips,omitempty"`

	Match       MatchKind `json:"match,omitempty"`
	UserContext string    `json:"user_context,omitempty"`
}

// Clone deep-copies b so catalog templates are never mutated.
func (b TaskBreakdown) Clone() TaskBreakdown {
	if b.Steps != nil {
		steps := make([]Step, len(b.Steps))
		copy(steps, b.Steps)
		b.Steps = steps
	}
	b.FocusTechniques = cloneStrings(b.FocusTechniques)
	b.Accommodations = cloneStrings(b.Accommodations)
	b.SensoryTips = cloneStrings(b.SensoryTips)
	b.DeadlineTips = cloneStrings(b.DeadlineTips)
	return b
}

// DeadlineRecord is a due date surfaced from an inbox. Date is kept as the
// source string and never parsed.
type DeadlineRecord struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Priority Priority `json:"priority"`
	Source   string   `json:"source"`
}
