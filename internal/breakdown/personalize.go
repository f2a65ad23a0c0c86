package breakdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// ErrMalformedEstimate is returned when a step's estimated time is not an
// integer number of minutes.
var ErrMalformedEstimate = errors.New("malformed step estimate")

const (
	// urgencyShift is the number of minutes added to or removed from every
	// step when urgency is low or high.
	urgencyShift = 5
	// minHighUrgencyEstimate is the floor applied when tightening estimates.
	minHighUrgencyEstimate = 5
	// manyDeadlines is the count of relevant deadlines above which urgency is
	// high regardless of priority.
	manyDeadlines = 2
)

// relevanceKeywords decide whether a deadline concerns a task: both must
// mention at least one common keyword.
var relevanceKeywords = []string{"report", "quarterly", "audit", "tax", "meeting"}

var (
	highUrgencyTips = []string{
		"Focus on the essential steps first - polish can wait",
		"Set a timer for each step to keep momentum",
		"Tell someone about your deadline for accountability",
		"It's okay to ask for an extension if you need one",
	}
	lowUrgencyTips = []string{
		"There's no rush - take the extra time when you need it",
		"Use the spare minutes for sensory or movement breaks",
	}
)

// DeadlineAnalysis is the outcome of comparing a task against deadlines.
type DeadlineAnalysis struct {
	Relevant []domain.DeadlineRecord
	Urgency  domain.Urgency
}

// IsRelevant reports whether a deadline title and a task share a relevance
// keyword.
func IsRelevant(task, title string) bool {
	task = strings.ToLower(task)
	title = strings.ToLower(title)
	for _, kw := range relevanceKeywords {
		if strings.Contains(task, kw) && strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// AnalyzeDeadlinesForTask filters deadlines down to those relevant to task
// and derives urgency. Urgency is high when any relevant deadline is high
// priority or there are more than two of them; otherwise it stays at
// defaultUrgency (medium when empty).
func AnalyzeDeadlinesForTask(task string, deadlines []domain.DeadlineRecord, defaultUrgency domain.Urgency) DeadlineAnalysis {
	if defaultUrgency == "" {
		defaultUrgency = domain.UrgencyMedium
	}
	analysis := DeadlineAnalysis{Urgency: defaultUrgency}

	hasHigh := false
	for _, d := range deadlines {
		if !IsRelevant(task, d.Title) {
			continue
		}
		analysis.Relevant = append(analysis.Relevant, d)
		if d.Priority == domain.PriorityHigh {
			hasHigh = true
		}
	}

	if hasHigh || len(analysis.Relevant) > manyDeadlines {
		analysis.Urgency = domain.UrgencyHigh
	}
	return analysis
}

// PersonalizeTaskBreakdown returns a copy of b with estimates shifted for
// the analysed urgency and advisory text appended. High urgency removes five
// minutes per step with a floor of five; low urgency adds five with no
// ceiling; medium leaves estimates alone.
func PersonalizeTaskBreakdown(b domain.TaskBreakdown, analysis DeadlineAnalysis) (domain.TaskBreakdown, error) {
	out := b.Clone()

	if len(analysis.Relevant) > 0 {
		out.DeadlineContext = deadlineContext(analysis.Relevant)
	}

	switch analysis.Urgency {
	case domain.UrgencyHigh:
		if err := shiftEstimates(out.Steps, -urgencyShift, minHighUrgencyEstimate); err != nil {
			return domain.TaskBreakdown{}, err
		}
		out.UrgencyNote = fmt.Sprintf("High urgency: you have related deadlines coming up, so each step has been trimmed by %d minutes.", urgencyShift)
		out.DeadlineTips = append(out.DeadlineTips, highUrgencyTips...)
	case domain.UrgencyLow:
		// No ceiling here, unlike the high-urgency floor.
		if err := shiftEstimates(out.Steps, urgencyShift, -1); err != nil {
			return domain.TaskBreakdown{}, err
		}
		out.UrgencyNote = fmt.Sprintf("Low urgency: no pressing deadlines, so each step has %d extra minutes.", urgencyShift)
		out.DeadlineTips = append(out.DeadlineTips, lowUrgencyTips...)
	}

	return out, nil
}

// shiftEstimates adds delta to every step. A negative floor disables the
// lower bound.
func shiftEstimates(steps []domain.Step, delta, floor int) error {
	for i := range steps {
		minutes, err := strconv.Atoi(strings.TrimSpace(steps[i].EstimatedTime))
		if err != nil {
			return fmt.Errorf("step %d %q: %w", i+1, steps[i].EstimatedTime, ErrMalformedEstimate)
		}
		minutes += delta
		if floor >= 0 && minutes < floor {
			minutes = floor
		}
		steps[i].EstimatedTime = strconv.Itoa(minutes)
	}
	return nil
}

func deadlineContext(relevant []domain.DeadlineRecord) string {
	parts := make([]string, 0, len(relevant))
	for _, d := range relevant {
		parts = append(parts, fmt.Sprintf("%s (due %s, %s priority)", d.Title, d.Date, d.Priority))
	}
	return fmt.Sprintf("Found %d related deadline(s): %s", len(relevant), strings.Join(parts, "; "))
}
