package breakdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// DeadlineSource supplies the deadlines found in an inbox.
type DeadlineSource interface {
	Deadlines(ctx context.Context, address string) ([]domain.DeadlineRecord, error)
}

// Planner produces breakdowns, personalized when an inbox is connected.
type Planner struct {
	source         DeadlineSource
	defaultUrgency domain.Urgency
}

// NewPlanner creates a Planner. source may be nil, in which case breakdowns
// are never personalized.
func NewPlanner(source DeadlineSource, defaultUrgency domain.Urgency) *Planner {
	if defaultUrgency == "" {
		defaultUrgency = domain.UrgencyMedium
	}
	return &Planner{source: source, defaultUrgency: defaultUrgency}
}

// DemoTaskBreakdown matches task to a plan and, when gmailAddress is set,
// personalizes it against that inbox's deadlines. On a deadline source
// error the matched, unpersonalized plan is returned together with the
// error so callers can still show it.
func (p *Planner) DemoTaskBreakdown(ctx context.Context, task, userContext, gmailAddress string) (domain.TaskBreakdown, error) {
	b := Match(task)
	b.UserContext = strings.TrimSpace(userContext)

	if strings.TrimSpace(gmailAddress) == "" || p.source == nil {
		return b, nil
	}

	deadlines, err := p.source.Deadlines(ctx, gmailAddress)
	if err != nil {
		return b, fmt.Errorf("loading deadlines for %s: %w", gmailAddress, err)
	}

	analysis := AnalyzeDeadlinesForTask(task, deadlines, p.defaultUrgency)
	personalized, err := PersonalizeTaskBreakdown(b, analysis)
	if err != nil {
		return b, fmt.Errorf("personalizing breakdown: %w", err)
	}
	return personalized, nil
}
