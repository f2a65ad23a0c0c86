// Package deadline provides the inbox-backed deadline sources used to
// personalize breakdowns.
package deadline

import (
	"context"
	"errors"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

var (
	// ErrNotConnected indicates no stored credentials exist for the inbox.
	ErrNotConnected = errors.New("inbox not connected")

	// ErrAddressMismatch indicates the authorized account is not the
	// requested address.
	ErrAddressMismatch = errors.New("authorized inbox does not match address")
)

// SampleSource returns a fixed set of fabricated deadlines for any address.
// It performs no I/O and is the default source.
type SampleSource struct{}

var sampleDeadlines = []domain.DeadlineRecord{
	{Title: "Quarterly Report Due", Date: "2025-01-15", Priority: domain.PriorityHigh, Source: "manager@company.com"},
	{Title: "Team Meeting Preparation", Date: "2025-01-10", Priority: domain.PriorityMedium, Source: "calendar@company.com"},
	{Title: "Tax Documents Submission", Date: "2025-04-15", Priority: domain.PriorityHigh, Source: "accountant@firm.com"},
	{Title: "Audit Prep Checklist", Date: "2025-02-01", Priority: domain.PriorityMedium, Source: "finance@company.com"},
	{Title: "Dentist Appointment Reminder", Date: "2025-01-20", Priority: domain.PriorityLow, Source: "noreply@dental.com"},
}

func (SampleSource) Deadlines(ctx context.Context, address string) ([]domain.DeadlineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.DeadlineRecord(nil), sampleDeadlines...), nil
}
