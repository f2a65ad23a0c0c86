package deadline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
	gmail "google.golang.org/api/gmail/v1"
)

// DefaultQuery selects recent messages that look like they carry a due date.
const DefaultQuery = "newer_than:30d (subject:deadline OR subject:due OR subject:reminder)"

// GmailSource reads deadlines from message subjects in a Gmail inbox.
type GmailSource struct {
	svc        *gmail.Service
	query      string
	maxResults int64
}

// NewGmailSource wraps an authorized Gmail service. maxResults <= 0 uses 20.
func NewGmailSource(svc *gmail.Service, query string, maxResults int64) *GmailSource {
	if query == "" {
		query = DefaultQuery
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	return &GmailSource{svc: svc, query: query, maxResults: maxResults}
}

func (g *GmailSource) Deadlines(ctx context.Context, address string) ([]domain.DeadlineRecord, error) {
	profile, err := g.svc.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading gmail profile: %w", err)
	}
	if address != "" && !strings.EqualFold(profile.EmailAddress, address) {
		return nil, fmt.Errorf("%s: %w", address, ErrAddressMismatch)
	}

	list, err := g.svc.Users.Messages.List("me").Q(g.query).MaxResults(g.maxResults).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing gmail messages: %w", err)
	}

	records := make([]domain.DeadlineRecord, 0, len(list.Messages))
	for _, m := range list.Messages {
		msg, err := g.svc.Users.Messages.Get("me", m.Id).
			Format("metadata").
			MetadataHeaders("Subject", "Date", "From").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("fetching gmail message %s: %w", m.Id, err)
		}
		if rec, ok := recordFromMessage(msg); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// recordFromMessage maps message headers to a deadline. Messages without a
// subject are skipped.
func recordFromMessage(msg *gmail.Message) (domain.DeadlineRecord, bool) {
	if msg == nil || msg.Payload == nil {
		return domain.DeadlineRecord{}, false
	}
	var subject, date, from string
	for _, h := range msg.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "subject":
			subject = strings.TrimSpace(h.Value)
		case "date":
			date = strings.TrimSpace(h.Value)
		case "from":
			from = strings.TrimSpace(h.Value)
		}
	}
	if subject == "" {
		return domain.DeadlineRecord{}, false
	}
	return domain.DeadlineRecord{
		Title:    subject,
		Date:     date,
		Priority: priorityFromSubject(subject),
		Source:   "gmail:" + from,
	}, true
}

func priorityFromSubject(subject string) domain.Priority {
	s := strings.ToLower(subject)
	for _, w := range []string{"urgent", "asap", "overdue", "final notice"} {
		if strings.Contains(s, w) {
			return domain.PriorityHigh
		}
	}
	for _, w := range []string{"reminder", "fyi"} {
		if strings.Contains(s, w) {
			return domain.PriorityLow
		}
	}
	return domain.PriorityMedium
}
