package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focuscoach/internal/breakdown"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/repository"
)

type breakdownService struct {
	source         breakdown.DeadlineSource
	states         repository.ClientStateRepo
	defaultUrgency domain.Urgency
	observer       UseCaseObserver
}

// NewBreakdownService creates a BreakdownService. source may be nil, in
// which case breakdowns are never personalized.
func NewBreakdownService(
	source breakdown.DeadlineSource,
	states repository.ClientStateRepo,
	defaultUrgency domain.Urgency,
	observers ...UseCaseObserver,
) BreakdownService {
	return &breakdownService{
		source:         source,
		states:         states,
		defaultUrgency: domain.ParseUrgency(string(defaultUrgency)),
		observer:       useCaseObserverOrNoop(observers),
	}
}

func (s *breakdownService) Breakdown(ctx context.Context, req BreakdownRequest) (result *BreakdownResult, err error) {
	fields := map[string]any{"client": req.ClientID}
	defer observe(ctx, s.observer, "breakdown", time.Now(), fields, &err)

	task := strings.TrimSpace(req.Task)
	if task == "" {
		return nil, ErrEmptyTask
	}

	address := strings.TrimSpace(req.GmailAddress)
	if address == "" {
		address, _, err = s.Connection(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
	}

	urgency := s.defaultUrgency
	if req.Urgency != "" {
		urgency = domain.ParseUrgency(string(req.Urgency))
	}

	planner := breakdown.NewPlanner(s.source, urgency)
	b, planErr := planner.DemoTaskBreakdown(ctx, task, req.Context, address)
	result = &BreakdownResult{Breakdown: b, GmailAddress: address}
	if planErr != nil {
		if errors.Is(planErr, breakdown.ErrMalformedEstimate) {
			return nil, planErr
		}
		// Deadline lookup failures leave the plan unpersonalized.
		result.Warning = planErr.Error()
		fields["warning"] = result.Warning
	}
	fields["match"] = string(b.Match)
	fields["steps"] = len(b.Steps)
	fields["personalized"] = b.UrgencyNote != "" || b.DeadlineContext != ""

	if err = s.states.SaveBreakdown(ctx, req.ClientID, task, b); err != nil {
		return nil, fmt.Errorf("caching breakdown: %w", err)
	}
	return result, nil
}

func (s *breakdownService) LastBreakdown(ctx context.Context, clientID string) (*domain.ClientState, error) {
	st, err := s.states.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoBreakdown
		}
		return nil, err
	}
	if st.LastBreakdown == nil {
		return nil, ErrNoBreakdown
	}
	return st, nil
}

func (s *breakdownService) Connect(ctx context.Context, clientID, address string) (err error) {
	defer observe(ctx, s.observer, "connect", time.Now(), map[string]any{"client": clientID}, &err)

	address = strings.TrimSpace(address)
	if !validAddress(address) {
		return fmt.Errorf("%q: %w", address, ErrInvalidAddress)
	}
	return s.states.SetConnection(ctx, clientID, address, true)
}

func (s *breakdownService) Disconnect(ctx context.Context, clientID string) (err error) {
	defer observe(ctx, s.observer, "disconnect", time.Now(), map[string]any{"client": clientID}, &err)
	return s.states.SetConnection(ctx, clientID, "", false)
}

// Connection reports the connected address for a client. A client that has
// never connected is simply not connected.
func (s *breakdownService) Connection(ctx context.Context, clientID string) (string, bool, error) {
	st, err := s.states.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if !st.Connected {
		return "", false, nil
	}
	return st.GmailAddress, true, nil
}

func validAddress(address string) bool {
	at := strings.Index(address, "@")
	return at > 0 && at < len(address)-1 && !strings.ContainsAny(address, " \t")
}
