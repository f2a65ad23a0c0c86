package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

var (
	ErrEmptyTask        = errors.New("task description is empty")
	ErrUnknownTechnique = errors.New("unknown focus technique")
	ErrSessionCompleted = errors.New("focus session already completed")
	ErrInvalidAddress   = errors.New("invalid email address")
	ErrNoBreakdown      = errors.New("no breakdown generated yet")
)

// BreakdownRequest asks for a step plan. An empty GmailAddress falls back to
// the address the client connected, if any. An empty Urgency uses the
// configured default.
type BreakdownRequest struct {
	ClientID     string
	Task         string
	Context      string
	GmailAddress string
	Urgency      domain.Urgency
}

// BreakdownResult carries the plan plus a warning when deadlines could not
// be loaded and the plan was returned unpersonalized.
type BreakdownResult struct {
	Breakdown    domain.TaskBreakdown
	GmailAddress string
	Warning      string
}

type BreakdownService interface {
	Breakdown(ctx context.Context, req BreakdownRequest) (*BreakdownResult, error)
	LastBreakdown(ctx context.Context, clientID string) (*domain.ClientState, error)
	Connect(ctx context.Context, clientID, address string) error
	Disconnect(ctx context.Context, clientID string) error
	Connection(ctx context.Context, clientID string) (address string, connected bool, err error)
}

type StartSessionRequest struct {
	Technique domain.TechniqueID
	Duration  int
	Task      string
}

// SessionStatus is a point-in-time view of a stored session.
type SessionStatus struct {
	Session   *domain.FocusSession
	State     domain.SessionState
	Remaining time.Duration
	Elapsed   time.Duration
}

type SessionService interface {
	Start(ctx context.Context, req StartSessionRequest) (*domain.FocusSession, error)
	Complete(ctx context.Context, id string) (*domain.FocusSession, error)
	Status(ctx context.Context, id string) (*SessionStatus, error)
	ListRecent(ctx context.Context, days int) ([]*domain.FocusSession, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	CreatePlan(ctx context.Context, task string, profile domain.UserProfile) (*domain.PlanResult, error)
	Techniques() []domain.TechniqueEntry
	Technique(id domain.TechniqueID) (domain.TechniqueEntry, error)
	Suggest(taskType string, prefs domain.Preferences) domain.TechniqueEntry
	Accommodations(challenge string) []string
	SensoryTips(needs []string) []string
	Encouragement(mood domain.Mood) string
}
