package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

var (
	// ErrNotFound is wrapped by every lookup that finds no row.
	ErrNotFound = errors.New("not found")

	ErrAmbiguousID = errors.New("id prefix matches more than one row")
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	GetByID(ctx context.Context, id string) (*domain.FocusSession, error)
	ResolveID(ctx context.Context, prefix string) (string, error)
	Update(ctx context.Context, s *domain.FocusSession) error
	ListRecent(ctx context.Context, since time.Time) ([]*domain.FocusSession, error)
	Delete(ctx context.Context, id string) error
}

type ClientStateRepo interface {
	Get(ctx context.Context, clientID string) (*domain.ClientState, error)
	SaveBreakdown(ctx context.Context, clientID, task string, b domain.TaskBreakdown) error
	SetConnection(ctx context.Context, clientID, address string, connected bool) error
}
