package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/db"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/alexanderramin/focuscoach/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	focus    *focus.Manager
	clock    clock.Clock
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	manager *focus.Manager,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		focus:    manager,
		clock:    manager.Clock(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Start creates, starts and stores a session for a known technique.
func (s *sessionService) Start(ctx context.Context, req StartSessionRequest) (session *domain.FocusSession, err error) {
	fields := map[string]any{"technique": string(req.Technique)}
	defer observe(ctx, s.observer, "session-start", time.Now(), fields, &err)

	if !domain.ValidTechniqueIDs[string(req.Technique)] {
		return nil, fmt.Errorf("%q: %w", req.Technique, ErrUnknownTechnique)
	}

	session = s.focus.CreateFocusSession(req.Technique, req.Duration)
	session.ID = uuid.New().String()
	session.Task = req.Task
	session.CreatedAt = s.clock.Now()
	session.Start()
	fields["duration_min"] = session.Duration

	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Complete marks a stored session done. id may be a unique prefix.
// Completing twice is an error.
func (s *sessionService) Complete(ctx context.Context, id string) (session *domain.FocusSession, err error) {
	defer observe(ctx, s.observer, "session-complete", time.Now(), map[string]any{"session": id}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx, s.clock)

		fullID, err := txSessions.ResolveID(ctx, id)
		if err != nil {
			return err
		}
		loaded, err := txSessions.GetByID(ctx, fullID)
		if err != nil {
			return err
		}
		if loaded.Completed {
			return fmt.Errorf("session %s: %w", id, ErrSessionCompleted)
		}
		loaded.Complete()
		if err := txSessions.Update(ctx, loaded); err != nil {
			return err
		}
		session = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Status(ctx context.Context, id string) (*SessionStatus, error) {
	fullID, err := s.sessions.ResolveID(ctx, id)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.GetByID(ctx, fullID)
	if err != nil {
		return nil, err
	}
	return &SessionStatus{
		Session:   session,
		State:     session.State(),
		Remaining: session.TimeRemaining(),
		Elapsed:   session.Elapsed(),
	}, nil
}

// ListRecent returns sessions created in the last days days, newest first.
func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.FocusSession, error) {
	if days <= 0 {
		days = 7
	}
	return s.sessions.ListRecent(ctx, s.clock.Now().AddDate(0, 0, -days))
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "session-delete", time.Now(), map[string]any{"session": id}, &err)

	fullID, err := s.sessions.ResolveID(ctx, id)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, fullID)
}
