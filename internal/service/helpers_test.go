package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/focuscoach/internal/breakdown"
	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/deadline"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/alexanderramin/focuscoach/internal/repository"
	"github.com/alexanderramin/focuscoach/internal/testutil"
)

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	return r.events[len(r.events)-1]
}

// failingSource always errors, as an unreachable inbox would.
type failingSource struct{ err error }

func (f failingSource) Deadlines(context.Context, string) ([]domain.DeadlineRecord, error) {
	return nil, f.err
}

// countingSource returns fixed deadlines and records the addresses asked for.
type countingSource struct {
	deadlines []domain.DeadlineRecord
	addresses []string
}

func (c *countingSource) Deadlines(_ context.Context, address string) ([]domain.DeadlineRecord, error) {
	c.addresses = append(c.addresses, address)
	return c.deadlines, nil
}

type fixedIndex int

func (f fixedIndex) IntN(n int) int { return int(f) % n }

type testEnv struct {
	db       *sql.DB
	clock    *clock.Manual
	manager  *focus.Manager
	observer *recordingObserver
	states   *repository.SQLiteClientStateRepo
	sessions *repository.SQLiteSessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	clk := testutil.NewTestClock()
	return &testEnv{
		db:       database,
		clock:    clk,
		manager:  focus.NewManager(focus.WithClock(clk), focus.WithRandom(fixedIndex(0))),
		observer: &recordingObserver{},
		states:   repository.NewSQLiteClientStateRepo(database, clk),
		sessions: repository.NewSQLiteSessionRepo(database, clk),
	}
}

func (e *testEnv) breakdownService(source breakdown.DeadlineSource) BreakdownService {
	return NewBreakdownService(source, e.states, domain.UrgencyMedium, e.observer)
}

func (e *testEnv) sampleBreakdownService() BreakdownService {
	return e.breakdownService(deadline.SampleSource{})
}

func (e *testEnv) sessionService() SessionService {
	return NewSessionService(e.sessions, testutil.NewTestUoW(e.db), e.manager, e.observer)
}
