package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/focuscoach/internal/breakdown"
	"github.com/alexanderramin/focuscoach/internal/cli"
	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/config"
	"github.com/alexanderramin/focuscoach/internal/db"
	"github.com/alexanderramin/focuscoach/internal/deadline"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/alexanderramin/focuscoach/internal/repository"
	"github.com/alexanderramin/focuscoach/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	clk := clock.System()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database, clk)
	stateRepo := repository.NewSQLiteClientStateRepo(database, clk)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	source, slow := deadlineSource(ctx, cfg)
	manager := focus.NewManager(focus.WithClock(clk))

	app := &cli.App{
		Breakdowns:    service.NewBreakdownService(source, stateRepo, cfg.DefaultUrgency, observer),
		Sessions:      service.NewSessionService(sessionRepo, uow, manager, observer),
		Plans:         service.NewPlanService(manager, observer),
		ClientID:      cfg.ClientID,
		Clock:         clk,
		Pomodoro:      cfg.Pomodoro,
		SlowDeadlines: slow,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// deadlineSource builds the configured source. A Gmail inbox that has not
// been authorized yet leaves breakdowns unpersonalized rather than failing
// every command.
func deadlineSource(ctx context.Context, cfg config.Config) (breakdown.DeadlineSource, bool) {
	if cfg.DeadlineSource != config.SourceGmail {
		return deadline.SampleSource{}, false
	}
	svc, err := deadline.NewGmailService(ctx, cfg.Gmail.CredentialsFile, cfg.Gmail.TokenFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Gmail deadlines disabled: %v\n", err)
		return nil, false
	}
	return deadline.NewGmailSource(svc, cfg.Gmail.Query, cfg.Gmail.MaxResults), true
}
