package cli

import (
	"github.com/alexanderramin/focuscoach/internal/clock"
	"github.com/alexanderramin/focuscoach/internal/config"
	"github.com/alexanderramin/focuscoach/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Breakdowns service.BreakdownService
	Sessions   service.SessionService
	Plans      service.PlanService

	ClientID string
	Clock    clock.Clock
	Pomodoro config.PomodoroConfig

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// SlowDeadlines is set when the deadline source does network I/O, so
	// personalized breakdowns show a spinner.
	SlowDeadlines bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() clock.Clock {
	return clock.OrSystem(a.Clock)
}

// NewRootCmd creates the top-level "focuscoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focuscoach",
		Short: "Task breakdowns and focus sessions for neurodivergent-friendly work",
		Long: "FocusCoach breaks tasks into small timed steps, suggests focus techniques\n" +
			"that fit how you work, and runs focus sessions with breaks.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newBreakdownCmd(app),
		newLastCmd(app),
		newConnectCmd(app),
		newDisconnectCmd(app),
		newTechniqueCmd(app),
		newAccommodationsCmd(app),
		newSensoryCmd(app),
		newPlanCmd(app),
		newSessionCmd(app),
		newEncourageCmd(app),
	)

	return root
}
