package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/focuscoach/internal/focus"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSessionTimerCmd(app *App) *cobra.Command {
	var work, brk, longBreak, cycles int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a pomodoro countdown in the terminal",
		Long: fmt.Sprintf("Run a pomodoro countdown in the terminal. Work and break sessions\n"+
			"alternate, with a long break after every %d work sessions.", focus.LongBreakEvery),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			if !cmd.Flags().Changed("work") {
				work = app.Pomodoro.Work
			}
			if !cmd.Flags().Changed("break") {
				brk = app.Pomodoro.Break
			}
			if !cmd.Flags().Changed("long-break") {
				longBreak = app.Pomodoro.LongBreak
			}

			timer := focus.NewPomodoroTimer(work, brk, longBreak, app.now())
			model := newTimerModel(timer, cycles, time.Second)
			final, err := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(timerModel); ok {
				fmt.Fprintln(cmd.OutOrStdout(), m.summary())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&work, "work", 25, "Work session minutes")
	cmd.Flags().IntVar(&brk, "break", 5, "Short break minutes")
	cmd.Flags().IntVar(&longBreak, "long-break", 15, "Long break minutes")
	cmd.Flags().IntVar(&cycles, "cycles", 0, "Stop after this many work sessions (0 runs until you quit)")

	return cmd
}
