package cli

import (
	"fmt"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/service"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run and review focus sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionCompleteCmd(app),
		newSessionStatusCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
		newSessionTimerCmd(app),
	)

	return cmd
}

func newSessionStartCmd(app *App) *cobra.Command {
	var technique, task string
	var minutes int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Start(cmd.Context(), service.StartSessionRequest{
				Technique: domain.TechniqueID(technique),
				Duration:  minutes,
				Task:      task,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Started %s session %s, ends at %s\n",
				formatter.FormatMinutes(s.Duration), formatter.Bold(s.ID), s.EndTime.Local().Format("15:04"))
			if len(s.Accommodations) > 0 {
				fmt.Fprintln(out, formatter.Bullets(s.Accommodations))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&technique, "technique", "t", string(domain.TechniquePomodoro), "Focus technique")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length (defaults to the technique's)")
	cmd.Flags().StringVar(&task, "task", "", "What you are working on")

	return cmd
}

func newSessionCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a focus session done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Complete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Completed session %s\n", formatter.StyleGreen.Render("✔"), formatter.TruncID(s.ID))
			if s.BreakDuration > 0 {
				fmt.Fprintf(out, "Take a %s break.\n", formatter.FormatMinutes(s.BreakDuration))
			}
			return nil
		},
	}
}

func newSessionStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID",
		Short: "Show how a focus session is going",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Sessions.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Session", formatter.FormatSession(st.Session)))
			return nil
		},
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent focus sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(cmd.Context(), days)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}
			table := formatter.FormatSessionList(sessions, app.now().Now())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Sessions", table))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a focus session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", args[0])
			return nil
		},
	}
}
