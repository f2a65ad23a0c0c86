package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/service"
	"github.com/spf13/cobra"
)

func newBreakdownCmd(app *App) *cobra.Command {
	var userContext, gmail, urgency string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "breakdown TASK...",
		Short: "Break a task into small timed steps",
		Example: `  focuscoach breakdown prepare quarterly report
  focuscoach breakdown "write a blog post" --context "about focus tips"
  focuscoach breakdown clean my room --gmail me@example.com --urgency low`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.Join(args, " ")
			req := service.BreakdownRequest{
				ClientID:     app.ClientID,
				Task:         task,
				Context:      userContext,
				GmailAddress: gmail,
				Urgency:      domain.Urgency(urgency),
			}

			var stop func()
			if app.SlowDeadlines && app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Checking your inbox for deadlines...")
			}
			res, err := app.Breakdowns.Breakdown(cmd.Context(), req)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Breakdown)
			}

			if res.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("Deadlines unavailable: "+res.Warning))
			}
			fmt.Fprintln(out, formatter.RenderBox("Your plan", formatter.FormatBreakdown(strings.TrimSpace(task), res.Breakdown)))
			return nil
		},
	}

	cmd.Flags().StringVar(&userContext, "context", "", "Extra context about the task")
	cmd.Flags().StringVar(&gmail, "gmail", "", "Inbox to check for related deadlines (defaults to the connected one)")
	cmd.Flags().Var(newChoiceValue(&urgency, "low", "medium", "high"), "urgency", "Urgency when no deadline decides it: low, medium or high")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the breakdown as JSON")

	return cmd
}

func newLastCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the most recent breakdown again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Breakdowns.LastBreakdown(cmd.Context(), app.ClientID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderBox("Your plan", formatter.FormatBreakdown(st.LastTask, *st.LastBreakdown)))
			fmt.Fprintln(out, formatter.Dim("Generated "+formatter.HumanTimestampFrom(st.UpdatedAt, app.now().Now())))
			return nil
		},
	}
}

func newConnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect ADDRESS",
		Short: "Use an inbox to personalize breakdowns by deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Breakdowns.Connect(cmd.Context(), app.ClientID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Connected %s\n", formatter.StyleGreen.Render("✔"), args[0])
			return nil
		},
	}
}

func newDisconnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Stop using the connected inbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			address, connected, err := app.Breakdowns.Connection(cmd.Context(), app.ClientID)
			if err != nil {
				return err
			}
			if !connected {
				fmt.Fprintln(cmd.OutOrStdout(), "No inbox connected.")
				return nil
			}
			if err := app.Breakdowns.Disconnect(cmd.Context(), app.ClientID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Disconnected %s\n", address)
			return nil
		},
	}
}
