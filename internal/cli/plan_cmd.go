package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("interactive mode needs a terminal")

func newPlanCmd(app *App) *cobra.Command {
	var (
		profile     domain.UserProfile
		mood        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "plan TASK...",
		Short: "Build a personalized focus plan for a task",
		Example: `  focuscoach plan write my thesis intro --type writing --challenge motivation --sensory auditory
  focuscoach plan -i tidy the garage`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.Join(args, " ")
			profile.Mood = domain.Mood(mood)

			if interactive {
				if !app.interactive() {
					return errNotInteractive
				}
				answers := answersFromProfile(profile)
				if err := newProfileForm(answers).Run(); err != nil {
					return err
				}
				profile = answers.profile()
			}

			plan, err := app.Plans.CreatePlan(cmd.Context(), task, profile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Focus plan", formatter.FormatPlan(*plan)))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.TaskType, "type", "", "Kind of task, e.g. writing, reading, planning")
	cmd.Flags().StringSliceVar(&profile.Challenges, "challenge", nil, "Challenges to accommodate (repeatable)")
	cmd.Flags().StringSliceVar(&profile.SensoryNeeds, "sensory", nil, "Sensory needs (repeatable)")
	cmd.Flags().Var(newChoiceValue(&mood, "overwhelmed", "frustrated", "motivated", "neutral"), "mood", "How you feel: overwhelmed, frustrated, motivated or neutral")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Answer questions instead of passing flags")
	addPreferenceFlags(cmd, &profile.Preferences)

	return cmd
}
