package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/spf13/cobra"
)

func newTechniqueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "technique",
		Aliases: []string{"techniques"},
		Short:   "Browse focus techniques",
	}

	cmd.AddCommand(
		newTechniqueListCmd(app),
		newTechniqueShowCmd(app),
		newTechniqueSuggestCmd(app),
	)

	return cmd
}

func newTechniqueListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List focus techniques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Focus techniques", formatter.FormatTechniqueList(app.Plans.Techniques())))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newTechniqueShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one focus technique",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var ids []string
			for _, e := range app.Plans.Techniques() {
				ids = append(ids, string(e.ID))
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Plans.Technique(domain.TechniqueID(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("", formatter.FormatTechnique(entry)))
			return nil
		},
	}
}

func newTechniqueSuggestCmd(app *App) *cobra.Command {
	var prefs domain.Preferences

	cmd := &cobra.Command{
		Use:   "suggest [TASK-TYPE]",
		Short: "Suggest a technique for a kind of task",
		Long: "Suggest a technique for a kind of task. Known task types: " +
			strings.Join(focus.TaskTypes(), ", ") + ".\nPreference flags take precedence over the task type.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskType := ""
			if len(args) == 1 {
				taskType = args[0]
			}
			entry := app.Plans.Suggest(taskType, prefs)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n\n", formatter.Dim("Try"), formatter.StyleGreen.Render(entry.Name))
			fmt.Fprintln(out, formatter.RenderBox("", formatter.FormatTechnique(entry)))
			return nil
		},
	}

	addPreferenceFlags(cmd, &prefs)
	return cmd
}

func addPreferenceFlags(cmd *cobra.Command, prefs *domain.Preferences) {
	cmd.Flags().BoolVar(&prefs.NeedsAccountability, "accountability", false, "You work better with someone alongside")
	cmd.Flags().BoolVar(&prefs.SensorySensitive, "sensory-sensitive", false, "Noise, light or textures pull your attention")
	cmd.Flags().BoolVar(&prefs.GetsOverwhelmed, "overwhelmed", false, "Big tasks feel overwhelming")
}

func newAccommodationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accommodations [CHALLENGE]",
		Short: "Show accommodations for a challenge",
		Long: "Show accommodations for a challenge. Known challenges: " +
			strings.Join(focus.Challenges(), ", ") + ".\nUnknown challenges fall back to " + focus.DefaultChallenge + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			challenge := focus.DefaultChallenge
			if len(args) == 1 {
				challenge = args[0]
			}
			title := "Accommodations: " + strings.ReplaceAll(challenge, "_", " ")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.Bullets(app.Plans.Accommodations(challenge))))
			return nil
		},
	}
}

func newSensoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sensory NEED...",
		Short: "Show sensory tips for one or more needs",
		Long: "Show sensory tips for one or more needs. Known needs: " +
			strings.Join(focus.SensoryNeeds(), ", ") + ".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tips := app.Plans.SensoryTips(args)
			if len(tips) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tips for those needs. Known needs: "+strings.Join(focus.SensoryNeeds(), ", "))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Sensory tips", formatter.Bullets(tips)))
			return nil
		},
	}
}

func newEncourageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "encourage [MOOD]",
		Short:     "Get a word of encouragement",
		Long:      "Get a word of encouragement. Moods: overwhelmed, frustrated, motivated, neutral.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"overwhelmed", "frustrated", "motivated", "neutral"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mood := domain.MoodNeutral
			if len(args) == 1 {
				mood = domain.Mood(strings.ToLower(args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StylePurple.Render(app.Plans.Encouragement(mood)))
			return nil
		},
	}
}
