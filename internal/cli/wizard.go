package cli

import (
	"strings"

	"github.com/alexanderramin/focuscoach/internal/cli/formatter"
	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/focus"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// focusHuhTheme returns a huh theme using the Gruvbox palette.
func focusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✓] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// Preference keys offered by the profile form.
const (
	prefAccountability = "accountability"
	prefSensory        = "sensory"
	prefOverwhelmed    = "overwhelmed"
)

// profileAnswers holds the values bound to the profile form fields.
type profileAnswers struct {
	TaskType     string
	Preferences  []string
	Challenges   []string
	SensoryNeeds []string
	Mood         string
}

// answersFromProfile seeds the form with values already given as flags.
func answersFromProfile(p domain.UserProfile) *profileAnswers {
	a := &profileAnswers{
		TaskType:     p.TaskType,
		Challenges:   p.Challenges,
		SensoryNeeds: p.SensoryNeeds,
		Mood:         string(p.Mood),
	}
	if a.TaskType == "" {
		a.TaskType = "general"
	}
	if a.Mood == "" {
		a.Mood = string(domain.MoodNeutral)
	}
	if p.Preferences.NeedsAccountability {
		a.Preferences = append(a.Preferences, prefAccountability)
	}
	if p.Preferences.SensorySensitive {
		a.Preferences = append(a.Preferences, prefSensory)
	}
	if p.Preferences.GetsOverwhelmed {
		a.Preferences = append(a.Preferences, prefOverwhelmed)
	}
	return a
}

func (a *profileAnswers) profile() domain.UserProfile {
	p := domain.UserProfile{
		TaskType:     a.TaskType,
		Challenges:   a.Challenges,
		SensoryNeeds: a.SensoryNeeds,
		Mood:         domain.Mood(a.Mood),
	}
	for _, key := range a.Preferences {
		switch key {
		case prefAccountability:
			p.Preferences.NeedsAccountability = true
		case prefSensory:
			p.Preferences.SensorySensitive = true
		case prefOverwhelmed:
			p.Preferences.GetsOverwhelmed = true
		}
	}
	return p
}

// newProfileForm builds a two-page form bound to a.
func newProfileForm(a *profileAnswers) *huh.Form {
	moods := []string{
		string(domain.MoodNeutral),
		string(domain.MoodMotivated),
		string(domain.MoodOverwhelmed),
		string(domain.MoodFrustrated),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of task is it?").
				Options(huh.NewOptions(append([]string{"general"}, focus.TaskTypes()...)...)...).
				Value(&a.TaskType),
			huh.NewMultiSelect[string]().
				Title("Which of these sound like you?").
				Options(
					huh.NewOption("I work better with someone alongside", prefAccountability),
					huh.NewOption("Noise, light or textures distract me", prefSensory),
					huh.NewOption("Big tasks overwhelm me", prefOverwhelmed),
				).
				Value(&a.Preferences),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("What gets in the way?").
				Options(labelledOptions(focus.Challenges())...).
				Value(&a.Challenges),
			huh.NewMultiSelect[string]().
				Title("Any sensory needs?").
				Options(labelledOptions(focus.SensoryNeeds())...).
				Value(&a.SensoryNeeds),
			huh.NewSelect[string]().
				Title("How are you feeling?").
				Options(labelledOptions(moods)...).
				Value(&a.Mood),
		),
	).WithTheme(focusHuhTheme()).WithShowHelp(false)
}

// labelledOptions turns snake_case keys into readable option labels.
func labelledOptions(keys []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(keys))
	for _, k := range keys {
		label := strings.ReplaceAll(k, "_", " ")
		if label != "" {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		opts = append(opts, huh.NewOption(label, k))
	}
	return opts
}
