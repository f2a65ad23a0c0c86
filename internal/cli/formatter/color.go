package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UrgencyIndicator returns a colored urgency label such as "● HIGH URGENCY".
func UrgencyIndicator(u domain.Urgency) string {
	switch u {
	case domain.UrgencyHigh:
		return StyleRed.Render("● HIGH URGENCY")
	case domain.UrgencyLow:
		return StyleGreen.Render("● LOW URGENCY")
	default:
		return StyleYellow.Render("● MEDIUM URGENCY")
	}
}

func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityLow:
		return StyleDim.Render("▽ low")
	default:
		return StyleYellow.Render("● medium")
	}
}

// StatePill returns a colored indicator for a focus session state.
func StatePill(s domain.SessionState) string {
	switch s {
	case domain.SessionActive:
		return StyleGreen.Render("● Active")
	case domain.SessionExpired:
		return StyleYellow.Render("◌ Time's up")
	case domain.SessionCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render("○ Not started")
	}
}

// MatchBadge describes how a breakdown was chosen.
func MatchBadge(m domain.MatchKind) string {
	switch m {
	case domain.MatchExact:
		return StyleGreen.Render("exact plan")
	case domain.MatchKeyword:
		return StyleBlue.Render("similar plan")
	default:
		return StylePurple.Render("general plan")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
