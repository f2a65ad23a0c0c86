package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Bullets renders one "•" line per item. Empty input renders a dim dash.
func Bullets(items []string) string {
	if len(items) == 0 {
		return Dim("  -")
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = StylePurple.Render("  • ") + item
	}
	return strings.Join(lines, "\n")
}

// HumanTimestampFrom returns a relative timestamp such as "5m ago" measured
// from now, or an absolute date once a day has passed.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock renders a duration as MM:SS, rounding up partial seconds so a
// running countdown never shows 00:00 early.
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
