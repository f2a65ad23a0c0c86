package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// FormatBreakdown renders a task breakdown: the numbered steps with their
// estimates and tips, then any deadline advice, then the support sections.
func FormatBreakdown(task string, b domain.TaskBreakdown) string {
	var sb strings.Builder

	sb.WriteString(Bold(task) + "  " + MatchBadge(b.Match) + "\n")
	if b.UserContext != "" {
		sb.WriteString(Dim("Context: "+b.UserContext) + "\n")
	}
	sb.WriteString("\n")

	headers := []string{"#", "STEP", "TIME", "TIP"}
	rows := make([][]string, 0, len(b.Steps))
	for i, s := range b.Steps {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			s.Description,
			StyleYellow.Render(s.EstimatedTime + "m"),
			Dim(s.Tip),
		})
	}
	sb.WriteString(RenderTable(headers, rows))
	if total, ok := TotalMinutes(b.Steps); ok {
		sb.WriteString(Dim("Total: ") + Bold(FormatMinutes(total)) + "\n")
	}

	if b.DeadlineContext != "" || b.UrgencyNote != "" {
		sb.WriteString("\n" + Header("Deadlines") + "\n")
		if b.DeadlineContext != "" {
			sb.WriteString(b.DeadlineContext + "\n")
		}
		if b.UrgencyNote != "" {
			sb.WriteString(StyleYellow.Render(b.UrgencyNote) + "\n")
		}
		if len(b.DeadlineTips) > 0 {
			sb.WriteString(Bullets(b.DeadlineTips) + "\n")
		}
	}

	writeSection(&sb, "Focus techniques", b.FocusTechniques)
	writeSection(&sb, "Accommodations", b.Accommodations)
	writeSection(&sb, "Sensory tips", b.SensoryTips)

	if b.Encouragement != "" {
		sb.WriteString("\n" + StylePurple.Render(b.Encouragement) + "\n")
	}
	return sb.String()
}

// TotalMinutes sums the step estimates. ok is false when any estimate is
// not a whole number.
func TotalMinutes(steps []domain.Step) (total int, ok bool) {
	for _, s := range steps {
		n, err := strconv.Atoi(strings.TrimSpace(s.EstimatedTime))
		if err != nil {
			return 0, false
		}
		total += n
	}
	return total, true
}

func writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s\n%s\n", Header(title), Bullets(items))
}
