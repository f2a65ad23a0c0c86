package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

const sessionProgressBarWidth = 20

// FormatSession renders one session's state as of its clock.
func FormatSession(s *domain.FocusSession) string {
	var sb strings.Builder
	state := s.State()

	sb.WriteString(StatePill(state) + "  " + Bold(string(s.Technique)))
	if s.Task != "" {
		sb.WriteString(Dim("  " + s.Task))
	}
	sb.WriteString("\n")
	sb.WriteString(Dim("ID ") + s.ID + "\n")
	sb.WriteString(Dim("Length ") + FormatMinutes(s.Duration) +
		Dim(", then ") + FormatMinutes(s.BreakDuration) + Dim(" break") + "\n")

	if state == domain.SessionActive || state == domain.SessionExpired {
		total := time.Duration(s.Duration) * time.Minute
		pct := 0.0
		if total > 0 {
			pct = float64(s.Elapsed()) / float64(total)
		}
		sb.WriteString(RenderProgress(pct, sessionProgressBarWidth))
		sb.WriteString("  " + StyleYellow.Render(FormatClock(s.TimeRemaining())) + Dim(" left") + "\n")
	}
	if state == domain.SessionExpired {
		sb.WriteString(StyleGreen.Render(fmt.Sprintf("Time for a %d minute break.", s.BreakDuration)) + "\n")
	}
	return sb.String()
}

// FormatSessionList renders sessions as a table, with ages measured from now.
func FormatSessionList(sessions []*domain.FocusSession, now time.Time) string {
	headers := []string{"ID", "TECHNIQUE", "TASK", "LENGTH", "STATE", "CREATED"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		task := s.Task
		if len(task) > 30 {
			task = task[:27] + "..."
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			string(s.Technique),
			task,
			FormatMinutes(s.Duration),
			StatePill(s.State()),
			Dim(HumanTimestampFrom(s.CreatedAt, now)),
		})
	}
	return RenderTable(headers, rows)
}
