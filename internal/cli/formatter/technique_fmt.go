package formatter

import (
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

func FormatTechniqueList(entries []domain.TechniqueEntry) string {
	headers := []string{"ID", "NAME", "WORK", "BREAK"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			StyleBlue.Render(string(e.ID)),
			Bold(e.Name),
			FormatMinutes(e.Duration),
			Dim(FormatMinutes(e.BreakDuration)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTechnique renders one catalog entry with its support lists.
func FormatTechnique(e domain.TechniqueEntry) string {
	var sb strings.Builder
	sb.WriteString(Bold(e.Name) + Dim("  ("+string(e.ID)+")") + "\n")
	sb.WriteString(e.Description + "\n\n")
	sb.WriteString(Dim("Work ") + StyleYellow.Render(FormatMinutes(e.Duration)) +
		Dim("  Break ") + StyleGreen.Render(FormatMinutes(e.BreakDuration)) + "\n")
	writeSection(&sb, "Accommodations", e.Accommodations)
	writeSection(&sb, "Sensory considerations", e.SensoryConsiderations)
	return sb.String()
}
