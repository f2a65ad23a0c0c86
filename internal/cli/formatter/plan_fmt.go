package formatter

import (
	"strings"

	"github.com/alexanderramin/focuscoach/internal/domain"
)

// FormatPlan renders a personalized plan.
func FormatPlan(p domain.PlanResult) string {
	var sb strings.Builder

	name := string(p.Technique)
	if p.TechniqueInfo.Name != "" {
		name = p.TechniqueInfo.Name
	}
	sb.WriteString(Bold(p.Task) + "\n\n")
	sb.WriteString(Dim("Technique  ") + StyleBlue.Render(name) + "\n")
	sb.WriteString(Dim("Session    ") + StyleYellow.Render(FormatMinutes(p.SessionDuration)) +
		Dim(" work, ") + StyleGreen.Render(FormatMinutes(p.BreakDuration)) + Dim(" break") + "\n")
	if p.TechniqueInfo.Description != "" {
		sb.WriteString(Dim(p.TechniqueInfo.Description) + "\n")
	}

	writeSection(&sb, "Accommodations", p.Accommodations)
	writeSection(&sb, "Sensory tips", p.SensoryTips)

	if p.Encouragement != "" {
		sb.WriteString("\n" + StylePurple.Render(p.Encouragement) + "\n")
	}
	return sb.String()
}
