package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for the elapsed share of
// a session. The bar turns yellow past two thirds and red when done.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= 1:
		style = StyleRed
	case pct >= 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
