package components

import (
	"strings"

	"plant/internal/ui/theme"
)

// ProgressBar draws ratio as a fixed-width bar. The ratio is clamped for
// drawing only.
func ProgressBar(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 || ratio != ratio {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return theme.Fill.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", width-filled))
}
