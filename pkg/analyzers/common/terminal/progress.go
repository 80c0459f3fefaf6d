package terminal

import "strings"

// Progress bar characters.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// DrawProgressBar draws a progress bar of the given width.
// Value is clamped to [0, 1] range.
// Example: DrawProgressBar(0.7, 10) returns "███████░░░".
func DrawProgressBar(value float64, width int) string {
	// Clamp value to [0, 1].
	if value < 0 {
		value = 0
	}

	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	empty := width - filled

	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, empty)
}

// Stacked bar shades, darkest first. Segments beyond the palette reuse
// the lightest shade.
var stackedShades = []string{"█", "▓", "▒", "░"}

// DrawStackedBar draws a single bar split into proportional segments,
// one shade per segment. Shares are fractions of the whole bar; any
// remainder is left blank.
// Example: DrawStackedBar([]float64{0.5, 0.3}, 10) returns "█████▓▓▓  ".
func DrawStackedBar(shares []float64, width int) string {
	var b strings.Builder

	used := 0
	for i, share := range shares {
		if share < 0 {
			share = 0
		}

		cells := int(share * float64(width))
		if used+cells > width {
			cells = width - used
		}

		shade := stackedShades[min(i, len(stackedShades)-1)]
		b.WriteString(strings.Repeat(shade, cells))
		used += cells
	}

	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}

	return b.String()
}
