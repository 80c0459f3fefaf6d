package terminal

import "github.com/fatih/color"

// Color names a semantic highlight role for report text.
type Color int

// Color constants
const (
	ColorNone Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorCyan
	ColorGray
)

// Risk thresholds for color assignment. Scores are 0-1 with higher
// meaning riskier.
const (
	RiskThresholdHigh   = 0.7
	RiskThresholdMedium = 0.4
)

var colorAttrs = map[Color]color.Attribute{
	ColorGreen:  color.FgGreen,
	ColorYellow: color.FgYellow,
	ColorRed:    color.FgRed,
	ColorBlue:   color.FgBlue,
	ColorCyan:   color.FgCyan,
	ColorGray:   color.FgHiBlack,
}

// Colorize wraps text in ANSI codes for the given color. If NoColor is set
// the text passes through unchanged. Color is forced on otherwise, so piped
// output honors the config decision instead of the tty detection inside the
// color package.
func (c Config) Colorize(text string, col Color) string {
	if c.NoColor {
		return text
	}

	attr, ok := colorAttrs[col]
	if !ok {
		return text
	}

	painter := color.New(attr)
	painter.EnableColor()

	return painter.Sprint(text)
}

// ColorForRisk returns the appropriate color for a 0-1 risk score.
func ColorForRisk(score float64) Color {
	if score >= RiskThresholdHigh {
		return ColorRed
	}

	if score >= RiskThresholdMedium {
		return ColorYellow
	}

	return ColorGreen
}
