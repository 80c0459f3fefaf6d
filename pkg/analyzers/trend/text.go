package trend

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// Text output constants.
const (
	textIndent   = "  "
	textBarWidth = 15
)

// WriteText writes a human-readable quarterly trend to the writer.
func (m *Metrics) WriteText(writer io.Writer, cfg terminal.Config) error {
	header := terminal.DrawHeader(
		"COMPLEXITY TREND",
		fmt.Sprintf("%d quarters", len(m.Periods)),
		cfg.Width,
	)
	fmt.Fprintln(writer, header)
	fmt.Fprintln(writer)

	if len(m.Periods) == 0 {
		fmt.Fprintf(writer, "%s%s\n\n", textIndent,
			cfg.Colorize("No commit history to bucket.", terminal.ColorGray))

		return nil
	}

	maxAvg := 0.0

	for _, period := range m.Periods {
		if period.AvgChurn > maxAvg {
			maxAvg = period.AvgChurn
		}
	}

	if maxAvg == 0 {
		maxAvg = 1
	}

	for _, period := range m.Periods {
		writePeriod(writer, cfg, period, maxAvg)
	}

	if len(m.Periods) >= overallGroups {
		writeOverall(writer, cfg, Overall(m.Periods))
	}

	fmt.Fprintln(writer)

	return nil
}

// writePeriod prints one quarter as a single bar row.
func writePeriod(writer io.Writer, cfg terminal.Config, period Period, maxAvg float64) {
	bar := terminal.DrawProgressBar(period.AvgChurn/maxAvg, textBarWidth)

	var arrow string

	switch period.Direction {
	case DirectionUp:
		arrow = cfg.Colorize(" ^", terminal.ColorRed)
	case DirectionDown:
		arrow = cfg.Colorize(" v", terminal.ColorGreen)
	default:
		arrow = "  "
	}

	avg := humanize.Comma(int64(math.Round(period.AvgChurn)))
	commits := fmt.Sprintf("(%s)", plural(period.CommitCount, "commit"))

	fmt.Fprintf(writer, "%s%s  %s  avg %s lines/commit %s%s\n",
		textIndent,
		cfg.Colorize(period.Label, terminal.ColorGray),
		bar,
		avg,
		cfg.Colorize(commits, terminal.ColorGray),
		arrow,
	)
}

// writeOverall prints the whole-series verdict under the quarter rows.
func writeOverall(writer io.Writer, cfg terminal.Config, direction Direction) {
	fmt.Fprintln(writer)

	switch direction {
	case DirectionUp:
		fmt.Fprintf(writer, "%s%s Changes touch more code over time.\n", textIndent,
			cfg.Colorize(">> Complexity is trending UP.", terminal.ColorRed))
	case DirectionDown:
		fmt.Fprintf(writer, "%s%s Codebase is getting cleaner.\n", textIndent,
			cfg.Colorize(">> Complexity is trending DOWN.", terminal.ColorGreen))
	default:
		fmt.Fprintf(writer, "%s%s\n", textIndent,
			cfg.Colorize(">> Complexity is stable.", terminal.ColorGray))
	}
}

// plural formats a count with its unit.
func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), unit)
}
