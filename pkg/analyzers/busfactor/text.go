package busfactor

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// Text output constants.
const (
	textIndent       = "  "
	textDirWidth     = 35
	textBarWidth     = 40
	textLegendNames  = 4
	textHandleWidth  = 12
	riskLabelWidth   = 8
	legendSeparator  = " · "
	contribBarGutter = "             "
)

// WriteText writes a human-readable bus factor report to the writer.
func (m *Metrics) WriteText(writer io.Writer, cfg terminal.Config) error {
	header := terminal.DrawHeader(
		"BUS FACTOR",
		fmt.Sprintf("%d directories", len(m.Entries)),
		cfg.Width,
	)
	fmt.Fprintln(writer, header)
	fmt.Fprintln(writer)

	if len(m.Entries) == 0 {
		fmt.Fprintf(writer, "%s%s\n\n", textIndent,
			cfg.Colorize("No directories with enough history.", terminal.ColorGray))

		return nil
	}

	for _, entry := range m.Entries {
		writeEntry(writer, cfg, entry)
	}

	return nil
}

func writeEntry(writer io.Writer, cfg terminal.Config, entry Entry) {
	dir := terminal.TruncatePath(entry.Directory, textDirWidth)

	fmt.Fprintf(writer, "%s%s  %s  %s\n",
		textIndent,
		riskLabel(cfg, entry.Risk),
		terminal.PadRight(dir, textDirWidth),
		cfg.Colorize(fmt.Sprintf("bus factor: %d", entry.BusFactor), terminal.ColorGray),
	)

	shares := make([]float64, len(entry.TopContributors))
	for i, c := range entry.TopContributors {
		shares[i] = c.Pct / pctMultiplier
	}

	fmt.Fprintf(writer, "%s%s\n", contribBarGutter, terminal.DrawStackedBar(shares, textBarWidth))
	fmt.Fprintf(writer, "%s%s\n\n", contribBarGutter, legend(cfg, entry.TopContributors))
}

func riskLabel(cfg terminal.Config, risk Risk) string {
	label := terminal.PadRight(risk.String(), riskLabelWidth)

	switch risk {
	case RiskCritical:
		return cfg.Colorize(label, terminal.ColorRed)
	case RiskWarning:
		return cfg.Colorize(label, terminal.ColorYellow)
	default:
		return cfg.Colorize(label, terminal.ColorGreen)
	}
}

// legend lists the leading contributors as short email handles with their
// share of the directory's commits.
func legend(cfg terminal.Config, contributors []Contributor) string {
	parts := make([]string, 0, textLegendNames)

	for _, c := range contributors[:min(textLegendNames, len(contributors))] {
		parts = append(parts, fmt.Sprintf("%s %s",
			handle(c.Email),
			cfg.Colorize(fmt.Sprintf("%.0f%%", c.Pct), terminal.ColorGray),
		))
	}

	return strings.Join(parts, legendSeparator)
}

func handle(email string) string {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	if len(name) > textHandleWidth {
		name = name[:textHandleWidth-1] + "."
	}

	return name
}
