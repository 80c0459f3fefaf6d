package hotspots

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// Text output constants.
const (
	textIndent    = "  "
	textBarWidth  = 10
	textPathWidth = 42
	textLangWidth = 10
)

// WriteText writes a human-readable hotspot ranking to the writer.
func (m *Metrics) WriteText(writer io.Writer, cfg terminal.Config) error {
	header := terminal.DrawHeader(
		"HOTSPOTS",
		fmt.Sprintf("%d files", len(m.Hotspots)),
		cfg.Width,
	)
	fmt.Fprintln(writer, header)
	fmt.Fprintln(writer)

	if len(m.Hotspots) == 0 {
		fmt.Fprintf(writer, "%s%s\n\n", textIndent,
			cfg.Colorize("No hotspots found.", terminal.ColorGray))

		return nil
	}

	fmt.Fprintf(writer, "%s%s\n", textIndent, cfg.Colorize(
		fmt.Sprintf("%-*s %-*s %7s  %-*s %s",
			textBarWidth, "RISK", textPathWidth, "FILE", "COMMITS", textLangWidth, "LANG", "CHURN"),
		terminal.ColorGray))
	fmt.Fprintf(writer, "%s%s\n", textIndent, terminal.DrawSeparator(cfg.Width-len(textIndent)*2))

	for _, h := range m.Hotspots {
		bar := terminal.DrawProgressBar(h.RiskScore, textBarWidth)
		path := terminal.TruncatePath(h.Path, textPathWidth)
		lang := terminal.PadRight(terminal.TruncateWithEllipsis(h.Language, textLangWidth), textLangWidth)
		churn := fmt.Sprintf("+%s/-%s", humanize.Comma(int64(h.Additions)), humanize.Comma(int64(h.Deletions)))

		fmt.Fprintf(writer, "%s%s %s %7d  %s %s\n",
			textIndent,
			bar,
			cfg.Colorize(terminal.PadRight(path, textPathWidth), terminal.ColorForRisk(h.RiskScore)),
			h.CommitCount,
			cfg.Colorize(lang, terminal.ColorGray),
			cfg.Colorize(churn, terminal.ColorGray),
		)
	}

	fmt.Fprintln(writer)

	return nil
}
