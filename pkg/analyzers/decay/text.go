package decay

import (
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// Text output constants.
const (
	textIndent     = "  "
	textGutter     = "             "
	textPathWidth  = 38
	textPadWidth   = 40
	riskLabelWidth = 7
	dateLayout     = "Jan 02, 2006"
)

// WriteText writes a human-readable decay listing to the writer.
func (m *Metrics) WriteText(writer io.Writer, cfg terminal.Config) error {
	header := terminal.DrawHeader(
		"KNOWLEDGE DECAY",
		fmt.Sprintf("%d files", len(m.Entries)),
		cfg.Width,
	)
	fmt.Fprintln(writer, header)
	fmt.Fprintln(writer)

	if len(m.Entries) == 0 {
		fmt.Fprintf(writer, "%s%s\n\n", textIndent,
			cfg.Colorize("No decaying files found.", terminal.ColorGray))

		return nil
	}

	for _, entry := range m.Entries {
		writeEntry(writer, cfg, entry)
	}

	fmt.Fprintln(writer)

	return nil
}

// writeEntry prints one file as a two-line block.
func writeEntry(writer io.Writer, cfg terminal.Config, entry Entry) {
	riskColor := terminal.ColorYellow
	if entry.Risk == RiskStale {
		riskColor = terminal.ColorRed
	}

	label := cfg.Colorize(terminal.PadRight(entry.Risk.String(), riskLabelWidth), riskColor)
	path := terminal.PadRight(terminal.TruncatePath(entry.Path, textPathWidth), textPadWidth)

	fmt.Fprintf(writer, "%s%s  %s\n", textIndent, label, path)

	activity := cfg.Colorize("still active", terminal.ColorGray)
	if !entry.AuthorActive {
		activity = cfg.Colorize("no longer active", terminal.ColorRed)
	}

	detail := fmt.Sprintf("last: %s, %s (%dd ago)",
		entry.LastAuthor, entry.LastDate.Format(dateLayout), entry.DaysStale)
	fmt.Fprintf(writer, "%s%s %s\n\n", textGutter, cfg.Colorize(detail, terminal.ColorGray), activity)
}
