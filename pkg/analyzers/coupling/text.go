package coupling

import (
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// Text output constants.
const (
	textIndent    = "  "
	textGutter    = "        "
	textPathWidth = 32
	textPctWidth  = 4
	pctMultiplier = 100
)

// WriteText writes a human-readable coupled-pair listing to the writer.
func (m *Metrics) WriteText(writer io.Writer, cfg terminal.Config) error {
	header := terminal.DrawHeader(
		"HIDDEN COUPLING",
		fmt.Sprintf("%d pairs", len(m.Entries)),
		cfg.Width,
	)
	fmt.Fprintln(writer, header)
	fmt.Fprintln(writer)

	if len(m.Entries) == 0 {
		fmt.Fprintf(writer, "%s%s\n\n", textIndent,
			cfg.Colorize("No coupled file pairs found.", terminal.ColorGray))

		return nil
	}

	for _, entry := range m.Entries {
		writeEntry(writer, cfg, entry)
	}

	fmt.Fprintln(writer)

	return nil
}

// writeEntry prints one pair as a three-line block.
func writeEntry(writer io.Writer, cfg terminal.Config, entry Entry) {
	pct := terminal.PadLeft(fmt.Sprintf("%.0f%%", entry.Score*pctMultiplier), textPctWidth)

	pctColor := terminal.ColorYellow
	tag := ""

	if entry.CrossDirectory {
		pctColor = terminal.ColorRed
		tag = " " + cfg.Colorize("(cross-directory!)", terminal.ColorRed)
	}

	fmt.Fprintf(writer, "%s%s  %s\n",
		textIndent,
		cfg.Colorize(pct, pctColor),
		terminal.TruncatePath(entry.FileA, textPathWidth),
	)
	fmt.Fprintf(writer, "%s%s  %s\n",
		textGutter,
		cfg.Colorize("<--->", terminal.ColorGray),
		terminal.TruncatePath(entry.FileB, textPathWidth),
	)

	detail := fmt.Sprintf("%d shared commits  (file A: %d, file B: %d)",
		entry.CoCommits, entry.TotalA, entry.TotalB)
	fmt.Fprintf(writer, "%s%s%s\n\n", textGutter, cfg.Colorize(detail, terminal.ColorGray), tag)
}
