package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
	"github.com/Sumatoshi-tech/gitxray/pkg/version"
)

// Text output constants.
const (
	textIndent = "  "
	dateLayout = "Jan 02, 2006"
	dotSep     = "  ·  "
)

// projectURL is printed in the report footer.
const projectURL = "github.com/Sumatoshi-tech/gitxray"

// WriteText renders the report for a terminal: a summary banner, each
// enabled section in display order and a closing footer.
func (r *Report) WriteText(writer io.Writer, cfg terminal.Config) error {
	r.writeBanner(writer, cfg)

	for _, result := range r.results() {
		if err := result.WriteText(writer, cfg); err != nil {
			return err
		}
	}

	r.writeFooter(writer, cfg)

	return nil
}

// writeBanner prints the report header with the repository totals.
func (r *Report) writeBanner(writer io.Writer, cfg terminal.Config) {
	line := terminal.DrawSeparator(cfg.Width)
	summary := r.Summary

	fmt.Fprintln(writer)
	fmt.Fprintln(writer, line)
	fmt.Fprintf(writer, "%s%s%s\n", textIndent,
		cfg.Colorize("GITXRAY", terminal.ColorCyan),
		cfg.Colorize("  "+version.Version, terminal.ColorGray))
	fmt.Fprintf(writer, "%s%s%s%s\n", textIndent,
		summary.Repository,
		cfg.Colorize(dotSep, terminal.ColorGray),
		cfg.Colorize(summary.Branch, terminal.ColorGray))
	fmt.Fprintf(writer, "%s%s%s%s%s%s\n", textIndent,
		countNoun(summary.TotalCommits, "commit"),
		cfg.Colorize(dotSep, terminal.ColorGray),
		countNoun(summary.TotalAuthors, "author"),
		cfg.Colorize(dotSep, terminal.ColorGray),
		countNoun(summary.TotalFiles, "file"))

	if summary.TotalCommits > 0 {
		fmt.Fprintf(writer, "%s%s - %s %s\n", textIndent,
			summary.FirstDate.Format(dateLayout),
			summary.LastDate.Format(dateLayout),
			cfg.Colorize(fmt.Sprintf("(%s days)", humanize.Comma(int64(summary.SpanDays))), terminal.ColorGray))
	}

	fmt.Fprintln(writer, line)
	fmt.Fprintln(writer)

	r.writeLanguages(writer, cfg)
}

// writeLanguages prints the language breakdown as a compact borderless
// table, with the full repository file count as the footer.
func (r *Report) writeLanguages(writer io.Writer, cfg terminal.Config) {
	if len(r.Summary.Languages) == 0 {
		return
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"LANGUAGE", "FILES"})

	for _, stat := range r.Summary.Languages {
		tbl.AppendRow(table.Row{stat.Language, humanize.Comma(int64(stat.Files))})
	}

	tbl.AppendFooter(table.Row{"TOTAL", humanize.Comma(int64(r.Summary.TotalFiles))})

	for _, line := range strings.Split(tbl.Render(), "\n") {
		fmt.Fprintf(writer, "%s%s\n", textIndent, cfg.Colorize(line, terminal.ColorGray))
	}

	fmt.Fprintln(writer)
}

// writeFooter prints the closing line with the project reference.
func (r *Report) writeFooter(writer io.Writer, cfg terminal.Config) {
	fmt.Fprintln(writer, terminal.DrawSeparator(cfg.Width))
	fmt.Fprintf(writer, "%s%s\n\n", textIndent,
		cfg.Colorize("gitxray"+dotSep+projectURL, terminal.ColorGray))
}

// countNoun formats a count with its pluralized noun, like "3 commits".
func countNoun(count int, noun string) string {
	formatted := humanize.Comma(int64(count))
	if count == 1 {
		return formatted + " " + noun
	}

	return formatted + " " + noun + "s"
}
