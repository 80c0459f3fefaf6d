package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

// jsonIndent is the indentation used for machine-readable JSON output.
const jsonIndent = "  "

// Render writes the report in the requested output format. The format
// is validated and normalized first, so aliases like "html" work.
func (r *Report) Render(writer io.Writer, format string, cfg terminal.Config, theme plotpage.Theme) error {
	normalized, err := analyze.ValidateFormat(format)
	if err != nil {
		return err
	}

	switch normalized {
	case analyze.FormatText:
		return r.WriteText(writer, cfg)
	case analyze.FormatJSON:
		return r.WriteJSON(writer)
	case analyze.FormatYAML:
		return r.WriteYAML(writer)
	case analyze.FormatPlot:
		return r.WritePlot(writer, theme)
	default:
		return fmt.Errorf("%w: %s", analyze.ErrUnsupportedFormat, format)
	}
}

// WriteJSON writes the report as indented JSON with a trailing newline.
func (r *Report) WriteJSON(writer io.Writer) error {
	data, err := json.MarshalIndent(r, "", jsonIndent)
	if err != nil {
		return err
	}

	data = append(data, '\n')

	_, err = writer.Write(data)

	return err
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(writer io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	_, err = writer.Write(data)

	return err
}

// WritePlot writes the report as a standalone HTML dashboard with one
// chart section per enabled analyzer.
func (r *Report) WritePlot(writer io.Writer, theme plotpage.Theme) error {
	page := plotpage.NewPage(r.Summary.Repository, pageDescription(r.Summary)).WithTheme(theme)

	for _, result := range r.results() {
		page.Add(result.PlotSection(theme))
	}

	return page.Render(writer)
}

// pageDescription is the one-line summary under the dashboard title.
func pageDescription(summary Summary) string {
	if summary.TotalCommits == 0 {
		return "No commits analyzed"
	}

	return fmt.Sprintf("%s by %s across %s, %s on branch %s",
		countNoun(summary.TotalCommits, "commit"),
		countNoun(summary.TotalAuthors, "author"),
		countNoun(summary.TotalFiles, "file"),
		countNoun(summary.SpanDays, "day"),
		summary.Branch)
}
