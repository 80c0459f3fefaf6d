package hotspots

import (
	"fmt"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

const plotLabelWidth = 30

// PlotSection builds the hotspot chart section for the HTML report.
func (m *Metrics) PlotSection(theme plotpage.Theme) plotpage.Section {
	if len(m.Hotspots) == 0 {
		return plotpage.Section{
			Title:    "Hotspots",
			Subtitle: "Files with the highest change frequency and churn",
			Chart:    plotpage.NewText("No hotspots found."),
		}
	}

	labels := make([]string, len(m.Hotspots))
	risks := make([]plotpage.SeriesData, len(m.Hotspots))
	commits := make([]plotpage.SeriesData, len(m.Hotspots))

	for i, h := range m.Hotspots {
		labels[i] = terminal.TruncatePath(h.Path, plotLabelWidth)
		if h.Language != "" {
			labels[i] = fmt.Sprintf("%s (%s)", labels[i], h.Language)
		}

		risks[i] = round2(h.RiskScore * 100)
		commits[i] = h.CommitCount
	}

	palette := plotpage.GetChartPalette(theme)
	chart := plotpage.BuildBarChart(
		plotpage.NewChartOpts(theme),
		labels,
		[]plotpage.BarSeries{
			{Name: "Risk score (%)", Data: risks, Color: palette.Semantic.Bad},
			{Name: "Commits", Data: commits, Color: palette.Primary[1]},
		},
		"",
	)

	return plotpage.Section{
		Title:    "Hotspots",
		Subtitle: "Files with the highest change frequency and churn",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: []string{
				"Risk blends change frequency (60%) with log-scaled churn (40%).",
				fmt.Sprintf("Showing the top %d files. Lockfiles and minified assets are excluded.", len(m.Hotspots)),
			},
		},
		Chart: plotpage.WrapChart(chart),
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
