package trend

import (
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
)

const plotAreaOpacity = 0.2

// PlotSection builds the trend chart section for the HTML report.
func (m *Metrics) PlotSection(theme plotpage.Theme) plotpage.Section {
	if len(m.Periods) == 0 {
		return plotpage.Section{
			Title:    "Complexity Trend",
			Subtitle: "Average churn per commit by quarter",
			Chart:    plotpage.NewText("No commit history to bucket."),
		}
	}

	labels := make([]string, len(m.Periods))
	avgs := make([]plotpage.SeriesData, len(m.Periods))
	counts := make([]plotpage.SeriesData, len(m.Periods))

	for i, period := range m.Periods {
		labels[i] = period.Label
		avgs[i] = round2(period.AvgChurn)
		counts[i] = period.CommitCount
	}

	palette := plotpage.GetChartPalette(theme)
	chart := plotpage.BuildLineChart(
		plotpage.NewChartOpts(theme),
		labels,
		[]plotpage.LineSeries{
			{Name: "Avg churn per commit", Data: avgs, Color: palette.Semantic.Warning, AreaOpacity: plotAreaOpacity},
			{Name: "Commits", Data: counts, Color: palette.Primary[0]},
		},
		"",
	)

	hintItems := []string{
		"Churn is added plus deleted lines; the average is per commit within the quarter.",
	}
	if len(m.Periods) >= overallGroups {
		hintItems = append(hintItems, overallHint(Overall(m.Periods)))
	}

	return plotpage.Section{
		Title:    "Complexity Trend",
		Subtitle: "Average churn per commit by quarter",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: hintItems,
		},
		Chart: plotpage.WrapChart(chart),
	}
}

// overallHint words the whole-series verdict for the report page.
func overallHint(direction Direction) string {
	switch direction {
	case DirectionUp:
		return "Overall: complexity is trending up; changes touch more code over time."
	case DirectionDown:
		return "Overall: complexity is trending down; the codebase is getting cleaner."
	default:
		return "Overall: complexity is stable."
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
