package decay

import (
	"strconv"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

const (
	plotStatsCols  = 2
	plotLabelWidth = 30
)

// PlotSection builds the decay chart section for the HTML report.
func (m *Metrics) PlotSection(theme plotpage.Theme) plotpage.Section {
	if len(m.Entries) == 0 {
		return plotpage.Section{
			Title:    "Knowledge Decay",
			Subtitle: "Files without an active maintainer",
			Chart:    plotpage.NewText("No decaying files found."),
		}
	}

	stale, aging := 0, 0

	for _, entry := range m.Entries {
		if entry.Risk == RiskStale {
			stale++
		} else {
			aging++
		}
	}

	grid := plotpage.NewGrid(plotStatsCols,
		plotpage.NewStat("Stale files", strconv.Itoa(stale)).
			WithTrend("maintainer gone", plotpage.BadgeError),
		plotpage.NewStat("Aging files", strconv.Itoa(aging)).
			WithTrend("untouched for months", plotpage.BadgeWarning),
	)

	labels := make([]string, len(m.Entries))
	days := make([]plotpage.SeriesData, len(m.Entries))

	for i, entry := range m.Entries {
		labels[i] = terminal.TruncatePath(entry.Path, plotLabelWidth)
		days[i] = entry.DaysStale
	}

	palette := plotpage.GetChartPalette(theme)
	chart := plotpage.BuildBarChart(
		plotpage.NewChartOpts(theme),
		labels,
		[]plotpage.BarSeries{
			{Name: "Days since last touch", Data: days, Color: palette.Semantic.Warning},
		},
		"days",
	)

	return plotpage.Section{
		Title:    "Knowledge Decay",
		Subtitle: "Files without an active maintainer",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: []string{
				"STALE means the last author has not committed recently anywhere.",
				"AGING means the author is around but the file sat untouched for over six months.",
			},
		},
		Chart: plotpage.NewStack(grid, plotpage.WrapChart(chart)),
	}
}
