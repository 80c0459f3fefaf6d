package busfactor

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
)

const plotStatsCols = 3

// PlotSection builds the bus factor section for the HTML report.
func (m *Metrics) PlotSection(_ plotpage.Theme) plotpage.Section {
	if len(m.Entries) == 0 {
		return plotpage.Section{
			Title:    "Bus Factor",
			Subtitle: "Knowledge concentration by directory",
			Chart:    plotpage.NewText("No directories with enough history."),
		}
	}

	critical, warning, ok := m.countByRisk()

	grid := plotpage.NewGrid(plotStatsCols,
		plotpage.NewStat("Critical", strconv.Itoa(critical)).WithTrend("", plotpage.BadgeError),
		plotpage.NewStat("Warning", strconv.Itoa(warning)).WithTrend("", plotpage.BadgeWarning),
		plotpage.NewStat("Healthy", strconv.Itoa(ok)).WithTrend("", plotpage.BadgeSuccess),
	)

	table := plotpage.NewTable([]string{"Directory", "Risk", "Bus Factor", "Commits", "Top Contributor", "Share"})

	for _, entry := range m.Entries {
		top := ""
		share := ""

		if len(entry.TopContributors) > 0 {
			top = entry.TopContributors[0].Name
			share = fmt.Sprintf("%.1f%%", entry.TopContributors[0].Pct)
		}

		table.AddRow(
			entry.Directory,
			riskBadgeHTML(entry.Risk),
			strconv.Itoa(entry.BusFactor),
			strconv.Itoa(entry.TotalCommits),
			top,
			share,
		)
	}

	card := plotpage.NewCard("Directories at Risk", "Minimum authors covering over half of each directory's commits").
		WithContent(table)

	stack := plotpage.NewStack(grid, card)

	if critical > 0 {
		alert := plotpage.NewAlert(
			"Single points of failure",
			fmt.Sprintf("Most changes in %d of %d directories come from a single author.", critical, len(m.Entries)),
			plotpage.BadgeError,
		)
		stack = plotpage.NewStack(grid, alert, card)
	}

	return plotpage.Section{
		Title:    "Bus Factor",
		Subtitle: "Knowledge concentration by directory",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: []string{
				"A bus factor of 1 means one person holds most of the directory's change history.",
				"Only directories with at least 5 commits are assessed.",
			},
		},
		Chart: stack,
	}
}

func (m *Metrics) countByRisk() (critical, warning, ok int) {
	for _, entry := range m.Entries {
		switch entry.Risk {
		case RiskCritical:
			critical++
		case RiskWarning:
			warning++
		case RiskOK:
			ok++
		}
	}

	return critical, warning, ok
}

func riskBadgeHTML(risk Risk) string {
	badge := plotpage.NewBadge(risk.String())

	switch risk {
	case RiskCritical:
		badge.WithColor(plotpage.BadgeError)
	case RiskWarning:
		badge.WithColor(plotpage.BadgeWarning)
	default:
		badge.WithColor(plotpage.BadgeSuccess)
	}

	var buf bytes.Buffer

	if err := badge.Render(&buf); err != nil {
		return risk.String()
	}

	return buf.String()
}
