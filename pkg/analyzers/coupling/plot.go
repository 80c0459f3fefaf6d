package coupling

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/terminal"
)

const (
	plotStatsCols = 3
	plotPathWidth = 40
)

// PlotSection builds the coupling section for the HTML report.
func (m *Metrics) PlotSection(_ plotpage.Theme) plotpage.Section {
	if len(m.Entries) == 0 {
		return plotpage.Section{
			Title:    "Hidden Coupling",
			Subtitle: "File pairs that change together",
			Chart:    plotpage.NewText("No coupled file pairs found."),
		}
	}

	cross := 0
	strongest := 0.0

	for _, entry := range m.Entries {
		if entry.CrossDirectory {
			cross++
		}

		if entry.Score > strongest {
			strongest = entry.Score
		}
	}

	grid := plotpage.NewGrid(plotStatsCols,
		plotpage.NewStat("Coupled pairs", strconv.Itoa(len(m.Entries))),
		plotpage.NewStat("Cross-directory", strconv.Itoa(cross)).
			WithTrend("hidden dependencies", plotpage.BadgeError),
		plotpage.NewStat("Strongest link", fmt.Sprintf("%.0f%%", strongest*pctMultiplier)),
	)

	table := plotpage.NewTable([]string{"Score", "File A", "File B", "Shared", "Scope"})
	for _, entry := range m.Entries {
		table.AddRow(
			fmt.Sprintf("%.0f%%", entry.Score*pctMultiplier),
			terminal.TruncatePath(entry.FileA, plotPathWidth),
			terminal.TruncatePath(entry.FileB, plotPathWidth),
			fmt.Sprintf("%d (of %d / %d)", entry.CoCommits, entry.TotalA, entry.TotalB),
			scopeBadgeHTML(entry.CrossDirectory),
		)
	}

	card := plotpage.NewCard("Coupled Pairs", "Cross-directory links first, then by score").
		WithContent(table)

	return plotpage.Section{
		Title:    "Hidden Coupling",
		Subtitle: "File pairs that change together",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: []string{
				"Score is shared commits over the commit count of the rarer file.",
				"Cross-directory pairs often mark a dependency nobody wrote down.",
			},
		},
		Chart: plotpage.NewStack(grid, card),
	}
}

// scopeBadgeHTML renders the pair scope as a badge cell.
func scopeBadgeHTML(cross bool) string {
	label, class := "same dir", plotpage.BadgeInfo
	if cross {
		label, class = "cross-dir", plotpage.BadgeError
	}

	var buf bytes.Buffer
	if err := plotpage.NewBadge(label).WithColor(class).Render(&buf); err != nil {
		return label
	}

	return buf.String()
}
