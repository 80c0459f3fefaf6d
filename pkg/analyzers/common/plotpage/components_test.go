package plotpage_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/common/plotpage"
)

func renderToString(t *testing.T, r plotpage.Renderable) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf))

	return buf.String()
}

func TestText_EscapesContent(t *testing.T) {
	t.Parallel()

	html := renderToString(t, plotpage.NewText("a < b"))

	require.Contains(t, html, "a &lt; b")
}

func TestStat_WithTrend(t *testing.T) {
	t.Parallel()

	stat := plotpage.NewStat("Commits", "1,204").WithTrend("+12%", plotpage.BadgeSuccess)
	html := renderToString(t, stat)

	require.Contains(t, html, "Commits")
	require.Contains(t, html, "1,204")
	require.Contains(t, html, "+12%")
	require.Contains(t, html, "badge-success")
}

func TestBadge_WithColor(t *testing.T) {
	t.Parallel()

	badge := plotpage.NewBadge("CRITICAL").WithColor(plotpage.BadgeError)
	html := renderToString(t, badge)

	require.Contains(t, html, "CRITICAL")
	require.Contains(t, html, "badge-error")
}

func TestGrid_RendersAllItems(t *testing.T) {
	t.Parallel()

	grid := plotpage.NewGrid(3,
		plotpage.NewStat("A", "1"),
		plotpage.NewStat("B", "2"),
		plotpage.NewStat("C", "3"),
	)
	html := renderToString(t, grid)

	require.Contains(t, html, "grid-cols-3")

	for _, label := range []string{"A", "B", "C"} {
		require.Contains(t, html, label)
	}
}

func TestCard_WithTableContent(t *testing.T) {
	t.Parallel()

	table := plotpage.NewTable([]string{"Path", "Risk"})
	table.AddRow("pkg/core/engine.go", `<span class="badge badge-error">HIGH</span>`)

	card := plotpage.NewCard("Hotspots", "Files ranked by churn").WithContent(table)
	html := renderToString(t, card)

	require.Contains(t, html, "Hotspots")
	require.Contains(t, html, "Files ranked by churn")
	require.Contains(t, html, "pkg/core/engine.go")
	// Cells carry trusted HTML, badges must come through unescaped.
	require.Contains(t, html, `<span class="badge badge-error">HIGH</span>`)
}

func TestAlert_Classes(t *testing.T) {
	t.Parallel()

	alert := plotpage.NewAlert("Bus Factor Warning", "3 directories depend on a single author.", plotpage.BadgeWarning)
	html := renderToString(t, alert)

	require.Contains(t, html, "Bus Factor Warning")
	require.Contains(t, html, "badge-warning")
}

func TestPage_Render(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("acme-api", "Maintenance risk report")
	page.Add(plotpage.Section{
		Title:    "Hotspots",
		Subtitle: "Top files by risk",
		Hint: plotpage.Hint{
			Title: "How to read",
			Items: []string{"Higher bars change more often."},
		},
		Chart: plotpage.NewText("no data"),
	})

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))

	html := buf.String()
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "acme-api")
	require.Contains(t, html, `class="dark"`)
	require.Contains(t, html, "Hotspots")
	require.Contains(t, html, "How to read")
}

func TestPage_LightTheme(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("acme-api", "").WithTheme(plotpage.ThemeLight)

	var buf bytes.Buffer

	require.NoError(t, page.Render(&buf))
	require.NotContains(t, buf.String(), `class="dark"`)
}
