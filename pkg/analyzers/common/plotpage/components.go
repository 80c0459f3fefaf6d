package plotpage

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// BadgeClass selects the semantic color of badges, stat trends and alerts.
type BadgeClass string

// Badge color classes.
const (
	BadgeSuccess BadgeClass = "badge-success"
	BadgeInfo    BadgeClass = "badge-info"
	BadgeWarning BadgeClass = "badge-warning"
	BadgeError   BadgeClass = "badge-error"
)

// Text is a plain paragraph component.
type Text struct {
	text string
}

// NewText creates a paragraph component with escaped text.
func NewText(text string) *Text {
	return &Text{text: text}
}

// Render writes the paragraph HTML.
func (t *Text) Render(w io.Writer) error {
	return writeComponent(w, "text.html", struct{ Text string }{Text: t.text})
}

// Stat is a labeled value tile, optionally with a trend annotation.
type Stat struct {
	label      string
	value      string
	trend      string
	trendClass BadgeClass
}

// NewStat creates a stat tile.
func NewStat(label, value string) *Stat {
	return &Stat{label: label, value: value}
}

// WithTrend attaches a trend annotation colored by class.
func (s *Stat) WithTrend(trend string, class BadgeClass) *Stat {
	s.trend = trend
	s.trendClass = class

	return s
}

// Render writes the stat HTML.
func (s *Stat) Render(w io.Writer) error {
	return writeComponent(w, "stat.html", statData{
		Label:      s.label,
		Value:      s.value,
		Trend:      s.trend,
		TrendClass: string(s.trendClass),
	})
}

// Grid lays out components in equal columns.
type Grid struct {
	cols  int
	items []Renderable
}

// NewGrid creates a grid with the given column count.
func NewGrid(cols int, items ...Renderable) *Grid {
	return &Grid{cols: cols, items: items}
}

// Render writes the grid HTML with all items rendered inside.
func (g *Grid) Render(w io.Writer) error {
	rendered := make([]template.HTML, 0, len(g.items))

	for _, item := range g.items {
		html, err := renderComponent(item)
		if err != nil {
			return err
		}

		rendered = append(rendered, html)
	}

	return writeComponent(w, "grid.html", gridData{
		ColClass: fmt.Sprintf("grid-cols-%d", g.cols),
		Gap:      "gap-4",
		Items:    rendered,
	})
}

// Card is a titled surface wrapping arbitrary content.
type Card struct {
	title    string
	subtitle string
	content  Renderable
}

// NewCard creates a card with a title and subtitle.
func NewCard(title, subtitle string) *Card {
	return &Card{title: title, subtitle: subtitle}
}

// WithContent sets the card body.
func (c *Card) WithContent(content Renderable) *Card {
	c.content = content

	return c
}

// Render writes the card HTML.
func (c *Card) Render(w io.Writer) error {
	var body template.HTML

	if c.content != nil {
		html, err := renderComponent(c.content)
		if err != nil {
			return err
		}

		body = html
	}

	return writeComponent(w, "card.html", cardData{
		Title:    c.title,
		Subtitle: c.subtitle,
		Content:  body,
	})
}

// Badge is a small colored pill label.
type Badge struct {
	text  string
	class BadgeClass
}

// NewBadge creates a badge with neutral coloring.
func NewBadge(text string) *Badge {
	return &Badge{text: text, class: BadgeInfo}
}

// WithColor sets the badge color class.
func (b *Badge) WithColor(class BadgeClass) *Badge {
	b.class = class

	return b
}

// Render writes the badge HTML.
func (b *Badge) Render(w io.Writer) error {
	return writeComponent(w, "badge.html", badgeData{
		Text:    b.text,
		Classes: string(b.class),
	})
}

// Alert is a highlighted callout with a title and message.
type Alert struct {
	title   string
	message string
	class   BadgeClass
}

// NewAlert creates an alert colored by class.
func NewAlert(title, message string, class BadgeClass) *Alert {
	return &Alert{title: title, message: message, class: class}
}

// Render writes the alert HTML.
func (a *Alert) Render(w io.Writer) error {
	return writeComponent(w, "alert.html", alertData{
		Title:   a.title,
		Message: a.message,
		Classes: string(a.class),
	})
}

// Table is a striped data table. Cell values are trusted HTML so callers
// can embed badges.
type Table struct {
	headers []string
	rows    [][]template.HTML
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Cells are rendered as-is, without escaping.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]template.HTML, len(cells))
	for i, cell := range cells {
		row[i] = template.HTML(cell)
	}

	t.rows = append(t.rows, row)

	return t
}

// Render writes the table HTML.
func (t *Table) Render(w io.Writer) error {
	return writeComponent(w, "table.html", tableData{
		Headers: t.headers,
		Rows:    t.rows,
		Striped: true,
	})
}

// Stack renders several components in sequence as one section body.
type Stack struct {
	items []Renderable
}

// NewStack creates a stack of components rendered in order.
func NewStack(items ...Renderable) *Stack {
	return &Stack{items: items}
}

// Render writes each component in order, separated by a spacing div.
func (s *Stack) Render(w io.Writer) error {
	for i, item := range s.items {
		if i > 0 {
			if _, err := io.WriteString(w, `<div class="mt-6"></div>`); err != nil {
				return fmt.Errorf("writing spacer: %w", err)
			}
		}

		if err := item.Render(w); err != nil {
			return err
		}
	}

	return nil
}

func renderComponent(r Renderable) (template.HTML, error) {
	var buf bytes.Buffer

	if err := r.Render(&buf); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

func writeComponent(w io.Writer, name string, data any) error {
	html, err := renderTemplate(name, data)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, string(html)); err != nil {
		return fmt.Errorf("writing component: %w", err)
	}

	return nil
}
