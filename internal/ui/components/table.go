package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Column describes a table column. A zero Width sizes the column to its
// widest cell.
type Column struct {
	Title string
	Width int
	Align Alignment
}

// Table renders tabular data with a header row, optional row striping and
// cell truncation. Rows hold plain strings; callers style values before
// insertion if they need per-cell colour.
type Table struct {
	BaseComponent
	columns  []Column
	rows     [][]string
	striped  bool
	maxWidth int
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		BaseComponent: NewBaseComponent(),
		columns:       columns,
	}
}

// AddRow appends a data row. Missing cells render empty; extra cells are
// dropped.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetRows replaces all data rows.
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = rows
	return t
}

// WithStriped enables alternate-row shading.
func (t *Table) WithStriped(striped bool) *Table {
	t.striped = striped
	return t
}

// WithMaxWidth bounds the table's total width. Columns shrink right to left
// to fit, never below 3 cells.
func (t *Table) WithMaxWidth(width int) *Table {
	t.maxWidth = width
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Table) WithAppliers(appliers ...StyleFunc) *Table {
	t.AddAppliers(appliers...)
	return t
}

// View renders the table with the default theme.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table against the given context.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths(ctx)

	headerStyle := TypographyStyle(ctx.Theme, TypographyVariantEmphasis)
	stripeStyle := lipgloss.NewStyle().Background(ctx.Theme.Palette.Surface.Muted)

	var b strings.Builder
	b.WriteString(t.renderRow(headerTitles(t.columns), widths, headerStyle))
	for i, row := range t.rows {
		b.WriteString("\n")
		style := lipgloss.NewStyle()
		if t.striped && i%2 == 1 {
			style = stripeStyle
		}
		b.WriteString(t.renderRow(row, widths, style))
	}

	return t.ComputeStyle(ctx.Theme).Render(b.String())
}

func headerTitles(columns []Column) []string {
	titles := make([]string, len(columns))
	for i, column := range columns {
		titles[i] = column.Title
	}
	return titles
}

func (t *Table) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(t.columns))
	for i := range t.columns {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		value = truncate.StringWithTail(value, uint(widths[i]), "…")
		cell := lipgloss.NewStyle().
			Width(widths[i]).
			Align(t.columns[i].Align.toLipglossPosition()).
			Render(value)
		parts[i] = style.Render(cell)
	}
	return strings.Join(parts, "  ")
}

// columnWidths resolves each column's width: explicit width, else the widest
// cell, then shrunk right to left when a max width applies.
func (t *Table) columnWidths(ctx RenderContext) []int {
	widths := make([]int, len(t.columns))
	for i, column := range t.columns {
		width := column.Width
		if width <= 0 {
			width = lipgloss.Width(column.Title)
			for _, row := range t.rows {
				if i < len(row) {
					if cellWidth := lipgloss.Width(row[i]); cellWidth > width {
						width = cellWidth
					}
				}
			}
		}
		widths[i] = width
	}

	budget := t.maxWidth
	if budget <= 0 && ctx.Constraints.MaxWidth > 0 {
		budget = ctx.Constraints.MaxWidth
	}
	if budget <= 0 {
		return widths
	}

	const minColumnWidth = 3
	gaps := 2 * (len(t.columns) - 1)
	for i := len(widths) - 1; i >= 0; i-- {
		total := gaps
		for _, w := range widths {
			total += w
		}
		if total <= budget {
			break
		}
		excess := total - budget
		shrinkable := widths[i] - minColumnWidth
		if shrinkable <= 0 {
			continue
		}
		widths[i] -= min(shrinkable, excess)
	}

	return widths
}
