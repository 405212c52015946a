package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func plainContext() RenderContext {
	return DefaultContext()
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	t.Parallel()

	table := NewTable(
		Column{Title: "Name"},
		Column{Title: "Status"},
	).
		AddRow("alpha", "active").
		AddRow("beta", "stopped")

	view := table.ViewWithContext(plainContext())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[0], "Status")
	require.Contains(t, lines[1], "alpha")
	require.Contains(t, lines[2], "beta")
}

func TestTableEmptyWithoutColumns(t *testing.T) {
	t.Parallel()

	table := (&Table{}).AddRow("orphan")
	require.Equal(t, "", table.ViewWithContext(plainContext()))
}

func TestTableMissingCellsRenderEmpty(t *testing.T) {
	t.Parallel()

	table := NewTable(
		Column{Title: "A", Width: 5},
		Column{Title: "B", Width: 5},
	).AddRow("only")

	view := table.ViewWithContext(plainContext())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], "only")
}

func TestTableAutoSizesToWidestCell(t *testing.T) {
	t.Parallel()

	table := NewTable(Column{Title: "N"}).
		AddRow("a-much-longer-value")

	view := table.ViewWithContext(plainContext())
	lines := strings.Split(view, "\n")
	require.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width("a-much-longer-value"))
}

func TestTableTruncatesToMaxWidth(t *testing.T) {
	t.Parallel()

	table := NewTable(
		Column{Title: "Key", Width: 8},
		Column{Title: "Value", Width: 30},
	).
		AddRow("k1", strings.Repeat("x", 30)).
		WithMaxWidth(24)

	view := table.ViewWithContext(plainContext())
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 24)
	}
}

func TestTableMaxWidthNeverShrinksBelowMinimum(t *testing.T) {
	t.Parallel()

	table := NewTable(
		Column{Title: "A", Width: 10},
		Column{Title: "B", Width: 10},
	).WithMaxWidth(4)

	// Budget is unsatisfiable; columns stop at the 3-cell floor rather
	// than collapsing entirely.
	view := table.ViewWithContext(plainContext())
	require.NotEmpty(t, view)
	for _, line := range strings.Split(view, "\n") {
		require.GreaterOrEqual(t, lipgloss.Width(line), 3)
	}
}
