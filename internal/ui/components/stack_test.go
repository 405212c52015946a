package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackVerticalJoinsLines(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("one"), NewText("two"))
	view := stack.ViewWithContext(DefaultContext())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "one")
	require.Contains(t, lines[1], "two")
}

func TestStackGapInsertsSpacing(t *testing.T) {
	t.Parallel()

	stack := VStack(NewText("one"), NewText("two")).WithGap(1)
	view := stack.ViewWithContext(DefaultContext())
	require.Len(t, strings.Split(view, "\n"), 3)
}

func TestStackHorizontalJoins(t *testing.T) {
	t.Parallel()

	stack := HStack(NewText("left"), NewText("right")).WithGap(2)
	view := stack.ViewWithContext(DefaultContext())
	require.Contains(t, view, "left")
	require.Contains(t, view, "right")
	require.NotContains(t, view, "\n")
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	t.Parallel()

	stack := VStack(nil, NewText(""), NewText("solo"))
	view := stack.ViewWithContext(DefaultContext())
	require.Len(t, strings.Split(view, "\n"), 1)
	require.Contains(t, view, "solo")
}

func TestStackEmptyRendersEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", VStack().ViewWithContext(DefaultContext()))
}

func TestDialogRendersTitleBodyAndButtons(t *testing.T) {
	t.Parallel()

	dialog := ConfirmDialog("Delete view?", "This cannot be undone.")
	view := dialog.ViewWithContext(DefaultContext())
	require.Contains(t, view, "Delete view?")
	require.Contains(t, view, "This cannot be undone.")
	require.Contains(t, view, "Confirm")
	require.Contains(t, view, "Cancel")
}

func TestBadgeCountCapsAt99(t *testing.T) {
	t.Parallel()

	require.Equal(t, "42", CountBadge(42).Text())
	require.Equal(t, "99+", CountBadge(250).Text())
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	button := NewButton("Save").WithDisabled(true)
	require.True(t, button.IsDisabled())
	require.Equal(t, "Save", button.Label())
	require.Contains(t, button.View(), "Save")
}
