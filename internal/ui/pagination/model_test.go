package pagination

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/logger"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, c())
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestNewDerivesTotalPages(t *testing.T) {
	t.Parallel()

	m := New(97, 10)
	require.Equal(t, 10, m.TotalPages())
	require.Equal(t, 1, m.Page())

	require.Equal(t, 1, New(0, 10).TotalPages())
	require.Equal(t, 1, New(10, 10).TotalPages())
	require.Equal(t, 2, New(11, 10).TotalPages())
}

func TestInitEmitsCorrectionForOutOfRangePage(t *testing.T) {
	t.Parallel()

	m := New(50, 10, WithPage(99))
	require.Equal(t, 5, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 5}}, collect(t, m.Init()))

	require.Nil(t, New(50, 10, WithPage(3)).Init())
}

func TestNavigationEmitsPageChanges(t *testing.T) {
	t.Parallel()

	m := New(50, 10)

	m, cmd := m.Update(keyMsg(tea.KeyRight))
	require.Equal(t, 2, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 2}}, collect(t, cmd))

	m, cmd = m.Update(keyMsg(tea.KeyEnd))
	require.Equal(t, 5, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 5}}, collect(t, cmd))

	_, cmd = m.Update(keyMsg(tea.KeyRight))
	require.Nil(t, cmd)

	m, cmd = m.Update(keyMsg(tea.KeyHome))
	require.Equal(t, 1, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 1}}, collect(t, cmd))

	_, cmd = m.Update(keyMsg(tea.KeyLeft))
	require.Nil(t, cmd)
}

func TestSetPageEmitsOnlyOnCorrection(t *testing.T) {
	t.Parallel()

	m := New(50, 10)

	m, cmd := m.SetPage(4)
	require.Equal(t, 4, m.Page())
	require.Nil(t, cmd)

	m, cmd = m.SetPage(40)
	require.Equal(t, 5, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 5}}, collect(t, cmd))

	m, cmd = m.SetPage(0)
	require.Equal(t, 1, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 1}}, collect(t, cmd))
}

func TestShrinkingItemCountCorrectsPage(t *testing.T) {
	t.Parallel()

	m := New(100, 10, WithPage(10))

	m, cmd := m.SetTotalItems(35)
	require.Equal(t, 4, m.Page())
	require.Equal(t, []tea.Msg{PageChangedMsg{Page: 4}}, collect(t, cmd))

	_, cmd = m.SetTotalItems(31)
	require.Nil(t, cmd)
}

func TestCycleSizeResetsToPageOne(t *testing.T) {
	t.Parallel()

	m := New(100, 10, WithPage(7), WithSizeOptions(10, 25, 50))

	m, cmd := m.Update(runeMsg('s'))
	require.Equal(t, 25, m.PageSize())
	require.Equal(t, 1, m.Page())
	msgs := collect(t, cmd)
	require.Contains(t, msgs, tea.Msg(PageSizeChangedMsg{Size: 25}))
	require.Contains(t, msgs, tea.Msg(PageChangedMsg{Page: 1}))
}

func TestCycleSizeWithoutOptionsIsSilent(t *testing.T) {
	t.Parallel()

	m := New(100, 10)
	m, cmd := m.Update(runeMsg('s'))
	require.Nil(t, cmd)
	require.Equal(t, 10, m.PageSize())
}

func TestBudgetFollowsWidth(t *testing.T) {
	t.Parallel()

	m := New(600, 10, WithPage(30))
	require.Len(t, pages(m.Entries()), DefaultMaxButtons)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 24})
	wide := len(pages(m.Entries()))
	require.Greater(t, wide, DefaultMaxButtons)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 24})
	require.Empty(t, m.Entries())
}

func TestFixedMaxButtonsBypassesWidth(t *testing.T) {
	t.Parallel()

	m := New(600, 10, WithPage(30), WithMaxButtons(5))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 24})
	require.Len(t, pages(m.Entries()), 5)
}

func TestCorrectionsLogRangeErrors(t *testing.T) {
	t.Parallel()

	newLogged := func(t *testing.T) (*logger.Logger, *bytes.Buffer) {
		t.Helper()
		var buf bytes.Buffer
		log, err := logger.New(logger.Options{Level: "warn", Writer: &buf})
		require.NoError(t, err)
		return log, &buf
	}

	t.Run("set page", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogged(t)
		m := New(50, 10, WithLogger(log))
		_, _ = m.SetPage(40)
		require.Contains(t, buf.String(), "range error: page=40 outside [1, 5], clamped to 5")
	})

	t.Run("construction", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogged(t)
		New(50, 10, WithPage(99), WithLogger(log))
		require.Contains(t, buf.String(), "range error: page=99 outside [1, 5], clamped to 5")
	})

	t.Run("shrinking item count", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogged(t)
		m := New(100, 10, WithPage(10), WithLogger(log))
		_, _ = m.SetTotalItems(35)
		require.Contains(t, buf.String(), "range error: page=10 outside [1, 4], clamped to 4")
	})

	t.Run("in-range stays silent", func(t *testing.T) {
		t.Parallel()
		log, buf := newLogged(t)
		m := New(50, 10, WithLogger(log))
		_, _ = m.SetPage(3)
		require.Empty(t, buf.String())
	})
}

func TestViewMarksCurrentPage(t *testing.T) {
	t.Parallel()

	m := New(50, 10, WithPage(3), WithSizeOptions(10, 25))
	view := m.View()
	require.Contains(t, view, "3")
	require.Contains(t, view, "21-30 of 50")
	require.Contains(t, view, "10/page")
}
