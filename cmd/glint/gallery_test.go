package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/ui/components"
	"github.com/glintui/glint/internal/ui/viewswitcher"
)

func testGallery() galleryModel {
	return newGalleryModel(components.DefaultTheme(), nil)
}

func TestArrowKeysPageWithoutSwitchingSections(t *testing.T) {
	t.Parallel()

	m := testGallery()
	m.active = sectionPagination

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	g := next.(galleryModel)

	require.Equal(t, sectionPagination, g.active)
	require.Equal(t, sectionWidgets, g.switcher.Active())
	require.Equal(t, 2, g.pager.Page())
	require.NotNil(t, cmd)
}

func TestTabSwitchesSectionWithoutPaging(t *testing.T) {
	t.Parallel()

	m := testGallery()
	m.active = sectionPagination

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	g := next.(galleryModel)

	require.Equal(t, 1, g.pager.Page())
	require.Equal(t, sectionPagination, g.switcher.Active())
	require.NotNil(t, cmd)
	require.Equal(t, viewswitcher.SelectMsg{ID: sectionPagination}, cmd())
}

func TestArrowKeysIgnoredOutsidePagination(t *testing.T) {
	t.Parallel()

	m := testGallery()

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	g := next.(galleryModel)

	require.Nil(t, cmd)
	require.Equal(t, sectionWidgets, g.switcher.Active())
	require.Equal(t, 1, g.pager.Page())
}

func TestSectionViewsRender(t *testing.T) {
	t.Parallel()

	m := testGallery()
	ctx := components.DefaultContext().WithTheme(m.theme)

	require.NotEmpty(t, m.widgetsView(ctx))
	require.Contains(t, m.passwordView(ctx), "press i to type")
	require.NotEmpty(t, m.paginationView(ctx))
	require.NotEmpty(t, m.dialogView(ctx))
}
