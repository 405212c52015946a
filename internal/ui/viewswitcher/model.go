package viewswitcher

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/ui/components"
)

// SelectMsg is emitted when the active view changes.
type SelectMsg struct {
	ID string
}

// Model is the bubbletea model for the view switcher.
type Model struct {
	items    []Item
	activeID string
	cache    *WidthCache
	keys     KeyMap
	theme    components.Theme
	log      *logger.Logger

	// width is the last-seen container width; zero means unmeasured.
	width      int
	maxVisible int
	showAdd    bool

	overflowOpen   bool
	overflowCursor int
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithMaxVisible fixes the number of visible tabs. Setting this bypasses
// width measurement entirely; the switcher truncates statically.
func WithMaxVisible(n int) Option {
	return func(m *Model) { m.maxVisible = n }
}

// WithKeyMap replaces the default key bindings. Hosts that give the arrow
// keys to another component can rebind switching to tab or similar.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithActive sets the initially active item id.
func WithActive(id string) Option {
	return func(m *Model) { m.activeID = id }
}

// WithTheme sets the styling theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// WithLogger attaches a logger for layout diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log.WithComponent("viewswitcher") }
}

// WithAddAffordance reserves room for an "add view" control in the row.
func WithAddAffordance() Option {
	return func(m *Model) { m.showAdd = true }
}

// New creates a switcher over the given items. The first item is active
// unless WithActive overrides it.
func New(items []Item, opts ...Option) Model {
	m := Model{
		items: items,
		cache: NewWidthCache(),
		keys:  DefaultKeyMap(),
		theme: components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.activeID == "" && len(items) > 0 {
		m.activeID = items[0].ID
	}
	m.measure()
	return m
}

// Init is the bubbletea init function.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resize and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.maxVisible > 0 {
			// Static truncation; no measurement at all.
			return m, nil
		}
		if msg.Width == m.width {
			return m, nil
		}
		m.width = msg.Width
		m.measure()
		m.log.WithFields(map[string]any{"width": m.width, "fit": m.fit()}).Debug("layout recomputed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.overflowOpen {
		return m.handleOverflowKey(msg)
	}

	visible, overflow := m.Layout()
	idx := indexOf(visible, m.activeID)

	switch {
	case key.Matches(msg, m.keys.Next):
		if idx >= 0 && idx < len(visible)-1 {
			return m.activate(visible[idx+1].ID)
		}
	case key.Matches(msg, m.keys.Prev):
		if idx > 0 {
			return m.activate(visible[idx-1].ID)
		}
	case key.Matches(msg, m.keys.First):
		if len(visible) > 0 {
			return m.activate(visible[0].ID)
		}
	case key.Matches(msg, m.keys.Last):
		if len(visible) > 0 {
			return m.activate(visible[len(visible)-1].ID)
		}
	case key.Matches(msg, m.keys.Overflow):
		if len(overflow) > 0 {
			m.overflowOpen = true
			m.overflowCursor = 0
		}
	}
	return m, nil
}

func (m Model) handleOverflowKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	_, overflow := m.Layout()

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Overflow):
		m.overflowOpen = false
	case key.Matches(msg, m.keys.Down):
		if m.overflowCursor < len(overflow)-1 {
			m.overflowCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.overflowCursor > 0 {
			m.overflowCursor--
		}
	case key.Matches(msg, m.keys.Select):
		if m.overflowCursor < len(overflow) {
			id := overflow[m.overflowCursor].ID
			m.overflowOpen = false
			return m.activate(id)
		}
	}
	return m, nil
}

func (m Model) activate(id string) (Model, tea.Cmd) {
	if id == m.activeID {
		return m, nil
	}
	m.activeID = id
	return m, func() tea.Msg { return SelectMsg{ID: id} }
}

// SetItems replaces the item set, pruning stale measurements.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.cache.Prune(items)
	if indexOf(items, m.activeID) < 0 {
		m.activeID = ""
		if len(items) > 0 {
			m.activeID = items[0].ID
		}
	}
	if m.overflowCursor > 0 {
		m.overflowCursor = 0
	}
	m.measure()
}

// Active returns the active item id.
func (m Model) Active() string {
	return m.activeID
}

// MenuOpen reports whether the overflow menu is showing. While open, the
// switcher expects to receive every key message.
func (m Model) MenuOpen() bool {
	return m.overflowOpen
}

// Layout computes the current visible/overflow split.
func (m Model) Layout() (visible, overflow []Item) {
	ordered := MeasureOrder(m.items)
	fit := m.fit()
	rendered := RenderOrder(ordered, m.activeID, fit)
	return Split(rendered, fit)
}

func (m Model) fit() int {
	ordered := MeasureOrder(m.items)
	if m.maxVisible > 0 {
		return min(m.maxVisible, len(ordered))
	}
	return m.cache.Fit(ordered, m.width, FitOptions{ReserveAdd: m.showAdd})
}

// measure records the rendered width of every tab in canonical order.
// Rendering is deterministic, so measuring is a pure recomputation; it runs
// on mount, on item-set change, and when the container width changes.
func (m *Model) measure() {
	if m.maxVisible > 0 {
		return
	}
	for _, item := range MeasureOrder(m.items) {
		m.cache.Set(item.ID, lipgloss.Width(m.renderTab(item, false)))
	}
}

// View renders the tab row and, when open, the overflow menu.
func (m Model) View() string {
	visible, overflow := m.Layout()

	parts := make([]string, 0, len(visible)*2+1)
	divider := lipgloss.NewStyle().Foreground(m.theme.Palette.Neutral.Muted).Render("│")
	for i, item := range visible {
		if i > 0 {
			parts = append(parts, divider)
		}
		parts = append(parts, m.renderTab(item, item.ID == m.activeID))
	}
	if len(overflow) > 0 {
		parts = append(parts, divider, m.renderTrigger(len(overflow)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if !m.overflowOpen {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, m.renderOverflowMenu(overflow))
}

func (m Model) renderTab(item Item, active bool) string {
	label := item.Label
	if item.Pinned {
		label = "• " + label
	}
	if item.Count > 0 {
		badge := components.CountBadge(item.Count)
		label += " " + badge.ViewWithContext(components.DefaultContext().WithTheme(m.theme))
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		style = style.
			Bold(true).
			Underline(true).
			Foreground(m.theme.Palette.Primary.Base)
	} else {
		style = style.Foreground(m.theme.Palette.Neutral.Base)
	}
	return style.Render(label)
}

func (m Model) renderTrigger(hidden int) string {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(m.theme.Palette.Neutral.Base).
		Render("⋯ " + formatHidden(hidden))
}

func formatHidden(hidden int) string {
	if hidden > 9 {
		return "9+"
	}
	return strconv.Itoa(hidden)
}

func (m Model) renderOverflowMenu(overflow []Item) string {
	if len(overflow) == 0 {
		return ""
	}

	rows := make([]string, len(overflow))
	for i, item := range overflow {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(m.theme.Palette.Neutral.Base)
		if i == m.overflowCursor {
			cursor = "> "
			style = style.Foreground(m.theme.Palette.Primary.Base).Bold(true)
		}
		rows[i] = style.Render(cursor + item.Label)
	}

	menu := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Border(m.theme.Borders.Rounded).
		BorderForeground(m.theme.Palette.Neutral.Muted).
		Padding(0, 1).
		Render(menu)
}

func indexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
