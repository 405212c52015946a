package pagination

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/ui/components"
	glinterrors "github.com/glintui/glint/pkg/errors"
)

// PageChangedMsg reports a page transition, including internal corrections
// of an out-of-range page.
type PageChangedMsg struct {
	Page int
}

// PageSizeChangedMsg reports a new page size. It is always followed by a
// PageChangedMsg for page one.
type PageSizeChangedMsg struct {
	Size int
}

const defaultPageSize = 10

// Model is a paginator with a width-driven numbered-button budget. The page
// it holds is advisory from the caller's point of view: out-of-range values
// are clamped and the correction is reported through PageChangedMsg, never
// silently diverged from.
type Model struct {
	page       int
	pageSize   int
	totalItems int

	sizeOptions   []int
	showFirstLast bool

	// maxButtons fixes the numbered-button budget; zero derives it from
	// the container width.
	maxButtons int
	width      int

	keys  KeyMap
	theme components.Theme
	log   *logger.Logger

	correctionPending bool
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithPage sets the initial page. Out-of-range values are clamped and the
// correction is emitted from Init.
func WithPage(p int) Option {
	return func(m *Model) { m.page = p }
}

// WithMaxButtons fixes the numbered-button budget, bypassing width
// measurement.
func WithMaxButtons(n int) Option {
	return func(m *Model) { m.maxButtons = n }
}

// WithFirstLast enables the jump-to-first and jump-to-last arrow buttons.
func WithFirstLast() Option {
	return func(m *Model) { m.showFirstLast = true }
}

// WithSizeOptions sets the page sizes the selector cycles through.
func WithSizeOptions(sizes ...int) Option {
	return func(m *Model) { m.sizeOptions = sizes }
}

// WithTheme overrides the default theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log }
}

// New builds a paginator over totalItems items at the given page size.
func New(totalItems, pageSize int, opts ...Option) Model {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	m := Model{
		page:       1,
		pageSize:   pageSize,
		totalItems: totalItems,
		keys:       DefaultKeyMap(),
		theme:      components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	corrected, changed := ClampPage(m.page, m.TotalPages())
	if changed {
		m.reportClamp(m.page, corrected)
	}
	m.page = corrected
	m.correctionPending = changed
	return m
}

// reportClamp logs the silent correction of caller-supplied page state.
func (m Model) reportClamp(value, corrected int) {
	err := glinterrors.NewRangeError("page", value, 1, m.TotalPages(), corrected)
	m.log.WithFields(map[string]any{"correction": err.Error()}).Warn("out-of-range page corrected")
}

// Init emits the page correction, if construction had to clamp.
func (m Model) Init() tea.Cmd {
	if !m.correctionPending {
		return nil
	}
	return m.emitPage()
}

// Update handles resize and key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width {
			m.width = msg.Width
			m.log.WithFields(map[string]any{"width": m.width, "budget": m.budget()}).Debug("pagination budget recomputed")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.goTo(m.page + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.goTo(m.page - 1)
	case key.Matches(msg, m.keys.First):
		return m.goTo(1)
	case key.Matches(msg, m.keys.Last):
		return m.goTo(m.TotalPages())
	case key.Matches(msg, m.keys.CycleSize):
		return m.cycleSize()
	}
	return m, nil
}

// goTo moves to an in-range page, silently ignoring moves past either end.
func (m Model) goTo(p int) (Model, tea.Cmd) {
	corrected, _ := ClampPage(p, m.TotalPages())
	if corrected == m.page {
		return m, nil
	}
	m.page = corrected
	return m, m.emitPage()
}

// SetPage applies a caller-supplied page, clamping it into range. A message
// is emitted only when the value had to be corrected; an in-range page is
// accepted silently.
func (m Model) SetPage(p int) (Model, tea.Cmd) {
	corrected, changed := ClampPage(p, m.TotalPages())
	m.page = corrected
	if !changed {
		return m, nil
	}
	m.reportClamp(p, corrected)
	return m, m.emitPage()
}

// SetTotalItems replaces the item count. If the current page falls off the
// end, it is clamped and the correction emitted.
func (m Model) SetTotalItems(n int) (Model, tea.Cmd) {
	m.totalItems = n
	corrected, changed := ClampPage(m.page, m.TotalPages())
	if changed {
		m.reportClamp(m.page, corrected)
	}
	m.page = corrected
	if !changed {
		return m, nil
	}
	return m, m.emitPage()
}

func (m Model) cycleSize() (Model, tea.Cmd) {
	if len(m.sizeOptions) == 0 {
		return m, nil
	}
	next := m.sizeOptions[0]
	for i, size := range m.sizeOptions {
		if size == m.pageSize && i+1 < len(m.sizeOptions) {
			next = m.sizeOptions[i+1]
			break
		}
	}
	if next == m.pageSize {
		return m, nil
	}
	m.pageSize = next
	m.page = 1
	size := next
	return m, tea.Batch(
		func() tea.Msg { return PageSizeChangedMsg{Size: size} },
		m.emitPage(),
	)
}

func (m Model) emitPage() tea.Cmd {
	p := m.page
	return func() tea.Msg { return PageChangedMsg{Page: p} }
}

// Page returns the current page.
func (m Model) Page() int {
	return m.page
}

// PageSize returns the current page size.
func (m Model) PageSize() int {
	return m.pageSize
}

// TotalPages derives the page count from the item count and page size. It is
// never below one.
func (m Model) TotalPages() int {
	pages := (m.totalItems + m.pageSize - 1) / m.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Entries returns the current page window under the effective budget. An
// empty result means the numbered buttons are hidden and only the arrows
// render.
func (m Model) Entries() []Entry {
	return Window(m.page, m.TotalPages(), m.budget())
}

// budget resolves the numbered-button budget: a fixed override wins, then
// the measured width, then the default.
func (m Model) budget() int {
	if m.maxButtons > 0 {
		return m.maxButtons
	}
	if m.width <= 0 {
		return DefaultMaxButtons
	}
	fixed := lipgloss.Width(m.infoView()) + lipgloss.Width(m.sizeView())
	return Budget(m.width, fixed, BudgetOptions{
		ShowFirstLast:   m.showFirstLast,
		PageButtonWidth: m.pageButtonWidth(),
	})
}

// pageButtonWidth measures one padded button at the widest page number.
func (m Model) pageButtonWidth() int {
	return len(strconv.Itoa(m.TotalPages())) + 2
}

// View renders the info text, arrows, page-number buttons, and the page-size
// selector on one row.
func (m Model) View() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Palette.Neutral.Muted)
	normal := lipgloss.NewStyle().Padding(0, 1).Foreground(m.theme.Palette.Neutral.Base)
	active := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(m.theme.Palette.Primary.Base)

	var parts []string
	if info := m.infoView(); info != "" {
		parts = append(parts, muted.Render(info), strings.Repeat(" ", blockGapWidth))
	}

	if m.showFirstLast {
		parts = append(parts, m.arrow("«", m.page > 1))
	}
	parts = append(parts, m.arrow("‹", m.page > 1))

	for _, entry := range m.Entries() {
		if entry.Gap {
			parts = append(parts, muted.Render("…"))
			continue
		}
		style := normal
		if entry.Page == m.page {
			style = active
		}
		parts = append(parts, style.Render(strconv.Itoa(entry.Page)))
	}

	parts = append(parts, m.arrow("›", m.page < m.TotalPages()))
	if m.showFirstLast {
		parts = append(parts, m.arrow("»", m.page < m.TotalPages()))
	}

	if selector := m.sizeView(); selector != "" {
		parts = append(parts, strings.Repeat(" ", blockGapWidth), muted.Render(selector))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) arrow(glyph string, enabled bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if enabled {
		style = style.Foreground(m.theme.Palette.Neutral.Base)
	} else {
		style = style.Foreground(m.theme.Palette.Neutral.Muted).Faint(true)
	}
	return style.Render(glyph)
}

// infoView renders the "start-end of total" item range.
func (m Model) infoView() string {
	if m.totalItems <= 0 {
		return ""
	}
	start := (m.page-1)*m.pageSize + 1
	end := m.page * m.pageSize
	if end > m.totalItems {
		end = m.totalItems
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end) + " of " + strconv.Itoa(m.totalItems)
}

// sizeView renders the page-size selector label.
func (m Model) sizeView() string {
	if len(m.sizeOptions) == 0 {
		return ""
	}
	return strconv.Itoa(m.pageSize) + "/page"
}
