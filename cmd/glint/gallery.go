package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/password"
	"github.com/glintui/glint/internal/ui/components"
	"github.com/glintui/glint/internal/ui/pagination"
	"github.com/glintui/glint/internal/ui/viewswitcher"
)

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Browse the component gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags, log)
		},
	}
}

func runGallery(flags *rootFlags, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the gallery requires an interactive terminal")
	}

	theme := components.DefaultTheme()
	if flags.themePath != "" {
		file, err := config.ParseTheme(flags.themePath)
		if err != nil {
			return err
		}
		theme = file.Theme()
		log.WithFields(map[string]any{"theme": file.Name}).Info("loaded theme")
	}

	model := newGalleryModel(theme, log)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

const (
	sectionWidgets    = "widgets"
	sectionPagination = "pagination"
	sectionPassword   = "password"
	sectionDialog     = "dialog"
)

type galleryModel struct {
	switcher     viewswitcher.Model
	switcherKeys viewswitcher.KeyMap
	pager        pagination.Model
	input        textinput.Model
	spin         spinner.Model

	theme  components.Theme
	log    *logger.Logger
	active string

	width  int
	height int

	rows [][]string
}

func newGalleryModel(theme components.Theme, log *logger.Logger) galleryModel {
	items := []viewswitcher.Item{
		{ID: sectionWidgets, Label: "Widgets", Pinned: true},
		{ID: sectionPagination, Label: "Pagination"},
		{ID: sectionPassword, Label: "Password"},
		{ID: sectionDialog, Label: "Dialog", Count: 1},
	}

	input := textinput.New()
	input.Placeholder = "type a password"
	input.EchoMode = textinput.EchoPassword
	input.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)

	rows := make([][]string, 0, 57)
	for i := 1; i <= 57; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("item-%02d", i),
			[]string{"ready", "pending", "failed"}[i%3],
			fmt.Sprintf("%d", i*7%100),
		})
	}

	keys := gallerySwitcherKeys()

	return galleryModel{
		switcher: viewswitcher.New(items,
			viewswitcher.WithTheme(theme),
			viewswitcher.WithLogger(log),
			viewswitcher.WithKeyMap(keys),
		),
		switcherKeys: keys,
		pager:        pagination.New(len(rows), 10, pagination.WithTheme(theme), pagination.WithSizeOptions(5, 10, 25)),
		input:        input,
		spin:         spin,
		theme:        theme,
		log:          log,
		active:       sectionWidgets,
		rows:         rows,
	}
}

// gallerySwitcherKeys rebinds section switching to tab and shift+tab so the
// arrow and home/end keys stay free for the active section.
func gallerySwitcherKeys() viewswitcher.KeyMap {
	keys := viewswitcher.DefaultKeyMap()
	keys.Next = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next section"),
	)
	keys.Prev = key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous section"),
	)
	keys.First.SetEnabled(false)
	keys.Last.SetEnabled(false)
	return keys
}

func (m galleryModel) Init() tea.Cmd {
	return tea.Batch(m.switcher.Init(), m.spin.Tick)
}

func (m galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.switcher, cmd = m.switcher.Update(msg)
		cmds = append(cmds, cmd)
		m.pager, cmd = m.pager.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case viewswitcher.SelectMsg:
		m.active = msg.ID
		if m.active != sectionPassword {
			m.input.Blur()
		}
		return m, nil

	case pagination.PageChangedMsg, pagination.PageSizeChangedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.input.Blur()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "i":
		if m.active == sectionPassword {
			return m, m.input.Focus()
		}
	}

	// Exactly one consumer sees each key: the switcher owns its bindings
	// and the whole keyboard while its menu is open, the active section
	// owns everything else.
	if m.switcher.MenuOpen() || key.Matches(msg, m.switcherKeys.Next, m.switcherKeys.Prev, m.switcherKeys.Overflow) {
		var cmd tea.Cmd
		m.switcher, cmd = m.switcher.Update(msg)
		return m, cmd
	}

	if m.active == sectionPagination {
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m galleryModel) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme)

	sections := []string{
		components.TitleText("Glint component gallery").ViewWithContext(ctx),
		m.switcher.View(),
		"",
		m.sectionView(ctx),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}

func (m galleryModel) sectionView(ctx components.RenderContext) string {
	switch m.active {
	case sectionPagination:
		return m.paginationView(ctx)
	case sectionPassword:
		return m.passwordView(ctx)
	case sectionDialog:
		return m.dialogView(ctx)
	}
	return m.widgetsView(ctx)
}

func (m galleryModel) widgetsView(ctx components.RenderContext) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.PrimaryButton("Save").ViewWithContext(ctx), " ",
		components.SecondaryButton("Cancel").ViewWithContext(ctx), " ",
		components.DangerButton("Delete").ViewWithContext(ctx), " ",
		components.GhostButton("Skip").ViewWithContext(ctx),
	)
	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		components.SuccessBadge("ready").ViewWithContext(ctx), " ",
		components.WarningBadge("degraded").ViewWithContext(ctx), " ",
		components.DangerBadge("failed").ViewWithContext(ctx), " ",
		components.CountBadge(128).ViewWithContext(ctx),
	)
	card := components.NewCard(
		components.NewText("Buttons, badges and cards compose through the shared theme."),
	).WithTitle("Widgets")

	ramp := make([]string, 0, int(components.Shade900)+2)
	for shade := components.Shade50; shade <= components.Shade900; shade++ {
		ramp = append(ramp, components.NewText("  ").
			WithAppliers(components.ShadeBackground(components.FamilyIndigo, shade)).
			ViewWithContext(ctx))
	}
	ramp = append(ramp, components.CaptionText(" indigo").
		WithAppliers(components.ShadeForeground(components.FamilyIndigo, components.Shade400)).
		ViewWithContext(ctx))

	return lipgloss.JoinVertical(lipgloss.Left,
		card.ViewWithContext(ctx),
		"",
		buttons,
		badges,
		lipgloss.JoinHorizontal(lipgloss.Top, ramp...),
		lipgloss.JoinHorizontal(lipgloss.Top, m.spin.View(), " working"),
	)
}

func (m galleryModel) paginationView(ctx components.RenderContext) string {
	pageSize := m.pager.PageSize()
	start := (m.pager.Page() - 1) * pageSize
	end := start + pageSize
	if end > len(m.rows) {
		end = len(m.rows)
	}

	table := components.NewTable(
		components.Column{Title: "ID"},
		components.Column{Title: "STATUS"},
		components.Column{Title: "SCORE", Align: components.AlignEnd},
	).SetRows(m.rows[start:end]).WithStriped(true)
	if m.width > 0 {
		table.WithMaxWidth(m.width - 4)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		table.ViewWithContext(ctx),
		"",
		m.pager.View(),
	)
}

func (m galleryModel) passwordView(ctx components.RenderContext) string {
	analysis := password.Analyze(m.input.Value())

	meter := components.NewMeter(password.MaxSegments).SetFilled(analysis.SegmentScore)
	switch {
	case analysis.Strength >= password.StrengthGood:
		meter.WithSlot(components.PaletteSuccess)
	case analysis.Strength == password.StrengthFair:
		meter.WithSlot(components.PaletteWarning)
	default:
		meter.WithSlot(components.PaletteDanger)
	}

	checks := []struct {
		label string
		ok    bool
	}{
		{"8+ characters", analysis.HasMinLength},
		{"uppercase", analysis.HasUppercase},
		{"lowercase", analysis.HasLowercase},
		{"number", analysis.HasNumber},
		{"symbol", analysis.HasSymbol},
	}
	parts := make([]string, 0, len(checks))
	for _, c := range checks {
		badge := components.DangerBadge("✗ " + c.label)
		if c.ok {
			badge = components.SuccessBadge("✓ " + c.label)
		}
		parts = append(parts, badge.ViewWithContext(ctx))
	}

	state := components.InputStateDefault
	switch {
	case analysis.Weak():
		state = components.InputStateError
	case m.input.Focused():
		state = components.InputStateFocus
	}

	lines := []string{
		components.InputStyle(m.theme, state).Render(m.input.View()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, meter.ViewWithContext(ctx), "  ", analysis.Strength.String()),
		lipgloss.JoinHorizontal(lipgloss.Top, interleave(parts, " ")...),
	}
	if analysis.Weak() {
		lines = append(lines, components.CaptionText("weak pattern: "+analysis.Pattern.String()).ViewWithContext(ctx))
	}
	if !m.input.Focused() {
		lines = append(lines, "", components.CaptionText("press i to type").ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m galleryModel) dialogView(ctx components.RenderContext) string {
	dialog := components.ConfirmDialog("Remove item?", "This cannot be undone.")
	if m.width > 0 && m.height > 8 {
		return dialog.Place(m.width, m.height-6, ctx)
	}
	return dialog.ViewWithContext(ctx)
}

// statusBar pads the help line to the full terminal width.
func (m galleryModel) statusBar() string {
	help := " tab switch · o overflow · ←/→ page · i type · s page size · q quit"
	pad := m.width - runewidth.StringWidth(help)
	if pad < 0 {
		pad = 0
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.Palette.Neutral.Muted).
		Render(help + strings.Repeat(" ", pad))
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
