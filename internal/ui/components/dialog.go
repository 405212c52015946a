package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Dialog is a modal frame with a title, a body and a row of action buttons.
// It renders as a free-standing box; use Place to centre it over a backdrop.
type Dialog struct {
	BaseComponent
	title   string
	body    ui.Renderable
	buttons []*Button
	width   int
}

// NewDialog creates a dialog with the given title and body.
func NewDialog(title string, body ui.Renderable) *Dialog {
	dialog := &Dialog{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
		width:         48,
	}
	dialog.SetAppliers(DialogStyle()...)
	return dialog
}

// View renders the dialog with the default theme.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog against the given context.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	inner := max(d.width-4, 10)
	rows := []ui.Renderable{
		TitleText(d.title),
		HorizontalDivider().WithWidth(inner),
	}
	if d.body != nil {
		rows = append(rows, d.body)
	}
	if len(d.buttons) > 0 {
		actions := make([]ui.Renderable, len(d.buttons))
		for i, button := range d.buttons {
			actions[i] = button
		}
		rows = append(rows, HStack(actions...).WithGap(1))
	}

	content := VStack(rows...).WithGap(0).ViewWithContext(ctx.WithConstraints(WithMaxWidth(inner)))
	return d.ComputeStyle(ctx.Theme).Width(inner).Render(content)
}

// Place centres the rendered dialog within the given bounds.
func (d *Dialog) Place(width, height int, ctx RenderContext) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, d.ViewWithContext(ctx))
}

// WithButtons sets the action buttons, shown left to right.
func (d *Dialog) WithButtons(buttons ...*Button) *Dialog {
	d.buttons = buttons
	return d
}

// WithWidth sets the dialog's outer width.
func (d *Dialog) WithWidth(width int) *Dialog {
	if width > 0 {
		d.width = width
	}
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Dialog) WithAppliers(appliers ...StyleFunc) *Dialog {
	d.AddAppliers(appliers...)
	return d
}

// ConfirmDialog creates a dialog with standard confirm/cancel buttons.
func ConfirmDialog(title, message string) *Dialog {
	return NewDialog(title, NewText(message)).
		WithButtons(PrimaryButton("Confirm"), GhostButton("Cancel"))
}
