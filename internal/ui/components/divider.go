package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a visual separator line.
type Divider struct {
	BaseComponent
	char     string
	width    int
	vertical bool
}

// NewDivider creates a horizontal divider using the default rule character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// HorizontalDivider is an alias for NewDivider.
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	d := NewDivider().WithChar("│")
	d.vertical = true
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider against the given context. When no
// explicit width is set, the divider stretches to the constraint or parent
// width, defaulting to 40 cells.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		if ctx.Constraints.MaxWidth >= 0 {
			width = ctx.Constraints.MaxWidth
		} else {
			width = ctx.Constraints.MinWidth
		}
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = 40
	}

	var content string
	if d.vertical {
		rows := make([]string, width)
		for i := range rows {
			rows[i] = d.char
		}
		content = lipgloss.JoinVertical(lipgloss.Left, rows...)
	} else {
		content = strings.Repeat(d.char, width)
	}

	return d.ComputeStyle(ctx.Theme).Render(content)
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit length for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("╌")
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
