package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// Container is a generic box wrapping a single child with borders, padding
// and an optional fixed width.
type Container struct {
	BaseComponent
	child ui.Renderable
	width int
}

// NewContainer creates a container around the given child.
func NewContainer(child ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		child:         child,
	}
}

// View renders the container with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container against the given context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if c.child != nil {
		if contextual, ok := c.child.(ContextualRenderable); ok {
			content = contextual.ViewWithContext(ctx)
		} else {
			content = c.child.View()
		}
	}

	style := c.ComputeStyle(ctx.Theme)
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(content)
}

// WithWidth fixes the container's inner width.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithStyle sets the container style directly.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}
