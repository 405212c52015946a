package components

import (
	"github.com/glintui/glint/internal/ui"
)

// Card is a bordered surface grouping related content, optionally titled.
type Card struct {
	BaseComponent
	title    string
	children []ui.Renderable
}

// NewCard creates a card around the given children.
func NewCard(children ...ui.Renderable) *Card {
	card := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
	card.SetAppliers(CardStyle()...)
	return card
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card against the given context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	body := VStack(c.children...)
	if c.title != "" {
		titled := []ui.Renderable{TitleText(c.title), HorizontalDivider()}
		body = VStack(append(titled, c.children...)...)
	}

	style := c.ComputeStyle(ctx.Theme)
	return style.Render(body.ViewWithContext(ctx))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}
