package components

import (
	"github.com/glintui/glint/internal/ui"
)

// Alert is a notification message with a severity variant.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// View renders the alert with the default theme.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert against the given context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	var children []ui.Renderable
	if a.title != "" {
		children = []ui.Renderable{
			NewText(a.title).WithAppliers(Typography(TypographyVariantEmphasis)),
			NewText(a.message),
		}
	} else {
		children = []ui.Renderable{NewText(a.message)}
	}

	style := a.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(VStack(children...).ViewWithContext(ctx))
}

// WithTitle sets a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithVariant sets the alert severity.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
