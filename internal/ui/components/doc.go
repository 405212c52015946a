// Package components provides a declarative, theme-aware component library
// for terminal applications, built on top of lipgloss.
//
// # Architecture
//
// The system has three layers:
//
//  1. Theme layer - immutable theme definitions (colours, spacing, typography)
//  2. Modifier layer - StyleFunc transformations applying theme data to styles
//  3. Component layer - composable elements rendering to strings
//
// Themes are passed explicitly through RenderContext, so there is no global
// styling state and the same component with the same context always renders
// the same output:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme)
//	output := card.ViewWithContext(ctx)
//
// View() renders with the default theme when no context is needed.
//
// # Components
//
// Primitives: Text, Spacer, Divider. Layout: Stack, Container. Semantic:
// Button, Badge, Card, Alert, Dialog, Table, Meter. Components compose
// through the ui.Renderable interface:
//
//	body := components.VStack(
//		components.TitleText("Accounts"),
//		components.HorizontalDivider(),
//		components.NewCard(components.NewText("3 active")),
//	).WithGap(1)
//
// # Styling
//
// Components accept theme-aware modifiers through WithAppliers:
//
//	card.WithAppliers(
//		components.Background(components.PalettePrimary),
//		components.Padding(components.SpacingSizeSmall),
//		components.Border(components.BorderVariantRounded),
//	)
//
// Utility colour scales follow Tailwind's shade numbering:
// ShadeForeground(FamilyBlue, Shade600).
package components
