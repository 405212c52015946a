package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Background applies a semantic background colour together with the matching
// foreground, so text stays legible whatever the slot.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour, leaving the background alone.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// MutedForeground applies a slot's muted colour to the foreground.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColour applies a semantic colour to an existing border.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Padding applies uniform padding from the theme's spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

// PaddingX applies horizontal padding from the theme's spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme's spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin applies uniform margin from the theme's spacing scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// MarginX applies horizontal margin from the theme's spacing scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// MarginY applies vertical margin from the theme's spacing scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography layers a typography preset onto the style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// ShadeBackground applies a utility-scale colour as the background.
func ShadeBackground(family ShadeFamily, shade Shade) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if colour := theme.Shades.Scale(family).Color(shade); colour != "" {
			return base.Background(colour)
		}
		return base
	}
}

// ShadeForeground applies a utility-scale colour as the foreground.
func ShadeForeground(family ShadeFamily, shade Shade) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if colour := theme.Shades.Scale(family).Color(shade); colour != "" {
			return base.Foreground(colour)
		}
		return base
	}
}

// CardStyle is the default applier bundle for card-like surfaces.
func CardStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		Border(BorderVariantRounded),
		Padding(SpacingSizeSmall),
	}
}

// DialogStyle is the default applier bundle for modal dialogs.
func DialogStyle() []StyleFunc {
	return []StyleFunc{
		Background(PaletteSurface),
		Border(BorderVariantDouble),
		BorderColour(PalettePrimary),
		Padding(SpacingSizeSmall),
	}
}
