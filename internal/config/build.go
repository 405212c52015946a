package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui/components"
)

// Theme compiles the file into a components.Theme: the base theme is looked
// up, palette and spacing overrides are applied on top, and the result is
// normalized.
func (f *ThemeFile) Theme() components.Theme {
	theme := baseTheme(f.Base)

	applySlot(&theme.Palette.Primary, f.Palette.Primary)
	applySlot(&theme.Palette.Secondary, f.Palette.Secondary)
	applySlot(&theme.Palette.Surface, f.Palette.Surface)
	applySlot(&theme.Palette.Success, f.Palette.Success)
	applySlot(&theme.Palette.Warning, f.Palette.Warning)
	applySlot(&theme.Palette.Danger, f.Palette.Danger)
	applySlot(&theme.Palette.Info, f.Palette.Info)
	applySlot(&theme.Palette.Neutral, f.Palette.Neutral)

	applyScale(&theme.Spacing.Padding, f.Spacing.Padding)
	applyScale(&theme.Spacing.Margin, f.Spacing.Margin)

	return theme.Normalize()
}

func baseTheme(name string) components.Theme {
	switch name {
	case "dark":
		return components.DarkTheme()
	case "light":
		return components.LightTheme()
	}
	return components.DefaultTheme()
}

func applySlot(dst *components.ColourSet, src *SlotConfig) {
	if src == nil {
		return
	}
	applyColour(&dst.Base, src.Base)
	applyColour(&dst.OnBase, src.OnBase)
	applyColour(&dst.Muted, src.Muted)
	applyColour(&dst.Accent, src.Accent)
}

// applyColour keeps the base value for any side the pair leaves empty.
func applyColour(dst *lipgloss.AdaptiveColor, src ColourPair) {
	if src.Light != "" {
		dst.Light = src.Light
	}
	if src.Dark != "" {
		dst.Dark = src.Dark
	}
}

func applyScale(dst *components.SpacingTable, src []int) {
	if len(src) != len(dst) {
		return
	}
	for i, v := range src {
		dst[i] = v
	}
}
