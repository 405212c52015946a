package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/ui/components"
)

func TestThemeAppliesPaletteOverrides(t *testing.T) {
	t.Parallel()

	file := &ThemeFile{
		Version: "1.0.0",
		Name:    "custom",
		Palette: PaletteConfig{
			Primary: &SlotConfig{
				Base: ColourPair{Light: "#112233", Dark: "#445566"},
			},
		},
	}

	theme := file.Theme()
	require.Equal(t, "#112233", theme.Palette.Primary.Base.Light)
	require.Equal(t, "#445566", theme.Palette.Primary.Base.Dark)

	// Untouched slots keep the base theme.
	base := components.DefaultTheme()
	require.Equal(t, base.Palette.Danger, theme.Palette.Danger)
}

func TestThemePartialColourPairKeepsBaseSide(t *testing.T) {
	t.Parallel()

	file := &ThemeFile{
		Version: "1.0.0",
		Name:    "halfway",
		Palette: PaletteConfig{
			Success: &SlotConfig{Base: ColourPair{Dark: "#0f766e"}},
		},
	}

	base := components.DefaultTheme()
	theme := file.Theme()
	require.Equal(t, "#0f766e", theme.Palette.Success.Base.Dark)
	require.Equal(t, base.Palette.Success.Base.Light, theme.Palette.Success.Base.Light)
}

func TestThemeAppliesSpacingOverrides(t *testing.T) {
	t.Parallel()

	file := &ThemeFile{
		Version: "1.0.0",
		Name:    "roomy",
		Spacing: SpacingConfig{Padding: []int{0, 2, 4, 6, 8, 12}},
	}

	theme := file.Theme()
	require.Equal(t, 12, components.PaddingValue(theme, components.SpacingSizeExtraLarge))
	// Margin scale was not overridden.
	require.Equal(t, 6, components.MarginValue(theme, components.SpacingSizeExtraLarge))
}

func TestThemeBaseSelection(t *testing.T) {
	t.Parallel()

	dark := (&ThemeFile{Version: "1.0.0", Name: "d", Base: "dark"}).Theme()
	require.Equal(t, components.DarkTheme().Palette.Surface, dark.Palette.Surface)

	light := (&ThemeFile{Version: "1.0.0", Name: "l", Base: "light"}).Theme()
	require.Equal(t, components.LightTheme().Palette.Surface, light.Palette.Surface)
}
