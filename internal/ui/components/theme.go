package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group designed to be used together:
//
//   - Base: the main background or brand colour
//   - OnBase: content colour legible against Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Accent: a colour that stands out against Base
//
// Every colour is adaptive, carrying light and dark terminal variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
	Accent lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a semantic colour slot from a Palette. Use the
// predefined slots with modifiers: Background(PalettePrimary), etc.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

const shadeCount = 10

// ShadeScale is a Tailwind-style colour scale with 10 shades ordered from
// lightest (50) to darkest (900).
type ShadeScale struct {
	colors [shadeCount]lipgloss.Color
}

// NewShadeScale builds a scale from up to 10 colours, lightest first.
func NewShadeScale(colors ...lipgloss.Color) ShadeScale {
	var scale ShadeScale
	for i := 0; i < shadeCount && i < len(colors); i++ {
		scale.colors[i] = colors[i]
	}
	return scale
}

// Shade is an index into a ShadeScale, following Tailwind's numbering.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Color returns the colour at the given shade, or an empty colour when the
// shade is out of bounds.
func (s ShadeScale) Color(shade Shade) lipgloss.Color {
	if shade < 0 || int(shade) >= shadeCount {
		return ""
	}
	return s.colors[shade]
}

// ShadeFamily names a utility colour family.
type ShadeFamily int

const (
	FamilyGray ShadeFamily = iota
	FamilyBlue
	FamilyEmerald
	FamilyRose
	FamilyAmber
	FamilyIndigo
)

// ShadeFamilies holds the utility colour scales available to components.
type ShadeFamilies struct {
	Gray    ShadeScale
	Blue    ShadeScale
	Emerald ShadeScale
	Rose    ShadeScale
	Amber   ShadeScale
	Indigo  ShadeScale
}

// Scale returns the scale for a family, defaulting to gray.
func (f ShadeFamilies) Scale(family ShadeFamily) ShadeScale {
	switch family {
	case FamilyBlue:
		return f.Blue
	case FamilyEmerald:
		return f.Emerald
	case FamilyRose:
		return f.Rose
	case FamilyAmber:
		return f.Amber
	case FamilyIndigo:
		return f.Indigo
	default:
		return f.Gray
	}
}

// BorderSet groups the reusable border definitions of a theme.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant selects a border style from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingSize is a token on the theme's spacing scale.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type SpacingTable [spacingSizeCount]int

// SpacingConfig stores distinct scales for padding and margin.
type SpacingConfig struct {
	Padding SpacingTable
	Margin  SpacingTable
}

func defaultSpacingTable() SpacingTable {
	return SpacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

func spacingTableIsZero(table SpacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantCaption
)

// TypographyScale contains the semantic typography presets of a theme.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Caption  lipgloss.Style
}

// InputState distinguishes form control rendering states.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateError
)

// InputStyles describes the styles for input controls per state.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Error   lipgloss.Style
}

// ButtonVariant selects a button's visual treatment.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantDanger
	ButtonVariantWarning
	ButtonVariantGhost
)

// BadgeVariant selects a badge's visual treatment.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDanger
	BadgeVariantInfo
)

// AlertVariant selects an alert's visual treatment.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// VariantRegistry maps component variants to styling strategies, letting
// themes define variant styling as data rather than code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not registered.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Themes are value types: create one,
// reuse it, and derive new ones by copying rather than mutating.
type Theme struct {
	Palette    Palette
	Shades     ShadeFamilies
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Normalize returns a copy of the theme with zero-valued sections replaced
// by defaults, so partially specified themes render sensibly.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Variants == nil {
		t.Variants = defaultVariantRegistry()
	}
	return t
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the theme components use when no context is supplied.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   adaptive("#4f46e5", "#818cf8"),
			OnBase: adaptive("#eef2ff", "#111827"),
			Muted:  adaptive("#4338ca", "#3730a3"),
			Accent: adaptive("#fbbf24", "#b45309"),
		},
		Secondary: ColourSet{
			Base:   adaptive("#0d9488", "#2dd4bf"),
			OnBase: adaptive("#f0fdfa", "#134e4a"),
			Muted:  adaptive("#0f766e", "#115e59"),
			Accent: adaptive("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:   adaptive("#fafaf9", "#1c1917"),
			OnBase: adaptive("#1c1917", "#fafaf9"),
			Muted:  adaptive("#e7e5e4", "#292524"),
			Accent: adaptive("#4f46e5", "#818cf8"),
		},
		Success: ColourSet{
			Base:   adaptive("#059669", "#34d399"),
			OnBase: adaptive("#ecfdf5", "#064e3b"),
			Muted:  adaptive("#047857", "#065f46"),
			Accent: adaptive("#fafaf9", "#fafaf9"),
		},
		Warning: ColourSet{
			Base:   adaptive("#d97706", "#fbbf24"),
			OnBase: adaptive("#451a03", "#451a03"),
			Muted:  adaptive("#b45309", "#92400e"),
			Accent: adaptive("#1c1917", "#1c1917"),
		},
		Danger: ColourSet{
			Base:   adaptive("#e11d48", "#fb7185"),
			OnBase: adaptive("#fff1f2", "#4c0519"),
			Muted:  adaptive("#be123c", "#9f1239"),
			Accent: adaptive("#fafaf9", "#fafaf9"),
		},
		Info: ColourSet{
			Base:   adaptive("#0284c7", "#38bdf8"),
			OnBase: adaptive("#f0f9ff", "#082f49"),
			Muted:  adaptive("#0369a1", "#075985"),
			Accent: adaptive("#fafaf9", "#fafaf9"),
		},
		Neutral: ColourSet{
			Base:   adaptive("#57534e", "#a8a29e"),
			OnBase: adaptive("#f5f5f4", "#1c1917"),
			Muted:  adaptive("#44403c", "#292524"),
			Accent: adaptive("#fafaf9", "#fafaf9"),
		},
	}

	shades := ShadeFamilies{
		Gray: NewShadeScale(
			"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e",
			"#78716c", "#57534e", "#44403c", "#292524", "#1c1917",
		),
		Blue: NewShadeScale(
			"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8",
			"#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e",
		),
		Emerald: NewShadeScale(
			"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399",
			"#10b981", "#059669", "#047857", "#065f46", "#064e3b",
		),
		Rose: NewShadeScale(
			"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185",
			"#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337",
		),
		Amber: NewShadeScale(
			"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f",
		),
		Indigo: NewShadeScale(
			"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8",
			"#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81",
		),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := TypographyScale{
		Base:     lipgloss.NewStyle().Foreground(palette.Surface.OnBase),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base),
		Subtitle: lipgloss.NewStyle().Foreground(palette.Neutral.Base),
		Body:     lipgloss.NewStyle().Foreground(palette.Surface.OnBase),
		Code:     lipgloss.NewStyle().Foreground(palette.Secondary.Base).Background(palette.Surface.Muted),
		Emphasis: lipgloss.NewStyle().Bold(true),
		Caption:  lipgloss.NewStyle().Faint(true),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Error: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
	}

	theme := Theme{
		Palette:    palette,
		Shades:     shades,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: typography,
		Input:      input,
		Variants:   defaultVariantRegistry(),
	}

	return theme.Normalize()
}

// DarkTheme returns a theme tuned for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Surface = ColourSet{
		Base:   adaptive("#1c1917", "#0c0a09"),
		OnBase: adaptive("#fafaf9", "#e7e5e4"),
		Muted:  adaptive("#292524", "#1c1917"),
		Accent: adaptive("#818cf8", "#a5b4fc"),
	}
	return theme.Normalize()
}

// LightTheme is an alias for the default theme.
func LightTheme() Theme {
	return DefaultTheme()
}

func defaultVariantRegistry() *VariantRegistry {
	registry := NewVariantRegistry()

	buttonBase := []StyleFunc{PaddingX(SpacingSizeSmall)}
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(append([]StyleFunc{Background(PalettePrimary)}, buttonBase...)...))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(append([]StyleFunc{Background(PaletteSecondary)}, buttonBase...)...))
	registry.Register(ButtonVariantSuccess, NewCompositeStrategy(append([]StyleFunc{Background(PaletteSuccess)}, buttonBase...)...))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(append([]StyleFunc{Background(PaletteDanger)}, buttonBase...)...))
	registry.Register(ButtonVariantWarning, NewCompositeStrategy(append([]StyleFunc{Background(PaletteWarning)}, buttonBase...)...))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(append([]StyleFunc{Foreground(PaletteNeutral)}, buttonBase...)...))

	registry.Register(BadgeVariantDefault, NewCompositeStrategy(Background(PaletteNeutral), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(Background(PaletteWarning), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantDanger, NewCompositeStrategy(Background(PaletteDanger), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantInfo, NewCompositeStrategy(Background(PaletteInfo), PaddingX(SpacingSizeExtraSmall)))

	registry.Register(AlertVariantInfo, NewCompositeStrategy(Background(PaletteInfo), Border(BorderVariantNormal), Padding(SpacingSizeExtraSmall)))
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess), Border(BorderVariantNormal), Padding(SpacingSizeExtraSmall)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Background(PaletteWarning), Border(BorderVariantNormal), Padding(SpacingSizeExtraSmall)))
	registry.Register(AlertVariantError, NewCompositeStrategy(Background(PaletteDanger), Border(BorderVariantNormal), Padding(SpacingSizeExtraSmall)))

	return registry
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the typography preset for a variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantCaption:
		return typo.Caption
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateError:
		return theme.Input.Error
	default:
		return theme.Input.Default
	}
}

// PaddingValue returns the padding cell count for a spacing token.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin cell count for a spacing token.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table SpacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}
