// Package config loads and validates theme definition files. A theme file
// starts from one of the built-in base themes and overrides palette slots
// and spacing scales; the result compiles into a components.Theme.
package config

// ColourPair is an adaptive colour: one value for light terminal
// backgrounds, one for dark. Either side may be omitted to keep the base
// theme's value.
type ColourPair struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

// SlotConfig overrides one semantic palette slot.
type SlotConfig struct {
	Base   ColourPair `yaml:"base"`
	OnBase ColourPair `yaml:"on_base"`
	Muted  ColourPair `yaml:"muted"`
	Accent ColourPair `yaml:"accent"`
}

// PaletteConfig holds per-slot overrides. Nil slots keep the base theme.
type PaletteConfig struct {
	Primary   *SlotConfig `yaml:"primary"`
	Secondary *SlotConfig `yaml:"secondary"`
	Surface   *SlotConfig `yaml:"surface"`
	Success   *SlotConfig `yaml:"success"`
	Warning   *SlotConfig `yaml:"warning"`
	Danger    *SlotConfig `yaml:"danger"`
	Info      *SlotConfig `yaml:"info"`
	Neutral   *SlotConfig `yaml:"neutral"`
}

// SpacingConfig overrides the padding and margin scales. Each scale has six
// entries, from none to extra large.
type SpacingConfig struct {
	Padding []int `yaml:"padding" validate:"omitempty,len=6,dive,min=0,max=16"`
	Margin  []int `yaml:"margin" validate:"omitempty,len=6,dive,min=0,max=16"`
}

// ThemeFile is the on-disk theme definition.
type ThemeFile struct {
	Version string        `yaml:"version" validate:"required,semver"`
	Name    string        `yaml:"name" validate:"required,theme_name"`
	Base    string        `yaml:"base" validate:"omitempty,oneof=default dark light"`
	Palette PaletteConfig `yaml:"palette"`
	Spacing SpacingConfig `yaml:"spacing"`
}
