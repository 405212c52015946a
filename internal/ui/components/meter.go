package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Meter renders a stepped horizontal gauge: a fixed number of segments of
// which the first N are filled. It drives discrete indicators like the
// password strength bar, where a smooth gradient would suggest more
// precision than the underlying score has.
type Meter struct {
	BaseComponent
	segments int
	filled   int
	slot     PaletteSlot
}

// NewMeter creates a meter with the given number of segments.
func NewMeter(segments int) *Meter {
	if segments < 1 {
		segments = 1
	}
	return &Meter{
		BaseComponent: NewBaseComponent(),
		segments:      segments,
		slot:          PalettePrimary,
	}
}

// SetFilled sets how many segments are filled, clamped to [0, segments].
func (m *Meter) SetFilled(filled int) *Meter {
	if filled < 0 {
		filled = 0
	}
	if filled > m.segments {
		filled = m.segments
	}
	m.filled = filled
	return m
}

// WithSlot sets the colour slot used for filled segments.
func (m *Meter) WithSlot(slot PaletteSlot) *Meter {
	m.slot = slot
	return m
}

// Filled returns the current fill count.
func (m *Meter) Filled() int {
	return m.filled
}

// Segments returns the segment count.
func (m *Meter) Segments() int {
	return m.segments
}

// View renders the meter with the default theme.
func (m *Meter) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the meter against the given context.
func (m *Meter) ViewWithContext(ctx RenderContext) string {
	const segmentWidth = 3

	cs := m.slot(ctx.Theme.Palette)
	onStyle := lipgloss.NewStyle().Foreground(cs.Base)
	offStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Surface.Muted)

	parts := make([]string, m.segments)
	for i := range parts {
		segment := strings.Repeat("━", segmentWidth)
		if i < m.filled {
			parts[i] = onStyle.Render(segment)
		} else {
			parts[i] = offStyle.Render(segment)
		}
	}

	return m.ComputeStyle(ctx.Theme).Render(strings.Join(parts, " "))
}
