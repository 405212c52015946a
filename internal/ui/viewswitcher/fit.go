// Package viewswitcher implements a responsive tab row. It measures each
// rendered tab, caches the widths, and computes how many tabs fit in the
// available row before the rest spill into an overflow menu.
package viewswitcher

// Item is a navigable view in the switcher.
type Item struct {
	ID     string
	Label  string
	Pinned bool
	// Count is an optional badge beside the label; values <= 0 hide it.
	Count int
}

// Layout constants, in terminal cells. The estimate covers tabs that have
// never been measured; it only matters until the first layout pass.
const (
	estimatedTabWidth    = 14
	dividerWidth         = 1
	overflowTriggerWidth = 6
	addAffordanceWidth   = 4

	// DefaultMaxVisible is used when the container width is unknown or
	// unusable. The switcher degrades to this rather than showing nothing.
	DefaultMaxVisible = 5
)

// WidthCache stores measured tab widths keyed by item id. Each switcher
// instance owns one cache; its lifetime matches the instance's. Entries for
// ids that disappear from the item set are pruned.
type WidthCache struct {
	widths map[string]int
}

// NewWidthCache creates an empty cache.
func NewWidthCache() *WidthCache {
	return &WidthCache{widths: make(map[string]int)}
}

// Set records a measured width for an item.
func (c *WidthCache) Set(id string, width int) {
	if width > 0 {
		c.widths[id] = width
	}
}

// Width returns the cached width for an item, falling back to the estimate
// for items never measured.
func (c *WidthCache) Width(id string) int {
	if width, ok := c.widths[id]; ok {
		return width
	}
	return estimatedTabWidth
}

// Measured reports whether the item has a cached measurement.
func (c *WidthCache) Measured(id string) bool {
	_, ok := c.widths[id]
	return ok
}

// Prune drops cache entries whose id no longer appears in the item set.
func (c *WidthCache) Prune(items []Item) {
	live := make(map[string]struct{}, len(items))
	for _, item := range items {
		live[item.ID] = struct{}{}
	}
	for id := range c.widths {
		if _, ok := live[id]; !ok {
			delete(c.widths, id)
		}
	}
}

// MeasureOrder returns the canonical measurement order: pinned items first,
// otherwise stable. Fitting always runs against this order and never against
// the rendered order, so that what is visible cannot feed back into what is
// measured.
func MeasureOrder(items []Item) []Item {
	ordered := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Pinned {
			ordered = append(ordered, item)
		}
	}
	for _, item := range items {
		if !item.Pinned {
			ordered = append(ordered, item)
		}
	}
	return ordered
}

// FitOptions tunes the fit computation.
type FitOptions struct {
	// ReserveAdd keeps room for an "add view" affordance at the end of
	// the row.
	ReserveAdd bool
}

// Fit computes how many items from the canonical order fit into the
// available width. When not everything fits, the computation reruns with
// room reserved for the overflow trigger, since showing the trigger costs
// width too. The result is clamped to at least 1 for a non-empty item set.
//
// An available width of zero or less means the container has not been
// measured; the switcher degrades to DefaultMaxVisible.
func (c *WidthCache) Fit(ordered []Item, available int, opts FitOptions) int {
	if len(ordered) == 0 {
		return 0
	}
	if available <= 0 {
		return min(len(ordered), DefaultMaxVisible)
	}

	usable := available
	if opts.ReserveAdd {
		usable -= addAffordanceWidth
	}

	fit := c.fitPass(ordered, usable)
	if fit < len(ordered) {
		fit = c.fitPass(ordered, usable-overflowTriggerWidth)
	}
	return max(fit, 1)
}

// fitPass accumulates cached widths left to right until the next item would
// exceed the budget.
func (c *WidthCache) fitPass(ordered []Item, budget int) int {
	used := 0
	for i, item := range ordered {
		width := c.Width(item.ID)
		if i > 0 {
			width += dividerWidth
		}
		if used+width > budget {
			return i
		}
		used += width
	}
	return len(ordered)
}

// RenderOrder derives the display order from the canonical order. When the
// active item falls beyond the fit count it is swapped into the last visible
// slot; everything else keeps its canonical position. The original activeID
// is never changed by layout.
func RenderOrder(ordered []Item, activeID string, fit int) []Item {
	if fit <= 0 || fit >= len(ordered) {
		return ordered
	}

	activeIdx := -1
	for i, item := range ordered {
		if item.ID == activeID {
			activeIdx = i
			break
		}
	}
	if activeIdx < fit {
		return ordered
	}

	rendered := make([]Item, len(ordered))
	copy(rendered, ordered)
	rendered[fit-1], rendered[activeIdx] = rendered[activeIdx], rendered[fit-1]
	return rendered
}

// Split divides the rendered order into the visible row and the overflow
// menu contents.
func Split(rendered []Item, fit int) (visible, overflow []Item) {
	if fit < 0 {
		fit = 0
	}
	if fit > len(rendered) {
		fit = len(rendered)
	}
	return rendered[:fit], rendered[fit:]
}
