// Package pagination builds ellipsis-compressed page-number windows and a
// bubbletea paginator model on top of them. The window builder is a pure
// function; the model adds width-driven budgeting, keyboard navigation, and
// self-correcting page state.
package pagination

// Entry is a single slot in a page-number window: either a concrete page or
// an ellipsis gap standing in for a compressed run.
type Entry struct {
	Page int
	Gap  bool
}

func page(n int) Entry { return Entry{Page: n} }

var gap = Entry{Gap: true}

// Window computes the visible page slots for the given current page, total
// page count, and numbered-button budget. Pages 1 and total are always
// present when total exceeds the budget; the remaining budget forms a
// contiguous run centered on current and clamped to [2, total-1], with gaps
// wherever the run does not abut the endpoints.
//
// A non-positive total or budget yields nil. Gaps do not count against the
// budget, so the result never holds more than max concrete pages.
func Window(current, total, max int) []Entry {
	if total <= 0 || max <= 0 {
		return nil
	}
	current = clamp(current, 1, total)

	if total <= max {
		entries := make([]Entry, total)
		for i := range entries {
			entries[i] = page(i + 1)
		}
		return entries
	}

	windowSize := max - 2
	if windowSize <= 0 {
		if total > 2 {
			return []Entry{page(1), gap, page(total)}
		}
		return []Entry{page(1), page(total)}
	}

	start := current - windowSize/2
	end := start + windowSize - 1
	if start < 2 {
		start = 2
		end = start + windowSize - 1
	}
	if end > total-1 {
		end = total - 1
		start = end - windowSize + 1
		if start < 2 {
			start = 2
		}
	}

	entries := make([]Entry, 0, windowSize+4)
	entries = append(entries, page(1))
	if start > 2 {
		entries = append(entries, gap)
	}
	for p := start; p <= end; p++ {
		entries = append(entries, page(p))
	}
	if end < total-1 {
		entries = append(entries, gap)
	}
	entries = append(entries, page(total))
	return entries
}

// ClampPage forces p into [1, total] and reports whether a correction was
// applied. A total below one collapses to a single page.
func ClampPage(p, total int) (corrected int, changed bool) {
	if total < 1 {
		total = 1
	}
	corrected = clamp(p, 1, total)
	return corrected, corrected != p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
