package pagination

const (
	// defaultPageButtonWidth covers a padded two-digit page number.
	defaultPageButtonWidth = 4
	// navButtonWidth is the cost of one padded arrow button.
	navButtonWidth = 3
	// blockGapWidth separates the fixed info block from the button row.
	blockGapWidth = 2
	// minNumberedButtons is the smallest useful window; below it the
	// numbered buttons are hidden and only the arrows remain.
	minNumberedButtons = 3

	// DefaultMaxButtons is the budget used before any width is known.
	DefaultMaxButtons = 7
)

// BudgetOptions tunes the width-to-button-count computation.
type BudgetOptions struct {
	// ShowFirstLast reserves room for jump-to-first and jump-to-last
	// arrows in addition to prev and next.
	ShowFirstLast bool
	// PageButtonWidth overrides the measured width of one page button;
	// zero falls back to the default.
	PageButtonWidth int
}

// Budget converts an available container width into a numbered-button count.
// The fixed sibling block (info text and page-size selector), a gap, the
// arrow buttons, and one button of slack for the ellipses are subtracted
// first; the remainder is divided by the page-button width. Fewer than three
// buttons collapses to zero so the row degrades to arrows only.
func Budget(containerWidth, fixedWidth int, opts BudgetOptions) int {
	buttonWidth := opts.PageButtonWidth
	if buttonWidth <= 0 {
		buttonWidth = defaultPageButtonWidth
	}

	arrows := 2 * navButtonWidth
	if opts.ShowFirstLast {
		arrows *= 2
	}

	avail := containerWidth - fixedWidth - blockGapWidth - arrows - buttonWidth
	if avail <= 0 {
		return 0
	}
	n := avail / buttonWidth
	if n < minNumberedButtons {
		return 0
	}
	return n
}
