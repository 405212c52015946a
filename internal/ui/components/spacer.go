package components

import "strings"

// Spacer renders empty space for layout purposes.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of the given dimensions. Zero or negative
// values collapse to nothing on that axis.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HSpacer creates a horizontal spacer one row tall.
func HSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VSpacer creates a vertical spacer with empty rows.
func VSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer.
func (s *Spacer) View() string {
	if s.height <= 0 {
		return ""
	}

	row := strings.Repeat(" ", max(s.width, 0))
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
