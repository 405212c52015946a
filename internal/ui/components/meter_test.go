package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeterClampsFill(t *testing.T) {
	t.Parallel()

	t.Run("negative fill clamps to zero", func(t *testing.T) {
		t.Parallel()
		m := NewMeter(8).SetFilled(-3)
		require.Equal(t, 0, m.Filled())
	})

	t.Run("fill beyond segments clamps to segments", func(t *testing.T) {
		t.Parallel()
		m := NewMeter(8).SetFilled(12)
		require.Equal(t, 8, m.Filled())
	})

	t.Run("zero segments coerced to one", func(t *testing.T) {
		t.Parallel()
		m := NewMeter(0)
		require.Equal(t, 1, m.Segments())
	})
}

func TestMeterRendersAllSegments(t *testing.T) {
	t.Parallel()

	m := NewMeter(4).SetFilled(2)
	view := m.View()
	require.NotEmpty(t, view)
	// 4 segments of 3 cells plus 3 single-cell gaps.
	require.Equal(t, 4*3, countRune(view, '━'))
}

func countRune(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}
