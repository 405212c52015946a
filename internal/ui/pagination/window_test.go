package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pages(entries []Entry) []int {
	var out []int
	for _, e := range entries {
		if !e.Gap {
			out = append(out, e.Page)
		}
	}
	return out
}

func TestWindowShowsAllPagesWhenUnderBudget(t *testing.T) {
	t.Parallel()

	entries := Window(2, 3, 5)
	require.Equal(t, []int{1, 2, 3}, pages(entries))
	for _, e := range entries {
		require.False(t, e.Gap)
	}
}

func TestWindowCentersOnCurrentPage(t *testing.T) {
	t.Parallel()

	entries := Window(10, 20, 5)
	require.Equal(t, []Entry{
		{Page: 1}, {Gap: true},
		{Page: 9}, {Page: 10}, {Page: 11},
		{Gap: true}, {Page: 20},
	}, entries)
}

func TestWindowClampsNearEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		want    []Entry
	}{
		{
			name:    "near start",
			current: 2,
			want:    []Entry{{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4}, {Gap: true}, {Page: 20}},
		},
		{
			name:    "near end",
			current: 19,
			want:    []Entry{{Page: 1}, {Gap: true}, {Page: 17}, {Page: 18}, {Page: 19}, {Page: 20}},
		},
		{
			name:    "at start",
			current: 1,
			want:    []Entry{{Page: 1}, {Page: 2}, {Page: 3}, {Page: 4}, {Gap: true}, {Page: 20}},
		},
		{
			name:    "at end",
			current: 20,
			want:    []Entry{{Page: 1}, {Gap: true}, {Page: 17}, {Page: 18}, {Page: 19}, {Page: 20}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Window(tt.current, 20, 5))
		})
	}
}

func TestWindowZeroInnerBudget(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Entry{{Page: 1}, {Gap: true}, {Page: 9}}, Window(5, 9, 2))
	require.Equal(t, []Entry{{Page: 1}, {Page: 2}}, Window(1, 2, 1))
}

func TestWindowDisabled(t *testing.T) {
	t.Parallel()

	require.Nil(t, Window(1, 10, 0))
	require.Nil(t, Window(1, 0, 5))
	require.Nil(t, Window(1, -3, 5))
}

// The window always holds both endpoints when compressed, the inner run is
// contiguous and contains the current page, and the concrete-page count
// never exceeds the budget.
func TestWindowInvariants(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 30; total++ {
		for max := 3; max <= 9; max++ {
			for current := 1; current <= total; current++ {
				entries := Window(current, total, max)
				nums := pages(entries)

				require.LessOrEqual(t, len(nums), max)
				require.Equal(t, 1, nums[0])
				require.Equal(t, total, nums[len(nums)-1])
				require.Contains(t, nums, current)

				runs := 0
				for i := 1; i < len(nums); i++ {
					if nums[i] != nums[i-1]+1 {
						runs++
					}
				}
				require.LessOrEqual(t, runs, 2,
					"total=%d max=%d current=%d: %v", total, max, current, nums)
			}
		}
	}
}

func TestClampPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		p, total    int
		want        int
		wantChanged bool
	}{
		{"in range", 3, 10, 3, false},
		{"at lower bound", 1, 10, 1, false},
		{"at upper bound", 10, 10, 10, false},
		{"below range", 0, 10, 1, true},
		{"above range", 11, 10, 10, true},
		{"negative", -5, 10, 1, true},
		{"no pages", 4, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, changed := ClampPage(tt.p, tt.total)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestClampPageIdempotent(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 25; total++ {
		for p := -2; p <= total+2; p++ {
			once, _ := ClampPage(p, total)
			twice, changed := ClampPage(once, total)
			require.Equal(t, once, twice)
			require.False(t, changed)
		}
	}
}
