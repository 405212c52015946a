package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectWeakPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  WeakPattern
	}{
		{"clean", "Vim9!Krw", PatternNone},
		{"empty", "", PatternNone},
		{"whitespace only", "   ", PatternNone},
		{"common word", "mypasswordhere", PatternCommonWord},
		{"common word case folded", "LetMeIn", PatternCommonWord},
		{"short word embedded", "xxpassyy77", PatternCommonWord},
		{"top row walk", "qwerty", PatternKeyboardWalk},
		{"home row walk", "xxasdfyy", PatternKeyboardWalk},
		{"bottom row walk", "zxcvb", PatternKeyboardWalk},
		{"walk mid row", "kkdfghkk", PatternKeyboardWalk},
		{"digit run", "kt1234zz", PatternSequence},
		{"digit run reversed", "kt8765zz", PatternSequence},
		{"letter run", "kmnopz77", PatternSequence},
		{"letter run reversed", "kponmz77", PatternSequence},
		{"three letter run is fine", "kt123zz", PatternNone},
		{"triple character", "gooodgrief", PatternRepeat},
		{"block of two", "xyababab", PatternRepeatingBlock},
		{"block of three", "zw1zw1zw1", PatternRepeatingBlock},
		{"block twice only", "xyabab", PatternNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, DetectWeakPattern(tt.input))
		})
	}
}

func TestRepeatingBlockSpanRule(t *testing.T) {
	t.Parallel()

	// A one-character period needs six repeats to span six characters,
	// but three in a row is already caught by the repeated-run check.
	require.Equal(t, PatternRepeat, DetectWeakPattern("kkkz"))
	require.False(t, hasRepeatingBlock("kkkz"))
	require.True(t, hasRepeatingBlock("kkkkkkz"))
}

func TestShorterWalksAreImpliedByCanonicalRows(t *testing.T) {
	t.Parallel()

	// "tyui" sits inside the canonical top row; the blocklist never
	// stores it explicitly.
	require.Equal(t, PatternKeyboardWalk, DetectWeakPattern("xxtyuixx"))
}
