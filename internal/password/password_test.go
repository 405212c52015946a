package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	a := Analyze("")
	require.Equal(t, StrengthEmpty, a.Strength)
	require.Equal(t, 0, a.SegmentScore)
	require.Equal(t, 0, a.Met)
	require.False(t, a.Weak())
}

func TestAnalyzeRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMet int
	}{
		{"lowercase only", "zkxmvw", 1},
		{"lower and upper", "zkXmvw", 2},
		{"lower upper digit", "zkXmv7", 3},
		{"four classes short", "Ab1!", 4},
		{"all five", "Vim9!Krw", 5},
		{"digits only", "80753", 1},
		{"symbols only", "!@#$%", 1},
		{"length only", "        x", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := Analyze(tt.input)
			require.Equal(t, tt.wantMet, a.Met)
		})
	}
}

func TestAnalyzeTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      Strength
		wantScore int
	}{
		{"one class", "zkxmvw", StrengthPoor, 1},
		{"two classes", "zkXmvw", StrengthPoor, 2},
		{"three classes short", "zkXmv7", StrengthFair, 3},
		{"three classes long", "zkXmvwtbnq", StrengthFair, 4},
		{"four classes short", "Ab1!", StrengthGood, 5},
		{"four classes long", "Ab1kmtwzxrvq", StrengthGood, 6},
		{"five classes short", "Vim9!Krw", StrengthExcellent, 7},
		{"five classes long", "Vim9!KrwBz2?tg", StrengthExcellent, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := Analyze(tt.input)
			require.False(t, a.Weak(), "input should not match a blocklist")
			require.Equal(t, tt.want, a.Strength)
			require.Equal(t, tt.wantScore, a.SegmentScore)
		})
	}
}

func TestAnalyzeWeakPatternCapsScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"common word", "password123"},
		{"common word diverse", "xKpassword9!Tz"},
		{"keyboard walk", "Xqwer55!Bn"},
		{"sequential digits", "Kt!1234mWz"},
		{"reverse sequence", "Kt!9876mWz"},
		{"repeated characters", "Goood1!xyz"},
		{"repeating block", "Xy1Xy1Xy1!A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := Analyze(tt.input)
			require.True(t, a.Weak(), "expected a blocklist match")
			require.Equal(t, StrengthPoor, a.Strength)
			require.LessOrEqual(t, a.SegmentScore, 2)
			require.GreaterOrEqual(t, a.SegmentScore, 1)
		})
	}
}

func TestAnalyzeWhitespaceCountsTowardLength(t *testing.T) {
	t.Parallel()

	a := Analyze("  Vim9!  ")
	require.True(t, a.HasMinLength)
	require.False(t, a.Weak())
}

func TestAnalyzePaddingCannotDodgeBlocklist(t *testing.T) {
	t.Parallel()

	a := Analyze("   password   ")
	require.Equal(t, PatternCommonWord, a.Pattern)
	require.Equal(t, StrengthPoor, a.Strength)
}

func TestSegmentScoreMonotonicInMet(t *testing.T) {
	t.Parallel()

	// One input per met tier, none weak, all at the shorter length band.
	inputs := []string{"zkxmvw", "zkXmvw", "zkXmv7", "Ab1!", "Vim9!Krw"}
	prev := -1
	for _, in := range inputs {
		a := Analyze(in)
		require.False(t, a.Weak())
		require.Greater(t, a.SegmentScore, prev, "input %q", in)
		prev = a.SegmentScore
	}
}

func TestStrengthString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "empty", StrengthEmpty.String())
	require.Equal(t, "poor", StrengthPoor.String())
	require.Equal(t, "fair", StrengthFair.String())
	require.Equal(t, "good", StrengthGood.String())
	require.Equal(t, "excellent", StrengthExcellent.String())
}
