// Package password classifies password strength. Analysis is a pure function
// of the input string: one linear scan for character-class requirements plus
// a weak-pattern check against blocklists, producing a five-tier strength
// label and an eight-step segment score for a stepped meter. The input is
// never stored.
package password

// MinLength is the minimum rune count for the length requirement.
const MinLength = 8

// MaxSegments is the upper bound of the segment score.
const MaxSegments = 8

// Strength is a qualitative tier. The values form a total order.
type Strength int

const (
	StrengthEmpty Strength = iota
	StrengthPoor
	StrengthFair
	StrengthGood
	StrengthExcellent
)

func (s Strength) String() string {
	switch s {
	case StrengthEmpty:
		return "empty"
	case StrengthPoor:
		return "poor"
	case StrengthFair:
		return "fair"
	case StrengthGood:
		return "good"
	case StrengthExcellent:
		return "excellent"
	}
	return "unknown"
}

// Analysis is the result of analyzing one password.
type Analysis struct {
	HasMinLength bool
	HasUppercase bool
	HasLowercase bool
	HasNumber    bool
	HasSymbol    bool

	// Met counts satisfied requirements, 0 through 5.
	Met int

	Pattern  WeakPattern
	Strength Strength

	// SegmentScore is 0 through MaxSegments. A weak pattern caps it at 2
	// regardless of character-class diversity.
	SegmentScore int
}

// Weak reports whether a weak pattern was found.
func (a Analysis) Weak() bool {
	return a.Pattern != PatternNone
}

// Analyze classifies the given password. Requirement and length checks run
// on the raw string; the weak-pattern check runs on a trimmed, lowercased
// copy so whitespace padding cannot dodge the blocklists. Whitespace still
// counts toward length.
func Analyze(pw string) Analysis {
	var a Analysis
	length := 0
	for _, r := range pw {
		length++
		switch {
		case r >= 'A' && r <= 'Z':
			a.HasUppercase = true
		case r >= 'a' && r <= 'z':
			a.HasLowercase = true
		case r >= '0' && r <= '9':
			a.HasNumber = true
		case r >= '!' && r <= '~':
			a.HasSymbol = true
		}
	}
	a.HasMinLength = length >= MinLength

	for _, ok := range []bool{a.HasMinLength, a.HasUppercase, a.HasLowercase, a.HasNumber, a.HasSymbol} {
		if ok {
			a.Met++
		}
	}

	if length == 0 {
		a.Strength = StrengthEmpty
		return a
	}

	a.Pattern = DetectWeakPattern(pw)
	a.Strength = classify(a)
	a.SegmentScore = segmentScore(a, length)
	return a
}

func classify(a Analysis) Strength {
	switch {
	case a.Weak(), a.Met < 3:
		return StrengthPoor
	case a.Met == 3:
		return StrengthFair
	case a.Met == 4:
		return StrengthGood
	}
	return StrengthExcellent
}

// segmentScore maps requirement count and length onto 0..8. Longer
// passwords earn the upper score of each tier.
func segmentScore(a Analysis, length int) int {
	if a.Weak() {
		return min(2, max(1, a.Met))
	}
	switch {
	case a.Met <= 2:
		return a.Met
	case a.Met == 3:
		if length >= 10 {
			return 4
		}
		return 3
	case a.Met == 4:
		if length >= 12 {
			return 6
		}
		return 5
	}
	if length >= 14 {
		return 8
	}
	return 7
}
