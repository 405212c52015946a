package password

import "strings"

// WeakPattern identifies which blocklist a password matched.
type WeakPattern int

const (
	PatternNone WeakPattern = iota
	PatternCommonWord
	PatternKeyboardWalk
	PatternSequence
	PatternRepeat
	PatternRepeatingBlock
)

func (p WeakPattern) String() string {
	switch p {
	case PatternNone:
		return "none"
	case PatternCommonWord:
		return "common word"
	case PatternKeyboardWalk:
		return "keyboard walk"
	case PatternSequence:
		return "sequential run"
	case PatternRepeat:
		return "repeated character"
	case PatternRepeatingBlock:
		return "repeating block"
	}
	return "unknown"
}

// commonWords are matched as substrings. Short entries like "pass" flag any
// password built around them, which is deliberate: embedding a guessable
// word in filler does not make it less guessable.
var commonWords = []string{
	"password",
	"pass",
	"letmein",
	"welcome",
	"admin",
	"login",
	"master",
	"monkey",
	"dragon",
	"iloveyou",
	"sunshine",
	"princess",
	"football",
	"baseball",
	"superman",
	"secret",
}

// keyboardRows hold only the longest canonical form of each walk; any
// shorter walk is a substring of one of these.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1qaz2wsx",
}

// sequences are scanned forward and reversed.
var sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
}

const walkLength = 4

// DetectWeakPattern tests the trimmed, lowercased password against the
// blocklists and returns the first match. Checks run from cheapest to most
// structural; the order also fixes which pattern is reported when several
// apply.
func DetectWeakPattern(pw string) WeakPattern {
	s := strings.ToLower(strings.TrimSpace(pw))
	if s == "" {
		return PatternNone
	}

	for _, word := range commonWords {
		if strings.Contains(s, word) {
			return PatternCommonWord
		}
	}
	if containsWalk(s, keyboardRows, false) {
		return PatternKeyboardWalk
	}
	if containsWalk(s, sequences, true) {
		return PatternSequence
	}
	if hasRepeatedRun(s) {
		return PatternRepeat
	}
	if hasRepeatingBlock(s) {
		return PatternRepeatingBlock
	}
	return PatternNone
}

// containsWalk reports whether s contains any window of walkLength
// consecutive characters from one of the canonical strings, optionally also
// checking the reversed direction.
func containsWalk(s string, canonical []string, reversed bool) bool {
	for _, row := range canonical {
		if containsWindow(s, row) {
			return true
		}
		if reversed && containsWindow(s, reverse(row)) {
			return true
		}
	}
	return false
}

func containsWindow(s, row string) bool {
	for i := 0; i+walkLength <= len(row); i++ {
		if strings.Contains(s, row[i:i+walkLength]) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// hasRepeatedRun reports three or more identical characters in a row.
// Go's regexp has no backreferences, so this is a plain scan.
func hasRepeatedRun(s string) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasRepeatingBlock reports a block of one to three characters repeated at
// least three times in a row, spanning at least six characters.
func hasRepeatingBlock(s string) bool {
	n := len(s)
	for period := 1; period <= 3; period++ {
		for i := 0; i+2*period <= n; i++ {
			block := s[i : i+period]
			reps := 1
			for j := i + period; j+period <= n && s[j:j+period] == block; j += period {
				reps++
			}
			if reps >= 3 && reps*period >= 6 {
				return true
			}
		}
	}
	return false
}
