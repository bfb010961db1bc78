// Package solution compares a submitted answer to a puzzle's plaintext.
package solution

import (
	"fmt"
	"unicode"
)

// Check reports whether submission matches plaintext, case-insensitively
// but position-exactly: corresponding characters must be letter-equal
// ignoring case, or identical otherwise. Whitespace runs are preserved,
// not collapsed. Both strings are normalized (see Normalize) before
// comparison; a normalization failure is returned as an error rather than
// treated as an incorrect answer.
func Check(plaintext, submission string) (bool, error) {
	normPlain, err := Normalize(plaintext)
	if err != nil {
		return false, fmt.Errorf("solution: normalizing plaintext: %w", err)
	}
	normSub, err := Normalize(submission)
	if err != nil {
		return false, fmt.Errorf("solution: normalizing submission: %w", err)
	}
	if len(normPlain) != len(normSub) {
		return false, nil
	}
	for i := range normPlain {
		if normPlain[i] != normSub[i] {
			return false, nil
		}
	}
	return true, nil
}

// Normalize uppercases letters and rejects any rune that is not an ASCII
// letter, a digit, punctuation, a symbol, or whitespace.
func Normalize(s string) (string, error) {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, r-'a'+'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case unicode.IsPunct(r), unicode.IsSpace(r), unicode.IsSymbol(r):
			out = append(out, r)
		default:
			return "", fmt.Errorf("solution: disallowed character %q", r)
		}
	}
	return string(out), nil
}
