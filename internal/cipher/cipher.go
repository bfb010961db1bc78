// Package cipher builds deterministic keyword-cipher permutations of the
// 26-letter English alphabet. The keyword's distinct letters (first
// occurrence, in order) prefix the ciphertext alphabet; the remaining
// letters are appended in reverse order starting from a seed-rotated
// position.
package cipher

import "github.com/unquote/unquote/internal/rng"

const alphabetSize = 26

// Mapping is a bijection between the 26 uppercase English letters, stored in
// both directions for O(1) lookup. Both maps always hold exactly 26 entries
// and are mutually inverse.
type Mapping struct {
	PlainToCipher map[rune]rune
	CipherToPlain map[rune]rune
}

// Apply substitutes letters in s according to the mapping. Non-letter runes
// pass through verbatim; letters are uppercased before substitution and the
// output is always uppercase.
func (m Mapping) Apply(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		if r >= 'A' && r <= 'Z' {
			out = append(out, m.PlainToCipher[r])
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Build constructs a keyword-cipher permutation. keyword must be ASCII
// letters of length <= 26; seed selects the rotated starting point for the
// remaining alphabet. The result is deterministic in (keyword, seed) and is
// always a full permutation of A-Z. Fixed points (a letter mapping to
// itself) are allowed, not forbidden, since some keywords naturally produce
// them.
func Build(keyword string, seed int64) Mapping {
	prefix := distinctUpperLetters(keyword)

	seen := make(map[rune]bool, len(prefix))
	for _, r := range prefix {
		seen[r] = true
	}

	var remaining []rune
	for r := rune('A'); r <= 'Z'; r++ {
		if !seen[r] {
			remaining = append(remaining, r)
		}
	}

	// Rotate the remaining letters to a seed-chosen start, then append them
	// in reverse order.
	rotated := rotate(remaining, seed)
	reversed := make([]rune, len(rotated))
	for i, r := range rotated {
		reversed[len(rotated)-1-i] = r
	}

	sequence := append(append([]rune{}, prefix...), reversed...)

	m := Mapping{
		PlainToCipher: make(map[rune]rune, alphabetSize),
		CipherToPlain: make(map[rune]rune, alphabetSize),
	}
	for i := 0; i < alphabetSize; i++ {
		plain := rune('A' + i)
		cipher := sequence[i]
		m.PlainToCipher[plain] = cipher
		m.CipherToPlain[cipher] = plain
	}
	return m
}

// distinctUpperLetters uppercases keyword and returns its distinct ASCII
// letters in first-occurrence order.
func distinctUpperLetters(keyword string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range keyword {
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		if r < 'A' || r > 'Z' {
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

func rotate(xs []rune, seed int64) []rune {
	n := len(xs)
	if n == 0 {
		return xs
	}
	start := int(((seed % int64(n)) + int64(n)) % int64(n))
	out := make([]rune, n)
	for i := range xs {
		out[i] = xs[(start+i)%n]
	}
	return out
}

// PickKeyword deterministically selects one keyword from a non-empty list
// using the given seed.
func PickKeyword(keywords []string, seed string) (string, bool) {
	return rng.Select(rng.New(seed), keywords)
}
