// Package hints selects which cipher letters to reveal as pre-filled
// hints, biased toward plaintext letters that are rare in English (the
// idea being that a common letter is easy to guess from context, so
// revealing a rare one helps more).
package hints

import (
	"sort"

	"github.com/unquote/unquote/internal/cipher"
	"github.com/unquote/unquote/internal/difficulty"
	"github.com/unquote/unquote/internal/model"
)

// Select returns up to n hints for ciphertext under m, ordered rarest
// plaintext letter first. It considers only cipher letters that actually
// occur in ciphertext, each appearing at most once in the output.
func Select(m cipher.Mapping, ciphertext string, n int) []model.Hint {
	if n <= 0 || ciphertext == "" || len(m.CipherToPlain) == 0 {
		return nil
	}

	present := make(map[rune]bool)
	for _, r := range ciphertext {
		if r >= 'A' && r <= 'Z' {
			present[r] = true
		}
	}
	if len(present) == 0 {
		return nil
	}

	candidates := make([]model.Hint, 0, len(present))
	for c := range present {
		plain, ok := m.CipherToPlain[c]
		if !ok {
			continue
		}
		candidates = append(candidates, model.Hint{CipherLetter: c, PlainLetter: plain})
	}

	sort.Slice(candidates, func(i, j int) bool {
		fi := difficulty.LetterFrequency[candidates[i].PlainLetter]
		fj := difficulty.LetterFrequency[candidates[j].PlainLetter]
		if fi != fj {
			return fi < fj
		}
		return candidates[i].CipherLetter < candidates[j].CipherLetter
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
