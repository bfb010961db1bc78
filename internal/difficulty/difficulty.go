// Package difficulty scores a puzzle's solving difficulty from its quote
// text and cipher mapping, combining four normalized components into a
// weighted 0-100 score with a fixed label banding.
package difficulty

import (
	"strings"

	"github.com/unquote/unquote/internal/cipher"
	"github.com/unquote/unquote/internal/model"
)

// LetterFrequency holds the approximate relative frequency (as a percentage
// of letter occurrences in general English text) of each uppercase letter.
// internal/hints reuses this table rather than keeping a second copy, since
// both packages need the same notion of which letters are "rare".
var LetterFrequency = map[rune]float64{
	'E': 12.70, 'T': 9.06, 'A': 8.17, 'O': 7.51, 'I': 6.97, 'N': 6.75,
	'S': 6.33, 'H': 6.09, 'R': 5.99, 'D': 4.25, 'L': 4.03, 'C': 2.78,
	'U': 2.76, 'M': 2.41, 'W': 2.36, 'F': 2.23, 'G': 2.02, 'Y': 1.97,
	'P': 1.93, 'B': 1.49, 'V': 0.98, 'K': 0.77, 'J': 0.15, 'X': 0.15,
	'Q': 0.10, 'Z': 0.07,
}

// rareThreshold marks a letter as rare when its general-English frequency
// falls below this percentage.
const rareThreshold = 2.0

const (
	weightUniqueLetters     = 0.30
	weightAvgWordLength     = 0.20
	weightRareLetterPresent = 0.25
	weightMappingDispersion = 0.25
)

// Score returns a difficulty score in [0, 100] for q encrypted under m,
// combining four normalized components: the fraction of the alphabet the
// quote's distinct letters cover, average word length, the presence of
// rare letters, and how far the cipher mapping scatters letters from their
// alphabetic position.
func Score(q model.Quote, m cipher.Mapping) int {
	letters := upperLetters(q.Text)

	score := weightUniqueLetters*uniqueLetterScore(letters) +
		weightAvgWordLength*avgWordLengthScore(q.Text) +
		weightRareLetterPresent*rareLetterScore(letters) +
		weightMappingDispersion*mappingDispersionScore(m)

	rounded := int(score + 0.5)
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// Band buckets a score into a fixed difficulty label. Thresholds are
// exact: 0-25 Easy, 26-50 Medium, 51-75 Hard, 76-100 Expert.
func Band(score int) string {
	switch {
	case score <= 25:
		return "Easy"
	case score <= 50:
		return "Medium"
	case score <= 75:
		return "Hard"
	default:
		return "Expert"
	}
}

func upperLetters(s string) []rune {
	var out []rune
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			out = append(out, r)
		}
	}
	return out
}

func uniqueLetterScore(letters []rune) float64 {
	seen := make(map[rune]bool)
	for _, r := range letters {
		seen[r] = true
	}
	return float64(len(seen)) / 26.0 * 100.0
}

// avgWordLengthScore normalizes average word length against a cap of 10
// letters per word, beyond which the score saturates at 100.
func avgWordLengthScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		for _, r := range strings.ToUpper(w) {
			if r >= 'A' && r <= 'Z' {
				total++
			}
		}
	}
	avg := float64(total) / float64(len(words))
	const lengthCap = 10.0
	if avg > lengthCap {
		avg = lengthCap
	}
	return avg / lengthCap * 100.0
}

func rareLetterScore(letters []rune) float64 {
	seen := make(map[rune]bool)
	distinct := 0
	rare := 0
	for _, r := range letters {
		if seen[r] {
			continue
		}
		seen[r] = true
		distinct++
		if LetterFrequency[r] < rareThreshold {
			rare++
		}
	}
	if distinct == 0 {
		return 0
	}
	return float64(rare) / float64(distinct) * 100.0
}

// mappingDispersionScore measures how far the cipher mapping scatters
// letters from their own alphabetic position, averaged over the alphabet
// and normalized against the maximum possible distance of 25.
func mappingDispersionScore(m cipher.Mapping) float64 {
	if len(m.PlainToCipher) == 0 {
		return 0
	}
	total := 0
	for plain, ciph := range m.PlainToCipher {
		d := int(plain) - int(ciph)
		if d < 0 {
			d = -d
		}
		total += d
	}
	avg := float64(total) / float64(len(m.PlainToCipher))
	return avg / 25.0 * 100.0
}
