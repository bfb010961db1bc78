// Package claimcode mints opaque, human-transcribable claim codes for
// anonymous players: a crypto/rand-backed draw from a curated word list,
// rendered dash-grouped so a code can be read back over a phone call or
// typed once without ambiguity.
package claimcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// words is a curated list of short, unambiguous-to-transcribe English
// words (no look-alike letter pairs within a word, 4-8 letters).
var words = []string{
	"TIGER", "MAPLE", "RIVER", "STONE", "CLOUD", "EMBER", "FROST", "CORAL",
	"SILVER", "AMBER", "CEDAR", "OTTER", "HAWK", "RAVEN", "DELTA", "ECHO",
	"QUARTZ", "TOPAZ", "GRANITE", "VALLEY", "HARBOR", "LANTERN", "MEADOW",
	"ORCHID", "PEBBLE", "RIDGE", "SPRUCE", "TUNDRA", "WILLOW", "ZENITH",
	"ARROW", "BEACON", "CANYON", "DRIFT", "FALCON", "GLACIER", "HOLLOW",
	"IVORY", "JASPER", "KESTREL", "LAGOON", "MERIDIAN", "NECTAR", "OPAL",
	"PRAIRIE", "QUAIL", "REEF", "SUMMIT", "THISTLE", "UMBER", "VIOLET",
}

// minNumber and maxNumber bound the trailing numeric group (inclusive).
const minNumber = 1000
const maxNumber = 9999

// Generate mints a new claim code of the form WORD-WORD-NNNN, e.g.
// TIGER-MAPLE-7492. The two words are drawn without replacement; combined
// with the four-digit trailing number this yields roughly
// log2(len(words)*(len(words)-1)*(maxNumber-minNumber+1)) bits of
// entropy, comfortably over 20 bits with the word list above.
func Generate() (string, error) {
	first, err := randomIndex(len(words))
	if err != nil {
		return "", fmt.Errorf("claimcode: drawing first word: %w", err)
	}

	second, err := randomIndexExcluding(len(words), first)
	if err != nil {
		return "", fmt.Errorf("claimcode: drawing second word: %w", err)
	}

	numBig, err := rand.Int(rand.Reader, big.NewInt(int64(maxNumber-minNumber+1)))
	if err != nil {
		return "", fmt.Errorf("claimcode: drawing trailing number: %w", err)
	}
	num := int(numBig.Int64()) + minNumber

	return strings.Join([]string{words[first], words[second], fmt.Sprintf("%04d", num)}, "-"), nil
}

func randomIndex(n int) (int, error) {
	idxBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(idxBig.Int64()), nil
}

func randomIndexExcluding(n, exclude int) (int, error) {
	idx, err := randomIndex(n - 1)
	if err != nil {
		return 0, err
	}
	if idx >= exclude {
		idx++
	}
	return idx, nil
}
