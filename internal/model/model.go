// Package model holds the data types shared across the puzzle engine, the
// server, and the client: the quote corpus entry, a single generated
// puzzle, and the hints revealed for it.
package model

import (
	"encoding/json"
	"fmt"

	"github.com/unquote/unquote/internal/cipher"
)

// Quote is one entry from the quote corpus. Difficulty here is corpus
// metadata supplied with the entry, distinct from the difficulty the
// scorer computes for a generated Puzzle (the same quote scores
// differently under different cipher mappings).
type Quote struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Hint reveals one plaintext letter and the ciphertext letter it's mapped
// from, so a player can seed their solve without exposing the full key.
// On the wire each letter travels as a single-character JSON string, not
// a numeric code point.
type Hint struct {
	CipherLetter rune
	PlainLetter  rune
}

type hintWire struct {
	CipherLetter string `json:"cipherLetter"`
	PlainLetter  string `json:"plainLetter"`
}

func (h Hint) MarshalJSON() ([]byte, error) {
	return json.Marshal(hintWire{
		CipherLetter: string(h.CipherLetter),
		PlainLetter:  string(h.PlainLetter),
	})
}

func (h *Hint) UnmarshalJSON(data []byte) error {
	var w hintWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	cr := []rune(w.CipherLetter)
	pr := []rune(w.PlainLetter)
	if len(cr) != 1 || len(pr) != 1 {
		return fmt.Errorf("model: hint letters must be single characters, got %q/%q", w.CipherLetter, w.PlainLetter)
	}
	h.CipherLetter = cr[0]
	h.PlainLetter = pr[0]
	return nil
}

// Puzzle is a single day's encrypted quote: what the server hands to a
// client, plus the quote and mapping needed to check a submission. Quote
// and Mapping are excluded from the wire payload; the client only ever
// sees ciphertext, never the answer key.
type Puzzle struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Ciphertext string `json:"ciphertext"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	Hints      []Hint `json:"hints"`

	Quote   Quote          `json:"-"`
	Mapping cipher.Mapping `json:"-"`
}
