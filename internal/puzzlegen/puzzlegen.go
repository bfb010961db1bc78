// Package puzzlegen composes the quote source, cipher builder, hint
// selector, and difficulty scorer into the puzzle for a given calendar
// date. Generation is a pure function of the date: the same date always
// produces a byte-identical puzzle.
package puzzlegen

import (
	"fmt"
	"time"

	"github.com/unquote/unquote/internal/cipher"
	"github.com/unquote/unquote/internal/difficulty"
	"github.com/unquote/unquote/internal/gameid"
	"github.com/unquote/unquote/internal/hints"
	"github.com/unquote/unquote/internal/model"
	"github.com/unquote/unquote/internal/quotesource"
	"github.com/unquote/unquote/internal/rng"
)

// DefaultHintCount is the number of hints generated for each puzzle
// unless the Generator is configured otherwise.
const DefaultHintCount = 2

// Generator produces puzzles for calendar dates from a quote source and a
// fixed keyword list.
type Generator struct {
	Quotes    *quotesource.Source
	Keywords  []string
	HintCount int
}

// New returns a Generator with the default hint count.
func New(quotes *quotesource.Source, keywords []string) *Generator {
	return &Generator{Quotes: quotes, Keywords: keywords, HintCount: DefaultHintCount}
}

// Generate builds the puzzle for the UTC calendar day of d. The quote and
// keyword draws are decorrelated: the keyword is selected from a
// sub-seed derived from the date seed, not from the same RNG stream as
// the quote, so a change in the quote corpus cannot shift which keyword a
// given date would otherwise have drawn.
func (g *Generator) Generate(d time.Time) (model.Puzzle, error) {
	if len(g.Keywords) == 0 {
		return model.Puzzle{}, fmt.Errorf("puzzlegen: no keywords configured")
	}

	seed := d.UTC().Format("2006-01-02")

	quote, err := g.Quotes.Random(seed)
	if err != nil {
		return model.Puzzle{}, fmt.Errorf("puzzlegen: selecting quote: %w", err)
	}

	keyword, ok := cipher.PickKeyword(g.Keywords, seed+"#keyword")
	if !ok {
		return model.Puzzle{}, fmt.Errorf("puzzlegen: selecting keyword: no keywords available")
	}

	mapping := cipher.Build(keyword, rng.Hash(seed))
	ciphertext := mapping.Apply(quote.Text)

	hintCount := g.HintCount
	if hintCount == 0 {
		hintCount = DefaultHintCount
	}
	puzzleHints := hints.Select(mapping, ciphertext, hintCount)

	score := difficulty.Score(quote, mapping)

	return model.Puzzle{
		ID:         gameid.Encode(d),
		Date:       seed,
		Ciphertext: ciphertext,
		Author:     quote.Author,
		Category:   quote.Category,
		Difficulty: score,
		Hints:      puzzleHints,
		Quote:      quote,
		Mapping:    mapping,
	}, nil
}

// GenerateByGameID decodes id back into a calendar date and regenerates
// its puzzle, or reports not-found if id does not decode to an in-range
// date.
func (g *Generator) GenerateByGameID(id string) (model.Puzzle, bool, error) {
	d, ok := gameid.Decode(id)
	if !ok {
		return model.Puzzle{}, false, nil
	}
	p, err := g.Generate(d)
	if err != nil {
		return model.Puzzle{}, false, err
	}
	return p, true, nil
}
