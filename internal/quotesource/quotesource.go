// Package quotesource loads and serves the quote corpus backing the
// puzzle generator. The corpus is read once, lazily, and validated in
// full before any quote is served: a single malformed entry fails the
// whole load rather than surfacing partial, silently-invalid data.
package quotesource

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/unquote/unquote/internal/model"
	"github.com/unquote/unquote/internal/rng"
)

// Source serves quotes from a corpus file, loading and validating it at
// most once regardless of concurrent first access.
type Source struct {
	path string

	once    sync.Once
	loadErr error
	quotes  []model.Quote
}

// New returns a Source that will read its corpus from path on first use.
// The file is not touched until Get or Random is first called.
func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) ensureLoaded() error {
	s.once.Do(func() {
		s.quotes, s.loadErr = load(s.path)
	})
	return s.loadErr
}

// Get returns the quote with the given id, or false if no such quote
// exists (including when the corpus is empty).
func (s *Source) Get(id string) (model.Quote, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return model.Quote{}, false, err
	}
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true, nil
		}
	}
	return model.Quote{}, false, nil
}

// Random selects a quote. With a non-empty seed the selection is
// deterministic (via internal/rng); with an empty seed it draws from a
// process-wide nondeterministic source. It errors if the corpus is empty.
func (s *Source) Random(seed string) (model.Quote, error) {
	if err := s.ensureLoaded(); err != nil {
		return model.Quote{}, err
	}
	if len(s.quotes) == 0 {
		return model.Quote{}, fmt.Errorf("quotesource: corpus is empty")
	}
	if seed != "" {
		q, _ := rng.Select(rng.New(seed), s.quotes)
		return q, nil
	}
	return s.quotes[rand.Intn(len(s.quotes))], nil
}

func load(path string) ([]model.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quotesource: reading corpus %s: %w", path, err)
	}

	var quotes []model.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("quotesource: parsing corpus %s: %w", path, err)
	}

	for i, q := range quotes {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("quotesource: corpus %s entry %d (id %q): %w", path, i, q.ID, err)
		}
	}
	return quotes, nil
}

func validate(q model.Quote) error {
	if q.ID == "" {
		return fmt.Errorf("id must not be empty")
	}
	if q.Text == "" {
		return fmt.Errorf("text must not be empty")
	}
	if q.Difficulty < 0 || q.Difficulty > 100 {
		return fmt.Errorf("difficulty %d out of range [0, 100]", q.Difficulty)
	}
	return nil
}
