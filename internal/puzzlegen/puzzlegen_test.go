package puzzlegen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/unquote/unquote/internal/quotesource"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.json")
	corpus := `[
		{"id":"q1","text":"HELLO WORLD","author":"Ada Lovelace","category":"tech","difficulty":10},
		{"id":"q2","text":"THE QUICK BROWN FOX JUMPS","author":"Anonymous","category":"misc","difficulty":30},
		{"id":"q3","text":"SIMPLICITY IS THE ULTIMATE SOPHISTICATION","author":"Leonardo","category":"art","difficulty":50}
	]`
	if err := os.WriteFile(path, []byte(corpus), 0o644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	keywords := []string{"PUZZLE", "CIPHER", "KEYWORD", "ZEBRA"}
	return New(quotesource.New(path), keywords)
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newGenerator(t)
	d := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	a, err := g.Generate(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := g.Generate(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID != b.ID || a.Ciphertext != b.Ciphertext || a.Difficulty != b.Difficulty {
		t.Fatalf("generation was not deterministic: %+v vs %+v", a, b)
	}
	if len(a.Hints) != len(b.Hints) {
		t.Fatalf("hint counts differ: %d vs %d", len(a.Hints), len(b.Hints))
	}
	for i := range a.Hints {
		if a.Hints[i] != b.Hints[i] {
			t.Fatalf("hints differ at %d: %+v vs %+v", i, a.Hints[i], b.Hints[i])
		}
	}
}

func TestGenerateDifferentDatesDiffer(t *testing.T) {
	g := newGenerator(t)
	a, err := g.Generate(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := g.Generate(time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == b.ID {
		t.Fatal("distinct dates produced the same game id")
	}
}

func TestGenerateByGameIDRoundTrips(t *testing.T) {
	g := newGenerator(t)
	d := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	original, err := g.Generate(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, ok, err := g.GenerateByGameID(original.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected GenerateByGameID to succeed for a valid id")
	}
	if again.Ciphertext != original.Ciphertext {
		t.Fatalf("regenerated puzzle differs: %+v vs %+v", again, original)
	}
}

func TestGenerateByGameIDNotFound(t *testing.T) {
	g := newGenerator(t)
	_, ok, err := g.GenerateByGameID("!!!!!!!!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected not-found for a malformed game id")
	}
}

func TestGenerateFailsWithoutKeywords(t *testing.T) {
	g := newGenerator(t)
	g.Keywords = nil
	if _, err := g.Generate(time.Now().UTC()); err == nil {
		t.Fatal("expected an error when no keywords are configured")
	}
}
