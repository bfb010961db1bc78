package hints

import (
	"testing"

	"github.com/unquote/unquote/internal/cipher"
)

func TestSelectRespectsInvariants(t *testing.T) {
	m := cipher.Build("ZEBRA", 3)
	ciphertext := m.Apply("THE QUICK BROWN FOX")

	for n := 0; n <= 10; n++ {
		out := Select(m, ciphertext, n)
		if len(out) > n {
			t.Fatalf("Select returned %d hints, requested at most %d", len(out), n)
		}

		seen := make(map[rune]bool)
		for _, h := range out {
			if seen[h.CipherLetter] {
				t.Fatalf("duplicate cipherLetter %c in output", h.CipherLetter)
			}
			seen[h.CipherLetter] = true

			if m.CipherToPlain[h.CipherLetter] != h.PlainLetter {
				t.Fatalf("hint %+v does not match the mapping", h)
			}

			found := false
			for _, r := range ciphertext {
				if r == h.CipherLetter {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("hint cipherLetter %c does not occur in ciphertext %q", h.CipherLetter, ciphertext)
			}
		}
	}
}

func TestSelectEdgeCases(t *testing.T) {
	m := cipher.Build("KEY", 1)
	if out := Select(m, "HELLO", 0); out != nil {
		t.Fatalf("expected nil for n=0, got %v", out)
	}
	if out := Select(m, "HELLO", -1); out != nil {
		t.Fatalf("expected nil for negative n, got %v", out)
	}
	if out := Select(m, "", 3); out != nil {
		t.Fatalf("expected nil for empty ciphertext, got %v", out)
	}
	if out := Select(cipher.Mapping{}, "HELLO", 3); out != nil {
		t.Fatalf("expected nil for empty mapping, got %v", out)
	}
}

func TestSelectDeterministic(t *testing.T) {
	m := cipher.Build("PUZZLE", 9)
	ciphertext := m.Apply("A QUICK MOVEMENT OF THE ENEMY")
	a := Select(m, ciphertext, 3)
	b := Select(m, ciphertext, 3)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic output lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSelectBiasesTowardRareLetters(t *testing.T) {
	m := cipher.Build("MYSTERY", 4)
	ciphertext := m.Apply("JAZZY QUIZ")
	out := Select(m, ciphertext, 1)
	if len(out) != 1 {
		t.Fatalf("expected exactly one hint, got %d", len(out))
	}
	if out[0].PlainLetter != 'J' && out[0].PlainLetter != 'Z' && out[0].PlainLetter != 'Q' {
		t.Fatalf("expected the rarest letter to be chosen first, got %c", out[0].PlainLetter)
	}
}
