package difficulty

import (
	"testing"

	"github.com/unquote/unquote/internal/cipher"
	"github.com/unquote/unquote/internal/model"
)

func TestScoreInRange(t *testing.T) {
	quotes := []model.Quote{
		{Text: "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"},
		{Text: "A"},
		{Text: ""},
		{Text: "ZEPHYR WALTZ, BEQUICK VOW JUDGMENT FIX"},
	}
	for _, q := range quotes {
		for _, seed := range []int64{0, 1, 13} {
			m := cipher.Build("PUZZLE", seed)
			s := Score(q, m)
			if s < 0 || s > 100 {
				t.Fatalf("Score(%q) = %d, want within [0, 100]", q.Text, s)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	q := model.Quote{Text: "SOME SAMPLE QUOTE TEXT"}
	m := cipher.Build("KEYWORD", 5)
	if Score(q, m) != Score(q, m) {
		t.Fatal("Score is not deterministic for identical inputs")
	}
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Easy"},
		{25, "Easy"},
		{26, "Medium"},
		{50, "Medium"},
		{51, "Hard"},
		{75, "Hard"},
		{76, "Expert"},
		{100, "Expert"},
	}
	for _, c := range cases {
		if got := Band(c.score); got != c.want {
			t.Errorf("Band(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestRareLetterScoreFavorsUncommonLetters(t *testing.T) {
	common := model.Quote{Text: "A SEA OF EASE AND ANTE"}
	rare := model.Quote{Text: "JAZZY QUIZ BOXQUIZ"}
	m := cipher.Build("KEY", 2)
	if Score(rare, m) <= Score(common, m) {
		t.Fatalf("expected a quote rich in rare letters to score higher than a common-letter quote")
	}
}
