package layout

import (
	"testing"

	"github.com/unquote/unquote/internal/client/grid"
)

func cellIndicesOf(lines []Line) [][]int {
	out := make([][]int, len(lines))
	for i, l := range lines {
		out[i] = l.CellIndices
	}
	return out
}

func TestWrapFitsOnOneLine(t *testing.T) {
	cells := grid.Build("HI THERE", nil)
	lines := Wrap(cells, 80)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %+v", len(lines), cellIndicesOf(lines))
	}
	if len(lines[0].CellIndices) != len(cells) {
		t.Errorf("expected all %d cells on one line, got %d", len(cells), len(lines[0].CellIndices))
	}
}

func TestWrapBreaksAtWordBoundary(t *testing.T) {
	cells := grid.Build("AB CD EF", nil)
	lines := Wrap(cells, 5)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping to produce multiple lines, got %+v", cellIndicesOf(lines))
	}
	for _, l := range lines {
		if len(l.CellIndices) > 5 {
			t.Errorf("line exceeds width: %v", l.CellIndices)
		}
	}
}

func TestWrapStripsLeadingSpaceOnNewLine(t *testing.T) {
	cells := grid.Build("AAAA BBBB", nil)
	lines := Wrap(cells, 4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), cellIndicesOf(lines))
	}
	// second line must not start with the space cell (index 4)
	if lines[1].CellIndices[0] == 4 {
		t.Errorf("expected leading space stripped from wrapped line, got %+v", lines[1].CellIndices)
	}
}

func TestWrapOverlongWordOccupiesOwnLine(t *testing.T) {
	cells := grid.Build("SUPERCALIFRAGILISTIC", nil)
	lines := Wrap(cells, 5)
	if len(lines) != 1 {
		t.Fatalf("expected a single line for one unbreakable word, got %d", len(lines))
	}
}

func TestWrapEmptyInputs(t *testing.T) {
	if Wrap(nil, 10) != nil {
		t.Error("expected nil for empty cells")
	}
	cells := grid.Build("AB", nil)
	if Wrap(cells, 0) != nil {
		t.Error("expected nil for non-positive width")
	}
}
