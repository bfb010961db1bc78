// Package layout computes a pure word-wrap of a puzzle's cell sequence so
// the renderer and mouse-click handler agree on where each cell lands on
// screen without either depending on the other.
package layout

import "github.com/unquote/unquote/internal/client/grid"

// Line is one rendered row: the indices into the original cell sequence
// that belong to it, in order.
type Line struct {
	CellIndices []int
}

// Wrap groups cells into words (maximal runs of non-space cells),
// separated by single-space cells, and lays words out left to right,
// wrapping to a new line whenever the next word would exceed width.
// Leading spaces on a wrapped line are stripped: a space cell that would
// start a new line is dropped rather than rendered.
//
// width must be positive; a word longer than width still occupies its
// own line rather than being split mid-word.
func Wrap(cells []grid.Cell, width int) []Line {
	if width <= 0 || len(cells) == 0 {
		return nil
	}

	words := groupWords(cells)

	var lines []Line
	var current []int
	lineLen := 0

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, Line{CellIndices: current})
			current = nil
			lineLen = 0
		}
	}

	for _, w := range words {
		if w.isSpace {
			if lineLen == 0 {
				// Would be a leading space on the (possibly new) line; drop it.
				continue
			}
			if lineLen+1 > width {
				flush()
				continue
			}
			current = append(current, w.indices...)
			lineLen++
			continue
		}

		wordLen := len(w.indices)
		if lineLen > 0 && lineLen+wordLen > width {
			flush()
		}
		current = append(current, w.indices...)
		lineLen += wordLen
	}
	flush()

	return lines
}

type word struct {
	indices []int
	isSpace bool
}

// groupWords splits cells into runs: single-cell space runs, and maximal
// runs of consecutive non-space cells ("words").
func groupWords(cells []grid.Cell) []word {
	var words []word
	var current []int
	for i, c := range cells {
		if c.Char == ' ' {
			if len(current) > 0 {
				words = append(words, word{indices: current})
				current = nil
			}
			words = append(words, word{indices: []int{i}, isSpace: true})
			continue
		}
		current = append(current, i)
	}
	if len(current) > 0 {
		words = append(words, word{indices: current})
	}
	return words
}
