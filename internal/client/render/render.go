// Package render turns a grid of cells, a cursor position, and conflict
// flags into a lipgloss-styled string for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/unquote/unquote/internal/client/grid"
	"github.com/unquote/unquote/internal/client/layout"
	"github.com/unquote/unquote/internal/difficulty"
)

var (
	cipherStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true)
	filledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Italic(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	// bandStyle colors the difficulty label by difficulty.Band, easiest to
	// hardest: green, yellow, orange, red.
	bandStyle = map[string]lipgloss.Style{
		"Easy":   lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		"Medium": lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
		"Hard":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"Expert": lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// ZoneID is the bubblezone mark id for the cell at index, used both when
// rendering the cell and when resolving a mouse click back to an index.
func ZoneID(index int) string {
	return fmt.Sprintf("cell-%d", index)
}

// Grid renders cells wrapped to width, two rows per cell (cipher letter
// above, player input below), with the cursor and any per-cell conflicts
// highlighted.
func Grid(cells []grid.Cell, cursor int, width int) string {
	if width <= 0 {
		width = 80
	}
	lines := layout.Wrap(cells, width)
	conflicts := grid.Conflicts(cells)

	var rows []string
	for _, line := range lines {
		var top, bottom strings.Builder
		for _, i := range line.CellIndices {
			c := cells[i]
			top.WriteString(renderCipherRune(c))
			bottom.WriteString(zone.Mark(ZoneID(i), renderInputRune(c, i == cursor, conflicts[i])))
		}
		rows = append(rows, top.String(), bottom.String(), "")
	}
	return strings.TrimRight(strings.Join(rows, "\n"), "\n")
}

func renderCipherRune(c grid.Cell) string {
	if c.Kind == grid.Punctuation {
		return string(c.Char)
	}
	return cipherStyle.Render(string(c.Char))
}

func renderInputRune(c grid.Cell, isCursor, conflicting bool) string {
	if c.Kind == grid.Punctuation {
		return string(c.Char)
	}

	glyph := "_"
	if c.Input != 0 {
		glyph = string(c.Input)
	}

	style := emptyStyle
	switch {
	case isCursor:
		style = cursorStyle
	case conflicting:
		style = conflictStyle
	case c.Kind == grid.Hint:
		style = hintStyle
	case c.Input != 0:
		style = filledStyle
	}
	return style.Render(glyph)
}

// Status renders the status line (error/info message) below the grid.
func Status(msg string) string {
	if msg == "" {
		return ""
	}
	return statusStyle.Render(Sanitize(msg))
}

// Meta renders the puzzle's attribution/difficulty/timer line. The
// difficulty band (Easy/Medium/Hard/Expert) is colored per bandStyle;
// the rest of the line uses metaStyle.
func Meta(author, category string, score int, elapsedSeconds int) string {
	band := difficulty.Band(score)
	style, ok := bandStyle[band]
	if !ok {
		style = metaStyle
	}

	return metaStyle.Render(fmt.Sprintf("%s — %s · ", Sanitize(author), Sanitize(category))) +
		style.Render(fmt.Sprintf("difficulty %d (%s)", score, band)) +
		metaStyle.Render(fmt.Sprintf(" · %02d:%02d", elapsedSeconds/60, elapsedSeconds%60))
}
