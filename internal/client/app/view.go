package app

import (
	"fmt"
	"strings"

	"github.com/unquote/unquote/internal/client/render"
	"github.com/unquote/unquote/internal/client/termio"
)

// View renders the current screen. Terminal size is checked on every
// render; a below-minimum terminal shows a placeholder without changing
// state.
func (m Model) View() string {
	if m.IsTooSmall() {
		return fmt.Sprintf("Terminal too small (need at least %dx%d).", termio.MinWidth, termio.MinHeight)
	}

	switch m.state {
	case StateLoading:
		return "Loading puzzle...\n"

	case StateError:
		return fmt.Sprintf("Error: %s\n\n[r] retry   [esc] quit\n", m.errorMsg)

	case StateOnboarding:
		if m.form != nil {
			return m.form.View()
		}
		return "Loading...\n"

	case StateClaimCodeDisplay:
		return fmt.Sprintf(
			"Your claim code: %s\n\nSave this to access your stats from another device.\n\nPress any key to continue.\n",
			m.claimCode,
		)

	case StateStats:
		return fmt.Sprintf(
			"Solved: %d   Median: %ds   Streak: %d\n\n[esc/b] back\n",
			m.stats.Solved, m.stats.MedianSeconds, m.stats.CurrentStreak,
		)

	case StatePlaying, StateChecking, StateSolved:
		return m.viewPuzzle()
	}

	return ""
}

func (m Model) viewPuzzle() string {
	if m.puzzle == nil {
		return "Loading puzzle...\n"
	}

	var b strings.Builder
	b.WriteString(render.Meta(m.puzzle.Author, m.puzzle.Category, m.puzzle.Difficulty, int(m.Elapsed().Seconds())))
	b.WriteString("\n\n")
	b.WriteString(render.Grid(m.cells, m.cursorPos, m.width))
	b.WriteString("\n\n")

	switch m.state {
	case StateChecking:
		b.WriteString("Checking...\n")
	case StateSolved:
		b.WriteString("Solved! [s] view stats   [esc] quit\n")
	default:
		b.WriteString(render.Status(m.statusMsg))
		b.WriteString("\n")
	}

	return b.String()
}
