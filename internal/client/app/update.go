package app

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	zone "github.com/lrstanley/bubblezone"

	"github.com/unquote/unquote/internal/client/clientconfig"
	"github.com/unquote/unquote/internal/client/grid"
	"github.com/unquote/unquote/internal/client/render"
	"github.com/unquote/unquote/internal/client/session"
)

// Init fires the initial config load; the rest of the startup sequence
// (onboarding or puzzle fetch) is chosen once the config arrives.
func (m Model) Init() tea.Cmd {
	return loadConfigCmd()
}

// Update is the program's central message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeReady = true
		return m, nil

	case puzzleFetchedMsg:
		return m.handlePuzzleFetched(msg)

	case solutionCheckedMsg:
		return m.handleSolutionChecked(msg)

	case errMsg:
		return m.handleError(msg)

	case tickMsg:
		if m.state == StatePlaying || m.state == StateChecking {
			return m, tickCmd()
		}
		return m, nil

	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg)

	case configLoadedMsg:
		return m.handleConfigLoaded(msg)

	case playerRegisteredMsg:
		return m.handlePlayerRegistered(msg)

	case configSavedMsg:
		return m.handleConfigSaved()

	case statsFetchedMsg:
		return m.handleStatsFetched(msg)
	}

	if m.state == StateOnboarding && m.form != nil {
		formModel, cmd := m.form.Update(msg)
		if f, ok := formModel.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == StateStats {
		switch msg.String() {
		case "esc", "b":
			m.state = StateSolved
			return m, nil
		}
		return m, nil
	}

	if msg.String() == "esc" {
		return m, tea.Quit
	}

	if m.IsTooSmall() {
		return m, nil
	}

	switch m.state {
	case StateLoading, StateChecking:
		return m, nil

	case StateError:
		return m.handleErrorKeyMsg(msg)

	case StatePlaying:
		return m.handlePlayingKeyMsg(msg)

	case StateSolved:
		if msg.String() == "s" && m.claimCode != "" {
			m.state = StateLoading
			return m, fetchStatsCmd(m.client, m.claimCode)
		}
		return m, nil

	case StateOnboarding:
		return m.handleOnboardingKeyMsg(msg)

	case StateClaimCodeDisplay:
		m.state = StateLoading
		m.form = nil
		return m, fetchPuzzleCmd(m.client, m.opts.Date)
	}

	return m, nil
}

func (m Model) handlePlayerRegistered(msg playerRegisteredMsg) (tea.Model, tea.Cmd) {
	m.claimCode = msg.claimCode
	m.state = StateClaimCodeDisplay
	return m, saveConfigCmd(clientconfig.Config{ClaimCode: msg.claimCode, StatsEnabled: true})
}

func (m Model) handleConfigSaved() (tea.Model, tea.Cmd) {
	if m.state == StateOnboarding {
		m.state = StateLoading
		return m, fetchPuzzleCmd(m.client, m.opts.Date)
	}
	return m, nil
}

// handleConfigLoaded moves straight to puzzle fetch if a config already
// exists, or shows the onboarding form otherwise.
func (m Model) handleConfigLoaded(msg configLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.config != nil {
		m.cfg = *msg.config
		m.claimCode = msg.config.ClaimCode
		m.state = StateLoading
		return m, fetchPuzzleCmd(m.client, m.opts.Date)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Track Your Stats?").
				Description("Unquote can track your solve times and streaks.\n\n"+
					"What we store:\n"+
					"  - Which puzzles you solved\n"+
					"  - How long each took\n\n"+
					"What we don't store:\n"+
					"  - No personal information\n"+
					"  - No email, no password\n\n"+
					"You'll get a random claim code (like TIGER-MAPLE-7492)\n"+
					"that identifies your stats. Save it to access your\n"+
					"stats from another device."),
			huh.NewConfirm().
				Title("Track my stats?").
				Affirmative("Yes, track my stats").
				Negative("No thanks").
				Value(&m.optIn),
		),
	).WithShowHelp(false).WithShowErrors(false)
	m.state = StateOnboarding
	return m, m.form.Init()
}

func (m Model) handleOnboardingKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if m.optIn {
			cfg := clientconfig.Config{StatsEnabled: true}
			m.cfg = cfg
			return m, tea.Batch(saveConfigCmd(cfg), registerPlayerCmd(m.client))
		}
		cfg := clientconfig.Config{StatsEnabled: false}
		m.cfg = cfg
		return m, saveConfigCmd(cfg)
	}

	return m, cmd
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state != StatePlaying {
		return m, nil
	}
	if m.IsTooSmall() {
		return m, nil
	}

	for i, c := range m.cells {
		if c.Kind != grid.Letter {
			continue
		}
		if zone.Get(render.ZoneID(i)).InBounds(msg) {
			m.cursorPos = i
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleErrorKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		m.state = StateLoading
		m.errorMsg = ""
		return m, fetchPuzzleCmd(m.client, m.opts.Date)
	}
	return m, nil
}

func (m Model) handlePlayingKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		grid.ClearAll(m.cells)
		m.cursorPos = grid.FirstLetter(m.cells)
		m.statusMsg = ""
		return m, saveSessionCmd(m.writer, m.puzzle.ID, m.cells, m.Elapsed())

	case "enter":
		return m.handleSubmit()

	case "left":
		if prev := grid.PrevLetter(m.cells, m.cursorPos); prev >= 0 {
			m.cursorPos = prev
		}
		return m, nil

	case "right":
		if next := grid.NextLetter(m.cells, m.cursorPos); next >= 0 {
			m.cursorPos = next
		}
		return m, nil

	case "backspace":
		if m.cursorPos >= 0 && m.cursorPos < len(m.cells) {
			grid.Clear(m.cells, m.cursorPos)
			if prev := grid.PrevLetter(m.cells, m.cursorPos); prev >= 0 {
				m.cursorPos = prev
			}
		}
		m.statusMsg = ""
		return m, saveSessionCmd(m.writer, m.puzzle.ID, m.cells, m.Elapsed())

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			r := msg.Runes[0]
			if unicode.IsLetter(r) {
				return m.handleLetterInput(unicode.ToUpper(r))
			}
		}
	}
	return m, nil
}

func (m Model) handleLetterInput(letter rune) (tea.Model, tea.Cmd) {
	if m.cursorPos < 0 || m.cursorPos >= len(m.cells) {
		return m, nil
	}
	if grid.Set(m.cells, m.cursorPos, letter) {
		m.cursorPos = grid.Advance(m.cells, m.cursorPos)
	}
	m.statusMsg = ""
	return m, saveSessionCmd(m.writer, m.puzzle.ID, m.cells, m.Elapsed())
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !grid.IsComplete(m.cells) {
		m.statusMsg = "Fill in all letters first!"
		return m, nil
	}

	solution := grid.AssembleSolution(m.cells)
	m.state = StateChecking
	m.statusMsg = ""

	// Only attach the claim code when the player opted into stats tracking;
	// a code left in the config file with stats_enabled false stays unused.
	claimCode := m.claimCode
	if !m.cfg.StatsEnabled {
		claimCode = ""
	}
	return m, checkSolutionCmd(m.client, m.puzzle.ID, solution, claimCode, int(m.Elapsed().Seconds()))
}

func (m Model) handleSolutionChecked(msg solutionCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.result.Correct {
		m.state = StateSolved
		m.statusMsg = ""
		m.elapsedAtPause += time.Since(m.startTime)
		return m, saveSolvedSessionCmd(m.writer, m.puzzle.ID, m.cells, m.elapsedAtPause)
	}
	m.state = StatePlaying
	m.statusMsg = "Not quite right. Keep trying!"
	return m, nil
}

func (m Model) handlePuzzleFetched(msg puzzleFetchedMsg) (tea.Model, tea.Cmd) {
	msg.puzzle.Author = render.Sanitize(msg.puzzle.Author)
	msg.puzzle.Category = render.Sanitize(msg.puzzle.Category)
	msg.puzzle.Ciphertext = render.Sanitize(msg.puzzle.Ciphertext)
	for i := range msg.puzzle.Hints {
		msg.puzzle.Hints[i].CipherLetter = sanitizeRune(msg.puzzle.Hints[i].CipherLetter)
		msg.puzzle.Hints[i].PlainLetter = sanitizeRune(msg.puzzle.Hints[i].PlainLetter)
	}

	hints := make(map[rune]rune, len(msg.puzzle.Hints))
	for _, h := range msg.puzzle.Hints {
		hints[h.CipherLetter] = h.PlainLetter
	}

	m.puzzle = msg.puzzle
	m.cells = grid.Build(msg.puzzle.Ciphertext, hints)
	m.cursorPos = grid.FirstLetter(m.cells)
	m.state = StatePlaying
	m.startTime = time.Now()
	m.elapsedAtPause = 0
	return m, loadSessionCmd(msg.puzzle.ID)
}

// sanitizeRune strips a single rune down to empty if it is a control
// character or escape byte, mirroring render.Sanitize for non-string
// hint letters.
func sanitizeRune(r rune) rune {
	if r == 0x1b || (r < 0x20 && r != '\t') {
		return 0
	}
	return r
}

func (m Model) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.session == nil {
		return m, tickCmd()
	}

	session.Apply(m.cells, *msg.session)

	if msg.session.Solved {
		m.state = StateSolved
		m.elapsedAtPause = time.Duration(msg.session.CompletionSeconds) * time.Second
		m.statusMsg = ""
		return m, nil
	}

	m.elapsedAtPause = time.Duration(msg.session.ElapsedSeconds) * time.Second
	m.startTime = time.Now()
	return m, tickCmd()
}

func (m Model) handleStatsFetched(msg statsFetchedMsg) (tea.Model, tea.Cmd) {
	m.stats = msg.stats
	m.state = StateStats
	return m, nil
}

func (m Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	m.state = StateError
	m.errorMsg = formatErrorMessage(msg.err)
	return m, nil
}

func formatErrorMessage(err error) string {
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "connection refused"):
		return "Cannot connect to server. Check that the API is running."
	case strings.Contains(errStr, "timed out"), strings.Contains(errStr, "deadline exceeded"):
		return "Request timed out. Press 'r' to retry."
	case strings.Contains(errStr, "server returned"):
		return errStr + " Press 'r' to retry."
	default:
		return errStr
	}
}
