// Package app implements the client's Bubble Tea state machine: fetching
// a puzzle, editing the grid, submitting a solution, and the onboarding
// flow for opting into stats tracking.
package app

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/unquote/unquote/internal/client/api"
	"github.com/unquote/unquote/internal/client/clientconfig"
	"github.com/unquote/unquote/internal/client/grid"
	"github.com/unquote/unquote/internal/client/session"
	"github.com/unquote/unquote/internal/client/termio"
	"github.com/unquote/unquote/internal/model"
)

// State is one of the client's top-level screens.
type State int

const (
	StateLoading State = iota
	StatePlaying
	StateChecking
	StateSolved
	StateError
	StateOnboarding
	StateClaimCodeDisplay
	StateStats
)

// Options are the CLI flags/arguments the program was invoked with.
// Date is resolved once at startup: empty means "today", otherwise it is
// either an explicit date or, for --random, a date chosen from a seed
// derived from wall-clock time.
type Options struct {
	Insecure bool
	Date     string
}

// Model is the Bubble Tea model for the whole program.
type Model struct {
	client *api.Client
	opts   Options
	writer *session.Writer

	state State

	puzzle    *model.Puzzle
	cells     []grid.Cell
	cursorPos int

	startTime      time.Time
	elapsedAtPause time.Duration

	statusMsg string
	errorMsg  string

	width     int
	height    int
	sizeReady bool

	cfg       clientconfig.Config
	claimCode string
	form      *huh.Form
	optIn     bool

	stats api.Stats
}

// New builds the initial model for a fresh run against client.
func New(client *api.Client, opts Options) Model {
	return Model{
		client: client,
		opts:   opts,
		writer: session.NewWriter(time.Second),
		state:  StateLoading,
	}
}

// Elapsed returns the puzzle's current displayed elapsed time.
func (m Model) Elapsed() time.Duration {
	if m.state == StatePlaying || m.state == StateChecking {
		return m.elapsedAtPause + time.Since(m.startTime)
	}
	return m.elapsedAtPause
}

// IsTooSmall reports whether the last known terminal size is below the
// renderer's minimum.
func (m Model) IsTooSmall() bool {
	return m.sizeReady && termio.TooSmall(m.width, m.height)
}
