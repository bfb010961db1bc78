// Package session persists a single game's in-progress grid to disk so a
// player can resume across runs, one file per game id under the OS config
// directory. Corrupt or schema-mismatched files are treated as absent and
// removed.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/unquote/unquote/internal/client/grid"
)

// GameSession is the on-disk payload for one game id: the player's
// cipher-letter-to-guess map, elapsed time, and solved state.
type GameSession struct {
	GameID            string            `json:"game_id"`
	Inputs            map[string]string `json:"inputs"`
	ElapsedSeconds    int               `json:"elapsed_seconds"`
	Solved            bool              `json:"solved"`
	CompletionSeconds int               `json:"completion_seconds,omitempty"`
}

const sessionsDirName = "sessions"

// Dir returns the directory session files live under, creating it if
// necessary.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "unquote", sessionsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func pathFor(gameID string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, gameID+".json"), nil
}

// FromCells captures the current cell state as a persistable session.
func FromCells(gameID string, cells []grid.Cell, elapsed time.Duration, solved bool, completionTime time.Duration) GameSession {
	inputs := make(map[string]string)
	for _, c := range cells {
		if c.Kind != grid.Letter || c.Input == 0 {
			continue
		}
		inputs[string(c.Char)] = string(c.Input)
	}
	return GameSession{
		GameID:            gameID,
		Inputs:            inputs,
		ElapsedSeconds:    int(elapsed.Seconds()),
		Solved:            solved,
		CompletionSeconds: int(completionTime.Seconds()),
	}
}

// Apply replays a session's saved inputs onto cells via grid.Set, so
// linked substitution and hint protection apply exactly as they would to
// live keystrokes.
func Apply(cells []grid.Cell, s GameSession) {
	for i, c := range cells {
		if c.Kind != grid.Letter {
			continue
		}
		input, ok := s.Inputs[string(c.Char)]
		if !ok || input == "" {
			continue
		}
		grid.Set(cells, i, []rune(input)[0])
	}
}

// Load reads the saved session for gameID. An absent or corrupt file
// (including one for an unrecognized schema) returns found=false with no
// error and, if a corrupt file existed, deletes it.
func Load(gameID string) (GameSession, bool, error) {
	p, err := pathFor(gameID)
	if err != nil {
		return GameSession{}, false, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return GameSession{}, false, nil
	}
	if err != nil {
		return GameSession{}, false, err
	}

	var s GameSession
	if err := json.Unmarshal(data, &s); err != nil || s.GameID != gameID {
		_ = os.Remove(p)
		return GameSession{}, false, nil
	}
	return s, true, nil
}

// Save writes s to disk, overwriting any prior session for the same game
// id.
func Save(s GameSession) error {
	p, err := pathFor(s.GameID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o600)
}

// Writer coalesces session writes to at most one per interval, so rapid
// keystrokes don't each incur a disk write. Call Request on every
// mutation; the most recent session wins and is flushed no sooner than
// interval after the previous flush.
type Writer struct {
	interval time.Duration

	mu       sync.Mutex
	pending  *GameSession
	lastSave time.Time
	timer    *time.Timer
}

// NewWriter returns a Writer that coalesces to at most one write per
// interval.
func NewWriter(interval time.Duration) *Writer {
	return &Writer{interval: interval}
}

// Request schedules s to be saved, coalescing with any write already
// pending within the debounce interval.
func (w *Writer) Request(s GameSession) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sCopy := s
	w.pending = &sCopy

	if w.timer != nil {
		return
	}

	delay := w.interval - time.Since(w.lastSave)
	if delay < 0 {
		delay = 0
	}
	w.timer = time.AfterFunc(delay, w.flush)
}

func (w *Writer) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.timer = nil
	w.lastSave = time.Now()
	w.mu.Unlock()

	if pending != nil {
		_ = Save(*pending)
	}
}

// Flush immediately writes any pending session, bypassing the debounce
// delay. Intended for a clean shutdown.
func (w *Writer) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending != nil {
		_ = Save(*pending)
	}
}
