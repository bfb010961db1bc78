// Package store persists players and their completed game sessions in
// SQLite: a pure-Go driver with WAL journaling, idempotent CREATE TABLE
// IF NOT EXISTS migrations, and a small wrapper type around *sql.DB.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unquote/unquote/internal/apperr"
	"github.com/unquote/unquote/internal/claimcode"
	"github.com/unquote/unquote/internal/gameid"
	_ "modernc.org/sqlite"
)

// Player is a registered, otherwise-anonymous participant.
type Player struct {
	ID        int64
	ClaimCode string
	CreatedAt string
}

// Stats aggregates a player's completed sessions.
type Stats struct {
	Solved        int
	MedianSeconds int
	CurrentStreak int
}

// HealthStatus reports the store's connectivity for the readiness probe.
type HealthStatus struct {
	Status string // "connected", "error", or "unconfigured"
	Error  string
}

// Store wraps a SQLite connection.
type Store struct {
	conn *sql.DB
	path string
}

// New opens (creating if necessary) the SQLite database at path, applies
// migrations, and returns a ready Store. An empty path reports the store
// as unconfigured via CheckHealth rather than failing outright, since a
// deployment may legitimately run without persistence configured.
func New(path string) (*Store, error) {
	if path == "" {
		return &Store{}, nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create database directory %q: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	conn.SetMaxOpenConns(2)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping database: %w", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: migrate database: %w", err)
	}
	return s, nil
}

// Close releases the underlying connection, if any.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Store) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			claim_code TEXT    NOT NULL UNIQUE,
			created_at TEXT    NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id       INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
			game_id         TEXT    NOT NULL,
			completion_time INTEGER NOT NULL,
			solved_at       TEXT    NOT NULL DEFAULT (datetime('now')),
			UNIQUE(player_id, game_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.conn.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w\nstatement: %s", err, stmt)
		}
	}
	return nil
}

// RegisterPlayer mints a claim code and inserts a new player, minting a
// fresh code on the vanishingly unlikely event of a claim-code collision
// (at most three attempts in all).
func (s *Store) RegisterPlayer(ctx context.Context) (Player, error) {
	if s.conn == nil {
		return Player{}, apperr.New(apperr.Unavailable, "store not configured")
	}

	const maxAttempts = 3
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := claimcode.Generate()
		if err != nil {
			return Player{}, fmt.Errorf("store: generating claim code: %w", err)
		}

		res, err := s.conn.ExecContext(ctx, `INSERT INTO players (claim_code) VALUES (?)`, code)
		if err != nil {
			if isUniqueViolation(err) {
				lastErr = err
				continue
			}
			return Player{}, fmt.Errorf("store: inserting player: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return Player{}, fmt.Errorf("store: reading new player id: %w", err)
		}
		return Player{ID: id, ClaimCode: code}, nil
	}
	return Player{}, fmt.Errorf("store: claim code collisions exhausted retries: %w", lastErr)
}

// FindPlayer looks up a player by claim code.
func (s *Store) FindPlayer(ctx context.Context, claimCode string) (Player, bool, error) {
	if s.conn == nil {
		return Player{}, false, apperr.New(apperr.Unavailable, "store not configured")
	}

	var p Player
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, claim_code, created_at FROM players WHERE claim_code = ?`, claimCode)
	if err := row.Scan(&p.ID, &p.ClaimCode, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return Player{}, false, nil
		}
		return Player{}, false, fmt.Errorf("store: looking up player: %w", err)
	}
	return p, true, nil
}

// RecordSession records a completed game for a player. The
// (player_id, game_id) unique constraint is the single source of truth
// for idempotence: a second attempt for the same pair reports
// alreadyRecorded=true rather than erroring or inserting a duplicate row.
func (s *Store) RecordSession(ctx context.Context, playerID int64, gameID string, completionTime int) (alreadyRecorded bool, err error) {
	if s.conn == nil {
		return false, apperr.New(apperr.Unavailable, "store not configured")
	}

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO sessions (player_id, game_id, completion_time) VALUES (?, ?, ?)`,
		playerID, gameID, completionTime)
	if err != nil {
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, fmt.Errorf("store: recording session: %w", err)
	}
	return false, nil
}

// Stats aggregates a player's solved sessions: total count, median
// completion time, and current streak of consecutive calendar days with
// a recorded solve, most recent first.
func (s *Store) Stats(ctx context.Context, playerID int64) (Stats, error) {
	if s.conn == nil {
		return Stats{}, apperr.New(apperr.Unavailable, "store not configured")
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT game_id, completion_time FROM sessions WHERE player_id = ? ORDER BY game_id DESC`, playerID)
	if err != nil {
		return Stats{}, fmt.Errorf("store: querying sessions: %w", err)
	}
	defer rows.Close()

	var gameIDs []string
	var times []int
	for rows.Next() {
		var gameID string
		var t int
		if err := rows.Scan(&gameID, &t); err != nil {
			return Stats{}, fmt.Errorf("store: scanning session row: %w", err)
		}
		gameIDs = append(gameIDs, gameID)
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("store: iterating session rows: %w", err)
	}

	return Stats{
		Solved:        len(times),
		MedianSeconds: medianInt(times),
		CurrentStreak: currentStreak(gameIDs),
	}, nil
}

// CheckHealth reports the store's connectivity, matching the
// {connected, error, unconfigured} readiness contract.
func (s *Store) CheckHealth(ctx context.Context) HealthStatus {
	if s.conn == nil {
		return HealthStatus{Status: "unconfigured"}
	}
	if err := s.conn.PingContext(ctx); err != nil {
		slog.Error("store health check failed", "error", err)
		return HealthStatus{Status: "error", Error: err.Error()}
	}
	return HealthStatus{Status: "connected"}
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. modernc.org/sqlite does not export a typed constraint-violation
// error, so this matches on the driver's error string.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func medianInt(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// currentStreak decodes each game id back to its calendar date and counts
// how many consecutive puzzle days, ending at the most recent solve, were
// all solved.
func currentStreak(gameIDs []string) int {
	var dates []int64 // days since the epoch, for simple integer comparison
	for _, id := range gameIDs {
		d, ok := gameid.Decode(id)
		if !ok {
			continue
		}
		dates = append(dates, d.Unix()/86400)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })

	streak := 1
	for i := 1; i < len(dates); i++ {
		if dates[i] == dates[i-1] {
			continue // same day recorded twice shouldn't happen, but don't break the streak over it
		}
		if dates[i] == dates[i-1]-1 {
			streak++
			continue
		}
		break
	}
	return streak
}
