// Package api is the client's HTTP binding to the puzzle server: puzzle
// fetch, solution check, player registration, and stats lookup, each
// bounded by a request deadline so a slow or unreachable server surfaces
// as a typed error rather than hanging the event loop.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/unquote/unquote/internal/model"
)

// DefaultTimeout bounds every request this client issues.
const DefaultTimeout = 10 * time.Second

// Client talks to a single Unquote server instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client pointed at baseURL with the default request
// timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// TimeoutError wraps a request that exceeded its deadline, so callers can
// distinguish "server is slow" from other transport failures.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("unquote: %s timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// StatusError wraps a non-2xx HTTP response.
type StatusError struct {
	Op      string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unquote: %s: server returned %d: %s", e.Op, e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("unquote: %s: encoding request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("unquote: %s: building request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &TimeoutError{Op: op, Err: ctx.Err()}
		}
		return fmt.Errorf("unquote: %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unquote: %s: reading response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &errBody)
		return &StatusError{Op: op, Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unquote: %s: decoding response: %w", op, err)
	}
	return nil
}

// FetchToday fetches the current day's puzzle.
func (c *Client) FetchToday(ctx context.Context) (model.Puzzle, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	var p model.Puzzle
	err := c.do(ctx, "fetch today's puzzle", http.MethodGet, "/game/today", nil, &p)
	return p, err
}

// FetchByDate fetches the puzzle for a specific calendar date
// (YYYY-MM-DD).
func (c *Client) FetchByDate(ctx context.Context, date string) (model.Puzzle, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	var p model.Puzzle
	err := c.do(ctx, "fetch puzzle", http.MethodGet, "/game/"+date, nil, &p)
	return p, err
}

// CheckResult is the response to a solution submission.
type CheckResult struct {
	Correct         bool `json:"correct"`
	AlreadyRecorded bool `json:"already_recorded"`
}

// CheckSolution submits a candidate solution for gameID.
func (c *Client) CheckSolution(ctx context.Context, gameID, solution, claimCode string, completionSeconds int) (CheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req := map[string]any{"solution": solution}
	if claimCode != "" {
		req["claim_code"] = claimCode
		req["completion_time"] = completionSeconds
	}

	var result CheckResult
	err := c.do(ctx, "check solution", http.MethodPost, "/game/"+gameID+"/check", req, &result)
	return result, err
}

// RegisterPlayer creates a new anonymous player and returns its claim
// code.
func (c *Client) RegisterPlayer(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	var resp struct {
		ClaimCode string `json:"claim_code"`
	}
	err := c.do(ctx, "register player", http.MethodPost, "/players", nil, &resp)
	return resp.ClaimCode, err
}

// Stats is a player's aggregate solve history.
type Stats struct {
	Solved        int `json:"solved"`
	MedianSeconds int `json:"median_seconds"`
	CurrentStreak int `json:"current_streak"`
}

// FetchStats fetches the stats for claimCode.
func (c *Client) FetchStats(ctx context.Context, claimCode string) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	var s Stats
	err := c.do(ctx, "fetch stats", http.MethodGet, "/players/"+claimCode+"/stats", nil, &s)
	return s, err
}
