package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/unquote/unquote/internal/apperr"
	"github.com/unquote/unquote/internal/gameid"
	"github.com/unquote/unquote/internal/solution"
)

func (s *Server) handleHealthLive(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"})
}

func (s *Server) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	health := s.store.CheckHealth(r.Context())
	jsonResponse(w, map[string]any{
		"status": "ok",
		"database": map[string]string{
			"status": health.Status,
			"error":  health.Error,
		},
	})
}

func (s *Server) handleGameToday(w http.ResponseWriter, r *http.Request) {
	p, err := s.gen.Generate(time.Now().UTC())
	if err != nil {
		slog.Error("generating today's puzzle", "error", err)
		jsonError(w, "puzzle corpus unavailable", http.StatusServiceUnavailable)
		return
	}
	jsonResponse(w, p)
}

func (s *Server) handleGameByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.PathValue("date")
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	// Normalization can turn an impossible day (Feb 30) into a real one;
	// reject anything that doesn't render back to the requested string.
	if d.Format("2006-01-02") != dateStr {
		jsonError(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if d.Year() < gameid.MinYear || d.Year() > gameid.MaxYear {
		jsonError(w, "date out of range", http.StatusNotFound)
		return
	}

	p, err := s.gen.Generate(d)
	if err != nil {
		slog.Error("generating puzzle for date", "date", dateStr, "error", err)
		jsonError(w, "puzzle corpus unavailable", http.StatusServiceUnavailable)
		return
	}
	jsonResponse(w, p)
}

type checkRequest struct {
	Solution       string `json:"solution"`
	ClaimCode      string `json:"claim_code"`
	CompletionTime int    `json:"completion_time"`
}

func (s *Server) handleGameCheck(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if req.Solution == "" {
		jsonError(w, "solution is required", http.StatusBadRequest)
		return
	}

	p, ok, err := s.gen.GenerateByGameID(id)
	if err != nil {
		slog.Error("regenerating puzzle for check", "id", id, "error", err)
		jsonError(w, "puzzle corpus unavailable", http.StatusServiceUnavailable)
		return
	}
	if !ok {
		jsonError(w, "unknown game id", http.StatusNotFound)
		return
	}

	correct, err := solution.Check(p.Quote.Text, req.Solution)
	if err != nil {
		jsonError(w, "malformed solution", http.StatusBadRequest)
		return
	}

	resp := map[string]any{"correct": correct}

	if correct && req.ClaimCode != "" {
		alreadyRecorded, err := s.recordSession(r, req.ClaimCode, id, req.CompletionTime)
		if err != nil {
			slog.Error("recording session", "error", err)
		} else {
			resp["already_recorded"] = alreadyRecorded
		}
	}

	jsonResponse(w, resp)
}

func (s *Server) recordSession(r *http.Request, claimCode, gameID string, completionTime int) (bool, error) {
	player, ok, err := s.store.FindPlayer(r.Context(), claimCode)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return s.store.RecordSession(r.Context(), player.ID, gameID, completionTime)
}

func (s *Server) handlePlayersRegister(w http.ResponseWriter, r *http.Request) {
	player, err := s.store.RegisterPlayer(r.Context())
	if err != nil {
		slog.Error("registering player", "error", err)
		if ae, ok := apperr.As(err); ok {
			jsonError(w, ae.Message, apperr.HTTPStatus(ae.Kind))
			return
		}
		jsonError(w, "could not register player", http.StatusInternalServerError)
		return
	}
	jsonResponse(w, map[string]string{"claim_code": player.ClaimCode})
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	claimCode := r.PathValue("claim_code")

	player, ok, err := s.store.FindPlayer(r.Context(), claimCode)
	if err != nil {
		slog.Error("looking up player", "error", err)
		if ae, ok := apperr.As(err); ok {
			jsonError(w, ae.Message, apperr.HTTPStatus(ae.Kind))
			return
		}
		jsonError(w, "could not look up player", http.StatusInternalServerError)
		return
	}
	if !ok {
		jsonError(w, "unknown claim code", http.StatusNotFound)
		return
	}

	stats, err := s.store.Stats(r.Context(), player.ID)
	if err != nil {
		slog.Error("loading stats", "error", err)
		if ae, ok := apperr.As(err); ok {
			jsonError(w, ae.Message, apperr.HTTPStatus(ae.Kind))
			return
		}
		jsonError(w, "could not load stats", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, map[string]int{
		"solved":         stats.Solved,
		"median_seconds": stats.MedianSeconds,
		"current_streak": stats.CurrentStreak,
	})
}
