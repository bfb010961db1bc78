package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/unquote/unquote/internal/config"
	"github.com/unquote/unquote/internal/puzzlegen"
	"github.com/unquote/unquote/internal/quotesource"
	"github.com/unquote/unquote/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	quotesPath := filepath.Join(dir, "quotes.json")
	corpus := `[
		{"id":"q1","text":"HELLO WORLD","author":"Ada Lovelace","category":"tech","difficulty":10},
		{"id":"q2","text":"THE QUICK BROWN FOX","author":"Anonymous","category":"misc","difficulty":30}
	]`
	if err := os.WriteFile(quotesPath, []byte(corpus), 0o644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}

	quotes := quotesource.New(quotesPath)
	gen := puzzlegen.New(quotes, []string{"PUZZLE", "CIPHER", "ZEBRA"})

	st, err := store.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := config.Config{Host: "127.0.0.1", Port: 0, QuotesFilePath: quotesPath}
	return New(cfg, quotes, gen, st)
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	s.routes(mux)

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthLive(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("got %+v", body)
	}
}

func TestHealthReady(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
}

func TestGameToday(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/game/today", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	var p map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	if p["id"] == "" || p["ciphertext"] == "" {
		t.Fatalf("expected a populated puzzle, got %+v", p)
	}
}

func TestGameByDateInvalid(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/game/not-a-date", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestGameByDateImpossibleCalendarDate(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/game/2024-02-30", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestGameByDateOutOfRange(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/game/1900-01-01", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestGameByDateValid(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/game/2026-02-01", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestGameCheckUnknownID(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "POST", "/game/AAAAAAAA/check", map[string]string{"solution": "X"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestGameCheckMalformedBody(t *testing.T) {
	s := newTestServer(t)
	mux := http.NewServeMux()
	s.routes(mux)
	req := httptest.NewRequest("POST", "/game/AAAAAAAA/check", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestGameCheckCorrectSolution(t *testing.T) {
	s := newTestServer(t)

	todayRec := doRequest(t, s, "GET", "/game/2026-02-01", nil)
	var puzzle map[string]any
	if err := json.Unmarshal(todayRec.Body.Bytes(), &puzzle); err != nil {
		t.Fatalf("unmarshaling puzzle: %v", err)
	}

	gen := s.gen
	p, err := gen.Generate(parseDate(t, "2026-02-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkRec := doRequest(t, s, "POST", "/game/"+p.ID+"/check", map[string]any{
		"solution": p.Quote.Text,
	})
	if checkRec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", checkRec.Code, checkRec.Body.String())
	}
	var result map[string]any
	if err := json.Unmarshal(checkRec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshaling result: %v", err)
	}
	if result["correct"] != true {
		t.Fatalf("expected correct=true, got %+v", result)
	}
}

func TestPlayersRegisterAndStats(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, "POST", "/players", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	var reg map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("unmarshaling registration: %v", err)
	}
	if reg["claim_code"] == "" {
		t.Fatal("expected a non-empty claim code")
	}

	statsRec := doRequest(t, s, "GET", "/players/"+reg["claim_code"]+"/stats", nil)
	if statsRec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", statsRec.Code, statsRec.Body.String())
	}
}

func TestPlayerStatsUnknownCode(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, "GET", "/players/NOPE-NOPE-0000/stats", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}

func TestPlayersRegisterUnconfiguredStoreIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	quotesPath := filepath.Join(dir, "quotes.json")
	if err := os.WriteFile(quotesPath, []byte(`[{"id":"q1","text":"HI","author":"A","category":"c","difficulty":1}]`), 0o644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	quotes := quotesource.New(quotesPath)
	gen := puzzlegen.New(quotes, []string{"PUZZLE"})

	st, err := store.New("") // empty path: unconfigured
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := New(config.Config{Host: "127.0.0.1", Port: 0, QuotesFilePath: quotesPath}, quotes, gen, st)

	rec := doRequest(t, s, "POST", "/players", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want 503 (apperr.Unavailable), body %s", rec.Code, rec.Body.String())
	}
}

func parseDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parsing date: %v", err)
	}
	return parsed
}
