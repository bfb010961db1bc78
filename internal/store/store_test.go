package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRegisterAndFindPlayer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.RegisterPlayer(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ClaimCode == "" {
		t.Fatal("expected a non-empty claim code")
	}

	found, ok, err := s.FindPlayer(ctx, p.ClaimCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || found.ID != p.ID {
		t.Fatalf("expected to find the registered player, got %+v ok=%v", found, ok)
	}
}

func TestFindPlayerNotFound(t *testing.T) {
	s := newTestStore(t)
	_, ok, err := s.FindPlayer(context.Background(), "NOPE-NOPE-0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected not-found for an unregistered claim code")
	}
}

func TestRecordSessionIdempotence(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.RegisterPlayer(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	already, err := s.RecordSession(ctx, p.ID, "AAAAAAAA", 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if already {
		t.Fatal("expected the first recording to not be already-recorded")
	}

	already, err = s.RecordSession(ctx, p.ID, "AAAAAAAA", 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !already {
		t.Fatal("expected the second recording for the same game to be already-recorded")
	}

	stats, err := s.Stats(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Solved != 1 {
		t.Fatalf("expected exactly one recorded session, got %d", stats.Solved)
	}
	if stats.MedianSeconds != 120 {
		t.Fatalf("expected the stored completion time to remain 120, got %d", stats.MedianSeconds)
	}
}

func TestStatsMedian(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.RegisterPlayer(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	games := []struct {
		id   string
		time int
	}{
		{"AAAAAAAA", 100},
		{"BBBBBBBB", 200},
		{"CCCCCCCC", 300},
	}
	for _, g := range games {
		if _, err := s.RecordSession(ctx, p.ID, g.id, g.time); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := s.Stats(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.MedianSeconds != 200 {
		t.Fatalf("got median %d, want 200", stats.MedianSeconds)
	}
}

func TestCheckHealthConnected(t *testing.T) {
	s := newTestStore(t)
	h := s.CheckHealth(context.Background())
	if h.Status != "connected" {
		t.Fatalf("got status %q, want connected", h.Status)
	}
}

func TestCheckHealthUnconfigured(t *testing.T) {
	s, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := s.CheckHealth(context.Background())
	if h.Status != "unconfigured" {
		t.Fatalf("got status %q, want unconfigured", h.Status)
	}
}
