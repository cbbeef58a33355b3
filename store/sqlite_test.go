package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T, path string) *SQLite {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := testStore(t, ":memory:")
	_, ok, err := s.Get(context.Background(), "nope")
	if err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}
}

func TestPutReplacesRecord(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, ":memory:")

	if err := s.Put(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "k", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Put again: %v", err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Get = %s, want [1,2]", got)
	}
}

func TestUpdatedAtTracksWrites(t *testing.T) {
	ctx := context.Background()
	s := testStore(t, ":memory:")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if err := s.Put(ctx, "k", []byte(`x`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	at, ok, err := s.UpdatedAt(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("UpdatedAt: ok=%v err=%v", ok, err)
	}
	if !at.Equal(fixed) {
		t.Errorf("UpdatedAt = %v, want %v", at, fixed)
	}
}

func TestFileStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := s.Put(ctx, "leaderboard", []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Close()

	s2 := testStore(t, path)
	got, ok, err := s2.Get(ctx, "leaderboard")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("Reopened Get = %s ok=%v err=%v", got, ok, err)
	}
}
