package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"clubsim/internal/config"
)

func testDB(t *testing.T) *SnapshotStore {
	t.Helper()
	cfg := &config.Config{DBPath: ":memory:"}
	db, err := NewDB(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSnapshotStore(db, zerolog.Nop())
}

func TestLoadWithoutSnapshot(t *testing.T) {
	s := testDB(t)
	defer s.Close()

	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveCloseFlushesAndLoads(t *testing.T) {
	s := testDB(t)

	s.SaveAsync([]byte(`{"season":1}`))
	s.SaveAsync([]byte(`{"season":2}`))
	s.Close()

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// The newest queued snapshot wins.
	if string(got) != `{"season":2}` {
		t.Fatalf("loaded %q, want the latest snapshot", got)
	}
}

func TestDeleteRemovesSnapshot(t *testing.T) {
	s := testDB(t)

	s.SaveAsync([]byte(`{}`))
	s.Close()

	if err := s.Delete(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err after delete = %v, want ErrNoSnapshot", err)
	}
}
