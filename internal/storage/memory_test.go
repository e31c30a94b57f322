package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

func TestSaveLoadDelete(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	session := &domain.Session{ID: "g1", Status: domain.GameDrawing}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx, "g1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ID != "g1" {
		t.Fatalf("loaded wrong session: %s", got.ID)
	}

	if err := store.Delete(ctx, "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Load(ctx, "g1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListActiveExcludesFinished(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	store.Save(ctx, &domain.Session{ID: "a", Status: domain.GameDrawing})
	store.Save(ctx, &domain.Session{ID: "b", Status: domain.GamePaused})
	store.Save(ctx, &domain.Session{ID: "c", Status: domain.GameOver})

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active sessions, got %d", len(active))
	}
	for _, s := range active {
		if s.Status == domain.GameOver {
			t.Fatal("finished session listed as active")
		}
	}
}
