package cards

import (
	"context"
	"errors"
	"testing"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

func TestDeckShape(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	deck, err := src.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(deck) != DefaultDeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DefaultDeckSize)
	}

	for _, card := range deck {
		g := card.Grid()
		if g[domain.FreeRow][domain.FreeCol] != 0 {
			t.Fatalf("card %d: center not free", card.ID)
		}
		seen := make(map[int]bool)
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				if row == domain.FreeRow && col == domain.FreeCol {
					continue
				}
				n := g[row][col]
				low, high := col*15+1, col*15+15
				if n < low || n > high {
					t.Fatalf("card %d: %d out of column %d range %d-%d", card.ID, n, col, low, high)
				}
				if seen[n] {
					t.Fatalf("card %d: duplicate number %d", card.ID, n)
				}
				seen[n] = true
			}
		}
	}
}

func TestDeckIsStable(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	a, _ := NewMemorySource(log).Get(context.Background(), 1)
	b, _ := NewMemorySource(log).Get(context.Background(), 1)
	if a.Numbers != b.Numbers {
		t.Fatal("deck must be identical across runs")
	}
}

func TestGetMissing(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	if _, err := src.Get(context.Background(), DefaultDeckSize+1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
