// Package cards provides card definition sources.
package cards

import (
	"context"
	"math/rand"
	"sort"
	"sync"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// Compile-time interface check.
var _ domain.CardSource = (*MemorySource)(nil)

// DefaultDeckSize is how many cards the built-in deck holds.
const DefaultDeckSize = 100

// deckSeed fixes the generated deck so card ids match the printed cards
// across runs.
const deckSeed = 20240917

// MemorySource holds a generated deck of card definitions in memory.
// Safe for concurrent reads.
type MemorySource struct {
	mu    sync.RWMutex
	cards map[int]*domain.Card
	log   *logger.Logger
}

// NewMemorySource creates a card source preloaded with the built-in deck.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		cards: make(map[int]*domain.Card),
		log:   log,
	}
	src.seed(DefaultDeckSize)
	return src
}

// List returns all cards ordered by id.
func (s *MemorySource) List(ctx context.Context) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Card, 0, len(s.cards))
	for _, c := range s.cards {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns a card by id.
func (s *MemorySource) Get(ctx context.Context, id int) (*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cards[id]
	if !ok {
		s.log.Debug("card not found: %d", id)
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// seed generates the deck. Each column draws from its own 15-number
// range; the N column only takes four numbers because of the free center.
func (s *MemorySource) seed(n int) {
	rng := rand.New(rand.NewSource(deckSeed))
	for id := 1; id <= n; id++ {
		card := generateCard(id, rng)
		s.cards[id] = card
	}
	s.log.Debug("seeded %d cards", n)
}

// generateCard picks column numbers and flattens them row-major with the
// center cell skipped, matching the printed card layout.
func generateCard(id int, rng *rand.Rand) *domain.Card {
	var grid domain.CardGrid
	for col := 0; col < 5; col++ {
		low := col*15 + 1
		picks := rng.Perm(15)[:5]
		for row := 0; row < 5; row++ {
			grid[row][col] = low + picks[row]
		}
	}
	grid[domain.FreeRow][domain.FreeCol] = 0

	card := &domain.Card{ID: id}
	i := 0
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == domain.FreeRow && col == domain.FreeCol {
				continue
			}
			card.Numbers[i] = grid[row][col]
			i++
		}
	}
	return card
}
