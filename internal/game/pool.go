// Package game runs the live draw: the pool of undrawn numbers and the
// timer-driven caller state machine.
package game

import (
	"math/rand"

	"github.com/abenezerd/bingocaller/internal/domain"
)

// Available returns the canonical 75 numbers minus those already in the
// history. Pure; the pool is always recomputed, never stored.
func Available(history []domain.DrawnNumber) []domain.LabeledNumber {
	drawn := make(map[int]bool, len(history))
	for _, d := range history {
		drawn[d.Number] = true
	}

	out := make([]domain.LabeledNumber, 0, domain.TotalNumbers-len(history))
	for n := 1; n <= domain.TotalNumbers; n++ {
		if drawn[n] {
			continue
		}
		ln, _ := domain.NewLabeledNumber(n)
		out = append(out, ln)
	}
	return out
}

// DrawOne selects uniformly at random from the remaining pool. ok is false
// when the pool is exhausted; callers treat that as the terminal signal,
// not an error.
func DrawOne(history []domain.DrawnNumber, rng *rand.Rand) (domain.LabeledNumber, bool) {
	pool := Available(history)
	if len(pool) == 0 {
		return domain.LabeledNumber{}, false
	}
	return pool[rng.Intn(len(pool))], true
}
