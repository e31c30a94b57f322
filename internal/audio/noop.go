package audio

import (
	"context"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// Compile-time interface check.
var _ domain.ClipPlayer = (*NoOp)(nil)

// NoOp is a clip player that plays nothing. Used when the audio device is
// unavailable or sound is disabled; the game runs silently.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a no-op clip player.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Play does nothing.
func (n *NoOp) Play(ctx context.Context, clipID string) error {
	n.log.Debug("audio no-op: would play %q", clipID)
	return nil
}

// Stop does nothing.
func (n *NoOp) Stop() {}
