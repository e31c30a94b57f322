// Package announce serializes audio playback. All spoken output flows
// through a single queue: segments are played strictly in FIFO order, one
// clip at a time, so overlapping game events can never talk over each other.
package announce

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
	"github.com/abenezerd/bingocaller/internal/voice"
)

// Compile-time interface check.
var _ domain.Announcer = (*Queue)(nil)

// Option configures the queue.
type Option func(*Queue)

// WithClipPause sets the pause inserted between consecutive clips of a
// segment. The pause after a hundred token is doubled so multi-part
// numbers stay intelligible.
func WithClipPause(d time.Duration) Option {
	return func(q *Queue) {
		q.clipPause = d
	}
}

// WithQueueSize sets the internal notification channel capacity.
func WithQueueSize(n int) Option {
	return func(q *Queue) {
		q.notify = make(chan struct{}, n)
	}
}

// Queue is the serial announcement scheduler. Enqueued segments play in
// order through the clip player; Clear drops everything pending and stops
// the in-flight clip. A clip that fails to play is logged and skipped,
// never a stall.
type Queue struct {
	player domain.ClipPlayer
	log    *logger.Logger

	mu          sync.Mutex
	pending     []domain.AnnouncementSegment
	notify      chan struct{}
	playing     bool
	interrupted bool // set by Clear, checked between clips
	clipPause   time.Duration
}

// New creates an announcement queue over the given clip player.
func New(player domain.ClipPlayer, log *logger.Logger, opts ...Option) *Queue {
	q := &Queue{
		player:    player,
		log:       log,
		notify:    make(chan struct{}, 32),
		clipPause: 150 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Announce appends a segment. Non-blocking; if the queue was idle,
// playback begins immediately.
func (q *Queue) Announce(segment domain.AnnouncementSegment) {
	if len(segment) == 0 {
		return
	}

	q.mu.Lock()
	q.pending = append(q.pending, segment)
	qLen := len(q.pending)
	q.mu.Unlock()

	q.log.Debug("announce: queued %d clip(s) (queue_len=%d)", len(segment), qLen)

	// Signal the drain goroutine.
	select {
	case q.notify <- struct{}{}:
	default: // already signaled
	}
}

// Clear discards all pending segments and stops any in-flight clip
// immediately. Used when the player leaves the game screen and before
// priority announcements.
func (q *Queue) Clear() {
	q.mu.Lock()
	dropped := len(q.pending)
	q.pending = q.pending[:0]
	q.interrupted = true
	q.mu.Unlock()

	q.player.Stop()

	q.log.Debug("announce: cleared (%d segment(s) dropped, playback stopped)", dropped)
}

// Playing reports whether a clip is currently being played.
func (q *Queue) Playing() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.playing
}

// Len returns the number of pending segments.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Start begins the drain goroutine. Non-blocking.
func (q *Queue) Start(ctx context.Context) {
	go q.processLoop(ctx)
	q.log.Info("announcement queue started")
}

// processLoop waits for queued segments and drains them one at a time.
func (q *Queue) processLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			q.log.Info("announcement queue stopped")
			return
		case <-q.notify:
			q.drain(ctx)
		}
	}
}

// drain plays all queued segments in FIFO order.
func (q *Queue) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		// Reset the interrupted flag so segments queued after a Clear
		// still play.
		q.mu.Lock()
		q.interrupted = false
		segment, ok := q.dequeue()
		if !ok {
			q.mu.Unlock()
			return
		}
		q.playing = true
		q.mu.Unlock()

		q.play(ctx, segment)

		q.mu.Lock()
		q.playing = false
		q.mu.Unlock()
	}
}

// dequeue removes the oldest segment. Must be called with q.mu held.
func (q *Queue) dequeue() (domain.AnnouncementSegment, bool) {
	if len(q.pending) == 0 {
		return nil, false
	}
	segment := q.pending[0]
	q.pending = q.pending[1:]
	return segment, true
}

// play runs one segment clip by clip, waiting for each clip to finish
// before the next. Per-clip failures are dropped.
func (q *Queue) play(ctx context.Context, segment domain.AnnouncementSegment) {
	for i, clip := range segment {
		select {
		case <-ctx.Done():
			return
		default:
		}

		q.mu.Lock()
		abort := q.interrupted
		q.mu.Unlock()
		if abort {
			q.log.Debug("announce: segment aborted at clip %d/%d", i+1, len(segment))
			return
		}

		if err := q.player.Play(ctx, clip); err != nil {
			q.log.Error("announce: clip %q failed, skipping: %v", clip, err)
		}

		if i < len(segment)-1 {
			q.pauseAfter(ctx, clip)
		}
	}
}

// pauseAfter sleeps the inter-clip pause, doubled after a hundred token.
// Interruptible by context cancellation.
func (q *Queue) pauseAfter(ctx context.Context, clip string) {
	pause := q.clipPause
	if isHundredToken(clip) {
		pause *= 2
	}
	if pause <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(pause):
	}
}

// isHundredToken reports whether the clip is a hundred token for any
// voice prefix.
func isHundredToken(clip string) bool {
	return strings.HasSuffix(clip, "_"+voice.HundredClip)
}
