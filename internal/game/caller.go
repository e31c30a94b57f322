package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
	"github.com/abenezerd/bingocaller/internal/pattern"
	"github.com/abenezerd/bingocaller/internal/voice"
)

// Option configures the caller.
type Option func(*Caller)

// WithDrawInterval sets the default time between draws, used when the
// session does not carry its own interval.
func WithDrawInterval(d time.Duration) Option {
	return func(c *Caller) {
		c.drawInterval = d
	}
}

// WithStartDelay sets the one-time warm-up delay before the first draw,
// giving the UI time to settle.
func WithStartDelay(d time.Duration) Option {
	return func(c *Caller) {
		c.startDelay = d
	}
}

// WithRevealDelay sets the reveal-animation window between picking a
// number and committing it to history.
func WithRevealDelay(d time.Duration) Option {
	return func(c *Caller) {
		c.revealDelay = d
	}
}

// WithWinnerGrace sets the delay before the winner announcement, so it
// doesn't collide with the tail of an in-flight draw announcement.
func WithWinnerGrace(d time.Duration) Option {
	return func(c *Caller) {
		c.winnerGrace = d
	}
}

// WithRand sets the random source used for draws. Tests pass a seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(c *Caller) {
		c.rng = rng
	}
}

// Caller is the draw scheduler for one game session. It owns the session
// lifecycle: timer-driven draws, pause/resume, card checks, and the
// terminal game-over transition, dispatching every spoken event through
// the announcer. Construct one per session and discard it afterwards.
type Caller struct {
	store     domain.SessionStore
	announcer domain.Announcer
	reports   domain.ReportSink
	log       *logger.Logger

	drawInterval time.Duration
	startDelay   time.Duration
	revealDelay  time.Duration
	winnerGrace  time.Duration
	rng          *rand.Rand

	mu          sync.Mutex
	session     *domain.Session
	loopCancel  context.CancelFunc
	firstDrawn  bool // warm-up delay applies only before this
	winnerFound bool
}

// New creates a caller with the given dependencies and options.
func New(store domain.SessionStore, announcer domain.Announcer, reports domain.ReportSink, log *logger.Logger, opts ...Option) *Caller {
	c := &Caller{
		store:     store,
		announcer: announcer,
		reports:   reports,
		log:       log,

		drawInterval: 5 * time.Second,
		startDelay:   3 * time.Second,
		revealDelay:  1500 * time.Millisecond,
		winnerGrace:  1 * time.Second,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewGame creates the session for this caller. Cards, pricing, pattern
// rules, and the voice profile come from the surrounding app and are
// immutable for the rest of the game.
func (c *Caller) NewGame(ctx context.Context, cards []domain.Card, price float64, cfg domain.PatternConfig, profile domain.VoiceProfile, interval time.Duration) (*domain.Session, error) {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return nil, domain.ErrAlreadyExists
	}
	session := &domain.Session{
		ID:              generateID(),
		Cards:           cards,
		CardPrice:       price,
		Pattern:         cfg,
		Voice:           profile,
		DrawInterval:    interval,
		Status:          domain.GameIdle,
		WinnerCardIndex: -1,
		StartedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	c.session = session
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	c.log.Info("created game %s (%d cards, %s rules)", session.ID, len(cards), cfg.Category)
	return session, nil
}

// Start begins drawing. The first draw happens after the warm-up delay;
// subsequent draws follow the session interval. The report sink is told
// the game has started.
func (c *Caller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return domain.ErrNotFound
	}
	if c.session.Status != domain.GameIdle {
		c.mu.Unlock()
		return domain.ErrGameNotActive
	}
	c.session.Status = domain.GameDrawing
	c.session.StartedAt = time.Now()
	c.session.UpdatedAt = time.Now()
	session := c.session
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	report := &domain.StartReport{
		SessionID:       session.ID,
		CardsSold:       len(session.Cards),
		AmountCollected: session.CardPrice * float64(len(session.Cards)),
		StartedAt:       session.StartedAt,
	}
	if err := c.reports.GameStarted(ctx, report); err != nil {
		c.log.Error("caller: start report: %v", err)
	}

	c.startLoop(ctx)
	c.log.Info("game %s started (interval=%s)", session.ID, c.interval())
	return nil
}

// Pause stops the draw timer and appends a "game paused" announcement.
// Already-enqueued announcements keep playing.
func (c *Caller) Pause(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil || c.session.Status != domain.GameDrawing {
		c.mu.Unlock()
		return domain.ErrGameNotActive
	}
	c.session.Status = domain.GamePaused
	c.session.Revealing = false
	c.session.UpdatedAt = time.Now()
	session := c.session
	c.stopLoopLocked()
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	c.announcer.Announce(voice.GamePaused(session.Voice))
	c.log.Info("game %s paused", session.ID)
	return nil
}

// Resume restarts the draw timer after a pause or a card check. Any winner
// flag from a previous check is cleared first.
func (c *Caller) Resume(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil || (c.session.Status != domain.GamePaused && c.session.Status != domain.GameChecking) {
		c.mu.Unlock()
		return domain.ErrGameNotActive
	}
	c.winnerFound = false
	c.session.Status = domain.GameDrawing
	c.session.WinnerCardIndex = -1
	c.session.UpdatedAt = time.Now()
	session := c.session
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	c.announcer.Announce(voice.GameResumed(session.Voice))
	c.startLoop(ctx)
	c.log.Info("game %s resumed", session.ID)
	return nil
}

// CheckCard pauses the draw and evaluates the card at the given index
// against the current history. A win clears the queue and schedules the
// winner announcement after the grace delay; either way the game stays
// paused until the operator resumes.
func (c *Caller) CheckCard(ctx context.Context, cardIndex int) (domain.WinResult, error) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return domain.WinResult{}, domain.ErrNotFound
	}
	if c.session.Status == domain.GameOver {
		c.mu.Unlock()
		return domain.WinResult{}, domain.ErrGameOver
	}
	if c.session.Status != domain.GameDrawing && c.session.Status != domain.GamePaused {
		c.mu.Unlock()
		return domain.WinResult{}, domain.ErrGameNotActive
	}
	if cardIndex < 0 || cardIndex >= len(c.session.Cards) {
		c.mu.Unlock()
		return domain.WinResult{}, domain.ErrInvalidCard
	}

	// Entering the check stops the timer exactly like a pause.
	c.stopLoopLocked()
	c.session.Status = domain.GameChecking
	c.session.Revealing = false
	c.session.UpdatedAt = time.Now()

	session := c.session
	card := c.session.Cards[cardIndex]
	history := append([]domain.DrawnNumber(nil), c.session.History...)
	cfg := c.session.Pattern
	profile := c.session.Voice
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		return domain.WinResult{}, fmt.Errorf("saving session: %w", err)
	}

	c.announcer.Announce(voice.CardCheck(profile))

	marked := card.Grid().Mark(domain.DrawnSet(history))
	result := pattern.Evaluate(marked, cfg)

	if !result.Won {
		c.announcer.Announce(voice.NoWinner(profile))
		c.log.Info("game %s: card %d checked, no winner (%d drawn)", session.ID, card.ID, len(history))
		return result, nil
	}

	c.mu.Lock()
	c.winnerFound = true
	c.session.WinnerCardIndex = cardIndex
	c.session.UpdatedAt = time.Now()
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		c.log.Error("caller: saving winner: %v", err)
	}

	// The winner clip pre-empts everything pending, after a short grace
	// delay so it doesn't overlap an in-flight draw announcement.
	c.announcer.Clear()
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.winnerGrace):
		}
		c.announcer.Announce(voice.Winner(profile))
	}()

	c.log.Info("game %s: card %d WINS (%d drawn)", session.ID, card.ID, len(history))
	return result, nil
}

// End terminates the session: the timer stops, pending announcements are
// dropped, and the report sink receives the end report. Terminal.
func (c *Caller) End(ctx context.Context) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return domain.ErrNotFound
	}
	if c.session.Status == domain.GameOver {
		c.mu.Unlock()
		return domain.ErrGameOver
	}
	c.stopLoopLocked()
	c.session.Status = domain.GameOver
	c.session.Revealing = false
	c.session.UpdatedAt = time.Now()
	session := c.session
	winner := c.winnerFound
	c.mu.Unlock()

	c.announcer.Clear()

	if err := c.store.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	c.sendEndReport(ctx, session, winner)
	c.log.Info("game %s ended (%d numbers called)", session.ID, len(session.History))
	return nil
}

// Session returns the caller's session, or nil before NewGame.
func (c *Caller) Session() *domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// WinnerFound reports whether the last card check found a winner. Cleared
// on resume.
func (c *Caller) WinnerFound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.winnerFound
}

// ── draw loop ────────────────────────────────────────────────────

// startLoop launches the tick loop. The warm-up delay applies only before
// the very first draw of the session.
func (c *Caller) startLoop(ctx context.Context) {
	c.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	c.loopCancel = cancel
	warmUp := !c.firstDrawn
	c.mu.Unlock()

	go c.loop(loopCtx, warmUp)
}

// stopLoopLocked cancels the tick loop. Must be called with c.mu held.
func (c *Caller) stopLoopLocked() {
	if c.loopCancel != nil {
		c.loopCancel()
		c.loopCancel = nil
	}
}

func (c *Caller) loop(ctx context.Context, warmUp bool) {
	if warmUp {
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.startDelay):
		}
		if !c.DrawNext(ctx) {
			return
		}
	}

	ticker := time.NewTicker(c.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.DrawNext(ctx) {
				return
			}
		}
	}
}

// DrawNext performs one full draw step: pick a number, hold it through the
// reveal window, then commit it to history and announce it. Returns false
// when the session is no longer drawing — including the game-over
// transition on pool exhaustion. The loop calls this on every tick; tests
// call it directly.
func (c *Caller) DrawNext(ctx context.Context) bool {
	c.mu.Lock()
	if c.session == nil || c.session.Status != domain.GameDrawing {
		c.mu.Unlock()
		return false
	}

	next, ok := DrawOne(c.session.History, c.rng)
	if !ok {
		c.mu.Unlock()
		c.finish(ctx)
		return false
	}

	// Reveal window: the UI shows cycling placeholders. The number is not
	// in history yet, so a pause mid-reveal simply discards it.
	c.session.Revealing = true
	c.session.UpdatedAt = time.Now()
	session := c.session
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		c.log.Error("caller: saving reveal state: %v", err)
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.revealDelay):
	}

	c.mu.Lock()
	if c.session.Status != domain.GameDrawing {
		c.session.Revealing = false
		c.mu.Unlock()
		return false
	}
	drawn := domain.DrawnNumber{LabeledNumber: next, DrawnAt: time.Now()}
	c.session.History = append(c.session.History, drawn)
	c.session.Revealing = false
	c.session.UpdatedAt = drawn.DrawnAt
	c.firstDrawn = true
	profile := c.session.Voice
	count := len(c.session.History)
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		c.log.Error("caller: saving draw: %v", err)
	}

	c.announcer.Announce(voice.Number(next, profile))
	c.log.Debug("game %s: drew %s (%d/%d)", session.ID, next, count, domain.TotalNumbers)
	return true
}

// finish handles pool exhaustion: the deterministic terminal state.
func (c *Caller) finish(ctx context.Context) {
	c.mu.Lock()
	c.stopLoopLocked()
	c.session.Status = domain.GameOver
	c.session.Revealing = false
	c.session.UpdatedAt = time.Now()
	session := c.session
	winner := c.winnerFound
	c.mu.Unlock()

	if err := c.store.Save(ctx, session); err != nil {
		c.log.Error("caller: saving game over: %v", err)
	}

	c.announcer.Announce(voice.GameOver(session.Voice))
	c.sendEndReport(ctx, session, winner)
	c.log.Info("game %s over: pool exhausted after %d draws", session.ID, len(session.History))
}

func (c *Caller) sendEndReport(ctx context.Context, session *domain.Session, winner bool) {
	report := &domain.EndReport{
		SessionID:     session.ID,
		NumbersCalled: len(session.History),
		Duration:      time.Since(session.StartedAt),
		WinnerFound:   winner,
		EndedAt:       time.Now(),
	}
	if err := c.reports.GameEnded(ctx, report); err != nil {
		c.log.Error("caller: end report: %v", err)
	}
}

// interval returns the session draw interval, falling back to the
// configured default.
func (c *Caller) interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.DrawInterval > 0 {
		return c.session.DrawInterval
	}
	return c.drawInterval
}
