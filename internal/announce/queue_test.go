package announce

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// fakePlayer records played clips. Each Play call takes playTime unless
// stopped; clips listed in failing return an error immediately.
type fakePlayer struct {
	mu       sync.Mutex
	played   []string
	failing  map[string]bool
	playTime time.Duration
	stopped  chan struct{}
}

func newFakePlayer(playTime time.Duration) *fakePlayer {
	return &fakePlayer{
		failing:  make(map[string]bool),
		playTime: playTime,
		stopped:  make(chan struct{}),
	}
}

func (p *fakePlayer) Play(ctx context.Context, clipID string) error {
	if p.failing[clipID] {
		return errors.New("missing asset")
	}

	p.mu.Lock()
	p.played = append(p.played, clipID)
	stopped := p.stopped
	p.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-stopped:
	case <-time.After(p.playTime):
	}
	return nil
}

func (p *fakePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.stopped:
	default:
		close(p.stopped)
	}
	p.stopped = make(chan struct{})
}

func (p *fakePlayer) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.played...)
}

func setupQueue(t *testing.T, player domain.ClipPlayer) (*Queue, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	q := New(player, log, WithClipPause(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	q.Start(ctx)
	return q, ctx
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}

func TestFIFOSegmentOrder(t *testing.T) {
	player := newFakePlayer(time.Millisecond)
	q, _ := setupQueue(t, player)

	q.Announce(domain.AnnouncementSegment{"a1", "a2"})
	q.Announce(domain.AnnouncementSegment{"b1"})
	q.Announce(domain.AnnouncementSegment{"c1", "c2", "c3"})

	waitFor(t, func() bool { return len(player.snapshot()) == 6 })

	want := []string{"a1", "a2", "b1", "c1", "c2", "c3"}
	got := player.snapshot()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clip order = %v, want %v", got, want)
		}
	}
}

func TestClearStopsEverything(t *testing.T) {
	player := newFakePlayer(time.Hour) // first clip blocks until stopped
	q, _ := setupQueue(t, player)

	q.Announce(domain.AnnouncementSegment{"a1", "a2"})
	q.Announce(domain.AnnouncementSegment{"b1"})

	waitFor(t, func() bool { return len(player.snapshot()) == 1 })

	q.Clear()

	// Nothing further from any previously queued segment plays.
	time.Sleep(50 * time.Millisecond)
	if got := player.snapshot(); len(got) != 1 || got[0] != "a1" {
		t.Fatalf("clips after clear = %v, want [a1]", got)
	}
	if q.Len() != 0 {
		t.Fatalf("pending after clear = %d, want 0", q.Len())
	}
}

func TestSegmentsQueuedAfterClearStillPlay(t *testing.T) {
	player := newFakePlayer(time.Millisecond)
	q, _ := setupQueue(t, player)

	q.Announce(domain.AnnouncementSegment{"a1"})
	waitFor(t, func() bool { return len(player.snapshot()) == 1 })

	q.Clear()
	q.Announce(domain.AnnouncementSegment{"p1"})

	waitFor(t, func() bool {
		s := player.snapshot()
		return len(s) == 2 && s[1] == "p1"
	})
}

func TestFailedClipIsSkipped(t *testing.T) {
	player := newFakePlayer(time.Millisecond)
	player.failing["bad"] = true
	q, _ := setupQueue(t, player)

	q.Announce(domain.AnnouncementSegment{"a1", "bad", "a3"})

	waitFor(t, func() bool {
		s := player.snapshot()
		return len(s) == 2 && s[1] == "a3"
	})
}

func TestEmptySegmentIgnored(t *testing.T) {
	player := newFakePlayer(time.Millisecond)
	q, _ := setupQueue(t, player)

	q.Announce(nil)
	q.Announce(domain.AnnouncementSegment{})
	if q.Len() != 0 {
		t.Fatalf("empty segments must not be queued, len=%d", q.Len())
	}
}

func TestHundredToken(t *testing.T) {
	if !isHundredToken("amh_abebe_100") {
		t.Fatal("expected hundred token")
	}
	if isHundredToken("english_general_10") {
		t.Fatal("ten is not a hundred token")
	}
}
