package domain

import "time"

// Session is one local bingo game: the sold cards, the rule set, and the
// append-only draw history. Only the caller writes to it.
type Session struct {
	ID           string
	Cards        []Card
	CardPrice    float64
	Pattern      PatternConfig
	Voice        VoiceProfile
	DrawInterval time.Duration
	History      []DrawnNumber
	Status       GameStatus

	// Revealing is true during the short reveal-animation window between a
	// draw and its commit. Cosmetic; the UI shows cycling placeholders.
	Revealing bool

	// WinnerCardIndex is the index of the winning card, or -1.
	WinnerCardIndex int

	StartedAt time.Time
	UpdatedAt time.Time
}

// GameStatus tracks the lifecycle of a game session.
type GameStatus int

const (
	GameIdle GameStatus = iota
	GameDrawing
	GamePaused
	GameChecking
	GameOver
)

// String returns a human-readable game status.
func (s GameStatus) String() string {
	switch s {
	case GameIdle:
		return "idle"
	case GameDrawing:
		return "drawing"
	case GamePaused:
		return "paused"
	case GameChecking:
		return "checking"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// LastDrawn returns the most recent committed draw, or ok=false before the
// first draw.
func (s *Session) LastDrawn() (DrawnNumber, bool) {
	if len(s.History) == 0 {
		return DrawnNumber{}, false
	}
	return s.History[len(s.History)-1], true
}
