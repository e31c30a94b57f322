package domain

import "context"

// CardSource provides sellable card definitions. Implementations can be
// in-memory (generated), file-based, or API-backed.
type CardSource interface {
	List(ctx context.Context) ([]Card, error)
	Get(ctx context.Context, id int) (*Card, error)
}

// SessionStore keeps game sessions. The UI polls it; the caller writes it.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*Session, error)
}

// Announcer serializes spoken output. At most one clip plays at any
// instant; Clear drops everything pending and stops the in-flight clip.
type Announcer interface {
	Announce(segment AnnouncementSegment)
	Clear()
}

// ClipPlayer plays a single pre-recorded clip by identifier, blocking until
// it finishes. A missing or failing clip is an error the caller may drop.
type ClipPlayer interface {
	Play(ctx context.Context, clipID string) error
	Stop()
}

// ReportSink is informed of session boundaries so the surrounding app can
// write reports and transactions. The core performs no persistence itself.
type ReportSink interface {
	GameStarted(ctx context.Context, report *StartReport) error
	GameEnded(ctx context.Context, report *EndReport) error
}
