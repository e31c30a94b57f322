// Package voice — phrases.go centralises every fixed game-event clip id.
package voice

import "github.com/abenezerd/bingocaller/internal/domain"

// Fixed phrase clip suffixes. The recorded catalog carries one clip per
// suffix per voice profile.
const (
	clipGamePaused  = "game_paused"
	clipGameResumed = "game_resumed"
	clipCardCheck   = "card_check"
	clipWinner      = "winner"
	clipNoWinner    = "no_winner"
	clipGameOver    = "game_over"
)

// GamePaused is spoken when the operator pauses the draw.
func GamePaused(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipGamePaused}
}

// GameResumed is spoken when the draw restarts.
func GameResumed(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipGameResumed}
}

// CardCheck is spoken when a card check begins.
func CardCheck(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipCardCheck}
}

// Winner is spoken when a checked card satisfies the pattern.
func Winner(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipWinner}
}

// NoWinner is spoken when a checked card does not satisfy the pattern.
func NoWinner(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipNoWinner}
}

// GameOver is spoken when the draw pool is exhausted.
func GameOver(p domain.VoiceProfile) domain.AnnouncementSegment {
	return domain.AnnouncementSegment{phrasePrefix(p) + clipGameOver}
}

// Number is spoken when a draw is committed: the column letter clip, then
// the decomposed number clips.
func Number(d domain.LabeledNumber, p domain.VoiceProfile) domain.AnnouncementSegment {
	letter := domain.AnnouncementSegment{phrasePrefix(p) + "letter_" + string(d.Letter)}
	return append(letter, Resolve(d.Number, p)...)
}
