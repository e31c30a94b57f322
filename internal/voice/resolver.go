// Package voice maps numbers and game events to ordered clip identifiers.
// Every clip id the application can ever request is produced here, so the
// recorded-asset catalog has a single place to stay in sync with.
package voice

import (
	"strconv"

	"github.com/abenezerd/bingocaller/internal/domain"
)

// HundredClip is the clip suffix used for the "hundred" token. The
// announcement queue lengthens the pause after any clip carrying it.
const HundredClip = "100"

// MaxNumber is the largest number the resolver can vocalize.
const MaxNumber = 999

// Resolve decomposes a number into the ordered clip ids that speak it in
// the given voice profile. Numbers outside 1-999 yield nil, not an error.
//
// Decomposition:
//
//	1-11     one direct clip
//	12-99    tens clip, then ones clip when the ones digit is nonzero
//	100      the single hundred clip
//	101-999  hundreds digit, hundred token, then the remainder (if any)
func Resolve(n int, profile domain.VoiceProfile) domain.AnnouncementSegment {
	if n < 1 || n > MaxNumber {
		return nil
	}
	prefix := numberPrefix(n, profile)
	return appendClips(nil, prefix, n)
}

func appendClips(out domain.AnnouncementSegment, prefix string, n int) domain.AnnouncementSegment {
	switch {
	case n <= 11:
		out = append(out, prefix+strconv.Itoa(n))
	case n < 100:
		out = append(out, prefix+strconv.Itoa(n/10*10))
		if ones := n % 10; ones != 0 {
			out = append(out, prefix+strconv.Itoa(ones))
		}
	case n == 100:
		out = append(out, prefix+HundredClip)
	default:
		out = append(out, prefix+strconv.Itoa(n/100), prefix+HundredClip)
		if rem := n % 100; rem != 0 {
			out = appendClips(out, prefix, rem)
		}
	}
	return out
}

// numberPrefix picks the clip-name prefix for a number. English and Spanish
// voices only carry recordings for the 1-75 bingo range; larger numbers
// (winning amounts, card ids) fall back to the generic gendered winner set.
// Amharic voices are keyed by the specific voice id and cover the full range.
func numberPrefix(n int, profile domain.VoiceProfile) string {
	switch profile.Language {
	case domain.LangAmharic:
		return profile.ID + "_"
	case domain.LangEnglish, domain.LangSpanish:
		if n <= domain.TotalNumbers {
			return string(profile.Language) + "_general_"
		}
		return fallbackPrefix(profile.Gender)
	default:
		return fallbackPrefix(profile.Gender)
	}
}

func fallbackPrefix(g domain.Gender) string {
	if g == domain.GenderFemale {
		return "winner_woman_"
	}
	return "winner_man_"
}

// phrasePrefix picks the prefix for fixed game-event phrases. Unlike number
// clips there is no range cap, so the language prefix always applies.
func phrasePrefix(profile domain.VoiceProfile) string {
	if profile.Language == domain.LangAmharic {
		return profile.ID + "_"
	}
	return string(profile.Language) + "_general_"
}
