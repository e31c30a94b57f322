package domain

// Language selects which recorded clip set a voice profile draws from.
type Language string

const (
	LangEnglish Language = "english"
	LangSpanish Language = "spanish"
	LangAmharic Language = "amharic"
)

// Gender selects the recorded voice within a language.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// VoiceProfile identifies the clip set used for announcements. Selected by
// the surrounding app; read-only to the core.
type VoiceProfile struct {
	Language Language
	Gender   Gender
	ID       string
}

// AnnouncementSegment is one spoken utterance: an ordered, finite list of
// clip identifiers played back to back. Produced by the voice resolver,
// consumed and discarded by the announcement queue.
type AnnouncementSegment []string
