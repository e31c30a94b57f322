package voice

import (
	"reflect"
	"testing"

	"github.com/abenezerd/bingocaller/internal/domain"
)

var english = domain.VoiceProfile{Language: domain.LangEnglish, Gender: domain.GenderFemale, ID: "en_f_1"}
var spanish = domain.VoiceProfile{Language: domain.LangSpanish, Gender: domain.GenderMale, ID: "es_m_1"}
var amharic = domain.VoiceProfile{Language: domain.LangAmharic, Gender: domain.GenderMale, ID: "amh_abebe"}

func TestResolveBingoRange(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		profile domain.VoiceProfile
		want    []string
	}{
		{"single digit", 5, english, []string{"english_general_5"}},
		{"direct clip up to eleven", 11, english, []string{"english_general_11"}},
		{"twelve decomposes", 12, english, []string{"english_general_10", "english_general_2"}},
		{"tens plus ones", 37, english, []string{"english_general_30", "english_general_7"}},
		{"exact tens", 70, english, []string{"english_general_70"}},
		{"spanish prefix", 44, spanish, []string{"spanish_general_40", "spanish_general_4"}},
		{"amharic uses voice id", 37, amharic, []string{"amh_abebe_30", "amh_abebe_7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.n, tt.profile)
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Fatalf("Resolve(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestResolveHundreds(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		profile domain.VoiceProfile
		want    []string
	}{
		{"exactly one hundred is a single clip", 100, amharic, []string{"amh_abebe_100"}},
		{"hundreds with exact tens remainder", 290, amharic, []string{"amh_abebe_2", "amh_abebe_100", "amh_abebe_90"}},
		{"hundreds with full remainder", 347, amharic, []string{"amh_abebe_3", "amh_abebe_100", "amh_abebe_40", "amh_abebe_7"}},
		{"hundreds with small remainder", 105, amharic, []string{"amh_abebe_1", "amh_abebe_100", "amh_abebe_5"}},
		{"no remainder clips when rem is zero", 700, amharic, []string{"amh_abebe_7", "amh_abebe_100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.n, tt.profile)
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Fatalf("Resolve(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestResolveFallbackAboveBingoRange(t *testing.T) {
	// English and Spanish recordings stop at 75; larger numbers use the
	// gendered winner clip set.
	got := Resolve(290, domain.VoiceProfile{Language: domain.LangEnglish, Gender: domain.GenderMale})
	want := []string{"winner_man_2", "winner_man_100", "winner_man_90"}
	if !reflect.DeepEqual([]string(got), want) {
		t.Fatalf("Resolve(290) = %v, want %v", got, want)
	}

	got = Resolve(80, domain.VoiceProfile{Language: domain.LangSpanish, Gender: domain.GenderFemale})
	want = []string{"winner_woman_80"}
	if !reflect.DeepEqual([]string(got), want) {
		t.Fatalf("Resolve(80) = %v, want %v", got, want)
	}

	// 75 itself still uses the language set.
	got = Resolve(75, english)
	want = []string{"english_general_70", "english_general_5"}
	if !reflect.DeepEqual([]string(got), want) {
		t.Fatalf("Resolve(75) = %v, want %v", got, want)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 1000, 5000} {
		if got := Resolve(n, english); got != nil {
			t.Fatalf("Resolve(%d) = %v, want nil", n, got)
		}
	}
}

func TestPhrases(t *testing.T) {
	if got := GamePaused(english)[0]; got != "english_general_game_paused" {
		t.Fatalf("GamePaused = %q", got)
	}
	if got := Winner(amharic)[0]; got != "amh_abebe_winner" {
		t.Fatalf("Winner = %q", got)
	}
	if got := NoWinner(spanish)[0]; got != "spanish_general_no_winner" {
		t.Fatalf("NoWinner = %q", got)
	}
}

func TestNumberSegmentIncludesLetter(t *testing.T) {
	n, ok := domain.NewLabeledNumber(7)
	if !ok {
		t.Fatal("expected 7 to be a valid bingo number")
	}
	got := Number(n, english)
	want := []string{"english_general_letter_B", "english_general_7"}
	if !reflect.DeepEqual([]string(got), want) {
		t.Fatalf("Number(B-7) = %v, want %v", got, want)
	}
}
