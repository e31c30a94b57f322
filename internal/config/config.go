// Package config loads game settings from a YAML file. Settings cover one
// game session: pricing, draw timing, the pattern rule set, the voice
// profile, and where the recorded clips live.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abenezerd/bingocaller/internal/domain"
)

// Duration wraps time.Duration so YAML can carry values like "5s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the full settings file.
type Config struct {
	CardPrice    float64  `yaml:"card_price"`
	DrawInterval Duration `yaml:"draw_interval"`
	ClipsDir     string   `yaml:"clips_dir"`

	Pattern PatternSettings `yaml:"pattern"`
	Voice   VoiceSettings   `yaml:"voice"`
}

// PatternSettings selects the win rule set.
type PatternSettings struct {
	Category         string   `yaml:"category"`
	SelectedPattern  string   `yaml:"selected_pattern"`
	ClassicTarget    int      `yaml:"classic_lines_target"`
	ClassicLineTypes []string `yaml:"classic_line_types"`
}

// VoiceSettings selects the announcement voice.
type VoiceSettings struct {
	Language string `yaml:"language"`
	Gender   string `yaml:"gender"`
	ID       string `yaml:"id"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		CardPrice:    20,
		DrawInterval: Duration(5 * time.Second),
		ClipsDir:     "clips",
		Pattern: PatternSettings{
			Category:         string(domain.CategoryClassic),
			ClassicTarget:    1,
			ClassicLineTypes: []string{string(domain.LineHorizontal), string(domain.LineVertical), string(domain.LineDiagonal)},
		},
		Voice: VoiceSettings{
			Language: string(domain.LangEnglish),
			Gender:   string(domain.GenderMale),
			ID:       "en_m_1",
		},
	}
}

// Load reads a settings file, applying defaults for anything omitted.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch domain.PatternCategory(c.Pattern.Category) {
	case domain.CategoryClassic, domain.CategoryModern:
	default:
		return fmt.Errorf("unknown pattern category %q", c.Pattern.Category)
	}
	switch domain.Language(c.Voice.Language) {
	case domain.LangEnglish, domain.LangSpanish, domain.LangAmharic:
	default:
		return fmt.Errorf("unknown voice language %q", c.Voice.Language)
	}
	if c.DrawInterval <= 0 {
		return fmt.Errorf("draw_interval must be positive")
	}
	return nil
}

// PatternConfig converts the settings into the domain rule set.
func (c *Config) PatternConfig() domain.PatternConfig {
	types := make([]domain.LineType, 0, len(c.Pattern.ClassicLineTypes))
	for _, t := range c.Pattern.ClassicLineTypes {
		types = append(types, domain.LineType(t))
	}
	return domain.PatternConfig{
		Category:           domain.PatternCategory(c.Pattern.Category),
		SelectedPattern:    domain.PatternName(c.Pattern.SelectedPattern),
		ClassicLinesTarget: c.Pattern.ClassicTarget,
		ClassicLineTypes:   types,
	}
}

// VoiceProfile converts the settings into the domain voice profile.
func (c *Config) VoiceProfile() domain.VoiceProfile {
	return domain.VoiceProfile{
		Language: domain.Language(c.Voice.Language),
		Gender:   domain.Gender(c.Voice.Gender),
		ID:       c.Voice.ID,
	}
}

// Interval returns the draw interval as a time.Duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.DrawInterval)
}
