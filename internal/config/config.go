package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/passtool/internal/common"
	"github.com/Veraticus/passtool/internal/wordlist"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultWordlistPath is the breach wordlist looked up in the working directory.
const DefaultWordlistPath = "india_passwords_wordlist.txt"

// Config is the passtool configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Breach   BreachConfig   `mapstructure:"breach"`
	Generate GenerateConfig `mapstructure:"generate"`
	Scorer   ScorerConfig   `mapstructure:"scorer"`
	UI       UIConfig       `mapstructure:"ui"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// BreachConfig locates the breach wordlist.
type BreachConfig struct {
	WordlistPath string `mapstructure:"wordlist_path" validate:"required"`
}

// ScorerConfig toggles the external strength scorer.
type ScorerConfig struct {
	External bool `mapstructure:"external"`
}

// UIConfig selects the interactive analyzer theme.
type UIConfig struct {
	Theme string `mapstructure:"theme" validate:"oneof=default catppuccin"`
}

// GenerateConfig holds wordlist generation defaults.
type GenerateConfig struct {
	MaxWords         int  `mapstructure:"max_words" validate:"gt=0"`
	Preview          int  `mapstructure:"preview" validate:"gte=0"`
	Leetspeak        bool `mapstructure:"leetspeak"`
	CaseVariations   bool `mapstructure:"case_variations"`
	Years            bool `mapstructure:"years"`
	PrefixesSuffixes bool `mapstructure:"prefixes_suffixes"`
}

// Flags converts the generation toggles.
func (g GenerateConfig) Flags() wordlist.Flags {
	return wordlist.Flags{
		Leetspeak:        g.Leetspeak,
		CaseVariations:   g.CaseVariations,
		Years:            g.Years,
		PrefixesSuffixes: g.PrefixesSuffixes,
	}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("breach.wordlist_path", DefaultWordlistPath)
	v.SetDefault("scorer.external", true)
	v.SetDefault("generate.max_words", wordlist.DefaultMaxWords)
	v.SetDefault("generate.preview", 20)
	v.SetDefault("generate.leetspeak", true)
	v.SetDefault("generate.case_variations", true)
	v.SetDefault("generate.years", true)
	v.SetDefault("generate.prefixes_suffixes", true)
	v.SetDefault("ui.theme", "default")
}

// Load unmarshals and validates the configuration held by v. Paths are
// expanded.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	cfg.Breach.WordlistPath = ExpandPath(cfg.Breach.WordlistPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}

// ParseWordLimit converts a user-entered word limit. Non-numeric or
// non-positive input yields fallback.
func ParseWordLimit(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
