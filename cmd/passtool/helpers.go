package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/passtool/internal/breach"
	"github.com/Veraticus/passtool/internal/config"
	"github.com/Veraticus/passtool/internal/strength"
	"github.com/spf13/viper"
)

// loadConfig reads the validated configuration from the global viper instance.
func loadConfig() (*config.Config, error) {
	v := viper.GetViper()
	config.SetDefaults(v)
	return config.Load(v)
}

// initAnalyzer loads the breach wordlist and builds an analyzer. A missing
// wordlist is not an error; the analyzer falls back to pattern detection.
func initAnalyzer(cfg *config.Config) *strength.Analyzer {
	wordlist := breach.Load(cfg.Breach.WordlistPath)

	var opts []strength.Option
	if cfg.Scorer.External {
		opts = append(opts, strength.WithScorer(strength.NewZxcvbnScorer()))
	}
	return strength.NewAnalyzer(wordlist, opts...)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// readWordsFile reads one custom word per line. Blank lines are skipped.
func readWordsFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-specified words file
	if err != nil {
		return nil, fmt.Errorf("failed to open words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words file: %w", err)
	}
	return words, nil
}
