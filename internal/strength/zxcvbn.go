package strength

import (
	"strings"

	"github.com/nbutton23/zxcvbn-go"
)

// ZxcvbnScorer adapts zxcvbn-go to the Scorer interface.
type ZxcvbnScorer struct {
	userInputs []string
}

// NewZxcvbnScorer creates a scorer. userInputs are extra dictionary words
// (names, e-mail parts) that zxcvbn penalizes.
func NewZxcvbnScorer(userInputs ...string) *ZxcvbnScorer {
	return &ZxcvbnScorer{userInputs: userInputs}
}

// Score estimates password strength. zxcvbn-go reports crack time at 10^4
// guesses per second, matching the entropy model.
func (z *ZxcvbnScorer) Score(password string) (ScorerResult, error) {
	result := zxcvbn.PasswordStrength(password, z.userInputs)

	patterns := make([]string, 0, len(result.MatchSequence))
	for _, m := range result.MatchSequence {
		patterns = append(patterns, strings.ToLower(m.Pattern))
	}

	return ScorerResult{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CrackTimeSeconds: result.CrackTime,
		Warning:          zxcvbnWarning(patterns),
		Suggestions:      zxcvbnSuggestions(result.Score, patterns),
	}, nil
}

// zxcvbn-go has no feedback module; warnings are derived from the
// patterns of the minimum entropy match sequence.
func zxcvbnWarning(patterns []string) string {
	warnings := []struct {
		pattern string
		message string
	}{
		{"dictionary", "This is similar to a commonly used password"},
		{"spatial", "Straight rows of keys are easy to guess"},
		{"repeat", "Repeats like \"aaa\" are easy to guess"},
		{"sequence", "Sequences like abc or 6543 are easy to guess"},
		{"date", "Dates are often easy to guess"},
		{"year", "Recent years are easy to guess"},
	}
	for _, w := range warnings {
		for _, p := range patterns {
			if strings.HasPrefix(p, w.pattern) {
				return w.message
			}
		}
	}
	return ""
}

func zxcvbnSuggestions(score int, patterns []string) []string {
	if score > 2 {
		return nil
	}

	suggestions := []string{"Add another word or two. Uncommon words are better"}
	for _, p := range patterns {
		switch {
		case strings.HasPrefix(p, "date"), strings.HasPrefix(p, "year"):
			return append(suggestions, "Avoid dates and years that are associated with you")
		case strings.HasPrefix(p, "spatial"):
			return append(suggestions, "Use a longer keyboard pattern with more turns")
		case strings.HasPrefix(p, "repeat"):
			return append(suggestions, "Avoid repeated words and characters")
		}
	}
	return suggestions
}
