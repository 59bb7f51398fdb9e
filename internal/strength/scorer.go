package strength

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passtool/internal/common"
)

// ScorerResult is what an external strength scorer reports for a password.
type ScorerResult struct {
	Warning          string
	Suggestions      []string
	Entropy          float64
	CrackTimeSeconds float64
	Score            int
}

// Scorer is an optional external strength estimator.
type Scorer interface {
	Score(password string) (ScorerResult, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(password string) (ScorerResult, error)

// Score calls f(password).
func (f ScorerFunc) Score(password string) (ScorerResult, error) {
	return f(password)
}

// scoreExternal runs the scorer and translates its result into a verdict.
// Panics and out-of-range scores are reported as errors.
func scoreExternal(scorer Scorer, password string) (verdict Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", common.ErrScorerFailed, r)
		}
	}()

	result, err := scorer.Score(password)
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %w", common.ErrScorerFailed, err)
	}

	score := Score(result.Score)
	if !score.Valid() {
		return Verdict{}, fmt.Errorf("%w: score %d out of range", common.ErrScorerFailed, result.Score)
	}

	parts := make([]string, 0, len(result.Suggestions)+1)
	if result.Warning != "" {
		parts = append(parts, result.Warning)
	}
	for _, s := range result.Suggestions {
		if s != "" {
			parts = append(parts, s)
		}
	}
	feedback := strongFeedback
	if len(parts) > 0 {
		feedback = strings.Join(parts, ". ")
	}

	bits := result.Entropy
	if bits < 0 {
		bits = 0
	}

	return newVerdict(score, MethodExternalScorer, feedback, bits, FormatCrackTime(result.CrackTimeSeconds)), nil
}
