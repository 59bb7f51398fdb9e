package strength

import (
	"strings"

	"github.com/Veraticus/passtool/internal/breach"
	"github.com/Veraticus/passtool/internal/common"
)

const blankFeedback = "Password cannot be blank"

// Security levels reported by SecurityStats.
const (
	SecurityLevelEnhanced = "Enhanced"
	SecurityLevelBasic    = "Basic"
)

// SecurityStats summarizes which detection tiers are active.
type SecurityStats struct {
	SecurityLevel  string `json:"security_level"`
	WordlistSize   int    `json:"wordlist_size"`
	WordlistLoaded bool   `json:"wordlist_loaded"`
	ExternalScorer bool   `json:"external_scorer"`
}

// Analyzer classifies passwords. It owns its breach wordlist and is safe to
// reuse for the lifetime of the process.
type Analyzer struct {
	wordlist    *breach.Wordlist
	scorer      Scorer
	patterns    *PatternBank
	breachRules []Rule
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithScorer enables the external scorer tier.
func WithScorer(s Scorer) Option {
	return func(a *Analyzer) {
		a.scorer = s
	}
}

// withPatternBank replaces the built-in pattern bank.
func withPatternBank(b *PatternBank) Option {
	return func(a *Analyzer) {
		if b != nil {
			a.patterns = b
		}
	}
}

// NewAnalyzer creates an analyzer over the given wordlist. A nil wordlist is
// treated as not loaded.
func NewAnalyzer(wordlist *breach.Wordlist, opts ...Option) *Analyzer {
	if wordlist == nil {
		wordlist = breach.Empty()
	}

	a := &Analyzer{
		wordlist:    wordlist,
		patterns:    DefaultPatternBank(),
		breachRules: BreachFeedbackRules(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze returns the verdict for password. The first matching tier wins.
func (a *Analyzer) Analyze(password string) Verdict {
	if password == "" {
		return newVerdict(ScoreVeryWeak, MethodBlank, blankFeedback, 0, CrackTimeNotApplicable)
	}

	lower := strings.ToLower(password)

	if a.wordlist.Loaded() {
		if a.wordlist.Contains(lower) {
			return newVerdict(ScoreVeryWeak, MethodWordlistBreach,
				breachFeedback(a.breachRules, lower), 0, CrackTimeBreach)
		}
	} else if match, ok := a.patterns.Match(lower); ok {
		return newVerdict(ScoreVeryWeak, match.Method, match.Feedback, 0, match.CrackTime)
	}

	if a.scorer != nil {
		verdict, err := scoreExternal(a.scorer, password)
		if err == nil {
			return verdict
		}
		common.LogDebug("External scorer failed, using entropy estimate", common.Fields{"error": err.Error()})
	}

	return analyzeEntropy(password)
}

func analyzeEntropy(password string) Verdict {
	bits := Entropy(password)
	score := EntropyToScore(bits)
	return newVerdict(score, MethodEntropy, Feedback(password, bits), bits, CrackTime(bits))
}

// SecurityStats reports the active detection tiers.
func (a *Analyzer) SecurityStats() SecurityStats {
	level := SecurityLevelBasic
	if a.wordlist.Loaded() {
		level = SecurityLevelEnhanced
	}
	return SecurityStats{
		WordlistLoaded: a.wordlist.Loaded(),
		WordlistSize:   a.wordlist.Size(),
		ExternalScorer: a.scorer != nil,
		SecurityLevel:  level,
	}
}
