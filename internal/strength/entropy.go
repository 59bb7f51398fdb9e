package strength

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// GuessesPerSecond is the offline attack rate assumed by CrackTime.
const GuessesPerSecond = 10_000

// Character pool sizes per class.
const (
	poolLower  = 26
	poolUpper  = 26
	poolDigit  = 10
	poolSymbol = 32
)

// Entropy thresholds (bits) for each score band.
const (
	weakThreshold   = 28
	fairThreshold   = 36
	goodThreshold   = 60
	strongThreshold = 120
)

const strongFeedback = "Strong password!"

var (
	digitRuns  = []string{"012", "123", "234", "345", "456", "567", "678", "789", "890"}
	letterRuns = func() []string {
		runs := make([]string, 0, 24)
		for c := 'a'; c <= 'x'; c++ {
			runs = append(runs, string([]rune{c, c + 1, c + 2}))
		}
		return runs
	}()
)

type charClasses struct {
	lower, upper, digit, symbol bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

func (c charClasses) pool() int {
	pool := 0
	if c.lower {
		pool += poolLower
	}
	if c.upper {
		pool += poolUpper
	}
	if c.digit {
		pool += poolDigit
	}
	if c.symbol {
		pool += poolSymbol
	}
	return pool
}

// Entropy estimates the password's bits as length * log2(pool), where the
// pool sums the sizes of the character classes present.
func Entropy(password string) float64 {
	pool := classify(password).pool()
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

// EntropyToScore maps entropy bits onto the 0-4 score bands.
func EntropyToScore(bits float64) Score {
	switch {
	case bits < weakThreshold:
		return ScoreVeryWeak
	case bits < fairThreshold:
		return ScoreWeak
	case bits < goodThreshold:
		return ScoreFair
	case bits < strongThreshold:
		return ScoreGood
	default:
		return ScoreStrong
	}
}

// Feedback returns improvement suggestions joined with ". ", or
// "Strong password!" when nothing applies.
func Feedback(password string, _ float64) string {
	var suggestions []string

	length := utf8.RuneCountInString(password)
	switch {
	case length < 8:
		suggestions = append(suggestions, "Use at least 8 characters")
	case length < 12:
		suggestions = append(suggestions, "Consider using 12+ characters for better security")
	}

	classes := classify(password)
	if !classes.lower {
		suggestions = append(suggestions, "Add lowercase letters")
	}
	if !classes.upper {
		suggestions = append(suggestions, "Add uppercase letters")
	}
	if !classes.digit {
		suggestions = append(suggestions, "Add numbers")
	}
	if !classes.symbol {
		suggestions = append(suggestions, "Add special characters")
	}

	if hasRepeatedRun(password, 3) {
		suggestions = append(suggestions, "Avoid repeating characters")
	}
	if containsAny(password, digitRuns) {
		suggestions = append(suggestions, "Avoid sequential numbers")
	}
	if containsAny(strings.ToLower(password), letterRuns) {
		suggestions = append(suggestions, "Avoid sequential letters")
	}

	if len(suggestions) == 0 {
		return strongFeedback
	}
	return strings.Join(suggestions, ". ")
}

// CrackTime estimates the average time to brute force a password of the
// given entropy at GuessesPerSecond.
func CrackTime(bits float64) string {
	combinations := math.Pow(2, bits)
	return FormatCrackTime(combinations / (2 * GuessesPerSecond))
}

// FormatCrackTime buckets seconds into a human readable estimate.
func FormatCrackTime(seconds float64) string {
	const (
		minute = 60
		hour   = 3600
		day    = 86_400
		year   = 31_536_000
		era    = 3_153_600_000
	)

	switch {
	case seconds < 1:
		return CrackTimeInstant
	case seconds < minute:
		return fmt.Sprintf("%d seconds", int64(seconds))
	case seconds < hour:
		return fmt.Sprintf("%d minutes", int64(seconds/minute))
	case seconds < day:
		return fmt.Sprintf("%d hours", int64(seconds/hour))
	case seconds < year:
		return fmt.Sprintf("%d days", int64(seconds/day))
	case seconds < era:
		return fmt.Sprintf("%d years", int64(seconds/year))
	default:
		return "Centuries"
	}
}

// hasRepeatedRun reports whether any rune repeats n times consecutively.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	count := 0
	for i, r := range s {
		if i > 0 && r == prev {
			count++
		} else {
			count = 1
		}
		if count >= n {
			return true
		}
		prev = r
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
