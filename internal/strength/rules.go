package strength

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one entry of an ordered, first-match-wins rule bank.
type Rule struct {
	Match    func(lower string) bool
	Name     string
	Feedback string
}

func substringRule(name, feedback string, tokens ...string) Rule {
	return Rule{
		Name:     name,
		Feedback: feedback,
		Match: func(lower string) bool {
			return containsAny(lower, tokens)
		},
	}
}

func exactRule(name, feedback string, tokens ...string) Rule {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return Rule{
		Name:     name,
		Feedback: feedback,
		Match: func(lower string) bool {
			_, ok := set[lower]
			return ok
		},
	}
}

const genericBreachFeedback = "CRITICAL: This password appears in known breach databases"

// BreachFeedbackRules returns the ordered categories used to explain a breach hit.
func BreachFeedbackRules() []Rule {
	return []Rule{
		substringRule("suffix_pattern",
			"CRITICAL: This password uses the '@123' pattern found in multiple Indian data breaches",
			"@123", "#123", "$123", "!123", "*123"),
		exactRule("top_passwords",
			"CRITICAL: This is among the top 10 most common passwords globally",
			"password", "admin", "welcome", "login", "user", "guest"),
		substringRule("city_names",
			"CRITICAL: City names are prime targets in Indian-focused password attacks",
			"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad"),
		substringRule("cultural_terms",
			"CRITICAL: Cultural references are heavily targeted in localized attacks",
			"india", "bollywood", "cricket", "diwali", "holi"),
		substringRule("company_names",
			"CRITICAL: Company names are easily guessed in corporate environments",
			"tcs", "infosys", "wipro", "reliance", "airtel"),
	}
}

// breachFeedback selects the message for a breached password.
func breachFeedback(rules []Rule, lower string) string {
	if rule, ok := firstMatch(rules, lower); ok {
		return rule.Feedback
	}
	return genericBreachFeedback
}

func firstMatch(rules []Rule, lower string) (Rule, bool) {
	for _, rule := range rules {
		if rule.Match(lower) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Pattern is a regular expression rule of the pattern bank.
type Pattern struct {
	Name     string
	Regex    string
	Feedback string
}

// CompiledPattern holds a compiled regex pattern with metadata.
type CompiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// PatternMatch describes a pattern bank hit.
type PatternMatch struct {
	Name      string
	Feedback  string
	CrackTime string
	Method    Method
}

// PatternBank checks passwords against canonical weak passwords and an
// ordered list of regular expressions. It is used only when no breach
// wordlist is available.
type PatternBank struct {
	exact    map[string]struct{}
	patterns []CompiledPattern
}

const exactFeedback = "CRITICAL: This is a top-10 most common password globally"

// DefaultCriticalPasswords returns the canonical weak passwords matched exactly.
func DefaultCriticalPasswords() []string {
	return []string{
		"password@123", "admin@123", "welcome@123", "india@123",
		"password123", "admin123", "welcome123", "qwerty123",
		"123456", "123456789", "1234567890", "password", "admin",
	}
}

// DefaultPatterns returns the ordered pattern rules.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:     "word_at_123",
			Regex:    `^[a-z]+@123!*$`,
			Feedback: "CRITICAL: Word + @123 pattern is extremely common in breaches",
		},
		{
			Name:     "word_123",
			Regex:    `^[a-z]+123!*$`,
			Feedback: "VERY WEAK: Word + 123 pattern is easily guessed",
		},
		{
			Name:     "dictionary_base",
			Regex:    `^(password|admin|welcome|login)`,
			Feedback: "CRITICAL: Dictionary word base is trivial to crack",
		},
		{
			Name:     "keyboard_sequence",
			Regex:    `^(qwerty|asdf|zxcv)`,
			Feedback: "VERY WEAK: Keyboard sequence detected",
		},
		{
			Name:     "numeric_only",
			Regex:    `^[0-9]{6,10}$`,
			Feedback: "VERY WEAK: Numeric-only passwords are easily cracked",
		},
	}
}

// NewPatternBank compiles the given exact passwords and patterns. Patterns
// keep their order.
func NewPatternBank(exact []string, patterns []Pattern) (*PatternBank, error) {
	set := make(map[string]struct{}, len(exact))
	for _, pw := range exact {
		set[strings.ToLower(pw)] = struct{}{}
	}

	compiled := make([]CompiledPattern, 0, len(patterns))
	for _, p := range patterns {
		regex, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}
		compiled = append(compiled, CompiledPattern{
			Pattern:       p,
			compiledRegex: regex,
		})
	}

	return &PatternBank{
		exact:    set,
		patterns: compiled,
	}, nil
}

// DefaultPatternBank returns the built-in pattern bank.
func DefaultPatternBank() *PatternBank {
	bank, err := NewPatternBank(DefaultCriticalPasswords(), DefaultPatterns())
	if err != nil {
		panic(err) // built-in patterns are constant
	}
	return bank
}

// Match checks a lowercased password against the bank. The exact set is
// consulted before any pattern.
func (b *PatternBank) Match(lower string) (*PatternMatch, bool) {
	if _, ok := b.exact[lower]; ok {
		return &PatternMatch{
			Name:      "critical_password",
			Feedback:  exactFeedback,
			CrackTime: CrackTimeInstant,
			Method:    MethodPatternExact,
		}, true
	}

	for _, p := range b.patterns {
		if p.compiledRegex.MatchString(lower) {
			return &PatternMatch{
				Name:      p.Name,
				Feedback:  p.Feedback,
				CrackTime: CrackTimePattern,
				Method:    MethodPatternMatch,
			}, true
		}
	}

	return nil, false
}

// GetPatternCount returns the number of regex patterns in the bank.
func (b *PatternBank) GetPatternCount() int {
	return len(b.patterns)
}
