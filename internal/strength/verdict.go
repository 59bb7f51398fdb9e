// Package strength classifies password strength with an ordered rule chain:
// blank check, breach lookup, pattern bank, optional external scorer and an
// entropy fallback.
package strength

// Score is the ordinal strength band, 0 (Very Weak) through 4 (Strong).
type Score int

// Strength bands.
const (
	ScoreVeryWeak Score = iota
	ScoreWeak
	ScoreFair
	ScoreGood
	ScoreStrong
)

var scoreLabels = [...]string{
	ScoreVeryWeak: "Very Weak",
	ScoreWeak:     "Weak",
	ScoreFair:     "Fair",
	ScoreGood:     "Good",
	ScoreStrong:   "Strong",
}

var scoreColors = [...]string{
	ScoreVeryWeak: "#FF4444",
	ScoreWeak:     "#FF8800",
	ScoreFair:     "#FFAA00",
	ScoreGood:     "#88AA00",
	ScoreStrong:   "#00AA44",
}

// Valid reports whether s is within 0..4.
func (s Score) Valid() bool {
	return s >= ScoreVeryWeak && s <= ScoreStrong
}

// Label returns the band name.
func (s Score) Label() string {
	if !s.Valid() {
		return "Unknown"
	}
	return scoreLabels[s]
}

// Color returns the display color token for the band.
func (s Score) Color() string {
	if !s.Valid() {
		return scoreColors[ScoreVeryWeak]
	}
	return scoreColors[s]
}

// Method identifies which rule produced a verdict.
type Method string

// Verdict methods, in evaluation order.
const (
	MethodBlank          Method = "blank"
	MethodWordlistBreach Method = "wordlist_breach"
	MethodPatternExact   Method = "pattern_exact"
	MethodPatternMatch   Method = "pattern_match"
	MethodExternalScorer Method = "external_scorer"
	MethodEntropy        Method = "entropy"
)

// Crack time strings for verdicts that bypass the entropy model.
const (
	CrackTimeNotApplicable = "N/A"
	CrackTimeBreach        = "Seconds to Minutes"
	CrackTimeInstant       = "Instant"
	CrackTimePattern       = "Minutes to Hours"
)

// Verdict is the result of analyzing one password.
type Verdict struct {
	Label             string  `json:"label"`
	ColorHint         string  `json:"color_hint"`
	Feedback          string  `json:"feedback"`
	CrackTimeEstimate string  `json:"crack_time_estimate"`
	Method            Method  `json:"method"`
	EntropyBits       float64 `json:"entropy_bits"`
	Score             Score   `json:"score"`
}

func newVerdict(score Score, method Method, feedback string, bits float64, crackTime string) Verdict {
	return Verdict{
		Score:             score,
		Label:             score.Label(),
		ColorHint:         score.Color(),
		Feedback:          feedback,
		EntropyBits:       bits,
		CrackTimeEstimate: crackTime,
		Method:            method,
	}
}
