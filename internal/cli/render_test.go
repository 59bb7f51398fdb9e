package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/passtool/internal/strength"
	"github.com/Veraticus/passtool/internal/wordlist"
	"github.com/stretchr/testify/assert"
)

func TestRenderVerdict(t *testing.T) {
	v := strength.Verdict{
		Score:             strength.ScoreWeak,
		Label:             "Weak",
		ColorHint:         "#FF8800",
		Feedback:          "Add numbers",
		EntropyBits:       37.6,
		CrackTimeEstimate: "2 hours",
		Method:            strength.MethodEntropy,
	}

	out := RenderVerdict(v)
	for _, want := range []string{"Password Analysis", "Weak", "(1/4)", "37.6 bits", "2 hours", "entropy", "Add numbers"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderSecurityStats(t *testing.T) {
	tests := []struct {
		name  string
		stats strength.SecurityStats
		want  []string
	}{
		{
			name:  "enhanced",
			stats: strength.SecurityStats{SecurityLevel: "Enhanced", WordlistLoaded: true, WordlistSize: 3, ExternalScorer: true},
			want:  []string{"Enhanced", "3 entries", "External scorer enabled"},
		},
		{
			name:  "basic",
			stats: strength.SecurityStats{SecurityLevel: "Basic"},
			want:  []string{"Basic", "not loaded", "entropy model"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderSecurityStats(tt.stats)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderWordlistStats(t *testing.T) {
	out := RenderWordlistStats(wordlist.Stats{
		TotalWords:    120,
		SeedWords:     4,
		AverageLength: 8.5,
		MinLength:     3,
		MaxLength:     14,
		SnapshotID:    "6f1c2a7e-0d5b-4c1e-9a8f-3b2d1e0c9f7a",
	})
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "8.5")
	assert.Contains(t, out, "3-14")
	assert.Contains(t, out, "6f1c2a7e-0d5b-4c1e-9a8f-3b2d1e0c9f7a")

	assert.NotContains(t, RenderWordlistStats(wordlist.Stats{}), "Snapshot:")
}

func TestRenderPreview(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}

	assert.Empty(t, RenderPreview(words, 0))
	assert.Empty(t, RenderPreview(nil, 5))

	out := RenderPreview(words, 2)
	assert.Contains(t, out, "Preview (2 of 3)")
	assert.Contains(t, out, "1. alpha")
	assert.Contains(t, out, "2. beta")
	assert.NotContains(t, out, "gamma")

	all := RenderPreview(words, 10)
	assert.Equal(t, 3, strings.Count(all, ". "))
}
