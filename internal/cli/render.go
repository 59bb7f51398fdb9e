package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passtool/internal/strength"
	"github.com/Veraticus/passtool/internal/wordlist"
	"github.com/charmbracelet/lipgloss"
)

// ScoreStyle returns a style colored with the verdict's color hint.
func ScoreStyle(v strength.Verdict) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.ColorHint))
}

// RenderVerdict renders an analysis result as a boxed report.
func RenderVerdict(v strength.Verdict) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%d/4)\n", BoldStyle.Render("Strength:"), ScoreStyle(v).Render(v.Label), v.Score)
	fmt.Fprintf(&b, "%s %.1f bits\n", BoldStyle.Render("Entropy:"), v.EntropyBits)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Crack time:"), v.CrackTimeEstimate)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Method:"), SubtleStyle.Render(string(v.Method)))
	fmt.Fprintf(&b, "%s %s", BoldStyle.Render("Feedback:"), v.Feedback)
	return RenderBox(LockIcon+" Password Analysis", b.String())
}

// RenderSecurityStats renders the active detection tiers.
func RenderSecurityStats(s strength.SecurityStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Security level:"), s.SecurityLevel)
	if s.WordlistLoaded {
		b.WriteString(FormatSuccess(fmt.Sprintf("Breach wordlist loaded (%d entries)", s.WordlistSize)))
	} else {
		b.WriteString(FormatWarning("Breach wordlist not loaded, using pattern detection"))
	}
	b.WriteString("\n")
	if s.ExternalScorer {
		b.WriteString(FormatSuccess("External scorer enabled"))
	} else {
		b.WriteString(FormatInfo("External scorer disabled, using entropy model"))
	}
	return b.String()
}

// RenderWordlistStats renders summary figures for a generated wordlist.
func RenderWordlistStats(s wordlist.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", BoldStyle.Render("Total words:"), s.TotalWords)
	fmt.Fprintf(&b, "%s %d\n", BoldStyle.Render("Base words:"), s.SeedWords)
	fmt.Fprintf(&b, "%s %.1f\n", BoldStyle.Render("Average length:"), s.AverageLength)
	fmt.Fprintf(&b, "%s %d-%d", BoldStyle.Render("Length range:"), s.MinLength, s.MaxLength)
	if s.SnapshotID != "" {
		fmt.Fprintf(&b, "\n%s %s", BoldStyle.Render("Snapshot:"), SubtleStyle.Render(s.SnapshotID))
	}
	return RenderBox(ChartIcon+" Wordlist Statistics", b.String())
}

// RenderPreview lists the first n words.
func RenderPreview(words []string, n int) string {
	if n <= 0 || len(words) == 0 {
		return ""
	}
	if n > len(words) {
		n = len(words)
	}
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%s Preview (%d of %d)", ListIcon, n, len(words))))
	for i, w := range words[:n] {
		fmt.Fprintf(&b, "\n%4d. %s", i+1, w)
	}
	return b.String()
}
