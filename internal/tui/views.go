package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/passtool/internal/strength"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("🔐 Password Strength Analyzer"),
		m.input.View(),
		"",
		m.renderVerdict(),
		"",
		m.renderStatus(),
	}
	if m.showHelp {
		sections = append(sections, "", m.help.View(m.keymap))
	}

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderVerdict() string {
	if m.verdict.Method == strength.MethodBlank {
		return m.theme.StatusPending.Render("Start typing to see how strong your password is.")
	}

	v := m.verdict
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.ColorHint)).Render(v.Label)
	percent := float64(v.Score) / float64(strength.ScoreStrong)

	var b strings.Builder
	b.WriteString(m.meter.ViewAs(percent))
	fmt.Fprintf(&b, "\n%s %s\n", m.theme.Bold.Render("Strength:"), label)
	fmt.Fprintf(&b, "%s %.1f bits\n", m.theme.Bold.Render("Entropy:"), v.EntropyBits)
	fmt.Fprintf(&b, "%s %s\n", m.theme.Bold.Render("Crack time:"), v.CrackTimeEstimate)
	fmt.Fprintf(&b, "%s %s", m.theme.Bold.Render("Feedback:"), m.theme.Normal.Render(v.Feedback))
	return b.String()
}

func (m Model) renderStatus() string {
	status := fmt.Sprintf("Security: %s", m.stats.SecurityLevel)
	if m.stats.WordlistLoaded {
		return m.theme.StatusSuccess.Render(fmt.Sprintf("%s (%d breached passwords)", status, m.stats.WordlistSize))
	}
	return m.theme.StatusWarning.Render(status + " (pattern detection)")
}
