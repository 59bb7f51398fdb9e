// Package tui provides a live password strength analyzer built on bubbletea.
package tui

import (
	"github.com/Veraticus/passtool/internal/strength"
	"github.com/Veraticus/passtool/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Analyzer classifies a password. *strength.Analyzer satisfies it.
type Analyzer interface {
	Analyze(password string) strength.Verdict
	SecurityStats() strength.SecurityStats
}

// Model holds the interactive analyzer state.
type Model struct {
	analyzer Analyzer
	theme    themes.Theme
	keymap   KeyMap
	input    textinput.Model
	meter    progress.Model
	help     help.Model
	stats    strength.SecurityStats
	verdict  strength.Verdict
	analyzed int
	width    int
	revealed bool
	quitting bool
	showHelp bool
}

// newModel creates a model with a focused, masked input.
func newModel(analyzer Analyzer, cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "type a password"
	input.Prompt = "Password: "
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	meter := progress.New(
		progress.WithSolidFill(strength.ScoreVeryWeak.Color()),
		progress.WithoutPercentage(),
		progress.WithWidth(cfg.Width),
	)
	meter.EmptyColor = string(cfg.Theme.Empty)

	m := Model{
		analyzer: analyzer,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		input:    input,
		meter:    meter,
		help:     help.New(),
		stats:    analyzer.SecurityStats(),
		width:    cfg.Width,
		showHelp: cfg.ShowHelp,
	}
	m.verdict = analyzer.Analyze("")
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Reveal):
			m.toggleReveal()
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.input.Reset()
			m.analyze()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - 4; w > 0 {
			m.meter.Width = min(w, m.width)
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.analyze()
	}
	return m, cmd
}

func (m *Model) analyze() {
	m.verdict = m.analyzer.Analyze(m.password())
	m.meter.FullColor = m.verdict.ColorHint
	m.analyzed++
}

func (m *Model) toggleReveal() {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

// Verdict returns the verdict for the current input.
func (m Model) Verdict() strength.Verdict {
	return m.verdict
}

func (m Model) password() string {
	return m.input.Value()
}
