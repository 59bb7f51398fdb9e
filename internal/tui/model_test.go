package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/passtool/internal/breach"
	"github.com/Veraticus/passtool/internal/strength"
	"github.com/Veraticus/passtool/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAnalyzer struct {
	inner *strength.Analyzer
	seen  []string
}

func newRecordingAnalyzer(t *testing.T, entries ...string) *recordingAnalyzer {
	t.Helper()
	wl := breach.Empty()
	if len(entries) > 0 {
		var err error
		wl, err = breach.FromReader(strings.NewReader(strings.Join(entries, "\n")))
		require.NoError(t, err)
	}
	return &recordingAnalyzer{inner: strength.NewAnalyzer(wl)}
}

func (r *recordingAnalyzer) Analyze(password string) strength.Verdict {
	r.seen = append(r.seen, password)
	return r.inner.Analyze(password)
}

func (r *recordingAnalyzer) SecurityStats() strength.SecurityStats {
	return r.inner.SecurityStats()
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewModel(t *testing.T) {
	analyzer := newRecordingAnalyzer(t)
	m := newModel(analyzer, defaultConfig())

	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)
	assert.True(t, m.input.Focused())
	assert.Equal(t, strength.MethodBlank, m.Verdict().Method)
	assert.Equal(t, []string{""}, analyzer.seen)
	assert.Contains(t, m.View(), "Start typing")
}

func TestModel_AnalyzesEachKeystroke(t *testing.T) {
	analyzer := newRecordingAnalyzer(t)
	m := newModel(analyzer, defaultConfig())

	m = typeString(t, m, "abc")

	assert.Equal(t, []string{"", "a", "ab", "abc"}, analyzer.seen)
	assert.Equal(t, "abc", m.password())
	assert.Equal(t, 3, m.analyzed)
	assert.Equal(t, strength.MethodEntropy, m.Verdict().Method)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab", m.password())
	assert.Equal(t, "ab", analyzer.seen[len(analyzer.seen)-1])
}

func TestModel_BreachVerdict(t *testing.T) {
	analyzer := newRecordingAnalyzer(t, "india@123")
	m := newModel(analyzer, defaultConfig())

	m = typeString(t, m, "India@123")

	v := m.Verdict()
	assert.Equal(t, strength.MethodWordlistBreach, v.Method)
	assert.Equal(t, strength.ScoreVeryWeak, v.Score)
	assert.Equal(t, v.ColorHint, m.meter.FullColor)

	view := m.View()
	assert.Contains(t, view, "Very Weak")
	assert.Contains(t, view, strength.CrackTimeBreach)
	assert.Contains(t, view, "Enhanced")
	assert.NotContains(t, view, "India@123")
}

func TestModel_Reveal(t *testing.T) {
	m := newModel(newRecordingAnalyzer(t), defaultConfig())
	m = typeString(t, m, "visible1")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.revealed)
	assert.Equal(t, textinput.EchoNormal, m.input.EchoMode)
	assert.Contains(t, m.View(), "visible1")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.revealed)
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)
}

func TestModel_Clear(t *testing.T) {
	analyzer := newRecordingAnalyzer(t)
	m := newModel(analyzer, defaultConfig())
	m = typeString(t, m, "secret")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.password())
	assert.Equal(t, strength.MethodBlank, m.Verdict().Method)
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "escape", msg: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(newRecordingAnalyzer(t), defaultConfig())
			m, cmd := send(t, m, tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := newModel(newRecordingAnalyzer(t), defaultConfig())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 26, m.meter.Width)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, 60, m.meter.Width)
}

func TestModel_ToggleHelp(t *testing.T) {
	m := newModel(newRecordingAnalyzer(t), defaultConfig())
	assert.False(t, m.help.ShowAll)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "clear")
}

func TestRun_RequiresAnalyzer(t *testing.T) {
	_, err := Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRun_QuitsOnInterruptKey(t *testing.T) {
	in := strings.NewReader("abc\x03")
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := Run(ctx, newRecordingAnalyzer(t), WithIO(in, &out), WithoutAltScreen(), WithTheme(themes.CatppuccinMocha))
	require.NoError(t, err)
}

func TestThemesByName(t *testing.T) {
	assert.Equal(t, themes.CatppuccinMocha.Primary, themes.ByName("catppuccin").Primary)
	assert.Equal(t, themes.Default.Primary, themes.ByName("nope").Primary)
}
