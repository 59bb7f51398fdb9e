package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/passtool/internal/strength"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive analyzer and blocks until the user quits or ctx
// is canceled. It returns the verdict for the last input.
func Run(ctx context.Context, analyzer Analyzer, opts ...Option) (strength.Verdict, error) {
	if analyzer == nil {
		return strength.Verdict{}, fmt.Errorf("analyzer is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Input != nil {
		programOpts = append(programOpts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(cfg.Output))
	}

	final, err := tea.NewProgram(newModel(analyzer, cfg), programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return strength.Verdict{}, nil
		}
		return strength.Verdict{}, fmt.Errorf("interactive analyzer failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return strength.Verdict{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Verdict(), nil
}
