package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/passtool/internal/wordlist"
	"github.com/schollz/progressbar/v3"
)

// GenerationProgress reports seed expansion on a terminal progress bar.
type GenerationProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewGenerationProgress creates a progress reporter writing to w.
func NewGenerationProgress(w io.Writer) *GenerationProgress {
	return &GenerationProgress{writer: w}
}

// Func returns the callback to hand to wordlist.WithProgress.
func (p *GenerationProgress) Func() wordlist.ProgressFunc {
	return p.update
}

func (p *GenerationProgress) update(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Expanding seed words...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(p.writer); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
	}
	if err := p.bar.Set(done); err != nil {
		slog.Debug("Failed to update progress bar", "error", err)
	}
}

// Done reports whether the bar reached its total.
func (p *GenerationProgress) Done() bool {
	return p.bar != nil && p.bar.IsFinished()
}
