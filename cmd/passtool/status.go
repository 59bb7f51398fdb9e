package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/Veraticus/passtool/internal/cli"
	"github.com/Veraticus/passtool/internal/strength"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func statusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which detection tiers are active",
		Long: `Show the breach wordlist, pattern bank and external scorer status.

The security level is Enhanced when the breach wordlist is loaded and Basic
when analysis falls back to pattern detection.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			stats := initAnalyzer(cfg).SecurityStats()

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, stats)
			}

			fmt.Fprintln(out, cli.FormatTitle("Passtool Status"))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer func() {
				if flushErr := w.Flush(); flushErr != nil {
					slog.Error("failed to flush table writer", "error", flushErr)
				}
			}()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("Component"),
				headerStyle.Render("Status"),
				headerStyle.Render("Detail"))

			for _, row := range statusRows(stats, cfg.Breach.WordlistPath, viper.ConfigFileUsed()) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row[0], row[1], row[2])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print status as JSON")

	return cmd
}

func statusRows(stats strength.SecurityStats, wordlistPath, configFile string) [][3]string {
	wordlistStatus := cli.StyleStatus(false, "Not loaded")
	wordlistDetail := wordlistPath
	if stats.WordlistLoaded {
		wordlistStatus = cli.StyleStatus(true, "Loaded")
		wordlistDetail = fmt.Sprintf("%s (%d entries)", wordlistPath, stats.WordlistSize)
	}

	// The pattern bank only runs when the breach wordlist is unavailable.
	patternStatus := cli.StyleStatus(true, "Active")
	if stats.WordlistLoaded {
		patternStatus = cli.SubtleStyle.Render("Standby")
	}

	scorerStatus := cli.StyleStatus(false, "Disabled")
	if stats.ExternalScorer {
		scorerStatus = cli.StyleStatus(true, "Enabled")
	}

	if configFile == "" {
		configFile = "defaults"
	}

	return [][3]string{
		{"Breach wordlist", wordlistStatus, wordlistDetail},
		{"Pattern bank", patternStatus, fmt.Sprintf("%d patterns", strength.DefaultPatternBank().GetPatternCount())},
		{"External scorer", scorerStatus, "zxcvbn"},
		{"Security level", stats.SecurityLevel, ""},
		{"Config", configFile, ""},
	}
}
