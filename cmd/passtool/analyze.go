package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/passtool/internal/cli"
	"github.com/Veraticus/passtool/internal/strength"
	"github.com/Veraticus/passtool/internal/tui"
	"github.com/Veraticus/passtool/internal/tui/themes"
	"github.com/spf13/cobra"
)

type analyzeOutput struct {
	strength.Verdict
	Security strength.SecurityStats `json:"security"`
}

func analyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		fromStdin   bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Rate the strength of a password",
		Long: `Rate a password against the breach wordlist, common breach patterns,
the zxcvbn scorer and an entropy model. The first matching check decides.

Without an argument the password is read from stdin, hidden when stdin is a
terminal. Passing the password as an argument leaves it in shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			analyzer := initAnalyzer(cfg)

			if interactive {
				_, err := tui.Run(cmd.Context(), analyzer,
					tui.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
					tui.WithTheme(themes.ByName(cfg.UI.Theme)))
				return err
			}

			password, err := readPasswordInput(cmd, args, fromStdin)
			if err != nil {
				return err
			}

			verdict := analyzer.Analyze(password)
			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, analyzeOutput{Verdict: verdict, Security: analyzer.SecurityStats()})
			}

			fmt.Fprintln(out, cli.RenderVerdict(verdict))
			fmt.Fprintln(out, cli.RenderSecurityStats(analyzer.SecurityStats()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the verdict as JSON")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the password from the first line of stdin")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "analyze live as you type")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")

	return cmd
}

func readPasswordInput(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	if len(args) == 1 && !fromStdin {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	var (
		password string
		err      error
	)
	if fromStdin || !cli.IsTerminal(in) {
		password, err = cli.NewNonBlockingReader(in).ReadLine(cmd.Context())
	} else {
		password, err = cli.ReadPassword(cmd.Context(), in, cmd.ErrOrStderr(), "Password")
	}

	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
