package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/passtool/internal/cli"
	"github.com/Veraticus/passtool/internal/common"
	"github.com/Veraticus/passtool/internal/config"
	"github.com/Veraticus/passtool/internal/wordlist"
	"github.com/spf13/cobra"
)

const noSeedMessage = "Provide --name, --birth-date, --field or --word (or pass --allow-defaults to use built-in seeds)"

type generateOptions struct {
	name          string
	birthDate     string
	wordsFile     string
	maxWords      string
	output        string
	fields        []string
	words         []string
	preview       int
	noLeet        bool
	noCase        bool
	noYears       bool
	noAffixes     bool
	noProgress    bool
	allowDefaults bool
}

func generateCmd() *cobra.Command {
	opts := generateOptions{preview: -1}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a personalized candidate wordlist",
		Long: `Generate candidate passwords from personal information and custom words.

Seeds are expanded with case variations, leetspeak, common prefixes and
suffixes, and year suffixes derived from the birth date and recent years.
Only use generated wordlists for systems you are authorized to test.`,
		Example: `  passtool generate --name "John Smith" --birth-date 1990-05-14 --word acme
  passtool generate --field pet=rex --field city=pune --output wordlist.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "full name")
	cmd.Flags().StringVar(&opts.birthDate, "birth-date", "", "birth date containing a four-digit year")
	cmd.Flags().StringArrayVar(&opts.fields, "field", nil, "additional personal information as key=value (repeatable)")
	cmd.Flags().StringSliceVar(&opts.words, "word", nil, "custom seed words (repeatable or comma-separated)")
	cmd.Flags().StringVar(&opts.wordsFile, "words-file", "", "file with one custom word per line")
	cmd.Flags().BoolVar(&opts.noLeet, "no-leet", false, "disable leetspeak variants")
	cmd.Flags().BoolVar(&opts.noCase, "no-case", false, "disable case variations")
	cmd.Flags().BoolVar(&opts.noYears, "no-years", false, "disable year suffixes")
	cmd.Flags().BoolVar(&opts.noAffixes, "no-affixes", false, "disable prefixes and suffixes")
	cmd.Flags().StringVar(&opts.maxWords, "max-words", "", "maximum number of words (default from config, 10000)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the wordlist to this file")
	cmd.Flags().IntVar(&opts.preview, "preview", -1, "number of words to preview (default from config)")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "hide the progress bar")
	cmd.Flags().BoolVar(&opts.allowDefaults, "allow-defaults", false, "use built-in seeds when no input is given")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	personal, err := personalData(opts)
	if err != nil {
		return err
	}

	custom := opts.words
	if opts.wordsFile != "" {
		fileWords, err := readWordsFile(config.ExpandPath(opts.wordsFile))
		if err != nil {
			return common.NewUserError("Could not read --words-file", err)
		}
		custom = append(custom, fileWords...)
	}

	if !hasSeedInput(personal, custom) && !opts.allowDefaults {
		return common.NewUserError(noSeedMessage, common.ErrNoSeedInput)
	}

	maxWords := cfg.Generate.MaxWords
	if cmd.Flags().Changed("max-words") {
		maxWords = config.ParseWordLimit(opts.maxWords, wordlist.DefaultMaxWords)
	}
	preview := cfg.Generate.Preview
	if opts.preview >= 0 {
		preview = opts.preview
	}

	var genOpts []wordlist.Option
	if !opts.noProgress {
		progress := cli.NewGenerationProgress(cmd.ErrOrStderr())
		genOpts = append(genOpts, wordlist.WithProgress(progress.Func()))
	}
	gen := wordlist.NewGenerator(genOpts...)

	gen.Generate(personal, custom, generateFlags(cfg.Generate.Flags(), opts), maxWords)
	snap := gen.Store().Snapshot()
	slog.Info("Generated wordlist", "id", snap.ID, "words", len(snap.Words), "max_words", maxWords)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.RenderWordlistStats(gen.Store().Stats()))
	if p := cli.RenderPreview(gen.Store().Words(), preview); p != "" {
		fmt.Fprintln(out, p)
	}

	if opts.output == "" {
		return nil
	}
	path := config.ExpandPath(opts.output)
	if !gen.Store().Save(path) {
		return common.NewUserError(fmt.Sprintf("Could not save wordlist to %s", path), common.ErrExportFailed)
	}
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Saved %d words to %s (snapshot %s)", len(snap.Words), path, snap.ID)))
	return nil
}

// personalData collects the personal information flags into the generator's
// key/value form.
func personalData(opts generateOptions) (map[string]string, error) {
	data := make(map[string]string)
	for _, field := range opts.fields {
		key, value, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, common.NewUserError(fmt.Sprintf("Invalid --field %q, expected key=value", field), nil)
		}
		data[key] = value
	}
	if opts.name != "" {
		data["name"] = opts.name
	}
	if opts.birthDate != "" {
		data["birth_date"] = opts.birthDate
	}
	return data, nil
}

func hasSeedInput(personal map[string]string, custom []string) bool {
	for _, v := range personal {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	for _, w := range custom {
		if strings.TrimSpace(w) != "" {
			return true
		}
	}
	return false
}

func generateFlags(base wordlist.Flags, opts generateOptions) wordlist.Flags {
	if opts.noLeet {
		base.Leetspeak = false
	}
	if opts.noCase {
		base.CaseVariations = false
	}
	if opts.noYears {
		base.Years = false
	}
	if opts.noAffixes {
		base.PrefixesSuffixes = false
	}
	return base
}
