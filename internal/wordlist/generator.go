// Package wordlist expands personal information into candidate passwords
// through case, leetspeak, affix and year transformations.
package wordlist

import (
	"log/slog"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxWords is the word limit used when the caller supplies none.
const DefaultMaxWords = 10000

// birthDateField is the personal data key holding a birth date.
const birthDateField = "birth_date"

// Flags toggles the transformation stages.
type Flags struct {
	Leetspeak        bool `json:"leetspeak"`
	CaseVariations   bool `json:"case_variations"`
	Years            bool `json:"years"`
	PrefixesSuffixes bool `json:"prefixes_suffixes"`
}

// AllFlags enables every transformation.
func AllFlags() Flags {
	return Flags{
		Leetspeak:        true,
		CaseVariations:   true,
		Years:            true,
		PrefixesSuffixes: true,
	}
}

// ProgressFunc is called after each seed has been expanded.
type ProgressFunc func(done, total int)

// Generator builds candidate wordlists. It owns the store holding the last
// generated snapshot.
type Generator struct {
	store    *Store
	now      func() time.Time
	progress ProgressFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for the current-year window.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithProgress registers a per-seed progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// NewGenerator creates a generator with an empty store.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		store: NewStore(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Store returns the generator's snapshot store.
func (g *Generator) Store() *Store {
	return g.store
}

// Generate expands the seeds derived from personalData and customWords and
// returns at most maxWords candidates in ascending order. The full candidate
// set is sorted before truncation, so the limit keeps the lexicographically
// smallest entries. The result replaces the store's snapshot.
func (g *Generator) Generate(personalData map[string]string, customWords []string, flags Flags, maxWords int) []string {
	start := g.now()
	seeds := BuildSeeds(personalData, customWords)

	working := make(map[string]struct{})
	add := func(words ...string) {
		for _, w := range words {
			working[w] = struct{}{}
		}
	}

	for i, seed := range seeds {
		add(seed)

		if flags.CaseVariations {
			add(CaseVariations(seed)...)
		}

		if flags.Leetspeak {
			leet := Leetspeak(seed)
			add(leet...)
			if flags.CaseVariations {
				for _, l := range leet {
					add(CaseVariations(l)...)
				}
			}
		}

		if g.progress != nil {
			g.progress(i+1, len(seeds))
		}
	}

	if flags.PrefixesSuffixes {
		for _, w := range keys(working) {
			add(AffixVariations(w)...)
		}
	}

	if flags.Years {
		birthYear, hasBirthYear := ExtractBirthYear(personalData[birthDateField])
		years := GenerateYears(start.Year(), birthYear, hasBirthYear)
		for _, w := range keys(working) {
			for _, y := range years {
				add(w+y, y+w)
			}
		}
	}

	words := keys(working)
	sort.Strings(words)
	total := len(words)
	switch {
	case maxWords <= 0:
		words = []string{}
	case len(words) > maxWords:
		words = words[:maxWords]
	}

	snap := Snapshot{
		ID:          uuid.New(),
		Words:       words,
		SeedCount:   len(seeds),
		GeneratedAt: start,
	}
	g.store.Replace(snap)

	slog.Debug("Generated wordlist",
		"id", snap.ID,
		"seeds", len(seeds),
		"candidates", total,
		"kept", len(words),
		"flags", flags)

	return slices.Clone(words)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
