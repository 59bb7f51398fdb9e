package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/passtool/internal/common"
	"github.com/google/uuid"
)

// Snapshot is one generated candidate wordlist.
type Snapshot struct {
	GeneratedAt time.Time
	Words       []string
	SeedCount   int
	ID          uuid.UUID
}

// Stats describes a snapshot.
type Stats struct {
	TotalWords    int     `json:"total_words"`
	SeedWords     int     `json:"base_words"`
	AverageLength float64 `json:"average_length"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	SnapshotID    string  `json:"snapshot_id"`
}

// Store holds the most recently generated snapshot.
type Store struct {
	snapshot Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot. The previous one is discarded.
func (s *Store) Replace(snap Snapshot) {
	s.snapshot = snap
}

// Snapshot returns the current snapshot. Words must not be modified.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// Words returns a copy of the current candidate words.
func (s *Store) Words() []string {
	return slices.Clone(s.snapshot.Words)
}

// Stats computes length statistics over the current snapshot, or zeroed
// stats when nothing has been generated.
func (s *Store) Stats() Stats {
	words := s.snapshot.Words
	if len(words) == 0 {
		return Stats{}
	}

	stats := Stats{
		TotalWords: len(words),
		SeedWords:  s.snapshot.SeedCount,
		MinLength:  utf8.RuneCountInString(words[0]),
		SnapshotID: s.snapshot.ID.String(),
	}
	total := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		total += n
		stats.MinLength = min(stats.MinLength, n)
		stats.MaxLength = max(stats.MaxLength, n)
	}
	stats.AverageLength = float64(total) / float64(len(words))
	return stats
}

// Save writes the current snapshot to path, one word per line, sorted. It
// returns false on any I/O failure.
func (s *Store) Save(path string) bool {
	if err := SaveWords(path, s.snapshot.Words); err != nil {
		common.LogError(err, "Error saving wordlist", common.Fields{"path": path})
		return false
	}
	common.LogInfo("Saved wordlist", common.Fields{
		"path":  path,
		"words": len(s.snapshot.Words),
		"id":    s.snapshot.ID.String(),
	})
	return true
}

// SaveWords writes words to path, sorted, one per line.
func SaveWords(path string, words []string) (err error) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", common.ErrExportFailed, closeErr)
		}
	}()

	if err := WriteWords(f, words); err != nil {
		return fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}
	return nil
}

// WriteWords writes a sorted copy of words to w, one per line.
func WriteWords(w io.Writer, words []string) error {
	sorted := slices.Clone(words)
	slices.Sort(sorted)

	bw := bufio.NewWriter(w)
	for _, word := range sorted {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
