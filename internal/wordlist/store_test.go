package wordlist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/passtool/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Stats(t *testing.T) {
	s := NewStore()
	assert.Equal(t, Stats{}, s.Stats())

	s.Replace(Snapshot{Words: []string{"abc", "abcdef", "abcd"}, SeedCount: 2})
	stats := s.Stats()
	assert.Equal(t, 3, stats.TotalWords)
	assert.Equal(t, 2, stats.SeedWords)
	assert.Equal(t, 3, stats.MinLength)
	assert.Equal(t, 6, stats.MaxLength)
	assert.InDelta(t, 13.0/3.0, stats.AverageLength, 1e-9)
}

func TestStore_StatsFromGenerator(t *testing.T) {
	g := NewGenerator(WithClock(fixedClock))
	words := g.Generate(map[string]string{"name": "John Smith"}, nil, AllFlags(), 500)

	stats := g.Store().Stats()
	assert.Equal(t, len(words), stats.TotalWords)
	assert.Equal(t, 3, stats.SeedWords)
	assert.LessOrEqual(t, stats.MinLength, stats.MaxLength)
	assert.GreaterOrEqual(t, stats.AverageLength, float64(stats.MinLength))
	assert.LessOrEqual(t, stats.AverageLength, float64(stats.MaxLength))
	assert.Equal(t, g.Store().Snapshot().ID.String(), stats.SnapshotID)
	assert.NotEqual(t, uuid.Nil.String(), stats.SnapshotID)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	g := NewGenerator(WithClock(fixedClock))
	words := g.Generate(map[string]string{"name": "John Smith", "birth_date": "1990-05-15"}, []string{"admin"}, AllFlags(), 2000)

	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.True(t, g.Store().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Equal(t, words, lines)
}

func TestStore_SaveSortsUnsortedSnapshot(t *testing.T) {
	s := NewStore()
	s.Replace(Snapshot{Words: []string{"zeta", "alpha", "Mu"}})

	path := filepath.Join(t.TempDir(), "out.txt")
	require.True(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mu\nalpha\nzeta\n", string(data))
	assert.Equal(t, []string{"zeta", "alpha", "Mu"}, s.Words(), "saving does not reorder the snapshot")
}

func TestStore_SaveFailure(t *testing.T) {
	s := NewStore()
	s.Replace(Snapshot{Words: []string{"a"}})

	assert.False(t, s.Save(filepath.Join(t.TempDir(), "missing", "dir", "out.txt")))
	assert.False(t, s.Save(t.TempDir()))
}

func TestSaveWords_Error(t *testing.T) {
	err := SaveWords(filepath.Join(t.TempDir(), "nope", "out.txt"), []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExportFailed)
}

func TestSaveWords_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, SaveWords(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteWords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, []string{"b", "a", "c"}))
	assert.Equal(t, "a\nb\nc\n", buf.String())

	assert.Error(t, WriteWords(failingWriter{}, []string{"a"}))
}
