package breach

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/passtool/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantSize   int
		contains   []string
		notContain []string
	}{
		{
			name:     "basic entries",
			content:  "123456\npassword\nPassword@123\n",
			wantSize: 3,
			contains: []string{"123456", "PASSWORD", "password@123", "PASSWORD@123"},
		},
		{
			name:       "comments and blank lines skipped",
			content:    "# header\n\n  \nadmin\n#not-a-password\n",
			wantSize:   1,
			contains:   []string{"admin"},
			notContain: []string{"#not-a-password", "# header", ""},
		},
		{
			name:     "duplicates collapse case-insensitively",
			content:  "Mumbai@123\nmumbai@123\nMUMBAI@123\n",
			wantSize: 1,
			contains: []string{"mumbai@123"},
		},
		{
			name:     "surrounding whitespace trimmed",
			content:  "  welcome  \r\n",
			wantSize: 1,
			contains: []string{"welcome"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWordlist(t, tt.content)
			w := Load(path)

			require.True(t, w.Loaded())
			assert.Equal(t, tt.wantSize, w.Size())
			for _, pw := range tt.contains {
				assert.True(t, w.Contains(pw), "expected %q to be present", pw)
			}
			for _, pw := range tt.notContain {
				assert.False(t, w.Contains(pw), "expected %q to be absent", pw)
			}

			status := w.Status()
			assert.True(t, status.Loaded)
			assert.Equal(t, tt.wantSize, status.Size)
			assert.Equal(t, path, status.Path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	w := Load(path)

	require.NotNil(t, w)
	assert.False(t, w.Loaded())
	assert.Equal(t, 0, w.Size())
	assert.False(t, w.Contains("123456"))
	assert.Equal(t, LoadResult{Path: path}, w.Status())
}

func TestLoad_Directory(t *testing.T) {
	w := Load(t.TempDir())

	assert.False(t, w.Loaded())
	assert.Equal(t, 0, w.Size())
}

func TestOpen(t *testing.T) {
	path := writeWordlist(t, "India@123\n")
	w, err := Open(path)
	require.NoError(t, err)
	assert.True(t, w.Contains("india@123"))
	assert.Equal(t, path, w.Status().Path)

	_, err = Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrWordlistUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestFromReader(t *testing.T) {
	w, err := FromReader(strings.NewReader("qwerty\nletmein\n"))
	require.NoError(t, err)
	assert.True(t, w.Loaded())
	assert.Equal(t, 2, w.Size())
	assert.True(t, w.Contains("QWERTY"))

	_, err = FromReader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read wordlist")
}

func TestNilAndEmpty(t *testing.T) {
	var w *Wordlist
	assert.False(t, w.Loaded())
	assert.False(t, w.Contains("anything"))
	assert.Equal(t, 0, w.Size())
	assert.Equal(t, LoadResult{}, w.Status())

	e := Empty()
	assert.False(t, e.Loaded())
	assert.Equal(t, 0, e.Size())
}
