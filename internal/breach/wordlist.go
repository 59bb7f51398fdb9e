// Package breach holds the set of known-compromised passwords used for
// direct-match detection.
package breach

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/passtool/internal/common"
)

// LoadResult reports the outcome of loading a breach wordlist.
type LoadResult struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Loaded bool   `json:"loaded"`
}

// Wordlist is an immutable, case-insensitive set of breached passwords.
type Wordlist struct {
	entries map[string]struct{}
	path    string
	loaded  bool
}

// Empty returns a wordlist that was never loaded.
func Empty() *Wordlist {
	return &Wordlist{entries: map[string]struct{}{}}
}

// Open reads the wordlist at path. Failures wrap common.ErrWordlistUnavailable.
func Open(path string) (*Wordlist, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from local configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrWordlistUnavailable, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Debug("failed to close breach wordlist", "path", path, "error", closeErr)
		}
	}()

	w, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrWordlistUnavailable, err)
	}
	w.path = path
	return w, nil
}

// Load reads the wordlist at path. A missing or unreadable file is not an
// error: the returned wordlist reports Loaded() == false and callers fall
// back to pattern-only detection.
func Load(path string) *Wordlist {
	w, err := Open(path)
	if err != nil {
		common.LogWarn("Breach wordlist not available, using basic patterns only", common.Fields{
			"path":  path,
			"error": err.Error(),
		})
		w = Empty()
		w.path = path
		return w
	}

	slog.Info("Loaded breach wordlist", "path", path, "size", w.Size())
	return w
}

// FromReader builds a loaded wordlist from r. Blank lines and lines starting
// with '#' are skipped; entries are stored lowercase.
func FromReader(r io.Reader) (*Wordlist, error) {
	entries := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	return &Wordlist{
		entries: entries,
		loaded:  true,
	}, nil
}

// Contains reports whether password appears in the wordlist, ignoring case.
func (w *Wordlist) Contains(password string) bool {
	if w == nil {
		return false
	}
	_, ok := w.entries[strings.ToLower(password)]
	return ok
}

// Loaded reports whether the wordlist source was read successfully.
func (w *Wordlist) Loaded() bool {
	return w != nil && w.loaded
}

// Size returns the number of unique entries.
func (w *Wordlist) Size() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Status returns the load outcome.
func (w *Wordlist) Status() LoadResult {
	if w == nil {
		return LoadResult{}
	}
	return LoadResult{
		Path:   w.path,
		Size:   w.Size(),
		Loaded: w.loaded,
	}
}
