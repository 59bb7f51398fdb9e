package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader provides context-aware line reading that can be interrupted.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads one line without its line terminator, respecting context
// cancellation. Surrounding spaces are kept since they may be part of a
// password. A final line without a newline is returned with a nil error.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && value != "" {
			err = nil
		}
		resultCh <- result{value: strings.TrimRight(value, "\r\n"), err: err}
	}()

	// The read goroutine outlives a canceled context until input arrives.
	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ReadPassword prompts on out and reads a password from in. Terminal input
// is read without echo.
func ReadPassword(ctx context.Context, in io.Reader, out io.Writer, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(out, FormatPrompt(prompt)); err != nil {
			return "", err
		}
	}

	if !IsTerminal(in) {
		return NewNonBlockingReader(in).ReadLine(ctx)
	}

	f := in.(*os.File) //nolint:forcetypeassert // IsTerminal checked the type
	type result struct {
		err   error
		value []byte
	}
	resultCh := make(chan result, 1)
	go func() {
		value, err := term.ReadPassword(int(f.Fd()))
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		_, _ = io.WriteString(out, "\n")
		return string(res.value), res.err
	}
}
