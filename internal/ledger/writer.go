package ledger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrBusy is returned when another write holds the ledger.
var ErrBusy = errors.New("ledger file is busy")

// Writer owns an append-only ledger handle. Writes are exclusive and fail
// fast with ErrBusy instead of waiting.
type Writer struct {
	mu   sync.Mutex
	path string
	w    io.WriteCloser
}

// Open opens path for appending, creating it if absent.
func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	return &Writer{path: path, w: f}, nil
}

// NewWriter wraps an already-open handle. path is informational.
func NewWriter(path string, w io.WriteCloser) *Writer {
	return &Writer{path: path, w: w}
}

// Path returns the ledger file path.
func (lw *Writer) Path() string { return lw.path }

// Do runs fn with exclusive access to the ledger.
func (lw *Writer) Do(fn func(w io.Writer) error) error {
	if !lw.mu.TryLock() {
		return ErrBusy
	}
	defer lw.mu.Unlock()

	if lw.w == nil {
		return fmt.Errorf("ledger %s: %w", lw.path, os.ErrClosed)
	}
	return fn(lw.w)
}

// Append writes block in a single call.
func (lw *Writer) Append(block string) error {
	return lw.Do(func(w io.Writer) error {
		return WriteBlock(w, block)
	})
}

// Close releases the handle. It waits for an in-flight write.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.w == nil {
		return nil
	}
	err := lw.w.Close()
	lw.w = nil
	if err != nil {
		return fmt.Errorf("closing ledger: %w", err)
	}
	return nil
}

// WriteBlock writes block with one Write call and reports short writes.
func WriteBlock(w io.Writer, block string) error {
	n, err := io.WriteString(w, block)
	if err != nil {
		return fmt.Errorf("appending to ledger: %w", err)
	}
	if n != len(block) {
		return fmt.Errorf("appending to ledger: %w", io.ErrShortWrite)
	}
	return nil
}
