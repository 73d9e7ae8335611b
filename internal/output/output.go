package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("output locked by another process")

// Sink is a buffered destination. Close must be called to flush.
type Sink struct {
	name   string
	buf    *bufio.Writer
	file   *os.File
	lock   *flock.Flock
	closed bool
}

// Open returns a Sink writing to path. An empty path or "-" writes to stdout.
// For files, "<path>.lock" is locked before the file is truncated.
func Open(path string, stdout io.Writer) (*Sink, error) {
	if path == "" || path == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return &Sink{name: "-", buf: bufio.NewWriter(stdout)}, nil
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &Sink{name: path, buf: bufio.NewWriter(file), file: file, lock: lock}, nil
}

// Name returns the output path, or "-" for stdout.
func (s *Sink) Name() string { return s.name }

func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	return s.buf.Write(p)
}

// Close flushes buffered output, closes the file and releases the lock.
// The lock file itself is left in place so every run locks the same inode.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if err := s.buf.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush output: %w", err))
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close output: %w", err))
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release output lock: %w", err))
		}
	}
	return errors.Join(errs...)
}
