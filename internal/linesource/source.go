package linesource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

// ErrInvalidUTF8 is wrapped by DecodeError for lines that are not UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// DecodeError reports a single line that could not be decoded. It never ends
// iteration.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Source yields the lines of one input.
type Source struct {
	name     string
	encoding string
	reader   io.Reader
	closer   io.Closer
}

// Open returns a Source for path. An empty path or "-" reads stdin, which is
// never closed by Source.Close.
func Open(path string, stdin io.Reader, encodingName string) (*Source, error) {
	if path == "" || path == StdinName {
		return New(StdinName, stdin, encodingName)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	src, err := New(path, file, encodingName)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	src.closer = file
	return src, nil
}

// New wraps r, transcoding it to UTF-8 when encodingName names another
// encoding.
func New(name string, r io.Reader, encodingName string) (*Source, error) {
	if r == nil {
		return nil, fmt.Errorf("input %s: nil reader", name)
	}
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, encodingName)
	}
	src := &Source{name: name, encoding: canonical, reader: r}
	if canonical != DefaultEncoding {
		src.reader = transform.NewReader(r, enc.NewDecoder())
	}
	return src, nil
}

// Name returns the input path, or "-" for stdin.
func (s *Source) Name() string { return s.name }

// Encoding returns the canonical name of the input encoding.
func (s *Source) Encoding() string { return s.encoding }

// Close releases the underlying file, if any.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Lines returns a single-use iterator over the input. Line terminators ("\n"
// or "\r\n") are stripped; a "\r" ending an unterminated final line is kept.
// Undecodable lines yield an empty string with a *DecodeError; a read failure
// yields one final error.
func (s *Source) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(s.reader)
		lineNo := 0
		for {
			raw, err := br.ReadString('\n')
			if raw != "" {
				lineNo++
				text := raw
				if strings.HasSuffix(text, "\n") {
					text = strings.TrimSuffix(text[:len(text)-1], "\r")
				}
				var lineErr error
				if !utf8.ValidString(text) {
					text, lineErr = "", &DecodeError{Line: lineNo, Err: ErrInvalidUTF8}
				}
				if !yield(text, lineErr) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", fmt.Errorf("read %s: %w", s.name, err))
				}
				return
			}
		}
	}
}
