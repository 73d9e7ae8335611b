package cutter_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"fieldcut/internal/cutter"
	"fieldcut/internal/fieldspec"
	"fieldcut/internal/linesource"
	"fieldcut/internal/logging"
)

func newCutter(t *testing.T, spec string, opts cutter.Options) *cutter.Cutter {
	t.Helper()
	c, err := cutter.New(fieldspec.MustParse(spec), opts, nil)
	if err != nil {
		t.Fatalf("cutter.New: %v", err)
	}
	return c
}

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		delim string
		line  string
		want  string
	}{
		{name: "tab", spec: "1-3,5", delim: "\t", line: "foo\tbar\tbaz\tbuzz\tfuzz\twaz", want: "foo\tbar\tbaz\tfuzz"},
		{name: "comma", spec: "1-3,5", delim: ",", line: "foo,bar,baz,buzz,fuzz,waz", want: "foo,bar,baz,fuzz"},
		{name: "short line clamps", spec: "2-9", delim: ",", line: "a,b,c", want: "b,c"},
		{name: "nothing selected", spec: "7", delim: ",", line: "a,b,c", want: ""},
		{name: "order and duplicates", spec: "3,1-3", delim: ",", line: "a,b,c", want: "c,a,b,c"},
		{name: "open range", spec: "2-", delim: "|", line: "a|b|c|d", want: "b|c|d"},
		{name: "no delimiter keeps line as field one", spec: "1", delim: ",", line: "whole line", want: "whole line"},
		{name: "empty fields kept", spec: "1-3", delim: ",", line: "a,,c", want: "a,,c"},
		{name: "multi-character delimiter", spec: "2", delim: "::", line: "a::b::c", want: "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCutter(t, tt.spec, cutter.Options{Delimiter: tt.delim})
			got, ok := c.Line(tt.line)
			if !ok {
				t.Fatal("line unexpectedly suppressed")
			}
			if got != tt.want {
				t.Fatalf("Line(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestLineOnlyDelimited(t *testing.T) {
	c := newCutter(t, "1", cutter.Options{Delimiter: "\t", OnlyDelimited: true})
	if _, ok := c.Line("abc"); ok {
		t.Fatal("expected line without delimiter to be suppressed")
	}
	if got, ok := c.Line("x\ty"); !ok || got != "x" {
		t.Fatalf("Line = %q, %v", got, ok)
	}
}

func TestNewRejectsEmptyDelimiter(t *testing.T) {
	_, err := cutter.New(fieldspec.MustParse("1"), cutter.Options{}, nil)
	if !errors.Is(err, cutter.ErrEmptyDelimiter) {
		t.Fatalf("expected ErrEmptyDelimiter, got %v", err)
	}
}

func TestRunWritesEveryLine(t *testing.T) {
	src, err := linesource.New("-", strings.NewReader("a,b,c\n\nd,e\nf\n"), "")
	if err != nil {
		t.Fatalf("linesource.New: %v", err)
	}
	c := newCutter(t, "2", cutter.Options{Delimiter: ","})

	var out bytes.Buffer
	stats, err := c.Run(context.Background(), src.Lines(), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "b\n\ne\n\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if stats != (cutter.Stats{Lines: 4, Written: 4}) {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunSkipsDecodeErrors(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &logs})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	src, err := linesource.New("-", strings.NewReader("a\tb\n\xff\tbad\nc\td\n"), "")
	if err != nil {
		t.Fatalf("linesource.New: %v", err)
	}
	c, err := cutter.New(fieldspec.MustParse("2"), cutter.Options{Delimiter: "\t"}, logger)
	if err != nil {
		t.Fatalf("cutter.New: %v", err)
	}

	var out bytes.Buffer
	stats, err := c.Run(context.Background(), src.Lines(), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := out.String(), "b\nd\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if stats.DecodeErrors != 1 || stats.Lines != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if !strings.Contains(logs.String(), "skipping undecodable line") || !strings.Contains(logs.String(), "line=2") {
		t.Fatalf("expected decode warning in logs, got %q", logs.String())
	}
}

func TestRunSuppressesUndelimitedLines(t *testing.T) {
	src, err := linesource.New("-", strings.NewReader("abc\nx\ty\n"), "")
	if err != nil {
		t.Fatalf("linesource.New: %v", err)
	}
	c := newCutter(t, "1", cutter.Options{Delimiter: "\t", OnlyDelimited: true})

	var out bytes.Buffer
	stats, err := c.Run(context.Background(), src.Lines(), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "x\n" {
		t.Fatalf("output = %q", out.String())
	}
	if stats.Suppressed != 1 || stats.Written != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func seq(items ...any) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, item := range items {
			var ok bool
			switch v := item.(type) {
			case string:
				ok = yield(v, nil)
			case error:
				ok = yield("", v)
			}
			if !ok {
				return
			}
		}
	}
}

func TestRunStopsOnReadError(t *testing.T) {
	readErr := errors.New("disk gone")
	c := newCutter(t, "1", cutter.Options{Delimiter: ","})

	var out bytes.Buffer
	stats, err := c.Run(context.Background(), seq("a,b", readErr, "never"), &out)
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if out.String() != "a\n" || stats.Written != 1 {
		t.Fatalf("output = %q stats = %+v", out.String(), stats)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("no space left") }

func TestRunReturnsWriteError(t *testing.T) {
	c := newCutter(t, "1", cutter.Options{Delimiter: ","})
	_, err := c.Run(context.Background(), seq("a"), failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "write output") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newCutter(t, "1", cutter.Options{Delimiter: ","})

	var out bytes.Buffer
	_, err := c.Run(ctx, seq("a", "b"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output after cancellation, got %q", out.String())
	}
}
