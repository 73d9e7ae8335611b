package cutter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"fieldcut/internal/fields"
	"fieldcut/internal/fieldspec"
	"fieldcut/internal/linesource"
	"fieldcut/internal/logging"
	"fieldcut/internal/resolver"
)

// ErrEmptyDelimiter is returned by New when no delimiter is configured.
var ErrEmptyDelimiter = errors.New("delimiter must not be empty")

// Options tune per-line behavior.
type Options struct {
	Delimiter string
	// OnlyDelimited drops lines that contain no delimiter.
	OnlyDelimited bool
}

// Stats summarizes one Run.
type Stats struct {
	Lines        int
	Written      int
	Suppressed   int
	DecodeErrors int
}

// Cutter is safe for concurrent use; it holds no per-line state.
type Cutter struct {
	spec   fieldspec.Specification
	opts   Options
	logger *slog.Logger
}

// New builds a Cutter for spec. A nil logger discards log output.
func New(spec fieldspec.Specification, opts Options, logger *slog.Logger) (*Cutter, error) {
	if opts.Delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	return &Cutter{
		spec:   spec,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "cutter"),
	}, nil
}

// Line returns the selected fields of line joined by the delimiter. The
// boolean is false when the line is suppressed by OnlyDelimited.
func (c *Cutter) Line(line string) (string, bool) {
	if c.opts.OnlyDelimited && !strings.Contains(line, c.opts.Delimiter) {
		return "", false
	}
	parts := fields.Split(line, c.opts.Delimiter)
	indexes := resolver.Indexes(c.spec, len(parts))
	return fields.Join(fields.Select(parts, indexes), c.opts.Delimiter), true
}

// Run processes lines until the sequence ends, ctx is cancelled, or a fatal
// error occurs. Each emitted line is followed by "\n".
func (c *Cutter) Run(ctx context.Context, lines iter.Seq2[string, error], w io.Writer) (Stats, error) {
	var stats Stats
	for line, err := range lines {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, ctxErr
		}
		if err != nil {
			var derr *linesource.DecodeError
			if errors.As(err, &derr) {
				stats.DecodeErrors++
				logging.WarnWithContext(c.logger, "skipping undecodable line", "line_decode_failed",
					logging.Int(logging.FieldLine, derr.Line),
					logging.Error(derr.Err),
					logging.String(logging.FieldErrorHint, "check --encoding matches the input"),
					logging.String(logging.FieldImpact, "line omitted from output"),
				)
				continue
			}
			return stats, fmt.Errorf("read input: %w", err)
		}

		stats.Lines++
		out, ok := c.Line(line)
		if !ok {
			stats.Suppressed++
			continue
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.Written++
	}

	c.logger.Debug("input processed",
		logging.Int("lines", stats.Lines),
		logging.Int("written", stats.Written),
		logging.Int("suppressed", stats.Suppressed),
		logging.Int("decode_errors", stats.DecodeErrors),
	)
	return stats, nil
}
