package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"fieldcut/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a default config and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFields sets the default field specification.
func WithFields(spec string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cut.Fields = spec
	}
}

// WithDelimiter overrides the delimiter.
func WithDelimiter(delim string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cut.Delimiter = delim
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WriteConfig encodes cfg as TOML into a fresh file and returns its path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fieldcut.toml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create config: %v", err)
	}
	defer f.Close()
	if err := cfg.Encode(f); err != nil {
		t.Fatalf("encode config: %v", err)
	}
	return path
}
