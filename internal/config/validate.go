package config

import (
	"errors"
	"fmt"

	"fieldcut/internal/fieldspec"
	"fieldcut/internal/linesource"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCut(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCut() error {
	if c.Cut.Delimiter == "" {
		return errors.New("cut.delimiter must not be empty")
	}
	if _, err := linesource.CanonicalEncoding(c.Cut.Encoding); err != nil {
		return fmt.Errorf("cut.encoding: %w", err)
	}
	if c.Cut.Fields != "" {
		if _, err := fieldspec.Parse(c.Cut.Fields); err != nil {
			return fmt.Errorf("cut.fields: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
