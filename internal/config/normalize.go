package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.applyEnv()
	c.normalizeCut()
	c.normalizeLogging()
}

// applyEnv lets the environment override file values.
func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv("FIELDCUT_DELIMITER"); ok && value != "" {
		c.Cut.Delimiter = value
	}
	if value, ok := os.LookupEnv("FIELDCUT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
}

// Delimiter whitespace is significant and never trimmed.
func (c *Config) normalizeCut() {
	c.Cut.Fields = strings.TrimSpace(c.Cut.Fields)
	c.Cut.Encoding = strings.ToLower(strings.TrimSpace(c.Cut.Encoding))
	if c.Cut.Encoding == "" {
		c.Cut.Encoding = defaultEncoding
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
