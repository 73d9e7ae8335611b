// Package config loads, normalizes, and validates fieldcut configuration.
//
// It supplies defaults, reads an optional TOML file from the user's config
// directory or the working directory, and honours environment fallbacks such
// as FIELDCUT_DELIMITER. Command-line flags are applied on top by the caller.
//
// Always obtain settings through this package so downstream code receives
// canonical encodings and log formats and clear validation errors.
package config
