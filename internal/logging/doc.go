// Package logging assembles the structured slog loggers used by fieldcut.
//
// It owns the console and JSON handlers, maps configured level names onto
// slog levels, and provides helpers for the standard attribute keys (run id,
// component, line number) so every component logs with the same shape. Log
// output goes to stderr by default because stdout carries cut results.
//
// A no-op logger is available for tests and wiring code that cannot fail.
package logging
