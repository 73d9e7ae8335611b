// Package cutter applies a parsed field specification to a stream of lines.
//
// For every line the Cutter splits on the delimiter, resolves the
// specification against that line's field count, and writes the selected
// fields joined by the same delimiter. Lines that fail to decode are logged
// and skipped; any other input error stops the run.
package cutter
