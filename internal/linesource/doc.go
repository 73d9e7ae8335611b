// Package linesource reads text lines from a file or standard input.
//
// Input may be in any encoding known to the WHATWG index in golang.org/x/text;
// non-UTF-8 input is transcoded as it is read. Lines are produced lazily
// through an iterator. A line that is not valid UTF-8 surfaces as a
// *DecodeError for that line only, so callers can report it and keep going,
// while any other read failure ends the sequence.
package linesource
