// Package output owns the destination of cut results: standard output or a
// file guarded by an advisory lock so concurrent runs cannot interleave.
package output
