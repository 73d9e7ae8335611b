// Package fields splits lines on a literal delimiter and joins selected fields
// back together.
package fields
