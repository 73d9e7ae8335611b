// Package resolver turns a parsed field specification into the concrete field
// numbers present on one line.
//
// Resolution clamps instead of failing: descriptors that fall beyond the
// line's field count contribute nothing, and closed ranges are cut short at
// the last field. Specification order and duplicates are kept.
package resolver
