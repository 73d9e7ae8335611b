// Package fieldspec parses field specifications such as "2-4,8,11-" into an
// ordered list of field descriptors.
//
// A Specification keeps the comma-separated parts exactly as written: order,
// duplicates and overlaps survive parsing. Field numbers are 1-based. The
// package never looks at input data; resolving descriptors against the number
// of fields on a line is the job of the resolver package.
//
// A leading range such as "-3" means fields 1 through 3, as in GNU cut.
package fieldspec
