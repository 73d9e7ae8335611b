package fieldspec

import (
	"strconv"
	"strings"
)

// Kind identifies the shape of a Descriptor.
type Kind string

const (
	KindSingle      Kind = "single"
	KindOpenRange   Kind = "open_range"
	KindClosedRange Kind = "closed_range"
)

// Descriptor is one comma-separated part of a field specification.
// The set of implementations is closed: Single, OpenRange and ClosedRange.
type Descriptor interface {
	Kind() Kind
	String() string
	descriptor()
}

// Single selects exactly field N.
type Single struct {
	N int
}

// OpenRange selects Start through the last field of the line.
type OpenRange struct {
	Start int
}

// ClosedRange selects Start through Stop inclusive. Start > Stop is kept as
// written and selects nothing.
type ClosedRange struct {
	Start int
	Stop  int
}

func (Single) Kind() Kind      { return KindSingle }
func (OpenRange) Kind() Kind   { return KindOpenRange }
func (ClosedRange) Kind() Kind { return KindClosedRange }

func (d Single) String() string    { return strconv.Itoa(d.N) }
func (d OpenRange) String() string { return strconv.Itoa(d.Start) + "-" }
func (d ClosedRange) String() string {
	return strconv.Itoa(d.Start) + "-" + strconv.Itoa(d.Stop)
}

func (Single) descriptor()      {}
func (OpenRange) descriptor()   {}
func (ClosedRange) descriptor() {}

// Specification is an ordered list of descriptors in the order the user
// wrote them.
type Specification []Descriptor

// String renders the canonical comma-separated form.
func (s Specification) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
