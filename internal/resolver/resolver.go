package resolver

import "fieldcut/internal/fieldspec"

// Fields returns the 1-based field numbers selected by spec on a line with
// count fields. Every returned number lies in [1, count].
func Fields(spec fieldspec.Specification, count int) []int {
	var out []int
	for _, d := range spec {
		lo, hi, ok := span(d, count)
		if !ok {
			continue
		}
		for n := lo; n <= hi; n++ {
			out = append(out, n)
		}
	}
	return out
}

// Indexes is Fields converted to 0-based slice indexes.
func Indexes(spec fieldspec.Specification, count int) []int {
	fields := Fields(spec, count)
	for i := range fields {
		fields[i]--
	}
	return fields
}

// span reports the inclusive field range a descriptor covers on a line with
// max fields, or ok=false when it covers none.
func span(d fieldspec.Descriptor, max int) (lo, hi int, ok bool) {
	switch d := d.(type) {
	case fieldspec.Single:
		if d.N < 1 || d.N > max {
			return 0, 0, false
		}
		return d.N, d.N, true
	case fieldspec.OpenRange:
		return clamp(d.Start, max, max)
	case fieldspec.ClosedRange:
		if d.Start > d.Stop {
			return 0, 0, false
		}
		return clamp(d.Start, d.Stop, max)
	default:
		return 0, 0, false
	}
}

func clamp(start, stop, max int) (int, int, bool) {
	if start > max {
		return 0, 0, false
	}
	lo := start
	if lo < 1 {
		lo = 1
	}
	hi := stop
	if hi > max {
		hi = max
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}
