package main

import (
	"encoding/json"
	"io"
)

// writeJSON writes v as indented JSON. Field specifications are printed
// verbatim, so HTML escaping is off.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
