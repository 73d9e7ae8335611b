package linesource

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used when no encoding name is given.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding reports an encoding name missing from the WHATWG index.
var ErrUnknownEncoding = errors.New("unknown encoding")

// CanonicalEncoding returns the WHATWG name for an encoding label, for
// example "latin1" becomes "windows-1252".
func CanonicalEncoding(label string) (string, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return "", err
	}
	return htmlindex.Name(enc)
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}
