package fieldspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSpec is matched by every error returned from Parse.
var ErrInvalidSpec = errors.New("invalid field specification")

// ParseError reports the comma-separated part that failed to parse and,
// when a single number was at fault, the offending token.
type ParseError struct {
	Part  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse '%s': invalid field number '%s'", e.Part, e.Token)
	}
	return fmt.Sprintf("could not parse '%s'", e.Part)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSpec, e.Err}
	}
	return []error{ErrInvalidSpec}
}

// Parse converts a field specification into descriptors. The whole input is
// rejected on the first malformed part.
func Parse(spec string) (Specification, error) {
	parts := strings.Split(spec, ",")
	out := make(Specification, 0, len(parts))
	for _, part := range parts {
		d, err := parsePart(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Specification {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func parsePart(part string) (Descriptor, error) {
	if !strings.Contains(part, "-") {
		n, err := parseNumber(part, part)
		if err != nil {
			return nil, err
		}
		return Single{N: n}, nil
	}

	var tokens []string
	for _, tok := range strings.Split(part, "-") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	switch len(tokens) {
	case 2:
		start, err := parseNumber(part, tokens[0])
		if err != nil {
			return nil, err
		}
		stop, err := parseNumber(part, tokens[1])
		if err != nil {
			return nil, err
		}
		return ClosedRange{Start: start, Stop: stop}, nil
	case 1:
		n, err := parseNumber(part, tokens[0])
		if err != nil {
			return nil, err
		}
		// "N-" is open-ended; "-N" reads as "1-N".
		if strings.HasSuffix(part, "-") {
			return OpenRange{Start: n}, nil
		}
		return ClosedRange{Start: 1, Stop: n}, nil
	default:
		return nil, &ParseError{Part: part}
	}
}

func parseNumber(part, token string) (int, error) {
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, &ParseError{Part: part, Token: token, Err: err}
	}
	return int(n), nil
}
