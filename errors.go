package investments

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is matched by every error raised while decoding the document:
	// wrong shape, unknown or missing field, malformed value.
	ErrSyntax = errors.New("malformed configuration")
	// ErrInvalid is matched by every error raised when individually valid
	// values are inconsistent with each other.
	ErrInvalid = errors.New("invalid configuration")
)

// ParseError reports a raw value that could not be read into its type.
type ParseError struct {
	What     string   // kind of value: "weight", "tax payment day", ...
	Raw      string   // offending raw text
	Line     int      // line in the document, 0 if unknown
	Accepted []string // accepted tokens, if the value is an enumeration
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if len(e.Accepted) > 0 {
		quoted := make([]string, len(e.Accepted))
		for i, a := range e.Accepted {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		fmt.Fprintf(&b, "unknown %s variant %q, expected one of %s", e.What, e.Raw, strings.Join(quoted, ", "))
		return b.String()
	}
	fmt.Fprintf(&b, "invalid %s: %q", e.What, e.Raw)
	return b.String()
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// at returns a copy of e located at line.
func (e *ParseError) at(line int) *ParseError {
	c := *e
	c.Line = line
	return &c
}

// ValidationError reports a violated relation between configuration values.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return ErrInvalid }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
