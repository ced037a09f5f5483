package digitio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("digitio")

// ErrSyntax indicates a malformed sequence or a digit that does not fit the
// schema width.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports where a sequence failed to parse. Line is the line
// number for text input and the sequence ordinal for msgpack and bsv input,
// all starting at 1.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: line %d: %q", ErrSyntax, e.Line, e.Text)
	}

	return fmt.Sprintf("%s: line %d: %q: %v", ErrSyntax, e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}

	return []error{ErrSyntax, e.Err}
}

// Format is a sequence encoding.
type Format string

// Formats
const (
	Text Format = "text"
	Msgp Format = "msgp"
	BSV  Format = "bsv"
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Text, Msgp, BSV:
		return f, nil
	}

	return "", Error.New("unknown format %q", name)
}

// DefaultBits is the digit width used when a Schema does not set one.
const DefaultBits = 64

// Schema configures a Reader.
type Schema struct {
	// Format defaults to Text.
	Format Format

	// Bits is the native digit width, 1 to 64. Zero means DefaultBits.
	Bits uint
}

func (s Schema) normalize() (Schema, error) {
	if s.Format == "" {
		s.Format = Text
	}

	if s.Bits == 0 {
		s.Bits = DefaultBits
	}

	if s.Bits > 64 {
		return s, Error.New("invalid digit width: bits=%d", s.Bits)
	}

	f, err := ParseFormat(string(s.Format))
	if err != nil {
		return s, err
	}
	s.Format = f

	return s, nil
}

// fits reports whether u fits in the schema width.
func (s Schema) fits(u uint64) bool {
	return s.Bits >= 64 || u>>s.Bits == 0
}

// Reader iterates over the sequences of an input.
type Reader interface {
	// Next advances to the next sequence. It returns false at the end of
	// the input or on error.
	Next() (ok bool)

	// Digits returns the current sequence, most significant first. The
	// slice is owned by the caller.
	Digits() []uint64

	// Line returns the position of the current sequence.
	Line() int

	// Err returns the first error encountered.
	Err() (err error)
}

// NewReader returns a reader of the schema's format.
func NewReader(r io.Reader, schema Schema) (Reader, error) {
	schema, err := schema.normalize()
	if err != nil {
		return nil, err
	}

	switch schema.Format {
	case Msgp:
		return newMsgpReader(r, schema), nil
	case BSV:
		return newBSVReader(r, schema), nil
	default:
		return newTextReader(r, schema), nil
	}
}
