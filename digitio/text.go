package digitio

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/calebcase/oops"
)

// MaxLineSize bounds a single text line.
const MaxLineSize = 64 << 20

type textReader struct {
	s      *bufio.Scanner
	schema Schema

	line   int
	digits []uint64

	err error
}

func newTextReader(r io.Reader, schema Schema) *textReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &textReader{
		s:      s,
		schema: schema,
	}
}

func (tr *textReader) Next() (ok bool) {
	if tr.err != nil {
		return false
	}

	for tr.s.Scan() {
		tr.line++

		text := strings.TrimSpace(tr.s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		tr.digits, tr.err = ParseText(text, tr.schema.Bits)
		if tr.err != nil {
			var se *SyntaxError
			if errors.As(tr.err, &se) {
				se.Line = tr.line
			}

			return false
		}

		return true
	}

	if err := tr.s.Err(); err != nil {
		tr.err = Error.Wrap(oops.Trace(err))
	}

	return false
}

func (tr *textReader) Digits() []uint64 {
	ds := make([]uint64, len(tr.digits))
	copy(ds, tr.digits)

	return ds
}

func (tr *textReader) Line() int {
	return tr.line
}

func (tr *textReader) Err() (err error) {
	return tr.err
}

// ParseText parses a single sequence line. Digits must fit in bits bits (zero
// means DefaultBits). The returned SyntaxError has no line number.
func ParseText(text string, bits uint) (ds []uint64, err error) {
	if bits == 0 || bits > 64 {
		bits = DefaultBits
	}

	text = strings.TrimSpace(text)

	if text == "-" {
		return []uint64{}, nil
	}

	body := strings.TrimSuffix(text, ",")
	if body == "" {
		return nil, Error.Wrap(&SyntaxError{Text: text})
	}

	fields := strings.Split(body, ",")
	ds = make([]uint64, 0, len(fields))

	for _, field := range fields {
		field = strings.TrimSpace(field)

		u, err := strconv.ParseUint(field, 10, int(bits))
		if err != nil {
			return nil, Error.Wrap(&SyntaxError{
				Text: field,
				Err:  err,
			})
		}

		ds = append(ds, u)
	}

	return ds, nil
}

// FormatText returns the text form of a sequence: every digit followed by a
// comma, or "-" for the empty sequence.
func FormatText(ds []uint64) string {
	if len(ds) == 0 {
		return "-"
	}

	var sb strings.Builder

	for _, d := range ds {
		sb.WriteString(strconv.FormatUint(d, 10))
		sb.WriteByte(',')
	}

	return sb.String()
}
