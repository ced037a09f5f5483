package digitio

import (
	"errors"
	"io"

	"github.com/calebcase/oops"
	"github.com/tinylib/msgp/msgp"
)

// MaxDigits bounds the digit count of a single msgpack or bsv sequence.
const MaxDigits = 1 << 24

type msgpReader struct {
	r      *msgp.Reader
	schema Schema

	line   int
	digits []uint64

	err error
}

func newMsgpReader(r io.Reader, schema Schema) *msgpReader {
	return &msgpReader{
		r:      msgp.NewReader(r),
		schema: schema,
	}
}

func (mr *msgpReader) Next() (ok bool) {
	if mr.err != nil {
		return false
	}

	t, err := mr.r.NextType()
	if errors.Is(err, io.EOF) {
		return false
	}
	if err != nil {
		mr.err = Error.Wrap(oops.Trace(err))
		return false
	}

	mr.line++

	if t != msgp.ArrayType {
		mr.err = Error.Wrap(&SyntaxError{
			Line: mr.line,
			Text: t.String(),
			Err:  Error.New("expected array"),
		})
		return false
	}

	n, err := mr.r.ReadArrayHeader()
	if err != nil {
		mr.err = Error.Wrap(oops.Trace(err))
		return false
	}

	if n > MaxDigits {
		mr.err = Error.Wrap(&SyntaxError{
			Line: mr.line,
			Text: "array",
			Err:  Error.New("too many digits: %d", n),
		})
		return false
	}

	mr.digits = make([]uint64, 0, min(n, 1024))

	for i := uint32(0); i < n; i++ {
		u, err := mr.r.ReadUint64()
		if err != nil {
			mr.err = Error.Wrap(&SyntaxError{
				Line: mr.line,
				Text: "digit",
				Err:  err,
			})
			return false
		}

		if !mr.schema.fits(u) {
			mr.err = Error.Wrap(&SyntaxError{
				Line: mr.line,
				Text: "digit",
				Err:  Error.New("value %d exceeds %d bits", u, mr.schema.Bits),
			})
			return false
		}

		mr.digits = append(mr.digits, u)
	}

	return true
}

func (mr *msgpReader) Digits() []uint64 {
	ds := make([]uint64, len(mr.digits))
	copy(ds, mr.digits)

	return ds
}

func (mr *msgpReader) Line() int {
	return mr.line
}

func (mr *msgpReader) Err() (err error) {
	return mr.err
}

// AppendMsg appends the msgpack form of a sequence to b.
func AppendMsg(b []byte, ds []uint64) []byte {
	b = msgp.AppendArrayHeader(b, uint32(len(ds)))
	for _, d := range ds {
		b = msgp.AppendUint64(b, d)
	}

	return b
}
