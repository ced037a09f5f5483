package digitio

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/calebcase/positional/control"
)

// bsvReader reads sequences written by AppendBSV. Each sequence is a bounded
// container holding one data field per digit, or an empty field for the
// empty sequence.
type bsvReader struct {
	d      control.Decoder
	schema Schema

	line   int
	digits []uint64

	err error
}

func newBSVReader(r io.Reader, schema Schema) *bsvReader {
	return &bsvReader{
		d:      control.NewDecoder(r),
		schema: schema,
	}
}

func (br *bsvReader) syntax(text string, err error) bool {
	br.err = Error.Wrap(&SyntaxError{
		Line: br.line,
		Text: text,
		Err:  err,
	})

	return false
}

func (br *bsvReader) Next() (ok bool) {
	if br.err != nil {
		return false
	}

	if !br.d.Next() {
		br.err = br.d.Err()
		return false
	}

	br.line++
	br.digits = []uint64{}

	switch t := br.d.Type(); t {
	case control.Empty:
		return true
	case control.ContainerBounded:
	default:
		return br.syntax(t.Abbr, Error.New("expected bounded container"))
	}

	depth := br.d.Depth()

	err := br.d.Enter()
	if err != nil {
		return br.syntax("cb", err)
	}

	for br.d.Depth() > depth {
		if !br.d.Next() {
			err = br.d.Err()
			if err == nil {
				err = Error.New("unexpected end of input")
			}

			return br.syntax("cb", err)
		}

		if len(br.digits) >= MaxDigits {
			return br.syntax("cb", Error.New("too many digits: %d", len(br.digits)+1))
		}

		t := br.d.Type()
		if !t.IsData() {
			return br.syntax(t.Abbr, Error.New("expected data"))
		}

		data, err := br.d.Data()
		if err != nil {
			return br.syntax(t.Abbr, err)
		}

		u, err := digitOf(data)
		if err != nil {
			return br.syntax(t.Abbr, err)
		}

		if !br.schema.fits(u) {
			return br.syntax("digit", Error.New("value %d exceeds %d bits", u, br.schema.Bits))
		}

		br.digits = append(br.digits, u)
	}

	return true
}

// digitOf decodes big-endian digit bytes. Leading zero bytes are ignored.
func digitOf(data []byte) (uint64, error) {
	data = bytes.TrimLeft(data, "\x00")
	if len(data) > 8 {
		return 0, Error.New("digit too large: %d bytes", len(data))
	}

	var buf [8]byte
	copy(buf[8-len(data):], data)

	return binary.BigEndian.Uint64(buf[:]), nil
}

func (br *bsvReader) Digits() []uint64 {
	ds := make([]uint64, len(br.digits))
	copy(ds, br.digits)

	return ds
}

func (br *bsvReader) Line() int {
	return br.line
}

func (br *bsvReader) Err() (err error) {
	return br.err
}

// AppendBSV appends the bsv form of a sequence to b. Digits are written as
// minimal big-endian data fields with zero as a single zero byte.
func AppendBSV(b []byte, ds []uint64) (_ []byte, err error) {
	buf := bytes.NewBuffer(b)

	if len(ds) == 0 {
		err = control.NewEncoder(buf).Empty()
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return buf.Bytes(), nil
	}

	inner := &bytes.Buffer{}
	enc := control.NewEncoder(inner)

	for _, d := range ds {
		err = enc.Data(digitBytes(d))
		if err != nil {
			return nil, Error.Wrap(err)
		}
	}

	err = control.NewEncoder(buf).Bound(inner.Bytes())
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), nil
}

func digitBytes(d uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], d)

	data := bytes.TrimLeft(buf[:], "\x00")
	if len(data) == 0 {
		return []byte{0}
	}

	return data
}
