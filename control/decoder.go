package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
	Enter() (err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	stack *Stack

	value    [1]byte
	t        Type
	finished bool

	sized bool
	size  uint64
	data  []byte

	err error
}

func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r:     r,
		stack: &Stack{},
	}
}

// read fills buf from the input and accounts for it in the open containers.
func (d *decoder) read(buf []byte) (err error) {
	err = d.stack.Check(uint64(len(buf)))
	if err != nil {
		return err
	}

	_, err = io.ReadFull(d.r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.Wrap(oops.Trace(err))
	}

	d.consumed += uint64(len(buf))

	return d.stack.Consume(uint64(len(buf)))
}

// finish marks the current field fully read and closes exhausted
// containers.
func (d *decoder) finish() (err error) {
	d.finished = true

	return d.stack.Close()
}

// skip reads past the rest of the current field.
func (d *decoder) skip() (err error) {
	switch {
	case d.t.IsData():
		_, err = d.Data()

		return err
	case d.t == ContainerBounded:
		size, err := d.Size()
		if err != nil {
			return err
		}

		err = d.stack.Check(size)
		if err != nil {
			return err
		}

		_, err = io.CopyN(io.Discard, d.r, int64(size))
		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}

		d.consumed += size

		err = d.stack.Consume(size)
		if err != nil {
			return err
		}
	}

	return d.finish()
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Ensure current field was fully read before moving on...
	if d.t != Unknown && !d.finished {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown

	d.sized = false
	d.size = 0
	d.data = nil
	d.finished = false

	// Read the field control block.
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			if d.Depth() != 0 {
				d.err = Error.New("unexpected end of input: depth=%d", d.Depth())
			}

			return false
		}

		d.err = Error.Wrap(oops.Trace(err))

		return false
	}

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.consumed += 1
	d.t = t

	d.err = d.stack.Consume(1)
	if d.err != nil {
		return false
	}

	switch t {
	case Data, Empty, Null:
		// Single byte fields are fully read.
		d.err = d.finish()
		if d.err != nil {
			return false
		}
	}

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in a data field or the number of
// embedded bytes in a bounded container. For any other field it returns 0 and
// ErrInvalidOperation.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.sized {
		return d.size, nil
	}

	switch {
	case d.t.IsData():
		d.size, err = d.dataSize(d.t, d.value[0])
		if err != nil {
			return 0, err
		}
	case d.t == ContainerBounded:
		// The size is an embedded data field.
		var cb [1]byte

		err = d.read(cb[:])
		if err != nil {
			return 0, err
		}

		zt, ok := Types.Match(cb[0])
		if !ok || !zt.IsData() {
			return 0, Error.New("invalid container bounded size: %08b", cb[0])
		}

		zs, err := d.dataSize(zt, cb[0])
		if err != nil {
			return 0, err
		}

		sizeBytes, err := d.readData(zt, cb[0], zs)
		if err != nil {
			return 0, err
		}

		d.size, err = sizeOf(sizeBytes)
		if err != nil {
			return 0, err
		}
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	d.sized = true

	return d.size, nil
}

// dataSize returns the data size of a data field with control byte v, reading
// the size bytes of a DataSizeSize field.
func (d *decoder) dataSize(t Type, v byte) (_ uint64, err error) {
	switch t {
	case Data:
		return 1, nil
	case DataSize:
		return uint64(v&t.Mask) + 1, nil
	case Data1:
		return 2, nil
	case Data2:
		return 3, nil
	case DataSizeSize:
		sizeBytes := make([]byte, uint64(v&t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		return sizeOf(sizeBytes)
	}

	return 0, oops.Trace(ErrInvalidOperation)
}

// readData reads the size data bytes of a data field with control byte v.
func (d *decoder) readData(t Type, v byte, size uint64) (data []byte, err error) {
	data = make([]byte, size)

	switch t {
	case Data:
		data[0] = v & t.Mask
	case Data1, Data2:
		data[0] = v & t.Mask

		err = d.read(data[1:])
	default:
		err = d.read(data)
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// sizeOf decodes a big-endian size stored minus one.
func sizeOf(sizeBytes []byte) (uint64, error) {
	size := new(big.Int).SetBytes(sizeBytes)
	size.Add(size, big.NewInt(1))
	if !size.IsUint64() {
		return 0, Error.New("unimplemented: size >= 2^64")
	}

	return size.Uint64(), nil
}

// Data reads data bits and bytes from the field. If the field does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	data, err = d.readData(d.t, d.value[0], size)
	if err != nil {
		return nil, err
	}

	d.data = data

	err = d.finish()
	if err != nil {
		return nil, err
	}

	return d.data, nil
}

// Enter opens the current ContainerBounded field; the fields that follow are
// its contents until Depth drops back. If the current field type is not
// ContainerBounded, then it returns ErrInvalidOperation.
func (d *decoder) Enter() (err error) {
	defer func() {
		if err != nil {
			d.err = err
		}
	}()

	if d.t != ContainerBounded {
		return oops.Trace(ErrInvalidOperation)
	}

	if d.finished {
		return Error.New("invalid: container already entered")
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	err = d.stack.Check(size)
	if err != nil {
		return err
	}

	d.stack.Push(&Frame{
		Type:      ContainerBounded,
		Size:      size,
		Remaining: size,
	})

	d.finished = true

	return nil
}
