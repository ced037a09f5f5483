package control

import (
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

type Encoder interface {
	Data(data []byte) (err error)
	Bound(bsv []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(oops.Trace(err))
		}
	}

	return nil
}

// Data writes data using the smallest data block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{Data1.Prefix | data[0], data[1]})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{Data2.Prefix | data[0], data[1], data[2]})
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	}

	s := new(big.Int).SetUint64(uint64(size - 1))
	sb := s.Bytes()

	// Size size is limited to 8 bytes by the mask, more than enough for
	// any slice length.
	return e.write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb, data)
}

// Bound writes bsv as a bounded container.
func (e *encoder) Bound(bsv []byte) (err error) {
	size := uint64(len(bsv))

	if size == 0 {
		return Error.New("invalid: size=0")
	}

	err = e.write([]byte{ContainerBounded.Prefix})
	if err != nil {
		return err
	}

	sizeBytes := new(big.Int).SetUint64(size - 1).Bytes()
	if len(sizeBytes) == 0 {
		sizeBytes = []byte{0b_0000_0000}
	}

	err = e.Data(sizeBytes)
	if err != nil {
		return err
	}

	return e.write(bsv)
}

func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
