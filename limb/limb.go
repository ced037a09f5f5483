package limb

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/calebcase/positional/radix"
)

// Integer is an unsigned integer of 64 bit limbs. The zero value is zero.
type Integer struct {
	// limbs are least significant first and carry no high zero limbs
	// beyond the first.
	limbs []uint64
}

// New returns a single limb integer.
func New(v uint64) Integer {
	return Integer{
		limbs: []uint64{v},
	}
}

// FromDigits returns the integer for the most significant first digits.
// Leading zero digits are dropped. An empty sequence is zero.
func FromDigits(ds []uint64) Integer {
	limbs := make([]uint64, len(ds))
	for i, d := range ds {
		limbs[len(ds)-1-i] = d
	}

	return Integer{
		limbs: trim(limbs),
	}
}

func trim(limbs []uint64) []uint64 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}

	if n == 0 {
		return []uint64{0}
	}

	return limbs[:n]
}

func (x Integer) limb(i int) uint64 {
	if i < len(x.limbs) {
		return x.limbs[i]
	}

	return 0
}

// Len returns the number of limbs. Zero has one limb.
func (x Integer) Len() int {
	if len(x.limbs) == 0 {
		return 1
	}

	return len(x.limbs)
}

// IsZero reports whether x is zero.
func (x Integer) IsZero() bool {
	return len(x.limbs) == 0 || (len(x.limbs) == 1 && x.limbs[0] == 0)
}

// Copy returns an integer that does not share limbs with x.
func (x Integer) Copy() Integer {
	limbs := make([]uint64, x.Len())
	copy(limbs, x.limbs)

	return Integer{
		limbs: limbs,
	}
}

// Digits returns the limbs most significant first.
func (x Integer) Digits() []uint64 {
	ds := make([]uint64, x.Len())
	for i := range ds {
		ds[i] = x.limb(len(ds) - 1 - i)
	}

	return ds
}

// Equal reports whether x and y are the same value.
func (x Integer) Equal(y Integer) bool {
	if x.Len() != y.Len() {
		return false
	}

	for i := 0; i < x.Len(); i++ {
		if x.limb(i) != y.limb(i) {
			return false
		}
	}

	return true
}

// Add returns x+y.
func Add(x, y Integer) Integer {
	n := max(x.Len(), y.Len())
	r := make([]uint64, n+1)

	var carry uint64
	for i := 0; i < n; i++ {
		r[i], carry = bits.Add64(x.limb(i), y.limb(i), carry)
	}
	r[n] = carry

	return Integer{
		limbs: trim(r),
	}
}

// Mul returns x*y.
func Mul(x, y Integer) Integer {
	if x.IsZero() || y.IsZero() {
		return New(0)
	}

	r := make([]uint64, len(x.limbs)+len(y.limbs))

	for i, a := range x.limbs {
		var carry uint64

		for j, b := range y.limbs {
			// a*b + r[i+j] + carry is at most 2^128 - 1.
			hi, lo := bits.Mul64(a, b)

			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			r[i+j] = lo
			carry = hi
		}

		r[i+len(y.limbs)] = carry
	}

	return Integer{
		limbs: trim(r),
	}
}

// Big returns x as a *big.Int.
func (x Integer) Big() *big.Int {
	value, err := radix.Decode(x.Digits(), radix.Word)
	if err != nil {
		// Every uint64 is a valid digit of radix.Word.
		panic(err)
	}

	return value
}

// Text returns x in the given base (see big.Int.Text).
func (x Integer) Text(base int) string {
	return x.Big().Text(base)
}

// String returns the limbs most significant first, each followed by a comma.
func (x Integer) String() string {
	var sb strings.Builder

	for _, d := range x.Digits() {
		sb.WriteString(strconv.FormatUint(d, 10))
		sb.WriteByte(',')
	}

	return sb.String()
}

// MarshalBinary implements encoding.BinaryMarshaler. The value is written
// big-endian with no leading zero bytes.
func (x Integer) MarshalBinary() (data []byte, err error) {
	data = x.Big().Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Empty data is zero.
func (x *Integer) UnmarshalBinary(data []byte) (err error) {
	pad := (8 - len(data)%8) % 8
	buf := make([]byte, pad+len(data))
	copy(buf[pad:], data)

	ds := make([]uint64, len(buf)/8)
	for i := range ds {
		ds[i] = binary.BigEndian.Uint64(buf[i*8:])
	}

	*x = FromDigits(ds)

	return nil
}
