package radix

import (
	"math"
	"math/big"
)

// Base is a validated positional base. The zero value is not a valid base.
type Base struct {
	n *big.Int

	// shift is the exponent of n when n is a power of two, otherwise zero.
	shift uint

	// If bounded is true then n fits in a uint64 and max is the largest
	// uint64 digit in range. Otherwise every uint64 digit is in range.
	bounded bool
	max     uint64
}

// Word is the base of 64 bit limbs, 2^64.
var Word = mustWidth(64)

// NewBase returns the base n. It returns an InvalidBaseError if n is nil or
// not greater than one.
func NewBase(n *big.Int) (b Base, err error) {
	defer Error.WrapP(&err)

	if n == nil || n.Cmp(one) <= 0 {
		return b, invalidBase(n)
	}

	b.n = new(big.Int).Set(n)

	if exp := uint(n.BitLen() - 1); n.TrailingZeroBits() == exp {
		b.shift = exp
	}

	if n.IsUint64() {
		b.bounded = true
		b.max = n.Uint64() - 1
	}

	return b, nil
}

// WidthBase returns the base for digits of the given native width, 2^bits.
// A width of zero is an invalid base (2^0 = 1).
func WidthBase(bits uint) (b Base, err error) {
	defer Error.WrapP(&err)

	if bits == 0 {
		return b, invalidBase(big.NewInt(1))
	}

	return NewBase(new(big.Int).Lsh(one, bits))
}

func mustWidth(bits uint) Base {
	b, err := WidthBase(bits)
	if err != nil {
		panic(err)
	}

	return b
}

// Valid reports whether b was constructed by NewBase or WidthBase.
func (b Base) Valid() bool {
	return b.n != nil
}

// Int returns a copy of the base value.
func (b Base) Int() *big.Int {
	if b.n == nil {
		return nil
	}

	return new(big.Int).Set(b.n)
}

// Width returns the digit width in bits when the base is a power of two.
func (b Base) Width() (bits uint, ok bool) {
	return b.shift, b.shift > 0
}

// Pow returns b^exp. It returns nil for an invalid base or a negative
// exponent.
func (b Base) Pow(exp int) *big.Int {
	if b.n == nil || exp < 0 {
		return nil
	}

	if n, ok := b.shiftFor(exp); ok {
		return new(big.Int).Lsh(one, n)
	}

	return new(big.Int).Exp(b.n, big.NewInt(int64(exp)), nil)
}

// shiftFor returns the shift count of b^exp for a power of two base. It is
// false when the base is not a power of two or the count overflows a uint.
func (b Base) shiftFor(exp int) (n uint, ok bool) {
	if b.shift == 0 || exp < 0 || uint(exp) > math.MaxUint/b.shift {
		return 0, false
	}

	return b.shift * uint(exp), true
}

func (b Base) String() string {
	if b.n == nil {
		return "<invalid>"
	}

	return b.n.String()
}

// inRange reports whether the native digit u is less than the base.
func (b Base) inRange(u uint64) bool {
	return !b.bounded || u <= b.max
}

var one = big.NewInt(1)
