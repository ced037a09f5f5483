package radix

import (
	"math/big"
)

// DefaultBits is the digit width used when a Schema does not set one.
const DefaultBits = 64

// Schema configures a Decoder.
type Schema struct {
	// Bits is the native digit width. The base is 2^Bits. Zero means
	// DefaultBits.
	Bits uint

	// Radix, if set, is used as the base instead of 2^Bits.
	Radix *big.Int
}

// Base returns the base described by the schema.
func (s Schema) Base() (_ Base, err error) {
	defer Error.WrapP(&err)

	if s.Radix != nil {
		return NewBase(s.Radix)
	}

	bits := s.Bits
	if bits == 0 {
		bits = DefaultBits
	}

	return WidthBase(bits)
}

// Decoder decodes digit sequences with a fixed base.
type Decoder struct {
	base Base
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema) (_ *Decoder, err error) {
	defer Error.WrapP(&err)

	base, err := schema.Base()
	if err != nil {
		return nil, err
	}

	return &Decoder{
		base: base,
	}, nil
}

// Base returns the decoder's base.
func (d *Decoder) Base() Base {
	return d.base
}

// Decode returns the value of the most significant first digits.
func (d *Decoder) Decode(digits []uint64) (*big.Int, error) {
	return Decode(digits, d.base)
}

// DecodeInts returns the value of the most significant first arbitrary
// precision digits.
func (d *Decoder) DecodeInts(digits []*big.Int) (*big.Int, error) {
	return DecodeInts(digits, d.base)
}
