package radix

import (
	"math/big"
)

// Digit is a native unsigned limb.
type Digit interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Decode returns the value of digits, most significant first, in the given
// base. It uses Horner's method:
//
//  acc = acc * base + digit
//
// An empty sequence decodes to zero.
func Decode[D Digit](digits []D, base Base) (value *big.Int, err error) {
	defer Error.WrapP(&err)

	if !base.Valid() {
		return nil, invalidBase(nil)
	}

	acc := new(big.Int)
	d := new(big.Int)

	for i, v := range digits {
		u := uint64(v)
		d.SetUint64(u)

		if !base.inRange(u) {
			return nil, outOfRange(i, d, base.n)
		}

		if base.shift > 0 {
			// The low shift bits are zero after the shift and d is
			// less than 2^shift.
			acc.Lsh(acc, base.shift)
			acc.Or(acc, d)
		} else {
			acc.Mul(acc, base.n)
			acc.Add(acc, d)
		}
	}

	return acc, nil
}

// Sum returns the same value as Decode by evaluating the positional sum
// directly:
//
//  value = sum(digit[k] * base^(L-1-k))
//
// Digits are consumed least significant first with a running power of the
// base starting at base^0.
func Sum[D Digit](digits []D, base Base) (value *big.Int, err error) {
	defer Error.WrapP(&err)

	if !base.Valid() {
		return nil, invalidBase(nil)
	}

	// Validate first so that the reported digit matches Decode.
	for i, v := range digits {
		if u := uint64(v); !base.inRange(u) {
			return nil, outOfRange(i, new(big.Int).SetUint64(u), base.n)
		}
	}

	total := new(big.Int)
	power := big.NewInt(1)
	term := new(big.Int)

	for i := len(digits) - 1; i >= 0; i-- {
		term.SetUint64(uint64(digits[i]))
		term.Mul(term, power)
		total.Add(total, term)

		power.Mul(power, base.n)
	}

	return total, nil
}

// DecodeInts is Decode for digits that are themselves arbitrary precision.
// Nil and negative digits are out of range.
func DecodeInts(digits []*big.Int, base Base) (value *big.Int, err error) {
	defer Error.WrapP(&err)

	if !base.Valid() {
		return nil, invalidBase(nil)
	}

	acc := new(big.Int)

	for i, d := range digits {
		if d == nil || d.Sign() < 0 || d.Cmp(base.n) >= 0 {
			return nil, outOfRange(i, d, base.n)
		}

		acc.Mul(acc, base.n)
		acc.Add(acc, d)
	}

	return acc, nil
}
