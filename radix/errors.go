package radix

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("radix")

var (
	// ErrInvalidBase indicates a base less than or equal to one.
	ErrInvalidBase = errors.New("invalid base")

	// ErrOutOfRangeDigit indicates a digit that is negative or not less
	// than the base.
	ErrOutOfRangeDigit = errors.New("digit out of range")
)

// InvalidBaseError reports the rejected base. Base is nil when no base was
// provided.
type InvalidBaseError struct {
	Base *big.Int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("%s: base=%s", ErrInvalidBase, e.Base)
}

func (e *InvalidBaseError) Unwrap() error {
	return ErrInvalidBase
}

// OutOfRangeDigitError reports the first digit outside of [0, base).
type OutOfRangeDigitError struct {
	Index int
	Digit *big.Int
	Base  *big.Int
}

func (e *OutOfRangeDigitError) Error() string {
	return fmt.Sprintf(
		"%s: index=%d digit=%s base=%s",
		ErrOutOfRangeDigit,
		e.Index,
		e.Digit,
		e.Base,
	)
}

func (e *OutOfRangeDigitError) Unwrap() error {
	return ErrOutOfRangeDigit
}

func invalidBase(n *big.Int) error {
	var cp *big.Int
	if n != nil {
		cp = new(big.Int).Set(n)
	}

	return &InvalidBaseError{
		Base: cp,
	}
}

func outOfRange(index int, digit *big.Int, base *big.Int) error {
	var cp *big.Int
	if digit != nil {
		cp = new(big.Int).Set(digit)
	}

	return &OutOfRangeDigitError{
		Index: index,
		Digit: cp,
		Base:  new(big.Int).Set(base),
	}
}
