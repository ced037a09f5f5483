// Package radix decodes positional digit sequences into arbitrary precision
// integers.
//
// A digit sequence is an ordered list of limbs, most significant first. With
// a base B and a sequence of length L the decoded value is:
//
//  value = digit[0] * B^(L-1) + digit[1] * B^(L-2) + ... + digit[L-1] * B^0
//
// The empty sequence decodes to zero. For example, with B = 2^64:
//
//  [1, 0]    = 1 * 2^64 + 0                 = 18446744073709551616
//  [2, 1, 0] = 2 * 2^128 + 1 * 2^64 + 0     = 680564733841876926945195958937245974528
//
// Base
//
// A Base is any integer greater than one. WidthBase derives the base from a
// native digit width (2^bits); Word is the 64 bit limb base (one more than
// math.MaxUint64). Bases that are powers of two decode with shifts instead of
// multiplications. The result is identical either way.
//
// Digit Range
//
// Every digit must satisfy 0 <= digit < base. Digits outside of that range
// fail the decode with an OutOfRangeDigitError (matching ErrOutOfRangeDigit).
// No partial result is returned.
//
// Strategies
//
// Decode evaluates the sequence with Horner's method, most significant digit
// first. Sum evaluates the positional sum directly, least significant digit
// first with a running power of the base. Both produce the same result and the
// same error for every input; Decode is the one to use.
//
// All functions are pure. They do not retain or modify their inputs and are
// safe for concurrent use.
package radix
