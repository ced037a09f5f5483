// Package limb provides unsigned integers stored as vectors of 64 bit limbs.
//
// Limbs are held least significant first:
//
//  value = limb[0] * 2^0 + limb[1] * 2^64 + limb[2] * 2^128 + ...
//
// while Digits and String present them most significant first, the order
// expected by radix.Decode. The string form writes every limb in decimal
// followed by a comma:
//
//  2^64 = "1,0,"
//
// Addition and multiplication operate on the limbs directly with full width
// carries. Big converts the limbs to a *big.Int through radix.Decode, which is
// how the limb arithmetic is checked.
package limb
