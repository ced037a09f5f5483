// Package digitio reads and writes digit sequences.
//
// Text
//
// One sequence per line, most significant digit first, digits in decimal
// separated by commas. A single trailing comma is allowed so that the output
// of limb.Integer.String reads back unchanged:
//
//  18446744073709551615,0,
//  1, 2, 3
//  -
//
// The line "-" is the empty sequence. Blank lines and lines starting with '#'
// are skipped.
//
// Msgpack
//
// A stream of msgpack arrays of unsigned integers, one array per sequence.
//
// BSV
//
// A stream of control fields, one per sequence. A sequence is a bounded
// container of data blocks, one per digit, each the minimal big-endian bytes
// of the digit. The empty sequence is an empty block.
//
//  05 81 81 80    1,0
//  01             -
//
// In every format each digit must fit in Schema.Bits bits. Range against a
// decoding base is left to radix.
package digitio
