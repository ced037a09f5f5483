// Package control provides the BSV blocking structure used to frame digit
// sequences.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). Data and size information is extracted by masking off the fixed
// bits of the first byte.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type              |                                      |
//  |---------------|---------------||-------------------|--------------------------------------|
//  | 1 |                           || Data              | 7 bits inline                        |
//  | 0 . 1 |                       || Data Size         | 1 to 64 bytes follow                 |
//  | 0 . 0 . 1 |                   || Data + 1          | 5 bits inline, 1 byte follows        |
//  | 0 . 0 . 0 . 1 |               || Data + 2          | 4 bits inline, 2 bytes follow        |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size    | 1 to 8 size bytes, then data         |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 1 || Container Bounded | size field, then size bytes of BSV   |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty             | Empty value                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null              | Null value                           |
//  |---------------|---------------||-------------------|--------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Container Bounded blocks have two parts:
//
//  1. A data field holding the number of bytes in the container minus one
//  2. The embedded BSV
//
// The decoder tracks open bounded containers on a Stack and closes each one
// once its bytes are consumed.
//
// Symmetric, unbounded and skip blocks of the full BSV format are not
// supported; their control bytes are rejected as unexpected.
package control
