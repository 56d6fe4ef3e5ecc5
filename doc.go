// Package strn provides fixed-capacity strings stored inline in a machine
// word: String32 (4 bytes), String56 (7 bytes plus a length byte) and
// String64 (8 bytes).
//
// Each value is an unsigned integer. Byte i of the string is bits
// [8*i, 8*i+8) of that integer, so equality, ordering and hashing are
// plain integer operations and the types work as map keys without any
// extra cost.
//
// # Length
//
// String32 and String64 do not store their length. It is the number of
// leading non-zero bytes, so a zero byte ends the string. String56 keeps
// the length in its top byte and may carry zero bytes in its content.
//
// # Truncation
//
// Construction from runtime input longer than the capacity keeps the first
// MaxLen bytes. PushBack on a full value and Resize past the capacity are
// no-ops beyond the capacity. Nothing in this package returns an error on
// over-long input:
//
//	strn.New64("123456789") == strn.New64("12345678") // true
//
// # Ordering
//
// Values order by their integer, not alphabetically: "b" < "ab" because
// 0x62 < 0x6261.
package strn
