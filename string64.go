package strn

import (
	"encoding/binary"
	"iter"
)

// MaxLen64 is the capacity of a String64.
const MaxLen64 = 8

// String64 is a string of at most 8 bytes packed into a uint64.
// The zero value is the empty string.
type String64 uint64

// New64 encodes s, keeping at most the first 8 bytes.
func New64(s string) String64 {
	return String64(packString(s, MaxLen64))
}

// New64Bytes encodes b, keeping at most the first 8 bytes.
func New64Bytes(b []byte) String64 {
	return String64(packBytes(b, MaxLen64))
}

// FromUint64 reinterprets u as an encoded String64 without validation.
func FromUint64(u uint64) String64 {
	return String64(u)
}

// Array64 encodes a fixed-size array. A literal with more than eight
// elements does not compile.
func Array64(a [MaxLen64]byte) String64 {
	return String64(binary.LittleEndian.Uint64(a[:]))
}

// Uint returns the raw integer view.
func (s String64) Uint() uint64 { return uint64(s) }

// Hash returns the integer view; it is the identity hash.
func (s String64) Hash() uint64 { return uint64(s) }

// Len returns the number of bytes before the first zero byte.
func (s String64) Len() int { return zeroLen(uint64(s), MaxLen64) }

func (s String64) Empty() bool    { return s&0xff == 0 }
func (s String64) NotEmpty() bool { return !s.Empty() }
func (String64) MaxLen() int      { return MaxLen64 }

// At returns the byte at position i. Positions at or past MaxLen read as zero.
func (s String64) At(i int) byte { return byteAt(uint64(s), i) }

// Buffer returns the whole backing buffer, zero bytes included.
func (s String64) Buffer() [MaxLen64]byte {
	var b [MaxLen64]byte
	binary.LittleEndian.PutUint64(b[:], uint64(s))
	return b
}

// All yields the content bytes with their positions.
func (s String64) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := range s.Len() {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Bytes returns a copy of the content bytes.
func (s String64) Bytes() []byte {
	n := s.Len()
	return appendContent(make([]byte, 0, n), uint64(s), n)
}

func (s String64) String() string { return string(s.Bytes()) }

// IsPrintable reports whether every byte up to the first zero is printable ASCII.
func (s String64) IsPrintable() bool { return printableUpTo(uint64(s), MaxLen64) }

// Compare orders by integer view.
func (s String64) Compare(o String64) int { return compareUint(s, o) }
func (s String64) Less(o String64) bool   { return s < o }

// Set writes b at position i. Writing zero ends the string at i and
// clears every byte after it. A non-zero byte at i == Len appends; past
// Len it is ignored.
func (s *String64) Set(i int, b byte) {
	*s = String64(setImplicit(uint64(*s), i, b))
}

// PushBack appends b; it does nothing when s is full.
func (s *String64) PushBack(b byte) {
	if n := s.Len(); n < MaxLen64 {
		*s = String64(withByte(uint64(*s), n, b))
	}
}

// PopBack removes the last byte. s must not be empty.
func (s *String64) PopBack() {
	n := s.Len()
	if n == 0 {
		panic("strn: PopBack on empty String64")
	}
	*s = String64(keepLow(uint64(*s), n-1))
}

func (s *String64) Clear() { *s = 0 }

// Resize clamps n to MaxLen64, zero-fills past n when shrinking and fills
// [Len, n) with fill when growing.
func (s *String64) Resize(n int, fill byte) {
	*s = String64(resizeImplicit(uint64(*s), MaxLen64, n, fill))
}
