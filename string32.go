package strn

import (
	"encoding/binary"
	"iter"
)

// MaxLen32 is the capacity of a String32.
const MaxLen32 = 4

// String32 is a string of at most 4 bytes packed into a uint32.
// The zero value is the empty string.
type String32 uint32

// New32 encodes s, keeping at most the first 4 bytes.
func New32(s string) String32 {
	return String32(packString(s, MaxLen32))
}

// New32Bytes encodes b, keeping at most the first 4 bytes.
func New32Bytes(b []byte) String32 {
	return String32(packBytes(b, MaxLen32))
}

// FromUint32 reinterprets u as an encoded String32 without validation.
func FromUint32(u uint32) String32 {
	return String32(u)
}

// Array32 encodes a fixed-size array. A literal with more than four
// elements does not compile.
func Array32(a [MaxLen32]byte) String32 {
	return String32(binary.LittleEndian.Uint32(a[:]))
}

func (s String32) Uint() uint32 { return uint32(s) }
func (s String32) Hash() uint64 { return uint64(s) }
func (s String32) Len() int     { return zeroLen(uint64(s), MaxLen32) }
func (s String32) Empty() bool  { return s&0xff == 0 }

func (s String32) NotEmpty() bool { return !s.Empty() }
func (String32) MaxLen() int      { return MaxLen32 }
func (s String32) At(i int) byte  { return byteAt(uint64(s), min(i, MaxLen32)) }

func (s String32) Buffer() [MaxLen32]byte {
	var b [MaxLen32]byte
	binary.LittleEndian.PutUint32(b[:], uint32(s))
	return b
}

func (s String32) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := range s.Len() {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

func (s String32) Bytes() []byte {
	n := s.Len()
	return appendContent(make([]byte, 0, n), uint64(s), n)
}

func (s String32) String() string         { return string(s.Bytes()) }
func (s String32) IsPrintable() bool      { return printableUpTo(uint64(s), MaxLen32) }
func (s String32) Compare(o String32) int { return compareUint(s, o) }
func (s String32) Less(o String32) bool   { return s < o }

// Set follows the String64 rules: zero truncates at i, a non-zero byte
// past Len is ignored.
func (s *String32) Set(i int, b byte) {
	if i >= MaxLen32 {
		return
	}
	*s = String32(setImplicit(uint64(*s), i, b))
}

func (s *String32) PushBack(b byte) {
	if n := s.Len(); n < MaxLen32 {
		*s = String32(withByte(uint64(*s), n, b))
	}
}

func (s *String32) PopBack() {
	n := s.Len()
	if n == 0 {
		panic("strn: PopBack on empty String32")
	}
	*s = String32(keepLow(uint64(*s), n-1))
}

func (s *String32) Clear() { *s = 0 }

func (s *String32) Resize(n int, fill byte) {
	*s = String32(resizeImplicit(uint64(*s), MaxLen32, n, fill))
}
