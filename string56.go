package strn

import (
	"encoding/binary"
	"iter"
)

// MaxLen56 is the capacity of a String56.
const MaxLen56 = 7

const lenShift56 = 8 * MaxLen56

// String56 is a string of at most 7 bytes packed into a uint64 whose top
// byte holds the length. Unlike String32 and String64 its content may
// contain zero bytes. The zero value is the empty string.
type String56 uint64

func make56(content uint64, n int) String56 {
	return String56(keepLow(content, n) | uint64(n)<<lenShift56)
}

// New56 encodes s, keeping at most the first 7 bytes.
func New56(s string) String56 {
	n := min(len(s), MaxLen56)
	return make56(packString(s, n), n)
}

// New56Bytes encodes b, keeping at most the first 7 bytes.
func New56Bytes(b []byte) String56 {
	n := min(len(b), MaxLen56)
	return make56(packBytes(b, n), n)
}

// FromUint56 reinterprets u as an encoded String56 without validation.
// The top byte of u is taken as the length.
func FromUint56(u uint64) String56 {
	return String56(u)
}

// Array56 encodes a fixed-size array. A literal with more than seven
// elements does not compile. Trailing zero padding is not content: the
// length is the number of leading non-zero bytes.
func Array56(a [MaxLen56]byte) String56 {
	var buf [8]byte
	copy(buf[:], a[:])
	w := binary.LittleEndian.Uint64(buf[:])
	return make56(w, zeroLen(w, MaxLen56))
}

func (s String56) Uint() uint64 { return uint64(s) }
func (s String56) Hash() uint64 { return uint64(s) }

// Len returns the stored length.
func (s String56) Len() int {
	return min(int(s>>lenShift56), MaxLen56)
}

func (s String56) Empty() bool    { return s == 0 }
func (s String56) NotEmpty() bool { return s != 0 }
func (String56) MaxLen() int      { return MaxLen56 }

// At returns the byte at position i. Position 7 is the length byte.
func (s String56) At(i int) byte { return byteAt(uint64(s), i) }

// Buffer returns the whole backing buffer; the last byte is the length.
func (s String56) Buffer() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(s))
	return b
}

func (s String56) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := range s.Len() {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

func (s String56) Bytes() []byte {
	n := s.Len()
	return appendContent(make([]byte, 0, n), uint64(s), n)
}

func (s String56) String() string { return string(s.Bytes()) }

// IsPrintable reports whether every content byte up to the first zero is
// printable ASCII.
func (s String56) IsPrintable() bool { return printableUpTo(uint64(s), s.Len()) }

func (s String56) Compare(o String56) int { return compareUint(s, o) }
func (s String56) Less(o String56) bool   { return s < o }

// Set writes b at content position i. The length is left unchanged, so
// positions at or past Len are ignored.
func (s *String56) Set(i int, b byte) {
	if i < 0 || i >= s.Len() {
		return
	}
	*s = String56(withByte(uint64(*s), i, b))
}

func (s *String56) PushBack(b byte) {
	n := s.Len()
	if n >= MaxLen56 {
		return
	}
	*s = make56(withByte(uint64(*s), n, b), n+1)
}

func (s *String56) PopBack() {
	n := s.Len()
	if n == 0 {
		panic("strn: PopBack on empty String56")
	}
	*s = make56(uint64(*s), n-1)
}

func (s *String56) Clear() { *s = 0 }

// Resize clamps n to MaxLen56. Growing fills [Len, n) with fill; shrinking
// zeroes everything past n. The stored length becomes n.
func (s *String56) Resize(n int, fill byte) {
	n = clamp(n, MaxLen56)
	w := uint64(*s)
	for i := s.Len(); i < n; i++ {
		w = withByte(w, i, fill)
	}
	*s = make56(w, n)
}
