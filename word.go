package strn

// Byte-level accessors over the integer view. Logical position i is the
// byte (w >> 8*i) & 0xff, so position 0 is the lowest-order byte whatever
// the host byte order is.

func byteAt(w uint64, i int) byte {
	return byte(w >> (8 * uint(i)))
}

func withByte(w uint64, i int, b byte) uint64 {
	shift := 8 * uint(i)
	return w&^(0xff<<shift) | uint64(b)<<shift
}

// setImplicit writes b at i in an implicit-length word. A non-zero byte may
// land at most one past the current end, so no byte ever sits after the
// terminator.
func setImplicit(w uint64, i int, b byte) uint64 {
	if i < 0 {
		return w
	}
	if b == 0 {
		return keepLow(w, i)
	}
	if i > zeroLen(w, 8) {
		return w
	}
	return withByte(w, i, b)
}

// zeroLen returns the number of leading non-zero bytes among the first n.
func zeroLen(w uint64, n int) int {
	for i := range n {
		if byteAt(w, i) == 0 {
			return i
		}
	}
	return n
}

// keepLow keeps the first n logical bytes and clears the rest.
func keepLow(w uint64, n int) uint64 {
	if n >= 8 {
		return w
	}
	if n <= 0 {
		return 0
	}
	return w & (1<<(8*uint(n)) - 1)
}

func packString(s string, n int) uint64 {
	if len(s) > n {
		s = s[:n]
	}
	var w uint64
	for i := range len(s) {
		w |= uint64(s[i]) << (8 * uint(i))
	}
	return w
}

func packBytes(b []byte, n int) uint64 {
	if len(b) > n {
		b = b[:n]
	}
	var w uint64
	for i, c := range b {
		w |= uint64(c) << (8 * uint(i))
	}
	return w
}

func appendContent(dst []byte, w uint64, n int) []byte {
	for i := range n {
		dst = append(dst, byteAt(w, i))
	}
	return dst
}

// isPrint reports whether b is a printable ASCII character.
func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// printableUpTo reports whether every byte before the first zero among
// the first n is printable.
func printableUpTo(w uint64, n int) bool {
	for i := range n {
		c := byteAt(w, i)
		if c == 0 {
			return true
		}
		if !isPrint(c) {
			return false
		}
	}
	return true
}

// resizeImplicit grows or shrinks a zero-terminated buffer of capacity n.
func resizeImplicit(w uint64, n, newLen int, fill byte) uint64 {
	newLen = clamp(newLen, n)
	cur := zeroLen(w, n)
	if newLen <= cur {
		return keepLow(w, newLen)
	}
	for i := cur; i < newLen; i++ {
		w = withByte(w, i, fill)
	}
	return w
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

func compareUint[T ~uint32 | ~uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
