package tokenizer

// Separator classifies one byte as a token delimiter or not.
type Separator interface {
	IsSep(c byte) bool
}

// Char separates on a single byte.
type Char byte

func (c Char) IsSep(b byte) bool { return b == byte(c) }

// CharSet separates on membership in a fixed set of bytes.
// CharSet values are comparable.
type CharSet struct {
	bits [4]uint64
}

// NewCharSet builds a set from the bytes of seps.
func NewCharSet(seps string) CharSet {
	var cs CharSet
	for i := range len(seps) {
		cs.add(seps[i])
	}
	return cs
}

// NewCharSetBytes builds a set from seps.
func NewCharSetBytes(seps []byte) CharSet {
	var cs CharSet
	for _, c := range seps {
		cs.add(c)
	}
	return cs
}

func (cs *CharSet) add(c byte) {
	cs.bits[c>>6] |= 1 << (c & 63)
}

func (cs CharSet) IsSep(c byte) bool {
	return cs.bits[c>>6]&(1<<(c&63)) != 0
}

// Len returns the number of distinct separator bytes.
func (cs CharSet) Len() int {
	n := 0
	for _, w := range cs.bits {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// Func separates where the predicate returns true.
type Func func(c byte) bool

func (f Func) IsSep(c byte) bool { return f(c) }

// IsSpace reports ASCII whitespace: space, \t, \n, \v, \f, \r.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsPunct reports ASCII punctuation, as in the C locale.
func IsPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

func IsSpaceOrPunct(c byte) bool { return IsSpace(c) || IsPunct(c) }

var (
	_ Separator = Char(0)
	_ Separator = CharSet{}
	_ Separator = Func(nil)
)
