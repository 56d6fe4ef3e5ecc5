package strn

// Sentinels returned by the literal codec when the input does not fit.
var (
	BadLiteral32 = New32("#BAD")
	BadLiteral56 = New56("#BADs56")
	BadLiteral64 = New64("#BAD_S64")
)

// literalFits reports whether s is accepted by the literal codec of an
// implicit-length type with capacity n. One extra trailing NUL is allowed,
// as in a C string literal.
func literalFits(s string, n int) bool {
	switch {
	case len(s) <= n:
		return true
	case len(s) == n+1:
		return s[n] == 0
	}
	return false
}

// Literal32 encodes s exactly or returns BadLiteral32 when s is too long.
func Literal32(s string) String32 {
	if !literalFits(s, MaxLen32) {
		return BadLiteral32
	}
	return New32(s)
}

// Literal56 encodes s exactly or returns BadLiteral56 when s is longer
// than seven bytes. There is no terminator allowance: the length is stored.
func Literal56(s string) String56 {
	if len(s) > MaxLen56 {
		return BadLiteral56
	}
	return New56(s)
}

// Literal64 encodes s exactly or returns BadLiteral64 when s is too long.
func Literal64(s string) String64 {
	if !literalFits(s, MaxLen64) {
		return BadLiteral64
	}
	return New64(s)
}

// Encode32 returns the integer form of Literal32(s).
func Encode32(s string) uint32 { return Literal32(s).Uint() }

// Encode56 returns the integer form of Literal56(s).
func Encode56(s string) uint64 { return Literal56(s).Uint() }

// Encode64 returns the integer form of Literal64(s).
func Encode64(s string) uint64 { return Literal64(s).Uint() }
