package strn

// Enum32 is satisfied by enumeration types whose underlying type is 32 bits wide.
type Enum32 interface {
	~uint32 | ~int32
}

// Enum64 is satisfied by enumeration types whose underlying type is 64 bits wide.
type Enum64 interface {
	~uint64 | ~int64
}

// FromEnum32 reinterprets an enum value as a String32.
func FromEnum32[E Enum32](e E) String32 { return String32(uint32(e)) }

// ToEnum32 reinterprets s as an enum value.
func ToEnum32[E Enum32](s String32) E { return E(s) }

func FromEnum56[E Enum64](e E) String56 { return String56(uint64(e)) }
func ToEnum56[E Enum64](s String56) E   { return E(s) }

func FromEnum64[E Enum64](e E) String64 { return String64(uint64(e)) }
func ToEnum64[E Enum64](s String64) E   { return E(s) }
