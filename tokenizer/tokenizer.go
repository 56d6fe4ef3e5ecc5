package tokenizer

import (
	"fmt"
	"iter"
	"slices"

	"fortio.org/safecast"
)

// Tokenizer owns a Separator and borrows a source. Every call to Begin,
// All or Copies starts over from the beginning of the source; the source
// is never modified. The source must not be modified while tokens that
// view into it are in use.
type Tokenizer[T Text] struct {
	src T
	sep Separator
}

// New returns a tokenizer over src that splits on sep.
func New[T Text](src T, sep Separator) Tokenizer[T] {
	return Tokenizer[T]{src: src, sep: sep}
}

// SeparatorSpec lists the separator shapes accepted by Split.
type SeparatorSpec interface {
	byte | rune | string | []byte | func(byte) bool
}

// Split picks the Separator from the shape of spec: a single byte or rune
// becomes Char, a string or byte slice becomes CharSet and a function
// becomes Func. A rune that does not fit in a byte panics.
func Split[T Text, S SeparatorSpec](src T, spec S) Tokenizer[T] {
	return New(src, SeparatorOf(spec))
}

// SeparatorOf converts a separator shape into a Separator.
func SeparatorOf[S SeparatorSpec](spec S) Separator {
	switch v := any(spec).(type) {
	case byte:
		return Char(v)
	case rune:
		c, err := safecast.Conv[byte](v)
		if err != nil {
			panic(fmt.Errorf("separator rune %q overflow: %w", v, err))
		}
		return Char(c)
	case string:
		return NewCharSet(v)
	case []byte:
		return NewCharSetBytes(v)
	case func(byte) bool:
		return Func(v)
	}
	panic("unreachable")
}

// Source returns the text being tokenized.
func (t Tokenizer[T]) Source() T { return t.src }

// Separator returns the separator the tokenizer splits on.
func (t Tokenizer[T]) Separator() Separator { return t.sep }

// Begin returns a view iterator on the first token.
func (t Tokenizer[T]) Begin() Iterator[T] { return NewIterator(t.src, t.sep) }

// BeginCopy returns a copying iterator on the first token.
func (t Tokenizer[T]) BeginCopy() CopyIterator[T] { return NewCopyIterator(t.src, t.sep) }

// All yields views of the tokens in order.
func (t Tokenizer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Token()) {
				return
			}
		}
	}
}

// Copies yields copies of the tokens in order.
func (t Tokenizer[T]) Copies() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.BeginCopy(); it.Valid(); it.Next() {
			if !yield(it.Token()) {
				return
			}
		}
	}
}

// Spans yields the byte offsets of each token.
func (t Tokenizer[T]) Spans() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Span()) {
				return
			}
		}
	}
}

// Collect returns the views of all tokens.
func (t Tokenizer[T]) Collect() []T {
	return slices.Collect(t.All())
}

// Count returns the number of tokens.
func (t Tokenizer[T]) Count() int {
	n := 0
	for it := t.Begin(); it.Valid(); it.Next() {
		n++
	}
	return n
}
