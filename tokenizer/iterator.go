package tokenizer

// Text is the source type a tokenizer reads from.
type Text interface {
	~string | ~[]byte
}

// Iterator walks the tokens of a source one at a time. Token returns a
// view into the source; nothing is copied.
//
// The zero Iterator is exhausted. An Iterator is forward-only: a copy keeps
// its own position, but there is no way back to an earlier token other
// than starting over from the source.
type Iterator[T Text] struct {
	sep   Separator
	src   T
	begin int
	end   int
	live  bool
}

// NewIterator positions a new iterator on the first token of src.
func NewIterator[T Text](src T, sep Separator) Iterator[T] {
	it := Iterator[T]{sep: sep, src: src}
	it.seek(0)
	return it
}

// seek skips the separator run starting at from and takes the following
// maximal run of non-separators as the current token.
func (it *Iterator[T]) seek(from int) {
	n := len(it.src)
	b := from
	for b < n && it.sep.IsSep(it.src[b]) {
		b++
	}
	if b == n {
		*it = Iterator[T]{}
		return
	}
	e := b + 1
	for e < n && !it.sep.IsSep(it.src[e]) {
		e++
	}
	it.begin, it.end, it.live = b, e, true
}

// Valid reports whether the iterator is positioned on a token.
func (it *Iterator[T]) Valid() bool { return it.live }

// Next moves to the following token or exhausts the iterator.
func (it *Iterator[T]) Next() {
	if !it.live {
		return
	}
	if it.end == len(it.src) {
		*it = Iterator[T]{}
		return
	}
	// src[end] is the separator that closed the current token.
	it.seek(it.end + 1)
}

// Token returns the current token. It is empty once the iterator is exhausted.
func (it *Iterator[T]) Token() T {
	if !it.live {
		var zero T
		return zero
	}
	return it.src[it.begin:it.end]
}

// Span returns the byte offsets of the current token in the source.
func (it *Iterator[T]) Span() (begin, end int) {
	return it.begin, it.end
}

// Equal reports whether two iterators over the same source are at the
// same position. Any two exhausted iterators are equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.live == other.live && it.begin == other.begin && it.end == other.end
}

// CopyIterator is an Iterator whose Token returns a fresh copy that does
// not alias the source.
type CopyIterator[T Text] struct {
	Iterator[T]
}

// NewCopyIterator positions a new copying iterator on the first token of src.
func NewCopyIterator[T Text](src T, sep Separator) CopyIterator[T] {
	return CopyIterator[T]{Iterator: NewIterator(src, sep)}
}

func (it *CopyIterator[T]) Token() T {
	return clone(it.Iterator.Token())
}

func (it CopyIterator[T]) Equal(other CopyIterator[T]) bool {
	return it.Iterator.Equal(other.Iterator)
}

func clone[T Text](v T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}
	return T(append([]byte(nil), v...))
}
