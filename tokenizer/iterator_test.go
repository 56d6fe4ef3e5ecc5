package tokenizer

import (
	"slices"
	"testing"
)

// TestIteratorAdvance проверяет последовательное продвижение: "Some beautiful text" → 3 токена, затем конец
func TestIteratorAdvance(t *testing.T) {
	it := NewIterator("Some beautiful text", Char(' '))
	if !it.Valid() {
		t.Fatal("expected a token at start")
	}
	if it.Equal(Iterator[string]{}) {
		t.Fatal("live iterator must differ from the exhausted one")
	}
	if got := it.Token(); got != "Some" {
		t.Fatalf("first token = %q, want %q", got, "Some")
	}

	first := it
	it.Next()
	if it.Equal(first) {
		t.Error("advanced iterator must differ from its previous copy")
	}
	if got := first.Token(); got != "Some" {
		t.Errorf("copy moved with the original: %q", got)
	}
	if got := it.Token(); got != "beautiful" {
		t.Fatalf("second token = %q, want %q", got, "beautiful")
	}

	it.Next()
	if got := it.Token(); got != "text" {
		t.Fatalf("third token = %q, want %q", got, "text")
	}
	if b, e := it.Span(); b != 15 || e != 19 {
		t.Errorf("span = [%d,%d), want [15,19)", b, e)
	}

	it.Next()
	if it.Valid() {
		t.Fatal("expected exhaustion after the last token")
	}
	if !it.Equal(Iterator[string]{}) {
		t.Error("exhausted iterator must equal the zero iterator")
	}
	if got := it.Token(); got != "" {
		t.Errorf("exhausted Token = %q, want empty", got)
	}

	// Next on an exhausted iterator is a no-op.
	it.Next()
	if it.Valid() {
		t.Error("exhausted iterator came back to life")
	}
}

func TestIteratorEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"only_separators", "   ", nil},
		{"single", "word", []string{"word"}},
		{"leading", "  a b", []string{"a", "b"}},
		{"trailing", "a b  ", []string{"a", "b"}},
		{"runs", "a    b", []string{"a", "b"}},
		{"one_trailing", "a ", []string{"a"}},
		{"single_char_tokens", "x y z", []string{"x", "y", "z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for it := NewIterator(tt.src, Char(' ')); it.Valid(); it.Next() {
				got = append(got, it.Token())
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("tokens = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIteratorBytesAreViews(t *testing.T) {
	src := []byte("ab cd")
	it := NewIterator(src, Char(' '))
	tok := it.Token()
	tok[0] = 'X'
	if src[0] != 'X' {
		t.Error("view iterator must alias the source")
	}
}

func TestCopyIteratorOwnsTokens(t *testing.T) {
	src := []byte("ab cd")
	it := NewCopyIterator(src, Char(' '))
	tok := it.Token()
	tok[0] = 'X'
	if src[0] != 'a' {
		t.Error("copy iterator must not alias the source")
	}

	var got []string
	for ; it.Valid(); it.Next() {
		got = append(got, string(it.Token()))
	}
	if want := []string{"ab", "cd"}; !slices.Equal(got, want) {
		t.Errorf("tokens = %q, want %q", got, want)
	}
	if !it.Equal(CopyIterator[[]byte]{}) {
		t.Error("exhausted copy iterator must equal the zero value")
	}
}

func TestSeparatorCalledOncePerByte(t *testing.T) {
	src := "ab  cd e"
	calls := 0
	sep := Func(func(c byte) bool {
		calls++
		return c == ' '
	})
	n := 0
	for it := NewIterator(src, sep); it.Valid(); it.Next() {
		n++
	}
	if n != 3 {
		t.Fatalf("got %d tokens, want 3", n)
	}
	if calls > len(src) {
		t.Errorf("separator called %d times for %d bytes", calls, len(src))
	}
}
