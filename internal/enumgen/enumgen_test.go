package enumgen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"strn"
)

func TestValues(t *testing.T) {
	vals, err := Values(Options{Type: "Color", Width: 64, Names: []string{"red", "dark_red", "BLUE"}})
	require.NoError(t, err)
	require.Equal(t, []Value{
		{Ident: "ColorRed", Name: "red", Raw: strn.Encode64("red")},
		{Ident: "ColorDarkRed", Name: "dark_red", Raw: strn.Encode64("dark_red")},
		{Ident: "ColorBLUE", Name: "BLUE", Raw: strn.Encode64("BLUE")},
	}, vals)
	require.Equal(t, uint64(0x646572), vals[0].Raw)
}

func TestValuesErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"no_names", Options{Type: "T", Width: 64}, ErrNoNames},
		{"bad_type", Options{Type: "1T", Width: 64, Names: []string{"a"}}, ErrInvalidName},
		{"bad_width", Options{Type: "T", Width: 48, Names: []string{"a"}}, ErrWidth},
		{"too_long_32", Options{Type: "T", Width: 32, Names: []string{"abcde"}}, ErrTooLong},
		{"too_long_56", Options{Type: "T", Width: 56, Names: []string{"abcdefgh"}}, ErrTooLong},
		{"too_long_64", Options{Type: "T", Width: 64, Names: []string{"abcdefghi"}}, ErrTooLong},
		{"invalid_tag", Options{Type: "T", Width: 64, Names: []string{"a-b"}}, ErrInvalidName},
		{"empty_tag", Options{Type: "T", Width: 64, Names: []string{""}}, ErrInvalidName},
		{"duplicate", Options{Type: "T", Width: 64, Names: []string{"x", "x"}}, ErrDuplicate},
		{"same_ident", Options{Type: "Color", Width: 64, Names: []string{"dark_red", "DarkRed"}}, ErrDuplicate},
		{"same_ident_underscores", Options{Type: "T", Width: 32, Names: []string{"a_b", "a__b"}}, ErrDuplicate},
		{"values_slice", Options{Type: "T", Width: 64, Names: []string{"values"}}, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Values(tt.opts)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateRejectsIdentClash(t *testing.T) {
	src, err := Generate(Options{Package: "p", Type: "Color", Width: 64, Names: []string{"dark_red", "DarkRed"}})
	require.ErrorIs(t, err, ErrDuplicate)
	require.Nil(t, src)
}

func TestValuesAtCapacity(t *testing.T) {
	for width, name := range map[int]string{32: "abcd", 56: "abcdefg", 64: "abcdefgh"} {
		_, err := Values(Options{Type: "T", Width: width, Names: []string{name}})
		require.NoError(t, err, "width %d", width)
	}
}

func TestGenerateParses(t *testing.T) {
	for _, width := range []int{32, 56, 64} {
		src, err := Generate(Options{Package: "colors", Type: "Color", Width: width, Names: []string{"red", "green"}})
		require.NoError(t, err)

		f, err := parser.ParseFile(token.NewFileSet(), "colors.go", src, parser.ParseComments)
		require.NoError(t, err, "width %d:\n%s", width, src)
		require.Equal(t, "colors", f.Name.Name)

		text := string(src)
		require.True(t, strings.HasPrefix(text, "// Code generated by strn enumgen; DO NOT EDIT."))
		require.Contains(t, text, `import "strn"`)
		require.Contains(t, text, "ColorRed")
		require.Contains(t, text, "ColorValues")
	}
}

func TestGenerateWidthTypes(t *testing.T) {
	src, err := Generate(Options{Package: "p", Type: "Op", Width: 32, Names: []string{"add"}, Import: "example.com/strn"})
	require.NoError(t, err)
	text := string(src)
	require.Contains(t, text, "type Op uint32")
	require.Contains(t, text, "strn.FromEnum32(v)")
	require.Contains(t, text, `import "example.com/strn"`)
	require.Contains(t, text, "OpAdd Op = 0x646461")

	_, err = Generate(Options{Package: "bad pkg", Type: "Op", Width: 32, Names: []string{"add"}})
	require.ErrorIs(t, err, ErrInvalidName)
}
