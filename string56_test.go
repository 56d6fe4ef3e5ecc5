package strn_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"strn"
)

func TestString56Size(t *testing.T) {
	require.Equal(t, uintptr(8), unsafe.Sizeof(strn.String56(0)))
	require.Equal(t, 7, strn.String56(0).MaxLen())
}

func TestString56ShortAndLong(t *testing.T) {
	short := strn.New56("abc")
	require.Equal(t, 3, short.Len())
	buf := short.Buffer()
	require.Equal(t, [8]byte{'a', 'b', 'c', 0, 0, 0, 0, 3}, buf)
	for i := 3; i < 7; i++ {
		require.Zero(t, short.At(i))
	}
	require.Equal(t, byte(3), short.At(7))

	long := strn.New56("123456789")
	require.Equal(t, 7, long.Len())
	require.Equal(t, "1234567", long.String())
	require.Equal(t, byte(7), long.Buffer()[7])
	require.Equal(t, strn.New56("1234567"), long)
}

func TestString56EmbeddedZero(t *testing.T) {
	s := strn.New56("a\x00b")
	require.Equal(t, 3, s.Len())
	require.Equal(t, "a\x00b", s.String())
	require.True(t, s.NotEmpty())
	require.NotEqual(t, strn.New56("a"), s)

	z := strn.New56("\x00")
	require.False(t, z.Empty())
	require.Equal(t, 1, z.Len())
	require.True(t, z.IsPrintable())
}

func TestString56RoundTrip(t *testing.T) {
	for _, in := range []string{"", "x", "ORANGE", "1234567"} {
		s := strn.New56(in)
		require.Equal(t, in, s.String())
		require.Equal(t, len(in), s.Len())
		require.Equal(t, s.Uint(), s.Hash())
		require.Equal(t, s, strn.New56Bytes([]byte(in)))
	}
	require.True(t, strn.New56("").Empty())
	require.Zero(t, strn.New56("").Uint())
}

func TestString56Array(t *testing.T) {
	require.Equal(t, strn.New56("ab"), strn.Array56([7]byte{'a', 'b'}))
	require.Equal(t, strn.New56("1234567"), strn.Array56([7]byte{'1', '2', '3', '4', '5', '6', '7'}))
}

func TestString56LengthOrdersFirst(t *testing.T) {
	// The length lives in the top byte, so any longer string is greater.
	require.True(t, strn.New56("zz").Less(strn.New56("aaa")))
	require.True(t, strn.New56("ba").Less(strn.New56("ab")))
}

func TestString56PushPop(t *testing.T) {
	s := strn.New56("abc")
	s.PushBack(0)
	require.Equal(t, 4, s.Len())
	s.PushBack('d')
	require.Equal(t, "abc\x00d", s.String())

	s.PopBack()
	s.PopBack()
	require.Equal(t, strn.New56("abc"), s)

	full := strn.New56("1234567")
	before := full
	full.PushBack('8')
	require.Equal(t, before, full)

	var empty strn.String56
	require.Panics(t, func() { empty.PopBack() })
}

func TestString56Set(t *testing.T) {
	s := strn.New56("abc")
	s.Set(1, 0)
	require.Equal(t, 3, s.Len())
	require.Equal(t, "a\x00c", s.String())
	s.Set(7, 'x')
	require.Equal(t, 3, s.Len())

	s.Set(3, 'x')
	s.Set(5, 'y')
	require.Equal(t, strn.New56("a\x00c"), s)
}

func TestString56Resize(t *testing.T) {
	s := strn.New56("orange")
	s.Resize(3, 'x')
	require.Equal(t, strn.New56("ora"), s)

	s.Resize(6, 0)
	require.Equal(t, 6, s.Len())
	require.Equal(t, "ora\x00\x00\x00", s.String())

	s.Resize(100, '!')
	require.Equal(t, 7, s.Len())
	require.Equal(t, "ora\x00\x00\x00!", s.String())

	s.Resize(0, '!')
	require.True(t, s.Empty())
}

func TestString56ResizeRoundTrip(t *testing.T) {
	for _, in := range []string{"", "a", "abc", "1234567"} {
		for k := len(in); k <= strn.MaxLen56; k++ {
			s := strn.New56(in)
			s.Resize(k, '#')
			s.Resize(len(in), '#')
			require.Equal(t, strn.New56(in), s)
		}
	}
}

func TestString56IsPrintable(t *testing.T) {
	require.True(t, strn.New56("a b").IsPrintable())
	require.False(t, strn.New56("a\x01").IsPrintable())
	// Bytes past the stored length are not content.
	require.True(t, strn.FromUint56(0x01_00_00_00_00_00_01_61).IsPrintable())
}
