package strn_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"strn"
)

func TestString32Basics(t *testing.T) {
	require.Equal(t, uintptr(4), unsafe.Sizeof(strn.String32(0)))

	var empty strn.String32
	require.True(t, empty.Empty())
	require.Equal(t, empty, strn.New32(""))

	s := strn.New32("c23")
	require.Equal(t, 3, s.Len())
	require.Equal(t, "c23", s.String())
	require.Equal(t, uint32('c')|uint32('2')<<8|uint32('3')<<16, s.Uint())
	require.Equal(t, uint64(s.Uint()), s.Hash())
	require.Equal(t, [4]byte{'c', '2', '3', 0}, s.Buffer())
	require.Equal(t, 4, s.MaxLen())
}

func TestString32Truncation(t *testing.T) {
	s := strn.New32("I23456789")
	require.Equal(t, strn.New32("I234"), s)
	require.Equal(t, 4, s.Len())
	require.Equal(t, s, strn.New32Bytes([]byte("I23456789")))
}

func TestString32Array(t *testing.T) {
	require.Equal(t, strn.New32("ab"), strn.Array32([4]byte{'a', 'b'}))
}

func TestString32AtOutOfRange(t *testing.T) {
	s := strn.FromUint32(0xffffffff)
	require.Equal(t, byte(0xff), s.At(3))
	require.Zero(t, s.At(4))
	require.Zero(t, s.At(-1))
}

func TestString32Mutators(t *testing.T) {
	s := strn.New32("ab")
	s.PushBack('c')
	s.PushBack('d')
	require.Equal(t, strn.New32("abcd"), s)
	s.PushBack('e')
	require.Equal(t, strn.New32("abcd"), s)

	s.PopBack()
	require.Equal(t, strn.New32("abc"), s)

	s.Resize(1, 'x')
	require.Equal(t, strn.New32("a"), s)
	s.Resize(10, 'x')
	require.Equal(t, strn.New32("axxx"), s)

	s.Set(4, 'z')
	require.Equal(t, strn.New32("axxx"), s)
	s.Set(1, 'y')
	require.Equal(t, strn.New32("ayxx"), s)

	s.Set(1, 0)
	s.Set(3, 'q')
	require.Equal(t, strn.New32("a"), s)
	s.Set(1, 'q')
	require.Equal(t, strn.New32("aq"), s)

	s.Clear()
	require.True(t, s.Empty())
	require.Panics(t, func() { s.PopBack() })
}

func TestString32Ordering(t *testing.T) {
	require.True(t, strn.New32("b").Less(strn.New32("ab")))
	require.Equal(t, -1, strn.New32("ba").Compare(strn.New32("ab")))
}

func TestString32IsPrintable(t *testing.T) {
	require.True(t, strn.New32("a b").IsPrintable())
	require.False(t, strn.New32("a\tb").IsPrintable())
}
