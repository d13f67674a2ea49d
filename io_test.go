package mpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "ff", "123456789abcdef0123456789", "0"} {
		x := mustParse(t, s, 16)
		buf := make([]byte, SizeBytes(x))
		require.NoError(t, WriteBinary(x, buf))

		back := New()
		require.NoError(t, ReadBinary(back, buf, x.Sign < 0))
		require.Equal(t, 0, Cmp(x, back), "round trip failed for %s", s)
	}
}

func TestWriteBinaryBufferTooSmall(t *testing.T) {
	x := mustParse(t, "ffff", 16)
	buf := make([]byte, 1)
	err := WriteBinary(x, buf)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrBufferTooSmall, me.Code)
}

func TestStringRoundTripAllRadices(t *testing.T) {
	for radix := 2; radix <= 16; radix++ {
		x := New()
		require.NoError(t, Lset(x, 123456789))
		s, err := WriteString(x, radix)
		require.NoError(t, err)

		back := New()
		require.NoError(t, ReadString(back, s, radix))
		require.Equal(t, 0, Cmp(x, back), "radix %d round trip failed", radix)
	}
}

func TestReadStringNegative(t *testing.T) {
	x := New()
	require.NoError(t, ReadString(x, "-ff", 16))
	require.Equal(t, -1, x.Sign)
	require.Equal(t, 0, CmpInt(x, -255))
}

func TestReadStringInvalidCharacter(t *testing.T) {
	x := New()
	err := ReadString(x, "12g4", 16)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrInvalidCharacter, me.Code)
}

func TestReadStringBadRadix(t *testing.T) {
	x := New()
	err := ReadString(x, "1", 17)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrBadInput, me.Code)
}
