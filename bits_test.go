package mpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftRoundTrip(t *testing.T) {
	for _, c := range []struct {
		val string
		k   int
	}{
		{"1", 1}, {"ff", 4}, {"123456789abcdef0", 17}, {"deadbeef", 63},
	} {
		x := mustParse(t, c.val, 16)
		orig := New()
		require.NoError(t, Copy(orig, x))

		require.NoError(t, ShiftL(x, c.k))
		require.NoError(t, ShiftR(x, c.k))
		require.Equal(t, 0, Cmp(orig, x), "shift_l then shift_r by %d changed value", c.k)
	}
}

func TestMsbLsb(t *testing.T) {
	x := mustParse(t, "8", 16) // 0b1000
	require.Equal(t, 4, Msb(x))
	require.Equal(t, 3, Lsb(x))

	zero := New()
	require.Equal(t, 0, Msb(zero))
	require.Equal(t, 0, Lsb(zero))
}

func TestSizeBytes(t *testing.T) {
	x := mustParse(t, "ff", 16)
	require.Equal(t, 1, SizeBytes(x))
	y := mustParse(t, "100", 16)
	require.Equal(t, 2, SizeBytes(y))
}
