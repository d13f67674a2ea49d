package mpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, radix int) *MPI {
	t.Helper()
	x := New()
	require.NoError(t, ReadString(x, s, radix))
	return x
}

func mustHex(t *testing.T, x *MPI) string {
	t.Helper()
	s, err := WriteString(x, 16)
	require.NoError(t, err)
	return s
}

func TestAddSubInverse(t *testing.T) {
	for i, c := range []struct{ a, b string }{
		{"64", "1e"},
		{"0", "ff"},
		{"-64", "1e"},
		{"64", "-1e"},
		{"ffffffffffffffff", "1"},
	} {
		a := mustParse(t, c.a, 16)
		b := mustParse(t, c.b, 16)

		sum := New()
		require.NoError(t, Add(sum, a, b))
		back := New()
		require.NoError(t, Sub(back, sum, b))
		require.Equal(t, 0, Cmp(a, back), "case %d: (A+B)-B != A", i)
	}
}

func TestAddCommutative(t *testing.T) {
	a := mustParse(t, "deadbeefcafe", 16)
	b := mustParse(t, "1234567890abcdef", 16)
	ab, ba := New(), New()
	require.NoError(t, Add(ab, a, b))
	require.NoError(t, Add(ba, b, a))
	require.Equal(t, 0, Cmp(ab, ba))
}

func TestAddAssociative(t *testing.T) {
	a := mustParse(t, "1", 16)
	b := mustParse(t, "ffffffffffffffff", 16)
	c := mustParse(t, "ffffffffffffffff", 16)

	ab, abc1 := New(), New()
	require.NoError(t, Add(ab, a, b))
	require.NoError(t, Add(abc1, ab, c))

	bc, abc2 := New(), New()
	require.NoError(t, Add(bc, b, c))
	require.NoError(t, Add(abc2, a, bc))

	require.Equal(t, 0, Cmp(abc1, abc2))
}

func TestSubAbsNegative(t *testing.T) {
	a := mustParse(t, "1", 16)
	b := mustParse(t, "2", 16)
	x := New()
	err := SubAbs(x, a, b)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrNegativeValue, me.Code)
}

func TestAddAliasing(t *testing.T) {
	a := mustParse(t, "ff", 16)
	b := mustParse(t, "01", 16)
	require.NoError(t, Add(a, a, b))
	require.Equal(t, "100", mustHex(t, a))
}

func TestAddIntSubInt(t *testing.T) {
	a := mustParse(t, "10", 16)
	x := New()
	require.NoError(t, AddInt(x, a, 5))
	require.Equal(t, "15", mustHex(t, x))
	require.NoError(t, SubInt(x, x, 5))
	require.Equal(t, 0, Cmp(x, a))
}
