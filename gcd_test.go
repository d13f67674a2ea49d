package mpi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDLiterals(t *testing.T) {
	for _, c := range []struct {
		a, b string
		want int64
	}{
		{"693", "609", 21},
		{"1764", "868", 28},
		{"768454923", "542167814", 1},
	} {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		g := New()
		require.NoError(t, GCD(g, a, b))
		require.Equal(t, 0, CmpInt(g, c.want), "gcd(%s,%s)", c.a, c.b)
	}
}

func TestGCDLCMProduct(t *testing.T) {
	a := mustParse(t, "693", 10)
	b := mustParse(t, "609", 10)
	g, l := New(), New()
	require.NoError(t, GCD(g, a, b))
	require.NoError(t, LCM(l, a, b))

	gl := New()
	require.NoError(t, Mul(gl, g, l))
	ab := New()
	require.NoError(t, Mul(ab, a, b))
	require.Equal(t, 0, Cmp(gl, ab))
}

func TestInvModIdentity(t *testing.T) {
	a := mustParse(t, "17", 10)
	n := mustParse(t, "3120", 10)
	x := New()
	require.NoError(t, InvMod(x, a, n))

	prod := New()
	require.NoError(t, Mul(prod, a, x))
	r := New()
	require.NoError(t, Mod(r, prod, n))
	require.Equal(t, 0, CmpInt(r, 1))
}

func TestInvModNotCoprime(t *testing.T) {
	a := mustParse(t, "6", 10)
	n := mustParse(t, "9", 10)
	x := New()
	err := InvMod(x, a, n)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrNotAcceptable, me.Code)
}

func TestInvModLargeLiteral(t *testing.T) {
	a := mustParse(t, "EFE021C2645FD1DC586E69184AF4A31ED5F53E93B5F123FA41680867BA110131944FE7952E2517337780CB0DB80E61AAE7C8DDC6C5C6AADEB34EB38A2F40D5E6", 16)
	n := mustParse(t, "0066A198186C18C10B2F5ED9B522752A9830B69916E535C8F047518A889A43A594B6BED27A168D31D4A52F88925AA8F5", 16)
	want := strings.TrimLeft(toLowerHex("003A0AAEDD7E784FC07D8F9EC6E3BFD5C3DBA76456363A10869622EAC2DD84ECC5B8A74DAC4D09E03B5E0BE779F2DF61"), "0")

	x := New()
	require.NoError(t, InvMod(x, a, n))
	require.Equal(t, want, mustHex(t, x))
}
