package mpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulCommutative(t *testing.T) {
	a := mustParse(t, "deadbeef", 16)
	b := mustParse(t, "cafef00d", 16)
	ab, ba := New(), New()
	require.NoError(t, Mul(ab, a, b))
	require.NoError(t, Mul(ba, b, a))
	require.Equal(t, 0, Cmp(ab, ba))
}

func TestMulByZero(t *testing.T) {
	a := mustParse(t, "123456789abcdef", 16)
	zero := New()
	x := New()
	require.NoError(t, Mul(x, a, zero))
	require.True(t, x.IsZero())
}

func TestMulAliasing(t *testing.T) {
	a := mustParse(t, "ff", 16)
	require.NoError(t, Mul(a, a, a))
	require.Equal(t, "fe01", mustHex(t, a))
}

func TestMulSign(t *testing.T) {
	a := mustParse(t, "-5", 16)
	b := mustParse(t, "3", 16)
	x := New()
	require.NoError(t, Mul(x, a, b))
	require.Equal(t, -1, x.Sign)
	require.Equal(t, "-f", mustHex(t, x))
}

// Test vector from the boundary scenarios: A*N for the large literal
// pair used throughout the division/exponent/inverse test vectors.
func TestMulLargeLiteral(t *testing.T) {
	a := mustParse(t, "EFE021C2645FD1DC586E69184AF4A31ED5F53E93B5F123FA41680867BA110131944FE7952E2517337780CB0DB80E61AAE7C8DDC6C5C6AADEB34EB38A2F40D5E6", 16)
	n := mustParse(t, "0066A198186C18C10B2F5ED9B522752A9830B69916E535C8F047518A889A43A594B6BED27A168D31D4A52F88925AA8F5", 16)
	want := "602AB7ECA597A3D6B56FF9829A5E8B859E857EA95A03512E2BAE7391688D264AA5663B0341DB9CCFD2C4C5F421FEC8148001B72E848A38CAE1C65F78E56ABDEFE12D3C039B8A02D6BE593F0BBBDA56F1ECF677152EF804370C1A305CAF3B5BF130879B56C61DE584A0F53A2447A51E"

	x := New()
	require.NoError(t, Mul(x, a, n))
	require.Equal(t, toLowerHex(want), mustHex(t, x))
}

func toLowerHex(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
