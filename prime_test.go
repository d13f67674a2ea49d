package mpi

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type cryptoRandSource struct{}

func (cryptoRandSource) FillRandom(dst []byte) error {
	_, err := rand.Read(dst)
	return err
}

func TestCheckSmallFactorsTablePrimes(t *testing.T) {
	for _, p := range []int64{3, 5, 7, 997} {
		x := intMPI(p)
		sf, err := CheckSmallFactors(x)
		require.NoError(t, err)
		require.Equal(t, SFPrime, sf)
	}
}

func TestCheckSmallFactorsComposite(t *testing.T) {
	x := intMPI(3 * 997)
	sf, err := CheckSmallFactors(x)
	require.NoError(t, err)
	require.Equal(t, SFComposite, sf)
}

func TestCheckSmallFactorsEven(t *testing.T) {
	x := intMPI(10)
	sf, err := CheckSmallFactors(x)
	require.NoError(t, err)
	require.Equal(t, SFComposite, sf)
}

func TestIsPrimeKnownPrimes(t *testing.T) {
	rng := cryptoRandSource{}
	for _, p := range []int64{2, 3, 1009, 7919} {
		require.NoError(t, IsPrime(intMPI(p), rng), "p=%d", p)
	}
}

func TestIsPrimeKnownComposites(t *testing.T) {
	rng := cryptoRandSource{}
	for _, c := range []int64{4, 1001, 997 * 991} {
		err := IsPrime(intMPI(c), rng)
		require.Error(t, err, "c=%d", c)
	}
}

func TestGenPrimeProducesPrime(t *testing.T) {
	rng := cryptoRandSource{}
	x := New()
	require.NoError(t, GenPrime(x, 64, false, rng))
	require.Equal(t, 64, Msb(x))
	require.NoError(t, IsPrime(x, rng))
}

func TestGenPrimeSafe(t *testing.T) {
	rng := cryptoRandSource{}
	x := New()
	require.NoError(t, GenPrime(x, 64, true, rng))
	require.NoError(t, IsPrime(x, rng))

	y := New()
	require.NoError(t, SubInt(y, x, 1))
	require.NoError(t, ShiftR(y, 1))
	require.NoError(t, IsPrime(y, rng))
}
