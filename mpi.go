// Package mpi implements the multi-precision integer arithmetic core
// required by RSA/DH/DSA-style public-key primitives: arbitrary
// precision signed integers with addition, subtraction, multiplication,
// division/modulo, shifts, Montgomery modular exponentiation, GCD,
// modular inverse, Miller-Rabin primality, and safe-prime generation.
//
// An MPI is sign-magnitude, never two's complement: a sign of +1 or -1
// and a little-endian-indexed slice of Word limbs. The zero value of
// MPI is not a valid zero integer; use New or Init.
package mpi

import (
	"github.com/johnjohnsp1/sgxmpi/internal/limb"
)

// Word is a single machine-word limb, W=64 bits wide.
type Word = limb.Word

// W is the limb width in bits.
const W = limb.BitSize

// MPI is an arbitrary-precision signed integer in sign-magnitude form.
// Zero is always represented with Sign == +1. Trailing
// zero limbs may be present; every comparison and measurement uses the
// effective length (the index of the top non-zero limb, plus one).
type MPI struct {
	Sign  int
	limbs []Word
}

// New returns an initialized zero MPI, equivalent to a freshly
// zero-valued MPI passed through Init.
func New() *MPI {
	return &MPI{Sign: 1}
}

// Init resets X to the empty zero state. It is safe
// to call on an already-initialized or already-freed MPI.
func (x *MPI) Init() {
	x.Sign = 1
	x.limbs = nil
}

// Free zeroizes X's limb buffer before releasing it, then resets X to
// the init state. Free is idempotent: calling it twice, or on a never-
// grown MPI, is a no-op beyond the reset.
//
// Zeroizing before release matters: a limb buffer may hold residue of
// a private exponent or prime factor, and a GC'd-but-unscrubbed buffer
// is a latent leak if the backing memory is later reused or paged out.
func (x *MPI) Free() {
	zeroize(x.limbs)
	x.limbs = nil
	x.Sign = 1
}

// zeroize overwrites buf with zero words. Unlike a plain "clear to nil",
// this is meant to run even when the compiler could otherwise prove the
// write is dead (the slice is about to be dropped) — there is no
// portable "volatile write" in Go, so this loop is the closest
// equivalent to an explicit_bzero.
func zeroize(buf []Word) {
	for i := range buf {
		buf[i] = 0
	}
}

// Limbs returns the effective-length-trimmed little-endian limb slice
// view. Callers must not retain or mutate the returned slice across a
// subsequent call that may reallocate X.
func (x *MPI) Limbs() []Word {
	return x.limbs[:x.effLen()]
}

// rawLimbs returns the full allocated limb slice, including any
// trailing zero limbs.
func (x *MPI) rawLimbs() []Word {
	return x.limbs
}

// effLen returns the effective length: the index of the top non-zero
// limb plus one, or 0 if X is numerically zero.
func (x *MPI) effLen() int {
	n := len(x.limbs)
	for n > 0 && x.limbs[n-1] == 0 {
		n--
	}
	return n
}

// IsZero reports whether X's magnitude is zero.
func (x *MPI) IsZero() bool {
	return x.effLen() == 0
}

// Grow ensures X has at least n allocated limbs. If
// X already has >= n limbs this is a no-op; otherwise a new zeroed
// buffer is allocated, the old content copied in, and the old buffer
// zeroized and released.
func (cfg Config) Grow(x *MPI, n int) error {
	if n > cfg.MaxLimbs {
		return newErr("mpi.Grow", ErrAllocFailed, "requested %d limbs exceeds cap %d", n, cfg.MaxLimbs)
	}
	if len(x.limbs) >= n {
		return nil
	}
	nb := make([]Word, n)
	copy(nb, x.limbs)
	zeroize(x.limbs)
	x.limbs = nb
	return nil
}

// Grow is Grow under the package default Config.
func Grow(x *MPI, n int) error {
	return defaultConfig.Grow(x, n)
}

// Copy sets X := Y, duplicating Y's limb buffer.
// Self-copy (X == Y) is a no-op. If Y is numerically empty, X is freed.
func Copy(x, y *MPI) error {
	if x == y {
		return nil
	}
	n := y.effLen()
	if n == 0 {
		x.Free()
		return nil
	}
	if err := Grow(x, n); err != nil {
		return err
	}
	zeroize(x.limbs)
	copy(x.limbs, y.limbs[:n])
	x.Sign = y.Sign
	return nil
}

// Swap exchanges X and Y's internal state without reallocating either
// buffer.
func Swap(x, y *MPI) {
	x.Sign, y.Sign = y.Sign, x.Sign
	x.limbs, y.limbs = y.limbs, x.limbs
}

// Lset sets X to the small signed scalar z.
func Lset(x *MPI, z int64) error {
	if err := Grow(x, 1); err != nil {
		return err
	}
	zeroize(x.limbs)
	if z < 0 {
		x.Sign = -1
		x.limbs[0] = Word(-z)
	} else {
		x.Sign = 1
		x.limbs[0] = Word(z)
	}
	return nil
}

// oneLimbView builds a transient, read-only MPI over a one-limb stack
// buffer holding |z| with sign(z). This is the "special single-limb MPI
// view": it must never be grown or freed, only read.
func oneLimbView(buf *[1]Word, z int64) *MPI {
	sign := 1
	var mag Word
	if z < 0 {
		sign = -1
		mag = Word(-z)
	} else {
		mag = Word(z)
	}
	buf[0] = mag
	return &MPI{Sign: sign, limbs: buf[:]}
}

// CmpAbs compares |X| to |Y|: -1, 0, or +1.
func CmpAbs(x, y *MPI) int {
	nx, ny := x.effLen(), y.effLen()
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for i := nx - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares X to Y as signed integers: -1, 0, or +1. Zero compares
// equal regardless of its stored sign.
func Cmp(x, y *MPI) int {
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case xz:
		return -y.Sign
	case yz:
		return x.Sign
	}
	if x.Sign != y.Sign {
		if x.Sign < y.Sign {
			return -1
		}
		return 1
	}
	c := CmpAbs(x, y)
	if x.Sign < 0 {
		return -c
	}
	return c
}

// CmpInt compares X to the small signed scalar z.
func CmpInt(x *MPI, z int64) int {
	var buf [1]Word
	return Cmp(x, oneLimbView(&buf, z))
}
