package mpi

import "github.com/johnjohnsp1/sgxmpi/internal/limb"

// MontgomeryCache holds the modulus-dependent constants for repeated
// Montgomery multiplication against the same N: the Montgomery constant
// mm = -N^-1 mod 2^W, and (once computed) R^2 mod N.
//
// The cache is an
// explicit, caller-owned pointer, never a struct value that ExpMod
// could shallow-copy behind the caller's back. Populating RR on first
// use is not internally synchronized; concurrent first calls sharing
// one cache must be serialized by the caller.
type MontgomeryCache struct {
	n  int
	mm Word
	rr *MPI
}

// NewMontgomeryCache returns an empty cache to be populated by the
// first ExpMod call against a given modulus.
func NewMontgomeryCache() *MontgomeryCache {
	return &MontgomeryCache{}
}

// montgInit computes mm = -N[0]^-1 mod 2^W via the Newton-Raphson
// 2-adic inverse iteration: x starts as N[0] itself
// (correct to 3 bits, since odd N[0] satisfies N[0]*N[0] == 1 mod 8),
// and each refinement step x := x*(2 - N[0]*x) doubles the number of
// correct bits.
func montgInit(n *MPI) (Word, error) {
	if n.IsZero() || n.Sign < 0 {
		return 0, newErr("mpi.montgInit", ErrBadInput, "modulus must be positive")
	}
	n0 := n.limbs[0]
	if n0&1 == 0 {
		return 0, newErr("mpi.montgInit", ErrBadInput, "modulus must be odd")
	}
	x := n0
	for i := 0; i < 6; i++ {
		x = x * (2 - n0*x)
	}
	return -x, nil
}

// montMul sets dst := A*B*R^-1 mod N, the core Montgomery multiply
// A and B must already be in Montgomery form and
// reduced mod N; N must be odd with effective length nlen. mm is the
// constant from montgInit.
//
// The trailing subtract is always performed into a scratch buffer and
// then selected between, rather than skipped when not needed: this is
// the one place this library pays for constant-time behavior.
func montMul(dst, a, b, n *MPI, mm Word) error {
	nlen := n.effLen()
	aw := borrowWindow(a, nlen)
	bw := borrowWindow(b, nlen)
	nw := n.limbs[:nlen]

	t := make([]Word, nlen)
	var c Word
	for i := 0; i < nlen; i++ {
		d := bw[i]
		c2 := limb.AddMulVVW(t, aw, d)
		u := t[0] * mm
		c3 := limb.AddMulVVW(t, nw, u)
		copy(t, t[1:])
		cx := c + c2
		cy := cx + c3
		t[nlen-1] = cy
		// Hacker's Delight §2-12 overflow detection: fold the two
		// addMulVVW carries and the running spill bit c into the next
		// round's spill without ever materializing an (n+1)-th limb.
		c = (c&c2 | (c|c2)&^cx) >> (limb.BitSize - 1)
		c |= (cx&c3 | (cx|c3)&^cy) >> (limb.BitSize - 1)
	}

	sub := make([]Word, nlen)
	borrow := limb.SubVV(sub, t, nw)

	if err := Grow(dst, nlen); err != nil {
		return err
	}
	// Constant-time select: the subtract is always computed above, and
	// choosing between t and t-N here never branches on their relative
	// magnitude. borrow == 0 means t-N didn't underflow (t >= N, so the
	// subtracted form is live); c != 0 means the limb loop's spill bit
	// alone already puts the true value past N. Either case ORs into a
	// single all-ones/all-zeros mask applied limbwise, the same shape
	// of work regardless of which operand was larger.
	needSub := (c & 1) | (1 - (borrow & 1))
	mask := -needSub
	for i := 0; i < nlen; i++ {
		dst.limbs[i] = (sub[i] & mask) | (t[i] &^ mask)
	}
	for i := nlen; i < len(dst.limbs); i++ {
		dst.limbs[i] = 0
	}
	dst.Sign = 1
	return nil
}

// borrowWindow returns a's limbs zero-extended (conceptually) to n
// words; callers only ever read it.
func borrowWindow(a *MPI, n int) []Word {
	if a.effLen() >= n {
		return a.limbs[:n]
	}
	buf := make([]Word, n)
	copy(buf, a.limbs[:a.effLen()])
	return buf
}

// montRed sets dst := A*R^-1 mod N, i.e. montMul(dst, A, 1, N, mm)
// realized with a stack single-limb MPI of value 1.
func montRed(dst, a, n *MPI, mm Word) error {
	one := New()
	if err := Lset(one, 1); err != nil {
		return err
	}
	return montMul(dst, a, one, n, mm)
}

// montgomeryRSquared computes R^2 mod N where R = 2^(W*nlen), via
// lset(1); shift_l(2*nlen*W); mod N.
func montgomeryRSquared(n *MPI) (*MPI, error) {
	nlen := n.effLen()
	rr := New()
	if err := Lset(rr, 1); err != nil {
		return nil, err
	}
	if err := ShiftL(rr, 2*nlen*W); err != nil {
		return nil, err
	}
	r := New()
	if err := Mod(r, rr, n); err != nil {
		return nil, err
	}
	return r, nil
}
