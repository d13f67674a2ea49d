package mpi

import "github.com/johnjohnsp1/sgxmpi/internal/limb"

// DivMod implements HAC Algorithm 14.20: given A and
// B != 0, it sets Q and R such that A = Q*B + R, 0 <= R < |B|, with
// sign(Q) = sign(A)*sign(B) and sign(R) = sign(A) (R == 0 is normalized
// to sign +1). Either of Q or R may be nil if the caller does not need
// that output.
func DivMod(q, r, a, b *MPI) error {
	if b.IsZero() {
		return newErr("mpi.DivMod", ErrDivisionByZero, "")
	}
	if q == nil {
		q = New()
	}
	if r == nil {
		r = New()
	}

	sign := a.Sign * b.Sign
	rSign := a.Sign

	// Step 1: |A| < |B| => Q=0, R=A.
	if CmpAbs(a, b) < 0 {
		if err := Copy(r, a); err != nil {
			return err
		}
		q.Free()
		return nil
	}

	// Step 2: work on positive copies.
	x, y := New(), New()
	if err := Copy(x, a); err != nil {
		return err
	}
	if err := Copy(y, b); err != nil {
		return err
	}
	x.Sign, y.Sign = 1, 1

	var qq, rr *MPI
	var derr error
	if y.effLen() == 1 {
		qq, rr, derr = divAbsSmall(x, y.limbs[0])
	} else {
		qq, rr, derr = divAbsLarge(x, y)
	}
	if derr != nil {
		return derr
	}
	Swap(q, qq)
	Swap(r, rr)

	if !q.IsZero() {
		q.Sign = sign
	}
	if !r.IsZero() {
		r.Sign = rSign
	}
	return nil
}

// Mod sets R := A mod B, the unique value in [0, |B|) congruent to A.
// It is DivMod with the quotient discarded and a negative remainder
// moved up by |B|.
func Mod(r, a, b *MPI) error {
	m := b
	if r == b {
		m = New()
		if err := Copy(m, b); err != nil {
			return err
		}
	}
	if err := DivMod(nil, r, a, m); err != nil {
		return err
	}
	// DivMod's remainder carries A's sign; |B| - |R| is the
	// representative of a negative one in [0, |B|).
	if r.Sign < 0 && !r.IsZero() {
		return SubAbs(r, m, r)
	}
	return nil
}

// divAbsSmall divides the positive x by the single positive limb d,
// returning quotient and remainder as new MPIs. This is the y.effLen()
// == 1 fast path HAC 14.20 would otherwise spend its whole correction
// loop reaching.
func divAbsSmall(x *MPI, d Word) (q, r *MPI, err error) {
	n := x.effLen()
	q = New()
	if n == 0 {
		r = New()
		return q, r, nil
	}
	if err := Grow(q, n); err != nil {
		return nil, nil, err
	}
	var rem Word
	for i := n - 1; i >= 0; i-- {
		q.limbs[i], rem = limb.DivWW(rem, x.limbs[i], d)
	}
	r = New()
	if rem != 0 {
		if err := Lset(r, int64(rem)); err != nil {
			return nil, nil, err
		}
	}
	return q, r, nil
}

// DivModInt divides A by the small positive scalar d, setting Q to the
// quotient and returning the remainder. Used by the radix-2..16 ASCII
// exporter (io.go), which recursively divides by the radix for every
// radix other than 16.
func DivModInt(q *MPI, a *MPI, d int64) (int64, error) {
	if d <= 0 {
		return 0, newErr("mpi.DivModInt", ErrBadInput, "divisor must be positive, got %d", d)
	}
	qq, rr, err := divAbsSmall(a, Word(d))
	if err != nil {
		return 0, err
	}
	Swap(q, qq)
	if !q.IsZero() {
		q.Sign = a.Sign
	}
	rem := int64(0)
	if !rr.IsZero() {
		rem = int64(rr.limbs[0])
	}
	return rem, nil
}

// divAbsLarge implements Knuth's Algorithm D / HAC 14.20 for divisors
// of two or more limbs: normalize so the divisor's top limb has its
// high bit set, estimate each quotient digit from a two-limb-by-one-
// limb division, correct the estimate down with a 3-limb probe, then
// denormalize the remainder.
func divAbsLarge(x, y *MPI) (q, r *MPI, err error) {
	n := y.effLen()
	m := x.effLen() - n

	// Step 3: normalize so y's top limb has its high bit set.
	shift := uint(limb.Nlz(y.limbs[n-1]))
	v := New()
	if err := Grow(v, n); err != nil {
		return nil, nil, err
	}
	if shift > 0 {
		limb.ShlVU(v.limbs, y.limbs[:n], shift)
	} else {
		copy(v.limbs, y.limbs[:n])
	}

	u := New()
	if err := Grow(u, x.effLen()+1); err != nil {
		return nil, nil, err
	}
	if shift > 0 {
		top := limb.ShlVU(u.limbs[:x.effLen()], x.limbs[:x.effLen()], shift)
		u.limbs[x.effLen()] = top
	} else {
		copy(u.limbs, x.limbs[:x.effLen()])
	}

	q = New()
	if err := Grow(q, m+1); err != nil {
		return nil, nil, err
	}

	qhatv := make([]Word, n+1)
	vn1 := v.limbs[n-1]
	var vn2 Word
	if n >= 2 {
		vn2 = v.limbs[n-2]
	}

	// Step 6: produce one quotient digit per dividend "window",
	// from the most significant down to the least.
	for j := m; j >= 0; j-- {
		var qhat Word
		ujn := u.limbs[j+n]
		if ujn == vn1 {
			// Step 6a: X[i] == Y[t] forces the maximal digit.
			qhat = limb.Mask
		} else {
			var rhat Word
			qhat, rhat = limb.DivWW(ujn, u.limbs[j+n-1], vn1)

			// Step 6b: correct qhat down while it overshoots the
			// next-lower limb pair (the 3-limb probe).
			hi, lo := limb.MulWW(qhat, vn2)
			var ujn2 Word
			if j+n-2 >= 0 {
				ujn2 = u.limbs[j+n-2]
			}
			for limb.GreaterThan322(hi, lo, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					break
				}
				hi, lo = limb.MulWW(qhat, vn2)
			}
		}

		// Step 6c: multiply-subtract the estimate's contribution
		// from the working window of u; if it went negative the
		// estimate was still one too high, so add y back and
		// decrement qhat once more.
		qhatv[n] = limb.MulAddVWW(qhatv[:n], v.limbs[:n], qhat, 0)
		borrow := limb.SubVV(u.limbs[j:j+n+1], u.limbs[j:j+n+1], qhatv)
		if borrow != 0 {
			c := limb.AddVV(u.limbs[j:j+n], u.limbs[j:j+n], v.limbs[:n])
			u.limbs[j+n] += c
			qhat--
		}
		q.limbs[j] = qhat
	}

	// Step 7: denormalize the remainder.
	r = New()
	if err := Grow(r, n); err != nil {
		return nil, nil, err
	}
	if shift > 0 {
		limb.ShrVU(r.limbs, u.limbs[:n], shift)
	} else {
		copy(r.limbs, u.limbs[:n])
	}
	return q, r, nil
}
