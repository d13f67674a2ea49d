package mpi

import "github.com/johnjohnsp1/sgxmpi/internal/limb"

// AddAbs sets X := |A| + |B| and forces X.Sign = +1.
// X may alias A or B.
func AddAbs(x, a, b *MPI) error {
	// Keep the longer operand as a, the shorter as b, so the carry
	// chain only needs to run past b's length once.
	if a.effLen() < b.effLen() {
		a, b = b, a
	}
	na, nb := a.effLen(), b.effLen()

	// If X aliases B (the shorter one) stage through a temporary; X
	// aliasing A (the longer, about to be copied first) is safe.
	if x == b && x != a {
		tmp := New()
		if err := Copy(tmp, b); err != nil {
			return err
		}
		b = tmp
	}
	if x != a {
		if err := Copy(x, a); err != nil {
			return err
		}
	}
	if err := Grow(x, na+1); err != nil {
		return err
	}

	c := limb.AddVV(x.limbs[:nb], x.limbs[:nb], b.limbs[:nb])
	if c != 0 {
		c = limb.AddVW(x.limbs[nb:na+1], x.limbs[nb:na+1], c)
	}
	x.Sign = 1
	return nil
}

// SubAbs sets X := |A| - |B|. Fails ErrNegativeValue if |A| < |B|
// If X aliases B, B is copied to a temporary first so
// the in-place subtract cannot read already-overwritten limbs.
func SubAbs(x, a, b *MPI) error {
	if CmpAbs(a, b) < 0 {
		return newErr("mpi.SubAbs", ErrNegativeValue, "|A| < |B|")
	}
	na, nb := a.effLen(), b.effLen()

	if x == b {
		tmp := New()
		if err := Copy(tmp, b); err != nil {
			return err
		}
		b = tmp
	}
	if x != a {
		if err := Copy(x, a); err != nil {
			return err
		}
	}
	if err := Grow(x, na); err != nil {
		return err
	}

	br := limb.SubVV(x.limbs[:nb], x.limbs[:nb], b.limbs[:nb])
	if br != 0 {
		limb.SubVW(x.limbs[nb:na], x.limbs[nb:na], br)
	}
	x.Sign = 1
	return nil
}

// Add sets X := A + B, dispatching on sign: same-sign
// operands add magnitudes and keep the shared sign; opposite-sign
// operands subtract the smaller magnitude from the larger and take the
// sign of whichever had the larger magnitude. A's sign is read before X
// is written, so X may alias A or B.
func Add(x, a, b *MPI) error {
	sa := a.Sign
	if sa == b.Sign {
		if err := AddAbs(x, a, b); err != nil {
			return err
		}
		if !x.IsZero() {
			x.Sign = sa
		}
		return nil
	}
	return signedSub(x, a, b, sa)
}

// Sub sets X := A - B. X may alias A or B.
func Sub(x, a, b *MPI) error {
	sa := a.Sign
	if sa != b.Sign {
		if err := AddAbs(x, a, b); err != nil {
			return err
		}
		if !x.IsZero() {
			x.Sign = sa
		}
		return nil
	}
	return signedSub(x, a, b, sa)
}

// signedSub handles the "subtract magnitudes, sign from the larger"
// case shared by opposite-sign Add and same-sign Sub. sa is A's sign as
// it was before X (which may alias A) was written.
func signedSub(x, a, b *MPI, sa int) error {
	if CmpAbs(a, b) >= 0 {
		if err := SubAbs(x, a, b); err != nil {
			return err
		}
		if !x.IsZero() {
			x.Sign = sa
		}
		return nil
	}
	if err := SubAbs(x, b, a); err != nil {
		return err
	}
	if !x.IsZero() {
		x.Sign = -sa
	}
	return nil
}

// AddInt sets X := A + z for a small signed scalar z, via the transient
// single-limb view.
func AddInt(x, a *MPI, z int64) error {
	var buf [1]Word
	return Add(x, a, oneLimbView(&buf, z))
}

// SubInt sets X := A - z for a small signed scalar z.
func SubInt(x, a *MPI, z int64) error {
	var buf [1]Word
	return Sub(x, a, oneLimbView(&buf, z))
}
