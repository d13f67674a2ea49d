package mpi

// GCD sets G := gcd(|A|, |B|) via the binary GCD algorithm (HAC
// §4.8): strip the common power of two, then alternately strip the
// remaining trailing zeros from each operand and subtract the smaller
// from the larger, halving the difference each time.
func GCD(g, a, b *MPI) error {
	ta, tb := New(), New()
	if err := Copy(ta, a); err != nil {
		return err
	}
	if err := Copy(tb, b); err != nil {
		return err
	}
	ta.Sign, tb.Sign = 1, 1

	lz := Lsb(ta)
	if lzb := Lsb(tb); lzb < lz {
		lz = lzb
	}
	if err := ShiftR(ta, lz); err != nil {
		return err
	}
	if err := ShiftR(tb, lz); err != nil {
		return err
	}

	for !ta.IsZero() {
		if tz := Lsb(ta); tz > 0 {
			if err := ShiftR(ta, tz); err != nil {
				return err
			}
		}
		if tz := Lsb(tb); tz > 0 {
			if err := ShiftR(tb, tz); err != nil {
				return err
			}
		}
		if CmpAbs(ta, tb) >= 0 {
			if err := Sub(ta, ta, tb); err != nil {
				return err
			}
			if err := ShiftR(ta, 1); err != nil {
				return err
			}
		} else {
			if err := Sub(tb, tb, ta); err != nil {
				return err
			}
			if err := ShiftR(tb, 1); err != nil {
				return err
			}
		}
	}
	if err := ShiftL(tb, lz); err != nil {
		return err
	}
	return Copy(g, tb)
}

// LCM sets L := lcm(|A|, |B|) = |A*B| / gcd(A,B), exercising the
// gcd(A,B)*lcm(A,B) = |A*B| identity directly as library surface.
func LCM(l, a, b *MPI) error {
	g := New()
	if err := GCD(g, a, b); err != nil {
		return err
	}
	if g.IsZero() {
		l.Free()
		return nil
	}
	prod := New()
	if err := Mul(prod, a, b); err != nil {
		return err
	}
	prod.Sign = 1
	return DivMod(l, nil, prod, g)
}

// InvMod sets X := A^-1 mod N via the extended binary GCD (HAC
// §4.8). N must be positive. Fails ErrNotAcceptable if gcd(A,N) != 1.
func InvMod(x, a, n *MPI) error {
	if n.IsZero() || n.Sign < 0 {
		return newErr("mpi.InvMod", ErrBadInput, "modulus must be positive")
	}
	if n.effLen() == 1 && n.limbs[0] == 1 {
		return Lset(x, 0)
	}

	g := New()
	if err := GCD(g, a, n); err != nil {
		return err
	}
	if CmpInt(g, 1) != 0 {
		return newErr("mpi.InvMod", ErrNotAcceptable, "gcd(A,N) != 1")
	}

	// TA and TB stay fixed for the whole algorithm: TA = A mod N, the
	// residue being inverted; TB = N, the modulus. TU and TV are the
	// mutable loop variables the binary steps whittle down to zero.
	ta := New()
	if err := Mod(ta, a, n); err != nil {
		return err
	}
	tb := New()
	if err := Copy(tb, n); err != nil {
		return err
	}
	tu, tv := New(), New()
	if err := Copy(tu, ta); err != nil {
		return err
	}
	if err := Copy(tv, tb); err != nil {
		return err
	}

	u1, u2 := New(), New()
	v1, v2 := New(), New()
	if err := Lset(u1, 1); err != nil {
		return err
	}
	if err := Lset(u2, 0); err != nil {
		return err
	}
	if err := Lset(v1, 0); err != nil {
		return err
	}
	if err := Lset(v2, 1); err != nil {
		return err
	}

	for {
		for !odd1(tu) {
			if err := ShiftR(tu, 1); err != nil {
				return err
			}
			if odd1(u1) || odd1(u2) {
				if err := Add(u1, u1, tb); err != nil {
					return err
				}
				if err := Sub(u2, u2, ta); err != nil {
					return err
				}
			}
			if err := ShiftR(u1, 1); err != nil {
				return err
			}
			if err := ShiftR(u2, 1); err != nil {
				return err
			}
		}

		for !odd1(tv) {
			if err := ShiftR(tv, 1); err != nil {
				return err
			}
			if odd1(v1) || odd1(v2) {
				if err := Add(v1, v1, tb); err != nil {
					return err
				}
				if err := Sub(v2, v2, ta); err != nil {
					return err
				}
			}
			if err := ShiftR(v1, 1); err != nil {
				return err
			}
			if err := ShiftR(v2, 1); err != nil {
				return err
			}
		}

		if CmpAbs(tu, tv) >= 0 {
			if err := Sub(tu, tu, tv); err != nil {
				return err
			}
			if err := Sub(u1, u1, v1); err != nil {
				return err
			}
			if err := Sub(u2, u2, v2); err != nil {
				return err
			}
		} else {
			if err := Sub(tv, tv, tu); err != nil {
				return err
			}
			if err := Sub(v1, v1, u1); err != nil {
				return err
			}
			if err := Sub(v2, v2, u2); err != nil {
				return err
			}
		}

		if tu.IsZero() {
			break
		}
	}

	for v1.Sign < 0 {
		if err := Add(v1, v1, n); err != nil {
			return err
		}
	}
	for Cmp(v1, n) >= 0 {
		if err := Sub(v1, v1, n); err != nil {
			return err
		}
	}
	return Copy(x, v1)
}

// odd1 reports whether x's magnitude is odd.
func odd1(x *MPI) bool {
	return x.effLen() > 0 && x.limbs[0]&1 == 1
}
