package mpi

// ExpMod sets X := A^E mod N using Montgomery multiplication driven by
// a sliding-window scan of E's bits. N must be positive
// and odd, and E must be non-negative.
//
// cache, if non-nil, holds the modulus-dependent Montgomery constants
// and R^2 mod N across repeated calls against the same N; see
// MontgomeryCache's doc comment for the sharing contract.
func ExpMod(x, a, e, n *MPI, cache *MontgomeryCache) error {
	if n.IsZero() || n.Sign < 0 {
		return newErr("mpi.ExpMod", ErrBadInput, "modulus must be positive")
	}
	nlen := n.effLen()
	if n.limbs[0]&1 == 0 {
		return newErr("mpi.ExpMod", ErrBadInput, "modulus must be odd")
	}
	if e.Sign < 0 {
		return newErr("mpi.ExpMod", ErrBadInput, "exponent must be non-negative")
	}

	mm, err := montgInit(n)
	if err != nil {
		return err
	}

	var rr *MPI
	if cache != nil && cache.rr != nil && cache.n == nlen {
		rr = cache.rr
	} else {
		rr, err = montgomeryRSquared(n)
		if err != nil {
			return err
		}
		if cache != nil {
			cache.n = nlen
			cache.mm = mm
			cache.rr = rr
		}
	}

	// Step 4: absolute-value A, remembering the sign for the final fixup.
	negA := a.Sign < 0
	absA := New()
	if err := Copy(absA, a); err != nil {
		return err
	}
	absA.Sign = 1

	aModN := New()
	if CmpAbs(absA, n) >= 0 {
		if err := Mod(aModN, absA, n); err != nil {
			return err
		}
	} else if err := Copy(aModN, absA); err != nil {
		return err
	}

	// Step 5: W[1] = (A mod N)*R mod N, i.e. A's Montgomery form.
	w1 := New()
	if err := montMul(w1, aModN, rr, n, mm); err != nil {
		return err
	}

	// Step 6: X = R mod N, the Montgomery form of 1.
	xAcc := New()
	if err := montRed(xAcc, rr, n, mm); err != nil {
		return err
	}

	// Step 2/7: choose the sliding-window width for this exponent.
	wsize := windowSize(Msb(e))
	if defaultConfig.MaxWindow > 0 && wsize > defaultConfig.MaxWindow {
		wsize = defaultConfig.MaxWindow
	}
	tableLen := 1 << wsize
	base := 1 << (wsize - 1)
	table := make([]*MPI, tableLen)
	table[base] = New()
	if err := Copy(table[base], w1); err != nil {
		return err
	}
	for i := uint(0); i < wsize-1; i++ {
		if err := montMul(table[base], table[base], table[base], n, mm); err != nil {
			return err
		}
	}
	for i := base + 1; i < tableLen; i++ {
		table[i] = New()
		if err := montMul(table[i], table[i-1], w1, n, mm); err != nil {
			return err
		}
	}

	// Step 8: scan E from MSB to LSB through the leading/collecting/
	// between state machine.
	const (
		stLeading = iota
		stCollecting
		stBetween
	)
	state := stLeading
	var pending []int // bits collected so far in the current window, MSB-first
	wbits := 0

	ebits := Msb(e)
	for pos := ebits - 1; pos >= 0; pos-- {
		bit := bitAt(e, pos)
		switch state {
		case stLeading:
			if bit == 0 {
				continue
			}
			state = stCollecting
			pending = pending[:0]
			pending = append(pending, 1)
			wbits = 1
		case stBetween:
			if bit == 0 {
				if err := montMul(xAcc, xAcc, xAcc, n, mm); err != nil {
					return err
				}
				continue
			}
			state = stCollecting
			pending = pending[:0]
			pending = append(pending, 1)
			wbits = 1
		case stCollecting:
			pending = append(pending, bit)
			wbits = wbits<<1 | bit
		}

		if state == stCollecting && len(pending) == int(wsize) {
			for s := uint(0); s < wsize; s++ {
				if err := montMul(xAcc, xAcc, xAcc, n, mm); err != nil {
					return err
				}
			}
			if err := montMul(xAcc, xAcc, table[wbits], n, mm); err != nil {
				return err
			}
			state = stBetween
			pending = pending[:0]
			wbits = 0
		}
	}

	// Step 9: flush a partial window one bit at a time.
	if state == stCollecting {
		for _, b := range pending {
			if err := montMul(xAcc, xAcc, xAcc, n, mm); err != nil {
				return err
			}
			if b == 1 {
				if err := montMul(xAcc, xAcc, w1, n, mm); err != nil {
					return err
				}
			}
		}
	}

	// Step 10: leave Montgomery form.
	if err := montRed(xAcc, xAcc, n, mm); err != nil {
		return err
	}

	// Step 11: A negative and E odd flips the sign via X := N - X.
	if negA && !e.IsZero() && bitAt(e, 0) == 1 && !xAcc.IsZero() {
		if err := Sub(xAcc, n, xAcc); err != nil {
			return err
		}
	}

	return Copy(x, xAcc)
}

func windowSize(ebits int) uint {
	switch {
	case ebits > 671:
		return 6
	case ebits > 239:
		return 5
	case ebits > 79:
		return 4
	case ebits > 23:
		return 3
	default:
		return 1
	}
}

// bitAt returns bit `pos` (0-indexed from the LSB) of x, or 0 if pos is
// beyond x's allocated width.
func bitAt(x *MPI, pos int) int {
	limbIdx := pos / W
	if limbIdx >= len(x.limbs) {
		return 0
	}
	return int((x.limbs[limbIdx] >> uint(pos%W)) & 1)
}
