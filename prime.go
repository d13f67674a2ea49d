package mpi

// smallPrimes is the fixed table of odd primes up to 997 used by
// CheckSmallFactors. 2 is handled separately since every
// candidate is first tested for evenness.
var smallPrimes = []int64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
	389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
	571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
	653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743,
	751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839,
	853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997,
}

// smallFactorResult is the tri-state CheckSmallFactors can return:
// the input is known prime, known composite, or undetermined by the
// table alone.
type smallFactorResult int

const (
	// SFUnknown: no table entry divided X and X exceeds the table; a
	// full Miller-Rabin pass is still required.
	SFUnknown smallFactorResult = iota
	// SFPrime: X is itself one of the table primes (or 2).
	SFPrime
	// SFComposite: a table prime divides X.
	SFComposite
)

// CheckSmallFactors rejects even X outright, then trial-divides by the
// fixed table of odd primes up to 997.
func CheckSmallFactors(x *MPI) (smallFactorResult, error) {
	if x.effLen() > 0 && x.limbs[0]&1 == 0 {
		if CmpInt(x, 2) == 0 {
			return SFPrime, nil
		}
		return SFComposite, nil
	}
	for _, p := range smallPrimes {
		if CmpInt(x, p) == 0 {
			return SFPrime, nil
		}
		r := New()
		if err := Mod(r, x, intMPI(p)); err != nil {
			return SFUnknown, err
		}
		if r.IsZero() {
			return SFComposite, nil
		}
	}
	return SFUnknown, nil
}

func intMPI(z int64) *MPI {
	m := New()
	_ = Lset(m, z)
	return m
}

// millerRabinRounds returns the iteration count from HAC Table 4.4
// indexed by the candidate's bit size.
func millerRabinRounds(bits int) int {
	switch {
	case bits >= 1300:
		return 2
	case bits >= 850:
		return 3
	case bits >= 650:
		return 4
	case bits >= 350:
		return 8
	case bits >= 250:
		return 12
	case bits >= 150:
		return 18
	default:
		return 27
	}
}

// MillerRabin runs the probabilistic primality test on X with the
// round count from millerRabinRounds. Returns
// ErrNotAcceptable if any round witnesses compositeness.
func MillerRabin(x *MPI, rng RandomSource) error {
	w := New()
	if err := SubInt(w, x, 1); err != nil {
		return err
	}
	s := Lsb(w)
	r := New()
	if err := Copy(r, w); err != nil {
		return err
	}
	if err := ShiftR(r, s); err != nil {
		return err
	}

	rounds := millerRabinRounds(Msb(x))

	for i := 0; i < rounds; i++ {
		aVal, err := randomWitness(x, w, rng)
		if err != nil {
			return err
		}

		acc := New()
		if err := ExpMod(acc, aVal, r, x, nil); err != nil {
			return err
		}
		if CmpInt(acc, 1) == 0 || Cmp(acc, w) == 0 {
			continue
		}

		passed := false
		for j := 0; j < s-1; j++ {
			if err := Mul(acc, acc, acc); err != nil {
				return err
			}
			if err := Mod(acc, acc, x); err != nil {
				return err
			}
			if CmpInt(acc, 1) == 0 {
				return newErr("mpi.MillerRabin", ErrNotAcceptable, "composite witness at round %d", i)
			}
			if Cmp(acc, w) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return newErr("mpi.MillerRabin", ErrNotAcceptable, "no witness match at round %d", i)
		}
	}
	return nil
}

// randomWitness draws A uniformly in [2, X-2]: fill a candidate with
// X's bit size, re-roll (by a single right shift) while it lands at or
// above W = X-1, and force A >= 3 via the low two bits, the way
// §4.9.
func randomWitness(x, w *MPI, rng RandomSource) (*MPI, error) {
	a := New()
	if err := fillRandom(a, Msb(x), rng); err != nil {
		return nil, err
	}
	if Cmp(a, w) >= 0 {
		if err := ShiftR(a, 1); err != nil {
			return nil, err
		}
	}
	if a.effLen() == 0 {
		if err := Lset(a, 3); err != nil {
			return nil, err
		}
		return a, nil
	}
	a.limbs[0] |= 0x3
	return a, nil
}

// IsPrime implements the full primality pipeline: trivial cases for
// X in {0,1,2}, then CheckSmallFactors, then MillerRabin.
func IsPrime(x *MPI, rng RandomSource) error {
	switch CmpInt(x, 2) {
	case -1:
		return newErr("mpi.IsPrime", ErrNotAcceptable, "X < 2")
	case 0:
		return nil
	}
	sf, err := CheckSmallFactors(x)
	if err != nil {
		return err
	}
	switch sf {
	case SFPrime:
		return nil
	case SFComposite:
		return newErr("mpi.IsPrime", ErrNotAcceptable, "small factor divides X")
	}
	return MillerRabin(x, rng)
}

// GenPrime fills X with a random nbits-bit prime. If
// safe is true, X is additionally constrained so that (X-1)/2 is also
// prime (a safe prime).
func GenPrime(x *MPI, nbits int, safe bool, rng RandomSource) error {
	if nbits < 3 {
		return newErr("mpi.GenPrime", ErrBadInput, "nbits must be >= 3")
	}
	if err := fillRandom(x, nbits, rng); err != nil {
		return err
	}
	// Force odd and, per RFC-style clamping, X == 3 mod 4.
	x.limbs[0] |= 0x3

	if !safe {
		for {
			if err := IsPrime(x, rng); err == nil {
				return nil
			} else if !isNotAcceptable(err) {
				return err
			}
			if err := AddInt(x, x, 2); err != nil {
				return err
			}
		}
	}

	// Safe-prime path: enforce X == 2 mod 3 so that (X-1)/2 is not
	// divisible by 3, then advance in steps of 12 to preserve both the
	// mod-4 and mod-3 constraints while testing X and Y = (X-1)/2.
	three := intMPI(3)
	rmod3 := New()
	if err := Mod(rmod3, x, three); err != nil {
		return err
	}
	switch {
	case CmpInt(rmod3, 2) == 0:
		// already X == 2 mod 3
	case CmpInt(rmod3, 1) == 0:
		if err := AddInt(x, x, 4); err != nil {
			return err
		}
	default: // rmod3 == 0
		if err := AddInt(x, x, 8); err != nil {
			return err
		}
	}

	y := New()
	for {
		if err := SubInt(y, x, 1); err != nil {
			return err
		}
		if err := ShiftR(y, 1); err != nil {
			return err
		}

		okX, err := quickComposite(x)
		if err != nil {
			return err
		}
		okY, err := quickComposite(y)
		if err != nil {
			return err
		}
		if !okX && !okY {
			if errX := MillerRabin(x, rng); errX == nil {
				if errY := MillerRabin(y, rng); errY == nil {
					return nil
				} else if !isNotAcceptable(errY) {
					return errY
				}
			} else if !isNotAcceptable(errX) {
				return errX
			}
		}
		if err := AddInt(x, x, 12); err != nil {
			return err
		}
	}
}

// quickComposite reports whether CheckSmallFactors alone already
// proves v composite, short-circuiting a Miller-Rabin pass.
func quickComposite(v *MPI) (bool, error) {
	sf, err := CheckSmallFactors(v)
	if err != nil {
		return false, err
	}
	return sf == SFComposite, nil
}

func isNotAcceptable(err error) bool {
	me, ok := err.(*MPIError)
	return ok && me.Code == ErrNotAcceptable
}
