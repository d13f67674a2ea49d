package mpi

import "github.com/johnjohnsp1/sgxmpi/internal/limb"

// Mul sets X := A * B. If X aliases A or B, the aliased
// operand(s) are copied to temporaries first since the schoolbook loop
// below writes through X's buffer while still reading A and B.
func Mul(x, a, b *MPI) error {
	if x == a || x == b {
		ta, tb := New(), New()
		if err := Copy(ta, a); err != nil {
			return err
		}
		if err := Copy(tb, b); err != nil {
			return err
		}
		return Mul(x, ta, tb)
	}

	na, nb := a.effLen(), b.effLen()
	sign := a.Sign * b.Sign
	if na == 0 || nb == 0 {
		x.Free()
		return nil
	}
	if err := Grow(x, na+nb); err != nil {
		return err
	}
	zeroize(x.limbs)

	for j := 0; j < nb; j++ {
		bj := b.limbs[j]
		if bj == 0 {
			continue
		}
		c := limb.AddMulVVW(x.limbs[j:j+na], a.limbs[:na], bj)
		// Propagate the carry out of this row past the row's own top
		// limb, continuing as long as it overflows (muladdc's tail
		// loop).
		k := j + na
		for c != 0 && k < len(x.limbs) {
			sum := x.limbs[k] + c
			x.limbs[k] = sum
			if sum < c {
				c = 1
			} else {
				c = 0
			}
			k++
		}
	}
	x.Sign = sign
	return nil
}

// MulInt sets X := A * b for a small scalar b via the transient
// single-limb view. The result sign is sign(A)*sign(b): negative b is
// accepted and folds into the result sign, which keeps the `*_int`
// family total over int64. io.go uses it for digit accumulation.
func MulInt(x, a *MPI, b int64) error {
	var buf [1]Word
	return Mul(x, a, oneLimbView(&buf, b))
}
