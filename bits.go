package mpi

import "github.com/johnjohnsp1/sgxmpi/internal/limb"

// Lsb returns the index of the least-significant set bit of X, or 0 if
// X is zero.
func Lsb(x *MPI) int {
	n := x.effLen()
	for i := 0; i < n; i++ {
		if x.limbs[i] != 0 {
			return i*W + limb.Ntz(x.limbs[i])
		}
	}
	return 0
}

// Msb returns the one-based index of the most-significant set bit of X,
// or 0 if X is zero. Callers use this to size buffers before shifts and
// Montgomery setup.
func Msb(x *MPI) int {
	n := x.effLen()
	if n == 0 {
		return 0
	}
	return (n-1)*W + limb.BitLen(x.limbs[n-1])
}

// SizeBytes returns ceil(Msb(X)/8), the minimum number of big-endian
// bytes needed to hold X's magnitude.
func SizeBytes(x *MPI) int {
	return (Msb(x) + 7) / 8
}

// ShiftL shifts X left by k bits in place, growing X as needed to hold
// Msb(X)+k bits.
func ShiftL(x *MPI, k int) error {
	if k < 0 {
		return newErr("mpi.ShiftL", ErrBadInput, "negative shift %d", k)
	}
	if k == 0 || x.IsZero() {
		return nil
	}
	newBits := Msb(x) + k
	newLen := (newBits + W - 1) / W
	if newLen < x.effLen() {
		newLen = x.effLen()
	}
	if err := Grow(x, newLen); err != nil {
		return err
	}
	wordShift := k / W
	bitShift := uint(k % W)

	if wordShift > 0 {
		for i := len(x.limbs) - 1; i >= wordShift; i-- {
			x.limbs[i] = x.limbs[i-wordShift]
		}
		for i := 0; i < wordShift && i < len(x.limbs); i++ {
			x.limbs[i] = 0
		}
	}
	if bitShift > 0 {
		var carry Word
		for i := wordShift; i < len(x.limbs); i++ {
			v := x.limbs[i]
			x.limbs[i] = (v << bitShift) | carry
			carry = v >> (W - bitShift)
		}
	}
	return nil
}

// ShiftR shifts X right by k bits in place. If k is at least the full
// allocated bit width, X becomes zero.
func ShiftR(x *MPI, k int) error {
	if k < 0 {
		return newErr("mpi.ShiftR", ErrBadInput, "negative shift %d", k)
	}
	if k == 0 || x.IsZero() {
		return nil
	}
	if k >= len(x.limbs)*W {
		zeroize(x.limbs)
		x.Sign = 1
		return nil
	}
	wordShift := k / W
	bitShift := uint(k % W)
	n := len(x.limbs)

	if wordShift > 0 {
		copy(x.limbs, x.limbs[wordShift:])
		for i := n - wordShift; i < n; i++ {
			x.limbs[i] = 0
		}
	}
	if bitShift > 0 {
		top := n - wordShift
		var carry Word
		for i := top - 1; i >= 0; i-- {
			v := x.limbs[i]
			x.limbs[i] = (v >> bitShift) | carry
			carry = v << (W - bitShift)
		}
	}
	if x.IsZero() {
		x.Sign = 1
	}
	return nil
}
