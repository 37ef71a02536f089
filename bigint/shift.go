package bigint

// Lsh shifts a left by n bits (0..319) in place, discarding bits
// shifted out past bit 319.
func (a *Int) Lsh(n uint) {
	if n == 0 {
		return
	}
	if n >= Bits {
		a.Clear()
		return
	}
	limbShift := int(n / 64)
	bitShift := n % 64
	var out [Limbs]uint64
	for i := Limbs - 1; i >= 0; i-- {
		srcIdx := i - limbShift
		if srcIdx < 0 {
			continue
		}
		v := a.n[srcIdx] << bitShift
		if bitShift > 0 && srcIdx-1 >= 0 {
			v |= a.n[srcIdx-1] >> (64 - bitShift)
		}
		out[i] = v
	}
	a.n = out
}

// Rsh performs an arithmetic (sign-extending) right shift of a by n
// bits (0..319) in place.
func (a *Int) Rsh(n uint) {
	sign := a.IsNegative()
	var fill uint64
	if sign {
		fill = ^uint64(0)
	}
	if n >= Bits {
		for i := range a.n {
			a.n[i] = fill
		}
		return
	}
	if n == 0 {
		return
	}
	limbShift := int(n / 64)
	bitShift := n % 64
	var out [Limbs]uint64
	for i := 0; i < Limbs; i++ {
		srcIdx := i + limbShift
		var v uint64
		if srcIdx >= Limbs {
			v = fill
		} else {
			v = a.n[srcIdx] >> bitShift
			if bitShift > 0 {
				var hiWord uint64
				if srcIdx+1 >= Limbs {
					hiWord = fill
				} else {
					hiWord = a.n[srcIdx+1]
				}
				v |= hiWord << (64 - bitShift)
			}
		}
		out[i] = v
	}
	a.n = out
}

// RshUnsigned performs a logical (zero-filling) right shift, used by
// callers that know the value is a non-negative unsigned magnitude and
// want bits shifted in from zero rather than sign-extended.
func (a *Int) RshUnsigned(n uint) {
	if n >= Bits {
		a.Clear()
		return
	}
	if n == 0 {
		return
	}
	limbShift := int(n / 64)
	bitShift := n % 64
	var out [Limbs]uint64
	for i := 0; i < Limbs; i++ {
		srcIdx := i + limbShift
		var v uint64
		if srcIdx < Limbs {
			v = a.n[srcIdx] >> bitShift
			if bitShift > 0 && srcIdx+1 < Limbs {
				v |= a.n[srcIdx+1] << (64 - bitShift)
			}
		}
		out[i] = v
	}
	a.n = out
}

// Lsh64 shifts left by exactly one limb (64 bits). Div and ModInverse
// do not call it; they shift one bit at a time.
func (a *Int) Lsh64() {
	for i := Limbs - 1; i > 0; i-- {
		a.n[i] = a.n[i-1]
	}
	a.n[0] = 0
}

// Rsh64 shifts right by exactly one limb (64 bits), sign-extending the
// vacated top limb.
func (a *Int) Rsh64() {
	sign := a.IsNegative()
	for i := 0; i < Limbs-1; i++ {
		a.n[i] = a.n[i+1]
	}
	if sign {
		a.n[Limbs-1] = ^uint64(0)
	} else {
		a.n[Limbs-1] = 0
	}
}
