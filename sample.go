// sample.go - fixed Hamming-weight ternary sampler.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// sample writes to dst a length-N polynomial with exactly d1 coefficients
// equal to +v, exactly d2 equal to -v, and the remaining N-d1-d2 zero.
//
// Grounded on original_source/src/ntruenc_rand.h's NTRUENC_RANDOM constant-
// time path (NTRUENC_RANDOM_CONSTANT_TIME): fill dst with d1 copies of +v,
// d2 copies of -v and zeros, draw one uint16 per position from the PRF, and
// Fisher-Yates shuffle using r[i] % (i+1) as the swap index walking from
// N-1 down to 1. The swap sequence depends only on the random tape, not on
// the data being shuffled, so it carries no secret-dependent branches or
// memory-access pattern.
func (p *ParamSet) sample(dst *poly, d1, d2 int, v int32, prf *PRF) error {
	n := p.n
	if d1+d2 > n {
		return ErrBadData
	}

	c := dst.coeffs
	i := 0
	for ; i < d1; i++ {
		c[i] = v
	}
	for ; i < d1+d2; i++ {
		c[i] = -v
	}
	for ; i < n; i++ {
		c[i] = 0
	}

	r := make([]uint16, n)
	if err := prf.fillUint16s(r); err != nil {
		return err
	}

	for i := n - 1; i > 0; i-- {
		j := int(r[i]) % (i + 1)
		c[i], c[j] = c[j], c[i]
	}

	return nil
}

// histogram counts the occurrences of -1, 0, and +1 in a ternary
// polynomial. Exposed unexported for use by tests asserting the fixed-
// Hamming-weight property of spec.md §8.
func (a *poly) histogram() (neg, zero, pos int) {
	for _, c := range a.coeffs {
		switch {
		case c < 0:
			neg++
		case c == 0:
			zero++
		default:
			pos++
		}
	}
	return
}
