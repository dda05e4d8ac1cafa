// poly.go - NTRU polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// poly holds elements of R_q = Z_q[X]/(X^N - 1): coeffs[0] + X*coeffs[1] +
// ... + X^(N-1)*coeffs[N-1]. Unlike the teacher's poly (a fixed [256]uint16
// array, since Kyber's N is a single compile-time constant), N varies by
// parameter set here, so coeffs is sized at construction time from
// ParamSet.N().
//
// Coefficients are kept in balanced form after every public operation:
// (-q/2, q/2] for odd prime q, [-q/2, q/2) for power-of-two q (see balance).
type poly struct {
	coeffs []int32
}

// newPoly allocates a zeroed polynomial sized for p.
func (p *ParamSet) newPoly() *poly {
	return &poly{coeffs: make([]int32, p.n)}
}

// clone returns an independent copy of a.
func (a *poly) clone() *poly {
	c := &poly{coeffs: make([]int32, len(a.coeffs))}
	copy(c.coeffs, a.coeffs)
	return c
}

// zeroize overwrites a polynomial's coefficients, for use when releasing a
// buffer that held secret data (f, or a Karatsuba transient computed over
// f during keygen/decrypt). Mirrors the intent of the original's
// NTRUENC_PRIV_KEY_final freeing key->f, adapted to Go's GC world where
// "release" means "scrub before the slice becomes garbage" rather than
// "free".
func (a *poly) zeroize() {
	for i := range a.coeffs {
		a.coeffs[i] = 0
	}
}

// add computes dst = a + b, balanced mod q.
func (p *ParamSet) add(dst, a, b *poly) {
	for i := range dst.coeffs {
		dst.coeffs[i] = p.balance(int64(a.coeffs[i]) + int64(b.coeffs[i]))
	}
}

// equal reports whether a and b have identical coefficients.
func (a *poly) equal(b *poly) bool {
	if len(a.coeffs) != len(b.coeffs) {
		return false
	}
	for i := range a.coeffs {
		if a.coeffs[i] != b.coeffs[i] {
			return false
		}
	}
	return true
}
