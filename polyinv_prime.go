// polyinv_prime.go - inversion modulo (X^N - 1, q) for prime q.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// maxEuclidItersSlack bounds the extended-Euclid loop in invertPrime beyond
// its guaranteed N steps. Each step strictly drops the remainder's degree,
// so the algorithm terminates in at most deg(X^N-1) = N steps; the slack
// only exists to turn a hypothetical logic error into ErrNoInverse instead
// of an infinite loop.
const maxEuclidItersSlack = 4

// fqPoly is a dense polynomial over F_q: fqPoly[i] holds the coefficient of
// X^i, reduced into [0, q). A trimmed fqPoly never has a nonzero coefficient
// past its last element; the zero polynomial is the empty slice.
type fqPoly []int64

// fqDegree returns the index of a's highest nonzero coefficient, or -1 if a
// is the zero polynomial.
func fqDegree(a fqPoly) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

// fqTrim drops a's trailing zero coefficients.
func fqTrim(a fqPoly) fqPoly {
	return a[:fqDegree(a)+1]
}

func fqMod(x int64, q int32) int64 {
	m := x % int64(q)
	if m < 0 {
		m += int64(q)
	}
	return m
}

// fqInvScalar returns x's multiplicative inverse modulo the prime q, via
// the extended Euclidean algorithm on integers (q is small enough - at
// most 9829 in every parameter set - that this never needs more than
// int64 arithmetic).
func fqInvScalar(x int64, q int32) int64 {
	oldR, r := fqMod(x, q), int64(q)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		quot := oldR / r
		oldR, r = r, oldR-quot*r
		oldS, s = s, oldS-quot*s
	}
	return fqMod(oldS, q)
}

// fqSub returns a-b over F_q, coefficient-wise.
func fqSub(a, b fqPoly, q int32) fqPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	r := make(fqPoly, n)
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		r[i] = fqMod(av-bv, q)
	}
	return fqTrim(r)
}

// fqMulScalar returns c*a over F_q, coefficient-wise.
func fqMulScalar(a fqPoly, c int64, q int32) fqPoly {
	r := make(fqPoly, len(a))
	for i, v := range a {
		r[i] = fqMod(v*c, q)
	}
	return fqTrim(r)
}

// fqMul returns the full (unreduced) product a*b over F_q.
func fqMul(a, b fqPoly, q int32) fqPoly {
	if len(a) == 0 || len(b) == 0 {
		return fqPoly{}
	}
	r := make(fqPoly, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			r[i+j] = fqMod(r[i+j]+av*bv, q)
		}
	}
	return fqTrim(r)
}

// fqDivMod computes the quotient and remainder of a divided by b over
// F_q[X], by schoolbook long division. b must be nonzero.
func fqDivMod(a, b fqPoly, q int32) (quot, rem fqPoly) {
	degB := fqDegree(b)
	lead := fqInvScalar(b[degB], q)

	work := make(fqPoly, len(a))
	copy(work, a)
	degR := fqDegree(work)

	if degR < degB {
		return fqPoly{}, fqTrim(work)
	}

	quot = make(fqPoly, degR-degB+1)
	for degR >= degB {
		coef := fqMod(work[degR]*lead, q)
		shift := degR - degB
		quot[shift] = coef
		for i := 0; i <= degB; i++ {
			work[shift+i] = fqMod(work[shift+i]-coef*b[i], q)
		}
		for degR >= 0 && work[degR] == 0 {
			degR--
		}
	}
	return fqTrim(quot), fqTrim(work[:degR+1])
}

// invertPrime computes a's inverse modulo (X^N - 1, q) for prime q, by
// running the extended Euclidean algorithm over F_q[X] between a and the
// fixed modulus X^N - 1. This is the field-based inversion the reviewer
// pointed to: original_source/src/ntruenc_lcl.h declares a distinct
// per-strength ntruenc_sNNN_mod_inv_q for every prime-q strength (s215
// included), separate from the mod-2-lift routine shared by the
// power-of-two strengths - confirming the original also treats prime q as
// a different algorithm, not a variant input to the same lift. The
// function bodies themselves aren't present in the retrieved source tree,
// so this is the standard extended-Euclid generalization of invertMod2
// to a general field F_q, rather than a literal port; see DESIGN.md.
//
// The Newton lift invertPow2 uses cannot work here: it converges because
// the residual r = 1 - a*out is nilpotent in a 2-adic ring (r doubles its
// valuation each step until it vanishes mod 2^b), but F_q[X]/(X^N-1) for a
// prime q that does not divide N is a separable - hence reduced - ring
// with no nonzero nilpotents, so the same iteration never reaches zero.
func (p *ParamSet) invertPrime(dst, a *poly) error {
	q := p.q
	n := p.n

	modulus := make(fqPoly, n+1)
	modulus[0] = fqMod(-1, q)
	modulus[n] = 1

	r0 := modulus
	r1 := make(fqPoly, n)
	for i, c := range a.coeffs {
		r1[i] = fqMod(int64(c), q)
	}
	r1 = fqTrim(r1)

	t0 := fqPoly{0}
	t1 := fqPoly{1}

	for iter := 0; fqDegree(r1) >= 0; iter++ {
		if iter > n+maxEuclidItersSlack {
			return ErrNoInverse
		}
		quot, rem := fqDivMod(r0, r1, q)
		r0, r1 = r1, rem
		t0, t1 = t1, fqSub(t0, fqMul(quot, t1, q), q)
	}

	if fqDegree(r0) != 0 {
		// gcd(a, X^N-1) has positive degree: a shares a root with the
		// modulus and has no inverse.
		return ErrNoInverse
	}

	result := fqMulScalar(t0, fqInvScalar(r0[0], q), q)

	// Fold any coefficients at index >= N back into [0, N) using the
	// identity X^N ≡ 1, then carry the folded residues into dst.
	folded := make([]int64, n)
	for i, c := range result {
		folded[i%n] = fqMod(folded[i%n]+c, q)
	}
	for i, c := range folded {
		dst.coeffs[i] = p.balance(c)
	}
	return nil
}
