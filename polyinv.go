// polyinv.go - inversion modulo (X^N - 1, q).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// maxNewtonIters bounds the Newton-lift loop in invertPow2. Convergence
// doubles the 2-adic valuation of the residual each step (spec.md §4.4),
// so a handful of iterations covers every power-of-two q in the parameter
// table; the
// cap only exists to turn a hypothetical non-convergent seed into
// ErrNoInverse instead of an infinite loop.
const maxNewtonIters = 24

// invert computes dst such that (a * dst) mod (X^N - 1, q) = 1, or returns
// ErrNoInverse. This is PolyInv from spec.md §4.4, dispatched by q's shape
// the same way PolyMul dispatches its final reduction (see polymul.go):
// power-of-two q lifts a mod-2 inverse via Newton iteration (invertPow2);
// prime q instead runs extended Euclid directly over F_q (invertPrime, in
// polyinv_prime.go) because the Newton lift's convergence argument relies
// on the residual being nilpotent, which only holds in the 2-adic ring a
// power-of-two q gives — see DESIGN.md.
func (p *ParamSet) invert(dst, a *poly) error {
	if p.qIsPowerOfTwo {
		return p.invertPow2(dst, a)
	}
	return p.invertPrime(dst, a)
}

// invertPow2 computes a's inverse modulo (X^N - 1, q) for power-of-two q:
// invert a modulo 2, then Newton-lift the mod-2 inverse to the full
// modulus q. The residual r = 1 - a*out halves its 2-adic valuation's
// complement each step (r doubles in the sense r_{n+1} = r_n^2), and since
// q = 2^b the residual is nilpotent mod q (r_0 ≡ 0 mod 2), so the lift
// reaches the exact inverse in ⌈log2(b)⌉ steps.
func (p *ParamSet) invertPow2(dst, a *poly) error {
	seed := p.newPoly()
	if err := p.invertMod2(seed, a); err != nil {
		return err
	}

	out := seed
	for iter := 0; iter < maxNewtonIters; iter++ {
		t := p.newPoly()
		p.mul(t, a, out)

		if isOne(t) {
			copy(dst.coeffs, out.coeffs)
			return nil
		}

		s := p.newPoly()
		for i := range s.coeffs {
			target := int64(0)
			if i == 0 {
				target = 2
			}
			s.coeffs[i] = p.balance(target - int64(t.coeffs[i]))
		}

		next := p.newPoly()
		p.mul(next, out, s)
		out = next
	}

	return ErrNoInverse
}

func isOne(a *poly) bool {
	if a.coeffs[0] != 1 {
		return false
	}
	for i := 1; i < len(a.coeffs); i++ {
		if a.coeffs[i] != 0 {
			return false
		}
	}
	return true
}

// invertMod2 computes dst such that (a * dst) ≡ 1 (mod 2, X^N - 1), via the
// classical almost-inverse algorithm for GF(2)[X]/(X^N - 1): a degree-
// tracking binary-Euclidean reduction with a rotation counter k, the same
// shape of algorithm as original_source/src/ntruenc_inv.h's
// NTRUENC_MOD_INV_2 (two running (value, remainder) pairs reduced against
// each other until the remainder degenerates to the unit polynomial). This
// implementation uses plain degree tracking over byte slices rather than
// the C original's sliding-window pointer arithmetic into a shared buffer,
// since the contract only requires the same result, not the same memory
// layout; see DESIGN.md.
func (p *ParamSet) invertMod2(dst, a *poly) error {
	n := p.n

	f := make([]byte, n+1)
	g := make([]byte, n+1)
	for i := 0; i < n; i++ {
		f[i] = byte(a.coeffs[i]) & 1
	}
	g[0] = 1
	g[n] = 1

	b := make([]byte, 2*n+4)
	c := make([]byte, 2*n+4)
	b[0] = 1

	degF := degreeGF2(f)
	degG := n
	k := 0

	for iter := 0; ; iter++ {
		if iter > 4*n+16 {
			return ErrNoInverse
		}
		if degF < 0 {
			return ErrNoInverse
		}

		for f[0] == 0 {
			copy(f, f[1:])
			f[len(f)-1] = 0
			copy(c[1:], c[:len(c)-1])
			c[0] = 0
			k++
			degF--
			if degF < 0 {
				return ErrNoInverse
			}
		}

		if degF == 0 {
			break
		}

		if degF < degG {
			f, g = g, f
			degF, degG = degG, degF
			b, c = c, b
		}

		xorBits(f, g)
		xorBits(b, c)
		degF = degreeGF2(f)
	}

	shift := ((n - (k % n)) % n)
	for i := range dst.coeffs {
		dst.coeffs[i] = 0
	}
	for i, v := range b {
		if v == 0 {
			continue
		}
		idx := (i + shift) % n
		dst.coeffs[idx] ^= 1
	}

	return nil
}

// degreeGF2 returns the index of the highest nonzero byte in a, or -1 if a
// is entirely zero.
func degreeGF2(a []byte) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

// xorBits computes dst ^= src in place over GF(2), dst and src same length.
func xorBits(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
