// polymul.go - recursive Karatsuba multiplication modulo (X^N - 1, q).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// mul computes dst[k] = sum_{i+j ≡ k (mod N)} a[i]*b[j] for 0 <= k < N, then
// reduces every coefficient to its balanced representative (see balance).
// dst must not alias a or b.
//
// This is PolyMul from spec.md §4.3: a linear convolution via recursive
// Karatsuba (terminating in schoolbook multiplication at karatsubaThreshold),
// folded to length N through the ring relation X^N ≡ 1, then balanced.
// Accumulation is int64 throughout rather than switching to a 16-bit fast
// path for power-of-two q (see DESIGN.md): the two shapes in spec.md §4.3
// differ only in their final coefficient reduction, not in the convolution
// itself, and ParamSet.balance already dispatches that final step between
// Shape A (mask-and-sign-extend) and Shape B (mod + conditional adjust)
// per q, the same "pick the implementation once, dispatch through it"
// idiom the teacher uses for nttFn/invnttFn in its now-removed hwaccel.go.
func (p *ParamSet) mul(dst, a, b *poly) {
	wide := make([]int64, 2*p.n-1)
	convolveInto(wide, toInt64(a.coeffs), toInt64(b.coeffs))

	// Fold r[k] += r[k+N] for 0 <= k < N-1 (spec.md §4.3).
	for k := 0; k < p.n-1; k++ {
		wide[k] += wide[k+p.n]
	}

	for k := 0; k < p.n; k++ {
		dst.coeffs[k] = p.balance(wide[k])
	}
}

func toInt64(a []int32) []int64 {
	r := make([]int64, len(a))
	for i, v := range a {
		r[i] = int64(v)
	}
	return r
}

// convolveInto adds the linear convolution of a and b (len(a) == len(b))
// into dst (len(dst) == 2*len(a)-1). dst is assumed pre-sized and zeroed
// by the caller.
func convolveInto(dst, a, b []int64) {
	for i, v := range convolve(a, b) {
		dst[i] += v
	}
}

// convolve returns the linear convolution of a and b, a slice of length
// 2*len(a)-1. Requires len(a) == len(b).
func convolve(a, b []int64) []int64 {
	l := len(a)
	if l <= karatsubaThreshold {
		return schoolbook(a, b)
	}

	half := (l + 1) / 2
	lowA, highA := a[:half], a[half:]
	lowB, highB := b[:half], b[half:]

	t1 := convolve(lowA, lowB)   // length 2*half-1
	t3 := convolve(highA, highB) // length 2*(l-half)-1

	sumA := make([]int64, half)
	copy(sumA, lowA)
	for i, v := range highA {
		sumA[i] += v
	}
	sumB := make([]int64, half)
	copy(sumB, lowB)
	for i, v := range highB {
		sumB[i] += v
	}
	t2 := convolve(sumA, sumB) // length 2*half-1

	mid := make([]int64, len(t2))
	copy(mid, t2)
	for i, v := range t1 {
		mid[i] -= v
	}
	for i, v := range t3 {
		mid[i] -= v
	}

	result := make([]int64, 2*l-1)
	for i, v := range t1 {
		result[i] += v
	}
	for i, v := range mid {
		result[i+half] += v
	}
	for i, v := range t3 {
		result[i+2*half] += v
	}
	return result
}

// schoolbook computes the O(L^2) linear convolution directly; the recursion
// base case below karatsubaThreshold.
func schoolbook(a, b []int64) []int64 {
	r := make([]int64, 2*len(a)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			r[i+j] += av * bv
		}
	}
	return r
}
