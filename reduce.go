// reduce.go - balanced mod-q coefficient reduction.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

// balancedPow2 reduces a coefficient modulo a power-of-two q (q = 1<<qBits)
// to its balanced representative in [-q/2, q/2), via mask-and-sign-extend:
// coef &= q-1; coef |= -(coef & (q/2)). A residue of exactly q/2 folds to
// -q/2.
func balancedPow2(coef int64, q int32, qBits uint) int32 {
	mask := int64(q) - 1
	half := int64(1) << (qBits - 1)
	coef &= mask
	if coef&half != 0 {
		coef |= ^mask
	}
	return int32(coef)
}

// balancedPrime reduces a coefficient modulo a prime q to its balanced
// representative in (-q/2, q/2], via Euclidean mod followed by a
// conditional add/subtract.
func balancedPrime(coef int64, q int32) int32 {
	m := coef % int64(q)
	if m < 0 {
		m += int64(q)
	}
	half := int64(q) / 2
	if m > half {
		m -= int64(q)
	}
	return int32(m)
}

// balance reduces coef modulo p.q to its balanced representative, selecting
// Shape A or Shape B per the parameter set's q.
func (p *ParamSet) balance(coef int64) int32 {
	if p.qIsPowerOfTwo {
		return balancedPow2(coef, p.q, p.qBits)
	}
	return balancedPrime(coef, p.q)
}

// negMod3Table is the (-2,-1,0,1,2) -> (1,-1,0,1,-1) mapping from
// spec.md §4.6, indexed by (a % 3) + 2. Go's %, like C's, truncates toward
// zero, so a % 3 for a in [-2,2] lands in [-2,2] and indexes this table
// directly without an extra normalization step.
var negMod3Table = [5]int32{1, -1, 0, 1, -1}

// negMod3 maps a PolyMul output coefficient to its balanced representative
// modulo 3. a % 3 lies in [-2,2] for every int32 a, so any balanced mod-q
// coefficient maps to -1, 0 or +1 without a bounds check; a corrupted
// coefficient surfaces later as a decodeMsg integrity failure.
func negMod3(a int32) int32 {
	m := a % 3
	return negMod3Table[m+2]
}
