package ntruenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// reference computes the same convolution as ParamSet.mul but always via
// the O(N^2) schoolbook path, for cross-checking Karatsuba's recursive
// split against a second independent implementation (spec.md §8 scenario
// 5).
func reference(p *ParamSet, a, b *poly) *poly {
	n := p.n
	wide := make([]int64, 2*n-1)
	for i, av := range a.coeffs {
		if av == 0 {
			continue
		}
		for j, bv := range b.coeffs {
			wide[i+j] += int64(av) * int64(bv)
		}
	}
	for k := 0; k < n-1; k++ {
		wide[k] += wide[k+n]
	}
	dst := p.newPoly()
	for k := 0; k < n; k++ {
		dst.coeffs[k] = p.balance(wide[k])
	}
	return dst
}

func TestPolyMulMatchesSchoolbookReference(t *testing.T) {
	for _, p := range allParamSets {
		prf := NewShake128PRF([]byte(p.name + " mul reference"))

		a := p.newPoly()
		b := p.newPoly()
		require.NoError(t, p.sample(a, p.df, p.df, 1, prf))
		require.NoError(t, p.sample(b, p.dg, p.dg, 1, prf))

		got := p.newPoly()
		p.mul(got, a, b)

		want := reference(p, a, b)
		require.True(t, got.equal(want), "%s: karatsuba diverged from schoolbook reference", p.name)
	}
}

func TestPolyMulIdentity(t *testing.T) {
	p := ParamSet128
	one := p.newPoly()
	one.coeffs[0] = 1

	prf := NewShake128PRF([]byte("mul identity"))
	a := p.newPoly()
	require.NoError(t, p.sample(a, p.df, p.df, 1, prf))

	dst := p.newPoly()
	p.mul(dst, a, one)
	require.True(t, dst.equal(a))
}

func TestPolyMulZero(t *testing.T) {
	p := ParamSet128
	zero := p.newPoly()

	prf := NewShake128PRF([]byte("mul zero"))
	a := p.newPoly()
	require.NoError(t, p.sample(a, p.df, p.df, 1, prf))

	dst := p.newPoly()
	p.mul(dst, a, zero)
	require.True(t, dst.equal(zero))
}

func TestPolyMulCommutative(t *testing.T) {
	p := ParamSet192
	prf := NewShake128PRF([]byte("mul commutative"))
	a := p.newPoly()
	b := p.newPoly()
	require.NoError(t, p.sample(a, p.df, p.df, 1, prf))
	require.NoError(t, p.sample(b, p.dg, p.dg, 1, prf))

	ab := p.newPoly()
	ba := p.newPoly()
	p.mul(ab, a, b)
	p.mul(ba, b, a)
	require.True(t, ab.equal(ba))
}
