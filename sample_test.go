package ntruenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleHammingWeight(t *testing.T) {
	p := ParamSet112
	prf := NewShake128PRF([]byte("sample hamming weight"))

	a := p.newPoly()
	require.NoError(t, p.sample(a, 10, 10, 1, prf))

	neg, zero, pos := a.histogram()
	require.Equal(t, 10, pos)
	require.Equal(t, 10, neg)
	require.Equal(t, p.n-20, zero)
}

func TestSampleKeygenWeights(t *testing.T) {
	for _, p := range allParamSets {
		prf := NewShake128PRF([]byte(p.name + " keygen weights"))

		f := p.newPoly()
		require.NoError(t, p.sample(f, p.df, p.df, 1, prf))
		neg, zero, pos := f.histogram()
		require.Equal(t, p.df, pos)
		require.Equal(t, p.df, neg)
		require.Equal(t, p.n-2*p.df, zero)

		g := p.newPoly()
		require.NoError(t, p.sample(g, p.dg, p.dg, 1, prf))
		neg, zero, pos = g.histogram()
		require.Equal(t, p.dg, pos)
		require.Equal(t, p.dg, neg)
		require.Equal(t, p.n-2*p.dg, zero)
	}
}

func TestSampleRejectsOverweight(t *testing.T) {
	p := ParamSet112
	prf := NewShake128PRF([]byte("overweight"))
	a := p.newPoly()
	err := p.sample(a, p.n, p.n, 1, prf)
	require.ErrorIs(t, err, ErrBadData)
}

func TestSampleIsPermutation(t *testing.T) {
	p := ParamSet112
	prf := NewShake128PRF([]byte("permutation check"))
	a := p.newPoly()
	require.NoError(t, p.sample(a, 50, 50, 1, prf))

	seen := make(map[int32]int)
	for _, c := range a.coeffs {
		seen[c]++
	}
	require.Equal(t, 50, seen[1])
	require.Equal(t, 50, seen[-1])
	require.Equal(t, p.n-100, seen[0])
}
