package ntruenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvertRoundTrip(t *testing.T) {
	for _, p := range allParamSets {
		prf := NewShake256PRF([]byte(p.name + " invert round trip"))

		var f, inv *poly
		for attempt := 0; attempt < maxKeygenAttempts; attempt++ {
			candidate := p.newPoly()
			require.NoError(t, p.sample(candidate, p.df, p.df, P, prf))
			candidate.coeffs[0] = p.balance(int64(candidate.coeffs[0]) + 1)

			invCandidate := p.newPoly()
			err := p.invert(invCandidate, candidate)
			if err == nil {
				f, inv = candidate, invCandidate
				break
			}
			require.ErrorIs(t, err, ErrNoInverse)
		}
		require.NotNil(t, f, "%s: no invertible f found within attempt budget", p.name)

		one := p.newPoly()
		p.mul(one, f, inv)

		want := p.newPoly()
		want.coeffs[0] = 1
		require.True(t, one.equal(want), "%s: f * f^-1 != 1", p.name)
	}
}

func TestInvertRejectsObviousNonInvertible(t *testing.T) {
	p := ParamSet112
	zero := p.newPoly()
	dst := p.newPoly()
	err := p.invert(dst, zero)
	require.ErrorIs(t, err, ErrNoInverse)
}

func TestIsOne(t *testing.T) {
	p := ParamSet112
	one := p.newPoly()
	one.coeffs[0] = 1
	require.True(t, isOne(one))

	notOne := p.newPoly()
	notOne.coeffs[0] = 1
	notOne.coeffs[1] = 1
	require.False(t, isOne(notOne))
}

func TestDegreeGF2(t *testing.T) {
	require.Equal(t, -1, degreeGF2([]byte{0, 0, 0}))
	require.Equal(t, 0, degreeGF2([]byte{1, 0, 0}))
	require.Equal(t, 2, degreeGF2([]byte{1, 0, 1}))
}
