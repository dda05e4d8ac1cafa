package ntruenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPRFDeterministic(t *testing.T) {
	seed := []byte("a fixed test seed")

	a := NewShake128PRF(seed)
	b := NewShake128PRF(seed)

	bufA := make([]byte, 256)
	bufB := make([]byte, 256)
	require.NoError(t, a.Fill(bufA))
	require.NoError(t, b.Fill(bufB))
	require.Equal(t, bufA, bufB)
}

func TestPRFDifferentSeedsDiverge(t *testing.T) {
	a := NewShake128PRF([]byte("seed one"))
	b := NewShake128PRF([]byte("seed two"))

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	require.NoError(t, a.Fill(bufA))
	require.NoError(t, b.Fill(bufB))
	require.NotEqual(t, bufA, bufB)
}

func TestPRFStreamContinues(t *testing.T) {
	a := NewShake128PRF([]byte("stream seed"))
	b := NewShake128PRF([]byte("stream seed"))

	whole := make([]byte, 64)
	require.NoError(t, a.Fill(whole))

	first := make([]byte, 32)
	second := make([]byte, 32)
	require.NoError(t, b.Fill(first))
	require.NoError(t, b.Fill(second))

	require.Equal(t, whole[:32], first)
	require.Equal(t, whole[32:], second)
}

func TestPRFFillUint16s(t *testing.T) {
	prf := NewShake256PRF([]byte("uint16 seed"))
	out := make([]uint16, 100)
	require.NoError(t, prf.fillUint16s(out))

	allZero := true
	for _, v := range out {
		if v != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero)
}

func TestSumFunctions(t *testing.T) {
	a := Sum256([]byte("data"))
	b := Sum256([]byte("data"))
	require.Equal(t, a, b)

	c := Sum512([]byte("data"))
	d := Sum512([]byte("other"))
	require.NotEqual(t, c, d)
}
