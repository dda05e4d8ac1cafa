package ntruenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMsgRoundTrip(t *testing.T) {
	p := ParamSet128
	cases := [][]byte{
		{},
		{0x00, 0x01, 0xff},
		bytes.Repeat([]byte{0xa5}, p.MaxPlaintextLen()),
	}

	for _, m := range cases {
		mPoly := p.newPoly()
		require.NoError(t, p.encodeMsg(mPoly, m))

		got, l, err := p.decodeMsg(mPoly)
		require.NoError(t, err)
		require.Equal(t, len(m), l)
		require.Equal(t, m, got)
	}
}

func TestEncodeMsgTooLong(t *testing.T) {
	p := ParamSet128
	m := bytes.Repeat([]byte{0x00}, p.MaxPlaintextLen()+1)
	err := p.encodeMsg(p.newPoly(), m)
	require.ErrorIs(t, err, ErrBadLen)
}

func TestDecodeMsgDetectsZeroInLengthPrefix(t *testing.T) {
	p := ParamSet128
	mPoly := p.newPoly()
	require.NoError(t, p.encodeMsg(mPoly, []byte{0x42}))

	mPoly.coeffs[0] = 0 // corrupt a length-prefix bit
	_, _, err := p.decodeMsg(mPoly)
	require.ErrorIs(t, err, ErrBadData)
}

func TestDecodeMsgDetectsTamperedPadding(t *testing.T) {
	p := ParamSet128
	mPoly := p.newPoly()
	require.NoError(t, p.encodeMsg(mPoly, []byte{0x42}))

	mPoly.coeffs[p.n-1] = 1 // corrupt the zero-padding region
	_, _, err := p.decodeMsg(mPoly)
	require.ErrorIs(t, err, ErrBadData)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, p := range allParamSets {
		prf := NewShake128PRF([]byte(p.name + " pack round trip"))
		a := p.newPoly()
		require.NoError(t, p.sample(a, p.df, p.dg, 1, prf))

		packed := p.pack(a)
		require.Len(t, packed, p.packedLen)

		got, err := p.unpack(packed)
		require.NoError(t, err)
		require.True(t, a.equal(got), "%s: pack/unpack round trip mismatch", p.name)
	}
}

func TestUnpackRejectsBadLength(t *testing.T) {
	p := ParamSet128
	_, err := p.unpack(make([]byte, p.packedLen12-1))
	require.ErrorIs(t, err, ErrBadLen)
}

func TestPackWideUnpackWideRoundTrip(t *testing.T) {
	p := ParamSet128
	prf := NewShake128PRF([]byte("pack wide round trip"))
	a := p.newPoly()
	require.NoError(t, p.sample(a, p.df, p.dg, 1, prf))

	packed := p.packWide(a)
	require.Len(t, packed, p.packedLen16)

	got, err := p.unpackWide(packed)
	require.NoError(t, err)
	require.True(t, a.equal(got))
}

func TestUnpackWideRejectsBadLength(t *testing.T) {
	p := ParamSet128
	_, err := p.unpackWide(make([]byte, p.packedLen16-1))
	require.ErrorIs(t, err, ErrBadLen)
}
