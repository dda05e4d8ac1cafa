// scheme.go - NTRU key generation, encryption and decryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

import "io"

// maxKeygenAttempts bounds GenerateKeyPair's internal retry loop. f' is
// resampled and re-inverted on an ErrNoInverse draw (spec.md §4.6); this
// cap turns a pathological run of non-invertible samples into a returned
// error instead of an unbounded loop. In practice a single attempt almost
// always succeeds.
const maxKeygenAttempts = 64

// PrivateKey is an NTRU private key: the secret polynomial f, built from
// f' (sampled with weight (ParamSet.Df(), ParamSet.Df()) and values in
// {-p,0,+p}) by adding 1 to its constant term, so f ≡ 1 (mod p).
type PrivateKey struct {
	params *ParamSet
	f      *poly
}

// PublicKey is an NTRU public key: h = f^-1 * g mod q.
type PublicKey struct {
	params *ParamSet
	h      *poly
}

// Params returns the parameter set a private key was generated under.
func (k *PrivateKey) Params() *ParamSet { return k.params }

// Params returns the parameter set a public key was generated under.
func (k *PublicKey) Params() *ParamSet { return k.params }

// Bytes serializes a private key to this key's parameter set's wire
// format (spec.md §4.5, §6; 12-bit or 16-bit per ParamSet.wide).
func (k *PrivateKey) Bytes() []byte {
	return k.params.pack(k.f)
}

// PrivateKeyFromBytes decodes a private key packed by Bytes, under params.
func PrivateKeyFromBytes(params *ParamSet, data []byte) (*PrivateKey, error) {
	f, err := params.unpack(data)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{params: params, f: f}, nil
}

// Bytes serializes a public key to this key's parameter set's wire format.
func (k *PublicKey) Bytes() []byte {
	return k.params.pack(k.h)
}

// PublicKeyFromBytes decodes a public key packed by Bytes, under params.
func PublicKeyFromBytes(params *ParamSet, data []byte) (*PublicKey, error) {
	h, err := params.unpack(data)
	if err != nil {
		return nil, err
	}
	return &PublicKey{params: params, h: h}, nil
}

// Destroy scrubs a private key's secret polynomial. Supplements the
// lifecycle behavior of original_source/src/ntruenc_key.c's
// NTRUENC_PRIV_KEY_final (which frees key->f) with Go's equivalent:
// zeroing the backing array before the key becomes garbage. The key must
// not be used after Destroy.
func (k *PrivateKey) Destroy() {
	k.f.zeroize()
}

// GenerateKeyPair runs KeyGen from spec.md §4.6: sample f' and g with the
// parameter set's Hamming weights and values in {-p,0,+p}, form f from f'
// by adding 1 to its constant term, invert f modulo q, and set
// h = f^-1 * g mod q. entropy supplies the seed for the PRF that backs
// both samples, following the teacher's crypto/rand.Reader convention
// rather than a caller-supplied PRF, so a caller can pass crypto/rand.Reader
// directly.
//
// A sampled f that has no inverse modulo q causes an internal resample,
// up to maxKeygenAttempts times, before ErrNoInverse is surfaced; spec.md
// §4.4 notes this is expected to be rare for the parameter sets in §6.
func GenerateKeyPair(params *ParamSet, entropy io.Reader) (*PrivateKey, *PublicKey, error) {
	if params == nil {
		return nil, nil, ErrParam
	}

	seed := make([]byte, 32)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return nil, nil, ErrRandom
	}
	prf := NewShake256PRF(seed)

	fPrime := params.newPoly()
	g := params.newPoly()
	f := params.newPoly()
	fInv := params.newPoly()
	h := params.newPoly()

	for attempt := 0; attempt < maxKeygenAttempts; attempt++ {
		if err := params.sample(fPrime, params.df, params.df, P, prf); err != nil {
			return nil, nil, err
		}
		if err := params.sample(g, params.dg, params.dg, P, prf); err != nil {
			return nil, nil, err
		}

		copy(f.coeffs, fPrime.coeffs)
		f.coeffs[0] = params.balance(int64(f.coeffs[0]) + 1)

		err := params.invert(fInv, f)
		if err == nil {
			params.mul(h, fInv, g)
			return &PrivateKey{params: params, f: f.clone()}, &PublicKey{params: params, h: h}, nil
		}
		if err != ErrNoInverse {
			return nil, nil, err
		}
	}

	return nil, nil, ErrNoInverse
}

// Encrypt runs Encrypt from spec.md §4.6: encode m into a message
// polynomial, sample a blinding polynomial r with weight df (reusing the
// f-sampling weight, per spec.md §4.6 step 2) and values in {-1,0,+1},
// and return pack(r*h + m). entropy seeds the PRF backing r, the same
// crypto/rand.Reader convention GenerateKeyPair uses.
func Encrypt(pub *PublicKey, m []byte, entropy io.Reader) ([]byte, error) {
	params := pub.params

	mPoly := params.newPoly()
	if err := params.encodeMsg(mPoly, m); err != nil {
		return nil, err
	}

	seed := make([]byte, 32)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return nil, ErrRandom
	}
	prf := NewShake128PRF(seed)

	r := params.newPoly()
	if err := params.sample(r, params.df, params.df, 1, prf); err != nil {
		return nil, err
	}

	e := params.newPoly()
	params.mul(e, r, pub.h)
	params.add(e, e, mPoly)

	return params.pack(e), nil
}

// Decrypt runs Decrypt from spec.md §4.6: c = f*e mod q, reduce each
// coefficient modulo p via negMod3, then decode the resulting ternary
// polynomial back into bytes. A ciphertext that round-trips to a
// structurally invalid message polynomial surfaces ErrBadData.
func Decrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	params := priv.params

	e, err := params.unpack(ciphertext)
	if err != nil {
		return nil, err
	}

	c := params.newPoly()
	params.mul(c, priv.f, e)

	mPoly := params.newPoly()
	for i, v := range c.coeffs {
		mPoly.coeffs[i] = negMod3(v)
	}

	m, _, err := params.decodeMsg(mPoly)
	return m, err
}
