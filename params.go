// params.go - NTRU parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

const (
	// P is the small secondary modulus used to isolate the message during
	// decryption. Fixed across every parameter set.
	P = 3

	// karatsubaThreshold is the polynomial length at and below which
	// PolyMul falls back to schoolbook multiplication. Picked within the
	// [6, 50] range the design allows.
	karatsubaThreshold = 32
)

var (
	// ParamSet112 targets the 112-bit security strength.
	ParamSet112 = newParamSet("NTRU-112", 401, 101, 131, 2048)

	// ParamSet128 targets the 128-bit security strength.
	ParamSet128 = newParamSet("NTRU-128", 439, 112, 146, 2048)

	// ParamSet192 targets the 192-bit security strength.
	ParamSet192 = newParamSet("NTRU-192", 593, 158, 197, 2048)

	// ParamSet215 targets the 215-bit security strength. This is the one
	// strength for which the canonical table only offers a prime modulus,
	// so it is also the strength that exercises PolyMul's prime-q shape
	// (Shape B) by default.
	ParamSet215 = newParamSet("NTRU-215", 739, 204, 246, 9829)

	// ParamSet256 targets the 256-bit security strength.
	ParamSet256 = newParamSet("NTRU-256", 743, 204, 247, 2048)

	// allParamSets lists every built-in parameter set, weakest first; used
	// by ParamSetForStrength and by tests that iterate over every
	// strength.
	allParamSets = []*ParamSet{
		ParamSet112,
		ParamSet128,
		ParamSet192,
		ParamSet215,
		ParamSet256,
	}
	allStrengths = []int{112, 128, 192, 215, 256}
)

// ParamSet is an NTRU parameter set: the ring dimension N, the secret
// sampling weights df/dg, and the outer modulus q. p is always 3 (see P).
type ParamSet struct {
	name string

	n  int
	df int
	dg int
	q  int32

	// qIsPowerOfTwo selects PolyMul's Shape A (mask-and-sign-extend) over
	// Shape B (64-bit accumulate, conditional subtract), and PolyInv's
	// Newton-lift path over its extended-Euclid path (polyinv.go).
	qIsPowerOfTwo bool
	qBits         uint // valid only when qIsPowerOfTwo

	// wide selects the wire format pack/unpack dispatch to: 12-bit packing
	// only has range for q <= 4096 (12 bits unsigned), so any larger q -
	// only the prime q=9829 family in the builtin table - must use the
	// 16-bit-per-coefficient format instead.
	wide bool

	msgMaxLen   int // floor((N - 16) / 8)
	packedLen12 int // ceil(N * 12 / 8), valid only when !wide
	packedLen16 int // 2 * N
	packedLen   int // the wire size pack/unpack actually use: packedLen16 if wide, else packedLen12
}

// Name returns the human readable name of the parameter set.
func (p *ParamSet) Name() string { return p.name }

// N returns the ring dimension.
func (p *ParamSet) N() int { return p.n }

// Df returns the Hamming-weight parameter used to sample f.
func (p *ParamSet) Df() int { return p.df }

// Dg returns the Hamming-weight parameter used to sample g.
func (p *ParamSet) Dg() int { return p.dg }

// Q returns the outer modulus.
func (p *ParamSet) Q() int32 { return p.q }

// MaxPlaintextLen returns the largest plaintext, in bytes, that can be
// encoded into a message polynomial of this ring dimension.
func (p *ParamSet) MaxPlaintextLen() int { return p.msgMaxLen }

// PrivateKeyLen returns the length, in bytes, of an encoded private key
// (f is one packed polynomial, same wire width as a public key).
func (p *ParamSet) PrivateKeyLen() int { return p.packedLen }

// PublicKeyLen returns the length, in bytes, of an encoded public key.
func (p *ParamSet) PublicKeyLen() int { return p.packedLen }

// CipherTextLen returns the length, in bytes, of an encoded ciphertext.
func (p *ParamSet) CipherTextLen() int { return p.packedLen }

// ParamSetForStrength returns the weakest built-in parameter set whose
// security strength is at least the requested value, mirroring the
// "start at the strongest, return the weakest meeting requirements" table
// scan of the original ntruenc_params_get.
func ParamSetForStrength(strength int) (*ParamSet, error) {
	var found *ParamSet
	for i := len(allParamSets) - 1; i >= 0; i-- {
		if allStrengths[i] >= strength {
			found = allParamSets[i]
		}
	}
	if found == nil {
		return nil, ErrParam
	}
	return found, nil
}

func newParamSet(name string, n, df, dg int, q int32) *ParamSet {
	p := &ParamSet{
		name: name,
		n:    n,
		df:   df,
		dg:   dg,
		q:    q,
	}

	if q&(q-1) == 0 {
		p.qIsPowerOfTwo = true
		bits := uint(0)
		for v := q; v > 1; v >>= 1 {
			bits++
		}
		p.qBits = bits
	}

	// 12-bit packing represents unsigned residues in [0, 4095]; q > 4096
	// needs the 16-bit format to avoid truncating high coefficients.
	p.wide = q > 4096

	p.msgMaxLen = (n - 16) / 8
	p.packedLen12 = (n*12 + 7) / 8
	p.packedLen16 = 2 * n
	if p.wide {
		p.packedLen = p.packedLen16
	} else {
		p.packedLen = p.packedLen12
	}

	return p
}
