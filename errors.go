// errors.go - ntruenc error taxonomy.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

import "errors"

var (
	// ErrBadLen is returned when a caller-supplied buffer is smaller than
	// the size a contract requires, or a plaintext is too long to encode
	// into the ring dimension in use.
	ErrBadLen = errors.New("ntruenc: buffer or plaintext has a bad length")

	// ErrBadData is returned when message decoding finds a coefficient
	// that is neither -1 nor +1 in a bit position, a non-zero value in the
	// zero-padding region, or a recovered length field out of range; also
	// returned by the Sampler when the requested weights d1+d2 exceed the
	// ring dimension N, since that request cannot correspond to a valid
	// ternary polynomial.
	ErrBadData = errors.New("ntruenc: decoded data failed an integrity check")

	// ErrNoInverse is returned when the sampled f has no inverse modulo q.
	// Callers of the lower-level PolyInv may retry with a fresh sample;
	// GenerateKeyPair retries internally.
	ErrNoInverse = errors.New("ntruenc: polynomial has no inverse modulo q")

	// ErrRandom is returned when the PRF reports exhaustion of its
	// backing entropy source.
	ErrRandom = errors.New("ntruenc: random source exhausted")

	// ErrParam is returned when a caller provides an unrecognized or
	// inconsistent (N, df, dg, q) tuple, or a nil handle where a valid one
	// is required.
	ErrParam = errors.New("ntruenc: invalid or inconsistent parameter set")
)
