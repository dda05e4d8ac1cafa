// prf.go - Keccak-based deterministic randomness source.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// PRF is a deterministic byte-stream extractor built on a keyed Keccak
// sponge (SHAKE-128 or SHAKE-256). It is the sole source of randomness for
// Sampler and for the encryption blinding polynomial; see spec.md §4.1.
//
// A PRF is stateful (each Fill call continues squeezing the same sponge
// instance) but is meant to be constructed fresh per Scheme operation, as
// documented in spec.md §9's "Sampler determinism vs. statefulness" design
// note: GenerateKeyPair and Encrypt each build their own PRF from a seed
// read from the caller's io.Reader rather than sharing one across calls
// (Decrypt uses no randomness), so there is no
// shared mutable PRF state requiring a mutex (spec.md §5).
type PRF struct {
	xof sha3.ShakeHash
}

// NewShake128PRF constructs a PRF backed by SHAKE-128 (rate 168 bytes),
// seeded deterministically from seed.
func NewShake128PRF(seed []byte) *PRF {
	xof := sha3.NewShake128()
	xof.Write(seed)
	return &PRF{xof: xof}
}

// NewShake256PRF constructs a PRF backed by SHAKE-256 (rate 136 bytes),
// seeded deterministically from seed. Used where a wider security margin
// on the randomness source is wanted than SHAKE-128 provides.
func NewShake256PRF(seed []byte) *PRF {
	xof := sha3.NewShake256()
	xof.Write(seed)
	return &PRF{xof: xof}
}

// Fill writes len(out) deterministic bytes into out, squeezed from the
// underlying sponge. Squeezing more than one block repeats the Keccak-f
// permutation internally; this is handled transparently by sha3.ShakeHash.
//
// Fill never actually fails for the in-process SHAKE-backed PRF (the sponge
// has unbounded output), but the contract in spec.md §4.1 allows a failure
// report on entropy exhaustion, so the method keeps the (error) return for
// any PRF implementation that wraps a bounded external entropy source.
func (r *PRF) Fill(out []byte) error {
	if _, err := io.ReadFull(r.xof, out); err != nil {
		return ErrRandom
	}
	return nil
}

// fillUint16s fills out with len(out) uniformly random uint16 words, read
// little-endian from the sponge. Used by the Sampler's Fisher-Yates shuffle.
func (r *PRF) fillUint16s(out []uint16) error {
	buf := make([]byte, 2*len(out))
	if err := r.Fill(buf); err != nil {
		return err
	}
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}
	return nil
}

// Sum256 is a one-shot fixed-output SHA3-256 hash, exported for callers;
// the Scheme operations do not use it.
func Sum256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// Sum512 is a one-shot fixed-output SHA3-512 hash.
func Sum512(data []byte) [64]byte {
	return sha3.Sum512(data)
}
