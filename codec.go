// codec.go - message bit encoding and ciphertext/key byte packing.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package ntruenc

import "encoding/binary"

// encodeMsg converts a byte sequence into a length-N ternary message
// polynomial, per spec.md §4.5:
//
//	bits  0..15        : len(m), little-endian, 0->-1, 1->+1
//	bits 16..16+8L-1    : bits of m, LSB-first per byte, 0->-1, 1->+1
//	bits 16+8L..N-1     : zero (the integrity pad checked by decodeMsg)
func (p *ParamSet) encodeMsg(dst *poly, m []byte) error {
	l := len(m)
	if (l+2)*8 > p.n {
		return ErrBadLen
	}

	bit := func(set bool) int32 {
		if set {
			return 1
		}
		return -1
	}

	idx := 0
	var lenBytes [2]byte
	binary.LittleEndian.PutUint16(lenBytes[:], uint16(l))
	for _, b := range lenBytes {
		for j := 0; j < 8; j++ {
			dst.coeffs[idx] = bit((b>>uint(j))&1 == 1)
			idx++
		}
	}
	for _, b := range m {
		for j := 0; j < 8; j++ {
			dst.coeffs[idx] = bit((b>>uint(j))&1 == 1)
			idx++
		}
	}
	for ; idx < p.n; idx++ {
		dst.coeffs[idx] = 0
	}
	return nil
}

// decodeMsg recovers the byte sequence and its length from a message
// polynomial. err is ErrBadData when any coefficient failed the
// (-1,0,+1) -> (0,failure,1) mapping in the length-prefix/message region,
// any coefficient in the zero-padding region was non-zero, or the recovered
// length is out of range. The best-effort decoded bytes and length are
// returned alongside ErrBadData, except for an out-of-range length, which
// returns nil bytes and length 0.
func (p *ParamSet) decodeMsg(src *poly) (m []byte, length int, err error) {
	tamper := false
	bitAt := func(idx int) byte {
		switch c := src.coeffs[idx]; {
		case c > 0:
			return 1
		case c < 0:
			return 0
		default:
			tamper = true
			return 0
		}
	}

	var lenBytes [2]byte
	for i := 0; i < 16; i++ {
		b := bitAt(i)
		lenBytes[i/8] |= b << uint(i%8)
	}
	l := int(binary.LittleEndian.Uint16(lenBytes[:]))

	if l < 0 || (l+2)*8 > p.n {
		return nil, 0, ErrBadData
	}

	m = make([]byte, l)
	idx := 16
	for i := 0; i < l; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b |= bitAt(idx) << uint(j)
			idx++
		}
		m[i] = b
	}

	for ; idx < p.n; idx++ {
		if src.coeffs[idx] != 0 {
			tamper = true
		}
	}

	if tamper {
		return m, l, ErrBadData
	}
	return m, l, nil
}

// pack serializes a balanced mod-q polynomial to this parameter set's wire
// format (spec.md §4.5, §6): 12-bit packing when q fits in 12 unsigned
// bits (q <= 4096), else the 16-bit-per-coefficient format, since a
// balanced mod-q coefficient's unsigned residue needs ceil(log2(q)) bits
// and 12-bit packing would silently truncate any larger q (e.g. the prime
// q=9829 family needs 14 bits). ParamSet.wide carries this choice so
// pack/unpack, PublicKeyLen/PrivateKeyLen/CipherTextLen, and Scheme all
// agree on one wire width per parameter set.
func (p *ParamSet) pack(a *poly) []byte {
	if p.wide {
		return p.packWide(a)
	}
	return p.pack12(a)
}

// unpack is the inverse of pack, dispatching on the same ParamSet.wide
// flag.
func (p *ParamSet) unpack(data []byte) (*poly, error) {
	if p.wide {
		return p.unpackWide(data)
	}
	return p.unpack12(data)
}

// pack12 serializes a balanced mod-q polynomial into the 12-bit packed
// wire format (spec.md §4.5): coefficients are first taken to their
// unsigned residue mod q, then packed two-per-three-bytes, grounded on
// original_source/src/ntruenc_kenc.c's ntruenc_encode_12bits. Only valid
// when q <= 4096; ParamSet.wide routes larger-q sets to packWide instead.
func (p *ParamSet) pack12(a *poly) []byte {
	n := p.n
	out := make([]byte, p.packedLen12)

	u := make([]uint16, n)
	for i, c := range a.coeffs {
		u[i] = toUnsigned(c, p.q)
	}

	j := 0
	i := 0
	for ; i+1 < n; i += 2 {
		c0, c1 := u[i], u[i+1]
		out[j+0] = byte(c0)
		out[j+1] = byte(c0>>8) | byte(c1<<4)
		out[j+2] = byte(c1 >> 4)
		j += 3
	}
	if n%2 == 1 {
		c0 := u[i]
		out[j+0] = byte(c0)
		out[j+1] = byte(c0 >> 8)
	}
	return out
}

// unpack12 is the inverse of pack12: unpacks 12-bit coefficients and
// balances each one mod q.
func (p *ParamSet) unpack12(data []byte) (*poly, error) {
	n := p.n
	if len(data) != p.packedLen12 {
		return nil, ErrBadLen
	}

	dst := p.newPoly()
	j := 0
	i := 0
	for ; i+1 < n; i += 2 {
		b0, b1, b2 := data[j], data[j+1], data[j+2]
		c0 := uint16(b0) | (uint16(b1&0x0f) << 8)
		c1 := (uint16(b1) >> 4) | (uint16(b2) << 4)
		dst.coeffs[i] = p.balance(int64(c0))
		dst.coeffs[i+1] = p.balance(int64(c1))
		j += 3
	}
	if n%2 == 1 {
		b0, b1 := data[j], data[j+1]
		c0 := uint16(b0) | (uint16(b1&0x0f) << 8)
		dst.coeffs[i] = p.balance(int64(c0))
	}
	return dst, nil
}

// packWide serializes a polynomial as one little-endian uint16 word per
// coefficient (spec.md §4.5's alternative format). pack uses this whenever
// ParamSet.wide is set (q > 4096); it also remains directly callable for
// interop testing against parameter sets that would otherwise use pack12.
func (p *ParamSet) packWide(a *poly) []byte {
	out := make([]byte, p.packedLen16)
	for i, c := range a.coeffs {
		binary.LittleEndian.PutUint16(out[2*i:], toUnsigned(c, p.q))
	}
	return out
}

// unpackWide is the inverse of packWide.
func (p *ParamSet) unpackWide(data []byte) (*poly, error) {
	if len(data) != p.packedLen16 {
		return nil, ErrBadLen
	}
	dst := p.newPoly()
	for i := range dst.coeffs {
		u := binary.LittleEndian.Uint16(data[2*i:])
		dst.coeffs[i] = p.balance(int64(u))
	}
	return dst, nil
}

// toUnsigned takes a balanced coefficient (see balance) to its unsigned
// residue in [0, q).
func toUnsigned(c int32, q int32) uint16 {
	if c < 0 {
		c += q
	}
	return uint16(c)
}
