// doc.go - ntruenc godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package ntruenc implements the NTRU public-key encryption scheme over the
// convolution ring R_q = Z_q[X]/(X^N - 1), with a small secondary modulus
// p = 3 used to recover the encoded message during decryption.
//
// This implementation is a port of the public domain reference
// implementation by Sean Parkinson, generalized to a single recursive
// Karatsuba multiplier and polynomial inverter parameterized by (N, q)
// instead of one hand-specialized multiplication routine per security
// strength.
//
// For more information on the NTRU cryptosystem, see the original paper by
// Jeffrey Hoffstein, Jill Pipher, and Joseph H. Silverman, "NTRU: A
// Ring-Based Public Key Cryptosystem".
package ntruenc
