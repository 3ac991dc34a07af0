// Package ecc implements prime field arithmetic, the elliptic curve group
// law and ECDSA over secp256k1.
//
// Values are immutable: every operation returns a new FieldElement, Point or
// S256Point, so they can be shared between goroutines freely.  Nothing here
// is constant time.
//
// # Quick Start
//
//	key, err := ecc.NewPrivateKey(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	z := new(big.Int).SetBytes(hashes.Hash256(message))
//	sig := key.Sign(z)
//
//	ok := key.PublicPoint().Verify(z, sig)
//
// # Generic Curves
//
// The group law is not tied to secp256k1.  Any short Weierstrass curve over a
// prime field works:
//
//	a, _ := ecc.NewFieldElementInt(0, 223)
//	b, _ := ecc.NewFieldElementInt(7, 223)
//	x, _ := ecc.NewFieldElementInt(192, 223)
//	y, _ := ecc.NewFieldElementInt(105, 223)
//	p, _ := ecc.NewPoint(x, y, a, b)
//	q, _ := ecc.ScalarMul(big.NewInt(21), p)
//
// # Nonces
//
// Signing derives its nonce from the key and the message hash with RFC 6979
// (HMAC-SHA256).  No randomness is needed and the same key and hash always
// produce the same signature.
//
// # Errors
//
// Construction and arithmetic failures are reported as Error values wrapping
// an ErrorKind, so callers can test them with errors.Is:
//
//	if errors.Is(err, ecc.ErrOffCurve) {
//	    ...
//	}
package ecc
