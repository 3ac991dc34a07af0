package ecc

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

var (
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}
)

// deterministicK derives the signing nonce for the message hash z per
// RFC 6979 using HMAC-SHA256.  The result is in [1, N-1] and depends only
// on the secret and z.
func deterministicK(secret, z *big.Int) *big.Int {
	k := bytes.Repeat([]byte{0x00}, sha256.Size)
	v := bytes.Repeat([]byte{0x01}, sha256.Size)

	// bits2octets: the hash is reduced into [0, N).
	zr := new(big.Int).Mod(z, curveN)

	var zBytes, secretBytes [32]byte
	zr.FillBytes(zBytes[:])
	secret.FillBytes(secretBytes[:])

	k = hmacSHA256(k, v, singleZero, secretBytes[:], zBytes[:])
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, v, singleOne, secretBytes[:], zBytes[:])
	v = hmacSHA256(k, v)

	for {
		v = hmacSHA256(k, v)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(curveN) < 0 {
			return candidate
		}
		k = hmacSHA256(k, v, singleZero)
		v = hmacSHA256(k, v)
	}
}

// hmacSHA256 returns HMAC-SHA256 keyed with key over the concatenation of
// data.
func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}
