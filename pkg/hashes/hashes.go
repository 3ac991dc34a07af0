// Package hashes provides the byte-level hash functions used for Bitcoin
// style identities.
package hashes

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash256 returns two rounds of SHA-256 over b.
func Hash256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 returns RIPEMD-160 of the SHA-256 of b.
func Hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	rmd := ripemd160.New()
	rmd.Write(sum[:])
	return rmd.Sum(nil)
}
