// Package codec implements the textual and integer encodings used for keys
// and addresses: Base58, Base58Check and little-endian integers.
package codec

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

const checksumLen = 4

var (
	// ErrChecksum indicates that the checksum of a Base58Check string did
	// not match.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates a string that is not valid Base58 or is
	// too short to carry a checksum.
	ErrInvalidFormat = errors.New("invalid format: checksum bytes missing")
)

// EncodeBase58 encodes b in Base58.  Each leading zero byte becomes a
// leading '1'; the rest is the big-endian value of b written in base 58.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase58 decodes a Base58 string.
func DecodeBase58(s string) ([]byte, error) {
	b := base58.Decode(s)
	if len(b) == 0 && len(s) > 0 {
		return nil, ErrInvalidFormat
	}
	return b, nil
}

// EncodeBase58Check appends the first four bytes of Hash256(b) to b and
// encodes the result in Base58.
func EncodeBase58Check(b []byte) string {
	buf := make([]byte, 0, len(b)+checksumLen)
	buf = append(buf, b...)
	buf = append(buf, checksum(b)...)
	return EncodeBase58(buf)
}

// DecodeBase58Check decodes s and verifies its trailing checksum, returning
// the payload without it.
func DecodeBase58Check(s string) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) < checksumLen {
		return nil, ErrInvalidFormat
	}
	payload, sum := b[:len(b)-checksumLen], b[len(b)-checksumLen:]
	if !bytes.Equal(sum, checksum(payload)) {
		return nil, ErrChecksum
	}
	return payload, nil
}

func checksum(b []byte) []byte {
	return hashes.Hash256(b)[:checksumLen]
}

// LittleEndianToInt interprets b as a little-endian unsigned integer.
func LittleEndianToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

// IntToLittleEndian returns n as exactly length little-endian bytes.  It
// fails if n is negative or does not fit.
func IntToLittleEndian(n *big.Int, length int) ([]byte, error) {
	if n.Sign() < 0 || (n.BitLen()+7)/8 > length {
		return nil, errors.New("integer does not fit in the requested length")
	}
	b := make([]byte, length)
	n.FillBytes(b)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b, nil
}
