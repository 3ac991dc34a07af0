package ecc

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/ecc-secp256k1/pkg/codec"
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

const (
	pubKeyBytesLenCompressed   = 33
	pubKeyBytesLenUncompressed = 65

	pubKeyFormatCompressedEven byte = 0x02
	pubKeyFormatCompressedOdd  byte = 0x03
	pubKeyFormatUncompressed   byte = 0x04

	mainnetAddressPrefix byte = 0x00
	testnetAddressPrefix byte = 0x6f
)

// SEC returns the SEC1 serialization of p: 0x04 || x || y when uncompressed,
// 0x02/0x03 || x when compressed, the prefix carrying the parity of y.  The
// point at infinity has no SEC encoding and yields nil.
func (p *S256Point) SEC(compressed bool) []byte {
	if p.IsInfinity() {
		return nil
	}

	if compressed {
		b := make([]byte, pubKeyBytesLenCompressed)
		b[0] = pubKeyFormatCompressedEven
		if p.point.y.value.Bit(0) == 1 {
			b[0] = pubKeyFormatCompressedOdd
		}
		p.point.x.value.FillBytes(b[1:])
		return b
	}

	b := make([]byte, pubKeyBytesLenUncompressed)
	b[0] = pubKeyFormatUncompressed
	p.point.x.value.FillBytes(b[1:33])
	p.point.y.value.FillBytes(b[33:])
	return b
}

// ParseSEC parses a SEC1 encoded public key in either compressed or
// uncompressed form.
func ParseSEC(b []byte) (*S256Point, error) {
	if len(b) == 0 {
		return nil, makeError(ErrInvalidSEC, "empty public key")
	}

	switch b[0] {
	case pubKeyFormatUncompressed:
		if len(b) != pubKeyBytesLenUncompressed {
			str := fmt.Sprintf("malformed uncompressed public key: "+
				"invalid length %d", len(b))
			return nil, makeError(ErrInvalidSEC, str)
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:])
		return NewS256Point(x, y)

	case pubKeyFormatCompressedEven, pubKeyFormatCompressedOdd:
		if len(b) != pubKeyBytesLenCompressed {
			str := fmt.Sprintf("malformed compressed public key: "+
				"invalid length %d", len(b))
			return nil, makeError(ErrInvalidSEC, str)
		}
		x, err := S256Field(new(big.Int).SetBytes(b[1:]))
		if err != nil {
			return nil, err
		}

		// y² = x³ + 7; P ≡ 3 (mod 4) so a square root is v^((P+1)/4).
		alpha := x.mul(x).mul(x).add(curveB)
		beta := alpha.Pow(sqrtExp)

		y := beta
		wantOdd := b[0] == pubKeyFormatCompressedOdd
		if (beta.value.Bit(0) == 1) != wantOdd {
			y = newReduced(new(big.Int).Sub(curveP, beta.value), curveP)
		}
		return NewS256PointFromField(x, y)

	default:
		str := fmt.Sprintf("invalid public key format byte 0x%02x", b[0])
		return nil, makeError(ErrInvalidSEC, str)
	}
}

// Hash160 returns RIPEMD160(SHA256(sec)) of the public key.
func (p *S256Point) Hash160(compressed bool) []byte {
	return hashes.Hash160(p.SEC(compressed))
}

// Address returns the base58check pay-to-pubkey-hash address of p.
func (p *S256Point) Address(compressed, testnet bool) string {
	prefix := mainnetAddressPrefix
	if testnet {
		prefix = testnetAddressPrefix
	}
	payload := append([]byte{prefix}, p.Hash160(compressed)...)
	return codec.EncodeBase58Check(payload)
}

// ToPubKey converts p into a decred secp256k1 public key.
func (p *S256Point) ToPubKey() (*secp256k1.PublicKey, error) {
	if p.IsInfinity() {
		return nil, makeError(ErrInvalidSEC, "point at infinity is not "+
			"a valid public key")
	}
	return secp256k1.ParsePubKey(p.SEC(false))
}

// FromPubKey converts a decred secp256k1 public key into an S256Point.
func FromPubKey(pk *secp256k1.PublicKey) (*S256Point, error) {
	return ParseSEC(pk.SerializeUncompressed())
}
