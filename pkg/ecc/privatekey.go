package ecc

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/ecc-secp256k1/pkg/codec"
)

const (
	mainnetWIFPrefix byte = 0x80
	testnetWIFPrefix byte = 0xef

	// compressMagic marks a WIF key whose public key is serialized
	// compressed.
	compressMagic byte = 0x01
)

// PrivateKey is a secp256k1 secret scalar together with its public point.
type PrivateKey struct {
	secret *big.Int
	point  *S256Point
}

// NewPrivateKey returns the private key for secret, which must be in
// [1, N-1].  The public point secret·G is computed once here.
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if !inScalarRange(secret) {
		return nil, makeError(ErrSecretOutOfRange, "private key secret "+
			"must be in [1, N-1]")
	}
	s := new(big.Int).Set(secret)
	return &PrivateKey{secret: s, point: G.ScalarMul(s)}, nil
}

// PrivKeyFromBytes interprets b as a big-endian secret.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(b))
}

// Secret returns a copy of the secret scalar.
func (pk *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(pk.secret)
}

// PublicPoint returns the public point secret·G.
func (pk *PrivateKey) PublicPoint() *S256Point {
	return pk.point
}

// Hex returns the secret as 64 hex characters.
func (pk *PrivateKey) Hex() string {
	return hex.EncodeToString(pk.serialize())
}

func (pk *PrivateKey) String() string {
	return "PrivateKey(" + pk.point.String() + ")"
}

func (pk *PrivateKey) serialize() []byte {
	var b [32]byte
	pk.secret.FillBytes(b[:])
	return b[:]
}

// Sign returns a low-s ECDSA signature of the message hash z.  The nonce is
// derived deterministically, so signing the same z twice yields the same
// signature.
func (pk *PrivateKey) Sign(z *big.Int) *Signature {
	k := deterministicK(pk.secret, z)
	r := G.ScalarMul(k).point.x.Value()

	// k⁻¹ = k^(N-2) mod N since N is prime.
	kInv := new(big.Int).Exp(k, nMinus2, curveN)

	s := new(big.Int).Mul(r, pk.secret)
	s.Add(s, z)
	s.Mul(s, kInv)
	s.Mod(s, curveN)
	if s.Cmp(halfN) > 0 {
		s.Sub(curveN, s)
	}
	return &Signature{r: r, s: s}
}

// WIF returns the key in wallet import format.
func (pk *PrivateKey) WIF(compressed, testnet bool) string {
	prefix := mainnetWIFPrefix
	if testnet {
		prefix = testnetWIFPrefix
	}
	b := make([]byte, 0, 34)
	b = append(b, prefix)
	b = append(b, pk.serialize()...)
	if compressed {
		b = append(b, compressMagic)
	}
	return codec.EncodeBase58Check(b)
}

// ParseWIF decodes a wallet import format string.  It returns the key and
// whether the public key is meant to be serialized compressed.
func ParseWIF(wif string) (*PrivateKey, bool, error) {
	b, err := codec.DecodeBase58Check(wif)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode WIF: %w", err)
	}

	var compressed bool
	switch {
	case len(b) == 33:
	case len(b) == 34 && b[33] == compressMagic:
		compressed = true
	default:
		return nil, false, makeError(ErrInvalidWIF,
			fmt.Sprintf("malformed WIF payload of %d bytes", len(b)))
	}
	if b[0] != mainnetWIFPrefix && b[0] != testnetWIFPrefix {
		return nil, false, makeError(ErrInvalidWIF,
			fmt.Sprintf("unknown WIF prefix 0x%02x", b[0]))
	}

	key, err := PrivKeyFromBytes(b[1:33])
	if err != nil {
		return nil, false, err
	}
	return key, compressed, nil
}

// ToPrivKey converts the key into a decred secp256k1 private key.
func (pk *PrivateKey) ToPrivKey() *secp256k1.PrivateKey {
	return secp256k1.PrivKeyFromBytes(pk.serialize())
}
