package ecc

import (
	"fmt"
	"math/big"
)

const (
	asn1SequenceID = 0x30
	asn1IntegerID  = 0x02

	// minSigLen is the minimum length of a DER encoded signature: sequence
	// id, length, and two integers of one byte each with their headers.
	minSigLen = 8

	// maxSigLen is the maximum length of a DER encoded signature with
	// 33-byte r and s.
	maxSigLen = 72
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	r, s *big.Int
}

// NewSignature returns the signature (r, s).  No range checks are performed
// here; see (*S256Point).Verify.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// Equal reports whether both signatures have the same r and s.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%064x,%064x)", sig.r, sig.s)
}

// DER returns the signature encoded with the Distinguished Encoding Rules:
//
//	0x30 <total length> 0x02 <len r> <r> 0x02 <len s> <s>
//
// Each integer is minimally encoded big-endian, with a leading zero byte
// added when its high bit is set so it does not read as negative.
func (sig *Signature) DER() []byte {
	rb := canonicalPadding(sig.r.Bytes())
	sb := canonicalPadding(sig.s.Bytes())

	b := make([]byte, 0, 6+len(rb)+len(sb))
	b = append(b, asn1SequenceID, byte(4+len(rb)+len(sb)))
	b = append(b, asn1IntegerID, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, asn1IntegerID, byte(len(sb)))
	b = append(b, sb...)
	return b
}

func canonicalPadding(b []byte) []byte {
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return b
}

// ParseDER parses a DER encoded signature.  Lengths must be consistent and
// integers must be non-negative; r and s are not range checked against N.
func ParseDER(b []byte) (*Signature, error) {
	if len(b) < minSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d",
			len(b), minSigLen)
		return nil, makeError(ErrSigInvalidDER, str)
	}
	if len(b) > maxSigLen {
		str := fmt.Sprintf("malformed signature: too long: %d > %d",
			len(b), maxSigLen)
		return nil, makeError(ErrSigInvalidDER, str)
	}
	if b[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: "+
			"%#x", b[0])
		return nil, makeError(ErrSigInvalidDER, str)
	}
	if int(b[1]) != len(b)-2 {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d",
			b[1], len(b)-2)
		return nil, makeError(ErrSigInvalidDER, str)
	}

	r, rest, err := parseDERInt(b[2:], "R")
	if err != nil {
		return nil, err
	}
	s, rest, err := parseDERInt(rest, "S")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		str := fmt.Sprintf("malformed signature: %d trailing bytes",
			len(rest))
		return nil, makeError(ErrSigInvalidDER, str)
	}
	return &Signature{r: r, s: s}, nil
}

// parseDERInt reads one ASN.1 integer from the front of b and returns it
// along with the unread remainder.
func parseDERInt(b []byte, name string) (*big.Int, []byte, error) {
	if len(b) < 2 || b[0] != asn1IntegerID {
		str := fmt.Sprintf("malformed signature: missing %s integer", name)
		return nil, nil, makeError(ErrSigInvalidDER, str)
	}
	n := int(b[1])
	if n == 0 || len(b)-2 < n {
		str := fmt.Sprintf("malformed signature: bogus %s length %d",
			name, n)
		return nil, nil, makeError(ErrSigInvalidDER, str)
	}
	v := b[2 : 2+n]
	if v[0]&0x80 != 0 {
		str := fmt.Sprintf("malformed signature: %s is negative", name)
		return nil, nil, makeError(ErrSigInvalidDER, str)
	}
	return new(big.Int).SetBytes(v), b[2+n:], nil
}
