package ecc

import (
	"fmt"
	"math/big"
)

var (
	// curveP is the secp256k1 field prime 2^256 - 2^32 - 977.
	curveP = func() *big.Int {
		p := new(big.Int).Lsh(one, 256)
		p.Sub(p, new(big.Int).Lsh(one, 32))
		return p.Sub(p, big.NewInt(977))
	}()

	// curveN is the order of the subgroup generated by G.
	curveN = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	halfN    = new(big.Int).Rsh(curveN, 1)
	nMinus2  = new(big.Int).Sub(curveN, two)
	sqrtExp  = new(big.Int).Rsh(new(big.Int).Add(curveP, one), 2)
	curveA   = &FieldElement{value: big.NewInt(0), modulus: curveP}
	curveB   = &FieldElement{value: big.NewInt(7), modulus: curveP}
	gx       = fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy       = fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	infinity = &S256Point{point: &Point{a: curveA, b: curveB}}
)

// G is the secp256k1 generator point.
var G = mustS256Point(gx, gy)

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return v
}

func mustS256Point(x, y *big.Int) *S256Point {
	p, err := NewS256Point(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// FieldPrime returns the secp256k1 field prime P.
func FieldPrime() *big.Int {
	return new(big.Int).Set(curveP)
}

// Order returns N, the order of the group generated by G.
func Order() *big.Int {
	return new(big.Int).Set(curveN)
}

// S256Field returns v as an element of the secp256k1 base field.
func S256Field(v *big.Int) (*FieldElement, error) {
	return NewFieldElement(v, curveP)
}

// S256Point is a point on secp256k1: y² = x³ + 7 over the field of order P.
type S256Point struct {
	point *Point
}

// NewS256Point promotes the integer coordinates x and y to field elements
// and returns the resulting curve point.  Passing nil for both yields the
// point at infinity.
func NewS256Point(x, y *big.Int) (*S256Point, error) {
	if x == nil && y == nil {
		return infinity, nil
	}
	if x == nil || y == nil {
		return nil, makeError(ErrOffCurve, "point must have both or "+
			"neither coordinate")
	}
	fx, err := S256Field(x)
	if err != nil {
		return nil, err
	}
	fy, err := S256Field(y)
	if err != nil {
		return nil, err
	}
	return NewS256PointFromField(fx, fy)
}

// NewS256PointFromField returns the secp256k1 point with the given field
// element coordinates.  The elements must belong to the secp256k1 field.
func NewS256PointFromField(x, y *FieldElement) (*S256Point, error) {
	p, err := NewPoint(x, y, curveA, curveB)
	if err != nil {
		return nil, err
	}
	return &S256Point{point: p}, nil
}

// Point returns the underlying generic curve point.
func (p *S256Point) Point() *Point {
	return p.point
}

// X returns a copy of the x coordinate, or nil at infinity.
func (p *S256Point) X() *big.Int {
	if p.point.IsInfinity() {
		return nil
	}
	return p.point.x.Value()
}

// Y returns a copy of the y coordinate, or nil at infinity.
func (p *S256Point) Y() *big.Int {
	if p.point.IsInfinity() {
		return nil
	}
	return p.point.y.Value()
}

// IsInfinity reports whether p is the identity element.
func (p *S256Point) IsInfinity() bool {
	return p.point.IsInfinity()
}

// Equal reports whether p and q are the same point.
func (p *S256Point) Equal(q *S256Point) bool {
	return p.point.Equal(q.point)
}

func (p *S256Point) String() string {
	if p.IsInfinity() {
		return "S256Point(infinity)"
	}
	return fmt.Sprintf("S256Point(%064x, %064x)", p.point.x.value,
		p.point.y.value)
}

// Add returns p + q.
func (p *S256Point) Add(q *S256Point) *S256Point {
	return &S256Point{point: add(p.point, q.point)}
}

// ScalarMul returns k·p.  The scalar is reduced modulo N, the order of the
// group, before multiplying; negative scalars are therefore accepted.
func (p *S256Point) ScalarMul(k *big.Int) *S256Point {
	coef := new(big.Int).Mod(k, curveN)
	return &S256Point{point: scalarMul(coef, p.point)}
}

// Verify reports whether sig is a valid signature of the message hash z by
// the key p.  Signatures whose r or s fall outside [1, N-1] are rejected.
func (p *S256Point) Verify(z *big.Int, sig *Signature) bool {
	if sig == nil || p.IsInfinity() {
		return false
	}
	if !inScalarRange(sig.r) || !inScalarRange(sig.s) {
		return false
	}

	sInv := new(big.Int).Exp(sig.s, nMinus2, curveN)
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, curveN)
	v := new(big.Int).Mul(sig.r, sInv)
	v.Mod(v, curveN)

	total := G.ScalarMul(u).Add(p.ScalarMul(v))
	if total.IsInfinity() {
		return false
	}
	return total.point.x.value.Cmp(sig.r) == 0
}

// inScalarRange reports whether v is in [1, N-1].
func inScalarRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(curveN) < 0
}
