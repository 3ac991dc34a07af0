package ecc

import (
	"fmt"
	"math/big"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Point is a point on the curve y² = x³ + ax + b over a prime field, or the
// point at infinity when X and Y are both absent.  A Point is immutable.
type Point struct {
	x, y *FieldElement
	a, b *FieldElement
}

// NewPoint returns the point (x, y) on the curve with coefficients a and b.
// Passing nil for both x and y yields the point at infinity.  All elements
// must belong to the same field and a finite point must satisfy the curve
// equation.
func NewPoint(x, y, a, b *FieldElement) (*Point, error) {
	if err := a.checkField(b, "mix"); err != nil {
		return nil, err
	}
	if x == nil && y == nil {
		return &Point{a: a, b: b}, nil
	}
	if x == nil || y == nil {
		return nil, makeError(ErrOffCurve, "point must have both or "+
			"neither coordinate")
	}
	if err := a.checkField(x, "mix"); err != nil {
		return nil, err
	}
	if err := a.checkField(y, "mix"); err != nil {
		return nil, err
	}

	if !onCurve(x, y, a, b) {
		str := fmt.Sprintf("(%s, %s) is not on the curve", x.value, y.value)
		return nil, makeError(ErrOffCurve, str)
	}
	return &Point{x: x, y: y, a: a, b: b}, nil
}

// Infinity returns the identity element of the curve with coefficients a
// and b.
func Infinity(a, b *FieldElement) (*Point, error) {
	return NewPoint(nil, nil, a, b)
}

// onCurve reports whether y² = x³ + ax + b.
func onCurve(x, y, a, b *FieldElement) bool {
	lhs := y.mul(y)
	rhs := x.mul(x).mul(x).add(a.mul(x)).add(b)
	return lhs.Equal(rhs)
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *Point) X() *FieldElement { return p.x }

// Y returns the y coordinate, or nil for the point at infinity.
func (p *Point) Y() *FieldElement { return p.y }

// A returns the curve's linear coefficient.
func (p *Point) A() *FieldElement { return p.a }

// B returns the curve's constant coefficient.
func (p *Point) B() *FieldElement { return p.b }

// IsInfinity reports whether p is the identity element.
func (p *Point) IsInfinity() bool {
	return p.x == nil && p.y == nil
}

// Equal reports whether p and q are the same point on the same curve.
func (p *Point) Equal(q *Point) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b) &&
		p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p *Point) String() string {
	if p.IsInfinity() {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s,%s)_%s_%s FieldElement(%s)", p.x.value,
		p.y.value, p.a.value, p.b.value, p.x.modulus)
}

func (p *Point) sameCurve(q *Point) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Add returns p + q under the group law.
func (p *Point) Add(q *Point) (*Point, error) {
	return Add(p, q)
}

// ScalarMul returns coefficient·p.
func (p *Point) ScalarMul(coefficient *big.Int) (*Point, error) {
	return ScalarMul(coefficient, p)
}

// Add returns p + q.  Both points must lie on the same curve.
func Add(p, q *Point) (*Point, error) {
	if !p.sameCurve(q) {
		str := fmt.Sprintf("points %s, %s are not on the same curve", p, q)
		return nil, makeError(ErrCurveMismatch, str)
	}
	return add(p, q), nil
}

// add implements the group law for two points already known to share a
// curve.
func add(p, q *Point) *Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	// Same x with a different y means q = -p: the line through them is
	// vertical.
	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return &Point{a: p.a, b: p.b}
	}

	var s *FieldElement
	switch {
	case !p.x.Equal(q.x):
		// Chord: s = (y2 - y1) / (x2 - x1).
		s = q.y.sub(p.y).div(q.x.sub(p.x))

	case p.y.IsZero():
		// Doubling a point with y = 0 gives a vertical tangent.
		return &Point{a: p.a, b: p.b}

	default:
		// Tangent: s = (3x² + a) / 2y.
		num := p.x.mul(p.x).Scale(three).add(p.a)
		s = num.div(p.y.Scale(two))
	}

	x3 := s.mul(s).sub(p.x).sub(q.x)
	y3 := s.mul(p.x.sub(x3)).sub(p.y)
	return &Point{x: x3, y: y3, a: p.a, b: p.b}
}

// ScalarMul returns coefficient·p using binary double-and-add.  Bits are
// consumed from the least significant end, so the running time depends on
// the bit length of the coefficient.
func ScalarMul(coefficient *big.Int, p *Point) (*Point, error) {
	if coefficient.Sign() < 0 {
		str := fmt.Sprintf("scalar %s is negative", coefficient)
		return nil, makeError(ErrNegativeScalar, str)
	}
	return scalarMul(coefficient, p), nil
}

func scalarMul(coefficient *big.Int, p *Point) *Point {
	current := p
	result := &Point{a: p.a, b: p.b}
	for i := 0; i < coefficient.BitLen(); i++ {
		if coefficient.Bit(i) == 1 {
			result = add(result, current)
		}
		current = add(current, current)
	}
	return result
}
