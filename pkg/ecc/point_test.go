package ecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// curve223 is y² = x³ + 7 over F223.
type curve223 struct {
	t    *testing.T
	a, b *FieldElement
}

func newCurve223(t *testing.T) *curve223 {
	return &curve223{t: t, a: fe(t, 0, 223), b: fe(t, 7, 223)}
}

func (c *curve223) point(x, y int64) *Point {
	c.t.Helper()
	p, err := NewPoint(fe(c.t, x, 223), fe(c.t, y, 223), c.a, c.b)
	require.NoError(c.t, err)
	return p
}

func (c *curve223) infinity() *Point {
	c.t.Helper()
	p, err := Infinity(c.a, c.b)
	require.NoError(c.t, err)
	return p
}

func TestNewPointOnCurve(t *testing.T) {
	c := newCurve223(t)
	tests := []struct {
		x, y    int64
		onCurve bool
	}{
		{192, 105, true},
		{17, 56, true},
		{1, 193, true},
		{47, 71, true},
		{200, 119, false},
		{42, 99, false},
	}

	for _, test := range tests {
		_, err := NewPoint(fe(t, test.x, 223), fe(t, test.y, 223), c.a, c.b)
		if test.onCurve {
			assert.NoErrorf(t, err, "(%d, %d)", test.x, test.y)
		} else {
			assert.ErrorIsf(t, err, ErrOffCurve, "(%d, %d)", test.x, test.y)
		}
	}
}

func TestNewPointInvalidArguments(t *testing.T) {
	c := newCurve223(t)

	_, err := NewPoint(fe(t, 192, 223), nil, c.a, c.b)
	assert.ErrorIs(t, err, ErrOffCurve)

	_, err = NewPoint(fe(t, 1, 13), fe(t, 1, 13), c.a, c.b)
	assert.ErrorIs(t, err, ErrIncompatibleField)

	_, err = NewPoint(nil, nil, c.a, fe(t, 7, 13))
	assert.ErrorIs(t, err, ErrIncompatibleField)
}

func TestPointIdentity(t *testing.T) {
	c := newCurve223(t)
	inf := c.infinity()
	require.True(t, inf.IsInfinity())
	require.Nil(t, inf.X())
	require.Nil(t, inf.Y())

	for _, p := range []*Point{c.point(192, 105), c.point(17, 56), c.point(1, 193), inf} {
		sum, err := p.Add(inf)
		require.NoError(t, err)
		assert.True(t, sum.Equal(p), "P + inf = %s, want %s", sum, p)

		sum, err = inf.Add(p)
		require.NoError(t, err)
		assert.True(t, sum.Equal(p), "inf + P = %s, want %s", sum, p)
	}
}

func TestPointAdditiveInverse(t *testing.T) {
	c := newCurve223(t)
	for _, xy := range [][2]int64{{192, 105}, {17, 56}, {1, 193}, {47, 71}} {
		p := c.point(xy[0], xy[1])
		neg := c.point(xy[0], 223-xy[1])
		sum, err := Add(p, neg)
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), "%s + %s = %s", p, neg, sum)
	}
}

func TestPointAdd(t *testing.T) {
	c := newCurve223(t)
	tests := []struct {
		p, q, want [2]int64
	}{
		{[2]int64{170, 142}, [2]int64{60, 139}, [2]int64{220, 181}},
		{[2]int64{192, 105}, [2]int64{192, 105}, [2]int64{49, 71}},
	}

	for i, test := range tests {
		p := c.point(test.p[0], test.p[1])
		q := c.point(test.q[0], test.q[1])
		got, err := Add(p, q)
		require.NoError(t, err)
		assert.Truef(t, got.Equal(c.point(test.want[0], test.want[1])),
			"#%d: got %s", i, got)
	}
}

func TestPointAddProperties(t *testing.T) {
	c := newCurve223(t)
	points := []*Point{c.point(192, 105), c.point(17, 56), c.point(1, 193),
		c.point(47, 71), c.point(170, 142), c.point(60, 139)}

	for _, p := range points {
		for _, q := range points {
			pq, err := Add(p, q)
			require.NoError(t, err)
			qp, err := Add(q, p)
			require.NoError(t, err)
			assert.True(t, pq.Equal(qp), "%s + %s is not commutative", p, q)

			if !pq.IsInfinity() {
				_, err := NewPoint(pq.X(), pq.Y(), c.a, c.b)
				assert.NoError(t, err, "%s + %s left the curve", p, q)
			}

			for _, r := range points[:3] {
				left, _ := Add(pq, r)
				qr, _ := Add(q, r)
				right, _ := Add(p, qr)
				assert.True(t, left.Equal(right), "(%s+%s)+%s not associative", p, q, r)
			}
		}
	}
}

func TestPointDoubleVerticalTangent(t *testing.T) {
	// y² = x³ + 10 over F11 passes through (1, 0), where the tangent is
	// vertical.
	a, b := fe(t, 0, 11), fe(t, 10, 11)
	p, err := NewPoint(fe(t, 1, 11), fe(t, 0, 11), a, b)
	require.NoError(t, err)

	double, err := p.Add(p)
	require.NoError(t, err)
	assert.True(t, double.IsInfinity())

	twice, err := p.ScalarMul(big.NewInt(2))
	require.NoError(t, err)
	assert.True(t, twice.IsInfinity())
}

func TestPointCurveMismatch(t *testing.T) {
	c := newCurve223(t)
	p := c.point(192, 105)
	other, err := Infinity(fe(t, 5, 223), fe(t, 7, 223))
	require.NoError(t, err)

	_, err = Add(p, other)
	assert.ErrorIs(t, err, ErrCurveMismatch)
	_, err = Add(other, p)
	assert.ErrorIs(t, err, ErrCurveMismatch)
}

func TestScalarMulMatchesRepeatedAddition(t *testing.T) {
	c := newCurve223(t)
	for _, p := range []*Point{c.point(47, 71), c.point(192, 105), c.point(15, 86)} {
		sum := c.infinity()
		for n := int64(0); n <= 30; n++ {
			got, err := ScalarMul(big.NewInt(n), p)
			require.NoError(t, err)
			require.Truef(t, got.Equal(sum), "%d·%s = %s, want %s", n, p, got, sum)

			sum, err = Add(sum, p)
			require.NoError(t, err)
		}
	}
}

func TestScalarMulZeroAndNegative(t *testing.T) {
	c := newCurve223(t)
	p := c.point(47, 71)

	got, err := ScalarMul(big.NewInt(0), p)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())

	got, err = ScalarMul(big.NewInt(5), c.infinity())
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())

	_, err = ScalarMul(big.NewInt(-1), p)
	assert.ErrorIs(t, err, ErrNegativeScalar)
}

func TestPointEqual(t *testing.T) {
	c := newCurve223(t)
	assert.True(t, c.point(192, 105).Equal(c.point(192, 105)))
	assert.False(t, c.point(192, 105).Equal(c.point(17, 56)))
	assert.False(t, c.point(192, 105).Equal(c.infinity()))
	assert.True(t, c.infinity().Equal(c.infinity()))
	assert.Equal(t, "Point(infinity)", c.infinity().String())
	assert.Equal(t, "Point(192,105)_0_7 FieldElement(223)", c.point(192, 105).String())
}
