package ecc

import (
	"fmt"
	"math/big"
)

// FieldElement is an element of the prime field of order Modulus.
// A FieldElement is immutable; every operation returns a new value.
type FieldElement struct {
	value   *big.Int
	modulus *big.Int
}

// NewFieldElement returns value as an element of the field of order modulus.
// The modulus is assumed to be prime and is not checked.
func NewFieldElement(value, modulus *big.Int) (*FieldElement, error) {
	if value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		str := fmt.Sprintf("num %s not in field range 0 to %s", value,
			new(big.Int).Sub(modulus, one))
		return nil, makeError(ErrRange, str)
	}
	return &FieldElement{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// NewFieldElementInt is a convenience wrapper around NewFieldElement for
// small fields.
func NewFieldElementInt(value, modulus int64) (*FieldElement, error) {
	return NewFieldElement(big.NewInt(value), big.NewInt(modulus))
}

// newReduced builds a field element from an arbitrary integer by reducing
// it into [0, modulus).  The modulus is shared, not copied.
func newReduced(v, modulus *big.Int) *FieldElement {
	return &FieldElement{value: v.Mod(v, modulus), modulus: modulus}
}

// Value returns a copy of the element's integer value.
func (f *FieldElement) Value() *big.Int {
	return new(big.Int).Set(f.value)
}

// Modulus returns a copy of the field order.
func (f *FieldElement) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// IsZero reports whether the element is the additive identity.
func (f *FieldElement) IsZero() bool {
	return f.value.Sign() == 0
}

// Equal reports whether f and other have the same value and modulus.
// A nil element only equals another nil element.
func (f *FieldElement) Equal(other *FieldElement) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.modulus.Cmp(other.modulus) == 0 && f.value.Cmp(other.value) == 0
}

func (f *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", f.modulus, f.value)
}

func (f *FieldElement) checkField(other *FieldElement, op string) error {
	if f.modulus.Cmp(other.modulus) != 0 {
		str := fmt.Sprintf("cannot %s two numbers in different fields "+
			"(%s and %s)", op, f.modulus, other.modulus)
		return makeError(ErrIncompatibleField, str)
	}
	return nil
}

// Add returns f + other.
func (f *FieldElement) Add(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField(other, "add"); err != nil {
		return nil, err
	}
	return f.add(other), nil
}

// Sub returns f - other.
func (f *FieldElement) Sub(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField(other, "subtract"); err != nil {
		return nil, err
	}
	return f.sub(other), nil
}

// Mul returns f * other.
func (f *FieldElement) Mul(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField(other, "multiply"); err != nil {
		return nil, err
	}
	return f.mul(other), nil
}

// Div returns f / other, computed as f * other^(p-2) (Fermat's little
// theorem).  Dividing by zero yields zero rather than an error.
func (f *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if err := f.checkField(other, "divide"); err != nil {
		return nil, err
	}
	return f.div(other), nil
}

// Pow returns f^exponent.  The exponent is first reduced modulo p-1, the
// order of the multiplicative group, so negative exponents are accepted.
func (f *FieldElement) Pow(exponent *big.Int) *FieldElement {
	order := new(big.Int).Sub(f.modulus, one)
	e := new(big.Int).Mod(exponent, order)
	return &FieldElement{
		value:   new(big.Int).Exp(f.value, e, f.modulus),
		modulus: f.modulus,
	}
}

// Scale returns coefficient * f.  The coefficient is an ordinary integer
// and does not need to be reduced first.
func (f *FieldElement) Scale(coefficient *big.Int) *FieldElement {
	v := new(big.Int).Mul(coefficient, f.value)
	return newReduced(v, f.modulus)
}

// The unexported variants skip the modulus check.  They are used by the
// group law once a point has established that all of its coordinates share
// a field.

func (f *FieldElement) add(other *FieldElement) *FieldElement {
	return newReduced(new(big.Int).Add(f.value, other.value), f.modulus)
}

func (f *FieldElement) sub(other *FieldElement) *FieldElement {
	return newReduced(new(big.Int).Sub(f.value, other.value), f.modulus)
}

func (f *FieldElement) mul(other *FieldElement) *FieldElement {
	return newReduced(new(big.Int).Mul(f.value, other.value), f.modulus)
}

func (f *FieldElement) div(other *FieldElement) *FieldElement {
	exp := new(big.Int).Sub(f.modulus, two)
	inv := new(big.Int).Exp(other.value, exp, f.modulus)
	return newReduced(inv.Mul(inv, f.value), f.modulus)
}
