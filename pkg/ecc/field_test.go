package ecc

import (
	"errors"
	"math/big"
	"testing"
)

func fe(t *testing.T, value, modulus int64) *FieldElement {
	t.Helper()
	f, err := NewFieldElementInt(value, modulus)
	if err != nil {
		t.Fatalf("NewFieldElementInt(%d, %d): %v", value, modulus, err)
	}
	return f
}

func TestNewFieldElementRange(t *testing.T) {
	for v := int64(0); v < 31; v++ {
		f := fe(t, v, 31)
		if f.Value().Int64() != v || f.Modulus().Int64() != 31 {
			t.Errorf("got %s, want value %d modulus 31", f, v)
		}
	}

	for _, v := range []int64{-1, 31, 32, 1000} {
		_, err := NewFieldElementInt(v, 31)
		if !errors.Is(err, ErrRange) {
			t.Errorf("value %d: got err %v, want %v", v, err, ErrRange)
		}
	}
}

func TestFieldElementEqual(t *testing.T) {
	a := fe(t, 7, 13)
	if !a.Equal(fe(t, 7, 13)) {
		t.Error("equal elements compare unequal")
	}
	if a.Equal(fe(t, 6, 13)) {
		t.Error("different values compare equal")
	}
	if a.Equal(fe(t, 7, 17)) {
		t.Error("different moduli compare equal")
	}
	if a.Equal(nil) {
		t.Error("element equals nil")
	}
	if a.String() != "FieldElement_13(7)" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestFieldElementArithmetic(t *testing.T) {
	type binop func(a, b *FieldElement) (*FieldElement, error)
	add := (*FieldElement).Add
	sub := (*FieldElement).Sub
	mul := (*FieldElement).Mul
	div := (*FieldElement).Div

	tests := []struct {
		name    string
		op      binop
		a, b    int64
		modulus int64
		want    int64
	}{
		{"add", add, 44, 33, 57, 20},
		{"add wrap to zero", add, 2, 11, 13, 0},
		{"sub", sub, 9, 29, 57, 37},
		{"sub same", sub, 12, 12, 13, 0},
		{"mul", mul, 95, 45, 97, 7},
		{"mul chain", mul, 7, 31, 97, 23},
		{"mul zero", mul, 0, 12, 13, 0},
		{"div", div, 3, 24, 31, 4},
		{"div self", div, 5, 5, 31, 1},
		{"div by zero", div, 5, 0, 31, 0},
	}

	for _, test := range tests {
		got, err := test.op(fe(t, test.a, test.modulus), fe(t, test.b, test.modulus))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !got.Equal(fe(t, test.want, test.modulus)) {
			t.Errorf("%s: got %s, want %d", test.name, got, test.want)
		}
	}
}

func TestFieldElementIncompatible(t *testing.T) {
	a, b := fe(t, 1, 13), fe(t, 1, 17)
	ops := map[string]func(a, b *FieldElement) (*FieldElement, error){
		"add": (*FieldElement).Add,
		"sub": (*FieldElement).Sub,
		"mul": (*FieldElement).Mul,
		"div": (*FieldElement).Div,
	}
	for name, op := range ops {
		got, err := op(a, b)
		if !errors.Is(err, ErrIncompatibleField) {
			t.Errorf("%s: got err %v, want %v", name, err, ErrIncompatibleField)
		}
		if got != nil {
			t.Errorf("%s: got partial result %s", name, got)
		}
	}
}

func TestFieldElementPow(t *testing.T) {
	tests := []struct {
		base, exp, modulus, want int64
	}{
		{3, 3, 13, 1},
		{7, -3, 13, 8},
		{17, -3, 31, 29},
		{5, 0, 31, 1},
		{4, 30, 31, 1},
		{12, 7, 97, 8},
	}
	for i, test := range tests {
		got := fe(t, test.base, test.modulus).Pow(big.NewInt(test.exp))
		if !got.Equal(fe(t, test.want, test.modulus)) {
			t.Errorf("#%d: %d^%d mod %d = %s, want %d", i, test.base,
				test.exp, test.modulus, got, test.want)
		}
	}

	// 4^-4 * 11 = 13 in F31.
	got, err := fe(t, 4, 31).Pow(big.NewInt(-4)).Mul(fe(t, 11, 31))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(fe(t, 13, 31)) {
		t.Errorf("4^-4 * 11 = %s, want 13", got)
	}
}

func TestFieldElementScale(t *testing.T) {
	a := fe(t, 5, 13)
	if got := a.Scale(big.NewInt(100)); !got.Equal(fe(t, 6, 13)) {
		t.Errorf("100 * 5 = %s, want 6", got)
	}
	if got := a.Scale(big.NewInt(-1)); !got.Equal(fe(t, 8, 13)) {
		t.Errorf("-1 * 5 = %s, want 8", got)
	}
	if got := a.Scale(big.NewInt(0)); !got.IsZero() {
		t.Errorf("0 * 5 = %s, want 0", got)
	}
}

func TestFieldElementClosureAndInverse(t *testing.T) {
	const p = 223
	for av := int64(0); av < p; av += 7 {
		for bv := int64(0); bv < p; bv += 11 {
			a, b := fe(t, av, p), fe(t, bv, p)
			for name, op := range map[string]func(*FieldElement) (*FieldElement, error){
				"add": a.Add, "sub": a.Sub, "mul": a.Mul,
			} {
				got, err := op(b)
				if err != nil {
					t.Fatalf("%s: %v", name, err)
				}
				if got.value.Sign() < 0 || got.value.Cmp(big.NewInt(p)) >= 0 {
					t.Fatalf("%d %s %d = %s escapes the field", av, name, bv, got)
				}
			}
		}
	}

	unity := fe(t, 1, p)
	for av := int64(1); av < p; av++ {
		a := fe(t, av, p)
		inv, err := unity.Div(a)
		if err != nil {
			t.Fatal(err)
		}
		got, err := a.Mul(inv)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(unity) {
			t.Fatalf("%d * (1/%d) = %s, want 1", av, av, got)
		}
	}
}

func TestFieldElementImmutable(t *testing.T) {
	v, m := big.NewInt(3), big.NewInt(7)
	f, err := NewFieldElement(v, m)
	if err != nil {
		t.Fatal(err)
	}
	v.SetInt64(5)
	m.SetInt64(11)
	f.Value().SetInt64(6)

	if !f.Equal(fe(t, 3, 7)) {
		t.Errorf("element changed to %s", f)
	}
	if _, err := f.Add(f); err != nil {
		t.Fatal(err)
	}
	if !f.Equal(fe(t, 3, 7)) {
		t.Errorf("add mutated receiver: %s", f)
	}
}
