// Package poly implements dense polynomials over a field.Field, with
// coefficient i stored at position i.
package poly

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cxkoda/kzg254/field"
)

var (
	bigZero = big.NewInt(0)

	// ZeroPolynomial is the additive identity polynomial p(x) = 0.
	ZeroPolynomial = NewFromInt64s([]int64{0})
	// OnePolynomial is the multiplicative identity polynomial p(x) = 1.
	OnePolynomial = NewFromInt64s([]int64{1})
)

// ErrInexactDivision is returned by Div when the divisor does not evenly
// divide the dividend.
var ErrInexactDivision = errors.New("poly: inexact division, nonzero remainder")

// ErrDuplicateAbscissa is returned by Interpolate when two x-coordinates
// coincide.
var ErrDuplicateAbscissa = errors.New("poly: duplicate abscissa")

// Polynomial is an ordered sequence of field.Field coefficients, coefficient
// i multiplying x^i. Trailing zeros are not required to be trimmed; Degree
// reports the logical degree by scanning from the top.
type Polynomial []*big.Int

// NewZero returns the zero polynomial with maxDegree+1 coefficient slots,
// all zero.
func NewZero(maxDegree int) *Polynomial {
	p := make(Polynomial, maxDegree+1)
	for i := range p {
		p[i] = big.NewInt(0)
	}
	return &p
}

// New wraps an existing coefficient slice as a Polynomial without copying.
func New(cs []*big.Int) *Polynomial {
	return (*Polynomial)(&cs)
}

// NewFromInt64s builds a Polynomial from plain int64 coefficients, useful
// for literal test polynomials and small constant factors.
func NewFromInt64s(cs []int64) *Polynomial {
	p := *NewZero(len(cs) - 1)
	for i, c := range cs {
		p[i] = big.NewInt(c)
	}
	return &p
}

// ComputePowers returns [1, x, x^2, ..., x^(n-1)] reduced mod f.Order().
func ComputePowers(x *big.Int, n int, f *field.Field) []*big.Int {
	xs := make([]*big.Int, n)
	if n == 0 {
		return xs
	}

	xs[0] = big.NewInt(1)
	for i := 1; i < n; i++ {
		xs[i] = f.Mul(xs[i-1], x)
	}

	return xs
}

// Evaluate returns p(x) using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int, f *field.Field) *big.Int {
	y := big.NewInt(0)

	for i := len(*p) - 1; i > 0; i-- {
		y = f.Add(y, (*p)[i])
		y = f.Mul(y, x)
	}
	y = f.Add(y, (*p)[0])

	return y
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	clone := *NewZero(p.Degree())
	for i, c := range *p {
		if i >= len(clone) {
			break
		}
		clone[i].Set(c)
	}
	return &clone
}

// Div performs exact polynomial long division, high-to-low. The quotient has
// length p.Degree()-divisor.Degree()+1. It returns the quotient and remainder; a
// nonzero remainder indicates inexact division (callers requiring exactness
// should check against ErrInexactDivision themselves via DivExact).
func (p *Polynomial) Div(divisor *Polynomial, f *field.Field) (*Polynomial, *Polynomial) {
	numerator := *p.Clone()
	quotient := *NewZero(numerator.Degree() - divisor.Degree())

	for numerator.Degree() >= divisor.Degree() {
		ip := numerator.Degree()
		id := divisor.Degree()
		lead, err := f.Div(numerator[ip], (*divisor)[id])
		if err != nil {
			// Divisor's leading coefficient is zero mod f.Order(); this can
			// only happen for a malformed (all-zero) divisor.
			break
		}
		quotient[ip-id] = lead
		numerator = *p.Sub(divisor.Mul(&quotient, f), f)
		if (numerator.Degree() == 0) && (numerator[0].Cmp(bigZero) == 0) {
			break
		}
	}

	return &quotient, &numerator
}

// DivExact performs Div and fails with ErrInexactDivision if a nonzero
// remainder results, matching the quotient-polynomial contract used by the
// proof engine (the dividend is always constructed to be evenly divisible).
func (p *Polynomial) DivExact(divisor *Polynomial, f *field.Field) (*Polynomial, error) {
	if divisor.Degree() == 0 && (*divisor)[0].Sign() == 0 {
		return nil, fmt.Errorf("poly: division by zero polynomial")
	}
	q, r := p.Div(divisor, f)
	if !r.Eq(ZeroPolynomial) {
		return nil, fmt.Errorf("%w: remainder %v", ErrInexactDivision, r)
	}
	return q, nil
}

// Degree returns the highest index i with a nonzero coefficient, or 0 for
// the zero polynomial (or any length-1 polynomial).
func (p *Polynomial) Degree() int {
	for d := len(*p) - 1; d >= 1; d-- {
		if (*p)[d].Cmp(bigZero) != 0 {
			return d
		}
	}
	return 0
}

// Mul returns the schoolbook product p*m.
func (p *Polynomial) Mul(m *Polynomial, f *field.Field) *Polynomial {
	prod := *NewZero(p.Degree() + m.Degree())
	for i, a := range *p {
		for j, b := range *m {
			if i+j >= len(prod) {
				continue
			}
			prod[i+j] = f.Add(prod[i+j], f.Mul(a, b))
		}
	}
	return &prod
}

// Sub returns p-x.
func (p *Polynomial) Sub(x *Polynomial, f *field.Field) *Polynomial {
	return p.Add(x.Mul(NewFromInt64s([]int64{-1}), f), f)
}

// Add returns p+x, padding the shorter operand with zeros.
func (p *Polynomial) Add(x *Polynomial, f *field.Field) *Polynomial {
	var result Polynomial
	if p.Degree() > x.Degree() {
		result = *NewZero(p.Degree())
	} else {
		result = *NewZero(x.Degree())
	}

	for i, v := range *p {
		if i >= len(result) {
			break
		}
		result[i] = f.Add(result[i], v)
	}

	for i, v := range *x {
		if i >= len(result) {
			break
		}
		result[i] = f.Add(result[i], v)
	}

	return &result
}

// Eq reports whether p and x represent the same polynomial (same degree,
// same coefficients up to that degree).
func (p *Polynomial) Eq(x *Polynomial) bool {
	if p.Degree() != x.Degree() {
		return false
	}
	for i := 0; i <= p.Degree(); i++ {
		if (*p)[i].Cmp((*x)[i]) != 0 {
			return false
		}
	}
	return true
}

// Interpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) = ys[i], using Lagrange interpolation in coefficient form. xs and
// ys must have equal, nonzero length, and all xs entries must be distinct.
func Interpolate(xs, ys []*big.Int, f *field.Field) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("poly: len(xs) != len(ys): %d != %d", len(xs), len(ys))
	}
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("poly: cannot interpolate zero points")
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if f.Eq(xs[i], xs[j]) {
				return nil, fmt.Errorf("%w: xs[%d] == xs[%d] == %v", ErrDuplicateAbscissa, i, j, xs[i])
			}
		}
	}

	result := NewZero(n - 1)
	for i := 0; i < n; i++ {
		// basis_i(x) = Π_{j != i} (x - xs[j]) / (xs[i] - xs[j])
		basis := OnePolynomial
		denom := big.NewInt(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// (x - xs[j])
			factor := New([]*big.Int{f.Neg(xs[j]), big.NewInt(1)})
			basis = basis.Mul(factor, f)
			denom = f.Mul(denom, f.Sub(xs[i], xs[j]))
		}
		denomInv, err := f.Inv(denom)
		if err != nil {
			return nil, fmt.Errorf("poly: interpolate: %w", err)
		}
		scale := f.Mul(ys[i], denomInv)
		for d, c := range *basis {
			(*result)[d] = f.Add((*result)[d], f.Mul(c, scale))
		}
	}

	return result, nil
}

// GenCoefficients returns the unique polynomial of degree < len(values) with
// p(i) = values[i] for i = 0..len(values)-1.
func GenCoefficients(values []*big.Int, f *field.Field) (*Polynomial, error) {
	xs := make([]*big.Int, len(values))
	for i := range xs {
		xs[i] = big.NewInt(int64(i))
	}
	return Interpolate(xs, values, f)
}

// ZeroPoly returns Π(x - indices[i]), the vanishing polynomial on indices,
// of degree len(indices).
func ZeroPoly(indices []*big.Int, f *field.Field) *Polynomial {
	p := OnePolynomial
	for _, z := range indices {
		factor := New([]*big.Int{f.Neg(z), big.NewInt(1)})
		p = p.Mul(factor, f)
	}
	return p
}
