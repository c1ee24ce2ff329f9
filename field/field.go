// Package field provides arithmetic over the BN254 scalar field, implemented
// over the integers modulo r.
//
// Operations do NOT run in cryptographic constant time.
package field

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// ErrNoInverse is returned by Inv when inverting zero.
var ErrNoInverse = errors.New("field: zero has no multiplicative inverse")

// BN254Order is the scalar field modulus r of the BN254 curve family, the
// fixed modulus the rest of this module operates over.
var BN254Order, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// BN254 is the Field of scalar-field order, bound once as the modulus every
// non-test caller should use.
var BN254 = NewField(BN254Order)

// A Field represents a finite field of specific order.
type Field big.Int

// NewField returns a new Field of the specified order. Only unit tests of
// the polynomial layer should call this with a modulus other than
// BN254Order.
func NewField(order *big.Int) *Field {
	return (*Field)(new(big.Int).Set(order))
}

// Order returns the order of the Field.
func (f *Field) Order() *big.Int {
	return new(big.Int).Set((*big.Int)(f))
}

// Add returns x+y mod f.Order().
func (f *Field) Add(x, y *big.Int) *big.Int {
	p := new(big.Int).Add(x, y)
	return p.Mod(p, f.Order())
}

// Sub returns x-y mod f.Order().
func (f *Field) Sub(x, y *big.Int) *big.Int {
	p := new(big.Int).Sub(x, y)
	return p.Mod(p, f.Order())
}

// Neg returns -x mod f.Order().
func (f *Field) Neg(x *big.Int) *big.Int {
	p := new(big.Int).Neg(x)
	return p.Mod(p, f.Order())
}

// Mod reduces x into [0, f.Order()).
func (f *Field) Mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.Order())
}

// Pow returns x**y mod f.Order().
func (f *Field) Pow(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, f.Order())
}

// Mul returns x*y mod f.Order().
func (f *Field) Mul(x, y *big.Int) *big.Int {
	p := new(big.Int).Mul(x, y)
	return p.Mod(p, f.Order())
}

// Inv returns the multiplicative inverse of x, or ErrNoInverse if x is zero
// mod f.Order().
func (f *Field) Inv(x *big.Int) (*big.Int, error) {
	reduced := f.Mod(x)
	if reduced.Sign() == 0 {
		return nil, ErrNoInverse
	}
	inv := new(big.Int).ModInverse(reduced, f.Order())
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// Div returns x*(1/y) mod f.Order().
func (f *Field) Div(x, y *big.Int) (*big.Int, error) {
	yInv, err := f.Inv(y)
	if err != nil {
		return nil, fmt.Errorf("field: div by zero denominator %v: %w", y, err)
	}
	p := new(big.Int).Mul(x, yInv)
	return p.Mod(p, f.Order()), nil
}

// Eq reports whether x and y are equal mod f.Order().
func (f *Field) Eq(x, y *big.Int) bool {
	return f.Mod(x).Cmp(f.Mod(y)) == 0
}

// Random returns a random field element from [0,q). The Reader is propagated
// to rand.Int().
func (f *Field) Random(r io.Reader) (*big.Int, error) {
	x, err := rand.Int(r, f.Order())
	if err != nil {
		return nil, fmt.Errorf("rand.Int(): %v", err)
	}
	return x, nil
}

// Element is an integer in [0, r) under a fixed Field, with value semantics:
// every operation returns a new, already-reduced Element.
type Element struct {
	v *big.Int
	f *Field
}

// FromBigInt reduces x modulo f.Order() and wraps it as an Element.
func FromBigInt(x *big.Int, f *Field) Element {
	return Element{v: f.Mod(x), f: f}
}

// FromInt64 reduces the given int64 modulo f.Order().
func FromInt64(x int64, f *Field) Element {
	return FromBigInt(big.NewInt(x), f)
}

// BigInt returns the canonical, reduced big.Int value of e.
func (e Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

func (e Element) Add(o Element) Element { return Element{e.f.Add(e.v, o.v), e.f} }
func (e Element) Sub(o Element) Element { return Element{e.f.Sub(e.v, o.v), e.f} }
func (e Element) Neg() Element          { return Element{e.f.Neg(e.v), e.f} }
func (e Element) Mul(o Element) Element { return Element{e.f.Mul(e.v, o.v), e.f} }
func (e Element) Pow(y *big.Int) Element {
	return Element{e.f.Pow(e.v, y), e.f}
}

// Inv returns the multiplicative inverse of e, or ErrNoInverse if e is zero.
func (e Element) Inv() (Element, error) {
	inv, err := e.f.Inv(e.v)
	if err != nil {
		return Element{}, err
	}
	return Element{inv, e.f}, nil
}

// Eq reports whether e and o are equal; it does not compare their Field.
func (e Element) Eq(o Element) bool {
	return e.v.Cmp(o.v) == 0
}

func (e Element) String() string { return e.v.String() }
