// Package curve wraps BN254 (alt_bn128) group and pairing operations, the
// curve underlying the EIP-196/197 precompiles, over
// github.com/ethereum/go-ethereum/crypto/bn256/cloudflare.
package curve

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
)

// ErrEmptyPairing is returned by PairingCheck when called with no pairs.
var ErrEmptyPairing = errors.New("curve: pairing check requires at least one pair")

// ErrNotOnCurve is returned when a decoded point does not satisfy its
// curve equation.
var ErrNotOnCurve = errors.New("curve: point is not on the curve")

// ErrNotInSubgroup is returned when a decoded point lies on the curve but
// outside the prime-order subgroup.
var ErrNotInSubgroup = errors.New("curve: point is not in the prime-order subgroup")

// Order is the BN254 scalar field order r, re-exported from bn256 so callers
// need not import the underlying package directly.
var Order = bn256.Order

// G1 is a point on the BN254 base curve.
type G1 = bn256.G1

// G2 is a point on the BN254 twist curve.
type G2 = bn256.G2

// GT is a target-group element produced by a pairing.
type GT = bn256.GT

// G1Generator returns the canonical BN254 G1 generator (1, 2).
func G1Generator() *G1 {
	return new(G1).ScalarBaseMult(big.NewInt(1))
}

// G2Generator returns the canonical BN254 G2 generator.
func G2Generator() *G2 {
	return new(G2).ScalarBaseMult(big.NewInt(1))
}

// G1Add returns a+b.
func G1Add(a, b *G1) *G1 { return new(G1).Add(a, b) }

// G1Neg returns -a.
func G1Neg(a *G1) *G1 { return new(G1).Neg(a) }

// G1Sub returns a-b.
func G1Sub(a, b *G1) *G1 { return G1Add(a, G1Neg(b)) }

// G1ScalarMul returns scalar*a. scalar is interpreted as an integer in
// [0, r); the underlying implementation reduces it internally.
func G1ScalarMul(a *G1, scalar *big.Int) *G1 { return new(G1).ScalarMult(a, scalar) }

// G1IsOnCurve reports whether the point encoded by p (after a
// marshal/unmarshal round trip, which cloudflare's bn256 validates) is a
// valid point on G1's curve and within its prime-order subgroup. BN254's G1
// has cofactor 1, so on-curve implies in-subgroup.
func G1IsOnCurve(p *G1) bool {
	_, err := new(G1).Unmarshal(p.Marshal())
	return err == nil
}

// G1Affine canonicalizes p, returning an equivalent point (bn256's G1 has no
// separate Jacobian representation exposed to callers, so this is
// idempotent; it exists to satisfy the "convert to affine before pairing"
// contract explicitly, matching spec wording).
func G1Affine(p *G1) *G1 { return new(G1).Add(p, new(G1).ScalarBaseMult(big.NewInt(0))) }

// G2Add returns a+b.
func G2Add(a, b *G2) *G2 { return new(G2).Add(a, b) }

// G2Neg returns -a.
func G2Neg(a *G2) *G2 { return new(G2).Neg(a) }

// G2Sub returns a-b.
func G2Sub(a, b *G2) *G2 { return G2Add(a, G2Neg(b)) }

// G2ScalarMul returns scalar*a.
func G2ScalarMul(a *G2, scalar *big.Int) *G2 { return new(G2).ScalarMult(a, scalar) }

// G2IsOnCurve reports whether p is a valid G2 point in the prime-order
// subgroup (cloudflare's Unmarshal rejects points outside the subgroup).
func G2IsOnCurve(p *G2) bool {
	_, err := new(G2).Unmarshal(p.Marshal())
	return err == nil
}

// G2Affine canonicalizes p; see G1Affine.
func G2Affine(p *G2) *G2 { return new(G2).Add(p, new(G2).ScalarBaseMult(big.NewInt(0))) }

// G1InSubgroup reports whether p has order dividing Order, i.e. Order*p is
// the identity. BN254's G1 has cofactor 1 so this always holds for an
// on-curve point, but the check is cheap and makes the subgroup guarantee
// explicit at the SRS-loading boundary rather than relying on that fact.
func G1InSubgroup(p *G1) bool {
	return isG1Identity(G1ScalarMul(p, Order))
}

// G2InSubgroup reports whether p has order dividing Order.
func G2InSubgroup(p *G2) bool {
	return isG2Identity(G2ScalarMul(p, Order))
}

func isG1Identity(p *G1) bool {
	return bytes.Equal(p.Marshal(), new(G1).ScalarBaseMult(big.NewInt(0)).Marshal())
}

func isG2Identity(p *G2) bool {
	return bytes.Equal(p.Marshal(), new(G2).ScalarBaseMult(big.NewInt(0)).Marshal())
}

// PairE computes the optimal-ate pairing e(a, b) into GT.
func PairE(a *G1, b *G2) *GT { return bn256.Pair(a, b) }

// GTEqual reports whether two GT elements are equal, via their canonical
// marshaled form (GT exposes no direct equality operator).
func GTEqual(a, b *GT) bool { return bytes.Equal(a.Marshal(), b.Marshal()) }

// Pair is a single (G1, G2) factor of a batched pairing product check.
type Pair struct {
	A *G1
	B *G2
}

// PairingCheck returns true iff Π e(pairs[i].A, pairs[i].B) == 1_GT. All
// inputs are affine already (bn256 has no separate projective type exposed
// to callers); the empty list is rejected with ErrEmptyPairing.
func PairingCheck(pairs []Pair) (bool, error) {
	if len(pairs) == 0 {
		return false, ErrEmptyPairing
	}
	as := make([]*G1, len(pairs))
	bs := make([]*G2, len(pairs))
	for i, p := range pairs {
		as[i] = p.A
		bs[i] = p.B
	}
	return bn256.PairingCheck(as, bs), nil
}

// eip197WordSize is the width, in bytes, of each big-endian integer in the
// EIP-197 precompile's byte layout.
const eip197WordSize = 32

func toWord(x *big.Int) []byte {
	buf := make([]byte, eip197WordSize)
	b := x.Bytes()
	if len(b) > eip197WordSize {
		panic(fmt.Sprintf("curve: field element does not fit in %d bytes: %v", eip197WordSize, x))
	}
	copy(buf[eip197WordSize-len(b):], b)
	return buf
}

// G1Coords returns the affine (x, y) coordinates of p as big.Ints by
// unmarshaling its canonical 64-byte encoding.
func G1Coords(p *G1) (x, y *big.Int) {
	m := p.Marshal()
	return new(big.Int).SetBytes(m[:32]), new(big.Int).SetBytes(m[32:64])
}

// G2Coords returns the affine (x0, x1, y0, y1) coordinates of p, where the
// G2 element is x0 + x1*u, y0 + y1*u, by unmarshaling its canonical 128-byte
// encoding. cloudflare's bn256 Marshal order is (x1, x0, y1, y0); the
// returned values are already remapped to (x0, x1, y0, y1) so callers never
// have to reason about the underlying library's internal convention.
func G2Coords(p *G2) (x0, x1, y0, y1 *big.Int) {
	m := p.Marshal()
	x1 = new(big.Int).SetBytes(m[0:32])
	x0 = new(big.Int).SetBytes(m[32:64])
	y1 = new(big.Int).SetBytes(m[64:96])
	y0 = new(big.Int).SetBytes(m[96:128])
	return x0, x1, y0, y1
}

// PackEIP197 serializes pairs into the 192-bytes-per-pair layout the
// EIP-197 precompile expects: for each pair, A.x, A.y, B.x[1], B.x[0],
// B.y[1], B.y[0], each a 32-byte big-endian integer (note the G2 coordinate
// ordering is imaginary-component first).
func PackEIP197(pairs []Pair) []byte {
	out := make([]byte, 0, len(pairs)*192)
	for _, p := range pairs {
		ax, ay := G1Coords(p.A)
		x0, x1, y0, y1 := G2Coords(p.B)
		out = append(out, toWord(ax)...)
		out = append(out, toWord(ay)...)
		out = append(out, toWord(x1)...)
		out = append(out, toWord(x0)...)
		out = append(out, toWord(y1)...)
		out = append(out, toWord(y0)...)
	}
	return out
}
