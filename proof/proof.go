// Package proof implements the KZG single-point and multi-point prover and
// verifier, plus the EIP-197-compatible and smart-contract parameter
// packing helpers at the external boundary.
package proof

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cxkoda/kzg254/commitment"
	"github.com/cxkoda/kzg254/curve"
	"github.com/cxkoda/kzg254/field"
	"github.com/cxkoda/kzg254/poly"
	"github.com/cxkoda/kzg254/srs"
)

// ErrOutOfRange is returned by the contract-parameter packers when a field
// element is not strictly less than the BN254 scalar order.
var ErrOutOfRange = errors.New("proof: field element out of range")

// GenCoefficients computes the polynomial p of degree < len(values) with
// p(i) = values[i] for i = 0..len(values)-1.
func GenCoefficients(values []*big.Int) (*poly.Polynomial, error) {
	return poly.GenCoefficients(values, field.BN254)
}

// quotient builds (p(x) - y) / (x - z), which is always exact because
// p(x) - y has a root at z when y = p(z).
func quotient(p *poly.Polynomial, z, y *big.Int, f *field.Field) (*poly.Polynomial, error) {
	numerator := p.Sub(poly.New([]*big.Int{y}), f)
	divisor := poly.New([]*big.Int{f.Neg(z), big.NewInt(1)})
	return numerator.DivExact(divisor, f)
}

// Prove computes a single-point KZG opening proof: a commitment (in G1) to
// q(x) = (p(x) - p(z)) / (x - z).
func Prove(coeffs *poly.Polynomial, z *big.Int, s *srs.SRS) (*curve.G1, error) {
	f := field.BN254
	y := coeffs.Evaluate(z, f)
	q, err := quotient(coeffs, z, y, f)
	if err != nil {
		return nil, fmt.Errorf("proof: computing quotient polynomial: %w", err)
	}
	return commitment.CommitG1(*q, s)
}

// Verify checks a single-point KZG opening: that commitment is a commitment
// to some polynomial p with p(z) = y, given proof = commit(q) where
// q = (p(x) - y) / (x - z).
//
// The algebraic identity checked is
//
//	e(z*proof + (commitment - y*G1), G2) * e(-proof, [tau]_2) == 1
//
// which avoids ever subtracting [tau]_2 - [z]_2 on the G2 side (spec §4.6).
// Per spec §9, y*G1 is computed directly from the G1 generator and [tau]_2 is
// read from the SRS, rather than routed through the general commitment engine.
//
// Any malformed input (out-of-range scalar, invalid point) or a failed
// pairing check returns false; Verify never raises, keeping the verifier
// boundary total over adversary-controlled bytes.
func Verify(commit, proofPoint *curve.G1, z, y *big.Int, s *srs.SRS) bool {
	if !inRange(z) || !inRange(y) {
		return false
	}

	tauG2, err := s.G2At(1)
	if err != nil {
		return false
	}

	// z*proof + (commitment - y*G1)
	zProof := curve.G1ScalarMul(proofPoint, z)
	yG1 := curve.G1ScalarMul(curve.G1Generator(), y)
	lhsG1 := curve.G1Add(zProof, curve.G1Sub(commit, yG1))

	ok, err := curve.PairingCheck([]curve.Pair{
		{A: lhsG1, B: curve.G2Generator()},
		{A: curve.G1Neg(proofPoint), B: tauG2},
	})
	if err != nil {
		return false
	}
	return ok
}

// ProveMulti computes a multi-point KZG opening proof over a set of
// distinct indices zs: a commitment (in G2) to
// q(x) = (p(x) - i(x)) / z(x), where i interpolates the claimed values and z
// vanishes on zs. The quotient lives in G2 so the verifier can pair it
// against the G1 vanishing-polynomial commitment while the polynomial
// commitment itself stays in G1 (spec §4.6, §9) — this asymmetry must not
// be swapped.
func ProveMulti(coeffs *poly.Polynomial, zs []*big.Int, s *srs.SRS) (*curve.G2, error) {
	f := field.BN254

	ys := make([]*big.Int, len(zs))
	for i, z := range zs {
		ys[i] = coeffs.Evaluate(z, f)
	}

	i, err := poly.Interpolate(zs, ys, f)
	if err != nil {
		return nil, fmt.Errorf("proof: interpolating claimed values: %w", err)
	}
	zPoly := poly.ZeroPoly(zs, f)

	q, err := coeffs.Sub(i, f).DivExact(zPoly, f)
	if err != nil {
		return nil, fmt.Errorf("proof: computing multi-point quotient: %w", err)
	}

	return commitment.CommitG2(*q, s)
}

// VerifyMulti checks a multi-point KZG opening: that commit is a commitment
// to some polynomial p with p(zs[j]) = ys[j] for every j, given proof =
// commit_g2(q) where q = (p(x) - i(x)) / z(x).
//
// The pairing identity checked is e(-[z]_1, proof) * e(commit - [i]_1, G2) ==
// 1, equivalently e([z]_1, proof) == e(commit - [i]_1, G2).
func VerifyMulti(commit *curve.G1, proofPoint *curve.G2, zs, ys []*big.Int, s *srs.SRS) bool {
	if len(zs) != len(ys) || len(zs) == 0 {
		return false
	}
	for _, z := range zs {
		if !inRange(z) {
			return false
		}
	}
	for _, y := range ys {
		if !inRange(y) {
			return false
		}
	}

	f := field.BN254
	i, err := poly.Interpolate(zs, ys, f)
	if err != nil {
		return false
	}
	zPoly := poly.ZeroPoly(zs, f)

	iCommit, err := commitment.CommitG1(*i, s)
	if err != nil {
		return false
	}
	zCommit, err := commitment.CommitG1(*zPoly, s)
	if err != nil {
		return false
	}

	ok, err := curve.PairingCheck([]curve.Pair{
		{A: curve.G1Neg(zCommit), B: proofPoint},
		{A: curve.G1Sub(commit, iCommit), B: curve.G2Generator()},
	})
	if err != nil {
		return false
	}
	return ok
}

func inRange(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(curve.Order) < 0
}

// VerifierParams is the six-256-bit-integer form of a single-point claim at
// the smart-contract-compatible verifier boundary (spec §6).
type VerifierParams struct {
	Cx, Cy *big.Int
	Px, Py *big.Int
	Z, Y   *big.Int
}

// PackVerifierParams serializes a single-point claim into the
// contract-compatible six-integer form, failing with ErrOutOfRange if any
// value is not strictly less than the BN254 scalar order.
func PackVerifierParams(commit, proofPoint *curve.G1, z, y *big.Int) (*VerifierParams, error) {
	cx, cy := curve.G1Coords(commit)
	px, py := curve.G1Coords(proofPoint)
	for _, v := range []*big.Int{cx, cy, px, py, z, y} {
		if !inRange(v) {
			return nil, ErrOutOfRange
		}
	}
	return &VerifierParams{Cx: cx, Cy: cy, Px: px, Py: py, Z: z, Y: y}, nil
}

// MultiVerifierParams is the multi-point contract parameter packer's output:
// the claim itself plus the interpolating and vanishing polynomials in
// coefficient form, each coefficient reduced mod r, so an on-chain verifier
// can recompute iCommit/zCommit without trusting the off-chain prover (spec
// §4.6's "on-chain variant"). Coefficients are emitted in canonical form:
// truncated to the polynomial's true degree, no forced trailing-zero
// padding (see DESIGN.md Open Question #2).
type MultiVerifierParams struct {
	Commitment *curve.G1
	Proof      *curve.G2
	Zs, Ys     []*big.Int
	ICoeffs    []*big.Int
	ZCoeffs    []*big.Int
}

// PackMultiVerifierParams produces (C, proof, Z, Y, iCoeffs, zCoeffs) for a
// multi-point claim.
func PackMultiVerifierParams(commit *curve.G1, proofPoint *curve.G2, zs, ys []*big.Int) (*MultiVerifierParams, error) {
	if len(zs) != len(ys) || len(zs) == 0 {
		return nil, fmt.Errorf("proof: zs and ys must be equal-length and nonempty")
	}
	for _, v := range zs {
		if !inRange(v) {
			return nil, ErrOutOfRange
		}
	}
	for _, v := range ys {
		if !inRange(v) {
			return nil, ErrOutOfRange
		}
	}

	f := field.BN254
	i, err := poly.Interpolate(zs, ys, f)
	if err != nil {
		return nil, fmt.Errorf("proof: interpolating claimed values: %w", err)
	}
	zPoly := poly.ZeroPoly(zs, f)

	return &MultiVerifierParams{
		Commitment: commit,
		Proof:      proofPoint,
		Zs:         zs,
		Ys:         ys,
		ICoeffs:    canonicalCoeffs(i),
		ZCoeffs:    canonicalCoeffs(zPoly),
	}, nil
}

func canonicalCoeffs(p *poly.Polynomial) []*big.Int {
	out := make([]*big.Int, p.Degree()+1)
	for i := range out {
		out[i] = new(big.Int).Set((*p)[i])
	}
	return out
}
