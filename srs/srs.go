// Package srs loads and validates the structured reference string (SRS)
// used by the commitment and proof engines: [G, tau*G, tau^2*G, ...] in both
// BN254 groups, produced by a trusted setup ceremony.
//
// The implementer must document and ship only the values from Perpetual
// Powers of Tau challenge #46 (Blake2b hash 939038cd...444dfbed) unless the
// caller opts into test values via LoadEmbeddedTest.
package srs

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/cxkoda/kzg254/curve"
	"github.com/cxkoda/kzg254/field"
	"github.com/cxkoda/kzg254/poly"
)

// ErrMalformed is returned when the SRS file content fails validation:
// generator mismatch, insufficient length, or an invalid point.
type ErrMalformed struct {
	Index int
	Msg   string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("srs: malformed at index %d: %s", e.Index, e.Msg)
}

// SRS is the trusted setup's structured reference string: powers of a
// secret tau in both groups, with g1Powers[0] and g2Powers[0] the canonical
// generators.
type SRS struct {
	g1Powers []*curve.G1
	g2Powers []*curve.G2
}

// G1At returns the i-th G1 power, tau^i * G1.
func (s *SRS) G1At(i int) (*curve.G1, error) {
	if i < 0 || i >= len(s.g1Powers) {
		return nil, fmt.Errorf("srs: G1 index %d out of range [0,%d)", i, len(s.g1Powers))
	}
	return s.g1Powers[i], nil
}

// G2At returns the i-th G2 power, tau^i * G2.
func (s *SRS) G2At(i int) (*curve.G2, error) {
	if i < 0 || i >= len(s.g2Powers) {
		return nil, fmt.Errorf("srs: G2 index %d out of range [0,%d)", i, len(s.g2Powers))
	}
	return s.g2Powers[i], nil
}

// NumG1 returns the number of available G1 powers.
func (s *SRS) NumG1() int { return len(s.g1Powers) }

// NumG2 returns the number of available G2 powers.
func (s *SRS) NumG2() int { return len(s.g2Powers) }

// g1Hex is the wire format for a single G1 file entry: [x_hex, y_hex].
type g1Hex [2]string

// g2Hex is the wire format for a single G2 file entry: [x0_hex, x1_hex,
// y0_hex, y1_hex], the coordinate being x0 + x1*u, y0 + y1*u.
type g2Hex [4]string

func parseHex(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(trimHexPrefix(s), 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return x, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func decodeG1Point(h g1Hex) (*curve.G1, error) {
	x, err := parseHex(h[0])
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y, err := parseHex(h[1])
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	m := make([]byte, 64)
	xb, yb := x.Bytes(), y.Bytes()
	copy(m[32-len(xb):32], xb)
	copy(m[64-len(yb):64], yb)
	p := new(curve.G1)
	if _, err := p.Unmarshal(m); err != nil {
		return nil, fmt.Errorf("%w: %v", curve.ErrNotOnCurve, err)
	}
	return p, nil
}

func decodeG2Point(h g2Hex) (*curve.G2, error) {
	x0, err := parseHex(h[0])
	if err != nil {
		return nil, fmt.Errorf("x0: %w", err)
	}
	x1, err := parseHex(h[1])
	if err != nil {
		return nil, fmt.Errorf("x1: %w", err)
	}
	y0, err := parseHex(h[2])
	if err != nil {
		return nil, fmt.Errorf("y0: %w", err)
	}
	y1, err := parseHex(h[3])
	if err != nil {
		return nil, fmt.Errorf("y1: %w", err)
	}
	// cloudflare's bn256 G2 marshaled order is (x1, x0, y1, y0); see
	// curve.G2Coords for the inverse remapping.
	m := make([]byte, 128)
	put := func(off int, v *big.Int) {
		b := v.Bytes()
		copy(m[off+32-len(b):off+32], b)
	}
	put(0, x1)
	put(32, x0)
	put(64, y1)
	put(96, y0)
	p := new(curve.G2)
	if _, err := p.Unmarshal(m); err != nil {
		return nil, fmt.Errorf("%w: %v", curve.ErrNotOnCurve, err)
	}
	return p, nil
}

// Load reads two JSON files of hex-encoded affine coordinates (spec's wire
// format) and builds a validated SRS with capG1+1 G1 powers and capG2+1 G2
// powers.
func Load(g1Path, g2Path string, capG1, capG2 int) (*SRS, error) {
	if capG1 < 1 || capG2 < 1 {
		return nil, &ErrMalformed{Index: -1, Msg: "capG1 and capG2 must both be >= 1"}
	}

	var g1Entries []g1Hex
	if err := readJSONFile(g1Path, &g1Entries); err != nil {
		return nil, fmt.Errorf("srs: reading G1 file: %w", err)
	}
	var g2Entries []g2Hex
	if err := readJSONFile(g2Path, &g2Entries); err != nil {
		return nil, fmt.Errorf("srs: reading G2 file: %w", err)
	}

	if capG1 > len(g1Entries) {
		return nil, &ErrMalformed{Index: -1, Msg: fmt.Sprintf("capG1 %d exceeds file count %d", capG1, len(g1Entries))}
	}
	if capG2 > len(g2Entries) {
		return nil, &ErrMalformed{Index: -1, Msg: fmt.Sprintf("capG2 %d exceeds file count %d", capG2, len(g2Entries))}
	}

	g1Powers := make([]*curve.G1, capG1+1)
	for i := 0; i <= capG1 && i < len(g1Entries); i++ {
		p, err := decodeG1Point(g1Entries[i])
		if err != nil {
			return nil, &ErrMalformed{Index: i, Msg: err.Error()}
		}
		if !curve.G1InSubgroup(p) {
			return nil, &ErrMalformed{Index: i, Msg: curve.ErrNotInSubgroup.Error()}
		}
		g1Powers[i] = p
	}

	g2Powers := make([]*curve.G2, capG2+1)
	for i := 0; i <= capG2 && i < len(g2Entries); i++ {
		p, err := decodeG2Point(g2Entries[i])
		if err != nil {
			return nil, &ErrMalformed{Index: i, Msg: err.Error()}
		}
		if !curve.G2InSubgroup(p) {
			return nil, &ErrMalformed{Index: i, Msg: curve.ErrNotInSubgroup.Error()}
		}
		g2Powers[i] = p
	}

	gen1 := curve.G1Generator()
	if !bytesEqualG1(g1Powers[0], gen1) {
		return nil, &ErrMalformed{Index: 0, Msg: "g1Powers[0] is not the canonical G1 generator"}
	}
	gen2 := curve.G2Generator()
	if !bytesEqualG2(g2Powers[0], gen2) {
		return nil, &ErrMalformed{Index: 0, Msg: "g2Powers[0] is not the canonical G2 generator"}
	}

	return &SRS{g1Powers: g1Powers, g2Powers: g2Powers}, nil
}

func readJSONFile(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func bytesEqualG1(a, b *curve.G1) bool { return string(a.Marshal()) == string(b.Marshal()) }
func bytesEqualG2(a, b *curve.G2) bool { return string(a.Marshal()) == string(b.Marshal()) }

// LoadEmbeddedTest computes a small SRS directly from an explicit test
// secret rather than loading a ceremony transcript. Its callers are the unit
// tests and the local kzgdemo command; the secret is known to the caller, so
// the result is not a trusted setup. This is the opt-in "test values" path spec.md calls for,
// grounded on the teacher's own kzg/main.go init() pattern of committing to
// a hardcoded secret for unit tests.
func LoadEmbeddedTest(secret *big.Int, maxDegree int) *SRS {
	powers := poly.ComputePowers(secret, maxDegree+1, field.BN254)

	g1Powers := make([]*curve.G1, len(powers))
	g2Powers := make([]*curve.G2, len(powers))
	for i, p := range powers {
		g1Powers[i] = curve.G1ScalarMul(curve.G1Generator(), p)
		g2Powers[i] = curve.G2ScalarMul(curve.G2Generator(), p)
	}
	return &SRS{g1Powers: g1Powers, g2Powers: g2Powers}
}
