package curve

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestPairingSanity matches the spec's literal pairing scenario:
// e(P, Q) * e(-P, Q) = 1 and e(P, Q+R) = e(P, Q) * e(P, R).
func TestPairingSanity(t *testing.T) {
	a, _ := rand.Int(rand.Reader, Order)
	b, _ := rand.Int(rand.Reader, Order)
	c, _ := rand.Int(rand.Reader, Order)

	p := G1ScalarMul(G1Generator(), a)
	q := G2ScalarMul(G2Generator(), b)
	r := G2ScalarMul(G2Generator(), c)

	ok, err := PairingCheck([]Pair{{A: p, B: q}, {A: G1Neg(p), B: q}})
	if err != nil {
		t.Fatalf("PairingCheck: %v", err)
	}
	if !ok {
		t.Errorf("e(P,Q)*e(-P,Q) != 1")
	}

	lhs := PairE(p, G2Add(q, r))
	rhsFactor1 := PairE(p, q)
	rhsFactor2 := PairE(p, r)
	rhs := new(GT).Add(rhsFactor1, rhsFactor2)

	if diff := cmp.Diff(lhs.Marshal(), rhs.Marshal()); diff != "" {
		t.Errorf("e(P,Q+R) != e(P,Q)*e(P,R) (-lhs +rhs):\n%s", diff)
	}
}

func TestPairingCheckEmpty(t *testing.T) {
	if _, err := PairingCheck(nil); err != ErrEmptyPairing {
		t.Errorf("PairingCheck(nil): got err %v, want ErrEmptyPairing", err)
	}
}

func TestG1Homomorphism(t *testing.T) {
	a, _ := rand.Int(rand.Reader, Order)
	b, _ := rand.Int(rand.Reader, Order)

	sum := new(big.Int).Mod(new(big.Int).Add(a, b), Order)

	lhs := G1ScalarMul(G1Generator(), sum)
	rhs := G1Add(G1ScalarMul(G1Generator(), a), G1ScalarMul(G1Generator(), b))

	if !bytes.Equal(lhs.Marshal(), rhs.Marshal()) {
		t.Errorf("[a+b]G != [a]G + [b]G")
	}
}

func TestGeneratorsInSubgroup(t *testing.T) {
	if !G1InSubgroup(G1Generator()) {
		t.Errorf("G1 generator reported outside its own subgroup")
	}
	if !G2InSubgroup(G2Generator()) {
		t.Errorf("G2 generator reported outside its own subgroup")
	}
}

func TestPackEIP197Size(t *testing.T) {
	pairs := []Pair{
		{A: G1Generator(), B: G2Generator()},
		{A: G1Generator(), B: G2Generator()},
	}
	packed := PackEIP197(pairs)
	if got, want := len(packed), 192*len(pairs); got != want {
		t.Errorf("len(PackEIP197) = %d, want %d", got, want)
	}
}

