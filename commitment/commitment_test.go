package commitment

import (
	"math/big"
	"testing"

	"github.com/cxkoda/kzg254/curve"
	"github.com/cxkoda/kzg254/field"
	"github.com/cxkoda/kzg254/poly"
	"github.com/cxkoda/kzg254/srs"
)

func testSRS(t *testing.T) *srs.SRS {
	t.Helper()
	return srs.LoadEmbeddedTest(big.NewInt(1337), 16)
}

func TestCommitG1Homomorphism(t *testing.T) {
	s := testSRS(t)
	f := field.BN254

	p := poly.NewFromInt64s([]int64{1, 2, 3})
	q := poly.NewFromInt64s([]int64{4, 5, 6, 7})

	cp, err := CommitG1(*p, s)
	if err != nil {
		t.Fatalf("CommitG1(p): %v", err)
	}
	cq, err := CommitG1(*q, s)
	if err != nil {
		t.Fatalf("CommitG1(q): %v", err)
	}

	sum := p.Add(q, f)
	cSum, err := CommitG1(*sum, s)
	if err != nil {
		t.Fatalf("CommitG1(p+q): %v", err)
	}

	want := curve.G1Add(cp, cq)
	if string(cSum.Marshal()) != string(want.Marshal()) {
		t.Errorf("commit(p+q) != commit(p) + commit(q)")
	}

	alpha := big.NewInt(42)
	scaled := p.Mul(poly.NewFromInt64s([]int64{42}), f)
	cScaled, err := CommitG1(*scaled, s)
	if err != nil {
		t.Fatalf("CommitG1(alpha*p): %v", err)
	}
	wantScaled := curve.G1ScalarMul(cp, alpha)
	if string(cScaled.Marshal()) != string(wantScaled.Marshal()) {
		t.Errorf("commit(alpha*p) != alpha*commit(p)")
	}
}

func TestCommitG1EmptyIsIdentity(t *testing.T) {
	s := testSRS(t)
	identity := curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0))

	got, err := CommitG1(nil, s)
	if err != nil {
		t.Fatalf("CommitG1(nil): %v", err)
	}
	if string(got.Marshal()) != string(identity.Marshal()) {
		t.Errorf("CommitG1(nil) != identity")
	}
}

func TestCommitG1ParallelMatchesSequential(t *testing.T) {
	s := testSRS(t)
	coeffs := make([]*big.Int, 17)
	for i := range coeffs {
		coeffs[i] = big.NewInt(int64(i*7 + 3))
	}

	seq, err := CommitG1(coeffs, s)
	if err != nil {
		t.Fatalf("CommitG1: %v", err)
	}
	par, err := CommitG1Parallel(coeffs, s)
	if err != nil {
		t.Fatalf("CommitG1Parallel: %v", err)
	}

	if string(seq.Marshal()) != string(par.Marshal()) {
		t.Errorf("CommitG1Parallel != CommitG1 for the same coefficients")
	}
}

func TestCommitG2ParallelMatchesSequential(t *testing.T) {
	s := testSRS(t)
	coeffs := make([]*big.Int, 9)
	for i := range coeffs {
		coeffs[i] = big.NewInt(int64(i*3 + 1))
	}

	seq, err := CommitG2(coeffs, s)
	if err != nil {
		t.Fatalf("CommitG2: %v", err)
	}
	par, err := CommitG2Parallel(coeffs, s)
	if err != nil {
		t.Fatalf("CommitG2Parallel: %v", err)
	}

	if string(seq.Marshal()) != string(par.Marshal()) {
		t.Errorf("CommitG2Parallel != CommitG2 for the same coefficients")
	}
}

func TestCommitG1ExceedsCapacity(t *testing.T) {
	s := srs.LoadEmbeddedTest(big.NewInt(7), 2)
	coeffs := make([]*big.Int, 10)
	for i := range coeffs {
		coeffs[i] = big.NewInt(1)
	}
	if _, err := CommitG1(coeffs, s); err == nil {
		t.Fatalf("CommitG1 with too many coefficients: want error, got nil")
	}
}
