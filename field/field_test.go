package field

import (
	cryptorand "crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func TestArithmetic(t *testing.T) {
	f := NewField(big.NewInt(7))

	tests := []struct {
		name string
		got  *big.Int
		want int64
	}{
		{"Add", f.Add(big.NewInt(5), big.NewInt(4)), 2},
		{"Sub", f.Sub(big.NewInt(2), big.NewInt(5)), 4},
		{"Neg", f.Neg(big.NewInt(3)), 4},
		{"Mul", f.Mul(big.NewInt(5), big.NewInt(6)), 2},
		{"Pow", f.Pow(big.NewInt(3), big.NewInt(4)), 4}, // 81 mod 7 = 4
	}

	for _, tt := range tests {
		if tt.got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestInv(t *testing.T) {
	f := NewField(big.NewInt(7))

	inv, err := f.Inv(big.NewInt(3))
	if err != nil {
		t.Fatalf("Inv(3): %v", err)
	}
	if got := f.Mul(big.NewInt(3), inv); got.Cmp(bigOne) != 0 {
		t.Errorf("3 * Inv(3) = %v, want 1", got)
	}

	if _, err := f.Inv(big.NewInt(0)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("Inv(0): got err %v, want ErrNoInverse", err)
	}
}

func TestDivByZero(t *testing.T) {
	f := NewField(big.NewInt(7))
	if _, err := f.Div(big.NewInt(1), big.NewInt(0)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("Div by zero: got err %v, want wrapping ErrNoInverse", err)
	}
}

func TestElement(t *testing.T) {
	f := NewField(big.NewInt(11))

	a := FromInt64(8, f)
	b := FromInt64(5, f)

	if got := a.Add(b); got.BigInt().Cmp(big.NewInt(2)) != 0 { // 13 mod 11
		t.Errorf("a+b = %v, want 2", got)
	}
	if got := a.Mul(b); got.BigInt().Cmp(big.NewInt(7)) != 0 { // 40 mod 11
		t.Errorf("a*b = %v, want 7", got)
	}

	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("a.Inv(): %v", err)
	}
	if got := a.Mul(inv).BigInt(); got.Cmp(bigOne) != 0 {
		t.Errorf("a * a.Inv() = %v, want 1", got)
	}

	zero := FromInt64(0, f)
	if _, err := zero.Inv(); !errors.Is(err, ErrNoInverse) {
		t.Errorf("zero.Inv(): got err %v, want ErrNoInverse", err)
	}
}

func TestRandomInRange(t *testing.T) {
	f := NewField(big.NewInt(97))
	for i := 0; i < 32; i++ {
		x, err := f.Random(cryptorand.Reader)
		if err != nil {
			t.Fatalf("Random(): %v", err)
		}
		if x.Sign() < 0 || x.Cmp(f.Order()) >= 0 {
			t.Fatalf("Random() = %v, want in [0, %v)", x, f.Order())
		}
	}
}
