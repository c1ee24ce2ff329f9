// Package commitment computes KZG commitments: multi-scalar multiplications
// of polynomial coefficients against SRS powers, in either BN254 group.
package commitment

import (
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cxkoda/kzg254/curve"
	"github.com/cxkoda/kzg254/srs"
)

// CommitG1 computes Sum_i coeffs[i] * g1Powers[i]. The empty or all-zero
// polynomial commits to the G1 identity. len(coeffs) must not exceed the
// SRS's available G1 powers.
func CommitG1(coeffs []*big.Int, s *srs.SRS) (*curve.G1, error) {
	if len(coeffs) > s.NumG1() {
		return nil, fmt.Errorf("commitment: len(coeffs) %d exceeds SRS G1 capacity %d", len(coeffs), s.NumG1())
	}
	acc := curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0))
	for i, c := range coeffs {
		p, err := s.G1At(i)
		if err != nil {
			return nil, err
		}
		acc = curve.G1Add(acc, curve.G1ScalarMul(p, c))
	}
	return acc, nil
}

// CommitG2 computes Sum_i coeffs[i] * g2Powers[i].
func CommitG2(coeffs []*big.Int, s *srs.SRS) (*curve.G2, error) {
	if len(coeffs) > s.NumG2() {
		return nil, fmt.Errorf("commitment: len(coeffs) %d exceeds SRS G2 capacity %d", len(coeffs), s.NumG2())
	}
	acc := curve.G2ScalarMul(curve.G2Generator(), big.NewInt(0))
	for i, c := range coeffs {
		p, err := s.G2At(i)
		if err != nil {
			return nil, err
		}
		acc = curve.G2Add(acc, curve.G2ScalarMul(p, c))
	}
	return acc, nil
}

// CommitG1Parallel computes the same result as CommitG1, but splits the
// coefficient range into contiguous chunks evaluated concurrently across
// GOMAXPROCS workers via errgroup, then combines the per-chunk partial sums
// in a fixed, index-ordered reduction. The chunking is deterministic given
// len(coeffs) and runtime.GOMAXPROCS, so the result is bit-identical to
// CommitG1 for the same inputs.
func CommitG1Parallel(coeffs []*big.Int, s *srs.SRS) (*curve.G1, error) {
	if len(coeffs) > s.NumG1() {
		return nil, fmt.Errorf("commitment: len(coeffs) %d exceeds SRS G1 capacity %d", len(coeffs), s.NumG1())
	}
	if len(coeffs) == 0 {
		return curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0)), nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(coeffs) {
		numWorkers = len(coeffs)
	}
	chunkSize := (len(coeffs) + numWorkers - 1) / numWorkers

	partials := make([]*curve.G1, numWorkers)
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > len(coeffs) {
			end = len(coeffs)
		}
		if start >= end {
			partials[w] = curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0))
			continue
		}
		g.Go(func() error {
			acc := curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0))
			for i := start; i < end; i++ {
				p, err := s.G1At(i)
				if err != nil {
					return err
				}
				acc = curve.G1Add(acc, curve.G1ScalarMul(p, coeffs[i]))
			}
			partials[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := curve.G1ScalarMul(curve.G1Generator(), big.NewInt(0))
	for _, p := range partials {
		acc = curve.G1Add(acc, p)
	}
	return acc, nil
}

// CommitG2Parallel is the G2 analogue of CommitG1Parallel.
func CommitG2Parallel(coeffs []*big.Int, s *srs.SRS) (*curve.G2, error) {
	if len(coeffs) > s.NumG2() {
		return nil, fmt.Errorf("commitment: len(coeffs) %d exceeds SRS G2 capacity %d", len(coeffs), s.NumG2())
	}
	if len(coeffs) == 0 {
		return curve.G2ScalarMul(curve.G2Generator(), big.NewInt(0)), nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(coeffs) {
		numWorkers = len(coeffs)
	}
	chunkSize := (len(coeffs) + numWorkers - 1) / numWorkers

	partials := make([]*curve.G2, numWorkers)
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > len(coeffs) {
			end = len(coeffs)
		}
		if start >= end {
			partials[w] = curve.G2ScalarMul(curve.G2Generator(), big.NewInt(0))
			continue
		}
		g.Go(func() error {
			acc := curve.G2ScalarMul(curve.G2Generator(), big.NewInt(0))
			for i := start; i < end; i++ {
				p, err := s.G2At(i)
				if err != nil {
					return err
				}
				acc = curve.G2Add(acc, curve.G2ScalarMul(p, coeffs[i]))
			}
			partials[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := curve.G2ScalarMul(curve.G2Generator(), big.NewInt(0))
	for _, p := range partials {
		acc = curve.G2Add(acc, p)
	}
	return acc, nil
}
