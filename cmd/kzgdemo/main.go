// Command kzgdemo exercises the commit/prove/verify engine end to end
// against a small embedded test SRS. It is a local demo binary, not a
// trusted-setup-backed tool: see srs.LoadEmbeddedTest.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cxkoda/kzg254/commitment"
	"github.com/cxkoda/kzg254/curve"
	"github.com/cxkoda/kzg254/field"
	"github.com/cxkoda/kzg254/poly"
	"github.com/cxkoda/kzg254/proof"
	"github.com/cxkoda/kzg254/srs"
)

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var demoSecret = big.NewInt(1337)

func loadSRS(maxDegree int) *srs.SRS {
	return srs.LoadEmbeddedTest(demoSecret, maxDegree)
}

func parseCoeffs(s string) (*poly.Polynomial, error) {
	parts := strings.Split(s, ",")
	vals := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d (%q): %w", i, p, err)
		}
		vals[i] = v
	}
	return poly.NewFromInt64s(vals), nil
}

func coeffsFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "coeffs",
		Usage:    "comma-separated polynomial coefficients, lowest degree first",
		Required: true,
	}
}

func commitCmd() *cli.Command {
	return &cli.Command{
		Name:  "commit",
		Usage: "compute the G1 commitment of a polynomial",
		Flags: []cli.Flag{coeffsFlag()},
		Action: func(c *cli.Context) error {
			p, err := parseCoeffs(c.String("coeffs"))
			if err != nil {
				return err
			}
			s := loadSRS(p.Degree())
			com, err := commitment.CommitG1(*p, s)
			if err != nil {
				return err
			}
			x, y := curve.G1Coords(com)
			fmt.Printf("commit = (%s, %s)\n", x, y)
			return nil
		},
	}
}

func proveCmd() *cli.Command {
	return &cli.Command{
		Name:  "prove",
		Usage: "compute a single-point opening proof for p(z)",
		Flags: []cli.Flag{
			coeffsFlag(),
			&cli.Int64Flag{Name: "z", Usage: "evaluation point", Required: true},
		},
		Action: func(c *cli.Context) error {
			p, err := parseCoeffs(c.String("coeffs"))
			if err != nil {
				return err
			}
			z := big.NewInt(c.Int64("z"))
			s := loadSRS(p.Degree())

			pr, err := proof.Prove(p, z, s)
			if err != nil {
				return err
			}
			y := p.Evaluate(z, field.BN254)
			px, py := curve.G1Coords(pr)
			fmt.Printf("y = %s\n", y)
			fmt.Printf("proof = (%s, %s)\n", px, py)
			return nil
		},
	}
}

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check a single-point opening proof",
		Flags: []cli.Flag{
			coeffsFlag(),
			&cli.Int64Flag{Name: "z", Usage: "evaluation point", Required: true},
		},
		Action: func(c *cli.Context) error {
			p, err := parseCoeffs(c.String("coeffs"))
			if err != nil {
				return err
			}
			z := big.NewInt(c.Int64("z"))
			s := loadSRS(p.Degree())

			com, err := commitment.CommitG1(*p, s)
			if err != nil {
				return err
			}
			pr, err := proof.Prove(p, z, s)
			if err != nil {
				return err
			}
			y := p.Evaluate(z, field.BN254)

			ok := proof.Verify(com, pr, z, y, s)
			fmt.Println(ok)
			return nil
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "kzgdemo",
		Usage: "commit/prove/verify over BN254 against an embedded test SRS",
		Commands: []*cli.Command{
			commitCmd(),
			proveCmd(),
			verifyCmd(),
		},
	}
	check(app.Run(os.Args))
}
