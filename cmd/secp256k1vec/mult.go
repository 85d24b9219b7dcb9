package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	secp256k1 "github.com/ModChain/secp256k1math"
)

// MultCommand creates the mult command
func MultCommand() *cli.Command {
	return &cli.Command{
		Name:  "mult",
		Usage: "Multiply a point by a scalar (the base point when --x and --y are omitted)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "x",
				Usage: "Affine x coordinate (hex)",
			},
			&cli.StringFlag{
				Name:  "y",
				Usage: "Affine y coordinate (hex)",
			},
			&cli.StringFlag{
				Name:     "k",
				Usage:    "Scalar (hex), not reduced",
				Required: true,
			},
		},
		Action: runMultCommand,
	}
}

func runMultCommand(ctx context.Context, cmd *cli.Command) error {
	k, err := parseHexScalar("k", cmd.String("k"))
	if err != nil {
		return err
	}

	xHex, yHex := cmd.String("x"), cmd.String("y")
	if (xHex == "") != (yHex == "") {
		return fmt.Errorf("--x and --y must be provided together")
	}

	point := secp256k1.Generator()
	if xHex != "" {
		x, err := parseHexScalar("x", xHex)
		if err != nil {
			return err
		}
		y, err := parseHexScalar("y", yHex)
		if err != nil {
			return err
		}
		point, err = secp256k1.NewAffinePointFromBig(x, y)
		if err != nil {
			return fmt.Errorf("invalid point: %w", err)
		}
	}

	result := secp256k1.ScalarMult(point, k)
	w := cmd.Root().Writer
	if result.IsInfinity() {
		fmt.Fprintln(w, "infinity")
		return nil
	}
	x, y := result.X(), result.Y()
	fmt.Fprintf(w, "x: %v\n", x)
	fmt.Fprintf(w, "y: %v\n", y)
	return nil
}
