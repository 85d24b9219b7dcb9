package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ModChain/secp256k1math/internal/check"
	"github.com/ModChain/secp256k1math/internal/refgen"
)

// GenCommand creates the gen command
func GenCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "Generate a fixture set from the reference implementation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Directory to write the fixture files to",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of random vectors per category",
				Value: refgen.DefaultConfig.Count,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Seed of the deterministic input source",
				Value: refgen.DefaultConfig.Seed,
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Evaluate the generated fixtures before writing them",
				Value: true,
			},
		},
		Action: runGenCommand,
	}
}

func runGenCommand(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	cfg := refgen.Config{
		Count: cmd.Int("count"),
		Seed:  cmd.Int64("seed"),
	}
	set, err := refgen.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate fixtures: %w", err)
	}
	log.Info("generated fixtures", zap.Int("vectors", set.Len()), zap.Int64("seed", cfg.Seed))

	if cmd.Bool("check") {
		report, err := check.Run(ctx, set)
		if err != nil {
			return fmt.Errorf("failed to check fixtures: %w", err)
		}
		if !report.OK() {
			for _, f := range report.Failures {
				log.Error("generated vector failed", zap.Stringer("failure", f))
			}
			return fmt.Errorf("%d generated vectors disagree with the engine", len(report.Failures))
		}
	}

	out := cmd.String("out")
	if err := set.WriteDir(out); err != nil {
		return fmt.Errorf("failed to write fixtures: %w", err)
	}
	log.Info("wrote fixtures", zap.String("dir", out))
	return nil
}
