package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ModChain/secp256k1math/internal/check"
	"github.com/ModChain/secp256k1math/testvectors"
)

// RunCommand creates the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Evaluate a fixture set against the arithmetic engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "Directory holding the six fixture files (default: embedded fixtures)",
				Sources: cli.EnvVars("SECP256K1VEC_DIR"),
			},
		},
		Action: runRunCommand,
	}
}

// loadSet loads the fixtures from dir, or the embedded ones when dir is empty.
func loadSet(dir string) (*testvectors.Set, error) {
	if dir == "" {
		return testvectors.Embedded()
	}
	return testvectors.LoadDir(os.DirFS(dir), ".")
}

func runRunCommand(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	dir := cmd.String("dir")
	set, err := loadSet(dir)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}
	log.Debug("loaded fixtures", zap.String("dir", dir), zap.Int("vectors", set.Len()))

	report, err := check.Run(ctx, set)
	if err != nil {
		return fmt.Errorf("failed to run fixtures: %w", err)
	}

	for _, category := range []check.Category{
		check.NegatedPoint, check.JacobiPoint, check.JacobiMultiplication,
		check.JacobiDoubling, check.JacobiAddition, check.ECDSA,
	} {
		log.Info("category evaluated",
			zap.String("category", string(category)),
			zap.Int("vectors", report.Counts[category]),
			zap.Int("failures", len(report.FailuresIn(category))))
	}
	for _, f := range report.Failures {
		log.Error("vector failed",
			zap.String("category", string(f.Category)),
			zap.Int("index", f.Index),
			zap.String("detail", f.Detail))
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d vectors failed", len(report.Failures), report.Total())
	}
	fmt.Fprintf(cmd.Root().Writer, "all %d vectors passed\n", report.Total())
	return nil
}
