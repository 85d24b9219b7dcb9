// Command secp256k1vec runs, generates and inspects secp256k1 test vectors.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "secp256k1vec",
		Usage: "secp256k1 arithmetic and ECDSA test vector tool",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("SECP256K1VEC_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			RunCommand(),
			GenCommand(),
			SignCommand(),
			MultCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
