package main

import (
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the console logger used by every command.  Logs go to
// stderr so command output on stdout stays machine readable.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// loggerFor returns the logger configured by the root --log-level flag.
func loggerFor(cmd *cli.Command) (*zap.Logger, error) {
	return newLogger(cmd.String("log-level"))
}
