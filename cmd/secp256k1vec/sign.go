package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	secp256k1 "github.com/ModChain/secp256k1math"
)

// Supported --digest values.
const (
	digestBlake256  = "blake256"
	digestSHA256    = "sha256"
	digestKeccak256 = "keccak256"
)

// SignCommand creates the sign command
func SignCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Sign a digest with a private key and an explicit nonce",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Private key (hex)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "nonce",
				Usage:    "Signing nonce (hex)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Message digest (hex bytes)",
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message to digest with --digest before signing",
			},
			&cli.StringFlag{
				Name:  "digest",
				Usage: "Digest for --message: blake256, sha256 or keccak256",
				Value: digestSHA256,
			},
			&cli.BoolFlag{
				Name:  "canonical",
				Usage: "Normalize S to the lower half of the group order",
				Value: true,
			},
		},
		Action: runSignCommand,
	}
}

// digestMessage hashes msg with the named digest.
func digestMessage(name string, msg []byte) ([]byte, error) {
	switch name {
	case digestBlake256:
		return chainhash.HashB(msg), nil
	case digestSHA256:
		h := sha256.Sum256(msg)
		return h[:], nil
	case digestKeccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write(msg)
		return h.Sum(nil), nil
	}
	return nil, fmt.Errorf("unsupported digest %q", name)
}

// parseHexScalar decodes a hex integer flag.
func parseHexScalar(flag, value string) (*big.Int, error) {
	v, err := secp256k1.ParseHex(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return v, nil
}

func runSignCommand(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFor(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	hashHex := cmd.String("hash")
	message := cmd.String("message")
	if hashHex == "" && message == "" {
		return fmt.Errorf("either --hash or --message must be provided")
	}
	if hashHex != "" && message != "" {
		return fmt.Errorf("only one of --hash or --message should be provided")
	}

	var hash []byte
	if hashHex != "" {
		hash, err = hex.DecodeString(hashHex)
		if err != nil {
			return fmt.Errorf("--hash: %w: %v", secp256k1.ErrMalformedHex, err)
		}
	} else {
		hash, err = digestMessage(cmd.String("digest"), []byte(message))
		if err != nil {
			return err
		}
	}

	key, err := parseHexScalar("key", cmd.String("key"))
	if err != nil {
		return err
	}
	nonce, err := parseHexScalar("nonce", cmd.String("nonce"))
	if err != nil {
		return err
	}

	sig, err := secp256k1.SignWithNonce(hash, key, nonce, cmd.Bool("canonical"))
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}
	log.Debug("signed digest", zap.String("hash", hex.EncodeToString(hash)),
		zap.Bool("canonical", sig.IsCanonical()))

	r, s := sig.R(), sig.S()
	w := cmd.Root().Writer
	fmt.Fprintf(w, "hash: %x\n", hash)
	fmt.Fprintf(w, "r: %v\n", r)
	fmt.Fprintf(w, "s: %v\n", s)
	return nil
}
