package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/sha3"

	secp256k1 "github.com/ModChain/secp256k1math"
)

// runApp runs the CLI with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"secp256k1vec", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestNewApp(t *testing.T) {
	app := newApp()
	require.Equal(t, "secp256k1vec", app.Name)

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"run", "gen", "sign", "mult"}, names)
}

func TestGenCommand(t *testing.T) {
	cmd := GenCommand()
	require.Equal(t, "gen", cmd.Name)
	require.NotEmpty(t, cmd.Usage)
	require.Len(t, cmd.Flags, 4)

	var hasOut, hasCheck bool
	for _, flag := range cmd.Flags {
		switch f := flag.(type) {
		case *cli.StringFlag:
			if f.Name == "out" {
				hasOut = true
				require.True(t, f.Required)
			}
		case *cli.BoolFlag:
			if f.Name == "check" {
				hasCheck = true
				require.True(t, f.Value)
			}
		}
	}
	require.True(t, hasOut)
	require.True(t, hasCheck)
}

func TestSignCommand(t *testing.T) {
	cmd := SignCommand()
	require.Equal(t, "sign", cmd.Name)

	var hasKey, hasNonce, hasDigest bool
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok {
			switch f.Name {
			case "key":
				hasKey = true
				require.True(t, f.Required)
			case "nonce":
				hasNonce = true
				require.True(t, f.Required)
			case "digest":
				hasDigest = true
				require.Equal(t, digestSHA256, f.Value)
			}
		}
	}
	require.True(t, hasKey)
	require.True(t, hasNonce)
	require.True(t, hasDigest)
}

func TestRunEmbedded(t *testing.T) {
	out, err := runApp(t, "run")
	require.NoError(t, err)
	require.Equal(t, "all 57 vectors passed\n", out)
}

func TestGenThenRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vectors")
	_, err := runApp(t, "gen", "--out", dir, "--count", "2", "--seed", "3")
	require.NoError(t, err)

	out, err := runApp(t, "run", "--dir", dir)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "all "), out)
	require.True(t, strings.HasSuffix(out, " vectors passed\n"), out)
}

func TestRunMissingDir(t *testing.T) {
	_, err := runApp(t, "run", "--dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load fixtures")
}

func TestGenRequiresOut(t *testing.T) {
	_, err := runApp(t, "gen")
	require.Error(t, err)
}

func TestSignHash(t *testing.T) {
	out, err := runApp(t, "sign", "--key", "1", "--nonce", "1",
		"--hash", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	require.NoError(t, err)
	require.Equal(t,
		"hash: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n"+
			"r: 79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798\n"+
			"s: 34367d3e88de8b9696e1a3742c352d2bf7f08198149d033a4e31223038c1ec04\n",
		out)
}

func TestSignMessage(t *testing.T) {
	// sha256("abc") is the digest used in TestSignHash.
	out, err := runApp(t, "sign", "--key", "1", "--nonce", "1", "--message", "abc")
	require.NoError(t, err)
	require.Contains(t, out, "s: 34367d3e88de8b9696e1a3742c352d2bf7f08198149d033a4e31223038c1ec04\n")

	keccak := sha3.NewLegacyKeccak256()
	keccak.Write([]byte("abc"))
	tests := []struct {
		digest string
		want   []byte
	}{
		{digestBlake256, chainhash.HashB([]byte("abc"))},
		{digestKeccak256, keccak.Sum(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.digest, func(t *testing.T) {
			out, err := runApp(t, "sign", "--key", "1", "--nonce", "1",
				"--message", "abc", "--digest", tt.digest)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(out, "hash: "+hex.EncodeToString(tt.want)+"\n"), out)
		})
	}
}

func TestSignNonCanonical(t *testing.T) {
	args := []string{"sign", "--key", "7", "--nonce", "3",
		"--hash", "b5a55d7482742ebf09492c55e064b089551b7046ddb4741a341bfdb588c8b90b"}

	out, err := runApp(t, args...)
	require.NoError(t, err)
	require.Contains(t, out, "s: 28acf42ad45f7e9a521837aac66f5ac2d954ff02ac2bc8a560231fb79a429aba\n")

	out, err = runApp(t, append(args, "--canonical=false")...)
	require.NoError(t, err)
	require.Contains(t, out, "s: d7530bd52ba08165ade7c8553990a53be159dde4031cd7965faf3ed535f3a687\n")
}

func TestSignErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
		msg  string
	}{
		{
			name: "zero key",
			args: []string{"sign", "--key", "0", "--nonce", "1", "--hash", "00"},
			kind: secp256k1.ErrInvalidPrivateKey,
		},
		{
			name: "nonce equal to the group order",
			args: []string{"sign", "--key", "1", "--hash", "00",
				"--nonce", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"},
			kind: secp256k1.ErrInvalidNonce,
		},
		{
			name: "malformed key",
			args: []string{"sign", "--key", "xyz", "--nonce", "1", "--hash", "00"},
			kind: secp256k1.ErrMalformedHex,
		},
		{
			name: "malformed hash",
			args: []string{"sign", "--key", "1", "--nonce", "1", "--hash", "0"},
			kind: secp256k1.ErrMalformedInput,
		},
		{
			name: "no digest input",
			args: []string{"sign", "--key", "1", "--nonce", "1"},
			msg:  "either --hash or --message",
		},
		{
			name: "both digest inputs",
			args: []string{"sign", "--key", "1", "--nonce", "1", "--hash", "00", "--message", "abc"},
			msg:  "only one of --hash or --message",
		},
		{
			name: "unknown digest",
			args: []string{"sign", "--key", "1", "--nonce", "1", "--message", "abc", "--digest", "md5"},
			msg:  "unsupported digest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			require.Error(t, err)
			if tt.kind != nil {
				require.True(t, errors.Is(err, tt.kind), "got %v", err)
			}
			if tt.msg != "" {
				require.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestMult(t *testing.T) {
	out, err := runApp(t, "mult", "--k", "3")
	require.NoError(t, err)
	require.Equal(t,
		"x: f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9\n"+
			"y: 388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672\n",
		out)

	out, err = runApp(t, "mult",
		"--x", "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"--y", "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		"--k", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	require.NoError(t, err)
	require.Equal(t, "infinity\n", out)
}

func TestMultErrors(t *testing.T) {
	_, err := runApp(t, "mult", "--x", "1", "--k", "3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--x and --y")

	_, err = runApp(t, "mult", "--x", "1", "--y", "1", "--k", "3")
	require.Error(t, err)
	require.True(t, errors.Is(err, secp256k1.ErrPointNotOnCurve), "got %v", err)

	for _, k := range []string{"-3", "+ff", "0xff"} {
		_, err = runApp(t, "mult", "--k="+k)
		require.True(t, errors.Is(err, secp256k1.ErrMalformedHex), "--k=%s: got %v", k, err)
		require.True(t, errors.Is(err, secp256k1.ErrMalformedInput), "--k=%s: got %v", k, err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"secp256k1vec", "--log-level", "loud", "run"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}
