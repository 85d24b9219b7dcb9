package testvectors

import (
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"math/big"
	"path"

	"github.com/pkg/errors"

	secp256k1 "github.com/ModChain/secp256k1math"
)

// record gives typed access to one raw JSON object.  The first decoding error
// is kept and every later access is a no-op, so a record can be read field by
// field and checked once.
type record struct {
	file  string
	index int
	raw   map[string]string
	err   error
}

func (r *record) fail(key, value, reason string) {
	if r.err == nil {
		r.err = errors.Wrapf(secp256k1.ErrMalformedHex, "%s[%d].%s: %s: %q",
			r.file, r.index, key, reason, value)
	}
}

func (r *record) lookup(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.raw[key]
	if !ok {
		r.fail(key, "", "missing field")
		return "", false
	}
	if v == "" {
		r.fail(key, v, "empty value")
		return "", false
	}
	return v, true
}

// hexInt decodes a big-endian hex unsigned integer.
func (r *record) hexInt(key string) *big.Int {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	n, err := secp256k1.ParseHex(v)
	if err != nil {
		r.fail(key, v, "invalid hex digit")
		return nil
	}
	return n
}

// hexBytes decodes raw hex bytes.
func (r *record) hexBytes(key string) []byte {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		r.fail(key, v, err.Error())
		return nil
	}
	return b
}

// decodeRecords parses a JSON array of string maps and converts every entry
// with conv.
func decodeRecords[T any](file string, data []byte, conv func(*record) T) ([]T, error) {
	var raw []map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(secp256k1.ErrMalformedInput, "%s: %v", file, err)
	}

	vectors := make([]T, 0, len(raw))
	for i, obj := range raw {
		r := &record{file: file, index: i, raw: obj}
		v := conv(r)
		if r.err != nil {
			return nil, r.err
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

// DecodeNegatedPoints decodes the contents of a negated_point file.
func DecodeNegatedPoints(data []byte) ([]NegatedPoint, error) {
	return decodeRecords(FileNegatedPoint, data, func(r *record) NegatedPoint {
		return NegatedPoint{
			X:     r.hexInt("x"),
			EvenY: r.hexInt("evenY"),
			OddY:  r.hexInt("oddY"),
		}
	})
}

// DecodeJacobiPoints decodes the contents of a jacobi_point file.
func DecodeJacobiPoints(data []byte) ([]JacobiPoint, error) {
	return decodeRecords(FileJacobiPoint, data, func(r *record) JacobiPoint {
		return JacobiPoint{
			X:       r.hexInt("x"),
			Y:       r.hexInt("y"),
			JacobiX: r.hexInt("jacobiX"),
			JacobiY: r.hexInt("jacobiY"),
			JacobiZ: r.hexInt("jacobiZ"),
		}
	})
}

// DecodeJacobiMultiplications decodes the contents of a jacobi_multiplication
// file.
func DecodeJacobiMultiplications(data []byte) ([]JacobiMultiplication, error) {
	return decodeRecords(FileJacobiMultiplication, data, func(r *record) JacobiMultiplication {
		return JacobiMultiplication{
			X1: r.hexInt("x1"),
			Y1: r.hexInt("y1"),
			K:  r.hexInt("k"),
			X2: r.hexInt("x2"),
			Y2: r.hexInt("y2"),
		}
	})
}

// DecodeJacobiDoublings decodes the contents of a jacobi_doubling file.
func DecodeJacobiDoublings(data []byte) ([]JacobiDoubling, error) {
	return decodeRecords(FileJacobiDoubling, data, func(r *record) JacobiDoubling {
		return JacobiDoubling{
			X1: r.hexInt("x1"),
			Y1: r.hexInt("y1"),
			Z1: r.hexInt("z1"),
			X3: r.hexInt("x3"),
			Y3: r.hexInt("y3"),
			Z3: r.hexInt("z3"),
		}
	})
}

// DecodeJacobiAdditions decodes the contents of a jacobi_addition file.
func DecodeJacobiAdditions(data []byte) ([]JacobiAddition, error) {
	return decodeRecords(FileJacobiAddition, data, func(r *record) JacobiAddition {
		return JacobiAddition{
			X1: r.hexInt("x1"),
			Y1: r.hexInt("y1"),
			Z1: r.hexInt("z1"),
			X2: r.hexInt("x2"),
			Y2: r.hexInt("y2"),
			Z2: r.hexInt("z2"),
			X3: r.hexInt("x3"),
			Y3: r.hexInt("y3"),
			Z3: r.hexInt("z3"),
		}
	})
}

// DecodeECDSA decodes the contents of an ecdsa file.
func DecodeECDSA(data []byte) ([]ECDSA, error) {
	return decodeRecords(FileECDSA, data, func(r *record) ECDSA {
		return ECDSA{
			D:     r.hexInt("d"),
			Hash:  r.hexBytes("hash"),
			Nonce: r.hexInt("nonce"),
			R:     r.hexInt("r"),
			S:     r.hexInt("s"),
		}
	})
}

// LoadDir reads the six fixture files from dir in fsys.  Every file must be
// present.
func LoadDir(fsys fs.FS, dir string) (*Set, error) {
	read := func(name string) ([]byte, error) {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read fixture %s", name)
		}
		return data, nil
	}

	var set Set
	loaders := []struct {
		file   string
		decode func([]byte) error
	}{
		{FileNegatedPoint, func(b []byte) (err error) {
			set.NegatedPoints, err = DecodeNegatedPoints(b)
			return
		}},
		{FileJacobiPoint, func(b []byte) (err error) {
			set.JacobiPoints, err = DecodeJacobiPoints(b)
			return
		}},
		{FileJacobiMultiplication, func(b []byte) (err error) {
			set.JacobiMultiplications, err = DecodeJacobiMultiplications(b)
			return
		}},
		{FileJacobiDoubling, func(b []byte) (err error) {
			set.JacobiDoublings, err = DecodeJacobiDoublings(b)
			return
		}},
		{FileJacobiAddition, func(b []byte) (err error) {
			set.JacobiAdditions, err = DecodeJacobiAdditions(b)
			return
		}},
		{FileECDSA, func(b []byte) (err error) {
			set.ECDSA, err = DecodeECDSA(b)
			return
		}},
	}
	for _, l := range loaders {
		data, err := read(l.file)
		if err != nil {
			return nil, err
		}
		if err := l.decode(data); err != nil {
			return nil, err
		}
	}
	return &set, nil
}
