package testvectors

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// hexInt encodes v as zero-padded lowercase hex, the format the decoders
// accept.
func hexInt(v *big.Int) string {
	if v == nil {
		v = new(big.Int)
	}
	return fmt.Sprintf("%064x", v)
}

func (v NegatedPoint) fields() map[string]string {
	return map[string]string{
		"x":     hexInt(v.X),
		"evenY": hexInt(v.EvenY),
		"oddY":  hexInt(v.OddY),
	}
}

func (v JacobiPoint) fields() map[string]string {
	return map[string]string{
		"x":       hexInt(v.X),
		"y":       hexInt(v.Y),
		"jacobiX": hexInt(v.JacobiX),
		"jacobiY": hexInt(v.JacobiY),
		"jacobiZ": hexInt(v.JacobiZ),
	}
}

func (v JacobiMultiplication) fields() map[string]string {
	return map[string]string{
		"x1": hexInt(v.X1),
		"y1": hexInt(v.Y1),
		"k":  hexInt(v.K),
		"x2": hexInt(v.X2),
		"y2": hexInt(v.Y2),
	}
}

func (v JacobiDoubling) fields() map[string]string {
	return map[string]string{
		"x1": hexInt(v.X1),
		"y1": hexInt(v.Y1),
		"z1": hexInt(v.Z1),
		"x3": hexInt(v.X3),
		"y3": hexInt(v.Y3),
		"z3": hexInt(v.Z3),
	}
}

func (v JacobiAddition) fields() map[string]string {
	return map[string]string{
		"x1": hexInt(v.X1),
		"y1": hexInt(v.Y1),
		"z1": hexInt(v.Z1),
		"x2": hexInt(v.X2),
		"y2": hexInt(v.Y2),
		"z2": hexInt(v.Z2),
		"x3": hexInt(v.X3),
		"y3": hexInt(v.Y3),
		"z3": hexInt(v.Z3),
	}
}

func (v ECDSA) fields() map[string]string {
	return map[string]string{
		"d":     hexInt(v.D),
		"hash":  hex.EncodeToString(v.Hash),
		"nonce": hexInt(v.Nonce),
		"r":     hexInt(v.R),
		"s":     hexInt(v.S),
	}
}

// encodeRecords renders vectors as an indented JSON array.
func encodeRecords[T interface{ fields() map[string]string }](vectors []T) ([]byte, error) {
	raw := make([]map[string]string, 0, len(vectors))
	for _, v := range vectors {
		raw = append(raw, v.fields())
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Encode renders every category of the set, keyed by file name.
func (s *Set) Encode() (map[string][]byte, error) {
	files := make(map[string][]byte, 6)
	var err error
	add := func(name string, data []byte, encErr error) {
		if err == nil && encErr != nil {
			err = errors.Wrapf(encErr, "unable to encode %s", name)
		}
		files[name] = data
	}

	data, encErr := encodeRecords(s.NegatedPoints)
	add(FileNegatedPoint, data, encErr)
	data, encErr = encodeRecords(s.JacobiPoints)
	add(FileJacobiPoint, data, encErr)
	data, encErr = encodeRecords(s.JacobiMultiplications)
	add(FileJacobiMultiplication, data, encErr)
	data, encErr = encodeRecords(s.JacobiDoublings)
	add(FileJacobiDoubling, data, encErr)
	data, encErr = encodeRecords(s.JacobiAdditions)
	add(FileJacobiAddition, data, encErr)
	data, encErr = encodeRecords(s.ECDSA)
	add(FileECDSA, data, encErr)

	if err != nil {
		return nil, err
	}
	return files, nil
}

// WriteDir writes the six fixture files into dir, creating it if needed.
func (s *Set) WriteDir(dir string) error {
	files, err := s.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create %s", dir)
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return errors.Wrapf(err, "unable to write %s", name)
		}
	}
	return nil
}
