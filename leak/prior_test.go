// Copyright 2025 Sonic Labs
// This file is part of Leakage, a path explorer for quantitative information flow
//
// Leakage is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Leakage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Leakage. If not, see <http://www.gnu.org/licenses/>.

package leak

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xsoniclabs/leakage/model"
	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initialStates(secrets ...string) []model.State {
	states := make([]model.State, len(secrets))
	for i, h := range secrets {
		states[i] = model.State{Number: i, Name: "s" + h, Secret: h}
	}
	return states
}

func TestPrior_UniformDistinctSecrets(t *testing.T) {
	prior, err := NewUniformPrior(initialStates("h1", "h2", "h3"))
	require.NoError(t, err)
	assert.Equal(t, UniformPrior, prior.Mode())
	assert.Equal(t, map[string]float64{"h1": 1.0 / 3, "h2": 1.0 / 3, "h3": 1.0 / 3}, prior.Distribution())
}

func TestPrior_UniformSharedSecretWeighsEachState(t *testing.T) {
	initial := initialStates("h1", "h1", "h2", "h3")
	prior, err := NewUniformPrior(initial)
	require.NoError(t, err)
	assert.Len(t, prior.Distribution(), 3)
	for _, s := range initial {
		w, err := prior.Weight(s)
		require.NoError(t, err)
		assert.Equal(t, 0.25, w)
	}
}

func TestPrior_ReadValidFile(t *testing.T) {
	prior, err := ReadPrior(strings.NewReader("0.5\n0.5\n"), "prior.txt", initialStates("h1", "h2"))
	require.NoError(t, err)
	assert.Equal(t, FilePrior, prior.Mode())
	assert.Equal(t, map[string]float64{"h1": 0.5, "h2": 0.5}, prior.Distribution())

	w, err := prior.Weight(model.State{Secret: "h2"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)
}

func TestPrior_ReadTrimsAndSkipsBlankLines(t *testing.T) {
	prior, err := ReadPrior(strings.NewReader("\n  0.25 \n\n\t0.75\n\n"), "prior.txt", initialStates("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0.25, "b": 0.75}, prior.Distribution())
}

func TestPrior_ReadWithinTolerance(t *testing.T) {
	_, err := ReadPrior(strings.NewReader("0.3333\n0.3333\n0.3333\n"), "prior.txt", initialStates("a", "b", "c"))
	assert.NoError(t, err)
}

func TestPrior_ReadNormalizationError(t *testing.T) {
	_, err := ReadPrior(strings.NewReader("0.3\n0.3\n0.3\n"), "prior.txt", initialStates("a", "b", "c"))
	var normErr *NormalizationError
	require.True(t, errors.As(err, &normErr), "unexpected error %v", err)
	assert.InDelta(t, 0.9, normErr.Sum, 1e-12)
	assert.Equal(t, "prior.txt", normErr.File)
}

func TestPrior_ReadCountMismatch(t *testing.T) {
	_, err := ReadPrior(strings.NewReader("0.5\n0.5\n"), "prior.txt", initialStates("a", "b", "c"))
	var countErr *CountMismatchError
	require.True(t, errors.As(err, &countErr), "unexpected error %v", err)
	assert.Equal(t, 3, countErr.Expected)
	assert.Equal(t, 2, countErr.Actual)
	assert.ErrorContains(t, err, "should contain 3 probabilities")
}

func TestPrior_ReadFormatError(t *testing.T) {
	tests := map[string]struct {
		input string
		line  int
	}{
		"not a number":         {"abc\n", 1},
		"blank lines counted":  {"0.5\n\nxyz\n", 3},
		"above one":            {"1.5\n-0.5\n", 1},
		"negative":             {"0.5\n-0.5\n", 2},
		"not a finite number":  {"NaN\n", 1},
		"infinite probability": {"0.5\n+Inf\n", 2},
		"line too long":        {"0.5\n" + strings.Repeat("1", 2*maxPriorLine) + "\n", 2},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadPrior(strings.NewReader(test.input), "prior.txt", initialStates("a", "b"))
			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "unexpected error %v", err)
			assert.Equal(t, test.line, formatErr.Line)
			assert.Equal(t, "prior.txt", formatErr.File)
		})
	}
}

func TestPrior_ReadLongPaddedLine(t *testing.T) {
	padded := "0.5" + strings.Repeat(" ", 100_000) + "\n0.5\n"
	prior, err := ReadPrior(strings.NewReader(padded), "prior.txt", initialStates("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0.5, "b": 0.5}, prior.Distribution())
}

func TestPrior_SharedSecretLaterValueWins(t *testing.T) {
	prior, err := ReadPrior(strings.NewReader("0.4\n0.6\n"), "prior.txt", initialStates("h", "h"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"h": 0.6}, prior.Distribution())
}

func TestPrior_LoadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "prior.txt")
	require.NoError(t, os.WriteFile(plain, []byte("0.1\n0.9\n"), 0644))
	prior, err := LoadPrior(plain, initialStates("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0.1, "b": 0.9}, prior.Distribution())

	compressed := filepath.Join(dir, "prior.txt.gz")
	w, err := utils.CreateFile(compressed)
	require.NoError(t, err)
	_, err = w.Write([]byte("0.2\n0.8\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	prior, err = LoadPrior(compressed, initialStates("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0.2, "b": 0.8}, prior.Distribution())
}

func TestPrior_LoadMissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.txt")
	_, err := LoadPrior(name, initialStates("a"))
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr), "unexpected error %v", err)
	assert.Equal(t, name, ioErr.File)
}

func TestPrior_NewPrior(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prior.txt")
	require.NoError(t, os.WriteFile(name, []byte("1.0\n"), 0644))

	prior, err := NewPrior(UniformPrior, name, initialStates("a"))
	require.NoError(t, err)
	assert.Equal(t, UniformPrior, prior.Mode())

	prior, err = NewPrior(FilePrior, name, initialStates("a"))
	require.NoError(t, err)
	assert.Equal(t, FilePrior, prior.Mode())

	_, err = NewPrior(PriorMode(7), name, initialStates("a"))
	assert.ErrorContains(t, err, "unknown prior mode")
	assert.Equal(t, "unknown", PriorMode(7).String())
}

func TestPrior_NoInitialStates(t *testing.T) {
	_, err := NewUniformPrior(nil)
	assert.Error(t, err)
	_, err = ReadPrior(strings.NewReader("1.0\n"), "prior.txt", nil)
	assert.Error(t, err)
}

func TestPrior_WeightOfUnknownSecret(t *testing.T) {
	prior, err := ReadPrior(strings.NewReader("1.0\n"), "prior.txt", initialStates("a"))
	require.NoError(t, err)
	_, err = prior.Weight(model.State{Name: "x", Secret: "b"})
	assert.ErrorContains(t, err, "no prior probability")
}

func TestPrior_DistributionIsACopy(t *testing.T) {
	prior, err := NewUniformPrior(initialStates("a", "b"))
	require.NoError(t, err)
	dist := prior.Distribution()
	dist["a"] = 1.0
	assert.Equal(t, 0.5, prior.Distribution()["a"])
}
