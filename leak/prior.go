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
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/leakage/model"
	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
)

// priorTolerance bounds the deviation of a prior distribution's sum from one.
const priorTolerance = 0.001

// maxPriorLine is the longest accepted line of a prior distribution file.
const maxPriorLine = 1 << 20

// PriorMode selects how the prior knowledge on the secret is obtained.
type PriorMode int

const (
	// UniformPrior weights every initial state equally.
	UniformPrior PriorMode = iota
	// FilePrior reads one probability per initial state from a file.
	FilePrior
)

func (m PriorMode) String() string {
	switch m {
	case UniformPrior:
		return "uniform"
	case FilePrior:
		return "file"
	}
	return "unknown"
}

// Prior is the probability distribution of the secret before any output
// is observed.
type Prior struct {
	mode       PriorMode
	numInitial int
	dist       map[string]float64
}

// NewPrior creates the prior knowledge for the given initial states. The
// file is only read in FilePrior mode.
func NewPrior(mode PriorMode, file string, initial []model.State) (*Prior, error) {
	switch mode {
	case UniformPrior:
		return NewUniformPrior(initial)
	case FilePrior:
		return LoadPrior(file, initial)
	}
	return nil, errors.Newf("unknown prior mode %d", mode)
}

// NewUniformPrior assigns 1/N to the secret of each of the N initial states.
func NewUniformPrior(initial []model.State) (*Prior, error) {
	if len(initial) == 0 {
		return nil, errors.New("cannot derive a prior without initial states")
	}
	p := &Prior{
		mode:       UniformPrior,
		numInitial: len(initial),
		dist:       make(map[string]float64, len(initial)),
	}
	for _, s := range initial {
		p.dist[s.Secret] = 1.0 / float64(len(initial))
	}
	return p, nil
}

// LoadPrior reads a prior distribution file with one probability per
// non-empty line, ordered like the initial states. Files ending in .gz are
// decompressed.
func LoadPrior(file string, initial []model.State) (prior *Prior, err error) {
	r, err := utils.OpenFile(file)
	if err != nil {
		return nil, &IOError{File: file, Err: err}
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			prior, err = nil, &IOError{File: file, Err: cerr}
		}
	}()
	return ReadPrior(r, file, initial)
}

// ReadPrior parses a prior distribution from r; name identifies the source
// in errors. Values are assigned to the secrets of the initial states by
// position; if two initial states share a secret, the later value wins.
func ReadPrior(r io.Reader, name string, initial []model.State) (*Prior, error) {
	if len(initial) == 0 {
		return nil, errors.New("cannot derive a prior without initial states")
	}
	values := []float64{}
	sum := 0.0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxPriorLine)
	line := 1
	for ; scanner.Scan(); line++ {
		txt := strings.TrimSpace(scanner.Text())
		if txt == "" {
			continue
		}
		v, err := strconv.ParseFloat(txt, 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 1 {
			return nil, &FormatError{File: name, Line: line, Text: txt}
		}
		values = append(values, v)
		sum += v
	}
	if err := scanner.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, &FormatError{File: name, Line: line, Text: "<line too long>"}
	} else if err != nil {
		return nil, &IOError{File: name, Err: err}
	}
	if len(values) != len(initial) {
		return nil, &CountMismatchError{File: name, Expected: len(initial), Actual: len(values)}
	}
	if math.Abs(sum-1.0) > priorTolerance {
		return nil, &NormalizationError{File: name, Sum: sum}
	}

	p := &Prior{
		mode:       FilePrior,
		numInitial: len(initial),
		dist:       make(map[string]float64, len(initial)),
	}
	for i, s := range initial {
		p.dist[s.Secret] = values[i]
	}
	return p, nil
}

// Mode returns how the prior was obtained.
func (p *Prior) Mode() PriorMode {
	return p.mode
}

// Weight returns the prior probability of a path starting in the given
// initial state.
func (p *Prior) Weight(start model.State) (float64, error) {
	if p.mode == UniformPrior {
		return 1.0 / float64(p.numInitial), nil
	}
	w, found := p.dist[start.Secret]
	if !found {
		return 0, errors.Newf("no prior probability for secret %q of state %v", start.Secret, start.Name)
	}
	return w, nil
}

// Distribution returns a copy of the probability of each secret value.
func (p *Prior) Distribution() map[string]float64 {
	return maps.Clone(p.dist)
}
