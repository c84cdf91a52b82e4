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
	"encoding/json"

	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
)

// Result is the persisted outcome of an exploration.
type Result struct {
	Mode  string                        `json:"mode"`
	Paths uint64                        `json:"paths"`
	Mass  float64                       `json:"mass"`
	Prior map[string]float64            `json:"prior"`
	Joint map[string]map[string]float64 `json:"joint"`
}

// NewResult collects the distributions of a finished exploration.
func NewResult(e *Explorer, mode Mode, stats Stats) Result {
	return Result{
		Mode:  mode.String(),
		Paths: stats.Paths,
		Mass:  stats.Mass,
		Prior: e.PriorDistribution(),
		Joint: e.JointDistribution(),
	}
}

// Write stores the result as JSON; files ending in .gz are compressed.
func (r Result) Write(filename string) (err error) {
	w, err := utils.CreateFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrapf(err, "cannot write result to %s", filename)
	}
	return nil
}

// ReadResult loads a result written by Write.
func ReadResult(filename string) (res Result, err error) {
	r, err := utils.OpenFile(filename)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = errors.Join(err, r.Close())
	}()
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, errors.Wrapf(err, "cannot decode result %s", filename)
	}
	return res, nil
}
