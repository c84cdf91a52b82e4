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
	"fmt"

	"github.com/0xsoniclabs/leakage/model"
)

// ErrOutOfMemory reports that the transition representation could not be
// built. It aborts an exploration before any path is visited.
var ErrOutOfMemory = model.ErrOutOfMemory

// IOError reports that a prior distribution file could not be read.
type IOError struct {
	File string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("file I/O error reading from %q: %v", e.File, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports a line of a prior distribution file that is not a
// valid probability. Line numbers start at one.
type FormatError struct {
	File string
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("error detected at line %d of file %q: %q is not a probability", e.Line, e.File, e.Text)
}

// CountMismatchError reports a prior distribution whose number of values
// differs from the number of initial states.
type CountMismatchError struct {
	File     string
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("file %q should contain %d probabilities, found %d", e.File, e.Expected, e.Actual)
}

// NormalizationError reports a prior distribution that does not sum to one.
type NormalizationError struct {
	File string
	Sum  float64
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("sum of probabilities in %q should be equal to 1.0, got %v", e.File, e.Sum)
}
