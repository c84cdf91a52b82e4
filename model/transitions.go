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

package model

import (
	"github.com/cockroachdb/errors"
)

// Supported representations of the transition relation.
const (
	SparseRepresentation = "sparse"
	DenseRepresentation  = "dense"
)

// ErrOutOfMemory is returned when the transition representation does not
// fit into the configured memory limit.
var ErrOutOfMemory = errors.New("out of memory building transition matrix")

// Transitions answers the queries on the transition relation needed to
// explore paths. Build must be called before any query.
//
//go:generate mockgen -source transitions.go -destination transitions_mock.go -package model
type Transitions interface {
	// Build constructs the backing structure. It is idempotent.
	Build() error
	// Successors returns the successors of s in ascending order, including s
	// itself if it has a self-loop. The result must not be modified.
	Successors(s int) []int
	// IsFinal reports whether s has no successor other than itself.
	IsFinal(s int) bool
	// Probability returns the probability of the transition from -> to.
	Probability(from, to int) (float64, error)
	// Release frees the backing structure.
	Release()
}

// NewTransitions creates an unbuilt representation of the transition
// relation of sys. A limit of zero bytes disables the memory check.
func NewTransitions(representation string, sys *System, limit uint64) (Transitions, error) {
	switch representation {
	case SparseRepresentation, "":
		return NewSparseTransitions(sys, limit), nil
	case DenseRepresentation:
		return NewDenseTransitions(sys, limit), nil
	}
	return nil, errors.Newf("unknown transition representation %q", representation)
}

// checkMemory fails with ErrOutOfMemory if required exceeds a non-zero limit.
func checkMemory(required, limit uint64) error {
	if limit > 0 && required > limit {
		return errors.Wrapf(ErrOutOfMemory, "%d bytes required, limit is %d bytes", required, limit)
	}
	return nil
}
