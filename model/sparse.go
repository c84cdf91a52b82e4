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
	"slices"

	"github.com/cockroachdb/errors"
)

// SparseTransitions stores the transition relation in compressed-row form.
type SparseTransitions struct {
	sys   *System
	limit uint64

	rowStart []int // offsets into cols/vals per state, n+1 entries
	cols     []int
	vals     []float64
}

// NewSparseTransitions creates an unbuilt sparse representation.
func NewSparseTransitions(sys *System, limit uint64) *SparseTransitions {
	return &SparseTransitions{sys: sys, limit: limit}
}

func (t *SparseTransitions) Build() error {
	if t.rowStart != nil {
		return nil
	}
	n := t.sys.NumStates()
	nnz := t.sys.NumTransitions()
	if err := checkMemory(uint64(nnz)*16+uint64(n+1)*8, t.limit); err != nil {
		return err
	}
	rowStart := make([]int, 0, n+1)
	cols := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)
	for i := range n {
		rowStart = append(rowStart, len(cols))
		for _, e := range t.sys.Edges(i) {
			cols = append(cols, e.To)
			vals = append(vals, e.Prob)
		}
	}
	rowStart = append(rowStart, len(cols))
	t.rowStart, t.cols, t.vals = rowStart, cols, vals
	return nil
}

func (t *SparseTransitions) valid(s int) bool {
	return t.rowStart != nil && s >= 0 && s < len(t.rowStart)-1
}

func (t *SparseTransitions) Successors(s int) []int {
	if !t.valid(s) {
		return nil
	}
	return t.cols[t.rowStart[s]:t.rowStart[s+1]]
}

func (t *SparseTransitions) IsFinal(s int) bool {
	for _, c := range t.Successors(s) {
		if c != s {
			return false
		}
	}
	return true
}

func (t *SparseTransitions) Probability(from, to int) (float64, error) {
	if t.rowStart == nil {
		return 0, errors.New("transition matrix has not been built")
	}
	if !t.valid(from) || !t.valid(to) {
		return 0, errors.Newf("transition (%d,%d) out of range", from, to)
	}
	row := t.cols[t.rowStart[from]:t.rowStart[from+1]]
	k, found := slices.BinarySearch(row, to)
	if !found {
		return 0, nil
	}
	return t.vals[t.rowStart[from]+k], nil
}

func (t *SparseTransitions) Release() {
	t.rowStart, t.cols, t.vals = nil, nil, nil
}
