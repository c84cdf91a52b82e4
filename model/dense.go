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
	"github.com/0xsoniclabs/leakage/model/markov"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// DenseTransitions stores the transition relation as a dense Markov chain.
type DenseTransitions struct {
	sys   *System
	limit uint64

	chain *markov.Chain
	succ  [][]int
}

// NewDenseTransitions creates an unbuilt dense representation.
func NewDenseTransitions(sys *System, limit uint64) *DenseTransitions {
	return &DenseTransitions{sys: sys, limit: limit}
}

func (t *DenseTransitions) Build() error {
	if t.chain != nil {
		return nil
	}
	n := t.sys.NumStates()
	if err := checkMemory(uint64(n)*uint64(n)*8, t.limit); err != nil {
		return err
	}
	a := mat.NewDense(n, n, nil)
	labels := make([]string, n)
	for i, s := range t.sys.ReachableStates() {
		labels[i] = s.Name
		for _, e := range t.sys.Edges(i) {
			a.Set(i, e.To, e.Prob)
		}
	}
	chain, err := markov.NewDense(a, labels)
	if err != nil {
		return errors.Wrap(err, "cannot build dense transition matrix")
	}

	// successor lists are cached since the explorer queries them repeatedly
	succ := make([][]int, n)
	for i := range n {
		if succ[i], err = chain.Successors(i); err != nil {
			return err
		}
	}
	t.chain, t.succ = chain, succ
	return nil
}

func (t *DenseTransitions) Successors(s int) []int {
	if t.chain == nil || s < 0 || s >= len(t.succ) {
		return nil
	}
	return t.succ[s]
}

func (t *DenseTransitions) IsFinal(s int) bool {
	if t.chain == nil {
		return false
	}
	final, err := t.chain.IsFinal(s)
	return err == nil && final
}

func (t *DenseTransitions) Probability(from, to int) (float64, error) {
	if t.chain == nil {
		return 0, errors.New("transition matrix has not been built")
	}
	return t.chain.Prob(from, to)
}

func (t *DenseTransitions) Release() {
	t.chain, t.succ = nil, nil
}
