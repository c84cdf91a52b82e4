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

package markov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	estimationEps = 1e-9 // epsilon for row sums
)

// Chain is a discrete-time Markov chain over labelled states.
type Chain struct {
	n int        // number of states
	a *mat.Dense // stochastic matrix
}

// New creates a new Chain from a stochastic matrix and a list of labels.
// The matrix must be square and the number of labels must match the number of rows/columns.
// Each row must sum to one and contain only values in the interval [0,1].
// Each label must be unique.
func New(a [][]float64, labels []string) (*Chain, error) {
	n := len(labels)
	if len(a) != n {
		return nil, fmt.Errorf("New: number of labels (%v) mismatches number of rows (%v)", n, len(a))
	}
	elements := make([]float64, 0, n*n)
	for i := range n {
		if len(a[i]) != n {
			return nil, fmt.Errorf("New: number of columns (%v) in row (%v) is not equal to the number of labels (%v)", len(a[i]), i, n)
		}
		elements = append(elements, a[i]...)
	}
	if n == 0 {
		return nil, fmt.Errorf("New: markov chain has no states")
	}
	return NewDense(mat.NewDense(n, n, elements), labels)
}

// NewDense creates a new Chain from a dense matrix. The matrix is not copied.
func NewDense(a *mat.Dense, labels []string) (*Chain, error) {
	// check uniqueness of labels
	n := len(labels)
	labelCount := map[string]int{}
	for i := range n {
		labelCount[labels[i]]++
	}
	for k, c := range labelCount {
		if c > 1 {
			return nil, fmt.Errorf("New: the state (%v) occurs more than once (%v)", k, c)
		}
	}

	// check markov property of matrix: (1) nxn matrix, (2) rows sum to one, (3) all values in [0,1].
	r, c := a.Dims()
	if r != n || c != n {
		return nil, fmt.Errorf("New: matrix of size %vx%v does not match the number of labels (%v)", r, c, n)
	}
	for i := range n {
		if err := CheckPMF(a.RawRowView(i)); err != nil {
			return nil, fmt.Errorf("New: row %v is not a distribution; %w", i, err)
		}
	}
	return &Chain{a: a, n: n}, nil
}

// CheckPMF checks whether f is a probability mass function: all
// probabilities are in [0,1] and sum up to one.
func CheckPMF(f []float64) error {
	for _, x := range f {
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return fmt.Errorf("invalid probability (%v)", x)
		}
	}
	if total := floats.Sum(f); math.Abs(total-1.0) > estimationEps {
		return fmt.Errorf("total is not one (%v)", total)
	}
	return nil
}

// Prob returns the transition probability from state i to state j.
func (mc *Chain) Prob(i, j int) (float64, error) {
	if i < 0 || i >= mc.n || j < 0 || j >= mc.n {
		return 0, fmt.Errorf("Prob: transition (%v,%v) out of range", i, j)
	}
	return mc.a.At(i, j), nil
}

// Successors returns the states reachable from i in one step in ascending order.
// A self-loop is included once.
func (mc *Chain) Successors(i int) ([]int, error) {
	if i < 0 || i >= mc.n {
		return nil, fmt.Errorf("Successors: state index (%v) out of range", i)
	}
	succ := []int{}
	for j, p := range mc.a.RawRowView(i) {
		if p > 0.0 {
			succ = append(succ, j)
		}
	}
	return succ, nil
}

// IsFinal reports whether state i has no successor other than itself.
func (mc *Chain) IsFinal(i int) (bool, error) {
	if i < 0 || i >= mc.n {
		return false, fmt.Errorf("IsFinal: state index (%v) out of range", i)
	}
	for j, p := range mc.a.RawRowView(i) {
		if j != i && p > 0.0 {
			return false, nil
		}
	}
	return true, nil
}
