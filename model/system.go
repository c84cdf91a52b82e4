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
	"math"
	"slices"

	"github.com/0xsoniclabs/leakage/model/markov"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
)

// Description is the declarative form of a transition system.
type Description struct {
	States      []StateDescription      `yaml:"states"`
	Transitions []TransitionDescription `yaml:"transitions"`
}

// StateDescription declares a single state.
type StateDescription struct {
	Name    string `yaml:"name"`
	Secret  string `yaml:"secret"`
	Output  string `yaml:"output"`
	Initial bool   `yaml:"initial"`
}

// TransitionDescription declares a probabilistic transition between two states.
type TransitionDescription struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Prob float64 `yaml:"prob"`
}

// Edge is an outgoing transition of a state.
type Edge struct {
	To   int
	Prob float64
}

// System is an explicit probabilistic transition system restricted to the
// states reachable from its initial states. Transitions with probability
// zero are dropped.
type System struct {
	states  []State
	initial []int
	edges   [][]Edge // outgoing edges per state, ordered by target
}

// NewSystem validates a description and derives the reachable part of the
// transition system. States without outgoing transitions receive a
// self-loop with probability one. Repeated transitions between the same
// pair of states are summed up.
func NewSystem(d Description) (*System, error) {
	n := len(d.States)
	index := make(map[string]int, n)
	for i, s := range d.States {
		if s.Name == "" {
			return nil, errors.Newf("state %d has no name", i)
		}
		if _, found := index[s.Name]; found {
			return nil, errors.Newf("state %q is declared more than once", s.Name)
		}
		index[s.Name] = i
	}

	out := make([]map[int]float64, n)
	for i := range out {
		out[i] = map[int]float64{}
	}
	for _, t := range d.Transitions {
		from, found := index[t.From]
		if !found {
			return nil, errors.Newf("transition %s -> %s: unknown source state", t.From, t.To)
		}
		to, found := index[t.To]
		if !found {
			return nil, errors.Newf("transition %s -> %s: unknown target state", t.From, t.To)
		}
		if math.IsNaN(t.Prob) || t.Prob < 0 || t.Prob > 1 {
			return nil, errors.Newf("transition %s -> %s: invalid probability (%v)", t.From, t.To, t.Prob)
		}
		if t.Prob == 0 {
			continue
		}
		out[from][to] += t.Prob
	}

	initial := []int{}
	for i, s := range d.States {
		if s.Initial {
			initial = append(initial, i)
		}
		// deadlocks become absorbing
		if len(out[i]) == 0 {
			out[i][i] = 1.0
			continue
		}
		row := make([]float64, 0, len(out[i]))
		for _, to := range sortedKeys(out[i]) {
			row = append(row, out[i][to])
		}
		if err := markov.CheckPMF(row); err != nil {
			return nil, errors.Wrapf(err, "outgoing transitions of state %q", s.Name)
		}
	}
	if len(initial) == 0 {
		return nil, errors.New("transition system has no initial state")
	}

	// breadth-first search for reachable states
	reachable := make([]bool, n)
	queue := slices.Clone(initial)
	for _, i := range initial {
		reachable[i] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for to := range out[cur] {
			if !reachable[to] {
				reachable[to] = true
				queue = append(queue, to)
			}
		}
	}

	// renumber reachable states in declaration order
	number := make([]int, n)
	sys := &System{}
	for i, s := range d.States {
		if !reachable[i] {
			number[i] = -1
			continue
		}
		number[i] = len(sys.states)
		sys.states = append(sys.states, State{
			Number: number[i],
			Name:   s.Name,
			Output: s.Output,
			Secret: s.Secret,
		})
	}
	for _, i := range initial {
		sys.initial = append(sys.initial, number[i])
	}
	sys.edges = make([][]Edge, len(sys.states))
	for i := range d.States {
		if number[i] < 0 {
			continue
		}
		edges := make([]Edge, 0, len(out[i]))
		for _, to := range sortedKeys(out[i]) {
			edges = append(edges, Edge{To: number[to], Prob: out[i][to]})
		}
		sys.edges[number[i]] = edges
	}
	return sys, nil
}

// sortedKeys returns the target states of a row in ascending order.
func sortedKeys(row map[int]float64) []int {
	keys := maps.Keys(row)
	slices.Sort(keys)
	return keys
}

// ReachableStates returns all reachable states ordered by state number.
func (s *System) ReachableStates() []State {
	return slices.Clone(s.states)
}

// InitialStates returns the initial states in declaration order.
func (s *System) InitialStates() []State {
	res := make([]State, 0, len(s.initial))
	for _, i := range s.initial {
		res = append(res, s.states[i])
	}
	return res
}

// NumStates returns the number of reachable states.
func (s *System) NumStates() int {
	return len(s.states)
}

// NumTransitions returns the number of transitions between reachable states.
func (s *System) NumTransitions() int {
	total := 0
	for _, e := range s.edges {
		total += len(e)
	}
	return total
}

// Edges returns the outgoing transitions of state i ordered by target state.
func (s *System) Edges(i int) []Edge {
	if i < 0 || i >= len(s.edges) {
		return nil
	}
	return s.edges[i]
}

// IsInitial reports whether state i is an initial state.
func (s *System) IsInitial(i int) bool {
	return slices.Contains(s.initial, i)
}

// IsFinal reports whether state i has no successor other than itself.
func (s *System) IsFinal(i int) bool {
	for _, e := range s.Edges(i) {
		if e.To != i {
			return false
		}
	}
	return true
}
