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

// State is an explicit state of a transition system. The number of a state
// is its position in the list of reachable states.
type State struct {
	Number int
	Name   string
	Output string // public output, meaningful for final states
	Secret string // secret value, meaningful for initial states
}

// StateStore supplies the explicit state sets of a transition system.
//
//go:generate mockgen -source state.go -destination state_mock.go -package model
type StateStore interface {
	// ReachableStates returns all reachable states ordered by state number.
	ReachableStates() []State
	// InitialStates returns the initial states in declaration order.
	InitialStates() []State
}
