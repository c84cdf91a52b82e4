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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// branchingDescription has two initial states that share a successor and
// final states with and without explicit self-loops.
func branchingDescription() Description {
	return Description{
		States: []StateDescription{
			{Name: "h0", Secret: "0", Initial: true},
			{Name: "h1", Secret: "1", Initial: true},
			{Name: "mid"},
			{Name: "low", Output: "L"},
			{Name: "high", Output: "H"},
		},
		Transitions: []TransitionDescription{
			{From: "h0", To: "mid", Prob: 0.5},
			{From: "h0", To: "low", Prob: 0.5},
			{From: "h1", To: "mid", Prob: 1.0},
			{From: "mid", To: "low", Prob: 0.4},
			{From: "mid", To: "high", Prob: 0.6},
			{From: "high", To: "high", Prob: 1.0},
		},
	}
}

func TestSystem_NewSystem(t *testing.T) {
	sys, err := NewSystem(branchingDescription())
	require.NoError(t, err)

	states := sys.ReachableStates()
	require.Len(t, states, 5)
	for i, s := range states {
		assert.Equal(t, i, s.Number)
	}
	assert.Equal(t, "mid", states[2].Name)

	initial := sys.InitialStates()
	require.Len(t, initial, 2)
	assert.Equal(t, "h0", initial[0].Name)
	assert.Equal(t, "0", initial[0].Secret)
	assert.Equal(t, "h1", initial[1].Name)

	assert.Equal(t, []Edge{{To: 2, Prob: 0.5}, {To: 3, Prob: 0.5}}, sys.Edges(0))
	assert.Equal(t, 7, sys.NumTransitions())
	assert.Nil(t, sys.Edges(5))
}

func TestSystem_DeadlocksBecomeAbsorbing(t *testing.T) {
	sys, err := NewSystem(branchingDescription())
	require.NoError(t, err)

	// low has no declared transition
	assert.Equal(t, []Edge{{To: 3, Prob: 1.0}}, sys.Edges(3))
	assert.True(t, sys.IsFinal(3))
	assert.True(t, sys.IsFinal(4))
	assert.False(t, sys.IsFinal(2))
	assert.True(t, sys.IsInitial(1))
	assert.False(t, sys.IsInitial(2))
}

func TestSystem_UnreachableStatesAreDropped(t *testing.T) {
	d := branchingDescription()
	d.States = append([]StateDescription{{Name: "orphan", Output: "X"}}, d.States...)
	d.Transitions = append(d.Transitions, TransitionDescription{From: "orphan", To: "h0", Prob: 1.0})

	sys, err := NewSystem(d)
	require.NoError(t, err)
	require.Equal(t, 5, sys.NumStates())
	for _, s := range sys.ReachableStates() {
		assert.NotEqual(t, "orphan", s.Name)
	}
	assert.Equal(t, 0, sys.InitialStates()[0].Number)
}

func TestSystem_RepeatedTransitionsAreSummed(t *testing.T) {
	sys, err := NewSystem(Description{
		States: []StateDescription{{Name: "a", Initial: true}, {Name: "b"}},
		Transitions: []TransitionDescription{
			{From: "a", To: "b", Prob: 0.5},
			{From: "a", To: "b", Prob: 0.5},
			{From: "a", To: "a", Prob: 0.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Edge{{To: 1, Prob: 1.0}}, sys.Edges(0))
}

func TestSystem_InvalidDescriptions(t *testing.T) {
	tests := map[string]struct {
		modify func(*Description)
		want   string
	}{
		"unnamed state": {
			modify: func(d *Description) { d.States[2].Name = "" },
			want:   "has no name",
		},
		"duplicate state": {
			modify: func(d *Description) { d.States[3].Name = "mid" },
			want:   "declared more than once",
		},
		"unknown source": {
			modify: func(d *Description) { d.Transitions[0].From = "nowhere" },
			want:   "unknown source state",
		},
		"unknown target": {
			modify: func(d *Description) { d.Transitions[0].To = "nowhere" },
			want:   "unknown target state",
		},
		"negative probability": {
			modify: func(d *Description) { d.Transitions[0].Prob = -0.5 },
			want:   "invalid probability",
		},
		"row does not sum to one": {
			modify: func(d *Description) { d.Transitions[3].Prob = 0.3 },
			want:   "outgoing transitions of state \"mid\"",
		},
		"no initial state": {
			modify: func(d *Description) {
				d.States[0].Initial = false
				d.States[1].Initial = false
			},
			want: "no initial state",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := branchingDescription()
			test.modify(&d)
			_, err := NewSystem(d)
			require.Error(t, err)
			assert.ErrorContains(t, err, test.want)
		})
	}
}
