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
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/0xsoniclabs/leakage/logger"
	"github.com/0xsoniclabs/leakage/model"
	"github.com/cockroachdb/errors"
)

// noParent marks the initial state in the first-discovery tree.
const noParent = -1

// MaxBoundedStep is the largest number of transitions of a bounded path.
const MaxBoundedStep = 1 << 20

// Mode selects the path exploration strategy.
type Mode struct {
	Bounded bool
	Step    uint // number of transitions of a bounded path
}

// Unbounded explores paths from initial states down to final states.
func Unbounded() Mode {
	return Mode{}
}

// Bounded explores all paths with exactly step transitions. Explore rejects
// steps above MaxBoundedStep.
func Bounded(step uint) Mode {
	return Mode{Bounded: true, Step: step}
}

func (m Mode) String() string {
	if m.Bounded {
		return fmt.Sprintf("bounded(%d)", m.Step)
	}
	return "unbounded"
}

// Stats summarizes an exploration.
type Stats struct {
	Paths   uint64
	Mass    float64
	Elapsed time.Duration
}

// Explorer enumerates paths of a transition system and accumulates their
// probabilities into the joint output-secret distribution.
type Explorer struct {
	trans   model.Transitions
	prior   *Prior
	log     logger.Logger
	reach   []model.State
	initial []model.State
	joint   *JointTable
	stats   Stats
}

// NewExplorer creates an explorer over the given states and transitions.
func NewExplorer(store model.StateStore, trans model.Transitions, prior *Prior, log logger.Logger) *Explorer {
	return &Explorer{
		trans:   trans,
		prior:   prior,
		log:     log,
		reach:   store.ReachableStates(),
		initial: store.InitialStates(),
		joint:   NewJointTable(),
	}
}

// Explore builds the transition representation and explores the paths of
// all initial states in the given mode. Every call starts from an empty
// joint distribution. Unbounded exploration requires that every initial
// state eventually reaches a final state.
func (e *Explorer) Explore(ctx context.Context, mode Mode) (Stats, error) {
	if mode.Bounded && mode.Step > MaxBoundedStep {
		return Stats{}, errors.Newf("bounded step %d exceeds the maximum of %d", mode.Step, MaxBoundedStep)
	}
	if err := e.trans.Build(); err != nil {
		return Stats{}, errors.Wrap(err, "cannot build transition representation")
	}
	e.joint.Reset()
	e.stats = Stats{}

	start := time.Now()
	e.log.Noticef("Explore %v paths of %d initial states (%d reachable states, %v prior)",
		mode, len(e.initial), len(e.reach), e.prior.Mode())
	for _, s := range e.initial {
		var err error
		if mode.Bounded {
			err = e.exploreBounded(ctx, s.Number, int(mode.Step))
		} else {
			err = e.exploreUnbounded(ctx, s.Number)
		}
		if err != nil {
			return e.stats, err
		}
	}
	e.stats.Elapsed = time.Since(start)

	hours, minutes, seconds := logger.ParseTime(e.stats.Elapsed)
	e.log.Noticef("Explored %d paths with total probability %v in %vh %vm %vs",
		e.stats.Paths, e.stats.Mass, hours, minutes, seconds)
	return e.stats, nil
}

// exploreBounded visits all paths of exactly step transitions depth-first.
// The path buffer is shared across branches; frames keep the position in
// the successor list of each state on the path.
func (e *Explorer) exploreBounded(ctx context.Context, initial int, step int) error {
	type frame struct {
		succ []int
		next int
	}

	path := []int{initial}
	if len(path) == step+1 {
		return e.handlePath(ctx, path)
	}
	stack := []frame{{succ: e.trans.Successors(initial)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.succ) {
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
			continue
		}
		s := top.succ[top.next]
		top.next++

		path = append(path, s)
		if len(path) == step+1 {
			if err := e.handlePath(ctx, path); err != nil {
				return err
			}
			path = path[:len(path)-1]
			continue
		}
		stack = append(stack, frame{succ: e.trans.Successors(s)})
	}
	return nil
}

// exploreUnbounded traverses the states reachable from initial in pre-order
// and records for each state the state that discovered it first. Every
// final state popped from the stack contributes the single path along its
// discoverers.
func (e *Explorer) exploreUnbounded(ctx context.Context, initial int) error {
	parent := map[int]int{initial: noParent}
	stack := []int{initial}
	found := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.trans.IsFinal(cur) {
			if err := e.handlePath(ctx, discoveryPath(cur, parent)); err != nil {
				return err
			}
			found++
			continue
		}
		for _, next := range e.trans.Successors(cur) {
			if next == cur {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			stack = append(stack, next)
		}
	}
	if found == 0 {
		e.log.Warningf("Initial state %v reaches no final state", e.reach[initial].Name)
	}
	return nil
}

// discoveryPath follows the discoverers from final back to the initial
// state and returns the path in initial-to-final order.
func discoveryPath(final int, parent map[int]int) []int {
	path := []int{}
	for cur := final; cur != noParent; cur = parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// JointDistribution returns a copy of the joint distribution Pr(output, secret).
func (e *Explorer) JointDistribution() map[string]map[string]float64 {
	return e.joint.Snapshot()
}

// PriorDistribution returns a copy of the prior distribution of the secret.
func (e *Explorer) PriorDistribution() map[string]float64 {
	return e.prior.Distribution()
}

// Joint returns the accumulated joint table.
func (e *Explorer) Joint() *JointTable {
	return e.joint
}
