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
	"slices"

	"github.com/cockroachdb/errors"
)

// pathProbability multiplies the prior weight of the path's initial state
// with the probabilities of all its transitions.
func (e *Explorer) pathProbability(path []int) (float64, error) {
	prob := 1.0
	for i := 0; i+1 < len(path); i++ {
		p, err := e.trans.Probability(path[i], path[i+1])
		if err != nil {
			return 0, errors.Wrapf(err, "cannot look up transition %d -> %d", path[i], path[i+1])
		}
		prob *= p
	}
	w, err := e.prior.Weight(e.reach[path[0]])
	if err != nil {
		return 0, err
	}
	return w * prob, nil
}

// handlePath prices a completed path and adds its probability to the entry
// of its final output and initial secret.
func (e *Explorer) handlePath(ctx context.Context, buffer []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := slices.Clone(buffer)
	prob, err := e.pathProbability(path)
	if err != nil {
		return err
	}
	output := e.reach[path[len(path)-1]].Output
	secret := e.reach[path[0]].Secret
	e.joint.Add(output, secret, prob)

	e.stats.Paths++
	e.stats.Mass += prob
	e.log.Debugf("Path %v: Pr=%v (o=%v, h=%v)", path, prob, output, secret)
	return nil
}
