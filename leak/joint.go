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
	"slices"

	"golang.org/x/exp/maps"
)

// JointTable accumulates the joint distribution Pr(output, secret) of
// public outputs and secret values.
type JointTable struct {
	entries map[string]map[string]float64
}

// NewJointTable creates an empty table.
func NewJointTable() *JointTable {
	return &JointTable{entries: map[string]map[string]float64{}}
}

// Add adds probability mass to the entry (output, secret); absent entries
// count as zero.
func (t *JointTable) Add(output, secret string, p float64) {
	row, found := t.entries[output]
	if !found {
		row = map[string]float64{}
		t.entries[output] = row
	}
	row[secret] += p
}

// Get returns the accumulated mass of (output, secret), zero if absent.
func (t *JointTable) Get(output, secret string) float64 {
	return t.entries[output][secret]
}

// Outputs returns the observed outputs in ascending order.
func (t *JointTable) Outputs() []string {
	outputs := maps.Keys(t.entries)
	slices.Sort(outputs)
	return outputs
}

// Secrets returns all secrets with an entry in ascending order.
func (t *JointTable) Secrets() []string {
	seen := map[string]struct{}{}
	for _, row := range t.entries {
		for h := range row {
			seen[h] = struct{}{}
		}
	}
	secrets := maps.Keys(seen)
	slices.Sort(secrets)
	return secrets
}

// Total returns the accumulated probability mass over all entries.
func (t *JointTable) Total() float64 {
	total := 0.0
	for _, o := range t.Outputs() {
		row := t.entries[o]
		secrets := maps.Keys(row)
		slices.Sort(secrets)
		for _, h := range secrets {
			total += row[h]
		}
	}
	return total
}

// Snapshot returns a deep copy of the table.
func (t *JointTable) Snapshot() map[string]map[string]float64 {
	res := make(map[string]map[string]float64, len(t.entries))
	for o, row := range t.entries {
		res[o] = maps.Clone(row)
	}
	return res
}

// Reset removes all entries.
func (t *JointTable) Reset() {
	clear(t.entries)
}
