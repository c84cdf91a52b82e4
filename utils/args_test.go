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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsBuilder_Build(t *testing.T) {
	args := NewArgs("leak").
		Arg("explore").
		Flag("model", "m.yaml").
		Flag("bounded-step", uint(3)).
		Flag("memory-limit", uint64(16)).
		Flag("count", 2).
		Flag("quiet", true).
		Flag("verbose", false).
		Build()
	assert.Equal(t, []string{
		"leak", "explore",
		"--model", "m.yaml",
		"--bounded-step", "3",
		"--memory-limit", "16",
		"--count", "2",
		"--quiet",
	}, args)
}

func TestArgsBuilder_UnsupportedTypePanics(t *testing.T) {
	assert.Panics(t, func() { NewArgs("leak").Flag("x", 1.5) })
	assert.Panics(t, func() { NewArgs("leak").Arg(true) })
}
