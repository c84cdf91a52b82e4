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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-graphviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot_RenderDot(t *testing.T) {
	sys, err := NewSystem(branchingDescription())
	require.NoError(t, err)

	out, err := RenderDot("branching", sys, graphviz.XDOT)
	require.NoError(t, err)
	txt := string(out)
	for _, name := range []string{"h0", "h1", "mid", "low", "high"} {
		assert.Contains(t, txt, name)
	}
	assert.Contains(t, txt, "0.60")
	assert.Contains(t, txt, "doublecircle")
}

func TestDot_WriteDot(t *testing.T) {
	sys, err := NewSystem(branchingDescription())
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "model.dot")
	require.NoError(t, WriteDot(name, sys))
	raw, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(raw, []byte("digraph")))
	assert.False(t, bytes.Contains(raw, []byte("_draw_")), "plain dot carries no xdot drawing operations")

	format, err := dotFormat("model.gv.gz")
	require.NoError(t, err)
	assert.Equal(t, graphviz.Format("dot"), format)

	err = WriteDot(filepath.Join(t.TempDir(), "model.txt"), sys)
	assert.ErrorContains(t, err, "unsupported graph format")
}

func TestTable_PrintStates(t *testing.T) {
	sys, err := NewSystem(branchingDescription())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintStates(&buf, sys)
	txt := buf.String()
	assert.Contains(t, txt, "SECRET")
	assert.Contains(t, txt, "mid")
	assert.Contains(t, txt, "high")
}
