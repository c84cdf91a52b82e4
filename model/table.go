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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintStates writes a table of all reachable states.
func PrintStates(w io.Writer, sys *System) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "State", "Secret", "Output", "Initial", "Final", "Successors"})
	for i, s := range sys.ReachableStates() {
		t.AppendRow(table.Row{s.Number, s.Name, s.Secret, s.Output, sys.IsInitial(i), sys.IsFinal(i), len(sys.Edges(i))})
	}
	t.AppendFooter(table.Row{"", "", "", "", len(sys.initial), "", sys.NumTransitions()})
	t.Render()
}
