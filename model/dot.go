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
	"fmt"
	"path/filepath"

	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// dotFormat selects the graphviz output format from a file extension.
func dotFormat(filename string) (graphviz.Format, error) {
	switch filepath.Ext(utils.TrimCompression(filename)) {
	case ".dot", ".gv":
		return graphviz.XDOT, nil
	case ".svg":
		return graphviz.SVG, nil
	case ".png":
		return graphviz.PNG, nil
	case ".jpg":
		return graphviz.JPG, nil
	}
	return "", errors.Newf("unsupported graph format of file %s", filename)
}

// RenderDot renders the transition system in the given graphviz format.
// Initial states show their secret, final states their public output.
func RenderDot(title string, sys *System, format graphviz.Format) (out []byte, err error) {
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create graph")
	}
	defer func() {
		err = errors.Join(err, graph.Close(), g.Close())
	}()
	graph.SetLabel(title)

	states := sys.ReachableStates()
	nodes := make([]*cgraph.Node, len(states))
	for i, s := range states {
		nodes[i], err = graph.CreateNode(s.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create node for state %v", s.Name)
		}
		label := s.Name
		if sys.IsInitial(i) {
			label += fmt.Sprintf("\nh=%s", s.Secret)
		}
		if sys.IsFinal(i) {
			label += fmt.Sprintf("\no=%s", s.Output)
			nodes[i].SetShape(cgraph.DoubleCircleShape)
		}
		nodes[i].SetLabel(label)
	}
	for i := range states {
		for _, e := range sys.Edges(i) {
			edge, err := graph.CreateEdge("", nodes[i], nodes[e.To])
			if err != nil {
				return nil, errors.Wrapf(err, "failed to create edge %v -> %v", states[i].Name, states[e.To].Name)
			}
			edge.SetLabel(fmt.Sprintf("%.2f", e.Prob))
		}
	}

	var buf bytes.Buffer
	if err := g.Render(graph, format, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render graph")
	}
	return buf.Bytes(), nil
}

// WriteDot renders the transition system into a file whose extension
// selects the output format.
func WriteDot(filename string, sys *System) (err error) {
	format, err := dotFormat(filename)
	if err != nil {
		return err
	}
	out, err := RenderDot(filepath.Base(utils.TrimCompression(filename)), sys, format)
	if err != nil {
		return err
	}
	w, err := utils.CreateFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	_, err = w.Write(out)
	return err
}
