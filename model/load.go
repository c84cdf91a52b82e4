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

	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a transition system description from a YAML or JSON file.
// Files ending in .gz are decompressed.
func Load(filename string) (sys *System, err error) {
	r, err := utils.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, r.Close())
	}()
	sys, err = Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid model file %s", filename)
	}
	return sys, nil
}

// Read decodes a transition system description. Unknown fields are rejected.
func Read(r io.Reader) (*System, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("model description is empty")
		}
		return nil, errors.Wrap(err, "cannot decode model description")
	}
	return NewSystem(d)
}
