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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/leakage/cmd/leak/explore"
	"github.com/0xsoniclabs/leakage/cmd/leak/inspect"
	"github.com/urfave/cli/v2"
)

// LeakApp data structure
var LeakApp = cli.App{
	Name:      "Leakage Explorer",
	HelpName:  "leak",
	Usage:     "compute the joint output-secret distribution of a probabilistic transition system",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&explore.Command,
		&inspect.DotCommand,
		&inspect.StatesCommand,
	},
}

// main implements leak cli.
func main() {
	if err := LeakApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
