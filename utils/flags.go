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

import "github.com/urfave/cli/v2"

// Command line options for common flags in leak commands.
var (
	ModelFlag = cli.PathFlag{
		Name:    "model",
		Aliases: []string{"m"},
		Usage:   "transition system description (YAML or JSON, optionally gzipped)",
	}
	PriorFlag = cli.PathFlag{
		Name:  "prior",
		Usage: "prior distribution over initial states, one probability per line; uniform if omitted",
	}
	BoundedStepFlag = cli.UintFlag{
		Name:  "bounded-step",
		Usage: "enumerate all paths with exactly this many transitions instead of one path per final state",
	}
	RepresentationFlag = cli.StringFlag{
		Name:  "representation",
		Usage: "transition matrix representation (sparse, dense)",
		Value: "sparse",
	}
	MemoryLimitFlag = cli.Uint64Flag{
		Name:  "memory-limit",
		Usage: "memory limit for the transition matrix in MiB; 0 means no limit",
		Value: 0,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file",
	}
	ReportFlag = cli.PathFlag{
		Name:  "report",
		Usage: "append a run summary to this file",
	}
	QuietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "disable printing the run summary to the console",
	}
)
