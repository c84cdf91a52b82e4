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

package explore

import (
	"fmt"

	"github.com/0xsoniclabs/leakage/config"
	"github.com/0xsoniclabs/leakage/leak"
	"github.com/0xsoniclabs/leakage/logger"
	"github.com/0xsoniclabs/leakage/model"
	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Command explores the paths of a transition system.
var Command = cli.Command{
	Action: exploreAction,
	Name:   "explore",
	Usage:  "computes the joint distribution of outputs and secrets",
	Flags: []cli.Flag{
		&utils.ModelFlag,
		&utils.PriorFlag,
		&utils.BoundedStepFlag,
		&utils.RepresentationFlag,
		&utils.MemoryLimitFlag,
		&utils.OutputFlag,
		&utils.ReportFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The explore command enumerates paths from the initial states of the model and
accumulates the probability of each path into Pr(output, secret). Without
--bounded-step one path per reachable final state is recorded; with
--bounded-step N all paths of exactly N transitions are recorded.
`,
}

func exploreAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "leak-explore")

	sys, err := model.Load(cfg.ModelFile)
	if err != nil {
		return err
	}
	log.Infof("Loaded %d reachable states with %d transitions from %v",
		sys.NumStates(), sys.NumTransitions(), cfg.ModelFile)

	trans, err := model.NewTransitions(cfg.Representation, sys, cfg.MemoryLimitBytes())
	if err != nil {
		return err
	}
	defer trans.Release()

	priorMode := leak.UniformPrior
	if cfg.PriorFile != "" {
		priorMode = leak.FilePrior
	}
	prior, err := leak.NewPrior(priorMode, cfg.PriorFile, sys.InitialStates())
	if err != nil {
		return err
	}

	mode := leak.Unbounded()
	if cfg.Bounded {
		mode = leak.Bounded(cfg.BoundedStep)
	}
	explorer := leak.NewExplorer(sys, trans, prior, log)
	stats, err := explorer.Explore(ctx.Context, mode)
	if err != nil {
		return errors.Wrapf(err, "cannot explore %v", cfg.ModelFile)
	}

	if cfg.Output != "" {
		if err = leak.NewResult(explorer, mode, stats).Write(cfg.Output); err != nil {
			return err
		}
		log.Noticef("Result written to %v", cfg.Output)
	}

	summary := func() string {
		return fmt.Sprintf("%v: %d paths, total probability %.6f", mode, stats.Paths, stats.Mass)
	}
	printers := utils.NewPrinters().
		AddPrinterToConsole(cfg.Quiet, ctx.App.Writer, summary).
		AddPrinterToFile(cfg.Report, summary)
	defer func() {
		err = errors.Join(err, printers.Close())
	}()
	return printers.Print()
}
