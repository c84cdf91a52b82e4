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

package inspect

import (
	"github.com/0xsoniclabs/leakage/config"
	"github.com/0xsoniclabs/leakage/logger"
	"github.com/0xsoniclabs/leakage/model"
	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// DotCommand renders a transition system as a graph.
var DotCommand = cli.Command{
	Action: dotAction,
	Name:   "dot",
	Usage:  "renders the reachable part of a model as a graph",
	Flags: []cli.Flag{
		&utils.ModelFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The dot command writes the reachable states of a model and their transitions as
a graph. The format follows the extension of --output (.dot, .svg, .png, .jpg).
`,
}

// StatesCommand prints the reachable states of a transition system.
var StatesCommand = cli.Command{
	Action: statesAction,
	Name:   "states",
	Usage:  "lists the reachable states of a model",
	Flags: []cli.Flag{
		&utils.ModelFlag,
		&logger.LogLevelFlag,
	},
}

func dotAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return errors.Newf("no output file given; use --%s", utils.OutputFlag.Name)
	}
	log := logger.NewLogger(cfg.LogLevel, "leak-dot")

	sys, err := model.Load(cfg.ModelFile)
	if err != nil {
		return err
	}
	if err = model.WriteDot(cfg.Output, sys); err != nil {
		return err
	}
	log.Noticef("Graph of %d states written to %v", sys.NumStates(), cfg.Output)
	return nil
}

func statesAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	sys, err := model.Load(cfg.ModelFile)
	if err != nil {
		return err
	}
	model.PrintStates(ctx.App.Writer, sys)
	return nil
}
