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

package config

import (
	"math"

	"github.com/0xsoniclabs/leakage/leak"
	"github.com/0xsoniclabs/leakage/logger"
	"github.com/0xsoniclabs/leakage/model"
	"github.com/0xsoniclabs/leakage/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// maxMemoryLimit is the largest memory limit in MiB that fits into bytes.
const maxMemoryLimit = math.MaxUint64 >> 20

// Config summarizes the options of a leak command.
type Config struct {
	AppName     string
	CommandName string

	LogLevel       string
	ModelFile      string // transition system description
	PriorFile      string // empty selects the uniform prior
	Bounded        bool   // true when a bounded step was given
	BoundedStep    uint
	Representation string
	MemoryLimit    uint64 // MiB, 0 is unlimited
	Output         string
	Report         string
	Quiet          bool
}

// NewConfig creates and validates a configuration from the command line.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		LogLevel:       getFlagValue(ctx, logger.LogLevelFlag).(string),
		ModelFile:      getFlagValue(ctx, utils.ModelFlag).(string),
		PriorFile:      getFlagValue(ctx, utils.PriorFlag).(string),
		BoundedStep:    getFlagValue(ctx, utils.BoundedStepFlag).(uint),
		Representation: getFlagValue(ctx, utils.RepresentationFlag).(string),
		MemoryLimit:    getFlagValue(ctx, utils.MemoryLimitFlag).(uint64),
		Output:         getFlagValue(ctx, utils.OutputFlag).(string),
		Report:         getFlagValue(ctx, utils.ReportFlag).(string),
		Quiet:          getFlagValue(ctx, utils.QuietFlag).(bool),
	}
	cfg.Bounded = ctx.IsSet(utils.BoundedStepFlag.Name)
	return cfg
}

// Validate checks options that can be verified without touching any file.
func (cfg *Config) Validate() error {
	if cfg.ModelFile == "" {
		return errors.Newf("no model file given; use --%s", utils.ModelFlag.Name)
	}
	switch cfg.Representation {
	case model.SparseRepresentation, model.DenseRepresentation:
	default:
		return errors.Newf("unknown transition representation %q", cfg.Representation)
	}
	if cfg.Bounded && cfg.BoundedStep > leak.MaxBoundedStep {
		return errors.Newf("--%s %d exceeds the maximum of %d", utils.BoundedStepFlag.Name, cfg.BoundedStep, leak.MaxBoundedStep)
	}
	if cfg.MemoryLimit > maxMemoryLimit {
		return errors.Newf("--%s %d exceeds the maximum of %d MiB", utils.MemoryLimitFlag.Name, cfg.MemoryLimit, uint64(maxMemoryLimit))
	}
	return nil
}

// MemoryLimitBytes returns the memory limit in bytes.
func (cfg *Config) MemoryLimitBytes() uint64 {
	return cfg.MemoryLimit << 20
}

func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.UintFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint(f.Name)
			}

		case cli.Uint64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Uint64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.UintFlag:
		return f.Value
	case cli.Uint64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}
	return nil
}
