/*
Copyright © 2018 the FDGrid authors.
This file is part of FDGrid.

FDGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

FDGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with FDGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package fdgridutil wires the fdgrid library into a command-line
// interface: configuration file handling, flag registration and the
// grid-generation command.
package fdgridutil

import (
	"fmt"

	"github.com/emmodel/fdgrid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

// options are the configuration options available to FDGrid.
var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	Cfg = viper.New()

	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path where the generated grid
              is written in gob format.`,
			shorthand:  "o",
			defaultVal: "grid.gob",
			flagsets:   []*pflag.FlagSet{gridCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			default:
				panic(fmt.Sprintf("fdgridutil: unsupported flag type %T", option.defaultVal))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
		Cfg.SetDefault(option.name, option.defaultVal)
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "fdgrid",
	Short: "A grid generator for finite-difference electromagnetic simulations.",
	Long: `FDGrid converts an electromagnetic simulation specification into a
graded, non-uniform computational grid for an external field solver.
Each command takes a configuration file describing the simulation
domain, structures, sources, and per-axis grid settings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	SilenceUsage: true,
}

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Generate the computational grid and save it to a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return Grid(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("FDGrid v%s\n", fdgrid.Version)
	},
}

func init() {
	Root.AddCommand(gridCmd, versionCmd)
}

// initializeConfig reads the configuration file named by the config
// option, if any.
func initializeConfig() error {
	file := cast.ToString(Cfg.Get("config"))
	if file == "" {
		return nil
	}
	Cfg.SetConfigFile(file)
	if err := Cfg.ReadInConfig(); err != nil {
		return fmt.Errorf("fdgridutil: problem reading configuration file: %v", err)
	}
	return nil
}

// loadConfig unmarshals the active configuration into a ConfigData.
func loadConfig() (*ConfigData, error) {
	cfg := new(ConfigData)
	if err := Cfg.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("fdgridutil: problem parsing configuration: %v", err)
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = cast.ToString(Cfg.Get("OutputFile"))
	}
	return cfg, nil
}
