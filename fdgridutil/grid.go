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

package fdgridutil

import (
	"fmt"
	"os"
	"time"

	"github.com/emmodel/fdgrid"
)

// Grid generates the computational grid described by cfg and writes it
// to cfg.OutputFile in gob format.
func Grid(cfg *ConfigData) error {
	start := time.Now()
	logger.Info("Generating grid...")

	sim, err := cfg.Simulation()
	if err != nil {
		return err
	}
	grid, err := sim.GenerateGrid()
	if err != nil {
		return err
	}

	nx, ny, nz := grid.NCells(fdgrid.X), grid.NCells(fdgrid.Y), grid.NCells(fdgrid.Z)
	logger.WithFields(map[string]interface{}{
		"nx": nx, "ny": ny, "nz": nz,
		"cells": nx * ny * nz,
	}).Info("Grid generation complete")

	if err := writeGrid(grid, cfg.OutputFile); err != nil {
		return err
	}
	logger.Infof("Wrote %s in %v", cfg.OutputFile, time.Since(start).Round(time.Millisecond))
	return nil
}

func writeGrid(grid *fdgrid.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fdgridutil: problem creating output file: %v", err)
	}
	if err := grid.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
