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
	"os"
	"path/filepath"
	"testing"

	"github.com/emmodel/fdgrid"
)

const testConfig = `
Center = [0.0, 0.0, 0.0]
Size = [4.0, 4.0, 4.0]
OutputFile = "out.gob"

[Background]
Permittivity = 1.0

[[Structures]]
Name = "slab"
Type = "box"
Center = [0.0, 0.0, 0.0]
Size = [2.0, 2.0, 0.5]
  [Structures.Medium]
  Permittivity = 4.0

[[Sources]]
Freq0 = 2e14
Fwidth = 1e13

[X]
MaxScale = 1.3
PMLLow = 8
PMLHigh = 8

  [[X.Overrides]]
  Min = -1.0
  Max = 1.0
  Step = 0.05

[Y]
Symmetry = true

[Z]
Boundaries = [-2.0, -1.0, 0.0, 1.0, 2.0]
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "fdgrid.toml")
	if err := os.WriteFile(file, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestReadConfig(t *testing.T) {
	Cfg.SetConfigFile(writeTestConfig(t))
	if err := Cfg.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.OutputFile != "out.gob" {
		t.Errorf("OutputFile: want out.gob, got %s", cfg.OutputFile)
	}
	if len(cfg.Structures) != 1 || cfg.Structures[0].Type != "box" {
		t.Fatalf("expected one box structure, got %+v", cfg.Structures)
	}
	if cfg.Structures[0].Medium.Permittivity != 4 {
		t.Errorf("structure permittivity: want 4, got %g", cfg.Structures[0].Medium.Permittivity)
	}
	if len(cfg.X.Overrides) != 1 || cfg.X.Overrides[0].Step != 0.05 {
		t.Errorf("X overrides not parsed: %+v", cfg.X.Overrides)
	}
	if !cfg.Y.Symmetry {
		t.Error("Y symmetry not parsed")
	}
	if len(cfg.Z.Boundaries) != 5 {
		t.Errorf("Z boundaries: want 5 values, got %v", cfg.Z.Boundaries)
	}
}

func TestSimulationConversion(t *testing.T) {
	Cfg.SetConfigFile(writeTestConfig(t))
	if err := Cfg.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	sim, err := cfg.Simulation()
	if err != nil {
		t.Fatal(err)
	}

	if err := sim.Validate(); err != nil {
		t.Fatal(err)
	}
	if sim.PML[fdgrid.X][fdgrid.SideLow].Layers != 8 {
		t.Errorf("X low PML layers: want 8, got %d", sim.PML[fdgrid.X][fdgrid.SideLow].Layers)
	}
	if sim.PML[fdgrid.Y][fdgrid.SideLow].Layers != 0 {
		t.Errorf("Y PML should be disabled, got %d layers", sim.PML[fdgrid.Y][fdgrid.SideLow].Layers)
	}
	if !sim.Symmetry[fdgrid.Y] {
		t.Error("Y symmetry not carried into simulation")
	}
	if got := sim.GridSpec[fdgrid.X].MaxScale; got != 1.3 {
		t.Errorf("X MaxScale: want 1.3, got %g", got)
	}

	grid, err := sim.GenerateGrid()
	if err != nil {
		t.Fatal(err)
	}
	zb := grid.Boundaries(fdgrid.Z)
	want := []float64{-2, -1, 0, 1, 2}
	if len(zb) != len(want) {
		t.Fatalf("Z boundaries: want %v, got %v", want, zb)
	}
	for i := range want {
		if zb[i] != want[i] {
			t.Errorf("Z boundary %d: want %g, got %g", i, want[i], zb[i])
		}
	}
}

func TestStructureConversionErrors(t *testing.T) {
	bad := []StructureConfig{
		{Name: "a", Type: "torus"},
		{Name: "b", Type: "cylinder", Axis: 5},
		{Name: "c", Type: "polygon", Axis: -1},
	}
	for _, s := range bad {
		if _, err := s.structure(); err == nil {
			t.Errorf("structure %q: expected error, got nil", s.Name)
		}
	}
}
