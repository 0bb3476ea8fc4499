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

package fdgrid

import (
	"bytes"
	"reflect"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	sim := overlapTestSim()
	sim.PML[Z] = [2]PMLSpec{DefaultPML(8), DefaultPML(8)}

	g, err := sim.GenerateGrid()
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := g.Save(buf); err != nil {
		t.Fatal(err)
	}
	g2, err := LoadGrid(buf)
	if err != nil {
		t.Fatal(err)
	}

	for ax := X; ax <= Z; ax++ {
		if !reflect.DeepEqual(g.Boundaries(ax), g2.Boundaries(ax)) {
			t.Errorf("%v axis: boundaries changed across save/load", ax)
		}
	}
	if !reflect.DeepEqual(g.PML[Z], g2.PML[Z]) {
		t.Error("PML profiles changed across save/load")
	}
}
