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
	"encoding/gob"
	"fmt"
	"io"
)

// Save writes g to w in gob format for consumption by the field solver.
func (g *Grid) Save(w io.Writer) error {
	e := gob.NewEncoder(w)
	if err := e.Encode(g); err != nil {
		return fmt.Errorf("fdgrid: Grid.Save: %v", err)
	}
	return nil
}

// LoadGrid reads a grid previously written with Save.
func LoadGrid(r io.Reader) (*Grid, error) {
	dec := gob.NewDecoder(r)
	g := new(Grid)
	if err := dec.Decode(g); err != nil {
		return nil, fmt.Errorf("fdgrid: LoadGrid: %v", err)
	}
	return g, nil
}
