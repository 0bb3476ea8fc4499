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

import "sort"

// Grid is the assembled computational grid: one strictly increasing cell
// boundary sequence per axis spanning the full extended domain (interior
// plus absorbing layers), with the PML grading profiles attached per axis
// and side. A Grid is immutable once assembled and safe for concurrent
// use by any number of readers.
type Grid struct {
	// Bounds holds the cell boundary coordinates for each axis [µm].
	Bounds [3][]float64

	// PML holds the absorbing-layer profiles for each axis and side
	// (SideLow, SideHigh). A profile with no layers has nil slices.
	PML [3][2]PMLProfile
}

// newGrid assembles the per-axis boundary sequences into a Grid,
// enforcing the output invariants.
func newGrid(bounds [3][]float64, pml [3][2]PMLProfile) (*Grid, error) {
	for ax := X; ax <= Z; ax++ {
		b := bounds[ax]
		if len(b) < 2 {
			return nil, assemblyErr("%v axis has %d cells; at least 1 is required", ax, len(b)-1)
		}
		for i := 1; i < len(b); i++ {
			if b[i] <= b[i-1] {
				return nil, assemblyErr("%v axis has a zero-width or inverted cell at boundary %d (%g, %g)", ax, i, b[i-1], b[i])
			}
		}
	}
	return &Grid{Bounds: bounds, PML: pml}, nil
}

// Boundaries returns the cell boundary coordinates along axis ax.
// The returned slice is shared; callers must not modify it.
func (g *Grid) Boundaries(ax Axis) []float64 { return g.Bounds[ax] }

// NCells returns the number of cells along axis ax.
func (g *Grid) NCells(ax Axis) int { return len(g.Bounds[ax]) - 1 }

// Sizes returns the cell sizes along axis ax.
func (g *Grid) Sizes(ax Axis) []float64 {
	b := g.Bounds[ax]
	s := make([]float64, len(b)-1)
	for i := range s {
		s[i] = b[i+1] - b[i]
	}
	return s
}

// Centers returns the cell center coordinates along axis ax.
func (g *Grid) Centers(ax Axis) []float64 {
	b := g.Bounds[ax]
	c := make([]float64, len(b)-1)
	for i := range c {
		c[i] = (b[i] + b[i+1]) / 2
	}
	return c
}

// Extent returns the outermost boundary coordinates along axis ax.
func (g *Grid) Extent(ax Axis) (min, max float64) {
	b := g.Bounds[ax]
	return b[0], b[len(b)-1]
}

// CellIndex returns the index of the cell containing coordinate x along
// axis ax, or -1 if x lies outside the grid. A coordinate exactly on an
// interior boundary belongs to the cell above it; the upper domain edge
// belongs to the last cell.
func (g *Grid) CellIndex(ax Axis, x float64) int {
	b := g.Bounds[ax]
	if x < b[0] || x > b[len(b)-1] {
		return -1
	}
	if x == b[len(b)-1] {
		return len(b) - 2
	}
	// First index with b[i] > x; the containing cell is one below it.
	i := sort.SearchFloat64s(b, x)
	if b[i] == x {
		return i
	}
	return i - 1
}
