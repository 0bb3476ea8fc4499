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

// Package fdgrid generates non-uniform finite-difference grids for
// electromagnetic simulations. A simulation is specified as a set of
// geometric structures with material properties, excitation sources,
// per-axis grid configuration, absorbing boundary (PML) specifications,
// and symmetry flags; the package turns that specification into graded
// cell-boundary sequences that resolve every structure at the resolution
// its material and the source spectrum demand.
//
// Lengths throughout the package are in micrometers and frequencies are
// in hertz.
package fdgrid

// Version gives the version number of this version of FDGrid.
const Version = "1.1.0"

// SpeedOfLight is the vacuum speed of light [µm/s].
const SpeedOfLight = 2.99792458e14

// Axis identifies one of the three Cartesian directions.
type Axis int

// The three Cartesian axes.
const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "invalid axis"
}

// planeAxes returns the two axes perpendicular to a, in cyclic order.
func planeAxes(a Axis) (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return Z, X
	default:
		return X, Y
	}
}

// Point is a location in three-dimensional space [µm].
type Point struct {
	X, Y, Z float64
}

// Coord returns the coordinate of p along axis ax.
func (p Point) Coord(ax Axis) float64 {
	switch ax {
	case X:
		return p.X
	case Y:
		return p.Y
	default:
		return p.Z
	}
}
