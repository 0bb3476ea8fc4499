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

import "math"

// Sides of an axis.
const (
	SideLow  = 0
	SideHigh = 1
)

// PMLSpec configures the absorbing boundary layer on one side of one
// axis. A layer count of zero disables absorption on that side.
//
// The three profile families follow the standard polynomial grading of a
// perfectly matched layer: a conductivity-like loss term sigma, a
// coordinate-stretching term kappa, and an auxiliary frequency-shift term
// alpha (complex-frequency-shifted PML).
type PMLSpec struct {
	Layers int

	SigmaOrder         float64
	SigmaMin, SigmaMax float64

	KappaOrder         float64
	KappaMin, KappaMax float64

	AlphaOrder         float64
	AlphaMin, AlphaMax float64
}

// DefaultPML returns a PML specification with the given number of layers
// and standard grading parameters.
func DefaultPML(layers int) PMLSpec {
	return PMLSpec{
		Layers:     layers,
		SigmaOrder: 3, SigmaMin: 0, SigmaMax: 1.5,
		KappaOrder: 3, KappaMin: 1, KappaMax: 3,
		AlphaOrder: 1, AlphaMin: 0, AlphaMax: 0,
	}
}

func (p PMLSpec) validate(ax Axis, side int) error {
	if p.Layers < 0 {
		return configErr("%v axis: negative PML layer count %d on side %d", ax, p.Layers, side)
	}
	return nil
}

// PMLProfile holds the per-layer geometry and numeric grading profiles of
// one absorbing region, ordered by depth into the layer: index 0 is the
// innermost layer (adjacent to the interior) and the last index is the
// outermost. For the low side of an axis this is the reverse of
// coordinate order.
type PMLProfile struct {
	Widths []float64 // layer thicknesses [µm]
	Sigma  []float64 // loss-conductivity grading
	Kappa  []float64 // coordinate-stretching grading
	Alpha  []float64 // frequency-shift grading
}

// extendPML appends spec.Layers absorbing layers outward from one end of
// the boundary sequence b, continuing the interior grading: layer widths
// grow geometrically from the edge cell width by a factor of maxScale per
// layer. It returns the extended boundary sequence and the layer profile.
func extendPML(b []float64, spec PMLSpec, side int, maxScale float64) ([]float64, PMLProfile, error) {
	if spec.Layers == 0 {
		return b, PMLProfile{}, nil
	}
	if len(b) < 2 {
		return nil, PMLProfile{}, configErr("cannot attach %d PML layers to an axis with no interior cells", spec.Layers)
	}

	n := spec.Layers
	p := PMLProfile{
		Widths: make([]float64, n),
		Sigma:  make([]float64, n),
		Kappa:  make([]float64, n),
		Alpha:  make([]float64, n),
	}
	var edge float64
	if side == SideLow {
		edge = b[1] - b[0]
	} else {
		edge = b[len(b)-1] - b[len(b)-2]
	}
	for k := 0; k < n; k++ {
		d := float64(k+1) / float64(n) // normalized depth into the PML
		p.Widths[k] = edge * math.Pow(maxScale, float64(k+1))
		p.Sigma[k] = spec.SigmaMin + (spec.SigmaMax-spec.SigmaMin)*math.Pow(d, spec.SigmaOrder)
		p.Kappa[k] = spec.KappaMin + (spec.KappaMax-spec.KappaMin)*math.Pow(d, spec.KappaOrder)
		p.Alpha[k] = spec.AlphaMin + (spec.AlphaMax-spec.AlphaMin)*math.Pow(1-d, spec.AlphaOrder)
	}

	ext := make([]float64, 0, len(b)+n)
	if side == SideLow {
		// New boundaries run outward from b[0]; emit in coordinate order.
		x := b[0]
		outer := make([]float64, n)
		for k := 0; k < n; k++ {
			x -= p.Widths[k]
			outer[n-1-k] = x
		}
		ext = append(ext, outer...)
		ext = append(ext, b...)
	} else {
		ext = append(ext, b...)
		x := b[len(b)-1]
		for k := 0; k < n; k++ {
			x += p.Widths[k]
			ext = append(ext, x)
		}
	}
	return ext, p, nil
}
