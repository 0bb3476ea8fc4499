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

// Medium describes the electromagnetic response of a material, simplified
// to a real relative permittivity and conductivity.
type Medium struct {
	Permittivity float64 // relative permittivity [dimensionless, >= 1]
	Conductivity float64 // conductivity [S/µm, >= 0]

	// FreqMin and FreqMax optionally bound the frequency range [Hz] over
	// which the medium description is valid. Both zero means unbounded.
	FreqMin, FreqMax float64
}

// Vacuum is the trivial background medium.
var Vacuum = Medium{Permittivity: 1}

// RefractiveIndex returns the real refractive index of m.
func (m Medium) RefractiveIndex() float64 {
	return math.Sqrt(m.Permittivity)
}

// Wavelength returns the wavelength [µm] inside m of radiation with the
// given vacuum wavelength.
func (m Medium) Wavelength(vacuumWavelength float64) float64 {
	return vacuumWavelength / m.RefractiveIndex()
}

// validFor reports whether freq lies within the medium's declared
// frequency range of validity.
func (m Medium) validFor(freq float64) bool {
	if m.FreqMin == 0 && m.FreqMax == 0 {
		return true
	}
	return freq >= m.FreqMin && freq <= m.FreqMax
}

func (m Medium) validate() error {
	if m.Permittivity < 1 {
		return configErr("medium permittivity %g is below the physical lower bound of 1", m.Permittivity)
	}
	if m.Conductivity < 0 {
		return configErr("medium conductivity %g is negative", m.Conductivity)
	}
	if m.FreqMax < m.FreqMin {
		return configErr("medium frequency range [%g, %g] is inverted", m.FreqMin, m.FreqMax)
	}
	return nil
}

// Structure pairs a geometry with the medium that fills it. The order of
// structures within a simulation is significant: in overlapping regions,
// later-listed structures take precedence for material lookup, and the
// finest resolution requirement among the overlapping structures governs
// grid generation there.
type Structure struct {
	Geometry Geometry
	Medium   Medium
	Name     string
}
