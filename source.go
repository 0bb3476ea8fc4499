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

// SpectralSource summarizes the spectral content of an excitation. The
// center frequencies of all sources in a simulation determine the set of
// frequencies of interest for automatic grid resolution.
type SpectralSource interface {
	// Spectrum returns the center frequency and bandwidth [Hz].
	Spectrum() (freq0, fwidth float64)
}

// GaussianPulse is a source time-dependence with a Gaussian envelope.
type GaussianPulse struct {
	Freq0  float64 // center frequency [Hz]
	Fwidth float64 // bandwidth [Hz]
}

// Spectrum implements the SpectralSource interface.
func (g GaussianPulse) Spectrum() (freq0, fwidth float64) {
	return g.Freq0, g.Fwidth
}

// maxSourceFreq returns the highest center frequency among sources,
// which yields the shortest (worst-case) vacuum wavelength. It returns
// zero if sources is empty.
func maxSourceFreq(sources []SpectralSource) float64 {
	var freq float64
	for _, s := range sources {
		if f0, _ := s.Spectrum(); f0 > freq {
			freq = f0
		}
	}
	return freq
}
