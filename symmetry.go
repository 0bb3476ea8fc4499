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

// foldIntervals folds target-step intervals spanning a mirror-symmetric
// domain into the half domain [center, max]. Each location in the half
// domain receives the finer of its own step and the step at its mirror
// image, so the folded grid honors the resolution requirements of
// structures on both sides of the symmetry plane.
func foldIntervals(segs []stepInterval, center float64) []stepInterval {
	hiMax := segs[len(segs)-1].max

	cuts := []float64{center, hiMax}
	for _, sg := range segs {
		for _, v := range []float64{sg.min, sg.max, 2*center - sg.min, 2*center - sg.max} {
			if v > center && v < hiMax {
				cuts = append(cuts, v)
			}
		}
	}
	sort.Float64s(cuts)

	stepAt := func(x float64) float64 {
		for _, sg := range segs {
			if x >= sg.min && x <= sg.max {
				return sg.step
			}
		}
		// Mirror images of locations near the domain edge can fall
		// just outside the original extent; use the outermost step.
		return segs[len(segs)-1].step
	}

	var folded []stepInterval
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		if hi <= lo {
			continue
		}
		mid := (lo + hi) / 2
		step := stepAt(mid)
		if mirror := stepAt(2*center - mid); mirror < step {
			step = mirror
		}
		if n := len(folded); n > 0 && folded[n-1].step == step {
			folded[n-1].max = hi
			continue
		}
		folded = append(folded, stepInterval{min: lo, max: hi, step: step})
	}
	return folded
}

// mirrorBoundaries reflects a half-domain boundary sequence starting at
// the symmetry plane into a full, palindromic sequence. The first entry
// of half must be the symmetry-plane coordinate; it appears exactly once
// in the result.
func mirrorBoundaries(half []float64, center float64) []float64 {
	full := make([]float64, 0, 2*len(half)-1)
	for i := len(half) - 1; i > 0; i-- {
		full = append(full, 2*center-half[i])
	}
	return append(full, half...)
}
