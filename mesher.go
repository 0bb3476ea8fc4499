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
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxAxisCells bounds the number of cells generated along a single axis,
// guarding against runaway cell counts from near-zero target steps.
const maxAxisCells = 1 << 21

// gradeBoundaries generates a strictly increasing cell boundary sequence
// spanning the given target-step intervals. Within each interval the cell
// size is locally uniform at (or finer than) the target; between intervals
// with different achieved sizes, geometric transition ramps bounded by
// maxScale per step are carved out of the coarser side. When an interval
// is too short to hold its transition ramps, all of its cell widths are
// shrunk proportionally; a shrink below tol fails with a configuration
// error.
func gradeBoundaries(segs []stepInterval, maxScale, tol float64) ([]float64, error) {
	if len(segs) == 0 {
		return nil, configErr("no target-step intervals to mesh")
	}

	// Ideal locally uniform cell size for each interval.
	h := make([]float64, len(segs))
	for i, sg := range segs {
		length := sg.max - sg.min
		n := math.Round(length / sg.step)
		if n < 1 {
			n = 1
		}
		if n > maxAxisCells {
			return nil, configErr("interval [%g, %g] with step %g requires more than %d cells", sg.min, sg.max, sg.step, maxAxisCells)
		}
		h[i] = length / n
	}

	boundaries := []float64{segs[0].min}
	for i, sg := range segs {
		// A transition ramp is needed on each end adjoining a finer
		// neighbor; the fine side itself stays uniform.
		var fineL, fineR float64
		if i > 0 && h[i-1] < h[i] {
			fineL = h[i-1]
		}
		if i < len(segs)-1 && h[i+1] < h[i] {
			fineR = h[i+1]
		}
		widths, shrink, err := segmentWidths(sg.max-sg.min, h[i], fineL, fineR, maxScale)
		if err != nil {
			return nil, err
		}
		if shrink < tol {
			return nil, configErr("interval [%g, %g] is too short to grade between steps %g and %g within the growth bound %g (achievable fraction %.3g of the requested step)",
				sg.min, sg.max, h[i], math.Max(fineL, fineR), maxScale, shrink)
		}
		b := make([]float64, len(widths))
		floats.CumSum(b, widths)
		floats.AddConst(sg.min, b)
		b[len(b)-1] = sg.max // cancel accumulated rounding
		boundaries = append(boundaries, b...)
	}
	return boundaries, nil
}

// segmentWidths produces cell widths that exactly fill an interval of the
// given length at a uniform target size h, with geometric entry and exit
// ramps growing from the finer neighboring sizes fineL and fineR (zero
// meaning no ramp needed on that end). All widths are <= h and consecutive
// widths within the segment differ by a factor <= maxScale. The returned
// shrink factor is the ratio of the largest achieved width to the target
// h: near 1 when the interval accommodates its ramps, and small when the
// interval is too short to ever reach the requested spacing.
func segmentWidths(length, h, fineL, fineR, maxScale float64) (widths []float64, shrink float64, err error) {
	// Capped double-ramp width profile for n cells: each width is the
	// target h limited by the geometric growth allowed from either end.
	profile := func(n int) []float64 {
		w := make([]float64, n)
		for k := 0; k < n; k++ {
			v := h
			if fineL > 0 {
				v = math.Min(v, fineL*math.Pow(maxScale, float64(k+1)))
			}
			if fineR > 0 {
				v = math.Min(v, fineR*math.Pow(maxScale, float64(n-k)))
			}
			w[k] = v
		}
		return w
	}

	// The smallest cell count whose profile covers the interval; widths
	// are then scaled down to fit exactly. Scaling down preserves width
	// ratios and never coarsens a cell beyond its target.
	n := int(math.Ceil(length/h - 1e-9))
	if n < 1 {
		n = 1
	}
	for ; n <= maxAxisCells; n++ {
		widths = profile(n)
		if sum := floats.Sum(widths); sum >= length {
			floats.Scale(length/sum, widths)
			return widths, floats.Max(widths) / h, nil
		}
	}
	return nil, 0, configErr("interval of length %g cannot be meshed with %d or fewer cells", length, maxAxisCells)
}
