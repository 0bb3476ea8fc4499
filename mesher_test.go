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
	"testing"
)

// checkMonotone verifies that b is strictly increasing.
func checkMonotone(t *testing.T, b []float64) {
	t.Helper()
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			t.Errorf("boundaries not strictly increasing at %d: %g, %g", i, b[i-1], b[i])
		}
	}
}

// checkGradingBound verifies that adjacent cell size ratios stay within
// maxScale (with a small numerical allowance).
func checkGradingBound(t *testing.T, b []float64, maxScale float64) {
	t.Helper()
	for i := 2; i < len(b); i++ {
		w1 := b[i-1] - b[i-2]
		w2 := b[i] - b[i-1]
		r := math.Max(w1, w2) / math.Min(w1, w2)
		if r > maxScale*(1+1e-9) {
			t.Errorf("cell ratio %g at boundary %d exceeds MaxScale %g", r, i, maxScale)
		}
	}
}

func TestGradeBoundariesUniform(t *testing.T) {
	segs := []stepInterval{{min: -5, max: 5, step: 0.15}}
	b, err := gradeBoundaries(segs, 1.4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	checkMonotone(t, b)
	if b[0] != -5 || b[len(b)-1] != 5 {
		t.Errorf("boundary extent [%g, %g], want [-5, 5]", b[0], b[len(b)-1])
	}
	// round(10/0.15) = 67 cells of 10/67 each.
	if len(b) != 68 {
		t.Errorf("have %d boundaries, want 68", len(b))
	}
	w := b[1] - b[0]
	if absDifferent(w, 10./67., 1e-12) {
		t.Errorf("cell width %g, want %g", w, 10./67.)
	}
}

func TestGradeBoundariesTransition(t *testing.T) {
	segs := []stepInterval{
		{min: 0, max: 2, step: 0.02},
		{min: 2, max: 10, step: 0.4},
	}
	b, err := gradeBoundaries(segs, 1.3, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	checkMonotone(t, b)
	checkGradingBound(t, b, 1.3)

	// The fine region must be meshed at its target.
	fineCells := 0
	for i := 1; i < len(b); i++ {
		if b[i] <= 2+1e-9 {
			if w := b[i] - b[i-1]; w > 0.02*(1+1e-9) {
				t.Errorf("cell ending at %g has width %g, coarser than the 0.02 target", b[i], w)
			}
			fineCells++
		}
	}
	if fineCells != 100 {
		t.Errorf("have %d cells in the fine region, want 100", fineCells)
	}
	// No cell anywhere may be coarser than the local target.
	for i := 1; i < len(b); i++ {
		if w := b[i] - b[i-1]; w > 0.4*(1+1e-9) {
			t.Errorf("cell width %g exceeds the coarse target 0.4", w)
		}
	}
}

func TestGradeBoundariesDoubleRamp(t *testing.T) {
	// A coarse region between two fine ones needs ramps on both ends.
	segs := []stepInterval{
		{min: 0, max: 1, step: 0.05},
		{min: 1, max: 9, step: 0.8},
		{min: 9, max: 10, step: 0.05},
	}
	b, err := gradeBoundaries(segs, 1.4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	checkMonotone(t, b)
	checkGradingBound(t, b, 1.4)
	if b[0] != 0 || b[len(b)-1] != 10 {
		t.Errorf("extent [%g, %g], want [0, 10]", b[0], b[len(b)-1])
	}
}

func TestGradeBoundariesTooShort(t *testing.T) {
	// Bridging 0.001 to 1 at ratio 1.1 needs far more room than 0.01.
	segs := []stepInterval{
		{min: 0, max: 1, step: 0.001},
		{min: 1, max: 1.01, step: 1},
		{min: 1.01, max: 2, step: 0.001},
	}
	_, err := gradeBoundaries(segs, 1.1, 0.9)
	if err == nil {
		t.Fatal("expected a configuration error for an ungradable interval")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("have %T, want *ConfigurationError", err)
	}
}

func TestSegmentWidthsExactFill(t *testing.T) {
	const testTolerance = 1.e-9
	widths, shrink, err := segmentWidths(10, 0.5, 0.1, 0, 1.4)
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, w := range widths {
		sum += w
	}
	if absDifferent(sum, 10, testTolerance) {
		t.Errorf("widths sum to %g, want 10", sum)
	}
	if shrink > 1 || shrink < 0.9 {
		t.Errorf("shrink factor %g outside the expected near-1 range", shrink)
	}
	// The first width continues the ramp from the finer neighbor.
	if widths[0] > 0.1*1.4*(1+1e-9) {
		t.Errorf("first width %g exceeds the allowed growth from the 0.1 neighbor", widths[0])
	}
	for _, w := range widths {
		if w > 0.5*(1+1e-9) {
			t.Errorf("width %g exceeds the 0.5 target", w)
		}
	}
}
