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

// Default values for automatic grid generation.
const (
	DefaultMinStepsPerWavelength = 10.
	DefaultMaxScale              = 1.4
	DefaultGradingTolerance      = 0.5
)

// OverrideInterval forces the grid step within a sub-region of an axis,
// bypassing the automatically derived resolution. Overrides are applied
// in list order; where two overlap, the later-listed one wins.
type OverrideInterval struct {
	Min, Max float64 // bounding interval [µm]
	Step     float64 // forced step size [µm]
}

// GridAxisSpec configures grid generation along one axis. If Boundaries
// is non-empty it is used directly as the cell boundary sequence and all
// other fields except the PML configuration are ignored; otherwise the
// boundaries are generated automatically.
type GridAxisSpec struct {
	// Boundaries optionally gives an explicit, strictly increasing
	// boundary sequence for this axis.
	Boundaries []float64

	// Wavelength is an explicit reference vacuum wavelength [µm]. If
	// zero, the wavelength is derived from the simulation sources.
	Wavelength float64

	// MinStepsPerWavelength is the minimum number of grid steps per
	// material wavelength (>= 1). Zero selects the default of 10.
	MinStepsPerWavelength float64

	// MaxScale bounds the ratio of adjacent cell sizes (> 1). Zero
	// selects the default of 1.4.
	MaxScale float64

	// GradingTolerance is the largest acceptable proportional shrink of
	// target steps when a sub-interval is too short for a ratio-bounded
	// transition, expressed as the minimum allowed ratio of achieved to
	// requested step (0 < tolerance <= 1). Zero selects the default of 0.5.
	GradingTolerance float64

	// Overrides lists user-forced local resolution regions.
	Overrides []OverrideInterval
}

// withDefaults returns a copy of s with zero-valued knobs replaced by
// their defaults.
func (s GridAxisSpec) withDefaults() GridAxisSpec {
	if s.MinStepsPerWavelength == 0 {
		s.MinStepsPerWavelength = DefaultMinStepsPerWavelength
	}
	if s.MaxScale == 0 {
		s.MaxScale = DefaultMaxScale
	}
	if s.GradingTolerance == 0 {
		s.GradingTolerance = DefaultGradingTolerance
	}
	return s
}

func (s GridAxisSpec) validate(ax Axis) error {
	if len(s.Boundaries) > 0 {
		if len(s.Boundaries) < 2 {
			return configErr("%v axis: explicit boundary list needs at least 2 entries, got %d", ax, len(s.Boundaries))
		}
		for i := 1; i < len(s.Boundaries); i++ {
			if s.Boundaries[i] <= s.Boundaries[i-1] {
				return configErr("%v axis: explicit boundaries are not strictly increasing at index %d", ax, i)
			}
		}
		return nil
	}
	if s.MinStepsPerWavelength < 1 {
		return configErr("%v axis: MinStepsPerWavelength must be >= 1, got %g", ax, s.MinStepsPerWavelength)
	}
	if s.MaxScale <= 1 {
		return configErr("%v axis: MaxScale must be > 1, got %g", ax, s.MaxScale)
	}
	if s.GradingTolerance <= 0 || s.GradingTolerance > 1 {
		return configErr("%v axis: GradingTolerance must be in (0, 1], got %g", ax, s.GradingTolerance)
	}
	for i, o := range s.Overrides {
		if o.Max <= o.Min {
			return configErr("%v axis: override interval %d [%g, %g] is degenerate", ax, i, o.Min, o.Max)
		}
		if o.Step <= 0 {
			return configErr("%v axis: override interval %d has non-positive step %g", ax, i, o.Step)
		}
	}
	return nil
}

// stepInterval is a sub-interval of an axis with a target grid step.
type stepInterval struct {
	min, max float64
	step     float64
}

// resolveSteps converts the structures, background medium and overrides of
// a simulation into an ordered, disjoint list of target-step intervals
// covering the domain along axis ax. vacWavelength is the reference vacuum
// wavelength driving automatic resolution.
func (sim *Simulation) resolveSteps(ax Axis, spec GridAxisSpec, vacWavelength float64) ([]stepInterval, error) {
	d0 := sim.Center.Coord(ax) - sim.Size.Coord(ax)/2
	d1 := sim.Center.Coord(ax) + sim.Size.Coord(ax)/2

	background := sim.background().Wavelength(vacWavelength) / spec.MinStepsPerWavelength
	if background <= 0 {
		return nil, configErr("%v axis: background target step is non-positive", ax)
	}

	// Resolution constraints from structures, clipped to the domain.
	// Zero-extent structures contribute no constraint on this axis.
	type constraint struct {
		min, max float64
		step     float64
		override bool
	}
	var cons []constraint
	for _, st := range sim.Structures {
		lo, hi := st.Geometry.Extent(ax)
		lo, hi = clip(lo, d0, d1), clip(hi, d0, d1)
		if hi <= lo {
			continue
		}
		step := st.Medium.Wavelength(vacWavelength) / spec.MinStepsPerWavelength
		if step <= 0 {
			return nil, configErr("%v axis: structure %q requires a non-positive target step", ax, st.Name)
		}
		cons = append(cons, constraint{min: lo, max: hi, step: step})
	}
	for _, o := range spec.Overrides {
		lo, hi := clip(o.Min, d0, d1), clip(o.Max, d0, d1)
		if hi <= lo {
			continue
		}
		cons = append(cons, constraint{min: lo, max: hi, step: o.Step, override: true})
	}

	// Sweep over the elementary segments between constraint endpoints.
	cuts := make([]float64, 0, 2*len(cons)+2)
	cuts = append(cuts, d0, d1)
	for _, c := range cons {
		cuts = append(cuts, c.min, c.max)
	}
	sort.Float64s(cuts)
	var segs []stepInterval
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		if hi <= lo {
			continue
		}
		mid := (lo + hi) / 2
		step := background
		for _, c := range cons {
			if mid < c.min || mid > c.max {
				continue
			}
			if c.override {
				// Overrides replace the step unconditionally;
				// the last-listed one covering the segment wins.
				step = c.step
			} else if c.step < step {
				step = c.step
			}
		}
		// Merge with the preceding segment when the step matches.
		if n := len(segs); n > 0 && segs[n-1].step == step {
			segs[n-1].max = hi
			continue
		}
		segs = append(segs, stepInterval{min: lo, max: hi, step: step})
	}
	return segs, nil
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
