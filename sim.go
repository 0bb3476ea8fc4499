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
	"sort"
	"sync"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"golang.org/x/sync/errgroup"
)

// Simulation specifies an electromagnetic simulation to generate a grid
// for: the domain, the structures inside it, the excitation sources, and
// the per-axis grid, absorbing-boundary and symmetry configuration.
// Simulations should be treated as immutable once grid generation or
// structure lookup has begun.
type Simulation struct {
	Center Point // domain center [µm]
	Size   Point // domain edge lengths [µm]

	// Background is the medium filling space not covered by any
	// structure. The zero value is treated as vacuum.
	Background Medium

	// Structures are listed in painting order: later entries take
	// precedence in overlapping regions.
	Structures []*Structure

	Sources []SpectralSource

	GridSpec [3]GridAxisSpec

	// PML configures the absorbing layers per axis and side
	// (SideLow, SideHigh).
	PML [3][2]PMLSpec

	// Symmetry marks axes about whose domain center the physical
	// problem is mirror-symmetric.
	Symmetry [3]bool

	indexOnce sync.Once
	index     *rtree.Rtree
}

// Validate checks the simulation specification without generating a grid.
func (s *Simulation) Validate() error {
	for ax := X; ax <= Z; ax++ {
		if s.Size.Coord(ax) <= 0 {
			return geometryErr("domain size along the %v axis is %g; a positive extent is required", ax, s.Size.Coord(ax))
		}
	}
	if err := s.background().validate(); err != nil {
		return err
	}
	for _, st := range s.Structures {
		if err := st.Medium.validate(); err != nil {
			return err
		}
	}
	freq := maxSourceFreq(s.Sources)
	needsAuto := false
	for ax := X; ax <= Z; ax++ {
		spec := s.GridSpec[ax].withDefaults()
		if err := spec.validate(ax); err != nil {
			return err
		}
		if len(spec.Boundaries) == 0 && spec.Wavelength == 0 {
			needsAuto = true
		}
		for side := SideLow; side <= SideHigh; side++ {
			if err := s.PML[ax][side].validate(ax, side); err != nil {
				return err
			}
		}
	}
	if needsAuto && freq <= 0 {
		return configErr("automatic grid generation needs a reference wavelength or at least one source with a positive center frequency")
	}
	if freq > 0 {
		if !s.background().validFor(freq) {
			return configErr("background medium is not valid at the source frequency %g Hz", freq)
		}
		for _, st := range s.Structures {
			if !st.Medium.validFor(freq) {
				return configErr("medium of structure %q is not valid at the source frequency %g Hz", st.Name, freq)
			}
		}
	}
	return nil
}

func (s *Simulation) background() Medium {
	if s.Background.Permittivity == 0 {
		return Vacuum
	}
	return s.Background
}

// GenerateGrid converts the simulation specification into a computational
// grid. It is deterministic: the same specification always yields
// bit-identical boundary sequences. The three axes are generated in
// parallel; they share no state and join only at grid assembly.
func (s *Simulation) GenerateGrid() (*Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	freq := maxSourceFreq(s.Sources)

	var bounds [3][]float64
	var pml [3][2]PMLProfile
	var g errgroup.Group
	for ax := X; ax <= Z; ax++ {
		ax := ax
		g.Go(func() error {
			b, p, err := s.generateAxis(ax, freq)
			if err != nil {
				return err
			}
			bounds[ax], pml[ax] = b, p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return newGrid(bounds, pml)
}

// generateAxis runs the per-axis pipeline: resolution resolving, graded
// meshing, symmetry folding and PML extension.
func (s *Simulation) generateAxis(ax Axis, freq float64) ([]float64, [2]PMLProfile, error) {
	var profiles [2]PMLProfile
	spec := s.GridSpec[ax].withDefaults()

	var b []float64
	if len(spec.Boundaries) > 0 {
		b = append([]float64(nil), spec.Boundaries...)
	} else {
		vacWavelength := spec.Wavelength
		if vacWavelength == 0 {
			vacWavelength = SpeedOfLight / freq
		}
		segs, err := s.resolveSteps(ax, spec, vacWavelength)
		if err != nil {
			return nil, profiles, err
		}
		if s.Symmetry[ax] {
			center := s.Center.Coord(ax)
			half, err := gradeBoundaries(foldIntervals(segs, center), spec.MaxScale, spec.GradingTolerance)
			if err != nil {
				return nil, profiles, err
			}
			b = mirrorBoundaries(half, center)
		} else {
			b, err = gradeBoundaries(segs, spec.MaxScale, spec.GradingTolerance)
			if err != nil {
				return nil, profiles, err
			}
		}
	}

	maxScale := spec.MaxScale
	if maxScale <= 1 {
		maxScale = DefaultMaxScale // explicit boundary lists carry no grading bound
	}
	for side := SideLow; side <= SideHigh; side++ {
		var err error
		b, profiles[side], err = extendPML(b, s.PML[ax][side], side, maxScale)
		if err != nil {
			return nil, profiles, err
		}
	}
	return b, profiles, nil
}

// structureEntry adapts a structure for the spatial index. The embedded
// geom.Geom is the structure's x-y footprint rectangle.
type structureEntry struct {
	*Structure
	geom.Geom
	order int
}

func (s *Simulation) buildIndex() {
	s.index = rtree.NewTree(25, 50)
	for i, st := range s.Structures {
		s.index.Insert(&structureEntry{Structure: st, Geom: footprint(st.Geometry), order: i})
	}
}

// StructuresAt returns the structures containing point p, in list order.
// Containment uses each geometry's base shape: for extruded polygons the
// undilated cross-section, even though dilation and sidewall skew widen
// the extent used for grid resolution.
func (s *Simulation) StructuresAt(p Point) []*Structure {
	s.indexOnce.Do(s.buildIndex)
	pt := geom.Point{X: p.X, Y: p.Y}
	var hits []*structureEntry
	for _, item := range s.index.SearchIntersect(pt.Bounds()) {
		e := item.(*structureEntry)
		if lo, hi := e.Geometry.Extent(Z); p.Z < lo || p.Z > hi {
			continue
		}
		if e.Geometry.Contains(p) {
			hits = append(hits, e)
		}
	}
	// The r-tree returns matches in arbitrary order; restore list order
	// so precedence is well defined.
	sort.Slice(hits, func(i, j int) bool { return hits[i].order < hits[j].order })
	out := make([]*Structure, len(hits))
	for i, e := range hits {
		out[i] = e.Structure
	}
	return out
}

// MediumAt returns the medium at point p: the last-listed structure
// containing p wins, falling back to the background medium. Containment
// follows the same base-shape rule as StructuresAt.
func (s *Simulation) MediumAt(p Point) Medium {
	var m Medium
	found := false
	for _, st := range s.StructuresAt(p) {
		m = st.Medium
		found = true
	}
	if !found {
		return s.background()
	}
	return m
}
