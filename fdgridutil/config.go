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

package fdgridutil

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/emmodel/fdgrid"
)

// ConfigData holds the contents of a configuration file.
// All lengths are in µm and frequencies in Hz.
type ConfigData struct {
	// Center and Size are the simulation domain center and extent
	// along x, y, and z.
	Center [3]float64
	Size   [3]float64

	// Background is the medium filling space not claimed by any
	// structure. If unset, vacuum is assumed.
	Background MediumConfig

	Structures []StructureConfig
	Sources    []SourceConfig

	// X, Y, and Z configure grid generation per axis.
	X, Y, Z AxisConfig

	// OutputFile is the path where the generated grid is written.
	OutputFile string
}

// AxisConfig configures grid generation along one axis.
type AxisConfig struct {
	// Boundaries, if set, are used verbatim and disable automatic
	// generation along this axis.
	Boundaries []float64

	// Wavelength overrides the source-derived vacuum wavelength.
	Wavelength float64

	MinStepsPerWavelength float64
	MaxScale              float64
	GradingTolerance      float64

	Overrides []OverrideConfig

	Symmetry bool

	// PMLLow and PMLHigh are the number of absorbing layers attached
	// to each end of the axis; zero disables the layer.
	PMLLow  int
	PMLHigh int
}

// OverrideConfig forces a target step size over a coordinate interval.
type OverrideConfig struct {
	Min, Max, Step float64
}

// MediumConfig describes a material.
type MediumConfig struct {
	Permittivity float64
	Conductivity float64
	FreqMin      float64
	FreqMax      float64
}

// StructureConfig describes a geometric object and the medium that
// fills it. Type selects the geometry and must be one of "box",
// "sphere", "cylinder", or "polygon".
type StructureConfig struct {
	Name string
	Type string

	Center [3]float64

	// Size applies to boxes.
	Size [3]float64

	// Radius applies to spheres and cylinders.
	Radius float64

	// Length and Axis apply to cylinders; Axis also selects the
	// extrusion direction for polygons and must be 0, 1, or 2.
	Length float64
	Axis   int

	// Vertices, SlabMin, SlabMax, Dilation, and SidewallAngle apply
	// to polygons. Vertices are in-plane coordinate pairs.
	Vertices      [][2]float64
	SlabMin       float64
	SlabMax       float64
	Dilation      float64
	SidewallAngle float64

	Medium MediumConfig
}

// SourceConfig describes a source in terms of its emission spectrum.
type SourceConfig struct {
	Freq0  float64
	Fwidth float64
}

func (m MediumConfig) medium() fdgrid.Medium {
	return fdgrid.Medium{
		Permittivity: m.Permittivity,
		Conductivity: m.Conductivity,
		FreqMin:      m.FreqMin,
		FreqMax:      m.FreqMax,
	}
}

func point(v [3]float64) fdgrid.Point {
	return fdgrid.Point{X: v[0], Y: v[1], Z: v[2]}
}

func (s StructureConfig) structure() (*fdgrid.Structure, error) {
	var g fdgrid.Geometry
	switch s.Type {
	case "box":
		g = &fdgrid.Box{Center: point(s.Center), Size: point(s.Size)}
	case "sphere":
		g = &fdgrid.Sphere{Center: point(s.Center), Radius: s.Radius}
	case "cylinder":
		if s.Axis < 0 || s.Axis > 2 {
			return nil, fmt.Errorf("fdgridutil: structure %q: invalid axis %d", s.Name, s.Axis)
		}
		g = &fdgrid.Cylinder{
			Center: point(s.Center),
			Radius: s.Radius,
			Length: s.Length,
			Axis:   fdgrid.Axis(s.Axis),
		}
	case "polygon":
		if s.Axis < 0 || s.Axis > 2 {
			return nil, fmt.Errorf("fdgridutil: structure %q: invalid axis %d", s.Name, s.Axis)
		}
		ring := make(geom.Path, len(s.Vertices))
		for i, v := range s.Vertices {
			ring[i] = geom.Point{X: v[0], Y: v[1]}
		}
		g = &fdgrid.ExtrudedPolygon{
			Vertices:      geom.Polygon{ring},
			Axis:          fdgrid.Axis(s.Axis),
			SlabMin:       s.SlabMin,
			SlabMax:       s.SlabMax,
			Dilation:      s.Dilation,
			SidewallAngle: s.SidewallAngle,
		}
	default:
		return nil, fmt.Errorf("fdgridutil: structure %q: unknown type %q", s.Name, s.Type)
	}
	return &fdgrid.Structure{Geometry: g, Medium: s.Medium.medium(), Name: s.Name}, nil
}

func (a AxisConfig) spec() fdgrid.GridAxisSpec {
	overrides := make([]fdgrid.OverrideInterval, len(a.Overrides))
	for i, o := range a.Overrides {
		overrides[i] = fdgrid.OverrideInterval{Min: o.Min, Max: o.Max, Step: o.Step}
	}
	return fdgrid.GridAxisSpec{
		Boundaries:            a.Boundaries,
		Wavelength:            a.Wavelength,
		MinStepsPerWavelength: a.MinStepsPerWavelength,
		MaxScale:              a.MaxScale,
		GradingTolerance:      a.GradingTolerance,
		Overrides:             overrides,
	}
}

func pml(layers int) fdgrid.PMLSpec {
	if layers <= 0 {
		return fdgrid.PMLSpec{}
	}
	return fdgrid.DefaultPML(layers)
}

// Simulation converts the configuration into a simulation ready for
// grid generation.
func (cfg *ConfigData) Simulation() (*fdgrid.Simulation, error) {
	sim := &fdgrid.Simulation{
		Center:     point(cfg.Center),
		Size:       point(cfg.Size),
		Background: cfg.Background.medium(),
	}
	for _, s := range cfg.Structures {
		st, err := s.structure()
		if err != nil {
			return nil, err
		}
		sim.Structures = append(sim.Structures, st)
	}
	for _, s := range cfg.Sources {
		sim.Sources = append(sim.Sources, &fdgrid.GaussianPulse{Freq0: s.Freq0, Fwidth: s.Fwidth})
	}
	for ax, a := range [3]AxisConfig{cfg.X, cfg.Y, cfg.Z} {
		sim.GridSpec[ax] = a.spec()
		sim.Symmetry[ax] = a.Symmetry
		sim.PML[ax][fdgrid.SideLow] = pml(a.PMLLow)
		sim.PML[ax][fdgrid.SideHigh] = pml(a.PMLHigh)
	}
	return sim, nil
}
