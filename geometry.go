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

	"github.com/ctessum/geom"
)

// Geometry is a three-dimensional shape that can report its axis-aligned
// bounding interval along each axis and decide point membership.
// Geometries are immutable after construction.
type Geometry interface {
	// Extent returns the bounding interval of the geometry along axis ax.
	Extent(ax Axis) (min, max float64)

	// Contains reports whether point p lies inside the geometry.
	Contains(p Point) bool
}

// Box is a rectangular prism defined by its center and edge lengths.
type Box struct {
	Center Point
	Size   Point
}

// Extent implements the Geometry interface.
func (b *Box) Extent(ax Axis) (min, max float64) {
	c, s := b.Center.Coord(ax), b.Size.Coord(ax)
	return c - s/2, c + s/2
}

// Contains implements the Geometry interface.
func (b *Box) Contains(p Point) bool {
	for ax := X; ax <= Z; ax++ {
		if math.Abs(p.Coord(ax)-b.Center.Coord(ax)) > b.Size.Coord(ax)/2 {
			return false
		}
	}
	return true
}

// Sphere is a ball defined by its center and radius.
type Sphere struct {
	Center Point
	Radius float64
}

// Extent implements the Geometry interface.
func (s *Sphere) Extent(ax Axis) (min, max float64) {
	c := s.Center.Coord(ax)
	return c - s.Radius, c + s.Radius
}

// Contains implements the Geometry interface.
func (s *Sphere) Contains(p Point) bool {
	var d2 float64
	for ax := X; ax <= Z; ax++ {
		d := p.Coord(ax) - s.Center.Coord(ax)
		d2 += d * d
	}
	return d2 <= s.Radius*s.Radius
}

// Cylinder is a circular cylinder centered at Center, aligned with Axis,
// with the given Radius and Length.
type Cylinder struct {
	Center Point
	Radius float64
	Length float64
	Axis   Axis
}

// Extent implements the Geometry interface.
func (c *Cylinder) Extent(ax Axis) (min, max float64) {
	cc := c.Center.Coord(ax)
	if ax == c.Axis {
		return cc - c.Length/2, cc + c.Length/2
	}
	return cc - c.Radius, cc + c.Radius
}

// Contains implements the Geometry interface.
func (c *Cylinder) Contains(p Point) bool {
	if math.Abs(p.Coord(c.Axis)-c.Center.Coord(c.Axis)) > c.Length/2 {
		return false
	}
	u, v := planeAxes(c.Axis)
	du := p.Coord(u) - c.Center.Coord(u)
	dv := p.Coord(v) - c.Center.Coord(v)
	return du*du+dv*dv <= c.Radius*c.Radius
}

// ExtrudedPolygon is a polygonal cross-section extruded along Axis between
// SlabMin and SlabMax. The cross-section lies in the plane perpendicular
// to Axis, with the polygon's x coordinate mapped to the first in-plane
// axis and y to the second (cyclic order; e.g. Axis == Z maps to x and y).
//
// Dilation uniformly offsets the cross-section edge outward [µm], and
// SidewallAngle [radians] skews the sidewalls so a positive angle shrinks
// the cross-section with increasing extrusion coordinate. Both are
// accounted for when computing bounding extents; Contains tests against
// the base cross-section.
type ExtrudedPolygon struct {
	Vertices         geom.Polygon
	Axis             Axis
	SlabMin, SlabMax float64
	Dilation         float64
	SidewallAngle    float64
}

// Extent implements the Geometry interface.
func (e *ExtrudedPolygon) Extent(ax Axis) (min, max float64) {
	if ax == e.Axis {
		return e.SlabMin, e.SlabMax
	}
	b := e.Vertices.Bounds()
	// The widest cross-section is the base offset by the dilation, further
	// expanded by the sidewall skew when the walls lean outward.
	expand := e.Dilation
	if e.SidewallAngle != 0 {
		expand += math.Max(0, -math.Tan(e.SidewallAngle)) * (e.SlabMax - e.SlabMin)
	}
	u, _ := planeAxes(e.Axis)
	if ax == u {
		return b.Min.X - expand, b.Max.X + expand
	}
	return b.Min.Y - expand, b.Max.Y + expand
}

// Contains implements the Geometry interface.
func (e *ExtrudedPolygon) Contains(p Point) bool {
	h := p.Coord(e.Axis)
	if h < e.SlabMin || h > e.SlabMax {
		return false
	}
	u, v := planeAxes(e.Axis)
	pt := geom.Point{X: p.Coord(u), Y: p.Coord(v)}
	return pt.Within(e.Vertices) == geom.Inside
}

// footprint returns the x-y bounding rectangle of g, used for spatial
// indexing of structures.
func footprint(g Geometry) *geom.Bounds {
	xmin, xmax := g.Extent(X)
	ymin, ymax := g.Extent(Y)
	return &geom.Bounds{
		Min: geom.Point{X: xmin, Y: ymin},
		Max: geom.Point{X: xmax, Y: ymax},
	}
}
