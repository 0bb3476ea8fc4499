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

import "fmt"

// ConfigurationError reports a simulation specification that cannot be
// meshed as requested: a non-positive step size, a degenerate override
// interval, a growth-ratio bound <= 1, or a domain too small to grade
// between the requested target steps.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func configErr(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: "fdgrid: " + fmt.Sprintf(format, args...)}
}

// GeometryError reports a domain or structure with a non-positive extent
// along an axis where a positive extent is required.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErr(format string, args ...interface{}) *GeometryError {
	return &GeometryError{msg: "fdgrid: " + fmt.Sprintf(format, args...)}
}

// GridAssemblyError reports a generated grid that violates the output
// invariants: fewer than one cell on an axis or duplicate boundaries.
type GridAssemblyError struct {
	msg string
}

func (e *GridAssemblyError) Error() string { return e.msg }

func assemblyErr(format string, args ...interface{}) *GridAssemblyError {
	return &GridAssemblyError{msg: "fdgrid: " + fmt.Sprintf(format, args...)}
}
