/*
Package cagd implements control point arithmetic for composite
trigonometric patches: 4×4 control grids, affine combinations,
extrapolation and tolerance predicates.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package cagd

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'cagd'
func tracer() tracing.Trace {
	return tracing.Select("cagd")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Points ================================================================

// Origin represents the frequently used constant (0,0,0).
var Origin = vec3.T{0, 0, 0}

// P is a quick notation for constructing a point from floats.
func P(x, y, z float64) vec3.T {
	return vec3.T{x, y, z}
}

// Equal compares two points component-wise within Epsilon.
func Equal(a, b vec3.T) bool {
	return Is0(a[0]-b[0]) && Is0(a[1]-b[1]) && Is0(a[2]-b[2])
}

// Zapped returns a copy of p with near-zero components set to 0.
func Zapped(p vec3.T) vec3.T {
	return vec3.T{Zap(p[0]), Zap(p[1]), Zap(p[2])}
}

// Combine returns the linear combination s⋅a + t⋅b.
// With s + t = 1 this is an affine combination of points.
func Combine(a, b vec3.T, s, t float64) vec3.T {
	sa := a.Scaled(s)
	tb := b.Scaled(t)
	return vec3.Add(&sa, &tb)
}

// Extrapolate continues the direction inner→boundary k times past boundary:
//
//	boundary + k⋅(boundary − inner)
//
// For k = 0 the boundary point itself is returned, unchanged.
func Extrapolate(boundary, inner vec3.T, k float64) vec3.T {
	if k == 0 {
		return boundary
	}
	d := vec3.Sub(&boundary, &inner)
	d.Scale(k)
	return vec3.Add(&boundary, &d)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b vec3.T) vec3.T {
	return vec3.Interpolate(&a, &b, 0.5)
}

// Average returns the barycenter of a set of points. The average of an
// empty set is the origin.
func Average(pts ...vec3.T) vec3.T {
	if len(pts) == 0 {
		return Origin
	}
	var sum vec3.T
	for i := range pts {
		sum.Add(&pts[i])
	}
	return sum.Scaled(1 / float64(len(pts)))
}

// String formats a point as (x,y,z).
func String(p vec3.T) string {
	return fmt.Sprintf("(%g,%g,%g)", p[0], p[1], p[2])
}

// === Control Grids =========================================================

// GridSize is the number of rows (and columns) of a control grid.
const GridSize = 4

// Grid is a 4×4 control grid of a patch, flattened by rows:
// index = row⋅4 + col. Rows follow the u parameter, columns follow v.
type Grid [GridSize * GridSize]vec3.T

// GridIndex returns the flat index of grid position (row, col).
func GridIndex(row, col int) int {
	return row*GridSize + col
}

// InGrid is a predicate: is (row, col) a valid grid position?
func InGrid(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// At returns the control point at (row, col).
// Row and column must be in [0,3].
func (g *Grid) At(row, col int) vec3.T {
	return g[GridIndex(row, col)]
}

// Set replaces the control point at (row, col).
// Row and column must be in [0,3].
func (g *Grid) Set(row, col int, p vec3.T) {
	g[GridIndex(row, col)] = p
}

// Row returns a copy of control row i (fixed u index).
func (g *Grid) Row(i int) [GridSize]vec3.T {
	var r [GridSize]vec3.T
	for j := 0; j < GridSize; j++ {
		r[j] = g.At(i, j)
	}
	return r
}

// Col returns a copy of control column j (fixed v index).
func (g *Grid) Col(j int) [GridSize]vec3.T {
	var c [GridSize]vec3.T
	for i := 0; i < GridSize; i++ {
		c[i] = g.At(i, j)
	}
	return c
}

// Equal compares two grids point by point within Epsilon.
func (g *Grid) Equal(h *Grid) bool {
	for i := range g {
		if !Equal(g[i], h[i]) {
			return false
		}
	}
	return true
}

// String is a debug Stringer, printing one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < GridSize; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < GridSize; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(String(g.At(i, j)))
		}
	}
	return b.String()
}

// GridFromSlice builds a grid from exactly 16 points, given row-major.
func GridFromSlice(pts []vec3.T) (Grid, error) {
	var g Grid
	if len(pts) != len(g) {
		tracer().Errorf("grid needs %d points, have %d", len(g), len(pts))
		return g, fmt.Errorf("%w: have %d points", ErrGridSize, len(pts))
	}
	copy(g[:], pts)
	return g, nil
}

// === Affine Transformations ================================================

// Translation returns a transform which translates points by v.
func Translation(v vec3.T) mat4.T {
	m := mat4.Ident
	m.SetTranslation(&v)
	return m
}

// TransformGrid applies an affine transform to every point of a grid and
// returns the transformed copy. The argument is unchanged.
func TransformGrid(g Grid, m *mat4.T) Grid {
	for i := range g {
		g[i] = m.MulVec3(&g[i])
	}
	return g
}
