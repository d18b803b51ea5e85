package network

import (
	"github.com/npillmayer/cagd"
	"github.com/ungerik/go3d/float64/vec3"
)

// axis tells how a compass direction moves along one parameter axis of a
// control grid: towards index 3 (up), towards index 0 (down), or not at all.
type axis int8

const (
	down axis = -1
	pass axis = 0
	up   axis = 1
)

// fromEdge is the grid index at a given depth, counted from the boundary the
// axis points to.
func (ax axis) fromEdge(depth int) int {
	if ax == up {
		return cagd.GridSize - 1 - depth
	}
	return depth
}

// place is the grid index of the k-th row (or column) of a patch which
// continues a neighbour beyond the boundary the axis points to.
func (ax axis) place(k int) int {
	return (-ax).fromEdge(k)
}

// extension holds the movement along u (rows) and v (columns) of a compass
// direction.
type extension struct {
	u, v axis
}

var extensions = [8]extension{
	N:  {pass, up},
	NE: {up, up},
	E:  {up, pass},
	SE: {up, down},
	S:  {pass, down},
	SW: {down, down},
	W:  {down, pass},
	NW: {down, up},
}

// edgeCells returns the flat grid indices of the row or column at a given
// depth from edge d, ordered by the running index along the edge.
func edgeCells(d Direction, depth int) [cagd.GridSize]int {
	var cells [cagd.GridSize]int
	ext := extensions[d]
	for m := 0; m < cagd.GridSize; m++ {
		if ext.u != pass {
			cells[m] = cagd.GridIndex(ext.u.fromEdge(depth), m)
		} else {
			cells[m] = cagd.GridIndex(m, ext.v.fromEdge(depth))
		}
	}
	return cells
}

// extend computes the control grid of a patch continuing g in direction d.
func extend(g *cagd.Grid, d Direction) cagd.Grid {
	if d.IsEdge() {
		return extendEdge(g, d)
	}
	return extendCorner(g, d)
}

// extendEdge extrapolates every line of control points crossing edge d
// linearly beyond the edge. The first row (or column) of the new grid
// repeats the edge, which makes the seam C0, and the spacing of the first
// step repeats the last step of g, which makes it C1 for equal shape
// parameters.
func extendEdge(g *cagd.Grid, d Direction) cagd.Grid {
	var ext cagd.Grid
	boundary, inner := edgeCells(d, 0), edgeCells(d, 1)
	for k := 0; k < cagd.GridSize; k++ {
		cells := edgeCells(d.Opposite(), k)
		for m := range cells {
			ext[cells[m]] = cagd.Extrapolate(g[boundary[m]], g[inner[m]], float64(k))
		}
	}
	return ext
}

// corner holds the corner point of a grid and the outward steps of the two
// edges meeting in it.
type corner struct {
	q    vec3.T // corner point
	r, s vec3.T // outward step along u and along v
}

func cornerOf(g *cagd.Grid, d Direction) corner {
	ext := extensions[d]
	bu, iu := ext.u.fromEdge(0), ext.u.fromEdge(1)
	bv, iv := ext.v.fromEdge(0), ext.v.fromEdge(1)
	q := g.At(bu, bv)
	ru, sv := g.At(iu, bv), g.At(bu, iv)
	return corner{
		q: q,
		r: vec3.Sub(&q, &ru),
		s: vec3.Sub(&q, &sv),
	}
}

func offset(p, step vec3.T, k float64) vec3.T {
	step.Scale(k)
	return vec3.Add(&p, &step)
}

// candidates returns the two extrapolations for cell (a, b) of a corner
// extension: first along u then v, and first along v then u.
func (c corner) candidates(a, b int) (vec3.T, vec3.T) {
	fa, fb := float64(a), float64(b)
	uv := offset(offset(c.q, c.r, fa), c.s, fb)
	vu := offset(offset(c.q, c.s, fb), c.r, fa)
	return uv, vu
}

// extendCorner fills a grid diagonally beyond corner d. The outer row and
// column extrapolate the edges meeting in the corner, interior cells
// average both orders of extrapolation.
func extendCorner(g *cagd.Grid, d Direction) cagd.Grid {
	var ext cagd.Grid
	c := cornerOf(g, d)
	dir := extensions[d]
	for a := 0; a < cagd.GridSize; a++ {
		for b := 0; b < cagd.GridSize; b++ {
			var p vec3.T
			if a == 0 || b == 0 {
				p = offset(offset(c.q, c.r, float64(a)), c.s, float64(b))
			} else {
				p = cagd.Midpoint(c.candidates(a, b))
			}
			ext.Set(dir.u.place(a), dir.v.place(b), p)
		}
	}
	return ext
}
