/*
Package polygon works with top-view footprints of patches: closed polygons in
the xy-plane. Footprints are used for picking patches by position and for
detecting overlapping patches. Boolean operations are delegated to polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/cagd"
	"github.com/npillmayer/cagd/trigpatch"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'cagd.polygon'
func tracer() tracing.Trace {
	return tracing.Select("cagd.polygon")
}

// Polygon is a set of closed contours in the xy-plane. Contours nested an
// odd number of times are holes.
type Polygon polyclip.Polygon

// N returns the number of vertices of all contours.
func (pg Polygon) N() int {
	return polyclip.Polygon(pg).NumVertices()
}

// Builder collects knots of a single contour.
type Builder struct {
	contour polyclip.Contour
}

// NullPolygon starts a new contour without any knots.
func NullPolygon() *Builder {
	return &Builder{}
}

// Knot appends a knot. Only the x and y coordinates are used.
func (b *Builder) Knot(p vec3.T) *Builder {
	b.contour.Add(polyclip.Point{X: p[0], Y: p[1]})
	return b
}

// Cycle closes the contour and returns it as a polygon.
func (b *Builder) Cycle() Polygon {
	return Polygon{b.contour}
}

// Box returns an axis-parallel rectangle with opposite corners a and b.
func Box(a, b vec3.T) Polygon {
	x0, x1 := math.Min(a[0], b[0]), math.Max(a[0], b[0])
	y0, y1 := math.Min(a[1], b[1]), math.Max(a[1], b[1])
	return NullPolygon().
		Knot(cagd.P(x0, y0, 0)).
		Knot(cagd.P(x1, y0, 0)).
		Knot(cagd.P(x1, y1, 0)).
		Knot(cagd.P(x0, y1, 0)).
		Cycle()
}

// Outline samples the boundary of a patch and projects it to the xy-plane.
// Each of the four boundary curves contributes samples knots.
func Outline(p *trigpatch.Patch, samples int) Polygon {
	if samples < 1 {
		samples = 1
	}
	au, av := p.AlphaU(), p.AlphaV()
	b := NullPolygon()
	walk := func(u0, v0, u1, v1 float64) {
		for i := 0; i < samples; i++ {
			t := float64(i) / float64(samples)
			b.Knot(p.Evaluate(u0+t*(u1-u0), v0+t*(v1-v0)))
		}
	}
	walk(0, 0, 0, av)   // W edge
	walk(0, av, au, av) // N edge
	walk(au, av, au, 0) // E edge
	walk(au, 0, 0, 0)   // S edge
	return b.Cycle()
}

// Union returns the union of polygons.
func Union(pgs ...Polygon) Polygon {
	var u polyclip.Polygon
	for _, pg := range pgs {
		if len(pg) == 0 {
			continue
		}
		if u == nil {
			u = polyclip.Polygon(pg).Clone()
			continue
		}
		u = u.Construct(polyclip.UNION, polyclip.Polygon(pg))
	}
	return Polygon(u)
}

// Intersection returns the common area of two polygons.
func Intersection(a, b Polygon) Polygon {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	return Polygon(polyclip.Polygon(a).Construct(polyclip.INTERSECTION, polyclip.Polygon(b)))
}

// Overlaps is a predicate: do a and b share an area larger than ε?
func Overlaps(a, b Polygon) bool {
	return !cagd.Is0(Intersection(a, b).Area())
}

// Contains is a predicate: does the polygon contain point (x, y)?
func (pg Polygon) Contains(x, y float64) bool {
	pt := polyclip.Point{X: x, Y: y}
	inside := false
	for _, c := range pg {
		if len(c) > 2 && c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Area returns the area enclosed by the polygon, with holes subtracted.
func (pg Polygon) Area() float64 {
	var area float64
	for i, c := range pg {
		a := math.Abs(signedArea(c))
		if pg.depth(i)%2 == 1 {
			a = -a
		}
		area += a
	}
	return area
}

// depth counts the contours enclosing contour i.
func (pg Polygon) depth(i int) int {
	if len(pg[i]) == 0 {
		return 0
	}
	d := 0
	for j, c := range pg {
		if j != i && len(c) > 2 && c.Contains(pg[i][0]) {
			d++
		}
	}
	return d
}

// signedArea is the shoelace formula, positive for counterclockwise contours.
func signedArea(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// AsString returns a polygon as a string, one contour per line.
func AsString(pg Polygon) string {
	var b strings.Builder
	for i, c := range pg {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("<")
		for j, p := range c {
			if j > 0 {
				b.WriteString("--")
			}
			fmt.Fprintf(&b, "(%g,%g)", p.X, p.Y)
		}
		b.WriteString("--cycle>")
	}
	tracer().Debugf("polygon with %d contours", len(pg))
	return b.String()
}
