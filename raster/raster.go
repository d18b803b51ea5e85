/*
Package raster draws patch networks into images. It is a preview renderer:
patches are projected orthographically onto the xy-plane (view from above),
surfaces are filled with a flat-shaded material color, and lines and points
are drawn as small filled shapes. Anti-aliasing is done by
golang.org/x/image/vector.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/npillmayer/cagd/network"
	"github.com/npillmayer/cagd/trigpatch"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'cagd.raster'
func tracer() tracing.Trace {
	return tracing.Select("cagd.raster")
}

// ErrViewport indicates an empty viewport or canvas.
var ErrViewport = errors.New("empty viewport")

// Viewport is the rectangle of the xy-plane which is mapped onto a canvas.
type Viewport struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Empty is a predicate: does the viewport cover no area?
func (vp Viewport) Empty() bool {
	return !(vp.MaxX > vp.MinX && vp.MaxY > vp.MinY)
}

// Fit returns the smallest viewport containing all mesh points, enlarged by
// margin on each side.
func Fit(margin float64, meshes ...*trigpatch.Mesh) Viewport {
	vp := Viewport{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, m := range meshes {
		if m == nil {
			continue
		}
		for _, p := range m.Points {
			vp.MinX, vp.MaxX = math.Min(vp.MinX, p[0]), math.Max(vp.MaxX, p[0])
			vp.MinY, vp.MaxY = math.Min(vp.MinY, p[1]), math.Max(vp.MaxY, p[1])
		}
	}
	if vp.Empty() {
		return Viewport{}
	}
	vp.MinX, vp.MinY = vp.MinX-margin, vp.MinY-margin
	vp.MaxX, vp.MaxY = vp.MaxX+margin, vp.MaxY+margin
	return vp
}

// Canvas is an image to render patch images into. It implements
// network.Renderer.
type Canvas struct {
	LineWidth float64     // in pixels
	PointSize float64     // in pixels
	LineColor color.NRGBA // color of iso-lines, wireframes and points
	Light     vec3.T      // direction towards the light source

	img   *image.RGBA
	view  Viewport
	scale float64
	ras   *vector.Rasterizer
}

var _ network.Renderer = (*Canvas)(nil)

// New creates a transparent canvas of the given size, showing view.
// The aspect ratio of view is preserved; the view is centered.
func New(width, height int, view Viewport) (*Canvas, error) {
	if width <= 0 || height <= 0 || view.Empty() {
		return nil, fmt.Errorf("%w: %d×%d pixels for %+v", ErrViewport, width, height, view)
	}
	sx := float64(width) / (view.MaxX - view.MinX)
	sy := float64(height) / (view.MaxY - view.MinY)
	c := &Canvas{
		LineWidth: 1.5,
		PointSize: 3,
		LineColor: color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Light:     vec3.T{0.3, 0.3, 1},
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		view:      view,
		scale:     math.Min(sx, sy),
		ras:       vector.NewRasterizer(1, 1),
	}
	return c, nil
}

// Image returns the image rendered so far.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// project maps a point of the xy-plane to pixel coordinates. The y axis
// points upwards in the plane and downwards in the image.
func (c *Canvas) project(p vec3.T) (float64, float64) {
	b := c.img.Bounds()
	cx := (c.view.MinX + c.view.MaxX) / 2
	cy := (c.view.MinY + c.view.MaxY) / 2
	x := float64(b.Dx())/2 + (p[0]-cx)*c.scale
	y := float64(b.Dy())/2 - (p[1]-cy)*c.scale
	return x, y
}

// RenderMesh draws a triangulated surface. DrawFilled fills the triangles,
// DrawLineStrip draws their edges and DrawPoints their corners.
func (c *Canvas) RenderMesh(m *trigpatch.Mesh, style network.Style, mode network.DrawMode) error {
	if m == nil {
		return nil
	}
	switch mode {
	case network.DrawFilled:
		c.fillMesh(m, style.Material)
	case network.DrawLineStrip:
		for _, f := range m.Faces {
			c.segment(m.Points[f[0]], m.Points[f[1]], c.LineColor)
			c.segment(m.Points[f[1]], m.Points[f[2]], c.LineColor)
			c.segment(m.Points[f[2]], m.Points[f[0]], c.LineColor)
		}
	case network.DrawPoints:
		for _, p := range m.Points {
			c.dot(p, c.LineColor)
		}
	default:
		return fmt.Errorf("unknown draw mode %d", mode)
	}
	tracer().P("patch", style.Patch).Debugf("rendered mesh with %d faces", len(m.Faces))
	return nil
}

// RenderPolyline draws an iso-line. DrawFilled is treated as DrawLineStrip.
func (c *Canvas) RenderPolyline(l *trigpatch.Polyline, style network.Style, mode network.DrawMode) error {
	if l == nil {
		return nil
	}
	switch mode {
	case network.DrawFilled, network.DrawLineStrip:
		for i := 1; i < len(l.Points); i++ {
			c.segment(l.Points[i-1], l.Points[i], c.LineColor)
		}
	case network.DrawPoints:
		for _, p := range l.Points {
			c.dot(p, c.LineColor)
		}
	default:
		return fmt.Errorf("unknown draw mode %d", mode)
	}
	return nil
}

// fillMesh draws faces from bottom to top, each in the material's diffuse
// color, shaded by the angle between face normal and light.
func (c *Canvas) fillMesh(m *trigpatch.Mesh, mat *network.Material) {
	base := color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	if mat != nil {
		base = nrgba(mat.Diffuse)
		base.A = 0xff
	}
	light := c.Light
	light.Normalize()
	faces := make([]trigpatch.Tri, len(m.Faces))
	copy(faces, m.Faces)
	height := func(f trigpatch.Tri) float64 {
		return m.Points[f[0]][2] + m.Points[f[1]][2] + m.Points[f[2]][2]
	}
	sort.SliceStable(faces, func(i, j int) bool {
		return height(faces[i]) < height(faces[j])
	})
	for _, f := range faces {
		n := vec3.T{}
		for _, k := range f {
			n.Add(&m.Normals[k])
		}
		n.Normalize()
		shade := 0.35 + 0.65*math.Abs(vec3.Dot(&n, &light))
		c.polygon([]vec3.T{m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]}, scaled(base, shade))
	}
}

// segment draws a line as a thin quad.
func (c *Canvas) segment(a, b vec3.T, col color.NRGBA) {
	ax, ay := c.project(a)
	bx, by := c.project(b)
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	w := c.LineWidth / 2
	nx, ny := -dy/l*w, dx/l*w
	c.fill([][2]float64{
		{ax + nx, ay + ny}, {bx + nx, by + ny},
		{bx - nx, by - ny}, {ax - nx, ay - ny},
	}, col)
}

// dot draws a point as a small square.
func (c *Canvas) dot(p vec3.T, col color.NRGBA) {
	x, y := c.project(p)
	r := c.PointSize / 2
	c.fill([][2]float64{{x - r, y - r}, {x + r, y - r}, {x + r, y + r}, {x - r, y + r}}, col)
}

func (c *Canvas) polygon(pts []vec3.T, col color.NRGBA) {
	px := make([][2]float64, len(pts))
	for i, p := range pts {
		px[i][0], px[i][1] = c.project(p)
	}
	c.fill(px, col)
}

// fill rasterizes a closed polygon in pixel coordinates. The rasterizer
// only covers the part of the polygon's bounding box inside the image.
func (c *Canvas) fill(px [][2]float64, col color.NRGBA) {
	if len(px) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range px {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	bbox := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	clip := bbox.Intersect(c.img.Bounds())
	if clip.Empty() {
		return
	}
	c.ras.Reset(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	c.ras.MoveTo(float32(px[0][0]-ox), float32(px[0][1]-oy))
	for _, p := range px[1:] {
		c.ras.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, clip, image.NewUniform(col), image.Point{})
}

func nrgba(c network.Color4) color.NRGBA {
	ch := func(f float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(f))) * 255))
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

func scaled(c color.NRGBA, f float64) color.NRGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Round(math.Min(255, float64(v)*f)))
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
