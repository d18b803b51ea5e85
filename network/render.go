package network

import (
	"github.com/npillmayer/cagd/trigpatch"
)

// DrawMode selects the primitives a renderer uses.
type DrawMode int8

// Draw modes.
const (
	DrawLineStrip DrawMode = iota // connected lines
	DrawPoints                    // single points
	DrawFilled                    // filled triangles
)

func (m DrawMode) String() string {
	switch m {
	case DrawLineStrip:
		return "line-strip"
	case DrawPoints:
		return "points"
	case DrawFilled:
		return "filled"
	}
	return "<unknown>"
}

// RenderOrder selects what to draw of a patch. The surface is always drawn;
// iso-lines may be added.
type RenderOrder uint8

// Render orders, to be combined with bitwise or.
const (
	RenderSurface RenderOrder = 0
	RenderULines  RenderOrder = 1 << 0
	RenderVLines  RenderOrder = 1 << 1
)

// Style is the appearance of a patch. Texture and Shader may be nil.
type Style struct {
	Patch    int
	Material *Material
	Texture  *Texture
	Shader   *Shader
}

// Renderer draws the images of patches.
type Renderer interface {
	RenderMesh(m *trigpatch.Mesh, style Style, mode DrawMode) error
	RenderPolyline(l *trigpatch.Polyline, style Style, mode DrawMode) error
}

// RenderSelectedPatch draws the images of patch index.
func (n *Network) RenderSelectedPatch(r Renderer, index int, order RenderOrder, mode DrawMode) error {
	s, err := n.reg.get(index)
	if err != nil {
		tracer().Errorf("cannot render patch: %v", err)
		return err
	}
	return render(r, s, index, order, mode)
}

// RenderEveryPatch draws the images of every live patch in index order.
func (n *Network) RenderEveryPatch(r Renderer, order RenderOrder, mode DrawMode) error {
	for _, i := range n.reg.active() {
		if err := render(r, n.reg.slots[i], i, order, mode); err != nil {
			return err
		}
	}
	return nil
}

func render(r Renderer, s *slot, index int, order RenderOrder, mode DrawMode) error {
	style := Style{Patch: index, Material: s.material, Texture: s.texture, Shader: s.shader}
	if err := r.RenderMesh(s.image, style, mode); err != nil {
		return err
	}
	if order&RenderULines != 0 {
		for _, l := range s.ulines {
			if err := r.RenderPolyline(l, style, mode); err != nil {
				return err
			}
		}
	}
	if order&RenderVLines != 0 {
		for _, l := range s.vlines {
			if err := r.RenderPolyline(l, style, mode); err != nil {
				return err
			}
		}
	}
	tracer().P("patch", index).Debugf("rendered as %s", mode)
	return nil
}
