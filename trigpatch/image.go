package trigpatch

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// GenerateImage triangulates the patch on a regular grid of uDiv × vDiv
// sample points (both at least 2). Every grid cell becomes two triangles.
func (p *Patch) GenerateImage(uDiv, vDiv int) (*Mesh, error) {
	if uDiv < 2 || vDiv < 2 {
		return nil, fmt.Errorf("%w: %d×%d division points", ErrResolution, uDiv, vDiv)
	}
	du := p.AlphaU() / float64(uDiv-1)
	dv := p.AlphaV() / float64(vDiv-1)
	n := uDiv * vDiv
	mesh := &Mesh{
		Points:  make([]vec3.T, 0, n),
		Normals: make([]vec3.T, 0, n),
		UVs:     make([]UV, 0, n),
		Faces:   make([]Tri, 0, 2*(uDiv-1)*(vDiv-1)),
	}
	for i := 0; i < uDiv; i++ {
		u := float64(i) * du
		if i == uDiv-1 {
			u = p.AlphaU()
		}
		for j := 0; j < vDiv; j++ {
			v := float64(j) * dv
			if j == vDiv-1 {
				v = p.AlphaV()
			}
			mesh.UVs = append(mesh.UVs, UV{u, v})
			mesh.Points = append(mesh.Points, p.partial(u, v, 0, 0))
			normal := p.Normal(u, v)
			mesh.Normals = append(mesh.Normals, unit(normal))
		}
	}
	for i := 0; i < uDiv-1; i++ {
		for j := 0; j < vDiv-1; j++ {
			a := i*vDiv + j
			b := (i+1)*vDiv + j
			c := b + 1
			d := a + 1
			mesh.Faces = append(mesh.Faces, Tri{a, b, c}, Tri{a, c, d})
		}
	}
	tracer().Debugf("generated image with %d points, %d faces", len(mesh.Points), len(mesh.Faces))
	return mesh, nil
}

// unit normalizes v. Degenerate normals (at collapsed patch corners) are
// returned as zero vectors.
func unit(v vec3.T) vec3.T {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scaled(1 / l)
}

// GenerateUIsoLines returns count lines of constant u, uniformly spaced over
// [0,αu], each sampled at divPoints values of v. Derivatives with respect to
// v are stored up to maxOrder.
func (p *Patch) GenerateUIsoLines(count, maxOrder, divPoints int) ([]*Polyline, error) {
	return p.isoLines(true, count, maxOrder, divPoints)
}

// GenerateVIsoLines returns count lines of constant v, uniformly spaced over
// [0,αv], each sampled at divPoints values of u. Derivatives with respect to
// u are stored up to maxOrder.
func (p *Patch) GenerateVIsoLines(count, maxOrder, divPoints int) ([]*Polyline, error) {
	return p.isoLines(false, count, maxOrder, divPoints)
}

func (p *Patch) isoLines(fixU bool, count, maxOrder, divPoints int) ([]*Polyline, error) {
	if count < 1 || divPoints < 2 || maxOrder < 0 || maxOrder > MaxOrder {
		return nil, fmt.Errorf("%w: %d lines, order %d, %d division points",
			ErrResolution, count, maxOrder, divPoints)
	}
	fixedSpan, runSpan := p.AlphaV(), p.AlphaU()
	if fixU {
		fixedSpan, runSpan = p.AlphaU(), p.AlphaV()
	}
	lines := make([]*Polyline, count)
	for i := range lines {
		fixed := fixedSpan / 2
		if count > 1 {
			fixed = float64(i) * fixedSpan / float64(count-1)
		}
		line := &Polyline{
			Fixed:       fixed,
			Params:      make([]float64, divPoints),
			Points:      make([]vec3.T, divPoints),
			Derivatives: make([][]vec3.T, maxOrder),
		}
		for k := range line.Derivatives {
			line.Derivatives[k] = make([]vec3.T, divPoints)
		}
		step := runSpan / float64(divPoints-1)
		for j := 0; j < divPoints; j++ {
			t := float64(j) * step
			if j == divPoints-1 {
				t = runSpan
			}
			line.Params[j] = t
			u, v := t, fixed
			if fixU {
				u, v = fixed, t
			}
			line.Points[j] = p.partial(u, v, 0, 0)
			for k := 1; k <= maxOrder; k++ {
				if fixU {
					line.Derivatives[k-1][j] = p.partial(u, v, 0, k)
				} else {
					line.Derivatives[k-1][j] = p.partial(u, v, k, 0)
				}
			}
		}
		lines[i] = line
	}
	return lines, nil
}
