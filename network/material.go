package network

import (
	"github.com/npillmayer/cagd"
)

// Color4 is an RGBA color with components in [0,1].
type Color4 [4]float32

// Material describes how a patch surface reflects light. Materials are
// shared between patches; a network never modifies or frees them.
type Material struct {
	Name      string
	Ambient   Color4
	Diffuse   Color4
	Specular  Color4
	Emissive  Color4
	Shininess float32
}

// Texture is a shared, read-only reference to a texture image.
type Texture struct {
	Name string
	Path string
}

// Shader is a shared, read-only reference to a shader program.
type Shader struct {
	Name           string
	VertexSource   string
	FragmentSource string
}

// Brass returns a new brass colored material.
func Brass() *Material {
	return &Material{
		Name:      "brass",
		Ambient:   Color4{0.329412, 0.223529, 0.027451, 0.4},
		Diffuse:   Color4{0.780392, 0.568627, 0.113725, 0.6},
		Specular:  Color4{0.992157, 0.941176, 0.807843, 0.8},
		Shininess: 27.8974,
	}
}

// Gold returns a new gold colored material.
func Gold() *Material {
	return &Material{
		Name:      "gold",
		Ambient:   Color4{0.24725, 0.1995, 0.0745, 0.4},
		Diffuse:   Color4{0.75164, 0.60648, 0.22648, 0.6},
		Specular:  Color4{0.628281, 0.555802, 0.366065, 0.8},
		Shininess: 51.2,
	}
}

// Silver returns a new silver colored material.
func Silver() *Material {
	return &Material{
		Name:      "silver",
		Ambient:   Color4{0.19225, 0.19225, 0.19225, 0.4},
		Diffuse:   Color4{0.50754, 0.50754, 0.50754, 0.6},
		Specular:  Color4{0.508273, 0.508273, 0.508273, 0.8},
		Shininess: 51.2,
	}
}

// Emerald returns a new emerald colored material.
func Emerald() *Material {
	return &Material{
		Name:      "emerald",
		Ambient:   Color4{0.0215, 0.1745, 0.0215, 0.4},
		Diffuse:   Color4{0.07568, 0.61424, 0.07568, 0.6},
		Specular:  Color4{0.633, 0.727811, 0.633, 0.8},
		Shininess: 76.8,
	}
}

// Ruby returns a new ruby colored material.
func Ruby() *Material {
	return &Material{
		Name:      "ruby",
		Ambient:   Color4{0.1745, 0.01175, 0.01175, 0.4},
		Diffuse:   Color4{0.61424, 0.04136, 0.04136, 0.6},
		Specular:  Color4{0.727811, 0.626959, 0.626959, 0.8},
		Shininess: 76.8,
	}
}

// DefaultControlPoints returns the control grid of a new default patch: a
// flat 4×4 grid over [-2,2]² whose four interior points are raised to z = 3.
// Every call returns a fresh copy.
func DefaultControlPoints() cagd.Grid {
	return cagd.Grid{
		cagd.P(-2, -2, 0), cagd.P(-2, -1, 0), cagd.P(-2, 1, 0), cagd.P(-2, 2, 0),
		cagd.P(-1, -2, 0), cagd.P(-1, -1, 3), cagd.P(-1, 1, 3), cagd.P(-1, 2, 0),
		cagd.P(1, -2, 0), cagd.P(1, -1, 3), cagd.P(1, 1, 3), cagd.P(1, 2, 0),
		cagd.P(2, -2, 0), cagd.P(2, -1, 0), cagd.P(2, 1, 0), cagd.P(2, 2, 0),
	}
}

// WaveControlPoints returns a saddle-like control grid with dipping edge
// rows and lifted corners.
func WaveControlPoints() cagd.Grid {
	return cagd.Grid{
		cagd.P(-2, -2, 1), cagd.P(-2, -1, -2), cagd.P(-2, 1, -2), cagd.P(-2, 2, 1),
		cagd.P(-1, -2, 0), cagd.P(-1, -1, 1), cagd.P(-1, 1, 1), cagd.P(-1, 2, 0),
		cagd.P(1, -2, 0), cagd.P(1, -1, 1), cagd.P(1, 1, 1), cagd.P(1, 2, 0),
		cagd.P(2, -2, 1), cagd.P(2, -1, -2), cagd.P(2, 1, -2), cagd.P(2, 2, 1),
	}
}
