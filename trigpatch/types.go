package trigpatch

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
)

// tracer writes to trace with key 'cagd.patch'
func tracer() tracing.Trace {
	return tracing.Select("cagd.patch")
}

// MaxOrder is the highest derivative order a patch will evaluate.
const MaxOrder = 2

var (
	// ErrInvalidShape indicates a shape parameter outside of (0,π).
	ErrInvalidShape = errors.New("shape parameter must be in (0,π)")
	// ErrIndexOutOfRange indicates a control grid row or column outside of [0,3].
	ErrIndexOutOfRange = errors.New("control grid index out of range")
	// ErrResolution indicates an unusable number of divisions, lines or derivative order.
	ErrResolution = errors.New("invalid image resolution")
	// ErrSingular indicates a collocation system without a unique solution.
	ErrSingular = errors.New("interpolation system is singular")
)

// UV is a point in the parameter domain of a patch.
type UV [2]float64

// Tri is a triangle, given by three indices into Mesh.Points.
type Tri [3]int

// Mesh is a triangulated image of a patch. Points, Normals and UVs are
// parallel slices; Faces index into them.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []UV
}

// Polyline is an iso-parametric line: one parameter is fixed to Fixed, the
// other one is sampled. Derivatives[k-1] holds the k-th derivative along the
// sampled parameter at every point, for k up to the order the line was
// generated with.
type Polyline struct {
	Fixed       float64
	Params      []float64
	Points      []vec3.T
	Derivatives [][]vec3.T
}

// Order is the highest derivative order stored with the line.
func (l *Polyline) Order() int {
	return len(l.Derivatives)
}

// Len is the number of sample points.
func (l *Polyline) Len() int {
	return len(l.Points)
}
