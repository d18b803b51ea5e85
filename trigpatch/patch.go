package trigpatch

import (
	"fmt"

	"github.com/npillmayer/cagd"
	"github.com/ungerik/go3d/float64/vec3"
)

// Patch is a second order trigonometric tensor product patch.
// The zero value is not usable, create patches with New or NewFromGrid.
type Patch struct {
	grid   cagd.Grid // p(i,j), i follows u, j follows v
	bu, bv Basis     // blending functions in u and v direction
}

// New creates a patch with all control points at the origin.
func New(alphaU, alphaV float64) (*Patch, error) {
	return NewFromGrid(cagd.Grid{}, alphaU, alphaV)
}

// NewFromGrid creates a patch from a control grid. The grid is copied.
func NewFromGrid(g cagd.Grid, alphaU, alphaV float64) (*Patch, error) {
	bu, err := NewBasis(alphaU)
	if err != nil {
		return nil, err
	}
	bv, err := NewBasis(alphaV)
	if err != nil {
		return nil, err
	}
	return &Patch{grid: g, bu: bu, bv: bv}, nil
}

// AlphaU is the shape parameter in u direction. The u domain is [0,αu].
func (p *Patch) AlphaU() float64 {
	return p.bu.Alpha()
}

// AlphaV is the shape parameter in v direction. The v domain is [0,αv].
func (p *Patch) AlphaV() float64 {
	return p.bv.Alpha()
}

// SetShape replaces the shape parameters, keeping the control grid.
// On error the patch is unchanged.
func (p *Patch) SetShape(alphaU, alphaV float64) error {
	bu, err := NewBasis(alphaU)
	if err != nil {
		return err
	}
	bv, err := NewBasis(alphaV)
	if err != nil {
		return err
	}
	p.bu, p.bv = bu, bv
	return nil
}

// Grid returns a copy of the control grid.
func (p *Patch) Grid() cagd.Grid {
	return p.grid
}

// SetGrid replaces all control points.
func (p *Patch) SetGrid(g cagd.Grid) {
	p.grid = g
}

// ControlPoint returns control point p(row,col).
func (p *Patch) ControlPoint(row, col int) (vec3.T, error) {
	if !cagd.InGrid(row, col) {
		return vec3.T{}, fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, row, col)
	}
	return p.grid.At(row, col), nil
}

// SetControlPoint replaces control point p(row,col).
func (p *Patch) SetControlPoint(row, col int, pt vec3.T) error {
	if !cagd.InGrid(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, row, col)
	}
	p.grid.Set(row, col, pt)
	return nil
}

// Evaluate returns the surface point S(u,v).
func (p *Patch) Evaluate(u, v float64) vec3.T {
	return p.partial(u, v, 0, 0)
}

// Partial returns the mixed partial derivative of order orderU in u and
// orderV in v. Both orders must be in [0,2].
func (p *Patch) Partial(u, v float64, orderU, orderV int) (vec3.T, error) {
	if orderU < 0 || orderU > MaxOrder || orderV < 0 || orderV > MaxOrder {
		return vec3.T{}, fmt.Errorf("%w: derivative order (%d,%d)", ErrResolution, orderU, orderV)
	}
	return p.partial(u, v, orderU, orderV), nil
}

func (p *Patch) partial(u, v float64, orderU, orderV int) vec3.T {
	fu := p.bu.Values(u, orderU)
	fv := p.bv.Values(v, orderV)
	var sum vec3.T
	for i := 0; i < cagd.GridSize; i++ {
		var row vec3.T
		for j := 0; j < cagd.GridSize; j++ {
			pt := p.grid.At(i, j)
			pt.Scale(fv[j])
			row.Add(&pt)
		}
		row.Scale(fu[i])
		sum.Add(&row)
	}
	return sum
}

// Derivatives returns the partial derivatives at (u,v) as a triangular table:
// d[k][l] is differentiated k times in u and l times in v, with k+l ≤ maxOrder.
// d[0][0] is the surface point.
func (p *Patch) Derivatives(u, v float64, maxOrder int) ([][]vec3.T, error) {
	if maxOrder < 0 || maxOrder > MaxOrder {
		return nil, fmt.Errorf("%w: derivative order %d", ErrResolution, maxOrder)
	}
	d := make([][]vec3.T, maxOrder+1)
	for k := 0; k <= maxOrder; k++ {
		d[k] = make([]vec3.T, maxOrder+1-k)
		for l := 0; l <= maxOrder-k; l++ {
			d[k][l] = p.partial(u, v, k, l)
		}
	}
	return d, nil
}

// Normal returns the (unnormalized) surface normal ∂S/∂u × ∂S/∂v.
func (p *Patch) Normal(u, v float64) vec3.T {
	su := p.partial(u, v, 1, 0)
	sv := p.partial(u, v, 0, 1)
	return vec3.Cross(&su, &sv)
}
