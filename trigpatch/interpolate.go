package trigpatch

import (
	"fmt"

	"github.com/npillmayer/cagd"
	"gonum.org/v1/gonum/mat"
)

// Interpolate computes the control grid of a patch which passes through
// data[i⋅4+j] at parameter (i⋅αu/3, j⋅αv/3).
//
// With collocation matrices Mu(i,k) = Fk(uᵢ) and Mv(j,l) = Fl(vⱼ) the data
// grid is D = Mu⋅P⋅Mvᵀ for every coordinate, hence P = Mu⁻¹⋅D⋅Mv⁻ᵀ.
func Interpolate(data cagd.Grid, alphaU, alphaV float64) (cagd.Grid, error) {
	var g cagd.Grid
	mu, err := collocation(alphaU)
	if err != nil {
		return g, err
	}
	mv, err := collocation(alphaV)
	if err != nil {
		return g, err
	}
	for c := 0; c < 3; c++ { // x, y, z
		d := mat.NewDense(cagd.GridSize, cagd.GridSize, nil)
		for i := 0; i < cagd.GridSize; i++ {
			for j := 0; j < cagd.GridSize; j++ {
				d.Set(i, j, data.At(i, j)[c])
			}
		}
		var y mat.Dense // y = Mu⁻¹⋅D
		if err := y.Solve(mu, d); err != nil {
			tracer().Errorf("u collocation: %v", err)
			return g, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		var pt mat.Dense // Pᵀ = Mv⁻¹⋅Yᵀ
		if err := pt.Solve(mv, y.T()); err != nil {
			tracer().Errorf("v collocation: %v", err)
			return g, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		for i := 0; i < cagd.GridSize; i++ {
			for j := 0; j < cagd.GridSize; j++ {
				g[cagd.GridIndex(i, j)][c] = pt.At(j, i)
			}
		}
	}
	return g, nil
}

// collocation returns M(i,k) = Fk(i⋅α/3).
func collocation(alpha float64) (*mat.Dense, error) {
	b, err := NewBasis(alpha)
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(cagd.GridSize, cagd.GridSize, nil)
	for i := 0; i < cagd.GridSize; i++ {
		t := float64(i) * alpha / float64(cagd.GridSize-1)
		f := b.Values(t, 0)
		for k := range f {
			m.Set(i, k, f[k])
		}
	}
	return m, nil
}
