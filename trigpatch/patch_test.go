package trigpatch

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/cagd"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func raisedGrid() cagd.Grid {
	var g cagd.Grid
	xs := [4]float64{-2, -1, 1, 2}
	ys := [4]float64{-2, -1, 1, 2}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			z := 0.0
			if (i == 1 || i == 2) && (j == 1 || j == 2) {
				z = 3
			}
			g.Set(i, j, cagd.P(xs[i], ys[j], z))
		}
	}
	return g
}

func mustPatch(t *testing.T, g cagd.Grid) *Patch {
	t.Helper()
	p, err := NewFromGrid(g, math.Pi/2, math.Pi/2)
	require.NoError(t, err)
	return p
}

func near(t *testing.T, want, got vec3.T, tol float64) {
	t.Helper()
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); d != "" {
		t.Errorf("points differ (-want +got):\n%s", d)
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, alpha := range []float64{0.3, 1, math.Pi / 2, 2.5} {
		b, err := NewBasis(alpha)
		require.NoError(t, err)
		for k := 0; k <= 10; k++ {
			tt := alpha * float64(k) / 10
			f := b.Values(tt, 0)
			assert.InDelta(t, 1.0, f[0]+f[1]+f[2]+f[3], 1e-12, "α=%g t=%g", alpha, tt)
			d := b.Values(tt, 1)
			assert.InDelta(t, 0.0, d[0]+d[1]+d[2]+d[3], 1e-9)
			dd := b.Values(tt, 2)
			assert.InDelta(t, 0.0, dd[0]+dd[1]+dd[2]+dd[3], 1e-9)
		}
	}
}

func TestBasisEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b, err := NewBasis(1.1)
	require.NoError(t, err)
	f0 := b.Values(0, 0)
	assert.InDelta(t, 1.0, f0[0], 1e-12)
	assert.InDelta(t, 0.0, f0[3], 1e-12)
	f1 := b.Values(b.Alpha(), 0)
	assert.InDelta(t, 1.0, f1[3], 1e-12)
	// end tangents depend on the two outer functions only, with equal weight
	d0 := b.Values(0, 1)
	d1 := b.Values(b.Alpha(), 1)
	assert.InDelta(t, -d0[0], d0[1], 1e-9)
	assert.InDelta(t, 0.0, d0[2], 1e-9)
	assert.InDelta(t, d0[1], d1[3], 1e-9)
	assert.InDelta(t, -d1[3], d1[2], 1e-9)
}

func TestBasisDerivativesMatchDifferences(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b, _ := NewBasis(math.Pi / 2)
	h := 1e-5
	for i := 0; i < 4; i++ {
		for _, tt := range []float64{0.2, 0.7, 1.3} {
			num := (b.Value(i, tt+h, 0) - b.Value(i, tt-h, 0)) / (2 * h)
			assert.InDelta(t, num, b.Value(i, tt, 1), 1e-6)
			num2 := (b.Value(i, tt+h, 1) - b.Value(i, tt-h, 1)) / (2 * h)
			assert.InDelta(t, num2, b.Value(i, tt, 2), 1e-6)
		}
	}
}

func TestInvalidShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, alpha := range []float64{0, -1, math.Pi, 4, math.NaN()} {
		_, err := New(alpha, 1)
		assert.True(t, errors.Is(err, ErrInvalidShape), "α=%g", alpha)
	}
}

func TestSetShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := raisedGrid()
	p := mustPatch(t, g)
	require.NoError(t, p.SetShape(math.Pi/3, 2))
	assert.InDelta(t, math.Pi/3, p.AlphaU(), 1e-15)
	assert.InDelta(t, 2, p.AlphaV(), 1e-15)
	assert.Equal(t, g, p.Grid())
	near(t, g.At(3, 3), p.Evaluate(p.AlphaU(), p.AlphaV()), 1e-12)
	assert.True(t, errors.Is(p.SetShape(1, math.Pi), ErrInvalidShape))
	assert.InDelta(t, 2, p.AlphaV(), 1e-15, "failed call leaves the shape alone")
}

func TestPatchInterpolatesCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := raisedGrid()
	p := mustPatch(t, g)
	near(t, g.At(0, 0), p.Evaluate(0, 0), 1e-12)
	near(t, g.At(3, 0), p.Evaluate(p.AlphaU(), 0), 1e-12)
	near(t, g.At(0, 3), p.Evaluate(0, p.AlphaV()), 1e-12)
	near(t, g.At(3, 3), p.Evaluate(p.AlphaU(), p.AlphaV()), 1e-12)
}

func TestControlPointAccess(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPatch(t, raisedGrid())
	require.NoError(t, p.SetControlPoint(2, 1, cagd.P(7, 8, 9)))
	q, err := p.ControlPoint(2, 1)
	require.NoError(t, err)
	assert.Equal(t, cagd.P(7, 8, 9), q)
	_, err = p.ControlPoint(4, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.True(t, errors.Is(p.SetControlPoint(0, -1, q), ErrIndexOutOfRange))
}

func TestPartialDerivatives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPatch(t, raisedGrid())
	u, v, h := 0.6, 0.9, 1e-6
	su, err := p.Partial(u, v, 1, 0)
	require.NoError(t, err)
	a, b := p.Evaluate(u+h, v), p.Evaluate(u-h, v)
	num := vec3.Sub(&a, &b)
	near(t, num.Scaled(1/(2*h)), su, 1e-5)
	d, err := p.Derivatives(u, v, 2)
	require.NoError(t, err)
	assert.Len(t, d, 3)
	assert.Len(t, d[0], 3)
	assert.Len(t, d[2], 1)
	near(t, su, d[1][0], 1e-12)
	_, err = p.Partial(u, v, 3, 0)
	assert.True(t, errors.Is(err, ErrResolution))
}

func TestGenerateImage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPatch(t, raisedGrid())
	m, err := p.GenerateImage(5, 4)
	require.NoError(t, err)
	assert.Len(t, m.Points, 20)
	assert.Len(t, m.Normals, 20)
	assert.Len(t, m.UVs, 20)
	assert.Len(t, m.Faces, 2*4*3)
	near(t, p.Evaluate(p.AlphaU(), p.AlphaV()), m.Points[19], 1e-12)
	for _, n := range m.Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-9)
	}
	again, err := p.GenerateImage(5, 4)
	require.NoError(t, err)
	if d := cmp.Diff(m, again); d != "" {
		t.Errorf("image generation is not deterministic:\n%s", d)
	}
	_, err = p.GenerateImage(1, 4)
	assert.True(t, errors.Is(err, ErrResolution))
}

func TestIsoLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPatch(t, raisedGrid())
	ulines, err := p.GenerateUIsoLines(3, 2, 10)
	require.NoError(t, err)
	require.Len(t, ulines, 3)
	for _, l := range ulines {
		assert.Equal(t, 10, l.Len())
		assert.Equal(t, 2, l.Order())
	}
	assert.InDelta(t, p.AlphaU(), ulines[2].Fixed, 1e-15)
	near(t, p.Evaluate(0, p.AlphaV()), ulines[0].Points[9], 1e-12)
	sv, _ := p.Partial(ulines[1].Fixed, ulines[1].Params[4], 0, 1)
	near(t, sv, ulines[1].Derivatives[0][4], 1e-12)

	vlines, err := p.GenerateVIsoLines(1, 0, 4)
	require.NoError(t, err)
	require.Len(t, vlines, 1)
	assert.Equal(t, 0, vlines[0].Order())
	assert.InDelta(t, p.AlphaV()/2, vlines[0].Fixed, 1e-15)

	_, err = p.GenerateVIsoLines(0, 1, 4)
	assert.True(t, errors.Is(err, ErrResolution))
	_, err = p.GenerateUIsoLines(2, 3, 4)
	assert.True(t, errors.Is(err, ErrResolution))
}

func TestInterpolate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	data := raisedGrid()
	au, av := 1.2, math.Pi/2
	g, err := Interpolate(data, au, av)
	require.NoError(t, err)
	p, err := NewFromGrid(g, au, av)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s := p.Evaluate(float64(i)*au/3, float64(j)*av/3)
			near(t, data.At(i, j), s, 1e-9)
		}
	}
	_, err = Interpolate(data, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}
