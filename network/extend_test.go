package network

import (
	"testing"

	"github.com/npillmayer/cagd"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestAxisPlacement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 3, up.fromEdge(0))
	assert.Equal(t, 2, up.fromEdge(1))
	assert.Equal(t, 0, down.fromEdge(0))
	assert.Equal(t, 1, down.fromEdge(1))
	assert.Equal(t, 0, up.place(0))
	assert.Equal(t, 3, down.place(0))
}

func TestExtensionTableIsSymmetric(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, d := range Directions {
		ext, opp := extensions[d], extensions[d.Opposite()]
		assert.Equal(t, -ext.u, opp.u, d.String())
		assert.Equal(t, -ext.v, opp.v, d.String())
		assert.Equal(t, d.IsEdge(), ext.u == pass || ext.v == pass, d.String())
	}
}

func TestEdgeCells(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, [4]int{3, 7, 11, 15}, edgeCells(N, 0))
	assert.Equal(t, [4]int{2, 6, 10, 14}, edgeCells(N, 1))
	assert.Equal(t, [4]int{12, 13, 14, 15}, edgeCells(E, 0))
	assert.Equal(t, [4]int{0, 4, 8, 12}, edgeCells(S, 0))
	assert.Equal(t, [4]int{4, 5, 6, 7}, edgeCells(W, 1))
}

// Both orders of extrapolating into a corner cell must lead to the same
// point, up to rounding.
func TestCornerCandidatesAgree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, g := range []cagd.Grid{DefaultControlPoints(), WaveControlPoints()} {
		for _, d := range []Direction{NE, SE, SW, NW} {
			c := cornerOf(&g, d)
			for a := 1; a < 4; a++ {
				for b := 1; b < 4; b++ {
					uv, vu := c.candidates(a, b)
					diff := vec3.Sub(&uv, &vu)
					assert.InDelta(t, 0, diff.Length(), 1e-12,
						"%s cell (%d,%d)", d, a, b)
				}
			}
		}
	}
}

func TestCornerExtensionOfPlane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var g cagd.Grid
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			g.Set(i, j, cagd.P(float64(i), float64(j), 0))
		}
	}
	ext := extend(&g, NE)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			nearPoint(t, cagd.P(float64(3+i), float64(3+j), 0), ext.At(i, j), 1e-12)
		}
	}
	ext = extend(&g, SW)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			nearPoint(t, cagd.P(float64(i-3), float64(j-3), 0), ext.At(i, j), 1e-12)
		}
	}
	ext = extend(&g, W)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			nearPoint(t, cagd.P(float64(i-3), float64(j), 0), ext.At(i, j), 1e-12)
		}
	}
}
