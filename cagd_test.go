package cagd

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(1 + a) {
		t.Errorf("Expected 1+a to be one, is not")
	}
	if Zap(a) != 0 || Zap(0.5) != 0.5 {
		t.Errorf("Expected Zap to clear only near-zero values")
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2, 1)
	q := P(-3, -2, -1)
	r := Combine(p, q, 1, 1)
	if !Equal(r, Origin) {
		t.Errorf("Expected p + q to be (0,0,0), is %s", String(r))
	}
	if m := Midpoint(p, q); !Equal(m, Origin) {
		t.Errorf("Expected midpoint of p and q to be origin, is %s", String(m))
	}
	if a := Average(P(0, 0, 0), P(2, 0, 0), P(1, 3, 0)); !Equal(a, P(1, 1, 0)) {
		t.Errorf("Expected barycenter (1,1,0), is %s", String(a))
	}
	if a := Average(); a != Origin {
		t.Errorf("Expected empty average to be origin, is %s", String(a))
	}
	if z := Zapped(P(1e-9, 2, -1e-9)); z != P(0, 2, 0) {
		t.Errorf("Expected zapped point (0,2,0), is %s", String(z))
	}
}

func TestExtrapolate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b, i := P(2, 1, 0.3), P(1, 1, 0)
	if e := Extrapolate(b, i, 0); e != b {
		t.Errorf("Expected k=0 to reproduce the boundary point exactly, is %s", String(e))
	}
	if e := Extrapolate(b, i, 2); !Equal(e, P(4, 1, 0.9)) {
		t.Errorf("Expected (4,1,0.9), is %s", String(e))
	}
	if e := Extrapolate(b, i, -1); !Equal(e, i) {
		t.Errorf("Expected k=-1 to step back to the inner point, is %s", String(e))
	}
}

func TestGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var g Grid
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			g.Set(i, j, P(float64(i), float64(j), 0))
		}
	}
	if GridIndex(2, 3) != 11 || !InGrid(3, 3) || InGrid(4, 0) || InGrid(0, -1) {
		t.Errorf("Grid index arithmetic broken")
	}
	if g.Row(2)[1] != P(2, 1, 0) || g.Col(2)[1] != P(1, 2, 0) {
		t.Errorf("Expected row and column access to follow (row, col)")
	}
	h, err := GridFromSlice(g[:])
	if err != nil || !h.Equal(&g) {
		t.Errorf("Expected grid to survive a round trip through a slice")
	}
	if _, err := GridFromSlice(g[:15]); !errors.Is(err, ErrGridSize) {
		t.Errorf("Expected ErrGridSize for 15 points, have %v", err)
	}
	t.Logf("grid =\n%s", g.String())
}

func TestTransformGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var g Grid
	g.Set(1, 2, P(1, 2, 3))
	m := Translation(vec3.T{1, -1, 2})
	h := TransformGrid(g, &m)
	if !Equal(h.At(1, 2), P(2, 1, 5)) {
		t.Errorf("Expected translated point (2,1,5), is %s", String(h.At(1, 2)))
	}
	if !Equal(h.At(0, 0), P(1, -1, 2)) {
		t.Errorf("Expected translated origin (1,-1,2), is %s", String(h.At(0, 0)))
	}
	if g.At(1, 2) != P(1, 2, 3) {
		t.Errorf("Expected argument grid to be unchanged")
	}
}
