package network

import (
	"fmt"

	"github.com/npillmayer/cagd"
	"github.com/ungerik/go3d/float64/vec3"
)

// seam describes two patch edges which are to be connected.
type seam struct {
	a, b       int
	dirA, dirB Direction
	ga, gb     cagd.Grid
}

// facingSeam validates a pair of opposite edges of two different active
// patches. It does not change anything.
func (n *Network) facingSeam(a, b int, dirA, dirB Direction) (seam, error) {
	sm, err := n.seam(a, b, dirA, dirB)
	if err != nil {
		return sm, err
	}
	if dirB != dirA.Opposite() {
		return sm, fmt.Errorf("%w: edge %s does not face edge %s", ErrIncompatibleDirection, dirA, dirB)
	}
	return sm, nil
}

func (n *Network) seam(a, b int, dirA, dirB Direction) (seam, error) {
	sm := seam{a: a, b: b, dirA: dirA, dirB: dirB}
	sa, err := n.reg.get(a)
	if err != nil {
		return sm, err
	}
	sb, err := n.reg.get(b)
	if err != nil {
		return sm, err
	}
	if a == b {
		return sm, fmt.Errorf("%w: patch %d", ErrSamePatch, a)
	}
	if !dirA.IsEdge() || !dirB.IsEdge() {
		return sm, fmt.Errorf("%w: %s and %s must both be edges", ErrIncompatibleDirection, dirA, dirB)
	}
	sm.ga, sm.gb = sa.patch.Grid(), sb.patch.Grid()
	return sm, nil
}

// JoinPatches copies the dirA edge of patch a onto the dirB edge of patch b,
// making both surfaces meet along the seam (C0). dirB must be the opposite
// of dirA. The copy happens once; later changes to a do not propagate to b.
func (n *Network) JoinPatches(a, b int, dirA, dirB Direction) error {
	sm, err := n.facingSeam(a, b, dirA, dirB)
	if err != nil {
		tracer().Errorf("cannot join patches %d and %d: %v", a, b, err)
		return err
	}
	edgeA, edgeB := edgeCells(dirA, 0), edgeCells(dirB, 0)
	gb := sm.gb
	for k := range edgeA {
		gb[edgeB[k]] = sm.ga[edgeA[k]]
	}
	if err := n.commit(gridUpdate{b, gb}); err != nil {
		return err
	}
	n.adj.connect(a, dirA, b, dirB)
	tracer().P("patch", b).Infof("joined %s edge to %s edge of patch %d", dirB, dirA, a)
	return nil
}

// MergePatches moves the dirA edge of patch a and the dirB edge of patch b
// to their common midpoints. With Config.MergeTangents set, the rows next to
// the seam are moved as well, so that both patches share the averaged
// tangent across the seam.
func (n *Network) MergePatches(a, b int, dirA, dirB Direction) error {
	sm, err := n.facingSeam(a, b, dirA, dirB)
	if err != nil {
		tracer().Errorf("cannot merge patches %d and %d: %v", a, b, err)
		return err
	}
	ea, ia := edgeCells(dirA, 0), edgeCells(dirA, 1)
	eb, ib := edgeCells(dirB, 0), edgeCells(dirB, 1)
	ga, gb := sm.ga, sm.gb
	for k := range ea {
		m := cagd.Midpoint(ga[ea[k]], gb[eb[k]])
		ga[ea[k]], gb[eb[k]] = m, m
		if !n.reg.config.MergeTangents {
			continue
		}
		tA := vecSub(sm.ga[ea[k]], sm.ga[ia[k]])
		tB := vecSub(sm.gb[ib[k]], sm.gb[eb[k]])
		t := cagd.Midpoint(tA, tB)
		ga[ia[k]] = vecSub(m, t)
		gb[ib[k]] = vec3.Add(&m, &t)
	}
	if err := n.commit(gridUpdate{a, ga}, gridUpdate{b, gb}); err != nil {
		return err
	}
	n.adj.connect(a, dirA, b, dirB)
	tracer().P("patch", a).Infof("merged %s edge with %s edge of patch %d", dirA, dirB, b)
	return nil
}

// BridgePatches inserts a new patch spanning from the dirA edge of patch a
// to the dirB edge of patch b. Its W edge is a's edge and its E edge is b's
// edge; the rows in between continue both patches' cross-boundary tangents,
// so both seams are C1 for equal shape parameters. Control points correspond
// by their running index along the edges.
func (n *Network) BridgePatches(a, b int, dirA, dirB Direction) (int, error) {
	sm, err := n.seam(a, b, dirA, dirB)
	if err != nil {
		tracer().Errorf("cannot bridge patches %d and %d: %v", a, b, err)
		return -1, err
	}
	ea, ia := edgeCells(dirA, 0), edgeCells(dirA, 1)
	eb, ib := edgeCells(dirB, 0), edgeCells(dirB, 1)
	var g cagd.Grid
	for m := 0; m < cagd.GridSize; m++ {
		g.Set(0, m, sm.ga[ea[m]])
		g.Set(1, m, cagd.Extrapolate(sm.ga[ea[m]], sm.ga[ia[m]], 1))
		g.Set(2, m, cagd.Extrapolate(sm.gb[eb[m]], sm.gb[ib[m]], 1))
		g.Set(3, m, sm.gb[eb[m]])
	}
	sa := n.reg.slots[a]
	index, err := n.reg.insert(g, sa.material)
	if err != nil {
		return -1, err
	}
	bridge := n.reg.slots[index]
	bridge.texture, bridge.shader = sa.texture, sa.shader
	n.adj.connect(a, dirA, index, W)
	n.adj.connect(b, dirB, index, E)
	tracer().P("patch", index).Infof("bridged patch %d (%s) and patch %d (%s)", a, dirA, b, dirB)
	return index, nil
}

func vecSub(a, b vec3.T) vec3.T {
	return vec3.Sub(&a, &b)
}
