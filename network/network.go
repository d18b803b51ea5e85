package network

import (
	"fmt"

	"github.com/npillmayer/cagd"
	"github.com/npillmayer/cagd/polygon"
	"github.com/npillmayer/cagd/trigpatch"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Network is a composite surface of trigonometric patches. Patches are
// addressed by integer indices which stay stable for the lifetime of the
// network; indices of deleted patches are never handed out again.
//
// A Network is not safe for concurrent use.
type Network struct {
	reg *registry
	adj *adjacency
}

// New creates an empty network.
func New(c Config) (*Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Network{
		reg: newRegistry(c),
		adj: newAdjacency(),
	}, nil
}

// Config returns the configuration the network currently uses.
func (n *Network) Config() Config {
	return n.reg.config
}

// InsertNewPatch adds a patch with control grid g, rendered with material m.
// It returns the index of the new patch.
func (n *Network) InsertNewPatch(g cagd.Grid, m *Material) (int, error) {
	return n.reg.insert(g, m)
}

// InsertDefaultPatch adds a patch with the grid of DefaultControlPoints.
func (n *Network) InsertDefaultPatch(m *Material) (int, error) {
	return n.reg.insert(DefaultControlPoints(), m)
}

// InsertInterpolatingPatch adds a patch whose surface passes through the
// 16 data points at the equidistant parameters (i⋅αu/3, j⋅αv/3).
func (n *Network) InsertInterpolatingPatch(data cagd.Grid, m *Material) (int, error) {
	g, err := trigpatch.Interpolate(data, n.reg.config.AlphaU, n.reg.config.AlphaV)
	if err != nil {
		tracer().Errorf("cannot interpolate data points: %v", err)
		return -1, err
	}
	return n.reg.insert(g, m)
}

// ContinuePatch adds a patch adjacent to patch index in direction d. Its
// control grid extrapolates the grid of patch index beyond edge or corner d.
// The new patch shares material, texture and shader with patch index. Both
// patches are linked to each other.
func (n *Network) ContinuePatch(index int, d Direction) (int, error) {
	s, err := n.reg.get(index)
	if err != nil {
		tracer().Errorf("cannot continue patch: %v", err)
		return -1, err
	}
	if !d.IsValid() {
		return -1, fmt.Errorf("%w: %s", ErrIncompatibleDirection, d)
	}
	g := s.patch.Grid()
	next, err := n.reg.insert(extend(&g, d), s.material)
	if err != nil {
		return -1, err
	}
	c := n.reg.slots[next]
	c.texture, c.shader = s.texture, s.shader
	n.adj.connect(index, d, next, d.Opposite())
	tracer().P("patch", next).Infof("continues patch %d to the %s", index, d)
	return next, nil
}

// DeletePatch removes patch index and every link from or to it. The index
// is not reused.
func (n *Network) DeletePatch(index int) error {
	if err := n.reg.remove(index); err != nil {
		tracer().Errorf("cannot delete patch: %v", err)
		return err
	}
	n.adj.clearNeighboursOf(index)
	return nil
}

// DeleteAllPatches removes all patches and links.
func (n *Network) DeleteAllPatches() {
	for _, i := range n.reg.active() {
		*n.reg.slots[i] = slot{state: Tombstoned}
	}
	n.adj.clear()
	tracer().Infof("deleted all patches")
}

// SelectedPoint returns the control point at (row, col) of patch index.
func (n *Network) SelectedPoint(index, row, col int) (vec3.T, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return cagd.Origin, err
	}
	return s.patch.ControlPoint(row, col)
}

// MovePoint replaces the control point at (row, col) of patch index and
// regenerates the images of the patch. Neighbours are not changed.
func (n *Network) MovePoint(index, row, col int, p vec3.T) error {
	s, err := n.reg.get(index)
	if err != nil {
		return err
	}
	if !cagd.InGrid(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrIndexOutOfRange, row, col)
	}
	g := s.patch.Grid()
	g.Set(row, col, p)
	return n.commit(gridUpdate{index, g})
}

// TransformPatch applies an affine transform to every control point of
// patch index.
func (n *Network) TransformPatch(index int, m *mat4.T) error {
	s, err := n.reg.get(index)
	if err != nil {
		return err
	}
	return n.commit(gridUpdate{index, cagd.TransformGrid(s.patch.Grid(), m)})
}

// RegenerateImages recomputes the surface image and the iso-lines of patch
// index from its control grid. Images of an unchanged grid are left as
// they are.
func (n *Network) RegenerateImages(index int) error {
	return n.reg.regenerate(index)
}

// Reconfigure switches the network to a new configuration and rebuilds the
// images of every patch. On error the network is unchanged.
func (n *Network) Reconfigure(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return n.reg.reconfigure(c)
}

// gridUpdate is a new control grid for a patch.
type gridUpdate struct {
	index int
	grid  cagd.Grid
}

// commit installs new control grids and regenerates the affected images.
// If any regeneration fails, all grids and images are restored.
func (n *Network) commit(updates ...gridUpdate) error {
	old := make([]cagd.Grid, len(updates))
	for i, u := range updates {
		p := n.reg.slots[u.index].patch
		old[i] = p.Grid()
		p.SetGrid(u.grid)
	}
	for _, u := range updates {
		if err := n.reg.regenerate(u.index); err != nil {
			for i, u := range updates {
				n.reg.slots[u.index].patch.SetGrid(old[i])
				_ = n.reg.regenerate(u.index)
			}
			return err
		}
	}
	return nil
}

// --- Queries ---------------------------------------------------------------

// Patch returns the patch at index. The patch is owned by the network;
// callers changing its control points have to call RegenerateImages.
func (n *Network) Patch(index int) (*trigpatch.Patch, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return nil, err
	}
	return s.patch, nil
}

// Image returns the triangulated surface of patch index.
func (n *Network) Image(index int) (*trigpatch.Mesh, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return nil, err
	}
	return s.image, nil
}

// UIsoLines returns the lines of constant u of patch index.
func (n *Network) UIsoLines(index int) ([]*trigpatch.Polyline, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return nil, err
	}
	return s.ulines, nil
}

// VIsoLines returns the lines of constant v of patch index.
func (n *Network) VIsoLines(index int) ([]*trigpatch.Polyline, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return nil, err
	}
	return s.vlines, nil
}

// Indices returns the indices of all live patches in ascending order.
func (n *Network) Indices() []int {
	return n.reg.active()
}

// Len is the number of live patches.
func (n *Network) Len() int {
	return len(n.reg.active())
}

// State returns the life cycle state of index.
func (n *Network) State(index int) SlotState {
	return n.reg.state(index)
}

// NeighbourOf returns the neighbour of patch index in direction d.
func (n *Network) NeighbourOf(index int, d Direction) (int, bool) {
	l, ok := n.adj.neighbourOf(index, d)
	return l.Patch, ok
}

// Neighbours returns the links of patch index, keyed by direction.
func (n *Network) Neighbours(index int) map[Direction]Link {
	links := make(map[Direction]Link)
	for _, d := range Directions {
		if l, ok := n.adj.neighbourOf(index, d); ok {
			links[d] = l
		}
	}
	return links
}

// SetMaterial changes the material of patch index.
func (n *Network) SetMaterial(index int, m *Material) error {
	s, err := n.reg.get(index)
	if err != nil {
		return err
	}
	s.material = m
	return nil
}

// SetTexture changes the texture of patch index. nil removes the texture.
func (n *Network) SetTexture(index int, t *Texture) error {
	s, err := n.reg.get(index)
	if err != nil {
		return err
	}
	s.texture = t
	return nil
}

// SetShader changes the shader of patch index. nil removes the shader.
func (n *Network) SetShader(index int, sh *Shader) error {
	s, err := n.reg.get(index)
	if err != nil {
		return err
	}
	s.shader = sh
	return nil
}

// footprintSamples is the number of samples per patch edge for outlines.
const footprintSamples = 8

// Footprint returns the outline of patch index, projected to the xy-plane.
func (n *Network) Footprint(index int) (polygon.Polygon, error) {
	s, err := n.reg.get(index)
	if err != nil {
		return nil, err
	}
	return polygon.Outline(s.patch, footprintSamples), nil
}

// PatchAt returns the topmost live patch whose footprint in the xy-plane
// contains (x, y). Later patches are considered on top of earlier ones.
func (n *Network) PatchAt(x, y float64) (int, bool) {
	indices := n.reg.active()
	for k := len(indices) - 1; k >= 0; k-- {
		s := n.reg.slots[indices[k]]
		if polygon.Outline(s.patch, footprintSamples).Contains(x, y) {
			return indices[k], true
		}
	}
	return -1, false
}
