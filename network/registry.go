package network

import (
	"fmt"

	"github.com/npillmayer/cagd"
	"github.com/npillmayer/cagd/trigpatch"
)

// slot holds a patch together with its shared rendering resources and its
// derived images.
type slot struct {
	state    SlotState
	patch    *trigpatch.Patch
	material *Material // shared, not owned
	texture  *Texture  // optional, shared
	shader   *Shader   // optional, shared

	image  *trigpatch.Mesh
	ulines []*trigpatch.Polyline
	vlines []*trigpatch.Polyline

	built    cagd.Grid // control grid the images were derived from
	revision int       // configuration revision the images were derived from
	current  bool      // images exist for (built, revision)
}

// images bundles the derived artifacts of one patch.
type images struct {
	mesh           *trigpatch.Mesh
	ulines, vlines []*trigpatch.Polyline
}

// registry is an arena of patch slots, addressed by stable indices.
type registry struct {
	config   Config
	revision int
	slots    []*slot
}

func newRegistry(c Config) *registry {
	return &registry{config: c, revision: 1}
}

// insert stores a new patch and builds its images. Nothing is stored if
// image generation fails.
func (reg *registry) insert(g cagd.Grid, m *Material) (int, error) {
	if reg.config.MaxPatches > 0 && len(reg.slots) >= reg.config.MaxPatches {
		tracer().Errorf("cannot insert patch, %d slots in use", len(reg.slots))
		return -1, fmt.Errorf("%w: limit is %d", ErrCapacity, reg.config.MaxPatches)
	}
	p, err := trigpatch.NewFromGrid(g, reg.config.AlphaU, reg.config.AlphaV)
	if err != nil {
		return -1, err
	}
	s := &slot{state: Active, patch: p, material: m}
	imgs, err := reg.build(p)
	if err != nil {
		return -1, err
	}
	s.attach(imgs, g, reg.revision)
	reg.slots = append(reg.slots, s)
	index := len(reg.slots) - 1
	tracer().P("patch", index).Infof("inserted patch")
	return index, nil
}

// get returns the active slot for index.
func (reg *registry) get(index int) (*slot, error) {
	if index < 0 || index >= len(reg.slots) {
		return nil, fmt.Errorf("%w: %d out of range [0,%d)", ErrInvalidIndex, index, len(reg.slots))
	}
	s := reg.slots[index]
	if s.state != Active {
		return nil, fmt.Errorf("%w: patch %d is %s", ErrInvalidIndex, index, s.state)
	}
	return s, nil
}

// state reports the life cycle state of an index. Indices never handed out
// are Empty.
func (reg *registry) state(index int) SlotState {
	if index < 0 || index >= len(reg.slots) {
		return Empty
	}
	return reg.slots[index].state
}

// remove tombstones a slot and releases its patch and images.
func (reg *registry) remove(index int) error {
	s, err := reg.get(index)
	if err != nil {
		return err
	}
	*s = slot{state: Tombstoned}
	tracer().P("patch", index).Infof("removed patch")
	return nil
}

// active returns the indices of all active slots in ascending order.
func (reg *registry) active() []int {
	var indices []int
	for i, s := range reg.slots {
		if s.state == Active {
			indices = append(indices, i)
		}
	}
	return indices
}

// regenerate rebuilds the images of a patch from its current control grid.
// Images which were derived from an identical grid under the current
// configuration are kept as they are.
func (reg *registry) regenerate(index int) error {
	s, err := reg.get(index)
	if err != nil {
		return err
	}
	g := s.patch.Grid()
	if s.current && s.revision == reg.revision && s.built == g {
		tracer().P("patch", index).Debugf("images are up to date")
		return nil
	}
	imgs, err := reg.build(s.patch)
	if err != nil {
		tracer().P("patch", index).Errorf("cannot regenerate images: %v", err)
		return err
	}
	s.attach(imgs, g, reg.revision)
	tracer().P("patch", index).Debugf("regenerated images")
	return nil
}

// build derives surface image and iso-lines of a patch.
func (reg *registry) build(p *trigpatch.Patch) (images, error) {
	c := reg.config
	var imgs images
	var err error
	if imgs.mesh, err = p.GenerateImage(c.UDivPoints, c.VDivPoints); err != nil {
		return imgs, err
	}
	if imgs.ulines, err = p.GenerateUIsoLines(c.UIsoLines, c.MaxOrder, c.IsoDivPoints); err != nil {
		return imgs, err
	}
	if imgs.vlines, err = p.GenerateVIsoLines(c.VIsoLines, c.MaxOrder, c.IsoDivPoints); err != nil {
		return imgs, err
	}
	return imgs, nil
}

func (s *slot) attach(imgs images, g cagd.Grid, revision int) {
	s.image = imgs.mesh
	s.ulines = imgs.ulines
	s.vlines = imgs.vlines
	s.built = g
	s.revision = revision
	s.current = true
}

// reconfigure switches to a new configuration and rebuilds the images of
// every active patch. Either all patches are rebuilt or nothing changes.
// Images are built on scratch copies; the patches themselves keep their
// identity and only receive the new shape parameters.
func (reg *registry) reconfigure(c Config) error {
	indices := reg.active()
	grids := make([]cagd.Grid, len(indices))
	built := make([]images, len(indices))
	old := reg.config
	reg.config = c
	for k, i := range indices {
		grids[k] = reg.slots[i].patch.Grid()
		scratch, err := trigpatch.NewFromGrid(grids[k], c.AlphaU, c.AlphaV)
		if err == nil {
			built[k], err = reg.build(scratch)
		}
		if err != nil {
			reg.config = old
			return err
		}
	}
	reg.revision++
	for k, i := range indices {
		s := reg.slots[i]
		if err := s.patch.SetShape(c.AlphaU, c.AlphaV); err != nil {
			panic(err) // shape parameters were accepted by the scratch patch
		}
		s.attach(built[k], grids[k], reg.revision)
	}
	tracer().Infof("reconfigured %d patches, revision %d", len(indices), reg.revision)
	return nil
}
