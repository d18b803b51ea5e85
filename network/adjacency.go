package network

// Link is a directed connection from a patch to a neighbour.
// Via is the side of the neighbour which faces the linking patch.
type Link struct {
	Patch int
	Via   Direction
}

// adjacency is a directed graph of patches with out-degree at most 8, one
// outgoing link per compass direction. Cycles are allowed.
type adjacency struct {
	links map[int]*[8]Link
}

const noPatch = -1

func newAdjacency() *adjacency {
	return &adjacency{links: make(map[int]*[8]Link)}
}

func (adj *adjacency) row(index int) *[8]Link {
	r, ok := adj.links[index]
	if !ok {
		r = &[8]Link{}
		for d := range r {
			r[d] = Link{Patch: noPatch}
		}
		adj.links[index] = r
	}
	return r
}

// setNeighbour links patch index to neighbour in direction dir. An existing
// link in this direction is replaced.
func (adj *adjacency) setNeighbour(index int, dir Direction, neighbour int, via Direction) {
	adj.row(index)[dir] = Link{Patch: neighbour, Via: via}
}

// connect links two patches in both directions. Links displaced in dirA
// or dirB are removed on both of their ends.
func (adj *adjacency) connect(a int, dirA Direction, b int, dirB Direction) {
	adj.unlink(a, dirA)
	adj.unlink(b, dirB)
	adj.setNeighbour(a, dirA, b, dirB)
	adj.setNeighbour(b, dirB, a, dirA)
}

// unlink removes the link of patch index in direction dir, together with
// the partner's link back to index.
func (adj *adjacency) unlink(index int, dir Direction) {
	l, ok := adj.neighbourOf(index, dir)
	if !ok {
		return
	}
	if back, ok := adj.neighbourOf(l.Patch, l.Via); ok && back.Patch == index && back.Via == dir {
		adj.links[l.Patch][l.Via] = Link{Patch: noPatch}
	}
	adj.links[index][dir] = Link{Patch: noPatch}
}

// neighbourOf returns the link of patch index in direction dir, if any.
func (adj *adjacency) neighbourOf(index int, dir Direction) (Link, bool) {
	r, ok := adj.links[index]
	if !ok || !dir.IsValid() || r[dir].Patch == noPatch {
		return Link{Patch: noPatch}, false
	}
	return r[dir], true
}

// clearNeighboursOf removes every outgoing link of patch index and every
// link pointing to it.
func (adj *adjacency) clearNeighboursOf(index int) {
	delete(adj.links, index)
	for _, r := range adj.links {
		for d := range r {
			if r[d].Patch == index {
				r[d] = Link{Patch: noPatch}
			}
		}
	}
}

// clear drops all links.
func (adj *adjacency) clear() {
	adj.links = make(map[int]*[8]Link)
}
