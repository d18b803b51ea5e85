package network

import (
	"fmt"
	"strings"
)

// Direction is one of the 8 compass directions. Edges (N, E, S, W) and
// corners (NE, SE, SW, NW) alternate, clockwise.
//
// Rows of a control grid follow u, columns follow v: E is row 3, W is row 0,
// N is column 3 and S is column 0.
type Direction int8

// Compass directions, in cyclic order.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Directions lists all compass directions in cyclic order.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// IsValid is a predicate: is d one of the 8 compass directions?
func (d Direction) IsValid() bool {
	return d >= N && d <= NW
}

// Opposite is d rotated by four steps.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Rotate returns d rotated clockwise by n steps (counterclockwise for n < 0).
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%8 + 8) % 8)
}

// IsEdge is a predicate: does d denote an edge of a patch?
func (d Direction) IsEdge() bool {
	return d.IsValid() && d%2 == 0
}

// IsCorner is a predicate: does d denote a corner of a patch?
func (d Direction) IsCorner() bool {
	return d.IsValid() && d%2 == 1
}

// ParseDirection reads a compass direction like "ne" or "SW".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return N, fmt.Errorf("unknown compass direction %q", s)
}
