package cagd

import "errors"

var (
	// ErrGridSize indicates a control point list which does not hold exactly 16 points.
	ErrGridSize = errors.New("control grid must have 16 points")
)
