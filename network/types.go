package network

import (
	"errors"

	"github.com/npillmayer/cagd/trigpatch"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cagd.network'
func tracer() tracing.Trace {
	return tracing.Select("cagd.network")
}

var (
	// ErrInvalidIndex indicates a patch index which is out of range or deleted.
	ErrInvalidIndex = errors.New("invalid patch index")
	// ErrIndexOutOfRange indicates a control grid row or column outside of [0,3].
	ErrIndexOutOfRange = trigpatch.ErrIndexOutOfRange
	// ErrIncompatibleDirection indicates directions which cannot be glued together.
	ErrIncompatibleDirection = errors.New("incompatible directions")
	// ErrCapacity indicates that the configured maximum number of patches is reached.
	ErrCapacity = errors.New("patch capacity exhausted")
	// ErrSamePatch indicates an attempt to join or merge a patch with itself.
	ErrSamePatch = errors.New("cannot connect a patch to itself")
	// ErrInvalidConfig indicates an unusable configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SlotState is the life cycle state of a patch index.
type SlotState int8

// A slot is Empty until a patch is stored in it, Active while the patch
// lives, and Tombstoned after deletion. Tombstoned slots are never reused.
const (
	Empty SlotState = iota
	Active
	Tombstoned
)

func (s SlotState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	case Tombstoned:
		return "tombstoned"
	}
	return "<unknown>"
}
