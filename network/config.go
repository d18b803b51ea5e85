package network

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/cagd/trigpatch"
	"github.com/npillmayer/schuko"
)

// Config holds the resolution and shape settings every patch image of a
// network is generated with.
type Config struct {
	UDivPoints    int     // surface samples in u direction
	VDivPoints    int     // surface samples in v direction
	UIsoLines     int     // number of lines of constant u
	VIsoLines     int     // number of lines of constant v
	IsoDivPoints  int     // samples along each iso-line
	MaxOrder      int     // highest derivative order stored with iso-lines
	AlphaU        float64 // shape parameter in u direction
	AlphaV        float64 // shape parameter in v direction
	MaxPatches    int     // upper bound for allocated indices, 0 = unlimited
	MergeTangents bool    // MergePatches also averages cross-boundary tangents
}

// DefaultConfig returns the standard preview settings: 30×30
// surface samples and 5 iso-lines per direction.
func DefaultConfig() Config {
	return Config{
		UDivPoints:    30,
		VDivPoints:    30,
		UIsoLines:     5,
		VIsoLines:     5,
		IsoDivPoints:  30,
		MaxOrder:      2,
		AlphaU:        math.Pi / 2,
		AlphaV:        math.Pi / 2,
		MaxPatches:    0,
		MergeTangents: true,
	}
}

// Validate checks a configuration for usable values.
func (c Config) Validate() error {
	switch {
	case c.UDivPoints < 2 || c.VDivPoints < 2:
		return fmt.Errorf("%w: need at least 2 division points, have %d×%d",
			ErrInvalidConfig, c.UDivPoints, c.VDivPoints)
	case c.UIsoLines < 1 || c.VIsoLines < 1:
		return fmt.Errorf("%w: need at least one iso-line per direction", ErrInvalidConfig)
	case c.IsoDivPoints < 2:
		return fmt.Errorf("%w: iso-lines need at least 2 division points", ErrInvalidConfig)
	case c.MaxOrder < 0 || c.MaxOrder > trigpatch.MaxOrder:
		return fmt.Errorf("%w: derivative order %d", ErrInvalidConfig, c.MaxOrder)
	case c.MaxPatches < 0:
		return fmt.Errorf("%w: negative patch capacity", ErrInvalidConfig)
	}
	if _, err := trigpatch.NewBasis(c.AlphaU); err != nil {
		return fmt.Errorf("%w: αu: %v", ErrInvalidConfig, err)
	}
	if _, err := trigpatch.NewBasis(c.AlphaV); err != nil {
		return fmt.Errorf("%w: αv: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Configuration keys read by ConfigFrom.
const (
	KeyUDiv          = "patch.udiv"
	KeyVDiv          = "patch.vdiv"
	KeyULines        = "patch.ulines"
	KeyVLines        = "patch.vlines"
	KeyIsoDiv        = "patch.isodiv"
	KeyMaxOrder      = "patch.maxorder"
	KeyAlphaU        = "patch.alphau"
	KeyAlphaV        = "patch.alphav"
	KeyMaxPatches    = "patch.max"
	KeyMergeTangents = "patch.mergetangents"
)

// ConfigFrom reads a configuration from an application configuration.
// Keys which are not set keep their default values.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	c := DefaultConfig()
	if conf == nil {
		return c, nil
	}
	ints := []struct {
		key string
		val *int
	}{
		{KeyUDiv, &c.UDivPoints},
		{KeyVDiv, &c.VDivPoints},
		{KeyULines, &c.UIsoLines},
		{KeyVLines, &c.VIsoLines},
		{KeyIsoDiv, &c.IsoDivPoints},
		{KeyMaxOrder, &c.MaxOrder},
		{KeyMaxPatches, &c.MaxPatches},
	}
	for _, i := range ints {
		if conf.IsSet(i.key) {
			*i.val = conf.GetInt(i.key)
		}
	}
	floats := []struct {
		key string
		val *float64
	}{
		{KeyAlphaU, &c.AlphaU},
		{KeyAlphaV, &c.AlphaV},
	}
	for _, f := range floats {
		if !conf.IsSet(f.key) {
			continue
		}
		x, err := strconv.ParseFloat(conf.GetString(f.key), 64)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.key, err)
		}
		*f.val = x
	}
	if conf.IsSet(KeyMergeTangents) {
		c.MergeTangents = conf.GetBool(KeyMergeTangents)
	}
	tracer().Debugf("configuration: %+v", c)
	return c, c.Validate()
}
