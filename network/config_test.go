package network

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := ConfigFrom(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	c, err = ConfigFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 30, c.UDivPoints)
	assert.True(t, c.MergeTangents)
	assert.InDelta(t, math.Pi/2, c.AlphaV, 1e-15)
}

func TestConfigFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := testconfig.Conf{
		KeyUDiv:          12,
		KeyVDiv:          "14",
		KeyULines:        2,
		KeyMaxOrder:      1,
		KeyAlphaU:        "1.25",
		KeyMaxPatches:    10,
		KeyMergeTangents: false,
	}
	c, err := ConfigFrom(conf)
	require.NoError(t, err)
	assert.Equal(t, 12, c.UDivPoints)
	assert.Equal(t, 14, c.VDivPoints)
	assert.Equal(t, 2, c.UIsoLines)
	assert.Equal(t, 5, c.VIsoLines)
	assert.Equal(t, 1, c.MaxOrder)
	assert.Equal(t, 1.25, c.AlphaU)
	assert.Equal(t, 10, c.MaxPatches)
	assert.False(t, c.MergeTangents)
}

func TestInvalidConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ConfigFrom(testconfig.Conf{KeyAlphaU: "wide"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = ConfigFrom(testconfig.Conf{KeyAlphaV: "3.5"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = ConfigFrom(testconfig.Conf{KeyUDiv: 1})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	_, err = ConfigFrom(testconfig.Conf{KeyMaxOrder: 3})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	c := DefaultConfig()
	c.MaxPatches = -1
	_, err = New(c)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}
