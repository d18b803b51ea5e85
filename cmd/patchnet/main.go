/*
Command patchnet builds a small network of trigonometric patches and writes
a top-view preview of it as a PNG image.

	patchnet -continue N,E,NE -lines -o net.png

A default patch is inserted first; every direction given with -continue adds
a patch continuing the first one. Resolution and shape parameters are read
from an application configuration file 'patchnet' (see package network for
the keys), located in the working directory or in $HOME/.config/patchnet.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/cagd/network"
	"github.com/npillmayer/cagd/raster"
	"github.com/npillmayer/cagd/trigpatch"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer writes to trace with key 'patchnet'
func tracer() tracing.Trace {
	return tracing.Select("patchnet")
}

func main() {
	cont := flag.String("continue", "", "comma separated directions to continue the first patch to")
	interpolate := flag.Bool("interpolate", false, "first patch interpolates the wave grid")
	lines := flag.Bool("lines", false, "draw iso-lines")
	mode := flag.String("mode", "filled", "draw mode: filled, lines or points")
	size := flag.Int("size", 600, "width and height of the image in pixels")
	out := flag.String("o", "patchnet.png", "output file")
	flag.Parse()

	conf := setup()
	if err := run(conf, *cont, *interpolate, *lines, *mode, *size, *out); err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup installs the application configuration and the tracers.
func setup() schuko.Configuration {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := viperadapter.New("patchnet")
	conf.Init()
	gconf.Initialize(conf)
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	if conf.IsSet("tracelevel") {
		level := tracing.TraceLevelFromString(conf.GetString("tracelevel"))
		tracer().SetTraceLevel(level)
	}
	return conf
}

func run(conf schuko.Configuration, cont string, interpolate, lines bool, mode string, size int, out string) error {
	c, err := network.ConfigFrom(conf)
	if err != nil {
		return err
	}
	n, err := network.New(c)
	if err != nil {
		return err
	}
	var first int
	if interpolate {
		first, err = n.InsertInterpolatingPatch(network.WaveControlPoints(), network.Gold())
	} else {
		first, err = n.InsertDefaultPatch(network.Brass())
	}
	if err != nil {
		return err
	}
	for _, s := range strings.Split(cont, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		d, err := network.ParseDirection(s)
		if err != nil {
			return err
		}
		if _, err := n.ContinuePatch(first, d); err != nil {
			return err
		}
	}
	drawMode, err := parseMode(mode)
	if err != nil {
		return err
	}
	order := network.RenderSurface
	if lines {
		order |= network.RenderULines | network.RenderVLines
	}
	var meshes []*trigpatch.Mesh
	for _, i := range n.Indices() {
		m, err := n.Image(i)
		if err != nil {
			return err
		}
		meshes = append(meshes, m)
	}
	canvas, err := raster.New(size, size, raster.Fit(0.5, meshes...))
	if err != nil {
		return err
	}
	if err := n.RenderEveryPatch(canvas, order, drawMode); err != nil {
		return err
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("wrote %d patches to %s", n.Len(), out)
	return f.Close()
}

func parseMode(s string) (network.DrawMode, error) {
	switch strings.ToLower(s) {
	case "filled":
		return network.DrawFilled, nil
	case "lines":
		return network.DrawLineStrip, nil
	case "points":
		return network.DrawPoints, nil
	}
	return network.DrawFilled, fmt.Errorf("unknown draw mode %q", s)
}
