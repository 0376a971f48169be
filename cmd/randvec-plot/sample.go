package main

import (
	"fmt"

	"nethermath/internal/config"
	"nethermath/internal/plot"
	"nethermath/pkg/randvec"
	"nethermath/pkg/vecmath"
)

// batch holds the samples drawn for one distribution. Exactly one of flat
// and solid is set.
type batch struct {
	name  string
	flat  []vecmath.Vec2
	solid []vecmath.Vec3
}

func sample(name string, n int, capAngle float64) (batch, error) {
	if !config.IsDistribution(name) {
		return batch{}, fmt.Errorf("%w: %q", config.ErrUnknownDistribution, name)
	}
	b := batch{name: name}
	if config.Is3D(name) {
		b.solid = draw3(n, solidSampler(name, capAngle))
	} else {
		b.flat = draw2(n, flatSampler(name))
	}
	return b, nil
}

func flatSampler(name string) func() vecmath.Vec2 {
	switch name {
	case config.DistCircle:
		return randvec.Circle
	case config.DistDisk:
		return randvec.Disk
	}
	return randvec.Random2
}

func solidSampler(name string, capAngle float64) func() vecmath.Vec3 {
	switch name {
	case config.DistSphere:
		return randvec.Sphere
	case config.DistHemisphere:
		return randvec.Hemisphere
	case config.DistCosHemisphere:
		return randvec.CosHemisphere
	case config.DistCap:
		return func() vecmath.Vec3 { return randvec.Cap(capAngle) }
	}
	return randvec.Random3
}

func draw2(n int, f func() vecmath.Vec2) []vecmath.Vec2 {
	out := make([]vecmath.Vec2, n)
	for i := range out {
		out[i] = f()
	}
	return out
}

func draw3(n int, f func() vecmath.Vec3) []vecmath.Vec3 {
	out := make([]vecmath.Vec3, n)
	for i := range out {
		out[i] = f()
	}
	return out
}

// panels lays 2D samples on one panel and 3D samples on a top and a side view.
func (b batch) panels() []plot.Panel {
	if !config.Is3D(b.name) {
		return []plot.Panel{{Title: b.name, Points: b.flat}}
	}
	return []plot.Panel{
		plot.TopView(b.name+" (x/z)", b.solid),
		plot.SideView(b.name+" (x/y)", b.solid),
	}
}

func (b batch) summary() plot.Summary {
	if !config.Is3D(b.name) {
		return plot.Summarize(plot.Lift(b.flat))
	}
	return plot.Summarize(b.solid)
}
