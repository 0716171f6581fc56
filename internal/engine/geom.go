package engine

import (
	"math"
	"math/rand"
)

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Finite reports whether both components are real numbers.
func (v Vec) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Box is an axis-aligned bounding box in world units.
// Edges are inclusive: boxes that touch overlap.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds a box from a top-left corner and a size.
func BoxAt(pos, size Vec) Box {
	return Box{Left: pos.X, Top: pos.Y, Right: pos.X + size.X, Bottom: pos.Y + size.Y}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Valid reports whether the box has positive area and finite edges.
func (b Box) Valid() bool {
	for _, f := range [...]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return b.Right > b.Left && b.Bottom > b.Top
}

// Contains reports whether other lies entirely inside b.
func (b Box) Contains(other Box) bool {
	return other.Left >= b.Left && other.Right <= b.Right &&
		other.Top >= b.Top && other.Bottom <= b.Bottom
}

// Range is an inclusive float interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a value from the range. A reversed or empty range yields Min.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// IntRange is an inclusive integer interval sampled uniformly.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Sample draws a value from the range. A reversed or empty range yields Min.
func (r IntRange) Sample(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}
