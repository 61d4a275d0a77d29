package tilt

import (
	"math"

	"levelkit.klederson.com/internal/config"
)

// LevelZone is the fixed square around the scene origin that marks "level".
type LevelZone struct {
	HalfWidth float64
}

// Contains reports whether the offset sits inside the zone.
func (z LevelZone) Contains(o Offset) bool {
	return math.Abs(o.DX) <= z.HalfWidth && math.Abs(o.DY) <= z.HalfWidth
}

// Geometry holds the static scene constants handed to the renderer.
type Geometry struct {
	MaxOffset    float64
	BubbleRadius float64
	Zone         LevelZone
	StripeHeight float64
}

// DefaultGeometry returns the built-in scene geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		MaxOffset:    config.MaxOffset,
		BubbleRadius: config.BubbleRadius,
		Zone:         LevelZone{HalfWidth: config.LevelThreshold},
		StripeHeight: config.StripeHeight,
	}
}

// Extent is the largest distance from the center that any drawn part of
// the bubble can reach.
func (g Geometry) Extent() float64 {
	return g.MaxOffset + g.BubbleRadius
}

// FromConfig builds transform params and geometry from a loaded config.
func FromConfig(l config.Level) (Params, Geometry) {
	p := Params{Gravity: l.Gravity, MaxOffset: l.MaxOffset}
	g := Geometry{
		MaxOffset:    l.MaxOffset,
		BubbleRadius: l.BubbleRadius,
		Zone:         LevelZone{HalfWidth: l.LevelThreshold},
		StripeHeight: l.StripeHeight,
	}
	return p, g
}
