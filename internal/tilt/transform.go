// Package tilt maps raw accelerometer readings to a bubble displacement.
package tilt

import (
	"math"

	"levelkit.klederson.com/internal/config"
)

// Reading is one accelerometer sample on the x and y axes, in m/s².
type Reading struct {
	X float64
	Y float64
}

// Offset is the bubble displacement from the scene center, in scene units.
// Both axes stay within [-MaxOffset, MaxOffset].
type Offset struct {
	DX float64
	DY float64
}

// Params are the constants of the transform.
type Params struct {
	Gravity   float64 // m/s² that map to a full-scale offset
	MaxOffset float64 // Per-axis bound of the offset
}

// DefaultParams returns the built-in transform constants.
func DefaultParams() Params {
	return Params{
		Gravity:   config.Gravity,
		MaxOffset: config.MaxOffset,
	}
}

// Transform converts a reading into a clamped bubble offset.
// Each axis is scaled by MaxOffset/Gravity and clamped on its own, so
// readings beyond ±Gravity saturate at ±MaxOffset. A non-finite axis
// yields a zero offset on that axis.
func Transform(r Reading, p Params) Offset {
	return Offset{
		DX: axisOffset(r.X, p),
		DY: axisOffset(r.Y, p),
	}
}

func axisOffset(v float64, p Params) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	// Zero or non-finite params make the scale undefined.
	scaled := v / p.Gravity * p.MaxOffset
	if math.IsNaN(scaled) {
		return 0
	}
	return Clamp(scaled, -p.MaxOffset, p.MaxOffset)
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// BubbleCenter returns where the bubble is drawn for a scene centered at
// (cx, cy). The x axis is mirrored so the bubble rolls away from the low
// side: x = cx - DX, y = cy + DY.
func BubbleCenter(cx, cy float64, o Offset) (x, y float64) {
	return cx - o.DX, cy + o.DY
}
