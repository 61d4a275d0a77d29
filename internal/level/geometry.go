package level

import (
	"math"

	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/tilt"
)

// Layout maps scene units onto terminal cells.
type Layout struct {
	Width, Height    int
	CenterX, CenterY int
	Scale            float64 // columns per scene unit
}

// NewLayout fits the scene extent (max offset plus bubble radius) into
// a width x height cell area.
func NewLayout(width, height int, g tilt.Geometry) Layout {
	cx := width / 2
	cy := height / 2
	reach := math.Min(float64(cx-1), float64(cy-1)/config.AspectRatio)
	if reach < 1 {
		reach = 1
	}
	return Layout{
		Width:   width,
		Height:  height,
		CenterX: cx,
		CenterY: cy,
		Scale:   reach / g.Extent(),
	}
}

// ToCell converts a scene position relative to the center into a
// fractional cell position.
func (l Layout) ToCell(x, y float64) (col, row float64) {
	return float64(l.CenterX) + x*l.Scale, float64(l.CenterY) + y*l.Scale*config.AspectRatio
}

// Cells converts a scene length into columns, never less than floor.
func (l Layout) Cells(units, floor float64) float64 {
	return math.Max(units*l.Scale, floor)
}

// CellDistance computes the distance in columns between a cell and a
// point, accounting for terminal aspect ratio.
func CellDistance(col, row int, px, py float64) float64 {
	dx := float64(col) - px
	dy := (float64(row) - py) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}
