// Package level draws the spirit-level scene as a grid of styled cells.
package level

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/tilt"
)

// Kind identifies what occupies a cell.
type Kind int

const (
	KindStripeLight Kind = iota
	KindStripeDark
	KindZone
	KindAxis
	KindCenter
	KindLabel
	KindBubbleCore
	KindBubbleFill
	KindBubbleRim
)

// Cell is one character of the scene.
type Cell struct {
	Kind Kind
	Ch   rune
}

var (
	colorStripeLight = lipgloss.Color("#D8D8D8")
	colorStripeDark  = lipgloss.Color("#C8A2C8")
	colorZone        = lipgloss.Color("#7FD77F")
	colorAxis        = lipgloss.Color("#000000")
	colorCore        = lipgloss.Color("#00FFFF")
	colorFill        = lipgloss.Color("#0000FF")
	colorRim         = lipgloss.Color("#FFFFFF")

	styleStripeLight = lipgloss.NewStyle().Background(colorStripeLight).Foreground(colorAxis)
	styleStripeDark  = lipgloss.NewStyle().Background(colorStripeDark).Foreground(colorAxis)
	styleZone        = lipgloss.NewStyle().Background(colorZone).Foreground(colorAxis)
	styleCore        = lipgloss.NewStyle().Foreground(colorCore)
	styleFill        = lipgloss.NewStyle().Foreground(colorFill)
	styleRim         = lipgloss.NewStyle().Foreground(colorRim).Bold(true)
	styleReadout     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
)

// Grid lays out one frame. Rows are top to bottom.
func Grid(width, height int, off tilt.Offset, g tilt.Geometry) [][]Cell {
	if width < 10 || height < 5 {
		return nil
	}

	l := NewLayout(width, height, g)
	bx, by := tilt.BubbleCenter(0, 0, off)
	bcol, brow := l.ToCell(bx, by)
	radius := l.Cells(g.BubbleRadius, 1)
	zoneHalf := l.Cells(g.Zone.HalfWidth, 1)

	stripeRows := int(math.Round(g.StripeHeight * l.Scale * config.AspectRatio))
	if stripeRows < 1 {
		stripeRows = 1
	}

	grid := make([][]Cell, height)
	for row := range grid {
		grid[row] = make([]Cell, width)
		for col := range grid[row] {
			grid[row][col] = sceneCell(col, row, l, stripeRows, zoneHalf)

			d := CellDistance(col, row, bcol, brow)
			switch {
			case d > radius+0.5:
			case d > radius-0.5:
				grid[row][col] = Cell{Kind: KindBubbleRim, Ch: 'o'}
			case d > radius*0.5:
				grid[row][col] = Cell{Kind: KindBubbleFill, Ch: '█'}
			default:
				grid[row][col] = Cell{Kind: KindBubbleCore, Ch: '█'}
			}
		}
	}

	placeLabel(grid, width-2, l.CenterY-1, 'X')
	placeLabel(grid, l.CenterX+2, 0, 'Y')
	return grid
}

func sceneCell(col, row int, l Layout, stripeRows int, zoneHalf float64) Cell {
	switch {
	case col == l.CenterX && row == l.CenterY:
		return Cell{Kind: KindCenter, Ch: '+'}
	case col == l.CenterX:
		return Cell{Kind: KindAxis, Ch: '|'}
	case row == l.CenterY:
		return Cell{Kind: KindAxis, Ch: '-'}
	}

	zoneRows := math.Max(math.Round(zoneHalf*config.AspectRatio), 1)
	dx := math.Abs(float64(col - l.CenterX))
	dy := math.Abs(float64(row - l.CenterY))
	if dx <= zoneHalf && dy <= zoneRows {
		return Cell{Kind: KindZone, Ch: ' '}
	}

	if (row/stripeRows)%2 == 0 {
		return Cell{Kind: KindStripeLight, Ch: ' '}
	}
	return Cell{Kind: KindStripeDark, Ch: ' '}
}

func placeLabel(grid [][]Cell, col, row int, ch rune) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	if grid[row][col].Kind >= KindBubbleCore {
		return
	}
	grid[row][col] = Cell{Kind: KindLabel, Ch: ch}
}

// Render produces the complete scene as a styled string.
func Render(width, height int, off tilt.Offset, g tilt.Geometry) string {
	grid := Grid(width, height, off, g)
	if grid == nil {
		return ""
	}

	var sb strings.Builder
	for row, cells := range grid {
		for col, c := range cells {
			sb.WriteString(styleFor(grid, row, col, c).Render(string(c.Ch)))
		}
		if row < len(grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// styleFor picks the cell style. Bubble and label cells take the
// background of the stripe they sit on.
func styleFor(grid [][]Cell, row, col int, c Cell) lipgloss.Style {
	bg := styleStripeLight
	if stripeDark(grid, row) {
		bg = styleStripeDark
	}
	switch c.Kind {
	case KindStripeLight:
		return styleStripeLight
	case KindStripeDark:
		return styleStripeDark
	case KindZone:
		return styleZone
	case KindAxis, KindCenter:
		return bg.Bold(true)
	case KindLabel:
		return bg.Bold(true)
	case KindBubbleCore:
		return styleCore.Background(bg.GetBackground())
	case KindBubbleFill:
		return styleFill.Background(bg.GetBackground())
	default:
		return styleRim.Background(bg.GetBackground())
	}
}

func stripeDark(grid [][]Cell, row int) bool {
	for _, c := range grid[row] {
		switch c.Kind {
		case KindStripeDark:
			return true
		case KindStripeLight:
			return false
		}
	}
	return false
}

// RenderReadout produces the numeric line under the scene.
func RenderReadout(r tilt.Reading, off tilt.Offset, width int) string {
	text := fmt.Sprintf("X: %.2f m/s²   Y: %.2f m/s²   dx: %+.1f   dy: %+.1f", r.X, r.Y, off.DX, off.DY)
	line := styleReadout.Render(text)

	pad := (width - lipgloss.Width(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}
