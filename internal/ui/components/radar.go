package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/scoring"
	"github.com/egfinancefx/exam/internal/ui/theme"
)

// Radar plots the four skill axes as a character-cell polygon. The
// geometry comes from scoring.RadarPoints in its canonical 300x300
// viewport and is scaled down onto the grid; terminal cells are roughly
// twice as tall as wide, so the Y axis is compressed to keep the shape
// square-ish on screen.
type Radar struct {
	Categories map[scoring.Category]scoring.Tally
	Width      int // grid columns, default 41
	Height     int // grid rows, default 21
}

// NewRadar creates a radar chart for the given category tallies.
func NewRadar(cats map[scoring.Category]scoring.Tally) Radar {
	return Radar{Categories: cats, Width: 41, Height: 21}
}

const (
	radarViewport = 300.0
	radarCenter   = 150.0
	radarRadius   = 110.0
)

// View renders the radar grid with axis labels.
func (r Radar) View() string {
	w, h := r.Width, r.Height
	if w < 11 || h < 7 {
		return ""
	}

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx, cy := w/2, h/2

	// Axis spokes at full radius.
	for y := 0; y < h; y++ {
		grid[y][cx] = '·'
	}
	for x := 0; x < w; x++ {
		grid[cy][x] = '·'
	}
	grid[cy][cx] = '+'

	pts := scoring.RadarPoints(r.Categories, scoring.Point{X: radarCenter, Y: radarCenter}, radarRadius)

	gridPts := make([][2]int, len(pts))
	for i, p := range pts {
		gridPts[i] = r.toGrid(p, cx, cy)
	}

	for i := range gridPts {
		a, b := gridPts[i], gridPts[(i+1)%len(gridPts)]
		drawLine(grid, a[0], a[1], b[0], b[1])
	}
	for _, gp := range gridPts {
		if gp[1] >= 0 && gp[1] < h && gp[0] >= 0 && gp[0] < w {
			grid[gp[1]][gp[0]] = '●'
		}
	}

	lines := make([]string, h)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	chart := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(lines, "\n"))

	return r.labelRow(scoring.CategoryFundamentals) + "\n" +
		chart + "\n" +
		r.labelRow(scoring.CategoryStructure) + "\n" +
		r.sideLabels()
}

// toGrid maps a viewport point onto grid cells around (cx, cy).
func (r Radar) toGrid(p scoring.Point, cx, cy int) [2]int {
	halfW := float64(r.Width-1) / 2
	halfH := float64(r.Height-1) / 2
	gx := cx + int(math.Round((p.X-radarCenter)/radarViewport*2*halfW))
	gy := cy + int(math.Round((p.Y-radarCenter)/radarViewport*2*halfH))
	return [2]int{gx, gy}
}

func (r Radar) labelRow(c scoring.Category) string {
	t := r.Categories[c]
	label := fmt.Sprintf("%s %d/%d", c, t.Correct, t.Total)
	pad := (r.Width - len(label)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + theme.Subtitle.Render(label)
}

func (r Radar) sideLabels() string {
	west := r.Categories[scoring.CategoryTechnical]
	east := r.Categories[scoring.CategoryRisk]
	left := fmt.Sprintf("◀ %s %d/%d", scoring.CategoryTechnical, west.Correct, west.Total)
	right := fmt.Sprintf("%s %d/%d ▶", scoring.CategoryRisk, east.Correct, east.Total)

	gap := r.Width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return theme.Subtitle.Render(left + strings.Repeat(" ", gap) + right)
}

// drawLine rasterizes a segment onto the grid without overwriting vertices.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			if grid[y0][x0] != '●' {
				grid[y0][x0] = '*'
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
