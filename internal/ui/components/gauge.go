package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/egfinancefx/exam/internal/ui/theme"
)

// Gauge renders a semicircular arc filled to a percentage, with the
// number centered beneath it. Terminal cells are taller than wide, so
// the vertical radius is halved to keep the arc round on screen.
type Gauge struct {
	Percent int // 0..100
	Radius  int // horizontal radius in columns, default 12
}

// NewGauge creates a gauge for an overall percentage.
func NewGauge(percent int) Gauge {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return Gauge{Percent: percent, Radius: 12}
}

// View renders the arc. The sweep runs left (0%) over the top to
// right (100%).
func (g Gauge) View() string {
	rx := float64(g.Radius)
	ry := rx / 2
	rows := int(ry) + 1
	cols := g.Radius*2 + 1

	sweep := float64(g.Percent) / 100 * math.Pi

	filledStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(theme.Border)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		// y runs from the top of the arc down to the baseline.
		y := ry - float64(row)
		for col := 0; col < cols; col++ {
			x := float64(col) - rx

			// Normalized radial distance on the half-ellipse.
			d := math.Sqrt((x*x)/(rx*rx) + (y*y)/(ry*ry))
			if d < 0.8 || d > 1.1 {
				b.WriteByte(' ')
				continue
			}

			// Angle from the left end of the arc (0) to the right (π).
			angle := math.Pi - math.Atan2(y/ry, x/rx)
			if angle < 0 || angle > math.Pi {
				b.WriteByte(' ')
				continue
			}

			if angle <= sweep {
				b.WriteString(filledStyle.Render("█"))
			} else {
				b.WriteString(emptyStyle.Render("░"))
			}
		}
		b.WriteByte('\n')
	}

	label := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d%%", g.Percent))
	pad := (cols - lipgloss.Width(label)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + label)

	return b.String()
}
