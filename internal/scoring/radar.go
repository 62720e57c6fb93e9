package scoring

// RatioFloor keeps degenerate axes visibly non-zero on the radar.
const RatioFloor = 0.15

// Point is a 2-D vertex in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// radarAxes declares the four radar axes in vertex order:
// fundamentals points north, risk east, structure south, technical west.
var radarAxes = []struct {
	Category Category
	DX, DY   float64
}{
	{CategoryFundamentals, 0, -1},
	{CategoryRisk, 1, 0},
	{CategoryStructure, 0, 1},
	{CategoryTechnical, -1, 0},
}

// AxisRatio maps a tally to its radar ratio: correct/total floored at
// RatioFloor, and exactly the floor when the tally is empty.
func AxisRatio(t Tally) float64 {
	if t.Total == 0 {
		return RatioFloor
	}
	r := float64(t.Correct) / float64(t.Total)
	if r < RatioFloor {
		return RatioFloor
	}
	return r
}

// RadarPoints computes the four polygon vertices for the given category
// tallies, in axis order, on a circle of the given radius about center.
func RadarPoints(cats map[Category]Tally, center Point, radius float64) []Point {
	pts := make([]Point, 0, len(radarAxes))
	for _, axis := range radarAxes {
		r := AxisRatio(cats[axis.Category]) * radius
		pts = append(pts, Point{
			X: center.X + axis.DX*r,
			Y: center.Y + axis.DY*r,
		})
	}
	return pts
}
