package layout

import (
	"math"

	"github.com/il-an/city-generator/pkg/grid"
)

// buildRoadSkeleton lays the base connective structure: an axial cross
// through the city center plus square ring roads at 50% and 90% of the
// developed radius. Fully deterministic, no stream draws.
//
// Returns the set of road cell indices and the centreline segments kept
// for geometry export.
func buildRoadSkeleton(fp *grid.Footprint) (map[int]bool, []RoadSegment) {
	c := fp.Center()
	r := fp.Radius()
	roadCells := make(map[int]bool)

	mark := func(x, y int) {
		if fp.Contains(x, y) {
			roadCells[fp.Index(x, y)] = true
		}
	}

	cx := int(math.Round(c))
	lo := int(math.Floor(c - r))
	hi := int(math.Ceil(c + r))

	// Axial cross.
	for y := lo; y <= hi; y++ {
		mark(cx, y)
	}
	for x := lo; x <= hi; x++ {
		mark(x, cx)
	}

	segments := []RoadSegment{
		{X1: c, Y1: c - r, X2: c, Y2: c + r},
		{X1: c - r, Y1: c, X2: c + r, Y2: c},
	}

	// Square ring roads.
	for _, frac := range []float64{0.5, 0.9} {
		rr := r * frac
		x0 := int(math.Round(c - rr))
		x1 := int(math.Round(c + rr))
		for x := x0; x <= x1; x++ {
			mark(x, x0)
			mark(x, x1)
		}
		for y := x0; y <= x1; y++ {
			mark(x0, y)
			mark(x1, y)
		}

		f0, f1 := c-rr, c+rr
		segments = append(segments,
			RoadSegment{X1: f0, Y1: f0, X2: f1, Y2: f0},
			RoadSegment{X1: f1, Y1: f0, X2: f1, Y2: f1},
			RoadSegment{X1: f1, Y1: f1, X2: f0, Y2: f1},
			RoadSegment{X1: f0, Y1: f1, X2: f0, Y2: f0},
		)
	}

	// Degenerate footprints can miss every skeleton line. Seed a road at
	// the cell nearest the center so the network is never empty.
	if len(roadCells) == 0 && fp.Len() > 0 {
		nearest := fp.Cells()[0]
		best := fp.DistanceFromCenter(nearest)
		for _, cell := range fp.Cells()[1:] {
			if d := fp.DistanceFromCenter(cell); d < best {
				best = d
				nearest = cell
			}
		}
		roadCells[fp.Index(nearest.X, nearest.Y)] = true
	}

	return roadCells, segments
}
