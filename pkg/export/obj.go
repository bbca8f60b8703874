package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/il-an/city-generator/pkg/layout"
)

const (
	roadThickness = 0.05
	roadWidth     = 0.3
)

// writeOBJ emits the city as a Wavefront OBJ mesh: one box per building
// parcel extruded to its storey height, and one thin slab per road
// centreline. Green and road parcels contribute no building geometry.
// Output is fully determined by the model.
func writeOBJ(w io.Writer, m *layout.CityModel) error {
	bw := bufio.NewWriter(w)
	vertexOffset := 1

	for _, p := range m.Parcels {
		switch p.Role {
		case layout.RoleRoad, layout.RoleGreen:
			continue
		}
		h := float64(p.Stories)
		if h <= 0 {
			h = 1
		}
		x0, y0 := float64(p.Cell.X), float64(p.Cell.Y)
		writeBox(bw, [4][2]float64{
			{x0, y0},
			{x0 + 1, y0},
			{x0 + 1, y0 + 1},
			{x0, y0 + 1},
		}, 0, h, &vertexOffset)
	}

	for _, r := range m.Roads {
		dx, dy := r.X2-r.X1, r.Y2-r.Y1
		length := math.Hypot(dx, dy)
		if length < 1e-6 {
			continue
		}
		// Perpendicular half-width offset around the centreline.
		hx := -dy / length * roadWidth / 2
		hy := dx / length * roadWidth / 2
		writeBox(bw, [4][2]float64{
			{r.X1 + hx, r.Y1 + hy},
			{r.X1 - hx, r.Y1 - hy},
			{r.X2 - hx, r.Y2 - hy},
			{r.X2 + hx, r.Y2 + hy},
		}, 0, roadThickness, &vertexOffset)
	}

	return bw.Flush()
}

// writeBox emits a rectangular prism over the four base corners, given in
// winding order, as 8 vertices and 12 triangular faces.
func writeBox(w io.Writer, base [4][2]float64, z0, z1 float64, vertexOffset *int) {
	for _, c := range base {
		fmt.Fprintf(w, "v %g %g %g\n", c[0], c[1], z0)
	}
	for _, c := range base {
		fmt.Fprintf(w, "v %g %g %g\n", c[0], c[1], z1)
	}

	v := *vertexOffset
	faces := [12][3]int{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 7, 6}, {4, 6, 5}, // top
		{0, 4, 5}, {0, 5, 1}, // sides
		{1, 5, 6}, {1, 6, 2},
		{2, 6, 7}, {2, 7, 3},
		{3, 7, 4}, {3, 4, 0},
	}
	for _, f := range faces {
		fmt.Fprintf(w, "f %d %d %d\n", v+f[0], v+f[1], v+f[2])
	}
	*vertexOffset += 8
}
