// Package grid builds the square generation grid and its circular footprint.
// Everything here is deterministic: no randomness enters before layout.
package grid

import (
	"math"

	"github.com/il-an/city-generator/pkg/config"
)

// Cell is one addressable square of the generation grid.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Footprint is the subset of grid cells eligible for city placement,
// bounded by the configured radius fraction.
type Footprint struct {
	size   int
	center float64
	radius float64
	cells  []Cell
	member []bool
}

// BuildFootprint carves the circular footprint out of a gridSize × gridSize
// grid. The center sits at (gridSize/2, gridSize/2) and the radius is
// radiusFraction × gridSize/2; a cell belongs iff its Euclidean distance
// from the center is within the radius. The cell nearest the center is
// always included, so the footprint is non-empty for any positive radius
// fraction.
func BuildFootprint(gridSize int, radiusFraction float64) (*Footprint, error) {
	if gridSize < 1 {
		return nil, &config.Error{Field: "grid_size", Message: "must be at least 1"}
	}
	if radiusFraction <= 0 || radiusFraction > 1 {
		return nil, &config.Error{Field: "radius_fraction", Message: "must be in (0, 1]"}
	}

	center := float64(gridSize) / 2
	radius := radiusFraction * center

	fp := &Footprint{
		size:   gridSize,
		center: center,
		radius: radius,
		member: make([]bool, gridSize*gridSize),
	}

	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if math.Hypot(dx, dy) <= radius {
				fp.member[y*gridSize+x] = true
				fp.cells = append(fp.cells, Cell{X: x, Y: y})
			}
		}
	}

	if len(fp.cells) == 0 {
		// Seed the nearest cell so a positive radius never yields nothing.
		c := Cell{X: (gridSize - 1) / 2, Y: (gridSize - 1) / 2}
		fp.member[c.Y*gridSize+c.X] = true
		fp.cells = append(fp.cells, c)
	}

	return fp, nil
}

// Size returns the grid dimension.
func (fp *Footprint) Size() int { return fp.size }

// Center returns the grid center coordinate.
func (fp *Footprint) Center() float64 { return fp.center }

// Radius returns the developed radius in cell units.
func (fp *Footprint) Radius() float64 { return fp.radius }

// Len returns the number of cells in the footprint.
func (fp *Footprint) Len() int { return len(fp.cells) }

// Cells returns the footprint cells in row-major order.
func (fp *Footprint) Cells() []Cell { return fp.cells }

// Contains reports whether (x, y) lies inside the footprint.
func (fp *Footprint) Contains(x, y int) bool {
	if x < 0 || y < 0 || x >= fp.size || y >= fp.size {
		return false
	}
	return fp.member[y*fp.size+x]
}

// Index returns the row-major cell index of (x, y). Used as the
// deterministic tie-breaker throughout layout.
func (fp *Footprint) Index(x, y int) int {
	return y*fp.size + x
}

// DistanceFromCenter returns the Euclidean distance of a cell from the
// grid center.
func (fp *Footprint) DistanceFromCenter(c Cell) float64 {
	return math.Hypot(float64(c.X)-fp.center, float64(c.Y)-fp.center)
}
