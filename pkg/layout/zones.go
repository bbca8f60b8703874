package layout

import (
	"math"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
	"github.com/il-an/city-generator/pkg/rng"
)

// Noise thresholds splitting the footprint into land-use zones.
const (
	zoneResidentialBelow = 0.55
	zoneCommercialBelow  = 0.75
	zoneIndustrialBelow  = 0.90
)

// cellAreaM2 is the assumed ground area of one grid cell (100m x 100m).
const cellAreaM2 = 100.0 * 100.0

const noiseOctaves = 4

// assignZones tags every footprint cell with a role. Road cells keep
// RoleRoad; the rest are zoned by seed-keyed fractal noise, so zoning is
// independent of stream draw order.
func assignZones(fp *grid.Footprint, seed int64, roadCells map[int]bool) []Parcel {
	parcels := make([]Parcel, 0, fp.Len())
	for _, cell := range fp.Cells() {
		idx := fp.Index(cell.X, cell.Y)
		role := RoleRoad
		if !roadCells[idx] {
			v := rng.FractalNoise(cell.X, cell.Y, uint32(seed), noiseOctaves)
			switch {
			case v < zoneResidentialBelow:
				role = RoleResidential
			case v < zoneCommercialBelow:
				role = RoleCommercial
			case v < zoneIndustrialBelow:
				role = RoleIndustrial
			default:
				role = RoleGreen
			}
		}
		parcels = append(parcels, Parcel{Cell: cell, Index: idx, Role: role})
	}
	return parcels
}

// enforceGreenFloor converts residential and industrial parcels to green
// until the per-capita green-space target is met. Candidate order is
// shuffled on the stream (draw #1).
func enforceGreenFloor(parcels []Parcel, cfg config.GenerationConfig, stream *rng.Stream) {
	if cfg.GreenM2PerCapita <= 0 {
		return
	}
	target := int(math.Ceil(float64(cfg.Population) * cfg.GreenM2PerCapita / cellAreaM2))

	current := 0
	for i := range parcels {
		if parcels[i].Role == RoleGreen {
			current++
		}
	}
	if current >= target {
		return
	}

	var candidates []int
	for i := range parcels {
		if parcels[i].Role == RoleResidential || parcels[i].Role == RoleIndustrial {
			candidates = append(candidates, i)
		}
	}
	stream.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, i := range candidates {
		if current >= target {
			break
		}
		parcels[i].Role = RoleGreen
		current++
	}
}

// sampleHeights assigns building storeys per parcel in footprint order
// (draw #2). Ranges depend on the zone; non-building roles stay at zero.
func sampleHeights(parcels []Parcel, stream *rng.Stream) {
	for i := range parcels {
		switch parcels[i].Role {
		case RoleResidential:
			parcels[i].Stories = stream.IntBetween(2, 6)
		case RoleCommercial:
			parcels[i].Stories = stream.IntBetween(5, 18)
		case RoleIndustrial:
			parcels[i].Stories = stream.IntBetween(3, 8)
		}
	}
}
