package layout

import (
	"sort"

	"github.com/il-an/city-generator/pkg/grid"
)

// distributePopulation spreads the configured population across residential
// parcels, weighted by closeness to the city center (closer cells are
// denser). Largest-remainder rounding guarantees the shares sum exactly to
// the target. No stream draws.
//
// When zoning left no residential parcel, every non-road parcel becomes a
// fallback candidate. An InsufficientSpaceError is returned only when there
// is nothing housable at all.
func distributePopulation(parcels []Parcel, fp *grid.Footprint, population int) (int, error) {
	var targets []int
	for i := range parcels {
		if parcels[i].Role == RoleResidential {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		for i := range parcels {
			if parcels[i].Role != RoleRoad {
				targets = append(targets, i)
			}
		}
	}
	if len(targets) == 0 {
		return 0, &InsufficientSpaceError{
			What:      "housable parcels",
			Requested: population,
			Available: 0,
		}
	}

	weights := make([]float64, len(targets))
	total := 0.0
	for i, pi := range targets {
		w := 1.0 / (1.0 + fp.DistanceFromCenter(parcels[pi].Cell))
		weights[i] = w
		total += w
	}

	type remainder struct {
		target int // position in targets
		frac   float64
	}

	assigned := 0
	remainders := make([]remainder, len(targets))
	for i, pi := range targets {
		exact := float64(population) * weights[i] / total
		base := int(exact)
		parcels[pi].Population = base
		assigned += base
		remainders[i] = remainder{target: i, frac: exact - float64(base)}
	}

	// Hand out the rounding deficit by largest fractional part, ties by
	// lowest parcel index.
	sort.SliceStable(remainders, func(a, b int) bool {
		if remainders[a].frac != remainders[b].frac {
			return remainders[a].frac > remainders[b].frac
		}
		return parcels[targets[remainders[a].target]].Index < parcels[targets[remainders[b].target]].Index
	})
	for i := 0; assigned < population; i++ {
		pi := targets[remainders[i%len(remainders)].target]
		parcels[pi].Population++
		assigned++
	}

	return assigned, nil
}
