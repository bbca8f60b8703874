package layout

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
)

const (
	rtreeMinChildren = 2
	rtreeMaxChildren = 8
	rtreeTolerance   = 0.01

	// Residential parcels consulted per coverage query.
	coverageNeighbors = 32
)

// residentialSite wraps a residential parcel for R-tree indexing.
type residentialSite struct {
	cell       grid.Cell
	population int
	rect       *rtreego.Rect
}

func (s *residentialSite) Bounds() *rtreego.Rect { return s.rect }

// coverageIndex answers "how close is this site to where people live"
// through an R-tree over residential parcels.
type coverageIndex struct {
	tree  *rtreego.Rtree
	count int
}

func newCoverageIndex(parcels []Parcel) *coverageIndex {
	ci := &coverageIndex{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)}
	for i := range parcels {
		if parcels[i].Role != RoleResidential {
			continue
		}
		p := rtreego.Point{float64(parcels[i].Cell.X), float64(parcels[i].Cell.Y)}
		ci.tree.Insert(&residentialSite{
			cell:       parcels[i].Cell,
			population: parcels[i].Population,
			rect:       p.ToRect(rtreeTolerance),
		})
		ci.count++
	}
	return ci
}

// meanDistance returns the population-weighted mean distance from a cell
// to its nearest residential parcels. Zero when the city has none.
func (ci *coverageIndex) meanDistance(c grid.Cell) float64 {
	if ci.count == 0 {
		return 0
	}
	k := coverageNeighbors
	if ci.count < k {
		k = ci.count
	}
	neighbors := ci.tree.NearestNeighbors(k, rtreego.Point{float64(c.X), float64(c.Y)})

	sum := 0.0
	weight := 0.0
	for _, n := range neighbors {
		site := n.(*residentialSite)
		w := float64(site.population)
		if w < 1 {
			w = 1
		}
		d := math.Hypot(float64(site.cell.X-c.X), float64(site.cell.Y-c.Y))
		sum += w * d
		weight += w
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}

// placeAmenities selects hospital and school sites with a greedy
// maximum-coverage pass: each pick maximizes separation from same-type
// placements while minimizing mean distance to residents. Ties break on
// lowest parcel index. Hospitals are placed before schools; no stream
// draws.
//
// Eligible sites are unpopulated commercial and industrial parcels, so
// placement never displaces housed population, even when density fell back
// onto non-residential cells. Returns InsufficientSpaceError when the
// request exceeds the eligible sites.
func placeAmenities(parcels []Parcel, cfg config.GenerationConfig) (hospitals, schools []Amenity, err error) {
	var candidates []int
	for i := range parcels {
		if parcels[i].Population != 0 {
			continue
		}
		if parcels[i].Role == RoleCommercial || parcels[i].Role == RoleIndustrial {
			candidates = append(candidates, i)
		}
	}

	need := cfg.Hospitals + cfg.Schools
	if need > len(candidates) {
		return nil, nil, &InsufficientSpaceError{
			What:      "amenity sites",
			Requested: need,
			Available: len(candidates),
		}
	}
	if need == 0 {
		return nil, nil, nil
	}

	coverage := newCoverageIndex(parcels)

	pick := func(kind string, role Role, count int) []Amenity {
		var placed []Amenity
		for n := 0; n < count; n++ {
			bestAt := -1
			bestScore := math.Inf(-1)
			for ci, pi := range candidates {
				if pi < 0 {
					continue
				}
				cell := parcels[pi].Cell

				separation := 0.0
				if len(placed) > 0 {
					separation = math.Inf(1)
					for _, a := range placed {
						d := math.Hypot(float64(a.Cell.X-cell.X), float64(a.Cell.Y-cell.Y))
						if d < separation {
							separation = d
						}
					}
				}

				score := separation - coverage.meanDistance(cell)
				// Strict greater-than keeps the lowest-index winner on ties:
				// candidates are scanned in footprint order.
				if score > bestScore {
					bestScore = score
					bestAt = ci
				}
			}
			pi := candidates[bestAt]
			parcels[pi].Role = role
			placed = append(placed, Amenity{Kind: kind, Cell: parcels[pi].Cell})
			candidates[bestAt] = -1
		}
		return placed
	}

	hospitals = pick("hospital", RoleHospital, cfg.Hospitals)
	schools = pick("school", RoleSchool, cfg.Schools)
	return hospitals, schools, nil
}
