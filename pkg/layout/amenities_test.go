package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
)

func TestAmenityCountsExact(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 40
	cfg.Population = 30000
	cfg.Hospitals = 3
	cfg.Schools = 5
	m := genModel(t, cfg)

	if len(m.Hospitals) != 3 {
		t.Errorf("hospitals = %d, want 3", len(m.Hospitals))
	}
	if len(m.Schools) != 5 {
		t.Errorf("schools = %d, want 5", len(m.Schools))
	}

	counts := m.RoleCounts()
	if counts[RoleHospital] != 3 || counts[RoleSchool] != 5 {
		t.Errorf("parcel roles disagree with placements: %d hospitals, %d schools",
			counts[RoleHospital], counts[RoleSchool])
	}

	for _, h := range m.Hospitals {
		p := m.ParcelAt(h.Cell.X, h.Cell.Y)
		if p == nil || p.Role != RoleHospital {
			t.Errorf("ParcelAt(%d,%d) does not resolve to the placed hospital", h.Cell.X, h.Cell.Y)
		}
	}
	for _, s := range m.Schools {
		p := m.ParcelAt(s.Cell.X, s.Cell.Y)
		if p == nil || p.Role != RoleSchool {
			t.Errorf("ParcelAt(%d,%d) does not resolve to the placed school", s.Cell.X, s.Cell.Y)
		}
	}
}

func TestAmenitiesStaySeparated(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 40
	cfg.Population = 30000
	cfg.Hospitals = 4
	m := genModel(t, cfg)

	for i := 0; i < len(m.Hospitals); i++ {
		for j := i + 1; j < len(m.Hospitals); j++ {
			a, b := m.Hospitals[i].Cell, m.Hospitals[j].Cell
			if a == b {
				t.Fatalf("hospitals %d and %d share cell (%d,%d)", i, j, a.X, a.Y)
			}
		}
	}

	// Greedy coverage should spread same-type sites rather than cluster
	// them: the mean pairwise separation stays above a couple of cells.
	total, pairs := 0.0, 0
	for i := 0; i < len(m.Hospitals); i++ {
		for j := i + 1; j < len(m.Hospitals); j++ {
			a, b := m.Hospitals[i].Cell, m.Hospitals[j].Cell
			total += math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
			pairs++
		}
	}
	if avg := total / float64(pairs); avg < 2 {
		t.Errorf("hospitals cluster too tightly: mean separation %.2f", avg)
	}
}

func TestZeroAmenitiesRequested(t *testing.T) {
	cfg := smallCityConfig()
	cfg.Hospitals = 0
	cfg.Schools = 0
	m := genModel(t, cfg)

	if len(m.Hospitals) != 0 || len(m.Schools) != 0 {
		t.Errorf("expected no amenities, got %d hospitals, %d schools",
			len(m.Hospitals), len(m.Schools))
	}
}

// allCommercialParcels builds a footprint whose every cell is a commercial
// parcel, forcing the density fallback onto amenity-eligible cells.
func allCommercialParcels(t *testing.T, gridSize int) (*grid.Footprint, []Parcel) {
	t.Helper()
	fp, err := grid.BuildFootprint(gridSize, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	var parcels []Parcel
	for _, c := range fp.Cells() {
		parcels = append(parcels, Parcel{Cell: c, Index: fp.Index(c.X, c.Y), Role: RoleCommercial})
	}
	return fp, parcels
}

func TestAmenitiesSkipPopulatedFallbackParcels(t *testing.T) {
	fp, parcels := allCommercialParcels(t, 8)

	// A small population leaves most fallback parcels unpopulated.
	if _, err := distributePopulation(parcels, fp, 3); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Hospitals, cfg.Schools = 1, 1
	hospitals, schools, err := placeAmenities(parcels, cfg)
	if err != nil {
		t.Fatalf("placeAmenities: %v", err)
	}
	for _, a := range append(hospitals, schools...) {
		for i := range parcels {
			if parcels[i].Cell == a.Cell && parcels[i].Population != 0 {
				t.Errorf("amenity at (%d,%d) landed on a populated parcel", a.Cell.X, a.Cell.Y)
			}
		}
	}
}

func TestAmenityShortfallWhenFallbackFillsEverything(t *testing.T) {
	fp, parcels := allCommercialParcels(t, 6)

	// Enough population that every fallback parcel carries a share, so no
	// amenity site remains eligible.
	if _, err := distributePopulation(parcels, fp, 10000); err != nil {
		t.Fatal(err)
	}
	for i := range parcels {
		if parcels[i].Population == 0 {
			t.Fatalf("parcel (%d,%d) unexpectedly unpopulated", parcels[i].Cell.X, parcels[i].Cell.Y)
		}
	}

	cfg := config.Default()
	cfg.Hospitals, cfg.Schools = 1, 0
	_, _, err := placeAmenities(parcels, cfg)
	var ise *InsufficientSpaceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InsufficientSpaceError, got %T: %v", err, err)
	}
	if ise.Available != 0 {
		t.Errorf("available = %d, want 0", ise.Available)
	}
}

func TestAmenitiesNeverDisplaceResidents(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 30
	cfg.Population = 20000
	cfg.Hospitals = 2
	cfg.Schools = 3
	m := genModel(t, cfg)

	for _, p := range m.Parcels {
		if (p.Role == RoleHospital || p.Role == RoleSchool) && p.Population != 0 {
			t.Errorf("amenity parcel (%d,%d) carries population %d",
				p.Cell.X, p.Cell.Y, p.Population)
		}
	}
}
