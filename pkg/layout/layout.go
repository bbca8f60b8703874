// Package layout turns a grid footprint into a complete city model:
// roads, land-use zoning, population density, amenity sites, and the
// transport network.
package layout

import (
	"fmt"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
	"github.com/il-an/city-generator/pkg/rng"
	"github.com/il-an/city-generator/pkg/validation"
)

// Generate runs the layout stages in fixed order and returns the resulting
// model. Identical footprint, config, and stream seed reproduce the model
// bit for bit.
//
// Stream draw order: (1) green-floor candidate shuffle, (2) building
// heights in footprint order. Every other stage is either deterministic or
// keyed on the seed through coordinate noise, never the stream.
func Generate(fp *grid.Footprint, cfg config.GenerationConfig, stream *rng.Stream) (*CityModel, *validation.Report, error) {
	report := validation.NewReport()

	roadCells, segments := buildRoadSkeleton(fp)
	parcels := assignZones(fp, cfg.Seed, roadCells)
	enforceGreenFloor(parcels, cfg, stream)
	sampleHeights(parcels, stream)

	housed, err := distributePopulation(parcels, fp, cfg.Population)
	if err != nil {
		return nil, report, err
	}

	hospitals, schools, err := placeAmenities(parcels, cfg)
	if err != nil {
		return nil, report, err
	}

	network := buildTransport(parcels, fp, cfg.Transport)

	model := &CityModel{
		GridSize:         fp.Size(),
		Seed:             cfg.Seed,
		Transport:        cfg.Transport,
		Footprint:        fp,
		Parcels:          parcels,
		Roads:            segments,
		Hospitals:        hospitals,
		Schools:          schools,
		Network:          network,
		HousedPopulation: housed,
	}

	if unreachable := CheckConnectivity(model); len(unreachable) > 0 {
		report.AddWarning(validation.Result{
			Level: validation.LevelLayout,
			Message: fmt.Sprintf("%d residential parcels cannot reach a road; export will refuse this model",
				len(unreachable)),
		})
	}

	counts := model.RoleCounts()
	report.AddInfo(validation.Result{
		Level: validation.LevelLayout,
		Message: fmt.Sprintf("laid out %d parcels: %d residential, %d commercial, %d industrial, %d green, %d road; %d transport edges (%s)",
			len(parcels), counts[RoleResidential], counts[RoleCommercial], counts[RoleIndustrial],
			counts[RoleGreen], counts[RoleRoad], network.EdgeCount(), cfg.Transport),
	})

	return model, report, nil
}
