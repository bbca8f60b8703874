// Package analytics resolves derived parameters from a generation config
// before any spatial work happens, and flags configurations that will
// produce degenerate cities.
package analytics

import (
	"fmt"
	"math"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
	"github.com/il-an/city-generator/pkg/validation"
)

// Expected land-use shares implied by the zoning noise thresholds.
const (
	shareResidential = 0.55
	shareCommercial  = 0.20
	shareIndustrial  = 0.15
	shareGreen       = 0.10
)

// cellAreaM2 mirrors the layout assumption of 100m x 100m cells.
const cellAreaM2 = 100.0 * 100.0

// Residents per cell beyond which the config is suspiciously dense.
const densityWarnThreshold = 20000.0

// ResolvedParameters holds the values computed from a config ahead of
// generation.
type ResolvedParameters struct {
	FootprintCells     int     `json:"footprint_cells"`
	DevelopedAreaHa    float64 `json:"developed_area_ha"`
	AvgPopPerCell      float64 `json:"avg_population_per_cell"`
	TargetGreenCells   int     `json:"target_green_cells"`
	EstResidential     int     `json:"estimated_residential_cells"`
	EstAmenityEligible int     `json:"estimated_amenity_eligible_cells"`
	AmenitiesRequested int     `json:"amenities_requested"`
}

// Resolve computes derived parameters and analytical warnings for a config.
// The config must already pass schema validation.
func Resolve(cfg config.GenerationConfig) (*ResolvedParameters, *validation.Report) {
	report := validation.NewReport()

	fp, err := grid.BuildFootprint(cfg.GridSize, cfg.RadiusFraction)
	if err != nil {
		report.AddError(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: fmt.Sprintf("cannot build footprint: %v", err),
		})
		return nil, report
	}

	cells := fp.Len()
	params := &ResolvedParameters{
		FootprintCells:     cells,
		DevelopedAreaHa:    float64(cells) * cellAreaM2 / 10000,
		AvgPopPerCell:      float64(cfg.Population) / float64(cells),
		TargetGreenCells:   int(math.Ceil(float64(cfg.Population) * cfg.GreenM2PerCapita / cellAreaM2)),
		EstResidential:     int(float64(cells) * shareResidential),
		EstAmenityEligible: int(float64(cells) * (shareCommercial + shareIndustrial)),
		AmenitiesRequested: cfg.Hospitals + cfg.Schools,
	}

	if params.AvgPopPerCell > densityWarnThreshold {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("average density of %.0f residents per cell is extreme for a %d-cell footprint", params.AvgPopPerCell, cells),
			Field:       "population",
			ActualValue: cfg.Population,
			Suggestions: []string{"Increase grid_size or radius_fraction, or lower population"},
		})
	}

	if params.TargetGreenCells > params.EstResidential+int(float64(cells)*shareIndustrial) {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("green-space target of %d cells exceeds the expected convertible stock; the floor will saturate", params.TargetGreenCells),
			Field:       "green_m2_per_capita",
			ActualValue: cfg.GreenM2PerCapita,
		})
	}

	if params.AmenitiesRequested > params.EstAmenityEligible {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("%d amenities requested but only about %d eligible sites expected; generation is likely to fail with insufficient space", params.AmenitiesRequested, params.EstAmenityEligible),
			Field:       "hospitals",
			ActualValue: params.AmenitiesRequested,
			Suggestions: []string{"Lower hospitals/schools or enlarge the footprint"},
		})
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelAnalytical,
		Message: fmt.Sprintf("footprint of %d cells (%.0f ha), %.1f residents per cell, %d green cells targeted",
			cells, params.DevelopedAreaHa, params.AvgPopPerCell, params.TargetGreenCells),
	})

	return params, report
}
