package validation

import (
	"fmt"

	"github.com/il-an/city-generator/pkg/config"
)

// ValidateConfig performs schema-level validation of a generation config.
// It reports every problem at once, unlike GenerationConfig.Validate which
// fails fast on the first.
func ValidateConfig(cfg config.GenerationConfig) *Report {
	r := NewReport()

	if cfg.Population <= 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "population must be greater than 0",
			Field:       "population",
			ActualValue: cfg.Population,
			Expected:    "> 0",
		})
	}

	if cfg.Hospitals < 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "hospitals must be non-negative",
			Field:       "hospitals",
			ActualValue: cfg.Hospitals,
			Expected:    ">= 0",
		})
	}

	if cfg.Schools < 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "schools must be non-negative",
			Field:       "schools",
			ActualValue: cfg.Schools,
			Expected:    ">= 0",
		})
	}

	switch cfg.Transport {
	case config.TransportCar, config.TransportTransit, config.TransportWalk:
	default:
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("unknown transport mode %q", cfg.Transport),
			Field:       "transport",
			ActualValue: string(cfg.Transport),
			Expected:    "car, transit, or walk",
		})
	}

	if cfg.GridSize < 1 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "grid_size must be at least 1",
			Field:       "grid_size",
			ActualValue: cfg.GridSize,
			Expected:    ">= 1",
		})
	} else if cfg.GridSize == 1 {
		r.AddWarning(Result{
			Level:       LevelConfig,
			Message:     "grid_size of 1 yields an empty footprint for any radius fraction below 1",
			Field:       "grid_size",
			ActualValue: cfg.GridSize,
			Suggestions: []string{"Use a grid_size of at least 10 for a usable city"},
		})
	}

	if cfg.RadiusFraction <= 0 || cfg.RadiusFraction > 1 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "radius_fraction must be in (0, 1]; out-of-range values are rejected, not clamped",
			Field:       "radius_fraction",
			ActualValue: cfg.RadiusFraction,
			Expected:    "(0, 1]",
		})
	}

	if cfg.GreenM2PerCapita < 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "green_m2_per_capita must be non-negative",
			Field:       "green_m2_per_capita",
			ActualValue: cfg.GreenM2PerCapita,
			Expected:    ">= 0",
		})
	}

	return r
}
