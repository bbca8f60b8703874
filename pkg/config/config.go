package config

import (
	"fmt"
	"strings"
)

// TransportMode selects the primary transport policy for the generated city.
type TransportMode string

const (
	TransportCar     TransportMode = "car"
	TransportTransit TransportMode = "transit"
	TransportWalk    TransportMode = "walk"
)

// ParseTransportMode converts a user-supplied string into a TransportMode.
// Accepts the aliases "public" and "public_transit" for transit and
// "pedestrian" for walk.
func ParseTransportMode(s string) (TransportMode, error) {
	switch strings.ToLower(s) {
	case "car":
		return TransportCar, nil
	case "transit", "public", "public_transit":
		return TransportTransit, nil
	case "walk", "pedestrian":
		return TransportWalk, nil
	}
	return "", &Error{Field: "transport", Message: fmt.Sprintf("unknown transport mode %q", s)}
}

// GenerationConfig fully determines a generation run: the same config always
// produces the same artifacts. Immutable once constructed.
type GenerationConfig struct {
	Population     int           `yaml:"population" json:"population"`
	Hospitals      int           `yaml:"hospitals" json:"hospitals"`
	Schools        int           `yaml:"schools" json:"schools"`
	Transport      TransportMode `yaml:"transport" json:"transport"`
	Seed           int64         `yaml:"seed" json:"seed"`
	GridSize       int           `yaml:"grid_size" json:"grid_size"`
	RadiusFraction float64       `yaml:"radius_fraction" json:"radius_fraction"`

	// GreenM2PerCapita is the minimum green area reserved per inhabitant,
	// in square meters. Zero disables the green-space floor.
	GreenM2PerCapita float64 `yaml:"green_m2_per_capita" json:"green_m2_per_capita"`
}

// Default returns the baseline configuration.
func Default() GenerationConfig {
	return GenerationConfig{
		Population:       100000,
		Hospitals:        1,
		Schools:          1,
		Transport:        TransportCar,
		Seed:             0,
		GridSize:         100,
		RadiusFraction:   0.8,
		GreenM2PerCapita: 8.0,
	}
}

// Error reports an invalid configuration value. Always fatal: no generation
// work happens after a config error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration before generation starts. Out-of-range
// values are rejected, never clamped: radius_fraction must lie in (0, 1].
func (c GenerationConfig) Validate() error {
	if c.Population <= 0 {
		return &Error{Field: "population", Message: fmt.Sprintf("must be positive, got %d", c.Population)}
	}
	if c.Hospitals < 0 {
		return &Error{Field: "hospitals", Message: fmt.Sprintf("must be non-negative, got %d", c.Hospitals)}
	}
	if c.Schools < 0 {
		return &Error{Field: "schools", Message: fmt.Sprintf("must be non-negative, got %d", c.Schools)}
	}
	switch c.Transport {
	case TransportCar, TransportTransit, TransportWalk:
	default:
		return &Error{Field: "transport", Message: fmt.Sprintf("unknown transport mode %q", c.Transport)}
	}
	if c.GridSize < 1 {
		return &Error{Field: "grid_size", Message: fmt.Sprintf("must be at least 1, got %d", c.GridSize)}
	}
	if c.RadiusFraction <= 0 || c.RadiusFraction > 1 {
		return &Error{Field: "radius_fraction", Message: fmt.Sprintf("must be in (0, 1], got %g", c.RadiusFraction)}
	}
	if c.GreenM2PerCapita < 0 {
		return &Error{Field: "green_m2_per_capita", Message: fmt.Sprintf("must be non-negative, got %g", c.GreenM2PerCapita)}
	}
	return nil
}
