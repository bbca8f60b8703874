package analytics

import (
	"testing"

	"github.com/il-an/city-generator/pkg/config"
)

func TestResolveDefault(t *testing.T) {
	params, report := Resolve(config.Default())
	if !report.Valid {
		t.Fatalf("default config should resolve cleanly: %s", report.Summary)
	}
	if params.FootprintCells == 0 {
		t.Fatal("expected non-empty footprint")
	}
	if params.DevelopedAreaHa <= 0 {
		t.Error("developed area should be positive")
	}
	// 100000 people at 8 m2 each over 10000 m2 cells.
	if params.TargetGreenCells != 80 {
		t.Errorf("target green cells = %d, want 80", params.TargetGreenCells)
	}
}

func TestResolveWarnsOnExtremeDensity(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 10
	cfg.Population = 10_000_000
	_, report := Resolve(cfg)
	if len(report.Warnings) == 0 {
		t.Error("expected density warning")
	}
}

func TestResolveWarnsOnAmenityOverload(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 10
	cfg.Hospitals = 500
	_, report := Resolve(cfg)

	found := false
	for _, w := range report.Warnings {
		if w.Field == "hospitals" {
			found = true
		}
	}
	if !found {
		t.Error("expected amenity overload warning")
	}
}

func TestResolveBadFootprint(t *testing.T) {
	cfg := config.Default()
	cfg.RadiusFraction = 0
	params, report := Resolve(cfg)
	if report.Valid {
		t.Error("expected error report for zero radius")
	}
	if params != nil {
		t.Error("no parameters should be returned on failure")
	}
}
