package citygen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/il-an/city-generator/pkg/config"
)

func TestRunScenario(t *testing.T) {
	cfg := config.Default()
	cfg.Population = 1000
	cfg.GridSize = 20
	cfg.RadiusFraction = 0.8
	cfg.Seed = 42
	dir := filepath.Join(t.TempDir(), "t1")

	res, err := Run(context.Background(), cfg, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Summary.RealizedPopulation != 1000 {
		t.Errorf("realized population = %d, want 1000", res.Summary.RealizedPopulation)
	}
	if res.Summary.HospitalCount != 1 || res.Summary.SchoolCount != 1 {
		t.Errorf("amenity counts = %d/%d, want 1/1",
			res.Summary.HospitalCount, res.Summary.SchoolCount)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected exactly 2 artifacts, got %d", len(entries))
	}
}

func TestRunRejectsZeroRadius(t *testing.T) {
	cfg := config.Default()
	cfg.RadiusFraction = 0
	dir := filepath.Join(t.TempDir(), "out")

	_, err := Run(context.Background(), cfg, dir)
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *config.Error, got %T: %v", err, err)
	}

	// No partial work: the output directory must not exist.
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("no files should be written for an invalid config")
	}
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := filepath.Join(t.TempDir(), "out")
	_, err := Run(ctx, config.Default(), dir)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("canceled run must not write artifacts")
	}
}

func TestGenerateWithoutExport(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 20
	cfg.Population = 500
	model, report, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if model == nil || report == nil {
		t.Fatal("expected model and report")
	}
	if model.HousedPopulation != 500 {
		t.Errorf("housed = %d, want 500", model.HousedPopulation)
	}
}
