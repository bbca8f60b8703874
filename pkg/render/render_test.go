package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
	"github.com/il-an/city-generator/pkg/layout"
	"github.com/il-an/city-generator/pkg/rng"
)

func previewModel(t *testing.T) *layout.CityModel {
	t.Helper()
	cfg := config.Default()
	cfg.GridSize = 20
	cfg.Population = 1000
	cfg.Seed = 42
	fp, err := grid.BuildFootprint(cfg.GridSize, cfg.RadiusFraction)
	if err != nil {
		t.Fatal(err)
	}
	m, _, err := layout.Generate(fp, cfg, rng.New(cfg.Seed))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestPreviewDimensions(t *testing.T) {
	m := previewModel(t)
	img := Preview(m, 8, nil)
	bounds := img.Bounds()
	if bounds.Dx() != 160 || bounds.Dy() != 160 {
		t.Errorf("preview is %dx%d, want 160x160", bounds.Dx(), bounds.Dy())
	}
}

func TestSavePNG(t *testing.T) {
	m := previewModel(t)
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePNG(path, m, 4, DefaultPalette()); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("preview PNG is empty")
	}
}

func TestSavePNGRejectsBadCellSize(t *testing.T) {
	m := previewModel(t)
	if err := SavePNG(filepath.Join(t.TempDir(), "x.png"), m, 0, nil); err == nil {
		t.Error("expected error for zero cell size")
	}
}
