// Package citygen is the generation entry point tying the pipeline
// together: footprint, layout, export. Front ends call into this package
// directly; there is no subprocess boundary.
package citygen

import (
	"context"
	"fmt"

	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/export"
	"github.com/il-an/city-generator/pkg/grid"
	"github.com/il-an/city-generator/pkg/layout"
	"github.com/il-an/city-generator/pkg/rng"
	"github.com/il-an/city-generator/pkg/validation"
)

// Result carries everything a generation run produces.
type Result struct {
	Model     *layout.CityModel  `json:"-"`
	Report    *validation.Report `json:"report"`
	Summary   export.Summary     `json:"summary"`
	Artifacts export.Artifacts   `json:"artifacts"`
}

// Generate validates the config and builds a city model without touching
// the filesystem. The run is cancelable between stages through ctx.
func Generate(ctx context.Context, cfg config.GenerationConfig) (*layout.CityModel, *validation.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	fp, err := grid.BuildFootprint(cfg.GridSize, cfg.RadiusFraction)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return layout.Generate(fp, cfg, rng.New(cfg.Seed))
}

// Run executes the full pipeline and writes both artifacts to outputDir.
// Identical configs produce byte-identical artifacts; no retries happen on
// failure. Once export starts the run completes or leaves nothing behind.
func Run(ctx context.Context, cfg config.GenerationConfig, outputDir string) (*Result, error) {
	model, report, err := Generate(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("canceled before export: %w", err)
	}

	artifacts, err := export.Export(model, outputDir)
	if err != nil {
		return nil, err
	}

	return &Result{
		Model:     model,
		Report:    report,
		Summary:   export.BuildSummary(model),
		Artifacts: artifacts,
	}, nil
}
