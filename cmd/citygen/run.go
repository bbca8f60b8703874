package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/il-an/city-generator/pkg/analytics"
	"github.com/il-an/city-generator/pkg/citygen"
	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/render"
	"github.com/il-an/city-generator/pkg/validation"
)

// buildConfig assembles the generation config: defaults, then the optional
// YAML file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (config.GenerationConfig, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("population") {
		cfg.Population, _ = flags.GetInt("population")
	}
	if flags.Changed("hospitals") {
		cfg.Hospitals, _ = flags.GetInt("hospitals")
	}
	if flags.Changed("schools") {
		cfg.Schools, _ = flags.GetInt("schools")
	}
	if flags.Changed("transport") {
		raw, _ := flags.GetString("transport")
		mode, err := config.ParseTransportMode(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Transport = mode
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("grid-size") {
		cfg.GridSize, _ = flags.GetInt("grid-size")
	}
	if flags.Changed("radius-fraction") {
		cfg.RadiusFraction, _ = flags.GetFloat64("radius-fraction")
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	result, err := citygen.Run(cmd.Context(), cfg, output)
	if err != nil {
		return err
	}

	printValidationReport(result.Report)
	printSummary(result.Summary)
	fmt.Printf("\nArtifacts:\n  %s\n  %s\n", result.Artifacts.GeometryPath, result.Artifacts.SummaryPath)
	return nil
}

func runValidate(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	report := validation.ValidateConfig(cfg)
	if report.Valid {
		_, analyticsReport := analytics.Resolve(cfg)
		report.Merge(analyticsReport)
	}

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRender(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	preview, _ := cmd.Flags().GetString("preview")
	cellSize, _ := cmd.Flags().GetInt("cell-size")

	model, report, err := citygen.Generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	printValidationReport(report)

	if err := render.SavePNG(preview, model, cellSize, nil); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	fmt.Printf("Preview written to %s\n", preview)
	return nil
}
