package main

import (
	"fmt"

	"github.com/il-an/city-generator/pkg/export"
	"github.com/il-an/city-generator/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummary(s export.Summary) {
	fmt.Println()
	fmt.Println("City Summary")
	fmt.Println("============")
	fmt.Printf("  Grid size:          %d\n", s.GridSize)
	fmt.Printf("  Seed:               %d\n", s.Seed)
	fmt.Printf("  Transport:          %s\n", s.Transport)
	fmt.Printf("  Population housed:  %d\n", s.RealizedPopulation)
	fmt.Printf("  Hospitals:          %d %v\n", s.HospitalCount, coordList(s.Hospitals))
	fmt.Printf("  Schools:            %d %v\n", s.SchoolCount, coordList(s.Schools))
	fmt.Printf("  Buildings:          %d\n", s.TotalBuildings)
	fmt.Printf("  Road cells:         %d\n", s.RoadCells)
	fmt.Printf("  Transport edges:    %d (avg connectivity %.2f)\n", s.TransportEdges, s.AvgConnectivity)
	if s.TransitStops > 0 {
		fmt.Printf("  Transit stops:      %d\n", s.TransitStops)
	}
}

func coordList(coords []export.Coordinate) string {
	out := ""
	for i, c := range coords {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return out
}
