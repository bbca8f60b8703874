package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/il-an/city-generator/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citygen",
		Short: "Deterministic seed-driven procedural city generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the generation flags shared by every verb.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Int("population", 100000, "number of inhabitants")
	cmd.Flags().Int("hospitals", 1, "number of hospitals to place")
	cmd.Flags().Int("schools", 1, "number of schools to place")
	cmd.Flags().String("transport", "car", "primary transport mode (car|transit|walk)")
	cmd.Flags().Int64("seed", 0, "random seed for deterministic output")
	cmd.Flags().Int("grid-size", 100, "grid dimension (square)")
	cmd.Flags().Float64("radius-fraction", 0.8, "fraction of half grid forming city radius")
	cmd.Flags().String("config", "", "optional YAML config file (flags override it)")
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a city and export its geometry and summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().String("output", "output", "directory to write results")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration without generating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd)
		},
	}
	addConfigFlags(cmd)
	return cmd
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a city and save a 2D PNG preview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd)
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().String("preview", "preview.png", "path of the PNG preview")
	cmd.Flags().Int("cell-size", 8, "pixels per grid cell")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var output string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over a local HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			return server.New(output, port).Start()
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().StringVar(&output, "output", "output", "directory to write results")
	return cmd
}
