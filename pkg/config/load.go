package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a generation config from a YAML file. Fields absent from the
// file keep their default values.
func Load(path string) (GenerationConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	return cfg, nil
}

// LoadProject loads a generation config from a project directory.
// It looks for city.yaml in the given directory.
func LoadProject(projectDir string) (GenerationConfig, error) {
	return Load(filepath.Join(projectDir, "city.yaml"))
}
