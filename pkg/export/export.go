// Package export serializes a city model into its two artifacts: a
// Wavefront OBJ geometry file and a JSON summary document. Writes are
// atomic: both artifacts land via temp-write-then-rename or not at all.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/il-an/city-generator/pkg/layout"
)

const (
	// GeometryFile is the name of the 3D geometry artifact.
	GeometryFile = "city.obj"
	// SummaryFile is the name of the machine-readable summary artifact.
	SummaryFile = "city_summary.json"
)

// Artifacts reports where the exporter placed its outputs.
type Artifacts struct {
	GeometryPath string `json:"geometry_path"`
	SummaryPath  string `json:"summary_path"`
}

// InvariantError reports a model that violates the connectivity invariant.
// This is a generator defect, always fatal, and nothing is written.
type InvariantError struct {
	Unreachable int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %d residential parcels cannot reach a road", e.Unreachable)
}

// Export writes the geometry and summary artifacts for a model into
// outputDir, creating the directory if absent. The connectivity invariant
// is re-checked first; on violation no file is touched. A failure midway
// leaves no partial artifacts behind.
func Export(m *layout.CityModel, outputDir string) (Artifacts, error) {
	if unreachable := layout.CheckConnectivity(m); len(unreachable) > 0 {
		return Artifacts{}, &InvariantError{Unreachable: len(unreachable)}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("creating output directory: %w", err)
	}

	geomTmp, err := writeTemp(outputDir, "city-obj-*", func(f *os.File) error {
		return writeOBJ(f, m)
	})
	if err != nil {
		return Artifacts{}, fmt.Errorf("writing geometry: %w", err)
	}

	summaryTmp, err := writeTemp(outputDir, "city-summary-*", func(f *os.File) error {
		return writeSummary(f, BuildSummary(m))
	})
	if err != nil {
		os.Remove(geomTmp)
		return Artifacts{}, fmt.Errorf("writing summary: %w", err)
	}

	// Both temp writes succeeded; rename into place.
	art := Artifacts{
		GeometryPath: filepath.Join(outputDir, GeometryFile),
		SummaryPath:  filepath.Join(outputDir, SummaryFile),
	}
	if err := os.Rename(geomTmp, art.GeometryPath); err != nil {
		os.Remove(geomTmp)
		os.Remove(summaryTmp)
		return Artifacts{}, fmt.Errorf("publishing geometry: %w", err)
	}
	if err := os.Rename(summaryTmp, art.SummaryPath); err != nil {
		os.Remove(art.GeometryPath)
		os.Remove(summaryTmp)
		return Artifacts{}, fmt.Errorf("publishing summary: %w", err)
	}

	return art, nil
}

// writeTemp writes through fn into a temp file in dir and returns its path.
// The temp file is removed on any failure.
func writeTemp(dir, pattern string, fn func(*os.File) error) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
