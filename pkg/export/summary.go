package export

import (
	"encoding/json"
	"io"

	"github.com/il-an/city-generator/pkg/layout"
)

// Coordinate is a placed site location in grid units.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Summary is the machine-readable report written next to the geometry.
type Summary struct {
	GridSize           int          `json:"grid_size"`
	Seed               int64        `json:"seed"`
	Transport          string       `json:"transport"`
	RealizedPopulation int          `json:"realized_population"`
	HospitalCount      int          `json:"hospital_count"`
	Hospitals          []Coordinate `json:"hospitals"`
	SchoolCount        int          `json:"school_count"`
	Schools            []Coordinate `json:"schools"`
	ResidentialCells   int          `json:"residential_cells"`
	CommercialCells    int          `json:"commercial_cells"`
	IndustrialCells    int          `json:"industrial_cells"`
	GreenCells         int          `json:"green_cells"`
	RoadCells          int          `json:"road_cells"`
	TotalBuildings     int          `json:"total_buildings"`
	TransportEdges     int          `json:"transport_edges"`
	TransitStops       int          `json:"transit_stops"`
	AvgConnectivity    float64      `json:"avg_connectivity"`
}

// BuildSummary derives the summary document from a model.
func BuildSummary(m *layout.CityModel) Summary {
	counts := m.RoleCounts()

	s := Summary{
		GridSize:           m.GridSize,
		Seed:               m.Seed,
		Transport:          string(m.Transport),
		RealizedPopulation: m.HousedPopulation,
		HospitalCount:      len(m.Hospitals),
		Hospitals:          make([]Coordinate, 0, len(m.Hospitals)),
		SchoolCount:        len(m.Schools),
		Schools:            make([]Coordinate, 0, len(m.Schools)),
		ResidentialCells:   counts[layout.RoleResidential],
		CommercialCells:    counts[layout.RoleCommercial],
		IndustrialCells:    counts[layout.RoleIndustrial],
		GreenCells:         counts[layout.RoleGreen],
		RoadCells:          counts[layout.RoleRoad],
		TransportEdges:     m.Network.EdgeCount(),
		TransitStops:       len(m.Network.Stops),
		AvgConnectivity:    m.Network.AverageDegree(),
	}

	for _, h := range m.Hospitals {
		s.Hospitals = append(s.Hospitals, Coordinate{X: h.Cell.X, Y: h.Cell.Y})
	}
	for _, sc := range m.Schools {
		s.Schools = append(s.Schools, Coordinate{X: sc.Cell.X, Y: sc.Cell.Y})
	}

	for _, p := range m.Parcels {
		switch p.Role {
		case layout.RoleResidential, layout.RoleCommercial, layout.RoleIndustrial,
			layout.RoleHospital, layout.RoleSchool:
			s.TotalBuildings++
		}
	}

	return s
}

// writeSummary encodes the summary as indented JSON.
func writeSummary(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
