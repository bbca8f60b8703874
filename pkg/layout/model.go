package layout

import (
	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
)

// Role is the single land-use role carried by a parcel.
type Role string

const (
	RoleResidential Role = "residential"
	RoleCommercial  Role = "commercial"
	RoleIndustrial  Role = "industrial"
	RoleGreen       Role = "green"
	RoleRoad        Role = "road"
	RoleHospital    Role = "hospital"
	RoleSchool      Role = "school"
)

// Parcel is a single footprint cell with exactly one role, an assigned
// population share, and a building height in storeys.
type Parcel struct {
	Cell       grid.Cell `json:"cell"`
	Index      int       `json:"index"` // row-major grid index, the deterministic tie-breaker
	Role       Role      `json:"role"`
	Population int       `json:"population"`
	Stories    int       `json:"stories"`
}

// Amenity is a placed hospital or school site.
type Amenity struct {
	Kind string    `json:"kind"` // "hospital" or "school"
	Cell grid.Cell `json:"cell"`
}

// RoadSegment is a road centreline in grid units, kept for geometry export.
type RoadSegment struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// TransportNetwork is a graph over road parcels. Edge density and stop
// placement depend on the configured transport mode.
type TransportNetwork struct {
	Mode  config.TransportMode `json:"mode"`
	Nodes []grid.Cell          `json:"nodes"`
	Edges [][2]int             `json:"edges"` // index pairs into Nodes
	Stops []grid.Cell          `json:"stops,omitempty"`
}

// EdgeCount returns the number of edges in the network.
func (n *TransportNetwork) EdgeCount() int {
	return len(n.Edges)
}

// AverageDegree returns 2E/N, the mean node connectivity.
func (n *TransportNetwork) AverageDegree() float64 {
	if len(n.Nodes) == 0 {
		return 0
	}
	return 2 * float64(len(n.Edges)) / float64(len(n.Nodes))
}

// CityModel aggregates everything a generation run produces. It is
// immutable once Generate returns; ownership moves forward to the exporter.
type CityModel struct {
	GridSize  int                  `json:"grid_size"`
	Seed      int64                `json:"seed"`
	Transport config.TransportMode `json:"transport"`

	Footprint *grid.Footprint   `json:"-"`
	Parcels   []Parcel          `json:"parcels"`
	Roads     []RoadSegment     `json:"roads"`
	Hospitals []Amenity         `json:"hospitals"`
	Schools   []Amenity         `json:"schools"`
	Network   *TransportNetwork `json:"network"`

	// HousedPopulation is the realized total across parcels; equals the
	// configured population by construction.
	HousedPopulation int `json:"housed_population"`
}

// ParcelAt returns the parcel occupying grid cell (x, y), or nil when the
// cell is outside the footprint.
func (m *CityModel) ParcelAt(x, y int) *Parcel {
	if !m.Footprint.Contains(x, y) {
		return nil
	}
	idx := m.Footprint.Index(x, y)
	for i := range m.Parcels {
		if m.Parcels[i].Index == idx {
			return &m.Parcels[i]
		}
	}
	return nil
}

// RoleCounts tallies parcels by role.
func (m *CityModel) RoleCounts() map[Role]int {
	counts := make(map[Role]int)
	for _, p := range m.Parcels {
		counts[p.Role]++
	}
	return counts
}
