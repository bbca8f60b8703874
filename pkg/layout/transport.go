package layout

import (
	"github.com/il-an/city-generator/pkg/config"
	"github.com/il-an/city-generator/pkg/grid"
)

// Neighbor offsets per transport mode. Only forward offsets are listed so
// every edge is produced once.
var (
	carOffsets     = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	transitOffsets = [][2]int{{1, 0}, {0, 1}}
	walkOffsets    = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}, {2, 0}, {0, 2}}
)

// Every transitStopInterval-th backbone node becomes a stop.
const transitStopInterval = 4

// buildTransport connects road parcels into the transport network.
// Car gets the full connective mesh (8-neighborhood), transit a sparser
// 4-neighborhood backbone with stops, walk a dense short-edge mesh that
// also bridges two-cell gaps along road lines. Deterministic given the
// parcel slice; no stream draws.
func buildTransport(parcels []Parcel, fp *grid.Footprint, mode config.TransportMode) *TransportNetwork {
	n := &TransportNetwork{Mode: mode}

	nodeAt := make(map[int]int) // grid index -> node position
	for i := range parcels {
		if parcels[i].Role != RoleRoad {
			continue
		}
		nodeAt[parcels[i].Index] = len(n.Nodes)
		n.Nodes = append(n.Nodes, parcels[i].Cell)
	}

	var offsets [][2]int
	switch mode {
	case config.TransportTransit:
		offsets = transitOffsets
	case config.TransportWalk:
		offsets = walkOffsets
	default:
		offsets = carOffsets
	}

	for pos, cell := range n.Nodes {
		for _, off := range offsets {
			nx, ny := cell.X+off[0], cell.Y+off[1]
			if !fp.Contains(nx, ny) {
				continue
			}
			if other, ok := nodeAt[fp.Index(nx, ny)]; ok {
				n.Edges = append(n.Edges, [2]int{pos, other})
			}
		}
	}

	if mode == config.TransportTransit {
		for i := 0; i < len(n.Nodes); i += transitStopInterval {
			n.Stops = append(n.Stops, n.Nodes[i])
		}
	}

	return n
}

// CheckConnectivity verifies that every residential parcel can walk over
// footprint cells to some road parcel. It returns the unreachable
// residential cells; an empty result means the connectivity invariant
// holds.
func CheckConnectivity(m *CityModel) []grid.Cell {
	fp := m.Footprint
	visited := make([]bool, fp.Size()*fp.Size())

	// Multi-source BFS from all road cells.
	var queue []grid.Cell
	for _, p := range m.Parcels {
		if p.Role == RoleRoad {
			visited[p.Index] = true
			queue = append(queue, p.Cell)
		}
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, off := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := c.X+off[0], c.Y+off[1]
			if !fp.Contains(nx, ny) || visited[fp.Index(nx, ny)] {
				continue
			}
			visited[fp.Index(nx, ny)] = true
			queue = append(queue, grid.Cell{X: nx, Y: ny})
		}
	}

	var unreachable []grid.Cell
	for _, p := range m.Parcels {
		if p.Role == RoleResidential && !visited[p.Index] {
			unreachable = append(unreachable, p.Cell)
		}
	}
	return unreachable
}
