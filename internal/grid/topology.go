package grid

import "strings"

// Topology selects which relative positions a neighbor query considers.
// It is a small flag set; combine flags with bitwise or.
type Topology uint8

const (
	// Center includes the queried coordinate itself.
	Center Topology = 1 << iota
	// Edge includes the four orthogonally adjacent coordinates.
	Edge
	// Vertex includes the four diagonally adjacent coordinates.
	Vertex

	// Surround includes all eight adjacent coordinates.
	Surround = Edge | Vertex
	// All includes the queried coordinate and all eight adjacent ones.
	All = Surround | Center
)

// Has reports whether every flag in t is set in the topology.
func (t Topology) Has(flag Topology) bool {
	return t&flag == flag
}

// String returns the set flags separated by "|", or "none".
func (t Topology) String() string {
	var parts []string
	if t.Has(Center) {
		parts = append(parts, "center")
	}
	if t.Has(Edge) {
		parts = append(parts, "edge")
	}
	if t.Has(Vertex) {
		parts = append(parts, "vertex")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
