// Package graph provides a track network and shortest-path search used to
// resolve a move between two named nodes into a distance and a heading.
package graph

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cxd309/units"
)

// NodeID, EdgeID, PathID are string aliases used as identifiers.
type (
	NodeID = string
	EdgeID = string
	PathID = string
)

// NodeType classifies a node in the network.
type NodeType string

const (
	NodeTypeMain    NodeType = "main"
	NodeTypeStation NodeType = "station"
	NodeTypeSide    NodeType = "side"
)

// Coordinate is a 2D position in metres.
type Coordinate struct {
	X float64 `json:"x"` // metres
	Y float64 `json:"y"` // metres
}

// Bearing returns the direction from c to other, anticlockwise from the +X axis.
func (c Coordinate) Bearing(other Coordinate) units.Angle {
	return units.Degrees(math.Atan2(other.Y-c.Y, other.X-c.X) * 180 / math.Pi)
}

// Node is a point in the network graph.
type Node struct {
	ID   NodeID     `json:"node_id"`
	Loc  Coordinate `json:"loc"`
	Type NodeType   `json:"type"`
}

// Edge is a directed connection between two nodes.
// SpeedLimit is optional: if nil the edge imposes no limit and the vehicle's
// own VMax applies.
type Edge struct {
	ID         EdgeID
	U          NodeID
	V          NodeID
	Length     units.Distance
	SpeedLimit *units.Velocity
}

type edgeJSON struct {
	ID         EdgeID   `json:"edge_id"`
	U          NodeID   `json:"u"`
	V          NodeID   `json:"v"`
	Length     float64  `json:"length"`                // metres
	SpeedLimit *float64 `json:"speed_limit,omitempty"` // m/s; nil = no restriction
}

// UnmarshalJSON implements json.Unmarshaler for Edge. Length is read in metres
// and SpeedLimit in metres per second.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var aux edgeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Edge{ID: aux.ID, U: aux.U, V: aux.V, Length: units.Meters(aux.Length)}
	if aux.SpeedLimit != nil {
		limit := units.MetersPerSecond(*aux.SpeedLimit)
		e.SpeedLimit = &limit
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Edge.
func (e Edge) MarshalJSON() ([]byte, error) {
	aux := edgeJSON{ID: e.ID, U: e.U, V: e.V, Length: e.Length.InMeters()}
	if e.SpeedLimit != nil {
		limit := e.SpeedLimit.InMetersPerSecond()
		aux.SpeedLimit = &limit
	}
	return json.Marshal(aux)
}

// GraphData is the serialisable input representation of a network graph.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// PathInfo holds the result of a shortest-path computation.
type PathInfo struct {
	ID     PathID
	Route  []NodeID // ordered node IDs from start to end
	Length units.Distance
}

// Graph is a directed weighted graph with cached shortest-path computation.
type Graph struct {
	nodes   []Node
	edges   []Edge
	nodeMap map[NodeID]Node
	edgeMap map[EdgeID]Edge
	// Floyd-Warshall tables; nil until first needed.
	dist     map[NodeID]map[NodeID]units.Distance
	nextNode map[NodeID]map[NodeID]NodeID
	// Path cache; cleared whenever the graph topology changes.
	pathCache map[PathID]PathInfo
}

// NewGraph builds a Graph from GraphData, returning an error if any node or edge
// references are invalid.
func NewGraph(data GraphData) (*Graph, error) {
	g := &Graph{
		nodeMap:   make(map[NodeID]Node),
		edgeMap:   make(map[EdgeID]Edge),
		pathCache: make(map[PathID]PathInfo),
	}
	for _, n := range data.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddNode adds a node to the graph. Returns an error if the node ID already exists.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodeMap[n.ID]; exists {
		return fmt.Errorf("node %q already exists", n.ID)
	}
	g.nodes = append(g.nodes, n)
	g.nodeMap[n.ID] = n
	g.dist = nil // invalidate cached paths
	return nil
}

// AddEdge adds a directed edge to the graph. Returns an error if the edge ID already
// exists, either endpoint node is missing, or the length or speed limit is not positive.
func (g *Graph) AddEdge(e Edge) error {
	if _, exists := g.edgeMap[e.ID]; exists {
		return fmt.Errorf("edge %q already exists", e.ID)
	}
	if _, ok := g.nodeMap[e.U]; !ok {
		return fmt.Errorf("edge %q: source node %q not found", e.ID, e.U)
	}
	if _, ok := g.nodeMap[e.V]; !ok {
		return fmt.Errorf("edge %q: target node %q not found", e.ID, e.V)
	}
	if !(e.Length.InMeters() > 0) {
		return fmt.Errorf("edge %q: length must be positive, got %s", e.ID, e.Length)
	}
	if e.SpeedLimit != nil && !(e.SpeedLimit.InMetersPerSecond() > 0) {
		return fmt.Errorf("edge %q: speed limit must be positive, got %s", e.ID, *e.SpeedLimit)
	}
	g.edges = append(g.edges, e)
	g.edgeMap[e.ID] = e
	g.dist = nil // invalidate cached paths
	return nil
}

// pathKey returns a canonical string key for a start→end pair.
func pathKey(start, end NodeID) PathID { return start + "->" + end }

// GetNode looks up a node by its ID.
func (g *Graph) GetNode(id NodeID) (Node, error) {
	n, ok := g.nodeMap[id]
	if !ok {
		return Node{}, fmt.Errorf("node %q not found", id)
	}
	return n, nil
}

// GetEdgeByID looks up an edge by its ID.
func (g *Graph) GetEdgeByID(id EdgeID) (Edge, error) {
	e, ok := g.edgeMap[id]
	if !ok {
		return Edge{}, fmt.Errorf("edge %q not found", id)
	}
	return e, nil
}

// GetEdge returns the shortest direct edge from u to v.
func (g *Graph) GetEdge(u, v NodeID) (Edge, error) {
	var (
		best  Edge
		found bool
	)
	for _, e := range g.edges {
		if e.U != u || e.V != v {
			continue
		}
		if !found || e.Length.InMeters() < best.Length.InMeters() {
			best, found = e, true
		}
	}
	if !found {
		return Edge{}, fmt.Errorf("no edge from %q to %q", u, v)
	}
	return best, nil
}

// RouteEdges returns the edges joining consecutive nodes of route.
func (g *Graph) RouteEdges(route []NodeID) ([]Edge, error) {
	if len(route) < 2 {
		return nil, nil
	}
	edges := make([]Edge, 0, len(route)-1)
	for i := 1; i < len(route); i++ {
		e, err := g.GetEdge(route[i-1], route[i])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}
