package graph

import (
	"fmt"
	"math"

	"github.com/cxd309/units"
)

var unreachable = units.Meters(math.Inf(1))

// computeShortestPaths runs Floyd-Warshall over all nodes and edges.
// Edge lengths may be in any distance unit; the tables hold them as given and
// every sum converts into the left operand's unit.
func (g *Graph) computeShortestPaths() {
	nodeIDs := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		nodeIDs[i] = n.ID
	}

	dist := make(map[NodeID]map[NodeID]units.Distance, len(nodeIDs))
	next := make(map[NodeID]map[NodeID]NodeID, len(nodeIDs))
	for _, i := range nodeIDs {
		dist[i] = make(map[NodeID]units.Distance, len(nodeIDs))
		next[i] = make(map[NodeID]NodeID, len(nodeIDs))
		for _, j := range nodeIDs {
			dist[i][j] = unreachable
		}
		dist[i][i] = units.Meters(0)
	}
	for _, e := range g.edges {
		if e.Length.InMeters() < dist[e.U][e.V].InMeters() {
			dist[e.U][e.V] = e.Length
			next[e.U][e.V] = e.V
		}
	}
	for _, k := range nodeIDs {
		for _, i := range nodeIDs {
			for _, j := range nodeIDs {
				if d := dist[i][k].Add(dist[k][j]); d.InMeters() < dist[i][j].InMeters() {
					dist[i][j] = d
					next[i][j] = next[i][k]
				}
			}
		}
	}

	g.dist = dist
	g.nextNode = next
	g.pathCache = make(map[PathID]PathInfo) // clear stale cache
}

func (g *Graph) ensureShortestPaths() {
	if g.dist == nil {
		g.computeShortestPaths()
	}
}

func (g *Graph) reconstructPath(u, v NodeID) []NodeID {
	route := []NodeID{u}
	for u != v {
		n, ok := g.nextNode[u][v]
		if !ok || n == "" {
			return nil // no path
		}
		u = n
		route = append(route, u)
	}
	return route
}

// GetShortestPath returns the shortest path between start and end, using a cache.
// Returns an error if no path exists.
func (g *Graph) GetShortestPath(start, end NodeID) (PathInfo, error) {
	if _, ok := g.nodeMap[start]; !ok {
		return PathInfo{}, fmt.Errorf("node %q not found", start)
	}
	if _, ok := g.nodeMap[end]; !ok {
		return PathInfo{}, fmt.Errorf("node %q not found", end)
	}
	if start == end {
		return PathInfo{ID: pathKey(start, end), Route: []NodeID{start}, Length: units.Meters(0)}, nil
	}
	g.ensureShortestPaths()
	key := pathKey(start, end)
	if p, ok := g.pathCache[key]; ok {
		return p, nil
	}
	d := g.dist[start][end]
	if math.IsInf(d.InMeters(), 1) {
		return PathInfo{}, fmt.Errorf("no path from %q to %q", start, end)
	}
	route := g.reconstructPath(start, end)
	p := PathInfo{ID: key, Route: route, Length: d}
	g.pathCache[key] = p
	return p, nil
}
