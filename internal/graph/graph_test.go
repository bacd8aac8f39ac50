package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/units"
)

func square(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(GraphData{
		Nodes: []Node{
			{ID: "a", Loc: Coordinate{X: 0, Y: 0}},
			{ID: "b", Loc: Coordinate{X: 1000, Y: 0}},
			{ID: "c", Loc: Coordinate{X: 1000, Y: 1000}},
			{ID: "d", Loc: Coordinate{X: 0, Y: 1000}},
		},
		Edges: []Edge{
			{ID: "ab", U: "a", V: "b", Length: units.Kilometers(1)},
			{ID: "bc", U: "b", V: "c", Length: units.Meters(1000)},
			{ID: "ad", U: "a", V: "d", Length: units.Meters(1500)},
			{ID: "dc", U: "d", V: "c", Length: units.Meters(600)},
		},
	})
	require.NoError(t, err)
	return g
}

func TestShortestPathAcrossUnits(t *testing.T) {
	t.Parallel()
	g := square(t)

	p, err := g.GetShortestPath("a", "c")
	require.NoError(t, err)
	assert.Equal(t, []NodeID{"a", "b", "c"}, p.Route)
	assert.Equal(t, units.Kilometer, p.Length.Unit())
	assert.InDelta(t, 2000.0, p.Length.InMeters(), 1e-9)
	assert.Equal(t, "a->c", p.ID)

	again, err := g.GetShortestPath("a", "c")
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestShortestPathSelfAndUnreachable(t *testing.T) {
	t.Parallel()
	g := square(t)

	p, err := g.GetShortestPath("b", "b")
	require.NoError(t, err)
	assert.Equal(t, []NodeID{"b"}, p.Route)
	assert.Equal(t, 0.0, p.Length.InMeters())

	_, err = g.GetShortestPath("c", "a")
	assert.ErrorContains(t, err, `no path from "c" to "a"`)

	_, err = g.GetShortestPath("a", "x")
	assert.ErrorContains(t, err, `node "x" not found`)
}

func TestAddEdgeInvalidatesPaths(t *testing.T) {
	t.Parallel()
	g := square(t)

	_, err := g.GetShortestPath("a", "c")
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(Edge{ID: "ac", U: "a", V: "c", Length: units.Feet(100)}))
	p, err := g.GetShortestPath("a", "c")
	require.NoError(t, err)
	assert.Equal(t, []NodeID{"a", "c"}, p.Route)
	assert.Equal(t, units.Feet(100), p.Length)
}

func TestNewGraphRejectsBadInput(t *testing.T) {
	t.Parallel()

	nodes := []Node{{ID: "a"}, {ID: "b"}}
	tests := []struct {
		name string
		data GraphData
		want string
	}{
		{"duplicate node", GraphData{Nodes: []Node{{ID: "a"}, {ID: "a"}}}, `node "a" already exists`},
		{"missing source", GraphData{Nodes: nodes, Edges: []Edge{{ID: "e", U: "x", V: "b", Length: units.Meters(1)}}}, `source node "x" not found`},
		{"missing target", GraphData{Nodes: nodes, Edges: []Edge{{ID: "e", U: "a", V: "x", Length: units.Meters(1)}}}, `target node "x" not found`},
		{"zero length", GraphData{Nodes: nodes, Edges: []Edge{{ID: "e", U: "a", V: "b", Length: units.Meters(0)}}}, "length must be positive"},
		{"duplicate edge", GraphData{Nodes: nodes, Edges: []Edge{
			{ID: "e", U: "a", V: "b", Length: units.Meters(1)},
			{ID: "e", U: "b", V: "a", Length: units.Meters(1)},
		}}, `edge "e" already exists`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGraph(tt.data)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestEdgeJSONInMeters(t *testing.T) {
	t.Parallel()

	var e Edge
	require.NoError(t, json.Unmarshal([]byte(`{"edge_id":"ab","u":"a","v":"b","length":250}`), &e))
	assert.Equal(t, Edge{ID: "ab", U: "a", V: "b", Length: units.Meters(250)}, e)

	out, err := json.Marshal(Edge{ID: "ab", U: "a", V: "b", Length: units.Kilometers(0.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"edge_id":"ab","u":"a","v":"b","length":500}`, string(out))
}

func TestBearing(t *testing.T) {
	t.Parallel()

	origin := Coordinate{}
	assert.InDelta(t, 0.0, origin.Bearing(Coordinate{X: 5}).Value(), 1e-12)
	assert.InDelta(t, 90.0, origin.Bearing(Coordinate{Y: 5}).Value(), 1e-12)
	assert.InDelta(t, 180.0, origin.Bearing(Coordinate{X: -5}).Value(), 1e-12)
	assert.InDelta(t, -45.0, origin.Bearing(Coordinate{X: 5, Y: -5}).Value(), 1e-12)
}

func TestEdgeSpeedLimitJSON(t *testing.T) {
	t.Parallel()

	var e Edge
	require.NoError(t, json.Unmarshal([]byte(`{"edge_id":"ab","u":"a","v":"b","length":250,"speed_limit":12.5}`), &e))
	require.NotNil(t, e.SpeedLimit)
	assert.Equal(t, units.MetersPerSecond(12.5), *e.SpeedLimit)

	limit := units.KilometersPerHour(36)
	out, err := json.Marshal(Edge{ID: "ab", U: "a", V: "b", Length: units.Meters(250), SpeedLimit: &limit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"edge_id":"ab","u":"a","v":"b","length":250,"speed_limit":10}`, string(out))
}

func TestAddEdgeRejectsNonPositiveSpeedLimit(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(GraphData{Nodes: []Node{{ID: "a"}, {ID: "b"}}})
	require.NoError(t, err)

	zero := units.MetersPerSecond(0)
	err = g.AddEdge(Edge{ID: "ab", U: "a", V: "b", Length: units.Meters(1), SpeedLimit: &zero})
	assert.ErrorContains(t, err, "speed limit must be positive")
}

func TestRouteEdges(t *testing.T) {
	t.Parallel()
	g := square(t)

	p, err := g.GetShortestPath("a", "c")
	require.NoError(t, err)
	edges, err := g.RouteEdges(p.Route)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "ab", edges[0].ID)
	assert.Equal(t, "bc", edges[1].ID)

	require.NoError(t, g.AddEdge(Edge{ID: "ab-short", U: "a", V: "b", Length: units.Meters(900)}))
	e, err := g.GetEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "ab-short", e.ID)

	_, err = g.GetEdge("c", "a")
	assert.ErrorContains(t, err, `no edge from "c" to "a"`)
}
