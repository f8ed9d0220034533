package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/roadnet/vehicle"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a road from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge for the same ordered pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrNegativeDistance indicates a negative or non-finite distance.
	ErrNegativeDistance = errors.New("core: distance must be a non-negative finite number")

	// ErrNegativeDelay indicates a negative or non-finite delay.
	ErrNegativeDelay = errors.New("core: delay must be a non-negative finite number")
)

// NodeID identifies an intersection. Values are opaque to the graph.
type NodeID int

// Edge is a one-way road segment From→To.
type Edge struct {
	From NodeID
	To   NodeID

	// Distance is the road length; Delay the traffic delay. Both >= 0.
	Distance float64
	Delay    float64

	// Damaged roads take a vehicle-dependent penalty and are ineligible for
	// vehicles that cannot travel on damaged roads.
	Damaged bool

	// RoadClass records which vehicle class the road was labelled for.
	// It does not restrict travel.
	RoadClass vehicle.Class
}

// BaseWeight returns Distance + Delay.
func (e Edge) BaseWeight() float64 { return e.Distance + e.Delay }

// CostFor returns the traversal cost of e for v (see vehicle.Weight).
func (e Edge) CostFor(v vehicle.Vehicle) float64 {
	return vehicle.Weight(e.Distance, e.Delay, e.Damaged, v)
}

// EligibleFor reports whether v may travel on e.
func (e Edge) EligibleFor(v vehicle.Vehicle) bool { return v.CanUse(e.Damaged) }

// EdgeOption configures attributes of an edge when it is added.
type EdgeOption func(*Edge)

// WithDamaged marks the road as damaged.
func WithDamaged() EdgeOption {
	return func(e *Edge) { e.Damaged = true }
}

// WithDamage sets the damage flag explicitly.
func WithDamage(damaged bool) EdgeOption {
	return func(e *Edge) { e.Damaged = damaged }
}

// WithRoadClass labels the road with a vehicle class.
func WithRoadClass(c vehicle.Class) EdgeOption {
	return func(e *Edge) { e.RoadClass = c }
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithNodes pre-registers isolated nodes.
func WithNodes(ids ...NodeID) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			g.ensureNode(id)
		}
	}
}

// Graph is the road network.
//
// adjacency[from][to] holds the single edge of each ordered pair; every
// node has an (initially empty) adjacency bucket.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[NodeID]map[NodeID]*Edge
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[NodeID]map[NodeID]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ensureNode registers id if absent. Caller holds the write lock (or owns g).
func (g *Graph) ensureNode(id NodeID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[NodeID]*Edge)
	}
}
