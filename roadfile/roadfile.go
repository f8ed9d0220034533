// Package roadfile reads and writes road networks as YAML documents.
//
// A document lists intersections and roads:
//
//	nodes: [0, 1, 2, 9]
//	roads:
//	  - {from: 0, to: 1, distance: 10, delay: 5, class: car, two_way: true}
//	  - {from: 1, to: 2, distance: 4, delay: 0, damaged: true, class: bike}
//
// Intersections referenced by roads are added implicitly; `nodes` is only
// needed for isolated ones. A two_way road adds both directions with the same
// attributes. Unknown keys are rejected.
package roadfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/vehicle"
)

// ErrInvalidFile wraps every decoding or validation failure.
var ErrInvalidFile = errors.New("roadfile: invalid road network file")

// Document is the on-disk form of a road network.
type Document struct {
	Nodes []core.NodeID `yaml:"nodes,omitempty,flow"`
	Roads []Road        `yaml:"roads"`
}

// Road is one entry of Document.Roads.
type Road struct {
	From     core.NodeID `yaml:"from"`
	To       core.NodeID `yaml:"to"`
	Distance float64     `yaml:"distance"`
	Delay    float64     `yaml:"delay"`
	Damaged  bool        `yaml:"damaged,omitempty"`
	Class    string      `yaml:"class,omitempty"`
	TwoWay   bool        `yaml:"two_way,omitempty"`
}

// Decode reads one YAML document from r and builds a graph.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewGraph(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return doc.Graph()
}

// Graph converts the document into a core.Graph.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithNodes(d.Nodes...))
	for i, r := range d.Roads {
		class, err := vehicle.ParseClass(r.Class)
		if err != nil {
			return nil, fmt.Errorf("%w: road #%d: %w", ErrInvalidFile, i, err)
		}
		opts := []core.EdgeOption{core.WithDamage(r.Damaged), core.WithRoadClass(class)}
		if r.TwoWay {
			err = g.AddRoad(r.From, r.To, r.Distance, r.Delay, opts...)
		} else {
			err = g.AddEdge(r.From, r.To, r.Distance, r.Delay, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: road #%d %d→%d: %w", ErrInvalidFile, i, r.From, r.To, err)
		}
	}

	return g, nil
}

// Load opens path and decodes it.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// FromGraph describes g as a Document. A pair of opposite roads with equal
// attributes becomes a single two_way entry; only isolated intersections are
// listed under nodes.
func FromGraph(g *core.Graph) Document {
	var doc Document
	edges := g.Edges()
	linked := make(map[core.NodeID]bool, g.NodeCount())

	for _, e := range edges {
		linked[e.From], linked[e.To] = true, true

		back, err := g.Edge(e.To, e.From)
		twoWay := err == nil && sameRoad(e, back)
		if twoWay && e.From > e.To {
			continue
		}
		r := Road{
			From:     e.From,
			To:       e.To,
			Distance: e.Distance,
			Delay:    e.Delay,
			Damaged:  e.Damaged,
			TwoWay:   twoWay,
		}
		if e.RoadClass != vehicle.None {
			r.Class = e.RoadClass.String()
		}
		doc.Roads = append(doc.Roads, r)
	}
	for _, id := range g.Nodes() {
		if !linked[id] {
			doc.Nodes = append(doc.Nodes, id)
		}
	}

	return doc
}

func sameRoad(a, b core.Edge) bool {
	return a.Distance == b.Distance && a.Delay == b.Delay &&
		a.Damaged == b.Damaged && a.RoadClass == b.RoadClass
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("roadfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("roadfile: create %s: %w", path, err)
	}
	if err := Encode(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
