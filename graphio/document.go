package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/core"
)

// ErrEmptyDocument indicates a document with neither vertices nor edges.
var ErrEmptyDocument = errors.New("graphio: document has no vertices or edges")

// ErrMissingWeight indicates an edge entry with no weight or a null weight.
var ErrMissingWeight = errors.New("graphio: edge has no weight")

// ErrConflictingEdge indicates the same unordered pair listed twice with different weights.
var ErrConflictingEdge = errors.New("graphio: conflicting weights for the same edge")

// Document is the serialized form of a location graph.
type Document struct {
	Name     string     `yaml:"name,omitempty" json:"name,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges"`
}

// EdgeSpec is one undirected edge of a Document.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	// Weight is required; nil means the document left it out.
	Weight *float64 `yaml:"weight" json:"weight"`
}

// WeightOf returns a Weight value for building EdgeSpecs in code.
func WeightOf(w float64) *float64 { return &w }

// Decode reads a YAML or JSON document from r. Unknown fields are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}
		return Document{}, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc, nil
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Build validates doc and turns it into a graph.
//
// A pair listed twice (in either orientation) is accepted when the weights
// agree and rejected with ErrConflictingEdge otherwise. All other validation
// errors come from core and can be matched with errors.Is.
func Build(doc Document) (*core.Graph, error) {
	if len(doc.Vertices) == 0 && len(doc.Edges) == 0 {
		return nil, ErrEmptyDocument
	}

	g := core.NewGraph()
	for _, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}
	for i, e := range doc.Edges {
		if e.Weight == nil {
			return nil, fmt.Errorf("%w: edge #%d %s—%s", ErrMissingWeight, i, e.From, e.To)
		}
		w := *e.Weight
		err := g.AddEdge(e.From, e.To, w)
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			existing, _ := g.Weight(e.From, e.To)
			if existing == w {
				continue
			}
			return nil, fmt.Errorf("%w: %s—%s has %v and %v", ErrConflictingEdge, e.From, e.To, existing, w)
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph converts g back into a Document, one entry per undirected edge,
// listing only isolated vertices explicitly.
func FromGraph(name string, g *core.Graph) Document {
	doc := Document{Name: name}
	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: WeightOf(e.Weight)})
		touched[e.From] = true
		touched[e.To] = true
	}
	for _, v := range g.Vertices() {
		if !touched[v] {
			doc.Vertices = append(doc.Vertices, v)
		}
	}

	return doc
}

// Parse decodes and builds a graph from raw bytes.
func Parse(data []byte) (*core.Graph, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return Build(doc)
}

// LoadFile reads and builds the graph document at path.
func LoadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	return Parse(data)
}
