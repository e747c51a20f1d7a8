// Package graph assembles billing records into an in-memory directed lineage
// graph and renders it as a JSON document. Edges are declared by the caller,
// not derived from foreign keys: the graph encodes a conceptual data flow,
// which deliberately skips some join relationships present in the rows.
package graph

import (
	"encoding/json"
	"strings"

	"github.com/feewise/billgraph/internal/models"
	appErr "github.com/feewise/billgraph/pkg/errors"
)

// Node wraps one record for the lineage graph: the table it came from plus
// the minimal/others partition of its serialized attributes.
type Node struct {
	ID      string         `json:"id"`
	Table   string         `json:"table"`
	Minimal map[string]any `json:"minimal"`
	Others  map[string]any `json:"others"`
}

// Edge is a directed lineage relationship between two node ids. Edges carry
// no weight or label.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Document is the serialized form of a graph. Nodes and edges keep their
// insertion order.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Graph is an in-memory directed record graph. It is built synchronously and
// is not safe for concurrent use; none is needed.
type Graph struct {
	nodes []Node
	index map[string]int
	edges []Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: map[string]int{}}
}

// AddRecord validates the record and inserts it as a node keyed by id. An
// invalid record or a duplicate id is rejected; a record that fails its own
// construction constraints can never appear in a graph.
func (g *Graph) AddRecord(id string, s models.Schema) error {
	if id == "" {
		return appErr.New(appErr.CodeValidation, "node id is required")
	}
	if _, ok := g.index[id]; ok {
		return appErr.New(appErr.CodeConflict, "duplicate node id").WithMeta("id", id)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	minimal, others, err := models.Split(s)
	if err != nil {
		return err
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Table: s.TableName(), Minimal: minimal, Others: others})
	return nil
}

// AddEdge declares a directed lineage edge between two previously added
// nodes. Dangling references fail here rather than surfacing later in the
// emitted document.
func (g *Graph) AddEdge(source, target string) error {
	for _, id := range []string{source, target} {
		if _, ok := g.index[id]; !ok {
			return appErr.New(appErr.CodeValidation, "edge references unknown node").WithMeta("id", id)
		}
	}
	g.edges = append(g.edges, Edge{Source: source, Target: target})
	return nil
}

// Node returns the node with the given id, if present.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Document returns the serializable view of the graph. No node or edge is
// ever dropped; ordering follows insertion.
func (g *Graph) Document() Document {
	doc := Document{
		Nodes: make([]Node, len(g.nodes)),
		Edges: make([]Edge, len(g.edges)),
	}
	copy(doc.Nodes, g.nodes)
	copy(doc.Edges, g.edges)
	return doc
}

// MarshalIndent renders the graph document as deterministic JSON: lists in
// insertion order, object keys in encoding/json's sorted map order.
func (g *Graph) MarshalIndent(indent int) ([]byte, error) {
	out, err := json.MarshalIndent(g.Document(), "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "marshal graph document")
	}
	return out, nil
}
