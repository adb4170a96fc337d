package aggregates

import (
	"strconv"
	"strings"

	"github.com/ravjot07/TxGraph/domain/core/valueobjects"
	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
)

// GraphNode is one renderable node of an assembled view graph
type GraphNode struct {
	Key   valueobjects.EntityKey  `json:"id"`
	Label string                  `json:"label"`
	Kind  valueobjects.EntityKind `json:"kind"`
}

// GraphEdge is one renderable edge of an assembled view graph.
// Direction encodes semantic meaning: a SENT edge points user to
// transaction, a receipt edge points transaction to user.
type GraphEdge struct {
	ID               string                 `json:"id"`
	Source           valueobjects.EntityKey `json:"source"`
	Target           valueobjects.EntityKey `json:"target"`
	RelationshipKind string                 `json:"relationship"`
	Label            string                 `json:"label"`
	Highlighted      bool                   `json:"highlighted"`
}

// ViewGraph is the aggregate for one assembled rendering batch.
// It enforces the consistency rules of the batch: at most one node per
// entity key, unique edge ids, and no edge to an undeclared node.
type ViewGraph struct {
	nodes     []GraphNode
	nodeIndex map[valueobjects.EntityKey]struct{}
	edges     []GraphEdge
	edgeSeen  map[string]int
}

// NewViewGraph creates an empty view graph
func NewViewGraph() *ViewGraph {
	return &ViewGraph{
		nodeIndex: make(map[valueobjects.EntityKey]struct{}),
		edgeSeen:  make(map[string]int),
	}
}

// AddNode adds a node unless its key is already present. Later
// duplicates are ignored, not merged: the first label wins. Returns
// whether the node was added.
func (g *ViewGraph) AddNode(key valueobjects.EntityKey, label string, kind valueobjects.EntityKind) bool {
	if _, exists := g.nodeIndex[key]; exists {
		return false
	}
	g.nodeIndex[key] = struct{}{}
	g.nodes = append(g.nodes, GraphNode{Key: key, Label: label, Kind: kind})
	return true
}

// HasNode reports whether a node with the key was declared
func (g *ViewGraph) HasNode(key valueobjects.EntityKey) bool {
	_, ok := g.nodeIndex[key]
	return ok
}

// AddEdge adds an edge between two declared nodes. The edge id is a
// deterministic function of (source, target); a repeated pair gets an
// index suffix so ids stay unique within the batch. An endpoint never
// declared as a node is a malformed payload, not a renderable edge.
func (g *ViewGraph) AddEdge(source, target valueobjects.EntityKey, relationship string, highlighted bool) error {
	if !g.HasNode(source) {
		return pkgerrors.NewAssemblyError("edge references undeclared node").
			WithDetail("key", source.String())
	}
	if !g.HasNode(target) {
		return pkgerrors.NewAssemblyError("edge references undeclared node").
			WithDetail("key", target.String())
	}

	id := "e_" + source.String() + "_" + target.String()
	if n := g.edgeSeen[id]; n > 0 {
		g.edgeSeen[id] = n + 1
		id = id + "_" + strconv.Itoa(n)
	} else {
		g.edgeSeen[id] = 1
	}

	g.edges = append(g.edges, GraphEdge{
		ID:               id,
		Source:           source,
		Target:           target,
		RelationshipKind: relationship,
		Label:            HumanizeRelationship(relationship),
		Highlighted:      highlighted,
	})
	return nil
}

// Nodes returns the declared nodes in insertion order
func (g *ViewGraph) Nodes() []GraphNode {
	out := make([]GraphNode, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the declared edges in insertion order
func (g *ViewGraph) Edges() []GraphEdge {
	out := make([]GraphEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of distinct nodes
func (g *ViewGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *ViewGraph) EdgeCount() int {
	return len(g.edges)
}

// IsEmpty reports whether the graph holds no elements
func (g *ViewGraph) IsEmpty() bool {
	return len(g.nodes) == 0 && len(g.edges) == 0
}

// HumanizeRelationship converts a wire relationship name to its edge
// label form, replacing underscores with spaces
func HumanizeRelationship(relationship string) string {
	return strings.ReplaceAll(relationship, "_", " ")
}
