package services

import (
	"github.com/ravjot07/TxGraph/domain/core/aggregates"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	"github.com/ravjot07/TxGraph/domain/core/valueobjects"
)

// PathEdgeRelationship labels ordered-walk edges, where the wire shape
// carries no relationship names.
const PathEdgeRelationship = "path"

// GraphAssembler normalizes the collaborator's payload shapes into a
// deduplicated ViewGraph ready for rendering. It is stateless and free
// of I/O; every operation runs to completion synchronously.
//
// Assembling never errors on well-formed input: a structurally absent
// optional field degrades the label instead of failing. A malformed
// payload (unknown entity kind, edge to an undeclared node) surfaces as
// an assembly error so callers can report "malformed graph data"
// distinctly from "empty result".
type GraphAssembler struct{}

// NewGraphAssembler creates a graph assembler
func NewGraphAssembler() *GraphAssembler {
	return &GraphAssembler{}
}

// FromFullExport assembles the flat export payload: one node per
// distinct entity key, one edge per exported relationship.
func (a *GraphAssembler) FromFullExport(export entities.GraphExport) (*aggregates.ViewGraph, error) {
	graph := aggregates.NewViewGraph()

	for _, n := range export.Nodes {
		kind, err := valueobjects.ParseKind(n.Type)
		if err != nil {
			return nil, err
		}
		key, err := valueobjects.NewEntityKey(kind, n.ID)
		if err != nil {
			return nil, err
		}
		graph.AddNode(key, exportNodeLabel(n, kind), kind)
	}

	for _, r := range export.Relationships {
		source, err := exportEndpointKey(r.SourceType, r.SourceID)
		if err != nil {
			return nil, err
		}
		target, err := exportEndpointKey(r.TargetType, r.TargetID)
		if err != nil {
			return nil, err
		}
		if err := graph.AddEdge(source, target, r.Relationship, false); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// FromUserNeighborhood assembles the relationship payload centered on a
// user: the focal user, every connected user and transaction, and one
// edge per connection.
func (a *GraphAssembler) FromUserNeighborhood(n entities.UserNeighborhood) (*aggregates.ViewGraph, error) {
	graph := aggregates.NewViewGraph()

	center := n.User
	graph.AddNode(center.Key(), center.DisplayLabel(), valueobjects.KindUser)

	for _, rc := range n.Connections.Users {
		graph.AddNode(rc.Node.Key(), rc.Node.DisplayLabel(), valueobjects.KindUser)
		// User-to-user relationships point center to related.
		if err := graph.AddEdge(center.Key(), rc.Node.Key(), rc.Relationship, false); err != nil {
			return nil, err
		}
	}

	for _, rc := range n.Connections.Transactions {
		graph.AddNode(rc.Node.Key(), rc.Node.DisplayLabel(), valueobjects.KindTransaction)
		if err := addUserTransactionEdge(graph, center.Key(), rc.Node.Key(), rc.Relationship); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// FromTransactionNeighborhood assembles the relationship payload
// centered on a transaction
func (a *GraphAssembler) FromTransactionNeighborhood(n entities.TransactionNeighborhood) (*aggregates.ViewGraph, error) {
	graph := aggregates.NewViewGraph()

	center := n.Transaction
	graph.AddNode(center.Key(), center.DisplayLabel(), valueobjects.KindTransaction)

	for _, rc := range n.Connections.Users {
		graph.AddNode(rc.Node.Key(), rc.Node.DisplayLabel(), valueobjects.KindUser)
		if err := addUserTransactionEdge(graph, rc.Node.Key(), center.Key(), rc.Relationship); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// FromPathSegments assembles a walked path described as hop triples.
// Endpoints recurring across segments collapse into one node; every
// segment becomes one highlighted edge. An empty segment list yields
// the empty graph: the caller renders "no path found", not an error.
func (a *GraphAssembler) FromPathSegments(segments []entities.PathSegment) (*aggregates.ViewGraph, error) {
	graph := aggregates.NewViewGraph()

	for _, s := range segments {
		from, err := addPathNode(graph, s.From)
		if err != nil {
			return nil, err
		}
		to, err := addPathNode(graph, s.To)
		if err != nil {
			return nil, err
		}
		if err := graph.AddEdge(from, to, s.Relationship, true); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// FromOrderedPath assembles the legacy path shape: a strictly ordered
// walk with no relationship names. Consecutive entities get one
// highlighted edge each, labeled generically since the wire shape
// carries nothing better.
func (a *GraphAssembler) FromOrderedPath(nodes []entities.PathNode) (*aggregates.ViewGraph, error) {
	graph := aggregates.NewViewGraph()

	keys := make([]valueobjects.EntityKey, 0, len(nodes))
	for _, n := range nodes {
		key, err := addPathNode(graph, n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	for i := 1; i < len(keys); i++ {
		if err := graph.AddEdge(keys[i-1], keys[i], PathEdgeRelationship, true); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// FromPathResult assembles whichever variant the collaborator returned.
// The two shapes are mutually exclusive alternatives; segments win when
// a response improbably carries both.
func (a *GraphAssembler) FromPathResult(result entities.PathResult) (*aggregates.ViewGraph, error) {
	if result.HasSegments() {
		return a.FromPathSegments(result.Segments)
	}
	if result.HasOrdered() {
		return a.FromOrderedPath(result.Ordered)
	}
	return aggregates.NewViewGraph(), nil
}

// addUserTransactionEdge applies the directional contract for edges
// between a user and a transaction: a SENT relationship points user to
// transaction, anything else points transaction to user.
func addUserTransactionEdge(graph *aggregates.ViewGraph, userKey, txnKey valueobjects.EntityKey, relationship string) error {
	if relationship == entities.RelationshipSent {
		return graph.AddEdge(userKey, txnKey, relationship, false)
	}
	return graph.AddEdge(txnKey, userKey, relationship, false)
}

// addPathNode declares a path endpoint, returning its key
func addPathNode(graph *aggregates.ViewGraph, n entities.PathNode) (valueobjects.EntityKey, error) {
	kind, err := valueobjects.ParseKind(n.Type)
	if err != nil {
		return "", err
	}
	key, err := valueobjects.NewEntityKey(kind, n.ID)
	if err != nil {
		return "", err
	}
	graph.AddNode(key, n.DisplayLabel(), kind)
	return key, nil
}

// exportEndpointKey derives the key for one endpoint of an exported
// relationship from its declared type
func exportEndpointKey(wireType string, id int64) (valueobjects.EntityKey, error) {
	kind, err := valueobjects.ParseKind(wireType)
	if err != nil {
		return "", err
	}
	return valueobjects.NewEntityKey(kind, id)
}

// exportNodeLabel derives the node label from export properties
func exportNodeLabel(n entities.ExportNode, kind valueobjects.EntityKind) string {
	if kind == valueobjects.KindUser {
		return n.StringProperty("name")
	}
	return entities.TransactionLabel(n.ID, n.StringProperty("deviceId"))
}
