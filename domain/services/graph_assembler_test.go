package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravjot07/TxGraph/domain/core/aggregates"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	"github.com/ravjot07/TxGraph/domain/core/valueobjects"
	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
)

func findNode(t *testing.T, nodes []aggregates.GraphNode, key string) aggregates.GraphNode {
	t.Helper()
	for _, n := range nodes {
		if n.Key == valueobjects.EntityKey(key) {
			return n
		}
	}
	t.Fatalf("node %s not found", key)
	return aggregates.GraphNode{}
}

func TestFromFullExport(t *testing.T) {
	assembler := NewGraphAssembler()

	export := entities.GraphExport{
		Nodes: []entities.ExportNode{
			{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice"}},
			{ID: 7, Type: "Transaction", Properties: map[string]any{}},
		},
		Relationships: []entities.ExportRelationship{
			{SourceID: 1, SourceType: "User", TargetID: 7, TargetType: "Transaction", Relationship: "SENT"},
		},
	}

	graph, err := assembler.FromFullExport(export)
	require.NoError(t, err)

	require.Equal(t, 2, graph.NodeCount())
	assert.Equal(t, "Alice", findNode(t, graph.Nodes(), "u1").Label)
	assert.Equal(t, "Txn #7", findNode(t, graph.Nodes(), "t7").Label)

	edges := graph.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, valueobjects.EntityKey("u1"), edges[0].Source)
	assert.Equal(t, valueobjects.EntityKey("t7"), edges[0].Target)
	assert.Equal(t, "SENT", edges[0].Label)
	assert.False(t, edges[0].Highlighted)
}

func TestFromFullExportDeviceIDLabel(t *testing.T) {
	assembler := NewGraphAssembler()

	export := entities.GraphExport{
		Nodes: []entities.ExportNode{
			{ID: 9, Type: "Transaction", Properties: map[string]any{"deviceId": "dev-42"}},
		},
	}

	graph, err := assembler.FromFullExport(export)
	require.NoError(t, err)
	assert.Equal(t, "Txn #9 (dev-42)", findNode(t, graph.Nodes(), "t9").Label)
}

func TestFromFullExportDuplicateNodesIgnored(t *testing.T) {
	assembler := NewGraphAssembler()

	export := entities.GraphExport{
		Nodes: []entities.ExportNode{
			{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice"}},
			{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice (dup)"}},
		},
	}

	graph, err := assembler.FromFullExport(export)
	require.NoError(t, err)
	require.Equal(t, 1, graph.NodeCount())
	assert.Equal(t, "Alice", graph.Nodes()[0].Label)
}

func TestFromFullExportUnknownKind(t *testing.T) {
	assembler := NewGraphAssembler()

	tests := []struct {
		name   string
		export entities.GraphExport
	}{
		{
			name: "unknown node type",
			export: entities.GraphExport{
				Nodes: []entities.ExportNode{{ID: 1, Type: "Wallet"}},
			},
		},
		{
			name: "unknown relationship endpoint type",
			export: entities.GraphExport{
				Nodes: []entities.ExportNode{
					{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice"}},
				},
				Relationships: []entities.ExportRelationship{
					{SourceID: 1, SourceType: "Wallet", TargetID: 1, TargetType: "User", Relationship: "SENT"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := assembler.FromFullExport(tt.export)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsAssembly(err))
		})
	}
}

func TestFromFullExportDanglingRelationship(t *testing.T) {
	assembler := NewGraphAssembler()

	export := entities.GraphExport{
		Nodes: []entities.ExportNode{
			{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice"}},
		},
		Relationships: []entities.ExportRelationship{
			{SourceID: 1, SourceType: "User", TargetID: 7, TargetType: "Transaction", Relationship: "SENT"},
		},
	}

	_, err := assembler.FromFullExport(export)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsAssembly(err))
}

func TestFromFullExportHumanizesEdgeLabel(t *testing.T) {
	assembler := NewGraphAssembler()

	export := entities.GraphExport{
		Nodes: []entities.ExportNode{
			{ID: 1, Type: "User", Properties: map[string]any{"name": "Alice"}},
			{ID: 2, Type: "User", Properties: map[string]any{"name": "Bob"}},
		},
		Relationships: []entities.ExportRelationship{
			{SourceID: 1, SourceType: "User", TargetID: 2, TargetType: "User", Relationship: "SHARED_EMAIL"},
		},
	}

	graph, err := assembler.FromFullExport(export)
	require.NoError(t, err)

	edge := graph.Edges()[0]
	assert.Equal(t, "SHARED_EMAIL", edge.RelationshipKind)
	assert.Equal(t, "SHARED EMAIL", edge.Label)
}

func TestFromUserNeighborhoodDirections(t *testing.T) {
	assembler := NewGraphAssembler()

	center := entities.User{ID: 1, Name: "Alice"}

	tests := []struct {
		name         string
		relationship string
		wantSource   valueobjects.EntityKey
		wantTarget   valueobjects.EntityKey
	}{
		{name: "SENT points user to transaction", relationship: "SENT", wantSource: "u1", wantTarget: "t7"},
		{name: "RECEIVED_BY points transaction to user", relationship: "RECEIVED_BY", wantSource: "t7", wantTarget: "u1"},
		{name: "any other relationship points transaction to user", relationship: "DISPUTED", wantSource: "t7", wantTarget: "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph, err := assembler.FromUserNeighborhood(entities.UserNeighborhood{
				User: center,
				Connections: entities.UserConnections{
					Transactions: []entities.RelatedTransaction{
						{Node: entities.Transaction{ID: 7}, Relationship: tt.relationship},
					},
				},
			})
			require.NoError(t, err)

			edges := graph.Edges()
			require.Len(t, edges, 1)
			assert.Equal(t, tt.wantSource, edges[0].Source)
			assert.Equal(t, tt.wantTarget, edges[0].Target)
			assert.Equal(t, tt.relationship, edges[0].RelationshipKind)
		})
	}
}

func TestFromUserNeighborhoodUserEdgesPointOutward(t *testing.T) {
	assembler := NewGraphAssembler()

	graph, err := assembler.FromUserNeighborhood(entities.UserNeighborhood{
		User: entities.User{ID: 1, Name: "Alice"},
		Connections: entities.UserConnections{
			Users: []entities.RelatedUser{
				{Node: entities.User{ID: 2, Name: "Bob"}, Relationship: "SHARED_EMAIL"},
			},
		},
	})
	require.NoError(t, err)

	edges := graph.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, valueobjects.EntityKey("u1"), edges[0].Source)
	assert.Equal(t, valueobjects.EntityKey("u2"), edges[0].Target)
	assert.Equal(t, "SHARED EMAIL", edges[0].Label)
}

func TestFromUserNeighborhoodHubDedup(t *testing.T) {
	assembler := NewGraphAssembler()

	// The same related user appears in five relationships: exactly one
	// node, five edges.
	related := make([]entities.RelatedUser, 5)
	rels := []string{"SHARED_EMAIL", "SHARED_PHONE", "SHARED_DEVICE", "SHARED_ADDRESS", "SHARED_IP"}
	for i, rel := range rels {
		related[i] = entities.RelatedUser{Node: entities.User{ID: 2, Name: "Bob"}, Relationship: rel}
	}

	graph, err := assembler.FromUserNeighborhood(entities.UserNeighborhood{
		User:        entities.User{ID: 1, Name: "Alice"},
		Connections: entities.UserConnections{Users: related},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, graph.NodeCount())
	assert.Equal(t, 5, graph.EdgeCount())
}

func TestFromTransactionNeighborhood(t *testing.T) {
	assembler := NewGraphAssembler()

	graph, err := assembler.FromTransactionNeighborhood(entities.TransactionNeighborhood{
		Transaction: entities.Transaction{ID: 7, DeviceID: "dev-1"},
		Connections: entities.TransactionConnections{
			Users: []entities.RelatedUser{
				{Node: entities.User{ID: 1, Name: "Alice"}, Relationship: "SENT"},
				{Node: entities.User{ID: 2, Name: "Bob"}, Relationship: "RECEIVED_BY"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Txn #7 (dev-1)", findNode(t, graph.Nodes(), "t7").Label)

	edges := graph.Edges()
	require.Len(t, edges, 2)
	// Sender points into the transaction, receiver is pointed at.
	assert.Equal(t, valueobjects.EntityKey("u1"), edges[0].Source)
	assert.Equal(t, valueobjects.EntityKey("t7"), edges[0].Target)
	assert.Equal(t, valueobjects.EntityKey("t7"), edges[1].Source)
	assert.Equal(t, valueobjects.EntityKey("u2"), edges[1].Target)
}

func TestFromPathSegments(t *testing.T) {
	assembler := NewGraphAssembler()

	segments := []entities.PathSegment{
		{
			From:         entities.PathNode{ID: 1, Type: "User", Name: "Alice"},
			To:           entities.PathNode{ID: 7, Type: "Transaction"},
			Relationship: "SENT",
		},
		{
			From:         entities.PathNode{ID: 7, Type: "Transaction"},
			To:           entities.PathNode{ID: 2, Type: "User", Name: "Bob"},
			Relationship: "RECEIVED_BY",
		},
	}

	graph, err := assembler.FromPathSegments(segments)
	require.NoError(t, err)

	// t7 appears in both segments but yields one node.
	assert.Equal(t, 3, graph.NodeCount())

	edges := graph.Edges()
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.True(t, e.Highlighted)
	}
	assert.Equal(t, "RECEIVED BY", edges[1].Label)
}

func TestFromPathSegmentsEmpty(t *testing.T) {
	assembler := NewGraphAssembler()

	graph, err := assembler.FromPathSegments(nil)
	require.NoError(t, err)
	assert.True(t, graph.IsEmpty())
}

func TestFromPathSegmentsUnknownKind(t *testing.T) {
	assembler := NewGraphAssembler()

	_, err := assembler.FromPathSegments([]entities.PathSegment{
		{
			From:         entities.PathNode{ID: 1, Type: "Wallet"},
			To:           entities.PathNode{ID: 2, Type: "User", Name: "Bob"},
			Relationship: "SENT",
		},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsAssembly(err))
}

func TestFromOrderedPath(t *testing.T) {
	assembler := NewGraphAssembler()

	nodes := []entities.PathNode{
		{ID: 1, Type: "User", Name: "Alice"},
		{ID: 7, Type: "Transaction", DeviceID: "dev-1"},
		{ID: 2, Type: "User", Name: "Bob"},
	}

	graph, err := assembler.FromOrderedPath(nodes)
	require.NoError(t, err)

	assert.Equal(t, 3, graph.NodeCount())
	assert.Equal(t, "Txn #7 (dev-1)", findNode(t, graph.Nodes(), "t7").Label)

	edges := graph.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, valueobjects.EntityKey("u1"), edges[0].Source)
	assert.Equal(t, valueobjects.EntityKey("t7"), edges[0].Target)
	assert.Equal(t, valueobjects.EntityKey("t7"), edges[1].Source)
	assert.Equal(t, valueobjects.EntityKey("u2"), edges[1].Target)
	for _, e := range edges {
		assert.True(t, e.Highlighted)
		assert.Equal(t, PathEdgeRelationship, e.Label)
	}
}

func TestFromPathResultVariants(t *testing.T) {
	assembler := NewGraphAssembler()

	segmentResult := entities.PathResult{
		Segments: []entities.PathSegment{
			{
				From:         entities.PathNode{ID: 1, Type: "User", Name: "Alice"},
				To:           entities.PathNode{ID: 2, Type: "User", Name: "Bob"},
				Relationship: "SHARED_EMAIL",
			},
		},
	}
	graph, err := assembler.FromPathResult(segmentResult)
	require.NoError(t, err)
	assert.Equal(t, "SHARED EMAIL", graph.Edges()[0].Label)

	orderedResult := entities.PathResult{
		Ordered: []entities.PathNode{
			{ID: 1, Type: "User", Name: "Alice"},
			{ID: 2, Type: "User", Name: "Bob"},
		},
	}
	graph, err = assembler.FromPathResult(orderedResult)
	require.NoError(t, err)
	assert.Equal(t, PathEdgeRelationship, graph.Edges()[0].Label)

	graph, err = assembler.FromPathResult(entities.PathResult{})
	require.NoError(t, err)
	assert.True(t, graph.IsEmpty())
}
