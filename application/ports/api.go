package ports

import (
	"context"
	"io"

	"github.com/ravjot07/TxGraph/domain/core/entities"
)

// GraphAPI is the port for the collaborator REST API. This layer never
// computes paths or clusters itself; it consumes them through these
// read-only contracts. Implementations report failures as fetch errors
// from pkg/errors.
type GraphAPI interface {
	// Users fetches every user
	Users(ctx context.Context) ([]entities.User, error)

	// Transactions fetches every transaction
	Transactions(ctx context.Context) ([]entities.Transaction, error)

	// UserRelationships fetches the neighborhood centered on a user
	UserRelationships(ctx context.Context, id int64) (entities.UserNeighborhood, error)

	// TransactionRelationships fetches the neighborhood centered on a
	// transaction
	TransactionRelationships(ctx context.Context, id int64) (entities.TransactionNeighborhood, error)

	// ShortestPathUsers fetches the computed path between two users in
	// whichever wire shape the collaborator produces. An empty result
	// means no path exists.
	ShortestPathUsers(ctx context.Context, fromID, toID int64) (entities.PathResult, error)

	// TransactionClusters fetches every cluster assignment
	TransactionClusters(ctx context.Context) ([]entities.ClusterAssignment, error)

	// ExportJSON fetches the full graph export
	ExportJSON(ctx context.Context) (entities.GraphExport, error)

	// ExportCSV streams the tabular export. Opaque to this layer: the
	// caller owns closing the reader.
	ExportCSV(ctx context.Context) (io.ReadCloser, error)
}
