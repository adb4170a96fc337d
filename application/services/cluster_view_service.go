package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/application/queries"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	"github.com/ravjot07/TxGraph/pkg/common"
)

// ClusterViewService backs the transaction-clustering table: the
// cluster filter composed with the paginator over the flat assignment
// list. It exists as a named composition because the view has its own
// UI surface.
type ClusterViewService struct {
	api    ports.GraphAPI
	logger *zap.Logger

	clusters []entities.ClusterAssignment
}

// NewClusterViewService creates a cluster view service
func NewClusterViewService(api ports.GraphAPI, logger *zap.Logger) *ClusterViewService {
	return &ClusterViewService{api: api, logger: logger}
}

// Activate fetches the cluster assignments for the view
func (s *ClusterViewService) Activate(ctx context.Context) error {
	s.Deactivate()

	clusters, err := s.api.TransactionClusters(ctx)
	if err != nil {
		s.logger.Error("cluster fetch failed", zap.Error(err))
		return err
	}

	s.clusters = clusters
	s.logger.Info("clusters activated", zap.Int("assignments", len(clusters)))
	return nil
}

// Deactivate discards the held assignments
func (s *ClusterViewService) Deactivate() {
	s.clusters = nil
}

// View returns the requested page of the filtered assignment table
func (s *ClusterViewService) View(state queries.ClusterViewState) common.Page[entities.ClusterAssignment] {
	filtered := state.Filter.Spec().Apply(s.clusters)
	return common.Paginate(filtered, state.Page, state.PageSize)
}
