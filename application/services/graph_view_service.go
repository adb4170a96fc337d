package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/domain/core/aggregates"
	domainservices "github.com/ravjot07/TxGraph/domain/services"
	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
	"github.com/ravjot07/TxGraph/pkg/observability"
)

// Source labels for assembled-graph metrics
const (
	sourceFullExport              = "full_export"
	sourceUserNeighborhood        = "user_neighborhood"
	sourceTransactionNeighborhood = "transaction_neighborhood"
	sourceShortestPath            = "shortest_path"
)

// GraphViewService orchestrates the graph-producing user actions:
// fetch from the collaborator, assemble, then replace the rendered
// graph. The contract is clear-then-add: every action replaces the
// previous graph, and any failure leaves the sink cleared with the
// error surfaced, never a stale partial graph.
//
// Rapid double submission of two different actions has no ordering
// guarantee over which result lands last; the accepted contract is
// last-write-wins, not sequencing.
type GraphViewService struct {
	api       ports.GraphAPI
	sink      ports.RenderSink
	assembler *domainservices.GraphAssembler
	logger    *zap.Logger
	metrics   *observability.Collector
	tracer    *observability.Tracer
}

// NewGraphViewService creates a graph view service
func NewGraphViewService(
	api ports.GraphAPI,
	sink ports.RenderSink,
	logger *zap.Logger,
	metrics *observability.Collector,
) *GraphViewService {
	return &GraphViewService{
		api:       api,
		sink:      sink,
		assembler: domainservices.NewGraphAssembler(),
		logger:    logger,
		metrics:   metrics,
		tracer:    observability.NewTracer("graph-view"),
	}
}

// ShowFullGraph renders the complete exported graph
func (s *GraphViewService) ShowFullGraph(ctx context.Context) error {
	opID := uuid.New().String()
	log := s.logger.With(zap.String("operationID", opID), zap.String("action", "full_graph"))

	return s.tracer.TraceFunction(ctx, "ShowFullGraph", func(ctx context.Context) error {
		start := time.Now()
		export, err := s.api.ExportJSON(ctx)
		s.metrics.ObserveFetch("export_json", time.Since(start), err)
		if err != nil {
			return s.failCleared(log, "full graph fetch failed", err)
		}

		graph, err := s.assembler.FromFullExport(export)
		if err != nil {
			return s.failAssembly(log, err)
		}

		s.render(log, graph, sourceFullExport)
		return nil
	})
}

// ShowUserNeighborhood renders the relationship neighborhood of a user
func (s *GraphViewService) ShowUserNeighborhood(ctx context.Context, id int64) error {
	opID := uuid.New().String()
	log := s.logger.With(
		zap.String("operationID", opID),
		zap.String("action", "user_neighborhood"),
		zap.Int64("userID", id),
	)

	return s.tracer.TraceFunction(ctx, "ShowUserNeighborhood", func(ctx context.Context) error {
		start := time.Now()
		neighborhood, err := s.api.UserRelationships(ctx, id)
		s.metrics.ObserveFetch("user_relationships", time.Since(start), err)
		if err != nil {
			return s.failCleared(log, "user neighborhood fetch failed", err)
		}

		graph, err := s.assembler.FromUserNeighborhood(neighborhood)
		if err != nil {
			return s.failAssembly(log, err)
		}

		s.render(log, graph, sourceUserNeighborhood)
		return nil
	})
}

// ShowTransactionNeighborhood renders the relationship neighborhood of
// a transaction
func (s *GraphViewService) ShowTransactionNeighborhood(ctx context.Context, id int64) error {
	opID := uuid.New().String()
	log := s.logger.With(
		zap.String("operationID", opID),
		zap.String("action", "transaction_neighborhood"),
		zap.Int64("transactionID", id),
	)

	return s.tracer.TraceFunction(ctx, "ShowTransactionNeighborhood", func(ctx context.Context) error {
		start := time.Now()
		neighborhood, err := s.api.TransactionRelationships(ctx, id)
		s.metrics.ObserveFetch("transaction_relationships", time.Since(start), err)
		if err != nil {
			return s.failCleared(log, "transaction neighborhood fetch failed", err)
		}

		graph, err := s.assembler.FromTransactionNeighborhood(neighborhood)
		if err != nil {
			return s.failAssembly(log, err)
		}

		s.render(log, graph, sourceTransactionNeighborhood)
		return nil
	})
}

// ShowShortestPath renders the computed path between two users. An
// empty path clears the view and reports an empty result, which the
// caller renders as "no path found", distinct from a failure.
func (s *GraphViewService) ShowShortestPath(ctx context.Context, fromID, toID int64) error {
	opID := uuid.New().String()
	log := s.logger.With(
		zap.String("operationID", opID),
		zap.String("action", "shortest_path"),
		zap.Int64("fromID", fromID),
		zap.Int64("toID", toID),
	)

	return s.tracer.TraceFunction(ctx, "ShowShortestPath", func(ctx context.Context) error {
		start := time.Now()
		result, err := s.api.ShortestPathUsers(ctx, fromID, toID)
		s.metrics.ObserveFetch("shortest_path", time.Since(start), err)
		if err != nil {
			return s.failCleared(log, "shortest path fetch failed", err)
		}

		if result.IsEmpty() {
			s.clear()
			log.Info("no path between users")
			return pkgerrors.NewEmptyResultError("no path found between those users")
		}

		graph, err := s.assembler.FromPathResult(result)
		if err != nil {
			return s.failAssembly(log, err)
		}

		s.render(log, graph, sourceShortestPath)
		return nil
	})
}

// ExportCSV streams the tabular export through to the writer. The
// payload is opaque to this layer.
func (s *GraphViewService) ExportCSV(ctx context.Context, w io.Writer) error {
	start := time.Now()
	body, err := s.api.ExportCSV(ctx)
	s.metrics.ObserveFetch("export_csv", time.Since(start), err)
	if err != nil {
		s.logger.Error("csv export fetch failed", zap.Error(err))
		return err
	}
	defer body.Close()

	if _, err := io.Copy(w, body); err != nil {
		return err
	}
	return nil
}

// render replaces the sink contents with the assembled graph
func (s *GraphViewService) render(log *zap.Logger, graph *aggregates.ViewGraph, source string) {
	nodes := graph.Nodes()
	edges := graph.Edges()

	s.sink.Clear()
	s.sink.Add(nodes, edges)
	s.sink.Layout()
	s.sink.Fit()

	s.metrics.GraphsAssembled.WithLabelValues(source).Inc()
	s.metrics.ObserveRender(len(nodes), len(edges))
	log.Info("graph rendered", zap.Int("nodes", len(nodes)), zap.Int("edges", len(edges)))
}

// failCleared logs a fetch failure and leaves the view empty
func (s *GraphViewService) failCleared(log *zap.Logger, msg string, err error) error {
	s.clear()
	log.Error(msg, zap.Error(err))
	return err
}

// failAssembly logs a malformed payload and leaves the view empty
func (s *GraphViewService) failAssembly(log *zap.Logger, err error) error {
	s.clear()
	s.metrics.AssemblyErrors.Inc()
	log.Error("error computing graph", zap.Error(err))
	return err
}

func (s *GraphViewService) clear() {
	s.sink.Clear()
	s.metrics.ObserveRender(0, 0)
}
