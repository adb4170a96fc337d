package render

import (
	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/domain/core/aggregates"
)

// ConsoleSink is a RenderSink that logs rendered elements instead of
// drawing them. It backs headless runs and local debugging; a real
// deployment injects the rendering engine's sink here.
type ConsoleSink struct {
	logger *zap.Logger
}

var _ ports.RenderSink = (*ConsoleSink)(nil)

// NewConsoleSink creates a console sink
func NewConsoleSink(logger *zap.Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

// Clear logs the removal of all elements
func (s *ConsoleSink) Clear() {
	s.logger.Debug("render: clear")
}

// Add logs the rendered batch
func (s *ConsoleSink) Add(nodes []aggregates.GraphNode, edges []aggregates.GraphEdge) {
	for _, n := range nodes {
		s.logger.Info("render: node",
			zap.String("key", n.Key.String()),
			zap.String("label", n.Label),
			zap.String("kind", n.Kind.String()),
		)
	}
	for _, e := range edges {
		s.logger.Info("render: edge",
			zap.String("id", e.ID),
			zap.String("source", e.Source.String()),
			zap.String("target", e.Target.String()),
			zap.String("label", e.Label),
			zap.Bool("highlighted", e.Highlighted),
		)
	}
}

// Layout logs the layout request; the animation is fire-and-forget
func (s *ConsoleSink) Layout() {
	s.logger.Debug("render: layout")
}

// Fit logs the viewport fit request
func (s *ConsoleSink) Fit() {
	s.logger.Debug("render: fit")
}
