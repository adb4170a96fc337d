package ports

import "github.com/ravjot07/TxGraph/domain/core/aggregates"

// RenderSink is the capability the rendering engine exposes. The core
// depends on this interface only, never on a rendering engine's
// internals, so views are testable without a layout dependency.
//
// The rendering contract is replace-not-merge: every graph-producing
// action clears the sink before adding the new batch. Layout runs
// fire-and-forget; the core does not await the animation.
type RenderSink interface {
	// Clear removes every rendered element
	Clear()

	// Add renders a batch of nodes and edges
	Add(nodes []aggregates.GraphNode, edges []aggregates.GraphEdge)

	// Layout runs the engine's layout pass over the current elements
	Layout()

	// Fit adjusts the viewport to the current elements
	Fit()
}
