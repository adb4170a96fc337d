//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/ravjot07/TxGraph/application/services"
	"github.com/ravjot07/TxGraph/infrastructure/config"
	"github.com/ravjot07/TxGraph/interfaces/http/rest"
	"github.com/ravjot07/TxGraph/pkg/observability"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Collector
	GraphView   *services.GraphViewService
	ListView    *services.ListViewService
	ClusterView *services.ClusterViewService
	Router      *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideAPIClient,
	ProvideRenderSink,
	ProvideGraphViewService,
	ProvideListViewService,
	ProvideClusterViewService,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
