package di

import (
	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/application/services"
	"github.com/ravjot07/TxGraph/infrastructure/api"
	"github.com/ravjot07/TxGraph/infrastructure/config"
	"github.com/ravjot07/TxGraph/infrastructure/render"
	"github.com/ravjot07/TxGraph/interfaces/http/rest"
	"github.com/ravjot07/TxGraph/pkg/observability"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger creates a logger tuned to the configured environment
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zcfg zap.Config
	if cfg.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("txgraph")
}

// ProvideAPIClient creates the graph API client
func ProvideAPIClient(cfg *config.Config, logger *zap.Logger) ports.GraphAPI {
	return api.NewClient(cfg.APIBaseURL, cfg.FetchTimeout(), logger)
}

// ProvideRenderSink creates the render target
func ProvideRenderSink(logger *zap.Logger) ports.RenderSink {
	return render.NewConsoleSink(logger)
}

// ProvideGraphViewService creates the graph view service
func ProvideGraphViewService(
	graphAPI ports.GraphAPI,
	sink ports.RenderSink,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.GraphViewService {
	return services.NewGraphViewService(graphAPI, sink, logger, metrics)
}

// ProvideListViewService creates the list view service
func ProvideListViewService(graphAPI ports.GraphAPI, logger *zap.Logger) *services.ListViewService {
	return services.NewListViewService(graphAPI, logger)
}

// ProvideClusterViewService creates the cluster view service
func ProvideClusterViewService(graphAPI ports.GraphAPI, logger *zap.Logger) *services.ClusterViewService {
	return services.NewClusterViewService(graphAPI, logger)
}

// ProvideRouter creates the operational HTTP router
func ProvideRouter(logger *zap.Logger, metrics *observability.Collector) *rest.Router {
	return rest.NewRouter(logger, metrics)
}
