package server

import (
	"context"
	"log/slog"
	"net/http"

	"leafs-result-service/internal/config"
	"leafs-result-service/internal/httpapi"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/metrics"
	"leafs-result-service/internal/poller"
	"leafs-result-service/internal/providers"
	"leafs-result-service/internal/providers/nhle"
	"leafs-result-service/internal/rebuild"
	"leafs-result-service/internal/recap"
	"leafs-result-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server composes the poller, stores and HTTP surfaces.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and store wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	var provider providers.GameProvider = nhle.NewClient(nhle.Config{BaseURL: cfg.NHLE.BaseURL})
	provider = providers.NewRetryingProvider(provider, logger, recorder, nhle.ProviderName, 0, 0)

	st := buildStore(cfg.Store, logger)
	generator := recap.NewGenerator(recap.Config(cfg.Recap), logger, recorder)
	if !generator.Enabled() {
		logging.Warn(logger, "no text-generation credential configured, recaps disabled")
	}
	trigger := rebuild.NewTrigger(cfg.Rebuild.WebhookURL, nil, logger)

	plr := poller.New(poller.Config{
		Provider:  provider,
		Results:   st,
		State:     st,
		Generator: generator,
		Rebuild:   trigger,
		TeamCode:  cfg.TrackedTeam,
		Logger:    logger,
		Metrics:   recorder,
		Interval:  cfg.PollInterval,
	})

	handler := httpapi.NewHandler(st, logger, plr.Status)
	router := httpapi.NewRouter(handler, logger, recorder)
	httpSrv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		poller:        plr,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the poller and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
