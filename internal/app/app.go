package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	healthcheck "github.com/vladislavdragonenkov/rms/internal/health"
	grpcsvc "github.com/vladislavdragonenkov/rms/internal/service/grpc"
	"github.com/vladislavdragonenkov/rms/internal/service/idempotency"
	"github.com/vladislavdragonenkov/rms/internal/version"
	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

// Run поднимает gRPC-сервер админки и служебный HTTP-сервер и блокируется до отмены ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	deps, err := initRuntimeDependencies(cfg, logger)
	if err != nil {
		return err
	}

	dashboardService := grpcsvc.NewDashboardService(
		deps.dashboard,
		deps.store.Idempotency,
		cfg.IdempotencyTTL,
		logger.WithField("layer", "grpc"),
	)

	grpcMetrics := promgrpc.NewServerMetrics()
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	rmsv1.RegisterDashboardServiceServer(grpcServer, dashboardService)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(rmsv1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	grpcMetrics.InitializeMetrics(grpcServer)

	serving := healthcheck.NewStaticChecker("grpc", healthcheck.StatusHealthy)
	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("store", deps.storeChecker)
	healthHandler.RegisterChecker("grpc", serving)

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		shutdownHTTP(metricsSrv, logger)
		return err
	}

	cleanupCtx, cleanupCancel := context.WithCancel(ctx)
	cleanupDone := make(chan struct{})
	cleanupWorker := idempotency.NewCleanupWorker(
		deps.store.Idempotency,
		idempotency.WithLogger(logger.WithField("worker", "idempotency_cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	go func() {
		defer close(cleanupDone)
		cleanupWorker.Run(cleanupCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		healthServer.Shutdown()
		serving.Set(healthcheck.StatusUnhealthy, "shutting down")
		stoppedCh := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stoppedCh)
		}()
		select {
		case <-stoppedCh:
		case <-time.After(5 * time.Second):
			logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
			grpcServer.Stop()
		}
		shutdownCleanupWorker(cleanupCancel, cleanupDone, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownCleanupWorker(cleanupCancel, cleanupDone, logger)
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// shutdownCleanupWorker останавливает фоновую очистку ключей идемпотентности.
func shutdownCleanupWorker(cancel context.CancelFunc, done <-chan struct{}, logger *log.Entry) {
	if cancel != nil {
		cancel()
	}
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn("idempotency cleanup worker did not stop in time")
	}
}
