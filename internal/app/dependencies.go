package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/rms/internal/health"
	"github.com/vladislavdragonenkov/rms/internal/metrics"
	"github.com/vladislavdragonenkov/rms/internal/seed"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
	"github.com/vladislavdragonenkov/rms/internal/storage/memory"
)

// runtimeDependencies — состояние сессии и сервисы, созданные при старте.
type runtimeDependencies struct {
	store        *memory.Store
	dashboard    *dashboard.Service
	metrics      *metrics.DashboardMetrics
	storeChecker healthcheck.Checker
}

// initRuntimeDependencies загружает фикстуру, создаёт хранилище и сервис админки.
func initRuntimeDependencies(cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	dataset, err := seed.Load(cfg.SeedFile, logger.WithField("layer", "seed"))
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	store, err := dataset.NewStore()
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}

	dashboardMetrics := metrics.NewDashboardMetrics()
	svc := dashboard.New(store,
		dashboard.WithLogger(logger.WithField("layer", "dashboard")),
		dashboard.WithMetrics(dashboardMetrics),
		dashboard.WithTransitionPolicy(cfg.TransitionPolicy),
	)
	svc.RefreshGauges()

	logger.WithFields(log.Fields{
		"clients":    len(dataset.Clients),
		"categories": len(dataset.Menu),
		"orders":     len(dataset.Orders),
		"users":      len(dataset.Users),
		"policy":     svc.Policy(),
	}).Info("session store initialized")

	return &runtimeDependencies{
		store:     store,
		dashboard: svc,
		metrics:   dashboardMetrics,
		storeChecker: healthcheck.NewSimpleChecker("store", func() error {
			_, err := store.Restaurant.Profile()
			return err
		}),
	}, nil
}
