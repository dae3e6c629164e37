package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/rms/internal/app"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
	"github.com/vladislavdragonenkov/rms/internal/version"
)

const (
	envGRPCAddr                    = "RMS_GRPC_ADDR"
	envMetricsAddr                 = "RMS_METRICS_ADDR"
	envSeedFile                    = "RMS_SEED_FILE"
	envTransitionPolicy            = "RMS_TRANSITION_POLICY"
	envIdempotencyTTL              = "RMS_IDEMPOTENCY_TTL"
	envIdempotencyCleanupInterval  = "RMS_IDEMPOTENCY_CLEANUP_INTERVAL"
	envIdempotencyCleanupBatchSize = "RMS_IDEMPOTENCY_CLEANUP_BATCH_SIZE"
	envLogLevel                    = "RMS_LOG_LEVEL"
	envLogFormat                   = "RMS_LOG_FORMAT"
)

type envLookup func(string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger(lookup envLookup) []string {
	var warnings []string

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if v, ok := lookup(envLogFormat); ok && strings.EqualFold(strings.TrimSpace(v), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.SetLevel(log.InfoLevel)
	if v, ok := lookup(envLogLevel); ok && strings.TrimSpace(v) != "" {
		level, err := log.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envLogLevel, err))
		} else {
			log.SetLevel(level)
		}
	}
	return warnings
}

// readConfigFromEnv накладывает переменные окружения на конфигурацию по умолчанию.
// Некорректные значения игнорируются и возвращаются в виде предупреждений.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string
	warn := func(key, value string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", key, value, err))
	}

	if v, ok := lookup(envGRPCAddr); ok && strings.TrimSpace(v) != "" {
		cfg.GRPCAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envSeedFile); ok {
		cfg.SeedFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(envTransitionPolicy); ok && strings.TrimSpace(v) != "" {
		policy, err := dashboard.ParseTransitionPolicy(v)
		if err != nil {
			warn(envTransitionPolicy, v, err)
		} else {
			cfg.TransitionPolicy = policy
		}
	}

	positiveDuration := func(d time.Duration) bool { return d > 0 }
	if v, ok := lookup(envIdempotencyTTL); ok {
		if d, err := parseDuration(v, positiveDuration, "must be > 0"); err != nil {
			warn(envIdempotencyTTL, v, err)
		} else {
			cfg.IdempotencyTTL = d
		}
	}
	if v, ok := lookup(envIdempotencyCleanupInterval); ok {
		if d, err := parseDuration(v, positiveDuration, "must be > 0"); err != nil {
			warn(envIdempotencyCleanupInterval, v, err)
		} else {
			cfg.IdempotencyCleanupInterval = d
		}
	}
	if v, ok := lookup(envIdempotencyCleanupBatchSize); ok {
		if n, err := parseInt(v, func(n int) bool { return n > 0 }, "must be > 0"); err != nil {
			warn(envIdempotencyCleanupBatchSize, v, err)
		} else {
			cfg.IdempotencyCleanupBatchSize = n
		}
	}

	return cfg, warnings
}

func parseInt(value string, valid func(int) bool, constraint string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(n) {
		return 0, fmt.Errorf("value %d %s", n, constraint)
	}
	return n, nil
}

func parseDuration(value string, valid func(time.Duration) bool, constraint string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(d) {
		return 0, fmt.Errorf("value %s %s", d, constraint)
	}
	return d, nil
}

// loadDotEnv подхватывает .env из рабочего каталога, если он есть.
func loadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func main() {
	dotEnvErr := loadDotEnv()
	warnings := setupLogger(os.LookupEnv)
	if dotEnvErr != nil {
		log.WithError(dotEnvErr).Warn("failed to load .env")
	}

	cfg, cfgWarnings := readConfigFromEnv(os.LookupEnv)
	for _, w := range append(warnings, cfgWarnings...) {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"grpc_addr":         cfg.GRPCAddr,
		"metrics_addr":      cfg.MetricsAddr,
		"seed_file":         cfg.SeedFile,
		"transition_policy": cfg.TransitionPolicy,
		"version":           version.String(),
	}).Info("запускаем DashboardService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("DashboardService остановлен")
}
