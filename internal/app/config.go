package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
)

// Config описывает настройки запуска админки.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	// SeedFile — путь к YAML-фикстуре; пустая строка означает встроенную.
	SeedFile         string
	TransitionPolicy dashboard.TransitionPolicy

	IdempotencyTTL              time.Duration
	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		TransitionPolicy:            dashboard.PolicyStrict,
		IdempotencyTTL:              24 * time.Hour,
		IdempotencyCleanupInterval:  10 * time.Minute,
		IdempotencyCleanupBatchSize: 500,
	}
}

// Validate проверяет, что конфигурация пригодна для запуска.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.GRPCAddr) == "" {
		errs = append(errs, errors.New("grpc address is required"))
	}
	if strings.TrimSpace(c.MetricsAddr) == "" {
		errs = append(errs, errors.New("metrics address is required"))
	}
	if _, err := dashboard.ParseTransitionPolicy(string(c.TransitionPolicy)); err != nil {
		errs = append(errs, err)
	}
	if c.IdempotencyTTL <= 0 {
		errs = append(errs, fmt.Errorf("idempotency ttl must be positive, got %s", c.IdempotencyTTL))
	}
	if c.IdempotencyCleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("idempotency cleanup interval must be positive, got %s", c.IdempotencyCleanupInterval))
	}
	if c.IdempotencyCleanupBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("idempotency cleanup batch size must be positive, got %d", c.IdempotencyCleanupBatchSize))
	}
	return errors.Join(errs...)
}
