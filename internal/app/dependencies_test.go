package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/rms/internal/health"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
)

func TestInitRuntimeDependencies_EmbeddedSeed(t *testing.T) {
	deps, err := initRuntimeDependencies(DefaultConfig(), log.WithField("test", "deps"))
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if deps.store == nil || deps.dashboard == nil || deps.metrics == nil {
		t.Fatalf("dependencies must be initialized: %+v", deps)
	}
	if deps.dashboard.Policy() != dashboard.PolicyStrict {
		t.Fatalf("expected strict policy, got %s", deps.dashboard.Policy())
	}

	clients, _, err := deps.dashboard.ListClients("")
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 4 {
		t.Fatalf("expected 4 seeded clients, got %d", len(clients))
	}

	check := deps.storeChecker.Check()
	if check.Status != healthcheck.StatusHealthy {
		t.Fatalf("expected healthy store checker, got %+v", check)
	}
}

func TestInitRuntimeDependencies_AdvisoryPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TransitionPolicy = dashboard.PolicyAdvisory

	deps, err := initRuntimeDependencies(cfg, nil)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if deps.dashboard.Policy() != dashboard.PolicyAdvisory {
		t.Fatalf("expected advisory policy, got %s", deps.dashboard.Policy())
	}
}

func TestInitRuntimeDependencies_MissingSeedFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := initRuntimeDependencies(cfg, log.WithField("test", "deps-missing"))
	if err == nil || !strings.Contains(err.Error(), "load seed") {
		t.Fatalf("expected load seed error, got %v", err)
	}
}

func TestInitRuntimeDependencies_BrokenSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("clients: [\n"), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	cfg := DefaultConfig()
	cfg.SeedFile = path

	if _, err := initRuntimeDependencies(cfg, log.WithField("test", "deps-broken")); err == nil {
		t.Fatal("expected error for malformed seed")
	}
}
