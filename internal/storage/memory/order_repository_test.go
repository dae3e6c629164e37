package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/storage/memory"
)

func newOrder(id string) domain.Order {
	now := time.Date(2025, 5, 1, 12, 30, 0, 0, time.UTC)
	return domain.Order{
		ID:           id,
		CustomerName: "John Doe",
		Number:       "#ORD-001",
		PlacedAt:     now,
		Status:       domain.OrderStatusPending,
		Total:        decimal.RequireFromString("29.98"),
		Items: []domain.OrderItem{
			{ID: "item-1", Name: "Spaghetti Bolognese", Quantity: 2, UnitPrice: decimal.RequireFromString("14.99")},
		},
		UpdatedAt: now,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}

	if err := repo.Create(order); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := memory.NewOrderRepository()
	for _, id := range []string{"order-3", "order-1", "order-2"} {
		if err := repo.Create(newOrder(id)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	orders, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 3 || orders[0].ID != "order-3" || orders[1].ID != "order-1" || orders[2].ID != "order-2" {
		t.Fatalf("unexpected order of ids: %v", orders)
	}
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewOrderRepository()
	if err := repo.Create(newOrder("order-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, _ := repo.Get("order-1")
	stored.Items[0].Quantity = 100

	again, _ := repo.Get("order-1")
	if again.Items[0].Quantity != 2 {
		t.Fatalf("repository leaked internal slice, qty=%d", again.Items[0].Quantity)
	}
}

func TestOrderRepository_Save(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	stored.Status = domain.OrderStatusPreparing
	if err := repo.Save(stored); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if updated.Status != domain.OrderStatusPreparing {
		t.Fatalf("expected status preparing, got %s", updated.Status)
	}
	if updated.Version != stored.Version+1 {
		t.Fatalf("expected version increment, got %d", updated.Version)
	}
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1")
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Version = 42
	if err := repo.Save(order); !errors.Is(err, domain.ErrOrderVersionConflict) {
		t.Fatalf("expected version conflict error, got %v", err)
	}

	missing := newOrder("order-404")
	if err := repo.Save(missing); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
