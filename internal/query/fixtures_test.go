package query_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testMenu() []domain.MenuCategory {
	return []domain.MenuCategory{
		{ID: "cat1", Name: "Appetizers", Items: []domain.MenuItem{
			{ID: "item1", Name: "Bruschetta", Description: "Toasted bread topped with tomatoes, garlic, and basil", Price: money("8.99"), CategoryID: "cat1"},
			{ID: "item2", Name: "Mozzarella Sticks", Description: "Breaded mozzarella with marinara sauce", Price: money("7.99"), CategoryID: "cat1"},
		}},
		{ID: "cat2", Name: "Main Course", Items: []domain.MenuItem{
			{ID: "item3", Name: "Spaghetti Bolognese", Description: "Classic Italian pasta with rich meat sauce", Price: money("14.99"), CategoryID: "cat2"},
			{ID: "item4", Name: "Grilled Salmon", Description: "Fresh salmon fillet with lemon butter sauce and seasonal vegetables", Price: money("18.99"), CategoryID: "cat2"},
		}},
		{ID: "cat3", Name: "Desserts", Items: []domain.MenuItem{
			{ID: "item5", Name: "Tiramisu", Description: "Coffee-flavored Italian dessert", Price: money("6.99"), CategoryID: "cat3"},
		}},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 5, 1, hour, minute, 0, 0, time.UTC)
}

func testOrders() []domain.Order {
	return []domain.Order{
		{ID: "order1", CustomerName: "John Doe", Number: "#ORD-001", PlacedAt: at(12, 30), Status: domain.OrderStatusPending, Total: money("43.96"),
			Items: []domain.OrderItem{{Name: "Spaghetti Bolognese", Quantity: 2, UnitPrice: money("14.99")}, {Name: "Tiramisu", Quantity: 2, UnitPrice: money("6.99")}}},
		{ID: "order2", CustomerName: "Sarah Smith", Number: "#ORD-002", PlacedAt: at(12, 45), Status: domain.OrderStatusPreparing, Total: money("37.98"),
			Items: []domain.OrderItem{{Name: "Grilled Salmon", Quantity: 2, UnitPrice: money("18.99")}}},
		{ID: "order3", CustomerName: "Michael Johnson", Number: "#ORD-003", PlacedAt: at(13, 15), Status: domain.OrderStatusReady, Total: money("23.97"),
			Items: []domain.OrderItem{{Name: "Caesar Salad", Quantity: 1, UnitPrice: money("8.99")}, {Name: "Bruschetta", Quantity: 1, UnitPrice: money("8.99")}, {Name: "Tiramisu", Quantity: 1, UnitPrice: money("5.99")}}},
		{ID: "order4", CustomerName: "Emily Brown", Number: "#ORD-004", PlacedAt: at(13, 30), Status: domain.OrderStatusDelivered, Total: money("53.96"),
			Items: []domain.OrderItem{{Name: "Grilled Salmon", Quantity: 2, UnitPrice: money("18.99")}, {Name: "Tiramisu", Quantity: 2, UnitPrice: money("7.99")}}},
		{ID: "order5", CustomerName: "David Wilson", Number: "#ORD-005", PlacedAt: at(14, 0), Status: domain.OrderStatusCancelled, Total: money("29.98"),
			Items: []domain.OrderItem{{Name: "Spaghetti Bolognese", Quantity: 2, UnitPrice: money("14.99")}}},
	}
}

func testClients() []domain.Client {
	return []domain.Client{
		{ID: "client1", Name: "John Doe", Email: "john.doe@example.com", Phone: "+1 (555) 123-4567", TotalOrders: 12, TotalSpent: money("325.75")},
		{ID: "client2", Name: "Sarah Smith", Email: "sarah.smith@example.com", Phone: "+1 (555) 234-5678", TotalOrders: 8, TotalSpent: money("210.50")},
	}
}

func testUsers() []domain.User {
	return []domain.User{
		{ID: "user1", Name: "Jacques Kagabo", Email: "jacques@lebistro.com", Role: domain.UserRoleAdmin, Status: domain.UserStatusActive},
		{ID: "user2", Name: "Sarah Miller", Email: "sarah@lebistro.com", Role: domain.UserRoleManager, Status: domain.UserStatusActive},
		{ID: "user3", Name: "David Parker", Email: "david@lebistro.com", Role: domain.UserRoleStaff, Status: domain.UserStatusActive},
		{ID: "user4", Name: "Lisa Rodriguez", Email: "lisa@lebistro.com", Role: domain.UserRoleStaff, Status: domain.UserStatusInactive},
	}
}
