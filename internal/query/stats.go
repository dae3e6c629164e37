package query

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// ClientStats — сводка по списку клиентов.
type ClientStats struct {
	Count       int
	TotalOrders int
	TotalSpent  decimal.Decimal
}

// OrderStats — количество заказов всего и по каждому статусу.
type OrderStats struct {
	Total    int
	ByStatus map[domain.OrderStatus]int
}

// UserStats — количество пользователей по статусам и ролям.
type UserStats struct {
	Total    int
	ByStatus map[domain.UserStatus]int
	ByRole   map[domain.UserRole]int
}

// MenuStats — размер меню.
type MenuStats struct {
	Categories int
	Items      int
}

// TopItem — позиция рейтинга продаж.
type TopItem struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// DashboardSummary собирает данные главной страницы админки.
type DashboardSummary struct {
	Revenue      decimal.Decimal
	Clients      ClientStats
	Orders       OrderStats
	Users        UserStats
	Menu         MenuStats
	RecentOrders []domain.Order
	TopItems     []TopItem
}

// SummarizeClients считает клиентов и суммирует их счётчики.
func SummarizeClients(clients []domain.Client) ClientStats {
	stats := ClientStats{TotalSpent: decimal.Zero}
	for _, c := range clients {
		stats.Count++
		stats.TotalOrders += c.TotalOrders
		stats.TotalSpent = stats.TotalSpent.Add(c.TotalSpent)
	}
	return stats
}

// SummarizeOrders считает заказы; ключи всех пяти статусов присутствуют всегда.
func SummarizeOrders(orders []domain.Order) OrderStats {
	stats := OrderStats{ByStatus: make(map[domain.OrderStatus]int, len(domain.OrderStatuses))}
	for _, status := range domain.OrderStatuses {
		stats.ByStatus[status] = 0
	}
	for _, o := range orders {
		stats.Total++
		stats.ByStatus[o.Status]++
	}
	return stats
}

// SummarizeUsers считает пользователей по статусам и ролям.
func SummarizeUsers(users []domain.User) UserStats {
	stats := UserStats{
		ByStatus: make(map[domain.UserStatus]int, len(domain.UserStatuses)),
		ByRole:   make(map[domain.UserRole]int, len(domain.UserRoles)),
	}
	for _, status := range domain.UserStatuses {
		stats.ByStatus[status] = 0
	}
	for _, role := range domain.UserRoles {
		stats.ByRole[role] = 0
	}
	for _, u := range users {
		stats.Total++
		stats.ByStatus[u.Status]++
		stats.ByRole[u.Role]++
	}
	return stats
}

// SummarizeMenu считает категории и позиции.
func SummarizeMenu(categories []domain.MenuCategory) MenuStats {
	stats := MenuStats{Categories: len(categories)}
	for _, c := range categories {
		stats.Items += len(c.Items)
	}
	return stats
}

// Revenue суммирует итоги доставленных заказов.
func Revenue(orders []domain.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == domain.OrderStatusDelivered {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// RecentOrders возвращает до limit последних заказов, новые первыми.
func RecentOrders(orders []domain.Order, limit int) []domain.Order {
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Clone())
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PlacedAt.After(result[j].PlacedAt)
	})
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// TopItems агрегирует продажи по названию позиции, пропуская отменённые заказы.
func TopItems(orders []domain.Order, limit int) []TopItem {
	index := make(map[string]int)
	var items []TopItem
	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		for _, line := range o.Items {
			pos, ok := index[line.Name]
			if !ok {
				pos = len(items)
				index[line.Name] = pos
				items = append(items, TopItem{Name: line.Name, Revenue: decimal.Zero})
			}
			items[pos].Quantity += line.Quantity
			items[pos].Revenue = items[pos].Revenue.Add(line.LineTotal())
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Summarize строит сводку главной страницы за один проход по каждой коллекции.
func Summarize(
	clients []domain.Client,
	orders []domain.Order,
	users []domain.User,
	menu []domain.MenuCategory,
	recent, top int,
) DashboardSummary {
	return DashboardSummary{
		Revenue:      Revenue(orders),
		Clients:      SummarizeClients(clients),
		Orders:       SummarizeOrders(orders),
		Users:        SummarizeUsers(users),
		Menu:         SummarizeMenu(menu),
		RecentOrders: RecentOrders(orders, recent),
		TopItems:     TopItems(orders, top),
	}
}
