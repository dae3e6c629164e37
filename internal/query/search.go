// Package query содержит чистые функции поиска и агрегатов поверх снимков сессии.
package query

import (
	"strings"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// normalize приводит запрос к нижнему регистру. Пробелы значимы: " " ищет
// значения, содержащие пробел.
func normalize(q string) string {
	return strings.ToLower(q)
}

func containsAny(q string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterClients отбирает клиентов по подстроке в имени, email или телефоне.
func FilterClients(clients []domain.Client, q string) []domain.Client {
	q = normalize(q)
	result := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if q == "" || containsAny(q, c.Name, c.Email, c.Phone) {
			result = append(result, c)
		}
	}
	return result
}

// FilterUsers отбирает пользователей по подстроке в имени, email или роли.
func FilterUsers(users []domain.User, q string) []domain.User {
	q = normalize(q)
	result := make([]domain.User, 0, len(users))
	for _, u := range users {
		if q == "" || containsAny(q, u.Name, u.Email, string(u.Role)) {
			result = append(result, u)
		}
	}
	return result
}

// FilterOrders отбирает заказы по имени клиента или номеру.
// Пустой status означает «все статусы».
func FilterOrders(orders []domain.Order, q string, status domain.OrderStatus) []domain.Order {
	q = normalize(q)
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		if q == "" || containsAny(q, o.CustomerName, o.Number) {
			result = append(result, o.Clone())
		}
	}
	return result
}

// FilterMenu фильтрует позиции внутри каждой категории и убирает пустые категории.
// При пустом запросе возвращается всё меню, включая категории без позиций.
func FilterMenu(categories []domain.MenuCategory, q string) []domain.MenuCategory {
	q = normalize(q)
	result := make([]domain.MenuCategory, 0, len(categories))
	for _, category := range categories {
		if q == "" {
			result = append(result, category.Clone())
			continue
		}

		matched := make([]domain.MenuItem, 0, len(category.Items))
		for _, item := range category.Items {
			if containsAny(q, item.Name, item.Description) {
				matched = append(matched, item)
			}
		}
		if len(matched) == 0 {
			continue
		}
		category.Items = matched
		result = append(result, category)
	}
	return result
}
