package grpcsvc

import (
	"time"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/query"
	"github.com/vladislavdragonenkov/rms/internal/service/dashboard"
	rmsv1 "github.com/vladislavdragonenkov/rms/proto/rms/v1"
)

const dateLayout = "2006-01-02"

//nolint:gosec // счётчики сессии умещаются в int32.
func toWireClient(client domain.Client) *rmsv1.Client {
	return &rmsv1.Client{
		ID:          client.ID,
		Name:        client.Name,
		Email:       client.Email,
		Phone:       client.Phone,
		Address:     client.Address,
		TotalOrders: int32(client.TotalOrders),
		TotalSpent:  client.TotalSpent,
		JoinedDate:  formatDate(client.JoinedDate),
	}
}

func toWireMenuItem(item domain.MenuItem) *rmsv1.MenuItem {
	return &rmsv1.MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
	}
}

func fromWireMenuItem(item *rmsv1.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
	}
}

func toWireCategory(category domain.MenuCategory) *rmsv1.MenuCategory {
	items := make([]*rmsv1.MenuItem, 0, len(category.Items))
	for _, item := range category.Items {
		items = append(items, toWireMenuItem(item))
	}
	return &rmsv1.MenuCategory{
		ID:    category.ID,
		Name:  category.Name,
		Items: items,
	}
}

//nolint:gosec // количество в позиции заказа умещается в int32.
func toWireOrder(order domain.Order) *rmsv1.Order {
	items := make([]*rmsv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &rmsv1.OrderItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  int32(item.Quantity),
			UnitPrice: item.UnitPrice,
		})
	}

	return &rmsv1.Order{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		Number:        order.Number,
		PlacedAt:      order.PlacedAt,
		Status:        string(order.Status),
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		Items:         items,
		Version:       order.Version,
		UpdatedAt:     order.UpdatedAt,
	}
}

func toWireUser(user domain.User) *rmsv1.User {
	return &rmsv1.User{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Status:     string(user.Status),
		JoinedDate: formatDate(user.JoinedDate),
		LastActive: formatDate(user.LastActive),
	}
}

func toWireNotification(notification domain.Notification) *rmsv1.Notification {
	return &rmsv1.Notification{
		ID:         notification.ID,
		Kind:       string(notification.Kind),
		EntityType: notification.EntityType,
		EntityID:   notification.EntityID,
		Message:    notification.Message,
		Occurred:   notification.Occurred,
	}
}

func toWireNotifications(notifications []domain.Notification) []*rmsv1.Notification {
	result := make([]*rmsv1.Notification, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, toWireNotification(notification))
	}
	return result
}

func toWireOutcome(outcome dashboard.Outcome) *rmsv1.MutationResponse {
	resp := &rmsv1.MutationResponse{Applied: outcome.Applied}
	if outcome.Notification != nil {
		resp.Notification = toWireNotification(*outcome.Notification)
	}
	return resp
}

func toWireProfile(profile domain.RestaurantProfile) *rmsv1.RestaurantProfile {
	wire := rmsv1.RestaurantProfile(profile)
	return &wire
}

func fromWireProfile(profile *rmsv1.RestaurantProfile) domain.RestaurantProfile {
	return domain.RestaurantProfile(*profile)
}

func toWireSettings(settings domain.Settings) *rmsv1.Settings {
	return &rmsv1.Settings{
		Currency:               settings.Currency,
		Timezone:               settings.Timezone,
		Language:               settings.Language,
		EmailNotifications:     settings.EmailNotifications,
		OrderNotifications:     settings.OrderNotifications,
		MarketingNotifications: settings.MarketingNotifications,
		SessionTimeoutMinutes:  int32(settings.SessionTimeoutMinutes), //nolint:gosec // ограничено валидацией.
	}
}

func fromWireSettings(settings *rmsv1.Settings) domain.Settings {
	return domain.Settings{
		Currency:               settings.Currency,
		Timezone:               settings.Timezone,
		Language:               settings.Language,
		EmailNotifications:     settings.EmailNotifications,
		OrderNotifications:     settings.OrderNotifications,
		MarketingNotifications: settings.MarketingNotifications,
		SessionTimeoutMinutes:  int(settings.SessionTimeoutMinutes),
	}
}

func toWireAccount(account domain.AccountProfile) *rmsv1.Account {
	return &rmsv1.Account{
		Name:                  account.Name,
		Email:                 account.Email,
		Phone:                 account.Phone,
		Role:                  account.Role,
		TwoFactorEnabled:      account.TwoFactorEnabled,
		SessionTimeoutMinutes: int32(account.SessionTimeoutMinutes), //nolint:gosec // ограничено валидацией.
		EmailNotifications:    account.EmailNotifications,
		PushNotifications:     account.PushNotifications,
	}
}

func fromWireAccount(account *rmsv1.Account) domain.AccountProfile {
	return domain.AccountProfile{
		Name:                  account.Name,
		Email:                 account.Email,
		Phone:                 account.Phone,
		Role:                  account.Role,
		TwoFactorEnabled:      account.TwoFactorEnabled,
		SessionTimeoutMinutes: int(account.SessionTimeoutMinutes),
		EmailNotifications:    account.EmailNotifications,
		PushNotifications:     account.PushNotifications,
	}
}

//nolint:gosec // размеры коллекций сессии умещаются в int32.
func toWireClientStats(stats query.ClientStats) *rmsv1.ClientStats {
	return &rmsv1.ClientStats{
		Count:       int32(stats.Count),
		TotalOrders: int32(stats.TotalOrders),
		TotalSpent:  stats.TotalSpent,
	}
}

//nolint:gosec // размеры коллекций сессии умещаются в int32.
func toWireOrderStats(stats query.OrderStats) *rmsv1.OrderStats {
	byStatus := make(map[string]int32, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = int32(count)
	}
	return &rmsv1.OrderStats{Total: int32(stats.Total), ByStatus: byStatus}
}

//nolint:gosec // размеры коллекций сессии умещаются в int32.
func toWireUserStats(stats query.UserStats) *rmsv1.UserStats {
	byStatus := make(map[string]int32, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = int32(count)
	}
	byRole := make(map[string]int32, len(stats.ByRole))
	for role, count := range stats.ByRole {
		byRole[string(role)] = int32(count)
	}
	return &rmsv1.UserStats{Total: int32(stats.Total), ByStatus: byStatus, ByRole: byRole}
}

//nolint:gosec // размеры коллекций сессии умещаются в int32.
func toWireSummary(summary query.DashboardSummary) *rmsv1.DashboardSummary {
	recent := make([]*rmsv1.Order, 0, len(summary.RecentOrders))
	for _, order := range summary.RecentOrders {
		recent = append(recent, toWireOrder(order))
	}
	top := make([]*rmsv1.TopItem, 0, len(summary.TopItems))
	for _, item := range summary.TopItems {
		top = append(top, &rmsv1.TopItem{
			Name:     item.Name,
			Quantity: int32(item.Quantity),
			Revenue:  item.Revenue,
		})
	}

	return &rmsv1.DashboardSummary{
		Revenue:      summary.Revenue,
		Clients:      toWireClientStats(summary.Clients),
		Orders:       toWireOrderStats(summary.Orders),
		Users:        toWireUserStats(summary.Users),
		Menu:         &rmsv1.MenuStats{Categories: int32(summary.Menu.Categories), Items: int32(summary.Menu.Items)},
		RecentOrders: recent,
		TopItems:     top,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
