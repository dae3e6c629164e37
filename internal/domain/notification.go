package domain

import "time"

// NotificationKind — тип пользовательского уведомления о мутации.
type NotificationKind string

const (
	NotificationClientCreated      NotificationKind = "client.created"
	NotificationClientDeleted      NotificationKind = "client.deleted"
	NotificationOrderStatusChanged NotificationKind = "order.status_changed"
	NotificationMenuCategoryAdded  NotificationKind = "menu.category_added"
	NotificationMenuItemAdded      NotificationKind = "menu.item_added"
	NotificationMenuItemUpdated    NotificationKind = "menu.item_updated"
	NotificationMenuItemDeleted    NotificationKind = "menu.item_deleted"
	NotificationUserDeleted        NotificationKind = "user.deleted"
	NotificationProfileUpdated     NotificationKind = "restaurant.profile_updated"
	NotificationSettingsUpdated    NotificationKind = "restaurant.settings_updated"
	NotificationAccountUpdated     NotificationKind = "account.updated"
)

// Типы сущностей, к которым привязываются уведомления.
const (
	EntityClient     = "client"
	EntityOrder      = "order"
	EntityMenu       = "menu"
	EntityUser       = "user"
	EntityRestaurant = "restaurant"
	EntityAccount    = "account"
)

// Notification описывает подтверждение мутации для показа оператору.
type Notification struct {
	ID         string
	Kind       NotificationKind
	EntityType string
	EntityID   string
	Message    string
	Occurred   time.Time
}
