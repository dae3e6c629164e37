// Package rmsv1 описывает API DashboardService: сообщения, кодек и дескриптор сервиса.
// Сообщения передаются как JSON через кодек с content-subtype "json".
package rmsv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address,omitempty"`
	TotalOrders int32           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	JoinedDate  string          `json:"joined_date"`
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
}

type MenuCategory struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []*MenuItem `json:"items"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Number        string          `json:"number"`
	PlacedAt      time.Time       `json:"placed_at"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Items         []*OrderItem    `json:"items"`
	Version       int64           `json:"version"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	JoinedDate string `json:"joined_date"`
	LastActive string `json:"last_active"`
}

type RestaurantProfile struct {
	Name                string `json:"name"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`
	Website             string `json:"website"`
	Description         string `json:"description"`
	OpeningHours        string `json:"opening_hours"`
	AcceptsReservations bool   `json:"accepts_reservations"`
	AcceptsCreditCards  bool   `json:"accepts_credit_cards"`
	HasDelivery         bool   `json:"has_delivery"`
	HasTakeout          bool   `json:"has_takeout"`
}

type Settings struct {
	Currency               string `json:"currency"`
	Timezone               string `json:"timezone"`
	Language               string `json:"language"`
	EmailNotifications     bool   `json:"email_notifications"`
	OrderNotifications     bool   `json:"order_notifications"`
	MarketingNotifications bool   `json:"marketing_notifications"`
	SessionTimeoutMinutes  int32  `json:"session_timeout_minutes"`
}

// Account — учётная запись оператора. Role при обновлении игнорируется.
type Account struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Role                  string `json:"role"`
	TwoFactorEnabled      bool   `json:"two_factor_enabled"`
	SessionTimeoutMinutes int32  `json:"session_timeout_minutes"`
	EmailNotifications    bool   `json:"email_notifications"`
	PushNotifications     bool   `json:"push_notifications"`
}

// Notification — подтверждение мутации для показа оператору.
type Notification struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Message    string    `json:"message"`
	Occurred   time.Time `json:"occurred"`
}

type ClientStats struct {
	Count       int32           `json:"count"`
	TotalOrders int32           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}

type OrderStats struct {
	Total    int32            `json:"total"`
	ByStatus map[string]int32 `json:"by_status"`
}

type UserStats struct {
	Total    int32            `json:"total"`
	ByStatus map[string]int32 `json:"by_status"`
	ByRole   map[string]int32 `json:"by_role"`
}

type MenuStats struct {
	Categories int32 `json:"categories"`
	Items      int32 `json:"items"`
}

type TopItem struct {
	Name     string          `json:"name"`
	Quantity int32           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DashboardSummary struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Clients      *ClientStats    `json:"clients"`
	Orders       *OrderStats     `json:"orders"`
	Users        *UserStats      `json:"users"`
	Menu         *MenuStats      `json:"menu"`
	RecentOrders []*Order        `json:"recent_orders"`
	TopItems     []*TopItem      `json:"top_items"`
}

// MutationResponse возвращается операциями, для которых отсутствующий ID — тихий no-op.
type MutationResponse struct {
	Applied      bool          `json:"applied"`
	Notification *Notification `json:"notification,omitempty"`
}

type ListClientsRequest struct {
	Query string `json:"query,omitempty"`
}

type ListClientsResponse struct {
	Clients []*Client    `json:"clients"`
	Stats   *ClientStats `json:"stats"`
}

type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

type CreateClientResponse struct {
	Client       *Client       `json:"client"`
	Notification *Notification `json:"notification"`
}

type DeleteClientRequest struct {
	ClientID string `json:"client_id"`
}

type ListOrdersRequest struct {
	Query  string `json:"query,omitempty"`
	Status string `json:"status,omitempty"`
}

type ListOrdersResponse struct {
	Orders []*Order    `json:"orders"`
	Stats  *OrderStats `json:"stats"`
}

type GetOrderRequest struct {
	OrderID string `json:"order_id"`
}

type GetOrderResponse struct {
	Order         *Order          `json:"order"`
	NextStatuses  []string        `json:"next_statuses"`
	Notifications []*Notification `json:"notifications"`
}

type SetOrderStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type ListMenuRequest struct {
	Query string `json:"query,omitempty"`
}

type ListMenuResponse struct {
	Categories []*MenuCategory `json:"categories"`
	Stats      *MenuStats      `json:"stats"`
}

type AddMenuCategoryRequest struct {
	Name string `json:"name"`
}

type AddMenuCategoryResponse struct {
	Category     *MenuCategory `json:"category"`
	Notification *Notification `json:"notification"`
}

// AddMenuItemRequest повторяет форму добавления: цена приходит строкой.
type AddMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	CategoryID  string `json:"category_id"`
}

type AddMenuItemResponse struct {
	Item         *MenuItem     `json:"item"`
	Notification *Notification `json:"notification"`
}

type UpdateMenuItemRequest struct {
	Item *MenuItem `json:"item"`
}

type DeleteMenuItemRequest struct {
	ItemID     string `json:"item_id"`
	CategoryID string `json:"category_id,omitempty"`
}

type ListUsersRequest struct {
	Query string `json:"query,omitempty"`
}

type ListUsersResponse struct {
	Users []*User    `json:"users"`
	Stats *UserStats `json:"stats"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Summary *DashboardSummary `json:"summary"`
}

type GetRestaurantProfileRequest struct{}

type GetRestaurantProfileResponse struct {
	Profile *RestaurantProfile `json:"profile"`
}

type UpdateRestaurantProfileRequest struct {
	Profile *RestaurantProfile `json:"profile"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *Settings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings *Settings `json:"settings"`
}

type GetAccountRequest struct{}

type GetAccountResponse struct {
	Account *Account `json:"account"`
}

type UpdateAccountRequest struct {
	Account *Account `json:"account"`
}

// UpdateResponse возвращается обновлениями профиля, настроек и учётной записи.
type UpdateResponse struct {
	Notification *Notification `json:"notification"`
}

type ListNotificationsRequest struct {
	Limit int32 `json:"limit,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}
