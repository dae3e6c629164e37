// Package seed загружает начальные данные сессии из YAML-фикстуры.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/storage/memory"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04"
)

//go:embed seed.yaml
var defaultFixture []byte

type fileFixture struct {
	Restaurant restaurantFixture `yaml:"restaurant"`
	Settings   settingsFixture   `yaml:"settings"`
	Account    accountFixture    `yaml:"account"`
	Clients    []clientFixture   `yaml:"clients"`
	Menu       []categoryFixture `yaml:"menu"`
	Orders     []orderFixture    `yaml:"orders"`
	Users      []userFixture     `yaml:"users"`
}

type restaurantFixture struct {
	Name                string `yaml:"name"`
	Address             string `yaml:"address"`
	Phone               string `yaml:"phone"`
	Website             string `yaml:"website"`
	Description         string `yaml:"description"`
	OpeningHours        string `yaml:"opening_hours"`
	AcceptsReservations bool   `yaml:"accepts_reservations"`
	AcceptsCreditCards  bool   `yaml:"accepts_credit_cards"`
	HasDelivery         bool   `yaml:"has_delivery"`
	HasTakeout          bool   `yaml:"has_takeout"`
}

type settingsFixture struct {
	Currency               string `yaml:"currency"`
	Timezone               string `yaml:"timezone"`
	Language               string `yaml:"language"`
	EmailNotifications     bool   `yaml:"email_notifications"`
	OrderNotifications     bool   `yaml:"order_notifications"`
	MarketingNotifications bool   `yaml:"marketing_notifications"`
	SessionTimeoutMinutes  int    `yaml:"session_timeout_minutes"`
}

type accountFixture struct {
	Name                  string `yaml:"name"`
	Email                 string `yaml:"email"`
	Phone                 string `yaml:"phone"`
	Role                  string `yaml:"role"`
	TwoFactorEnabled      bool   `yaml:"two_factor_enabled"`
	SessionTimeoutMinutes int    `yaml:"session_timeout_minutes"`
	EmailNotifications    bool   `yaml:"email_notifications"`
	PushNotifications     bool   `yaml:"push_notifications"`
}

type clientFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Address     string `yaml:"address"`
	TotalOrders int    `yaml:"total_orders"`
	TotalSpent  string `yaml:"total_spent"`
	Joined      string `yaml:"joined"`
}

type categoryFixture struct {
	ID    string            `yaml:"id"`
	Name  string            `yaml:"name"`
	Items []menuItemFixture `yaml:"items"`
}

type menuItemFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

type orderFixture struct {
	ID            string             `yaml:"id"`
	Customer      string             `yaml:"customer"`
	Number        string             `yaml:"number"`
	PlacedAt      string             `yaml:"placed_at"`
	Status        string             `yaml:"status"`
	Total         string             `yaml:"total"`
	PaymentMethod string             `yaml:"payment_method"`
	Items         []orderItemFixture `yaml:"items"`
}

type orderItemFixture struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	Price    string `yaml:"price"`
}

type userFixture struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Role       string `yaml:"role"`
	Status     string `yaml:"status"`
	Joined     string `yaml:"joined"`
	LastActive string `yaml:"last_active"`
}

// Dataset — разобранные и проверенные начальные данные сессии.
type Dataset struct {
	Profile  domain.RestaurantProfile
	Settings domain.Settings
	Account  domain.AccountProfile
	Clients  []domain.Client
	Menu     []domain.MenuCategory
	Orders   []domain.Order
	Users    []domain.User
}

// Load читает фикстуру из файла path или встроенную, если path пуст.
func Load(path string, logger *log.Entry) (Dataset, error) {
	if path == "" {
		return Parse(defaultFixture, logger)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data, logger)
}

// Parse разбирает YAML-фикстуру. Итог заказа всегда пересчитывается из позиций;
// расхождение с указанным в файле значением логируется как предупреждение.
func Parse(data []byte, logger *log.Entry) (Dataset, error) {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	logger = logger.WithField("component", "seed")

	var file fileFixture
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Dataset{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	ds := Dataset{
		Profile:  domain.RestaurantProfile(file.Restaurant),
		Settings: domain.Settings(file.Settings),
		Account:  domain.AccountProfile(file.Account).Normalize(),
	}
	if err := ds.Profile.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("restaurant profile: %w", err)
	}
	if err := ds.Settings.Validate(); err != nil {
		return Dataset{}, fmt.Errorf("settings: %w", err)
	}
	// Секция account необязательна; заполненная проверяется целиком.
	if ds.Account != (domain.AccountProfile{}) {
		if err := ds.Account.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("account: %w", err)
		}
	}

	for _, raw := range file.Clients {
		client, err := raw.toDomain()
		if err != nil {
			return Dataset{}, fmt.Errorf("client %s: %w", raw.ID, err)
		}
		ds.Clients = append(ds.Clients, client)
	}

	for _, raw := range file.Menu {
		category, err := raw.toDomain()
		if err != nil {
			return Dataset{}, fmt.Errorf("menu category %s: %w", raw.ID, err)
		}
		ds.Menu = append(ds.Menu, category)
	}

	for _, raw := range file.Orders {
		order, declared, err := raw.toDomain()
		if err != nil {
			return Dataset{}, fmt.Errorf("order %s: %w", raw.ID, err)
		}
		if !declared.Equal(order.Total) {
			logger.WithFields(log.Fields{
				"order_id": order.ID,
				"declared": declared.StringFixed(2),
				"computed": order.Total.StringFixed(2),
			}).Warn("order total in seed does not match items, using computed value")
		}
		ds.Orders = append(ds.Orders, order)
	}

	for _, raw := range file.Users {
		user, err := raw.toDomain()
		if err != nil {
			return Dataset{}, fmt.Errorf("user %s: %w", raw.ID, err)
		}
		ds.Users = append(ds.Users, user)
	}

	return ds, nil
}

// NewStore создаёт хранилище сессии, заполненное данными набора.
func (d Dataset) NewStore() (*memory.Store, error) {
	store := memory.NewStore(d.Profile, d.Settings)
	if err := store.Restaurant.SaveAccount(d.Account); err != nil {
		return nil, fmt.Errorf("seed account: %w", err)
	}

	for _, client := range d.Clients {
		if err := store.Clients.Create(client); err != nil {
			return nil, fmt.Errorf("seed client %s: %w", client.ID, err)
		}
	}
	for _, category := range d.Menu {
		items := category.Items
		category.Items = nil
		if err := store.Menu.AddCategory(category); err != nil {
			return nil, fmt.Errorf("seed category %s: %w", category.ID, err)
		}
		for _, item := range items {
			if err := store.Menu.AddItem(item); err != nil {
				return nil, fmt.Errorf("seed menu item %s: %w", item.ID, err)
			}
		}
	}
	for _, order := range d.Orders {
		if err := store.Orders.Create(order); err != nil {
			return nil, fmt.Errorf("seed order %s: %w", order.ID, err)
		}
	}
	for _, user := range d.Users {
		if err := store.Users.Create(user); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", user.ID, err)
		}
	}

	return store, nil
}

func (f clientFixture) toDomain() (domain.Client, error) {
	spent, err := parseMoney(f.TotalSpent)
	if err != nil {
		return domain.Client{}, err
	}
	joined, err := time.Parse(dateLayout, f.Joined)
	if err != nil {
		return domain.Client{}, fmt.Errorf("joined: %w", err)
	}

	client := domain.Client{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Phone:       f.Phone,
		Address:     f.Address,
		TotalOrders: f.TotalOrders,
		TotalSpent:  spent,
		JoinedDate:  joined,
	}
	if errs := client.ValidateInvariants(); len(errs) > 0 {
		return domain.Client{}, domain.NewValidationError(errs)
	}
	return client, nil
}

func (f categoryFixture) toDomain() (domain.MenuCategory, error) {
	category := domain.MenuCategory{ID: f.ID, Name: f.Name}
	for _, raw := range f.Items {
		price, err := parseMoney(raw.Price)
		if err != nil {
			return domain.MenuCategory{}, fmt.Errorf("item %s: %w", raw.ID, err)
		}
		item := domain.MenuItem{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.Description,
			Price:       price,
			CategoryID:  f.ID,
		}
		if err := item.Validate(); err != nil {
			return domain.MenuCategory{}, fmt.Errorf("item %s: %w", raw.ID, err)
		}
		category.Items = append(category.Items, item)
	}
	return category, nil
}

// toDomain возвращает заказ с пересчитанным итогом и итог, указанный в фикстуре.
func (f orderFixture) toDomain() (domain.Order, decimal.Decimal, error) {
	status, err := domain.ParseOrderStatus(f.Status)
	if err != nil {
		return domain.Order{}, decimal.Zero, err
	}
	placedAt, err := time.Parse(timestampLayout, f.PlacedAt)
	if err != nil {
		return domain.Order{}, decimal.Zero, fmt.Errorf("placed_at: %w", err)
	}
	declared, err := parseMoney(f.Total)
	if err != nil {
		return domain.Order{}, decimal.Zero, err
	}

	order := domain.Order{
		ID:            f.ID,
		CustomerName:  f.Customer,
		Number:        f.Number,
		PlacedAt:      placedAt,
		Status:        status,
		PaymentMethod: f.PaymentMethod,
		UpdatedAt:     placedAt,
	}
	for _, raw := range f.Items {
		price, err := parseMoney(raw.Price)
		if err != nil {
			return domain.Order{}, decimal.Zero, fmt.Errorf("item %s: %w", raw.ID, err)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:        raw.ID,
			Name:      raw.Name,
			Quantity:  raw.Quantity,
			UnitPrice: price,
		})
	}
	order.Total = order.ItemsTotal()

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, decimal.Zero, domain.NewValidationError(errs)
	}
	return order, declared, nil
}

func (f userFixture) toDomain() (domain.User, error) {
	role, err := domain.ParseUserRole(f.Role)
	if err != nil {
		return domain.User{}, err
	}
	status, err := domain.ParseUserStatus(f.Status)
	if err != nil {
		return domain.User{}, err
	}
	joined, err := time.Parse(dateLayout, f.Joined)
	if err != nil {
		return domain.User{}, fmt.Errorf("joined: %w", err)
	}
	lastActive, err := time.Parse(dateLayout, f.LastActive)
	if err != nil {
		return domain.User{}, fmt.Errorf("last_active: %w", err)
	}

	return domain.User{
		ID:         f.ID,
		Name:       f.Name,
		Email:      f.Email,
		Role:       role,
		Status:     status,
		JoinedDate: joined,
		LastActive: lastActive,
	}, nil
}

func parseMoney(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrPriceInvalid, value)
	}
	return amount, nil
}
