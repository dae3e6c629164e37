package memory

import "github.com/vladislavdragonenkov/rms/internal/domain"

// Store — владелец состояния одной сессии. Создаётся при старте и живёт до выхода процесса.
type Store struct {
	Clients       domain.ClientRepository
	Orders        domain.OrderRepository
	Menu          domain.MenuRepository
	Users         domain.UserRepository
	Restaurant    domain.RestaurantRepository
	Notifications domain.NotificationRepository
	Idempotency   domain.IdempotencyRepository
}

// NewStore создаёт пустое хранилище с заданными профилем и настройками ресторана.
func NewStore(profile domain.RestaurantProfile, settings domain.Settings) *Store {
	return &Store{
		Clients:       NewClientRepository(),
		Orders:        NewOrderRepository(),
		Menu:          NewMenuRepository(),
		Users:         NewUserRepository(),
		Restaurant:    NewRestaurantRepository(profile, settings),
		Notifications: NewNotificationRepository(),
		Idempotency:   NewIdempotencyRepository(),
	}
}
