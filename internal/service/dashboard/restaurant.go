package dashboard

import (
	"time"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// GetRestaurantProfile возвращает профиль ресторана.
func (s *Service) GetRestaurantProfile() (domain.RestaurantProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Restaurant.Profile()
}

// UpdateRestaurantProfile сохраняет профиль целиком.
func (s *Service) UpdateRestaurantProfile(profile domain.RestaurantProfile) (notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("update_restaurant_profile", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	if err := profile.Validate(); err != nil {
		return domain.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Restaurant.SaveProfile(profile); err != nil {
		return domain.Notification{}, err
	}
	return s.notify(domain.NotificationProfileUpdated, domain.EntityRestaurant, "profile",
		"Restaurant profile has been updated")
}

// GetSettings возвращает системные настройки.
func (s *Service) GetSettings() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Restaurant.Settings()
}

// UpdateSettings сохраняет настройки после проверки валюты, таймзоны и таймаута сессии.
func (s *Service) UpdateSettings(settings domain.Settings) (notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("update_settings", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	if err := settings.Validate(); err != nil {
		return domain.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Restaurant.SaveSettings(settings); err != nil {
		return domain.Notification{}, err
	}
	return s.notify(domain.NotificationSettingsUpdated, domain.EntityRestaurant, "settings",
		"Settings have been saved")
}

// GetAccount возвращает учётную запись оператора.
func (s *Service) GetAccount() (domain.AccountProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Restaurant.Account()
}

// UpdateAccount сохраняет личные данные, безопасность и предпочтения уведомлений
// оператора. Роль не меняется.
func (s *Service) UpdateAccount(account domain.AccountProfile) (notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("update_account", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	account = account.Normalize()
	if err := account.Validate(); err != nil {
		return domain.Notification{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Restaurant.Account()
	if err != nil {
		return domain.Notification{}, err
	}
	account.Role = current.Role

	if err := s.store.Restaurant.SaveAccount(account); err != nil {
		return domain.Notification{}, err
	}
	return s.notify(domain.NotificationAccountUpdated, domain.EntityAccount, "operator",
		"Account has been updated")
}
