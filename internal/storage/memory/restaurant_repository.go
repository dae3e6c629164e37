package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

type restaurantRepositoryInMemory struct {
	mu       sync.RWMutex
	profile  domain.RestaurantProfile
	settings domain.Settings
	account  domain.AccountProfile
}

// NewRestaurantRepository создаёт хранилище профиля и настроек с начальными значениями.
// Учётная запись оператора пуста до первого SaveAccount.
func NewRestaurantRepository(profile domain.RestaurantProfile, settings domain.Settings) domain.RestaurantRepository {
	return &restaurantRepositoryInMemory{profile: profile, settings: settings}
}

func (r *restaurantRepositoryInMemory) Profile() (domain.RestaurantProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *restaurantRepositoryInMemory) SaveProfile(profile domain.RestaurantProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	return nil
}

func (r *restaurantRepositoryInMemory) Settings() (domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *restaurantRepositoryInMemory) SaveSettings(settings domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}

func (r *restaurantRepositoryInMemory) Account() (domain.AccountProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.account, nil
}

func (r *restaurantRepositoryInMemory) SaveAccount(account domain.AccountProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.account = account
	return nil
}

var _ domain.RestaurantRepository = (*restaurantRepositoryInMemory)(nil)
