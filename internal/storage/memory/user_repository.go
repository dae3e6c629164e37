package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

type userRepositoryInMemory struct {
	mu    sync.RWMutex
	users *collection[domain.User]
}

// NewUserRepository создаёт in-memory реализацию UserRepository.
func NewUserRepository() domain.UserRepository {
	return &userRepositoryInMemory{
		users: newCollection(func(u domain.User) string { return u.ID }),
	}
}

func (r *userRepositoryInMemory) List() ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.users.list(identity[domain.User]), nil
}

func (r *userRepositoryInMemory) Get(id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users.get(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepositoryInMemory) Create(user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.users.add(user) {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *userRepositoryInMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.users.remove(id) {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
