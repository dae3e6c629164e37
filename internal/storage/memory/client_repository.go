package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

type clientRepositoryInMemory struct {
	mu      sync.RWMutex
	clients *collection[domain.Client]
}

// NewClientRepository создаёт in-memory реализацию ClientRepository.
func NewClientRepository() domain.ClientRepository {
	return &clientRepositoryInMemory{
		clients: newCollection(func(c domain.Client) string { return c.ID }),
	}
}

func (r *clientRepositoryInMemory) List() ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.clients.list(identity[domain.Client]), nil
}

func (r *clientRepositoryInMemory) Get(id string) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients.get(id)
	if !ok {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return client, nil
}

func (r *clientRepositoryInMemory) Create(client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.clients.add(client) {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (r *clientRepositoryInMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.clients.remove(id) {
		return domain.ErrClientNotFound
	}
	return nil
}

var _ domain.ClientRepository = (*clientRepositoryInMemory)(nil)
