package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository с optimistic locking.
type orderRepositoryInMemory struct {
	mu     sync.RWMutex
	orders *collection[domain.Order]
}

// NewOrderRepository возвращает пустой репозиторий заказов сессии.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		orders: newCollection(func(o domain.Order) string { return o.ID }),
	}
}

// List возвращает копии заказов в порядке добавления.
func (r *orderRepositoryInMemory) List() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.orders.list(domain.Order.Clone), nil
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	if !r.orders.add(order.Clone()) {
		return domain.ErrAlreadyExists
	}
	return nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders.get(id)
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order.Clone(), nil
}

// Save перезаписывает заказ, проверяя версию (optimistic locking).
func (r *orderRepositoryInMemory) Save(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders.get(order.ID)
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}
	// Инкрементируем версию перед сохранением.
	order = order.Clone()
	order.Version++
	r.orders.replace(order)
	return nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
