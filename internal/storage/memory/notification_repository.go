package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/rms/internal/domain"
)

// DefaultNotificationCapacity ограничивает журнал уведомлений сессии.
const DefaultNotificationCapacity = 1000

// notificationRepositoryInMemory хранит журнал уведомлений сессии.
// При переполнении вытесняются самые старые записи.
type notificationRepositoryInMemory struct {
	mu       sync.RWMutex
	capacity int
	log      []domain.Notification
	byEntity map[string][]domain.Notification
}

// NewNotificationRepository создаёт in-memory реализацию NotificationRepository
// ёмкостью DefaultNotificationCapacity.
func NewNotificationRepository() domain.NotificationRepository {
	return NewNotificationRepositoryWithCapacity(DefaultNotificationCapacity)
}

// NewNotificationRepositoryWithCapacity создаёт журнал на capacity записей;
// capacity <= 0 заменяется на DefaultNotificationCapacity.
func NewNotificationRepositoryWithCapacity(capacity int) domain.NotificationRepository {
	if capacity <= 0 {
		capacity = DefaultNotificationCapacity
	}
	return &notificationRepositoryInMemory{
		capacity: capacity,
		byEntity: make(map[string][]domain.Notification),
	}
}

func entityKey(entityType, entityID string) string {
	return entityType + "/" + entityID
}

// Append добавляет уведомление в общий журнал и в журнал сущности.
// Порядок добавления и есть хронологический порядок.
func (r *notificationRepositoryInMemory) Append(notification domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = append(r.log, notification)
	key := entityKey(notification.EntityType, notification.EntityID)
	r.byEntity[key] = append(r.byEntity[key], notification)

	if len(r.log) > r.capacity {
		r.evictOldest()
	}
	return nil
}

// evictOldest удаляет самую старую запись. Она же первая в журнале своей сущности.
func (r *notificationRepositoryInMemory) evictOldest() {
	oldest := r.log[0]
	r.log[0] = domain.Notification{}
	r.log = r.log[1:]

	key := entityKey(oldest.EntityType, oldest.EntityID)
	events := r.byEntity[key]
	if len(events) <= 1 {
		delete(r.byEntity, key)
		return
	}
	events[0] = domain.Notification{}
	r.byEntity[key] = events[1:]
}

// List возвращает уведомления сущности в порядке добавления.
func (r *notificationRepositoryInMemory) List(entityType, entityID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.byEntity[entityKey(entityType, entityID)]
	result := make([]domain.Notification, len(events))
	copy(result, events)
	return result, nil
}

// Recent возвращает до limit последних уведомлений; limit <= 0 — весь журнал.
func (r *notificationRepositoryInMemory) Recent(limit int) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.log)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.Notification, 0, n)
	for i := len(r.log) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, r.log[i])
	}
	return result, nil
}

var _ domain.NotificationRepository = (*notificationRepositoryInMemory)(nil)
