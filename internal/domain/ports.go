package domain

import "time"

// NotificationRepository хранит журнал подтверждений мутаций текущей сессии.
type NotificationRepository interface {
	Append(notification Notification) error
	// List возвращает уведомления сущности в хронологическом порядке.
	List(entityType, entityID string) ([]Notification, error)
	// Recent возвращает последние уведомления, новые первыми.
	Recent(limit int) ([]Notification, error)
}

// IdempotencyRepository хранит состояние обработки запросов по idempotency-key.
type IdempotencyRepository interface {
	CreateProcessing(key, requestHash string, ttlAt time.Time) (IdempotencyRecord, error)
	Get(key string) (IdempotencyRecord, error)
	MarkDone(key string, responseBody []byte, statusCode int) error
	MarkFailed(key string, responseBody []byte, statusCode int) error
	DeleteExpired(before time.Time, limit int) (int, error)
}
