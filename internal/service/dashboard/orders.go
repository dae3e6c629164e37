package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/metrics"
	"github.com/vladislavdragonenkov/rms/internal/query"
)

// ListOrders возвращает заказы по тексту и статусу вместе со сводкой по всем заказам.
// Пустой status отключает фильтр по статусу.
func (s *Service) ListOrders(q string, status domain.OrderStatus) ([]domain.Order, query.OrderStats, error) {
	if status != "" && !status.Valid() {
		return nil, query.OrderStats{}, validationError(fmt.Errorf("%w: %q", domain.ErrOrderStatusUnknown, status))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	orders, err := s.store.Orders.List()
	if err != nil {
		return nil, query.OrderStats{}, err
	}
	return query.FilterOrders(orders, q, status), query.SummarizeOrders(orders), nil
}

// GetOrder возвращает заказ и его уведомления в хронологическом порядке.
func (s *Service) GetOrder(id string) (domain.Order, []domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, err := s.store.Orders.Get(id)
	if err != nil {
		return domain.Order{}, nil, err
	}
	notifications, err := s.store.Notifications.List(domain.EntityOrder, id)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return order, notifications, nil
}

// SetOrderStatus переводит заказ в status. Неизвестный ID — тихий no-op.
// Конфликт версий повторяется до maxSaveAttempts раз с экспоненциальной задержкой.
// s.mu исключает конфликт между мутациями сервиса; повтор обслуживает
// писателей OrderRepository в обход сервиса.
func (s *Service) SetOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (outcome Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("set_order_status", start, resultOf(outcome, err)) }()

	if !status.Valid() {
		return Outcome{}, validationError(fmt.Errorf("%w: %q", domain.ErrOrderStatusUnknown, status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delay := s.retryBackoff
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		order, err := s.store.Orders.Get(id)
		if errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.WithField("order_id", id).Debug("set status skipped: order not found")
			return Outcome{}, nil
		}
		if err != nil {
			return Outcome{}, err
		}

		from := order.Status
		forced, err := s.applyStatus(&order, status)
		if err != nil {
			return Outcome{}, err
		}

		err = s.store.Orders.Save(order)
		if err == nil {
			result := metrics.ResultApplied
			if forced {
				result = metrics.ResultForced
			}
			s.recordTransition(from, status, result)
			s.logger.WithFields(log.Fields{
				"order_id": id,
				"from":     from,
				"to":       status,
				"attempt":  attempt + 1,
			}).Info("order status updated")

			return s.applied(domain.NotificationOrderStatusChanged, domain.EntityOrder, id,
				fmt.Sprintf("Order %s status updated to %s", order.Number, status))
		}

		if !domain.IsVersionConflict(err) {
			s.logger.WithError(err).WithField("order_id", id).Error("failed to persist status")
			return Outcome{}, err
		}
		if s.metrics != nil {
			s.metrics.RecordVersionConflict()
		}
		if attempt == maxSaveAttempts-1 {
			break
		}

		s.logger.WithFields(log.Fields{
			"order_id": id,
			"attempt":  attempt + 1,
			"version":  order.Version,
		}).Warn("version conflict detected, retrying")

		select {
		case <-ctx.Done():
			return Outcome{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	s.logger.WithField("order_id", id).Error("order status update failed after all retry attempts")
	return Outcome{}, fmt.Errorf("%w: %d attempts", domain.ErrOrderVersionConflict, maxSaveAttempts)
}

// applyStatus применяет переход согласно политике сервиса. forced сообщает,
// что advisory-политика пропустила переход вне разрешённых рёбер.
func (s *Service) applyStatus(order *domain.Order, status domain.OrderStatus) (forced bool, err error) {
	from := order.Status
	now := s.now()

	if s.policy == PolicyAdvisory {
		forced = !from.CanTransitionTo(status)
		if forced {
			s.logger.WithFields(log.Fields{
				"order_id": order.ID,
				"from":     from,
				"to":       status,
			}).Warn("applying status transition outside of allowed edges")
		}
		return forced, order.ForceStatus(status, now)
	}

	if err := order.TransitionTo(status, now); err != nil {
		s.recordTransition(from, status, metrics.ResultRejected)
		s.logger.WithFields(log.Fields{
			"order_id": order.ID,
			"from":     from,
			"to":       status,
		}).Info("status transition rejected")
		return false, err
	}
	return false, nil
}

func (s *Service) recordTransition(from, to domain.OrderStatus, result string) {
	if s.metrics != nil {
		s.metrics.RecordStatusTransition(string(from), string(to), result)
	}
}
