package dashboard

import (
	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/query"
)

// Dashboard собирает сводку главной страницы по текущему состоянию сессии.
func (s *Service) Dashboard() (query.DashboardSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients, err := s.store.Clients.List()
	if err != nil {
		return query.DashboardSummary{}, err
	}
	orders, err := s.store.Orders.List()
	if err != nil {
		return query.DashboardSummary{}, err
	}
	users, err := s.store.Users.List()
	if err != nil {
		return query.DashboardSummary{}, err
	}
	menu, err := s.store.Menu.Categories()
	if err != nil {
		return query.DashboardSummary{}, err
	}

	return query.Summarize(clients, orders, users, menu, s.recentOrders, s.topItems), nil
}

// Notifications возвращает до limit последних уведомлений, новые первыми.
func (s *Service) Notifications(limit int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Notifications.Recent(limit)
}

// RefreshGauges выставляет метрики размеров всех коллекций сессии.
func (s *Service) RefreshGauges() {
	if s.metrics == nil {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	s.refreshClients()
	s.refreshMenu()
	if orders, err := s.store.Orders.List(); err == nil {
		s.setEntities("orders", len(orders))
	}
	if users, err := s.store.Users.List(); err == nil {
		s.setEntities("users", len(users))
	}
}
