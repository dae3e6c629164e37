package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/query"
)

// ListUsers возвращает пользователей, подходящих под запрос, и сводку по всем пользователям.
func (s *Service) ListUsers(q string) ([]domain.User, query.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.store.Users.List()
	if err != nil {
		return nil, query.UserStats{}, err
	}
	return query.FilterUsers(users, q), query.SummarizeUsers(users), nil
}

// DeleteUser удаляет пользователя. Неизвестный ID — тихий no-op.
func (s *Service) DeleteUser(id string) (outcome Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("delete_user", start, resultOf(outcome, err)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.store.Users.Get(id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if err := s.store.Users.Delete(id); err != nil {
		return Outcome{}, err
	}
	if users, err := s.store.Users.List(); err == nil {
		s.setEntities("users", len(users))
	}

	return s.applied(domain.NotificationUserDeleted, domain.EntityUser, id,
		fmt.Sprintf("User %s has been removed", user.Name))
}
