package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/query"
)

// ListClients возвращает клиентов, подходящих под запрос, и сводку по всем клиентам.
func (s *Service) ListClients(q string) ([]domain.Client, query.ClientStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients, err := s.store.Clients.List()
	if err != nil {
		return nil, query.ClientStats{}, err
	}
	return query.FilterClients(clients, q), query.SummarizeClients(clients), nil
}

// CreateClient валидирует форму и добавляет клиента с нулевыми счётчиками.
func (s *Service) CreateClient(req domain.CreateClientRequest) (client domain.Client, notification domain.Notification, err error) {
	start := time.Now()
	defer func() { s.observe("create_client", start, resultOf(Outcome{Applied: err == nil}, err)) }()

	if err := req.Validate(); err != nil {
		return domain.Client{}, domain.Notification{}, err
	}
	req = req.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	client = domain.Client{
		ID:         s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		TotalSpent: decimal.Zero,
		JoinedDate: today(s.now()),
	}
	if err := s.store.Clients.Create(client); err != nil {
		s.logger.WithError(err).WithField("client_id", client.ID).Error("create client failed")
		return domain.Client{}, domain.Notification{}, err
	}

	notification, err = s.notify(domain.NotificationClientCreated, domain.EntityClient, client.ID,
		fmt.Sprintf("Client %s has been created", client.Name))
	if err != nil {
		return domain.Client{}, domain.Notification{}, err
	}

	s.logger.WithFields(log.Fields{
		"client_id": client.ID,
		"email":     client.Email,
	}).Info("client created")
	s.refreshClients()

	return client, notification, nil
}

// DeleteClient удаляет клиента. Неизвестный ID — тихий no-op.
func (s *Service) DeleteClient(id string) (outcome Outcome, err error) {
	start := time.Now()
	defer func() { s.observe("delete_client", start, resultOf(outcome, err)) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.store.Clients.Get(id)
	if errors.Is(err, domain.ErrClientNotFound) {
		s.logger.WithField("client_id", id).Debug("delete client skipped: not found")
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	if err := s.store.Clients.Delete(id); err != nil {
		return Outcome{}, err
	}
	s.refreshClients()

	return s.applied(domain.NotificationClientDeleted, domain.EntityClient, id,
		fmt.Sprintf("Client %s has been deleted", client.Name))
}

func (s *Service) refreshClients() {
	if clients, err := s.store.Clients.List(); err == nil {
		s.setEntities("clients", len(clients))
	}
}
