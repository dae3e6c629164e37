// Package dashboard реализует операции админки ресторана поверх хранилища сессии.
package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/rms/internal/domain"
	"github.com/vladislavdragonenkov/rms/internal/metrics"
	"github.com/vladislavdragonenkov/rms/internal/storage/memory"
)

// TransitionPolicy определяет, как обрабатываются переходы статуса вне разрешённых рёбер.
type TransitionPolicy string

const (
	// PolicyStrict отклоняет недопустимый переход с ErrInvalidStatusTransition.
	PolicyStrict TransitionPolicy = "strict"
	// PolicyAdvisory применяет любой переход, логируя и учитывая недопустимые.
	PolicyAdvisory TransitionPolicy = "advisory"
)

// ParseTransitionPolicy разбирает политику без учёта регистра.
func ParseTransitionPolicy(value string) (TransitionPolicy, error) {
	switch policy := TransitionPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case PolicyStrict, PolicyAdvisory:
		return policy, nil
	default:
		return "", fmt.Errorf("unknown transition policy %q", value)
	}
}

const (
	defaultRecentOrders = 5
	defaultTopItems     = 5
	maxSaveAttempts     = 3
	defaultRetryBackoff = 10 * time.Millisecond
)

// Outcome сообщает, была ли мутация применена. Отсутствующий ID даёт Applied=false без ошибки.
type Outcome struct {
	Applied      bool
	Notification *domain.Notification
}

// Service — единственный владелец состояния сессии. Мутации сериализуются.
type Service struct {
	mu sync.RWMutex

	store   *memory.Store
	logger  *log.Entry
	metrics *metrics.DashboardMetrics

	policy       TransitionPolicy
	retryBackoff time.Duration
	recentOrders int
	topItems     int

	now   func() time.Time
	newID func() string
}

// Option настраивает Service.
type Option func(*Service)

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics подключает метрики.
func WithMetrics(m *metrics.DashboardMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTransitionPolicy задаёт политику переходов статуса.
func WithTransitionPolicy(policy TransitionPolicy) Option {
	return func(s *Service) {
		if policy != "" {
			s.policy = policy
		}
	}
}

// WithRetryBackoff задаёт базовую задержку между повторами при конфликте версий.
func WithRetryBackoff(delay time.Duration) Option {
	return func(s *Service) {
		if delay >= 0 {
			s.retryBackoff = delay
		}
	}
}

// WithSummaryLimits задаёт размеры списков последних заказов и топа продаж.
func WithSummaryLimits(recentOrders, topItems int) Option {
	return func(s *Service) {
		if recentOrders > 0 {
			s.recentOrders = recentOrders
		}
		if topItems > 0 {
			s.topItems = topItems
		}
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New создаёт сервис поверх хранилища сессии.
func New(store *memory.Store, opts ...Option) *Service {
	s := &Service{
		store:        store,
		logger:       log.New().WithField("component", "dashboard"),
		policy:       PolicyStrict,
		retryBackoff: defaultRetryBackoff,
		recentOrders: defaultRecentOrders,
		topItems:     defaultTopItems,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy возвращает действующую политику переходов.
func (s *Service) Policy() TransitionPolicy {
	return s.policy
}

// notify записывает уведомление об успешной мутации в журнал сессии.
func (s *Service) notify(kind domain.NotificationKind, entityType, entityID, message string) (domain.Notification, error) {
	notification := domain.Notification{
		ID:         s.newID(),
		Kind:       kind,
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		Occurred:   s.now(),
	}
	if err := s.store.Notifications.Append(notification); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"kind":      kind,
			"entity_id": entityID,
		}).Error("append notification failed")
		return domain.Notification{}, err
	}
	if s.metrics != nil {
		s.metrics.RecordNotification()
	}
	return notification, nil
}

func (s *Service) applied(kind domain.NotificationKind, entityType, entityID, message string) (Outcome, error) {
	notification, err := s.notify(kind, entityType, entityID, message)
	if err != nil {
		return Outcome{Applied: true}, err
	}
	return Outcome{Applied: true, Notification: &notification}, nil
}

func (s *Service) observe(operation string, start time.Time, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordMutation(operation, result, time.Since(start))
}

// resultOf переводит исход мутации в label метрики.
func resultOf(outcome Outcome, err error) string {
	switch {
	case err != nil && (domain.IsValidation(err) || errors.Is(err, domain.ErrInvalidStatusTransition)):
		return metrics.ResultRejected
	case err != nil:
		return metrics.ResultError
	case !outcome.Applied:
		return metrics.ResultNoop
	default:
		return metrics.ResultApplied
	}
}

func (s *Service) setEntities(entity string, count int) {
	if s.metrics != nil {
		s.metrics.SetEntities(entity, count)
	}
}

func validationError(violations ...error) error {
	return domain.NewValidationError(violations)
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
