package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты мутаций для label result.
const (
	ResultApplied  = "applied"
	ResultNoop     = "noop"
	ResultRejected = "rejected"
	ResultError    = "error"
	ResultForced   = "forced"
)

// DashboardMetrics содержит метрики операций админки.
type DashboardMetrics struct {
	// Мутации по операциям и результату
	mutations        *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec

	// Переходы статусов заказов
	statusTransitions *prometheus.CounterVec
	versionConflicts  prometheus.Counter

	notifications prometheus.Counter

	// Размеры коллекций сессии
	entities *prometheus.GaugeVec
}

// NewDashboardMetrics создаёт метрики в DefaultRegisterer.
func NewDashboardMetrics() *DashboardMetrics {
	return NewDashboardMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewDashboardMetricsWithRegisterer создаёт метрики в переданном реестре.
// Повторная регистрация переиспользует уже существующие коллекторы.
func NewDashboardMetricsWithRegisterer(registerer prometheus.Registerer) *DashboardMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &DashboardMetrics{
		mutations: register(registerer, "rms_mutations_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rms_mutations_total",
			Help: "Total number of dashboard mutations by operation and result",
		}, []string{"operation", "result"})),
		mutationDuration: register(registerer, "rms_mutation_duration_seconds", prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rms_mutation_duration_seconds",
			Help:    "Duration of dashboard mutations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"operation"})),
		statusTransitions: register(registerer, "rms_order_status_transitions_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rms_order_status_transitions_total",
			Help: "Total number of order status transitions by edge and result",
		}, []string{"from", "to", "result"})),
		versionConflicts: register(registerer, "rms_order_version_conflicts_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rms_order_version_conflicts_total",
			Help: "Total number of optimistic locking conflicts on orders",
		})),
		notifications: register(registerer, "rms_notifications_total", prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rms_notifications_total",
			Help: "Total number of notifications recorded",
		})),
		entities: register(registerer, "rms_session_entities", prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rms_session_entities",
			Help: "Number of entities held by the session store",
		}, []string{"entity"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) C {
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// RecordMutation учитывает мутацию и её длительность.
func (m *DashboardMetrics) RecordMutation(operation, result string, duration time.Duration) {
	m.mutations.WithLabelValues(operation, result).Inc()
	m.mutationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStatusTransition учитывает попытку перехода статуса заказа.
func (m *DashboardMetrics) RecordStatusTransition(from, to, result string) {
	m.statusTransitions.WithLabelValues(from, to, result).Inc()
}

// RecordVersionConflict увеличивает счётчик конфликтов версий.
func (m *DashboardMetrics) RecordVersionConflict() {
	m.versionConflicts.Inc()
}

// RecordNotification увеличивает счётчик уведомлений.
func (m *DashboardMetrics) RecordNotification() {
	m.notifications.Inc()
}

// SetEntities выставляет размер коллекции сессии.
func (m *DashboardMetrics) SetEntities(entity string, count int) {
	m.entities.WithLabelValues(entity).Set(float64(count))
}
