package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа на кухне.
type OrderStatus string

const (
	// OrderStatusPending — заказ принят, но ещё не взят в работу.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusPreparing — заказ готовится на кухне.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady — заказ готов к выдаче.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusDelivered — заказ выдан клиенту (терминальный статус).
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён (терминальный статус).
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses перечисляет статусы в порядке жизненного цикла.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// orderTransitions — единственный источник истины о разрешённых переходах.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: nil,
	OrderStatusCancelled: nil,
}

// ParseOrderStatus разбирает статус без учёта регистра и пробелов.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrOrderStatusUnknown, value)
	}
	return status, nil
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal сообщает, что из статуса нет исходящих переходов.
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// NextStatuses возвращает статусы, в которые можно перейти за один шаг.
func (s OrderStatus) NextStatuses() []OrderStatus {
	next := orderTransitions[s]
	result := make([]OrderStatus, len(next))
	copy(result, next)
	return result
}

// CanTransitionTo проверяет ребро s → next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal возвращает Quantity × UnitPrice.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID            string
	CustomerName  string
	Number        string
	PlacedAt      time.Time
	Status        OrderStatus
	Total         decimal.Decimal
	PaymentMethod string
	Items         []OrderItem
	Version       int64
	UpdatedAt     time.Time
}

// ItemsTotal суммирует стоимость позиций.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// TransitionTo применяет переход статуса, если он разрешён.
func (o *Order) TransitionTo(next OrderStatus, at time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrOrderStatusUnknown, next)
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = at
	return nil
}

// ForceStatus выставляет статус без проверки рёбер (advisory-политика).
func (o *Order) ForceStatus(next OrderStatus, at time.Time) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrOrderStatusUnknown, next)
	}
	o.Status = next
	o.UpdatedAt = at
	return nil
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if strings.TrimSpace(o.CustomerName) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrOrderStatusUnknown)
	}

	// Сверяем сумму заказа с суммой позиций: qty * price.
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, ErrItemPriceInvalid)
		}
	}
	if !o.Total.Equal(o.ItemsTotal()) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}

// Clone возвращает копию заказа с независимым срезом позиций.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
