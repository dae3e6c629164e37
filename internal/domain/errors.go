package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation — общий маркер ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// Ошибка отсутствующего имени (клиента, позиции меню, категории, ресторана).
	ErrNameRequired = errors.New("name is required")
	// Ошибка отсутствующего email.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка некорректного email.
	ErrEmailInvalid = errors.New("email is invalid")
	// Ошибка отсутствующего телефона.
	ErrPhoneRequired = errors.New("phone is required")
	// Ошибка отсутствующей цены.
	ErrPriceRequired = errors.New("price is required")
	// Ошибка нечисловой цены.
	ErrPriceInvalid = errors.New("price must be a number")
	// Ошибка цены <= 0.
	ErrPriceNotPositive = errors.New("price must be greater than zero")
	// Ошибка отсутствующей категории у позиции меню.
	ErrCategoryRequired = errors.New("category is required")
	// Ошибка ссылки на несуществующую категорию.
	ErrCategoryUnknown = errors.New("category does not exist")
	// Ошибка повторного имени категории.
	ErrCategoryNameTaken = errors.New("category name is already used")
	// Ошибка неизвестного статуса заказа.
	ErrOrderStatusUnknown = errors.New("order status is unknown")
	// Ошибка неизвестной роли пользователя.
	ErrUserRoleUnknown = errors.New("user role is unknown")
	// Ошибка неизвестного статуса пользователя.
	ErrUserStatusUnknown = errors.New("user status is unknown")
	// Ошибка отрицательных счётчиков клиента.
	ErrClientTotalsNegative = errors.New("client totals must be non-negative")
	// Ошибка количества в позиции заказа.
	ErrItemQtyInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка отрицательной цены позиции заказа.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка некорректного кода валюты.
	ErrCurrencyInvalid = errors.New("currency must be a 3-letter code")
	// Ошибка неизвестной таймзоны.
	ErrTimezoneInvalid = errors.New("timezone is unknown")
	// Ошибка таймаута сессии вне допустимого диапазона.
	ErrSessionTimeoutInvalid = errors.New("session timeout must be between 1 and 1440 minutes")
	// Ошибка таймаута сессии оператора вне допустимого диапазона.
	ErrAccountTimeoutInvalid = errors.New("account session timeout must be between 5 and 60 minutes")

	// ErrInvalidStatusTransition — переход статуса вне разрешённых рёбер.
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")

	// ErrClientNotFound возвращается, если клиент не найден в репозитории.
	ErrClientNotFound = errors.New("client not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMenuItemNotFound возвращается, если позиция меню не найдена.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrMenuCategoryNotFound возвращается, если категория не найдена.
	ErrMenuCategoryNotFound = errors.New("menu category not found")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyExists возвращается при повторном создании сущности с тем же ID.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")

	// Ошибки idempotency-хранилища.
	ErrIdempotencyKeyRequired         = errors.New("idempotency key is required")
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	ErrIdempotencyKeyNotFound         = errors.New("idempotency key not found")
	ErrIdempotencyKeyAlreadyExists    = errors.New("idempotency key already exists")
	ErrIdempotencyHashMismatch        = errors.New("idempotency key reused with different request")
)

// ValidationError агрегирует нарушения валидации одного запроса.
type ValidationError struct {
	Violations []error
}

// NewValidationError возвращает nil, если нарушений нет.
func NewValidationError(violations []error) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Error())
	}
	return strings.Join(parts, "; ")
}

// Is позволяет проверять как общий маркер ErrValidation, так и конкретное нарушение.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, v := range e.Violations {
		if errors.Is(v, target) {
			return true
		}
	}
	return false
}

// IsValidation проверяет, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound проверяет, относится ли ошибка к отсутствующей сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrMenuCategoryNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsIdempotencyConflict проверяет, что ключ уже использован.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}
