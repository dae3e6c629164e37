package domain

import "strings"

// Границы таймаута сессии оператора в минутах.
const (
	MinAccountSessionTimeout = 5
	MaxAccountSessionTimeout = 60
)

// AccountProfile — личная учётная запись оператора админки.
// Role только для чтения: обновление сохраняет текущую роль.
type AccountProfile struct {
	Name                  string
	Email                 string
	Phone                 string
	Role                  string
	TwoFactorEnabled      bool
	SessionTimeoutMinutes int
	EmailNotifications    bool
	PushNotifications     bool
}

// Normalize обрезает пробелы в текстовых полях.
func (a AccountProfile) Normalize() AccountProfile {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Role = strings.TrimSpace(a.Role)
	return a
}

// Validate проверяет имя, email и таймаут сессии.
func (a AccountProfile) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	switch {
	case a.Email == "":
		errs = append(errs, ErrEmailRequired)
	case !validEmail(a.Email):
		errs = append(errs, ErrEmailInvalid)
	}
	if a.SessionTimeoutMinutes < MinAccountSessionTimeout || a.SessionTimeoutMinutes > MaxAccountSessionTimeout {
		errs = append(errs, ErrAccountTimeoutInvalid)
	}
	return NewValidationError(errs)
}
