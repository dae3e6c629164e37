package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client — посетитель ресторана с денормализованными счётчиками заказов.
type Client struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	TotalOrders int
	TotalSpent  decimal.Decimal
	JoinedDate  time.Time
}

// ValidateInvariants проверяет, что счётчики клиента неотрицательны.
func (c *Client) ValidateInvariants() []error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if c.TotalOrders < 0 || c.TotalSpent.IsNegative() {
		errs = append(errs, ErrClientTotalsNegative)
	}
	return errs
}

// CreateClientRequest — типизированная форма создания клиента.
type CreateClientRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Normalize убирает пробелы по краям полей.
func (r CreateClientRequest) Normalize() CreateClientRequest {
	return CreateClientRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// Validate возвращает ValidationError со всеми нарушениями или nil.
func (r CreateClientRequest) Validate() error {
	r = r.Normalize()

	var errs []error
	if r.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	switch {
	case r.Email == "":
		errs = append(errs, ErrEmailRequired)
	case !validEmail(r.Email):
		errs = append(errs, ErrEmailInvalid)
	}
	if r.Phone == "" {
		errs = append(errs, ErrPhoneRequired)
	}
	return NewValidationError(errs)
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
