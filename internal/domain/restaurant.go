package domain

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// RestaurantProfile — публичная карточка ресторана.
type RestaurantProfile struct {
	Name                string
	Address             string
	Phone               string
	Website             string
	Description         string
	OpeningHours        string
	AcceptsReservations bool
	AcceptsCreditCards  bool
	HasDelivery         bool
	HasTakeout          bool
}

// Validate проверяет обязательные поля профиля.
func (p RestaurantProfile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	return NewValidationError(errs)
}

// Settings объединяет системные настройки и предпочтения уведомлений.
type Settings struct {
	Currency               string
	Timezone               string
	Language               string
	EmailNotifications     bool
	OrderNotifications     bool
	MarketingNotifications bool
	SessionTimeoutMinutes  int
}

// Validate проверяет код валюты, таймзону и таймаут сессии.
func (s Settings) Validate() error {
	var errs []error
	if !validCurrency(s.Currency) {
		errs = append(errs, ErrCurrencyInvalid)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil || strings.TrimSpace(s.Timezone) == "" {
		errs = append(errs, ErrTimezoneInvalid)
	}
	if s.SessionTimeoutMinutes < 1 || s.SessionTimeoutMinutes > 24*60 {
		errs = append(errs, ErrSessionTimeoutInvalid)
	}
	return NewValidationError(errs)
}

func validCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
