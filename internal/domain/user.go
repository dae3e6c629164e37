package domain

import (
	"fmt"
	"strings"
	"time"
)

// UserRole — роль сотрудника в админке.
type UserRole string

const (
	UserRoleAdmin   UserRole = "Admin"
	UserRoleManager UserRole = "Manager"
	UserRoleStaff   UserRole = "Staff"
)

// UserRoles перечисляет роли в порядке убывания привилегий.
var UserRoles = []UserRole{UserRoleAdmin, UserRoleManager, UserRoleStaff}

// UserStatus — активность учётной записи.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// UserStatuses перечисляет статусы пользователей.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive}

// ParseUserRole разбирает роль без учёта регистра.
func ParseUserRole(value string) (UserRole, error) {
	for _, role := range UserRoles {
		if strings.EqualFold(string(role), strings.TrimSpace(value)) {
			return role, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUserRoleUnknown, value)
}

// ParseUserStatus разбирает статус без учёта регистра.
func ParseUserStatus(value string) (UserStatus, error) {
	for _, status := range UserStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(value)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUserStatusUnknown, value)
}

// User — сотрудник с доступом к админке.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       UserRole
	Status     UserStatus
	JoinedDate time.Time
	LastActive time.Time
}
