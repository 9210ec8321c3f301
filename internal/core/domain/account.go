package domain

import (
	"errors"
	"time"
)

const (
	RoleClient     = "cliente"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"

	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// Account-related sentinel errors. The HTTP layer maps each to a status code.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")

	ErrPasswordRequired   = errors.New("password required")
	ErrNationalIDRequired = errors.New("national id required")
	ErrEmailDomain        = errors.New("invalid email domain")
)

// Account models a storefront user. Role and Status are open string sets: the
// service only special-cases StatusActive at login time, and roles are an
// authorization concern of the caller, not of the core.
//
// PasswordHash never leaves the API: json:"-" keeps it out of every response.
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	NationalID   string    `json:"national_id"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Region       string    `json:"region,omitempty"`
	Commune      string    `json:"commune,omitempty"`
	BirthDate    string    `json:"birth_date,omitempty"`
	Address      string    `json:"address,omitempty"`
}

// IsAdmin reports whether the account may access the admin dashboard.
// Enforced by the login handler, not by the account service.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}
