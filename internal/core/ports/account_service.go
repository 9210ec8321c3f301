package ports

import (
	"context"
	"time"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

// AccountInput carries the raw fields of a create or update request.
//
// Update applies it as a full profile replace: every field overwrites the
// stored value, empty or not, except Password (conditional re-hash) and the
// immutable ID/CreatedAt pair.
type AccountInput struct {
	Username   string
	LastName   string
	Email      string
	NationalID string
	Password   string
	Role       string
	Status     string
	BirthDate  string
	Region     string
	Commune    string
	Address    string
	CreatedAt  time.Time
}

// AccountService owns the account lifecycle and the login flow.
type AccountService interface {
	Create(ctx context.Context, input AccountInput) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, id string, input AccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
	SearchByUsername(ctx context.Context, fragment string) ([]*domain.Account, error)
	FindByRole(ctx context.Context, role string) ([]*domain.Account, error)
	FindByStatus(ctx context.Context, status string) ([]*domain.Account, error)
}
