package ports

import (
	"context"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

// AccountRepository defines the persistence contract for accounts.
//
// Create must surface the store's uniqueness violation on email/national id
// as domain.ErrAccountExists; lookups return domain.ErrAccountNotFound when
// no document matches. Result ordering of the filtered queries is
// store-defined and not guaranteed stable across calls.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Account, error)
	SearchByUsername(ctx context.Context, fragment string) ([]*domain.Account, error)
	FindByRole(ctx context.Context, role string) ([]*domain.Account, error)
	FindByStatus(ctx context.Context, status string) ([]*domain.Account, error)
}
