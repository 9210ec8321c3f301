package ports

import (
	"context"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

type CartItemRepository interface {
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	Update(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	FindByID(ctx context.Context, id string) (*domain.CartItem, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.CartItem, error)
	FindByAccount(ctx context.Context, accountID string) ([]*domain.CartItem, error)
}

// CartService manages shopping-cart lines. Update only touches the quantity;
// the account/product pairing is fixed at creation.
type CartService interface {
	Create(ctx context.Context, accountID, productID string, quantity int) (*domain.CartItem, error)
	GetByID(ctx context.Context, id string) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.CartItem, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.CartItem, error)
}
