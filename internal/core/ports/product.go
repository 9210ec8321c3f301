package ports

import (
	"context"
	"time"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

// ProductInput carries the editable fields of a product payload.
type ProductInput struct {
	Name          string
	BatchCode     string
	Description   string
	ChemCode      string
	ExpDate       time.Time
	ElabDate      time.Time
	Cost          int
	Stock         int
	CriticalStock int
	Supplier      string
	CategoryID    string
	Image         string
	Active        bool
	Featured      bool
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
	FindFeatured(ctx context.Context) ([]*domain.Product, error)
	SearchByName(ctx context.Context, fragment string) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	FindStockBelow(ctx context.Context, threshold int) ([]*domain.Product, error)
	FindByActive(ctx context.Context, active bool) ([]*domain.Product, error)
	SearchByNameAndCategory(ctx context.Context, fragment, categoryID string) ([]*domain.Product, error)
	SearchByNameAndActive(ctx context.Context, fragment string, active bool) ([]*domain.Product, error)
}

// ProductService exposes catalog operations to the HTTP layer.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Product, error)
	Deactivate(ctx context.Context, id string) (*domain.Product, error)
	UpdateImage(ctx context.Context, id, imageURL string) (*domain.Product, error)
	Featured(ctx context.Context) ([]*domain.Product, error)
	SearchByName(ctx context.Context, fragment string) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error)
	LowStock(ctx context.Context) ([]*domain.Product, error)
	FindByActive(ctx context.Context, active bool) ([]*domain.Product, error)
	SearchByNameAndCategory(ctx context.Context, fragment, categoryID string) ([]*domain.Product, error)
	SearchByNameAndActive(ctx context.Context, fragment string, active bool) ([]*domain.Product, error)
}
