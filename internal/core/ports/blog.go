package ports

import (
	"context"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

// BlogInput carries the editable fields of a blog post payload.
type BlogInput struct {
	Title   string
	Body    string
	Summary string
	Author  string
	Image   string
}

type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	FindByID(ctx context.Context, id string) (*domain.BlogPost, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.BlogPost, error)
}

type BlogService interface {
	Create(ctx context.Context, input BlogInput) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, input BlogInput) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.BlogPost, error)
}
