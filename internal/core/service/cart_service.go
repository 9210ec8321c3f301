package service

import (
	"context"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

type CartService struct {
	repo ports.CartItemRepository
}

func NewCartService(repo ports.CartItemRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) Create(ctx context.Context, accountID, productID string, quantity int) (*domain.CartItem, error) {
	return s.repo.Create(ctx, &domain.CartItem{
		AccountID: accountID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s *CartService) GetByID(ctx context.Context, id string) (*domain.CartItem, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateQuantity changes the only mutable field of a cart line.
func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return s.repo.Update(ctx, item)
}

func (s *CartService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCartItemNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *CartService) List(ctx context.Context) ([]*domain.CartItem, error) {
	return s.repo.List(ctx)
}

func (s *CartService) ListByAccount(ctx context.Context, accountID string) ([]*domain.CartItem, error) {
	return s.repo.FindByAccount(ctx, accountID)
}
