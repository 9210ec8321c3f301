package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

// FeaturedCache abstracts the featured-products cache (Redis). A failing
// cache never fails a request; the repository stays authoritative.
type FeaturedCache interface {
	Get(ctx context.Context) ([]*domain.Product, bool, error)
	Set(ctx context.Context, products []*domain.Product) error
	Invalidate(ctx context.Context) error
}

type ProductService struct {
	repo   ports.ProductRepository
	cache  FeaturedCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache FeaturedCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		BatchCode:     input.BatchCode,
		Description:   input.Description,
		ChemCode:      input.ChemCode,
		ExpDate:       input.ExpDate,
		ElabDate:      input.ElabDate,
		Cost:          input.Cost,
		Stock:         input.Stock,
		CriticalStock: input.CriticalStock,
		Supplier:      input.Supplier,
		CategoryID:    input.CategoryID,
		Image:         input.Image,
		Active:        input.Active,
		Featured:      input.Featured,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces every editable field; CreatedAt keeps its original value.
func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.BatchCode = input.BatchCode
	existing.Description = input.Description
	existing.ChemCode = input.ChemCode
	existing.ExpDate = input.ExpDate
	existing.ElabDate = input.ElabDate
	existing.Cost = input.Cost
	existing.Stock = input.Stock
	existing.CriticalStock = input.CriticalStock
	existing.Supplier = input.Supplier
	existing.CategoryID = input.CategoryID
	existing.Image = input.Image
	existing.Active = input.Active
	existing.Featured = input.Featured

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProductNotFound
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Deactivate is the soft delete: the product stays in the catalog but is no
// longer active.
func (s *ProductService) Deactivate(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Active = false
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *ProductService) UpdateImage(ctx context.Context, id, imageURL string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Image = imageURL
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

// Featured serves the promoted products, preferring the cache. Cache errors
// are logged and ignored.
func (s *ProductService) Featured(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("featured cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	products, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("featured cache write failed")
		}
	}
	return products, nil
}

func (s *ProductService) SearchByName(ctx context.Context, fragment string) ([]*domain.Product, error) {
	return s.repo.SearchByName(ctx, fragment)
}

func (s *ProductService) FindByCategory(ctx context.Context, categoryID string) ([]*domain.Product, error) {
	return s.repo.FindByCategory(ctx, categoryID)
}

// LowStock lists products below the fixed alert threshold.
func (s *ProductService) LowStock(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindStockBelow(ctx, domain.LowStockThreshold)
}

func (s *ProductService) FindByActive(ctx context.Context, active bool) ([]*domain.Product, error) {
	return s.repo.FindByActive(ctx, active)
}

func (s *ProductService) SearchByNameAndCategory(ctx context.Context, fragment, categoryID string) ([]*domain.Product, error) {
	return s.repo.SearchByNameAndCategory(ctx, fragment, categoryID)
}

func (s *ProductService) SearchByNameAndActive(ctx context.Context, fragment string, active bool) ([]*domain.Product, error) {
	return s.repo.SearchByNameAndActive(ctx, fragment, active)
}

func (s *ProductService) invalidateFeatured(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("featured cache invalidation failed")
	}
}
