package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	seq      int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.seq++
	copy := cloneProduct(product)
	copy.ID = "prod-" + strconv.Itoa(r.seq)
	r.products[copy.ID] = cloneProduct(copy)
	return cloneProduct(copy), nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (r *stubProductRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	return r.filter(func(*domain.Product) bool { return true }), nil
}

func (r *stubProductRepo) FindFeatured(_ context.Context) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Featured }), nil
}

func (r *stubProductRepo) SearchByName(_ context.Context, fragment string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(fragment))
	}), nil
}

func (r *stubProductRepo) FindByCategory(_ context.Context, categoryID string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *stubProductRepo) FindStockBelow(_ context.Context, threshold int) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Stock < threshold }), nil
}

func (r *stubProductRepo) FindByActive(_ context.Context, active bool) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool { return p.Active == active }), nil
}

func (r *stubProductRepo) SearchByNameAndCategory(_ context.Context, fragment, categoryID string) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool {
		return p.CategoryID == categoryID && strings.Contains(strings.ToLower(p.Name), strings.ToLower(fragment))
	}), nil
}

func (r *stubProductRepo) SearchByNameAndActive(_ context.Context, fragment string, active bool) ([]*domain.Product, error) {
	return r.filter(func(p *domain.Product) bool {
		return p.Active == active && strings.Contains(strings.ToLower(p.Name), strings.ToLower(fragment))
	}), nil
}

func (r *stubProductRepo) filter(keep func(*domain.Product) bool) []*domain.Product {
	var out []*domain.Product
	for _, product := range r.products {
		if keep(product) {
			out = append(out, cloneProduct(product))
		}
	}
	return out
}

// memFeaturedCache records cache traffic so tests can assert on hits and
// invalidations.
type memFeaturedCache struct {
	entry       []*domain.Product
	populated   bool
	gets        int
	sets        int
	invalidates int
	failReads   bool
}

func (c *memFeaturedCache) Get(_ context.Context) ([]*domain.Product, bool, error) {
	c.gets++
	if c.failReads {
		return nil, false, errors.New("redis down")
	}
	if !c.populated {
		return nil, false, nil
	}
	return c.entry, true, nil
}

func (c *memFeaturedCache) Set(_ context.Context, products []*domain.Product) error {
	c.sets++
	c.entry = products
	c.populated = true
	return nil
}

func (c *memFeaturedCache) Invalidate(_ context.Context) error {
	c.invalidates++
	c.entry = nil
	c.populated = false
	return nil
}

func reagent(name string, stock int, featured bool) ports.ProductInput {
	return ports.ProductInput{
		Name:     name,
		Stock:    stock,
		Active:   true,
		Featured: featured,
	}
}

func TestProductService_Featured_CacheMissThenHit(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memFeaturedCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, reagent("Ethanol 96%", 40, true)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, reagent("Agar plates", 12, false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(first) != 1 || first[0].Name != "Ethanol 96%" {
		t.Fatalf("unexpected featured set: %+v", first)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache fill, got %d", cache.sets)
	}

	second, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("unexpected featured set on cache hit: %+v", second)
	}
	if cache.sets != 1 {
		t.Fatalf("cache refilled on a hit")
	}
}

func TestProductService_Featured_CacheFailureFallsBack(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memFeaturedCache{failReads: true}
	svc := NewProductService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, reagent("Ethanol 96%", 40, true)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	products, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("expected fallback to store, got error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected featured set: %+v", products)
	}
}

func TestProductService_MutationsInvalidateCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := &memFeaturedCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, reagent("Ethanol 96%", 40, true))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("create did not invalidate cache")
	}

	if _, err := svc.Featured(ctx); err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if !cache.populated {
		t.Fatalf("cache not filled")
	}

	update := reagent("Ethanol 96%", 40, false)
	if _, err := svc.Update(ctx, created.ID, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if cache.populated {
		t.Fatalf("update left a stale cache entry")
	}

	products, err := svc.Featured(ctx)
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty featured set after unfeaturing, got %+v", products)
	}
}

func TestProductService_Update_PreservesCreatedAt(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &memFeaturedCache{}, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, reagent("Agar plates", 12, false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, reagent("Agar plates (100mm)", 12, false))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed on update")
	}
	if updated.Name != "Agar plates (100mm)" {
		t.Fatalf("name not updated: %s", updated.Name)
	}
}

func TestProductService_Deactivate(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &memFeaturedCache{}, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, reagent("Ethanol 96%", 40, false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Deactivate(ctx, created.ID)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if updated.Active {
		t.Fatalf("product still active after deactivation")
	}

	if _, err := svc.Deactivate(ctx, "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_UpdateImage(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &memFeaturedCache{}, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, reagent("Agar plates", 12, false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateImage(ctx, created.ID, "https://cdn.example.com/agar.png")
	if err != nil {
		t.Fatalf("update image failed: %v", err)
	}
	if updated.Image != "https://cdn.example.com/agar.png" {
		t.Fatalf("image not updated: %s", updated.Image)
	}
	if updated.Name != created.Name {
		t.Fatalf("image update touched other fields")
	}
}

func TestProductService_LowStock(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &memFeaturedCache{}, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, reagent("Ethanol 96%", 40, false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, reagent("Nitrile gloves", 3, false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, reagent("Pipette tips", domain.LowStockThreshold, false)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	low, err := svc.LowStock(ctx)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Nitrile gloves" {
		t.Fatalf("unexpected low-stock set: %+v", low)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &memFeaturedCache{}, zerolog.Nop())
	ctx := context.Background()

	if err := svc.Delete(ctx, "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	created, err := svc.Create(ctx, reagent("Ethanol 96%", 40, false))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}
