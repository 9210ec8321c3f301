package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hazellab/catalog-api/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	seq        int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.seq++
	copy := *category
	copy.ID = "cat-" + strconv.Itoa(r.seq)
	r.categories[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	copy := *category
	r.categories[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	out := *category
	return &out, nil
}

func (r *stubCategoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func (r *stubCategoryRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		copy := *category
		out = append(out, &copy)
	}
	return out, nil
}

func TestCategoryService_CRUD(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Reactivos")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.Name != "Reactivos" {
		t.Fatalf("unexpected category: %+v", created)
	}

	renamed, err := svc.Update(ctx, created.ID, "Reactivos químicos")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if renamed.Name != "Reactivos químicos" {
		t.Fatalf("rename not applied: %s", renamed.Name)
	}

	if _, err := svc.Update(ctx, "missing", "x"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound on second delete, got %v", err)
	}
}
