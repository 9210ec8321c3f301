package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

type stubBlogRepo struct {
	posts map[string]*domain.BlogPost
	seq   int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{posts: make(map[string]*domain.BlogPost)}
}

func (r *stubBlogRepo) Create(_ context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	r.seq++
	copy := *post
	copy.ID = "post-" + strconv.Itoa(r.seq)
	r.posts[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubBlogRepo) Update(_ context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return nil, domain.ErrBlogPostNotFound
	}
	copy := *post
	r.posts[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.BlogPost, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrBlogPostNotFound
	}
	out := *post
	return &out, nil
}

func (r *stubBlogRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func (r *stubBlogRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrBlogPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubBlogRepo) List(_ context.Context) ([]*domain.BlogPost, error) {
	out := make([]*domain.BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		copy := *post
		out = append(out, &copy)
	}
	return out, nil
}

func TestBlogService_CRUD(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.BlogInput{
		Title:  "Lab safety basics",
		Body:   "Wear gloves.",
		Author: "carla",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.Title != "Lab safety basics" {
		t.Fatalf("unexpected post: %+v", created)
	}

	updated, err := svc.Update(ctx, created.ID, ports.BlogInput{
		Title:  "Lab safety basics",
		Body:   "Wear gloves and goggles.",
		Author: "carla",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Body != "Wear gloves and goggles." {
		t.Fatalf("body not updated: %s", updated.Body)
	}

	if _, err := svc.Update(ctx, "missing", ports.BlogInput{}); !errors.Is(err, domain.ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound after delete, got %v", err)
	}
}
