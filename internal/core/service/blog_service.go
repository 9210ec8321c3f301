package service

import (
	"context"

	"github.com/hazellab/catalog-api/internal/core/domain"
	"github.com/hazellab/catalog-api/internal/core/ports"
)

type BlogService struct {
	repo ports.BlogRepository
}

func NewBlogService(repo ports.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

func (s *BlogService) Create(ctx context.Context, input ports.BlogInput) (*domain.BlogPost, error) {
	return s.repo.Create(ctx, &domain.BlogPost{
		Title:   input.Title,
		Body:    input.Body,
		Summary: input.Summary,
		Author:  input.Author,
		Image:   input.Image,
	})
}

func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) Update(ctx context.Context, id string, input ports.BlogInput) (*domain.BlogPost, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Title = input.Title
	existing.Body = input.Body
	existing.Summary = input.Summary
	existing.Author = input.Author
	existing.Image = input.Image
	return s.repo.Update(ctx, existing)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrBlogPostNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.repo.List(ctx)
}
