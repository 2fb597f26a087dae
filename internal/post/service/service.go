package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pressmark/pressmark/internal/apperr"
	"github.com/pressmark/pressmark/internal/post"
	"github.com/pressmark/pressmark/internal/post/repository"
)

// Service fronts the repository with the write-side validation rules: nothing
// reaches the store unless the input passes.
type Service interface {
	List(ctx context.Context, q post.ListQuery) ([]*post.Post, int64, error)
	Get(ctx context.Context, id string) (*post.Post, error)
	Create(ctx context.Context, in post.Input) (*post.Post, error)
	Update(ctx context.Context, id string, in post.Input) (*post.Post, error)
	Delete(ctx context.Context, id string) error
}

func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.Repository
}

func (s *service) List(ctx context.Context, q post.ListQuery) ([]*post.Post, int64, error) {
	return s.repo.List(ctx, q)
}

func (s *service) Get(ctx context.Context, id string) (*post.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in post.Input) (*post.Post, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

func (s *service) Update(ctx context.Context, id string, in post.Input) (*post.Post, error) {
	const op = "post.Update"
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid(op, "id", "post id is required")
	}
	if !in.Status.Valid() {
		return nil, apperr.Invalid(op, "status", "status must be Draft or Publish")
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "post.Delete"
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid(op, "id", "post id is required")
	}
	return s.repo.Delete(ctx, id)
}

// validateCreate enforces the required-field rules before any write happens.
func validateCreate(in post.Input) error {
	const op = "post.Create"
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Invalid(op, "title", "title is required")
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		return apperr.Invalid(op, "excerpt", "excerpt is required")
	}
	if utf8.RuneCountInString(in.Excerpt) > 300 {
		return apperr.Invalid(op, "excerpt", "excerpt must be less than 300 characters")
	}
	if strings.TrimSpace(in.Content) == "" || in.Content == post.EmptyContent {
		return apperr.Invalid(op, "content", "content is required")
	}
	if strings.TrimSpace(in.FeaturedImage) == "" {
		return apperr.Invalid(op, "featuredImage", "featured image is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return apperr.Invalid(op, "category", "category is required")
	}
	if !post.ValidCategory(in.Category) {
		return apperr.Invalid(op, "category", "unknown category")
	}
	if !in.Status.Valid() {
		return apperr.Invalid(op, "status", "status must be Draft or Publish")
	}
	return nil
}
