package repository

import (
	"context"

	"github.com/pressmark/pressmark/internal/post"
)

// Repository is the persistence contract for posts. Implementations classify
// failures with apperr kinds: NotFound for missing identifiers, Validation for
// structurally invalid ones, Unavailable for store faults.
type Repository interface {
	// List returns one page of posts matching q plus the total match count
	// across all pages. A page past the end yields an empty slice, not an error.
	List(ctx context.Context, q post.ListQuery) ([]*post.Post, int64, error)
	GetByID(ctx context.Context, id string) (*post.Post, error)
	Create(ctx context.Context, in post.Input) (*post.Post, error)
	// Update replaces every editable field of the post with the values in
	// in (full-replace, no merge) and bumps the write version.
	Update(ctx context.Context, id string, in post.Input) (*post.Post, error)
	Delete(ctx context.Context, id string) error
}
