package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Every method is a
// single-record operation the store must apply atomically; the store also
// carries a unique constraint on slug as the backstop against check-then-write
// races in the service layer.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// ExistsWithSlug reports whether a post other than excludeID already uses
	// the slug. excludeID is empty on create.
	ExistsWithSlug(ctx context.Context, slug string, excludeID string) (bool, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
	// List returns one page of posts ordered by created_at descending and the
	// total count across all pages.
	List(ctx context.Context, page, limit int) ([]*domain.Post, int64, error)
}
