package ports

import (
	"context"
	"time"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a new post.
type CreatePostInput struct {
	ActingUserID string
	Title        string
	Body         string
}

// UpdatePostInput carries a partial update. Nil pointers mean "leave the field
// untouched"; non-nil pointers are validated and applied. Supplying Slug pins
// the slug explicitly and suppresses regeneration from the title.
type UpdatePostInput struct {
	ActingUserID string
	ID           string
	Title        *string
	Body         *string
	Slug         *string
}

// ListPostsInput carries pagination for the public post listing.
type ListPostsInput struct {
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// ListPostsResult is returned by List.
type ListPostsResult struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DeleteResult confirms a completed deletion.
type DeleteResult struct {
	ID        string
	DeletedAt time.Time
}

// PostService defines use-case operations for posts. Reads are public;
// mutations require an acting user and enforce ownership.
type PostService interface {
	List(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actingUserID, id string) (*DeleteResult, error)
}
