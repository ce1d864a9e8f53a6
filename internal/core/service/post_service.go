package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
	"github.com/inkpress/blog-api/internal/core/slug"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PostService is the sole mutator of post state. It enforces ownership and
// validation before delegating to the repository; the repository's unique
// slug index backs it up against concurrent writers.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	slugs  *slug.Generator
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{
		posts:  posts,
		users:  users,
		slugs:  slug.NewGenerator(0),
		logger: logger,
	}
}

// List returns one page of posts, newest first. Listing is public and carries
// no ownership filter.
func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.posts.List(ctx, page, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list posts")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPostsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Get returns a single post by id. Any post is publicly readable.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Create validates the input, assigns id, timestamps and a unique slug, and
// persists the post on behalf of the acting user.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if err := domain.ValidateTitle(input.Title); err != nil {
		return nil, fmt.Errorf("%w: title is required and must be at most %d characters", err, domain.MaxTitleLength)
	}
	if err := domain.ValidateBody(input.Body); err != nil {
		return nil, fmt.Errorf("%w: body is required", err)
	}

	author, err := s.users.FindByID(ctx, input.ActingUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	generated, err := s.slugs.Generate(ctx, input.Title, "", s.posts.ExistsWithSlug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:        uuid.NewString(),
		Author:    domain.Author{ID: author.ID, Name: author.Name},
		Title:     input.Title,
		Slug:      generated,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.persistNew(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("slug", post.Slug).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("slug", post.Slug).Str("user_id", author.ID).Msg("post created")
	return post, nil
}

// persistNew inserts the post, regenerating the slug and retrying exactly
// once when a concurrent writer won the race for the same slug.
func (s *PostService) persistNew(ctx context.Context, post *domain.Post) error {
	err := s.posts.Create(ctx, post)
	if !errors.Is(err, domain.ErrSlugConflict) {
		return err
	}

	s.logger.Warn().Str("slug", post.Slug).Msg("slug race lost, regenerating")
	regenerated, genErr := s.slugs.Generate(ctx, post.Title, "", s.posts.ExistsWithSlug)
	if genErr != nil {
		return genErr
	}
	post.Slug = regenerated
	return s.posts.Create(ctx, post)
}

// Update applies a partial update on behalf of the acting user. Supplied
// fields are validated and changed; absent fields are left untouched. A title
// change without an explicit slug regenerates the slug, excluding the post's
// own id from the uniqueness check.
func (s *PostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(post, input.ActingUserID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := domain.ValidateTitle(*input.Title); err != nil {
			return nil, fmt.Errorf("%w: title is required and must be at most %d characters", err, domain.MaxTitleLength)
		}
	}
	if input.Body != nil {
		if err := domain.ValidateBody(*input.Body); err != nil {
			return nil, fmt.Errorf("%w: body is required", err)
		}
	}

	slugRegenerated := false
	switch {
	case input.Slug != nil:
		override := *input.Slug
		if override == "" || len(override) > domain.MaxTitleLength {
			return nil, fmt.Errorf("%w: slug is required and must be at most %d characters", domain.ErrInvalidPost, domain.MaxTitleLength)
		}
		if override != post.Slug {
			taken, err := s.posts.ExistsWithSlug(ctx, override, post.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrSlugTaken
			}
		}
		post.Slug = override

	case input.Title != nil:
		candidate, err := s.slugs.Generate(ctx, *input.Title, post.ID, s.posts.ExistsWithSlug)
		if err != nil {
			return nil, err
		}
		// Identical candidate means the slug already matches the title.
		if candidate != post.Slug {
			post.Slug = candidate
			slugRegenerated = true
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.persistUpdate(ctx, post, slugRegenerated); err != nil {
		s.logger.Error().Err(err).Str("post_id", post.ID).Msg("failed to update post")
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("slug", post.Slug).Msg("post updated")
	return post, nil
}

// persistUpdate writes the post back. A slug-index rejection is retried once
// when the slug was generated by us; an explicitly supplied slug that loses
// the race is reported as taken instead.
func (s *PostService) persistUpdate(ctx context.Context, post *domain.Post, slugRegenerated bool) error {
	err := s.posts.Update(ctx, post)
	if !errors.Is(err, domain.ErrSlugConflict) {
		return err
	}
	if !slugRegenerated {
		return domain.ErrSlugTaken
	}

	s.logger.Warn().Str("slug", post.Slug).Msg("slug race lost, regenerating")
	regenerated, genErr := s.slugs.Generate(ctx, post.Title, post.ID, s.posts.ExistsWithSlug)
	if genErr != nil {
		return genErr
	}
	post.Slug = regenerated
	return s.posts.Update(ctx, post)
}

// Delete removes a post irrevocably on behalf of the acting user. Deleting an
// already-deleted id reports not found, never success.
func (s *PostService) Delete(ctx context.Context, actingUserID, id string) (*ports.DeleteResult, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(post, actingUserID); err != nil {
		return nil, err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("post_id", id).Msg("failed to delete post")
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Str("user_id", actingUserID).Msg("post deleted")
	return &ports.DeleteResult{ID: id, DeletedAt: time.Now().UTC()}, nil
}
