package handler

import (
	"github.com/inkpress/blog-api/internal/core/domain"
	"github.com/inkpress/blog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createPostRequest, actingUserID string) ports.CreatePostInput {
	return ports.CreatePostInput{
		ActingUserID: actingUserID,
		Title:        req.Title,
		Body:         req.Body,
	}
}

func toUpdateInput(req updatePostRequest, actingUserID, id string) ports.UpdatePostInput {
	return ports.UpdatePostInput{
		ActingUserID: actingUserID,
		ID:           id,
		Title:        req.Title,
		Body:         req.Body,
		Slug:         req.Slug,
	}
}

// --- Service result → HTTP response ---

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID: p.ID,
		Author: authorResponse{
			ID:   p.Author.ID,
			Name: p.Author.Name,
		},
		Title:     p.Title,
		Slug:      p.Slug,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListPostsResult) listPostsResponse {
	items := make([]postSummaryResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = postSummaryResponse{
			ID: p.ID,
			Author: authorResponse{
				ID:   p.Author.ID,
				Name: p.Author.Name,
			},
			Title:     p.Title,
			Slug:      p.Slug,
			CreatedAt: p.CreatedAt.UTC(),
			UpdatedAt: p.UpdatedAt.UTC(),
		}
	}
	return listPostsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
