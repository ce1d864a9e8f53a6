package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createPostRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body"  validate:"required"`
}

// updatePostRequest carries a partial update. Pointer fields distinguish
// "absent, leave untouched" from "present, must satisfy its constraint".
type updatePostRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255"`
	Body  *string `json:"body"  validate:"omitempty,min=1"`
	Slug  *string `json:"slug"  validate:"omitempty,min=1,max=255"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type authorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type postResponse struct {
	ID        string         `json:"id"`
	Author    authorResponse `json:"author"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// postSummaryResponse is the lightweight item used in list responses.
// It intentionally omits the body to keep payloads small.
type postSummaryResponse struct {
	ID        string         `json:"id"`
	Author    authorResponse `json:"author"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPostsResponse struct {
	Data       []postSummaryResponse `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

type deletePostResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
