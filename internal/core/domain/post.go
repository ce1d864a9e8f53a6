package domain

import (
	"errors"
	"time"
)

// MaxTitleLength is the upper bound for a post title.
const MaxTitleLength = 255

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidPost = errors.New("invalid post fields")
var ErrSlugTaken = errors.New("slug already in use")
var ErrSlugConflict = errors.New("slug conflict")

// Author is the minimal projection of the owning user, denormalized onto
// every post so reads never need a second lookup.
type Author struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Post is the core aggregate root. The service layer assigns ID, Slug and
// timestamps; the store is a pure persistence layer with no hidden lifecycle.
type Post struct {
	ID        string    `json:"id" bson:"_id"`
	Author    Author    `json:"author" bson:"author"`
	Title     string    `json:"title" bson:"title"`
	Slug      string    `json:"slug" bson:"slug"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Authorize reports whether actingUserID may mutate the post. Ownership is
// the only authorization rule: a post is writable by its author alone.
func Authorize(p *Post, actingUserID string) error {
	if p.Author.ID != actingUserID {
		return ErrForbidden
	}
	return nil
}

// ValidateTitle enforces the create-time title constraint.
func ValidateTitle(title string) error {
	if title == "" || len(title) > MaxTitleLength {
		return ErrInvalidPost
	}
	return nil
}

// ValidateBody enforces the create-time body constraint.
func ValidateBody(body string) error {
	if body == "" {
		return ErrInvalidPost
	}
	return nil
}
