package ports

import (
	"context"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. The post service
// only ever reads users (to denormalize the author projection); writes come
// from registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
