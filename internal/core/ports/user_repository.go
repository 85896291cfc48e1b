package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// UserRepository defines the persistence operations the auth core consumes.
// Lookups return domain.ErrUserNotFound when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
