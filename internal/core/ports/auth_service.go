package ports

import (
	"context"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

// AuthService defines the credential-handling use cases. Both operations
// return a freshly issued bearer token alongside the user record.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// IdentityResolver maps a raw bearer token to the persisted user it was
// issued for. Each call performs the full verify-then-lookup chain; nothing
// is cached between requests.
type IdentityResolver interface {
	Resolve(ctx context.Context, rawToken string) (*domain.User, error)
}
