package service

import (
	"context"
	"errors"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
	"github.com/gemstack/inventory-system/internal/core/token"
)

// IdentityService resolves a bearer token to the persisted user it was
// issued for. It holds no per-request state: every call verifies the token
// and reads the store, so concurrent resolutions are fully independent.
type IdentityService struct {
	tokens *token.Service
	users  ports.UserRepository
}

func NewIdentityService(tokens *token.Service, users ports.UserRepository) *IdentityService {
	return &IdentityService{tokens: tokens, users: users}
}

// Resolve verifies rawToken, extracts its subject, and returns the matching
// user record including the role persisted in the store. A token whose
// subject no longer exists fails with ErrUnknownUser.
func (s *IdentityService) Resolve(ctx context.Context, rawToken string) (*domain.User, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, domain.ErrMissingSubject
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, err
	}
	return user, nil
}
