package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gemstack/inventory-system/internal/core/credential"
	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
	"github.com/gemstack/inventory-system/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
}

func NewAuthService(users ports.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user account, enforcing username and email uniqueness,
// and issues a token so the client is logged in immediately.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" || !input.Role.Valid() {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := credential.Hash(input.Password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tkn, err := s.tokens.Issue(created.Username, created.Role)
	if err != nil {
		return "", nil, err
	}
	return tkn, created, nil
}

// Login verifies the password for username and issues a token. An unknown
// username and a wrong password both fail with ErrInvalidCredentials so
// responses do not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !credential.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return tkn, user, nil
}
