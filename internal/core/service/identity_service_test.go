package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/token"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        username + "-id",
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func TestIdentityService_Resolve_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := token.NewService("secret", time.Hour)
	seedUser(t, repo, "alice", domain.RoleManager)
	svc := NewIdentityService(tokens, repo)

	raw, err := tokens.Issue("alice", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	user, err := svc.Resolve(context.Background(), raw)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleManager {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestIdentityService_Resolve_InvalidToken(t *testing.T) {
	svc := NewIdentityService(token.NewService("secret", time.Hour), newStubUserRepo())

	if _, err := svc.Resolve(context.Background(), "garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIdentityService_Resolve_MissingSubject(t *testing.T) {
	repo := newStubUserRepo()
	tokens := token.NewService("secret", time.Hour)
	svc := NewIdentityService(tokens, repo)

	// A validly signed token with no sub claim must be rejected.
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), raw); !errors.Is(err, domain.ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestIdentityService_Resolve_UnknownUser(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	svc := NewIdentityService(tokens, newStubUserRepo())

	raw, err := tokens.Issue("deleted-user", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), raw); !errors.Is(err, domain.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestIdentityService_Resolve_ConcurrentNoCrossResolution(t *testing.T) {
	repo := newStubUserRepo()
	tokens := token.NewService("secret", time.Hour)
	seedUser(t, repo, "alice", domain.RoleManager)
	seedUser(t, repo, "bob", domain.RoleSalesperson)
	svc := NewIdentityService(tokens, repo)

	aliceToken, err := tokens.Issue("alice", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue alice: %v", err)
	}
	bobToken, err := tokens.Issue("bob", domain.RoleSalesperson)
	if err != nil {
		t.Fatalf("issue bob: %v", err)
	}

	const rounds = 50
	var wg sync.WaitGroup
	errs := make(chan error, rounds*2)

	resolveExpect := func(raw, want string) {
		defer wg.Done()
		user, err := svc.Resolve(context.Background(), raw)
		if err != nil {
			errs <- err
			return
		}
		if user.Username != want {
			errs <- errors.New("resolved " + user.Username + ", want " + want)
		}
	}

	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go resolveExpect(aliceToken, "alice")
		go resolveExpect(bobToken, "bob")
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent resolution: %v", err)
	}
}
