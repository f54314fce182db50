package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/pkg/jwt"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_ProvisionSession_EmptyID(t *testing.T) {
	uc := NewAuthService(&mockUserRepo{}, newTestJWT(), nil)
	_, _, err := uc.ProvisionSession(context.Background(), ProvisionInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_ProvisionSession_UpsertsAndMintsTokens(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestJWT()
	uc := NewAuthService(users, svc, nil)

	u, tokens, err := uc.ProvisionSession(context.Background(), ProvisionInput{
		ID:        "sub-123",
		Email:     "ada@example.com",
		FirstName: "Ada",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != "sub-123" || u.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens minted")
	}

	claims, err := svc.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token should validate: %v", err)
	}
	if claims.UserID != "sub-123" || svc.IsRefreshToken(claims) {
		t.Fatalf("unexpected access claims: %+v", claims)
	}

	claims, err = svc.ValidateToken(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token should validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token type")
	}
}

func TestAuthService_ProvisionSession_RepeatedLoginRefreshesIdentity(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewAuthService(users, newTestJWT(), nil)

	if _, _, err := uc.ProvisionSession(context.Background(), ProvisionInput{ID: "sub-1", Email: "old@example.com"}); err != nil {
		t.Fatalf("first login: %v", err)
	}
	u, _, err := uc.ProvisionSession(context.Background(), ProvisionInput{ID: "sub-1", Email: "new@example.com"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if u.Email != "new@example.com" {
		t.Fatalf("expected refreshed email, got %s", u.Email)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected a single user row, got %d", len(users.users))
	}
}
