package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("sub-1", "ada@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "sub-1" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess || svc.IsRefreshToken(claims) {
		t.Fatalf("expected access token, got type %s", claims.TokenType)
	}
}

func TestHMACService_RefreshTokenType(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateRefreshToken("sub-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)

	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken("sub-1", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	other := NewHMACService("not-access", "not-refresh", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("sub-1", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", 15*time.Minute, 24*time.Hour)
	if _, err := svc.ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
