package usecase

import (
	"context"
	"strings"

	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
)

// ProvisionInput is the provider-verified profile handed over by the external
// identity layer on login. Authentication itself happens upstream; this layer
// only mirrors the identity into the local store.
type ProvisionInput struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type SessionTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	ProvisionSession(ctx context.Context, in ProvisionInput) (repository.User, SessionTokens, error)
}

type AuthService struct {
	users repository.UserRepository
	jwt   jwt.Service
	cache Cache
}

func NewAuthService(users repository.UserRepository, jwtSvc jwt.Service, cache Cache) *AuthService {
	return &AuthService{users: users, jwt: jwtSvc, cache: cache}
}

// ProvisionSession upserts the user keyed by provider subject and mints a
// token pair. Repeated logins refresh the stored identity fields.
func (s *AuthService) ProvisionSession(ctx context.Context, in ProvisionInput) (repository.User, SessionTokens, error) {
	if strings.TrimSpace(in.ID) == "" {
		return repository.User{}, SessionTokens{}, ErrInvalidInput
	}

	u, err := s.users.Upsert(ctx, repository.UpsertUser{
		ID:              in.ID,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
	})
	if err != nil {
		return repository.User{}, SessionTokens{}, err
	}

	access, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return repository.User{}, SessionTokens{}, ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return repository.User{}, SessionTokens{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(u.ID))
	}
	return u, SessionTokens{AccessToken: access, RefreshToken: refresh}, nil
}
