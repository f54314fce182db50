package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillswap/internal/repository"
)

// Availability windows a user can declare.
var validAvailabilities = map[string]bool{
	"weekends": true,
	"evenings": true,
	"weekdays": true,
	"flexible": true,
}

const (
	defaultPage  = 1
	defaultLimit = 9
	maxLimit     = 50
)

// UserView is the denormalized shape served for profile and browse endpoints:
// the user row plus both skill lists and the aggregated rating.
type UserView struct {
	ID                 string                `json:"id"`
	Email              string                `json:"email"`
	FirstName          string                `json:"firstName"`
	LastName           string                `json:"lastName"`
	ProfileImageURL    string                `json:"profileImageUrl"`
	CustomProfileImage *string               `json:"customProfileImage"`
	Location           string                `json:"location"`
	Availability       string                `json:"availability"`
	IsPublic           bool                  `json:"isPublic"`
	IsAdmin            bool                  `json:"isAdmin"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	SkillsOffered      []repository.SkillRef `json:"skillsOffered"`
	SkillsWanted       []repository.SkillRef `json:"skillsWanted"`
	AverageRating      float64               `json:"averageRating"`
}

type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Location     *string
	Availability *string
	IsPublic     *bool
}

type BrowseUsersInput struct {
	Page         int
	Limit        int
	Search       string
	Availability string
}

type BrowseUsersResult struct {
	Users []UserView
	Total int
}

type UserUsecase interface {
	GetUserWithSkills(ctx context.Context, id string) (UserView, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (UserView, error)
	BrowseUsers(ctx context.Context, in BrowseUsersInput) (BrowseUsersResult, error)
}

type UserService struct {
	users      repository.UserRepository
	userSkills repository.UserSkillRepository
	ratings    repository.RatingRepository
	cache      Cache
}

func NewUserService(
	users repository.UserRepository,
	userSkills repository.UserSkillRepository,
	ratings repository.RatingRepository,
	cache Cache,
) *UserService {
	return &UserService{users: users, userSkills: userSkills, ratings: ratings, cache: cache}
}

func (s *UserService) GetUserWithSkills(ctx context.Context, id string) (UserView, error) {
	if strings.TrimSpace(id) == "" {
		return UserView{}, ErrInvalidInput
	}

	if s.cache != nil {
		var cached UserView
		if hit, _ := s.cache.GetJSON(ctx, profileCacheKey(id), &cached); hit {
			return cached, nil
		}
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, ErrUserNotFound
		}
		return UserView{}, err
	}

	view, err := s.assembleView(ctx, u)
	if err != nil {
		return UserView{}, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, profileCacheKey(id), view, 0)
	}
	return view, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (UserView, error) {
	if strings.TrimSpace(id) == "" {
		return UserView{}, ErrInvalidInput
	}
	if in.FirstName == nil && in.LastName == nil && in.Location == nil && in.Availability == nil && in.IsPublic == nil {
		return UserView{}, ErrInvalidInput
	}
	if in.Availability != nil && !validAvailabilities[*in.Availability] {
		return UserView{}, ErrInvalidInput
	}

	u, err := s.users.UpdateProfile(ctx, id, repository.ProfileUpdate{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Location:     in.Location,
		Availability: in.Availability,
		IsPublic:     in.IsPublic,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, ErrUserNotFound
		}
		return UserView{}, err
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(id))
	}
	return s.assembleView(ctx, u)
}

// BrowseUsers searches when a query is present, otherwise pages through the
// public listing. Private users never appear either way.
func (s *UserService) BrowseUsers(ctx context.Context, in BrowseUsersInput) (BrowseUsersResult, error) {
	if strings.TrimSpace(in.Search) != "" {
		found, err := s.users.Search(ctx, repository.UserSearchFilter{
			Query:        strings.TrimSpace(in.Search),
			Availability: in.Availability,
		})
		if err != nil {
			return BrowseUsersResult{}, err
		}

		views, err := s.assembleViews(ctx, found)
		if err != nil {
			return BrowseUsersResult{}, err
		}
		return BrowseUsersResult{Users: views, Total: len(views)}, nil
	}

	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit

	found, err := s.users.ListPublic(ctx, limit, offset)
	if err != nil {
		return BrowseUsersResult{}, err
	}
	total, err := s.users.CountPublic(ctx)
	if err != nil {
		return BrowseUsersResult{}, err
	}

	views, err := s.assembleViews(ctx, found)
	if err != nil {
		return BrowseUsersResult{}, err
	}
	return BrowseUsersResult{Users: views, Total: total}, nil
}

func (s *UserService) assembleView(ctx context.Context, u repository.User) (UserView, error) {
	offered, err := s.userSkills.ListOffered(ctx, u.ID)
	if err != nil {
		return UserView{}, err
	}
	wanted, err := s.userSkills.ListWanted(ctx, u.ID)
	if err != nil {
		return UserView{}, err
	}
	avg, err := s.ratings.AverageForUser(ctx, u.ID)
	if err != nil {
		return UserView{}, err
	}

	return UserView{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ProfileImageURL:    u.ProfileImageURL,
		CustomProfileImage: u.CustomProfileImage,
		Location:           u.Location,
		Availability:       u.Availability,
		IsPublic:           u.IsPublic,
		IsAdmin:            u.IsAdmin,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		SkillsOffered:      offered,
		SkillsWanted:       wanted,
		AverageRating:      avg,
	}, nil
}

func (s *UserService) assembleViews(ctx context.Context, users []repository.User) ([]UserView, error) {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		view, err := s.assembleView(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}
