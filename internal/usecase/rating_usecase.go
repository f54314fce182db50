package usecase

import (
	"context"
	"errors"

	"skillswap/internal/repository"
)

type CreateRatingInput struct {
	SwapRequestID int64
	RatedID       string
	Rating        int
	Feedback      *string
}

type UserRatingsResult struct {
	Ratings []repository.Rating
	Average float64
}

type RatingUsecase interface {
	CreateRating(ctx context.Context, raterID string, in CreateRatingInput) (repository.Rating, error)
	GetUserRatings(ctx context.Context, userID string) (UserRatingsResult, error)
}

type RatingService struct {
	ratings repository.RatingRepository
	swaps   repository.SwapRequestRepository
	cache   Cache
}

func NewRatingService(ratings repository.RatingRepository, swaps repository.SwapRequestRepository, cache Cache) *RatingService {
	return &RatingService{ratings: ratings, swaps: swaps, cache: cache}
}

func (s *RatingService) CreateRating(ctx context.Context, raterID string, in CreateRatingInput) (repository.Rating, error) {
	if raterID == "" || in.RatedID == "" || in.SwapRequestID <= 0 {
		return repository.Rating{}, ErrInvalidInput
	}
	if in.Rating < 1 || in.Rating > 5 {
		return repository.Rating{}, ErrInvalidInput
	}
	if raterID == in.RatedID {
		return repository.Rating{}, ErrInvalidInput
	}

	if _, err := s.swaps.GetByID(ctx, in.SwapRequestID); err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return repository.Rating{}, ErrSwapRequestNotFound
		}
		return repository.Rating{}, err
	}

	created, err := s.ratings.Create(ctx, repository.CreateRating{
		SwapRequestID: in.SwapRequestID,
		RaterID:       raterID,
		RatedID:       in.RatedID,
		Rating:        in.Rating,
		Feedback:      in.Feedback,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Rating{}, ErrUserNotFound
		}
		return repository.Rating{}, err
	}

	// The rated user's cached profile embeds the average.
	if s.cache != nil {
		_ = s.cache.Delete(ctx, profileCacheKey(in.RatedID))
	}
	return created, nil
}

func (s *RatingService) GetUserRatings(ctx context.Context, userID string) (UserRatingsResult, error) {
	if userID == "" {
		return UserRatingsResult{}, ErrInvalidInput
	}

	list, err := s.ratings.ListForUser(ctx, userID)
	if err != nil {
		return UserRatingsResult{}, err
	}
	avg, err := s.ratings.AverageForUser(ctx, userID)
	if err != nil {
		return UserRatingsResult{}, err
	}
	return UserRatingsResult{Ratings: list, Average: avg}, nil
}
