package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/repository"
)

func TestRatingService_CreateRating_OutOfBounds(t *testing.T) {
	uc := NewRatingService(&mockRatingRepo{}, &mockSwapRepo{}, nil)
	for _, score := range []int{0, -1, 6, 100} {
		_, err := uc.CreateRating(context.Background(), "u1", CreateRatingInput{
			SwapRequestID: 1,
			RatedID:       "u2",
			Rating:        score,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("score %d: expected ErrInvalidInput, got %v", score, err)
		}
	}
}

func TestRatingService_CreateRating_SelfRating(t *testing.T) {
	uc := NewRatingService(&mockRatingRepo{}, &mockSwapRepo{}, nil)
	_, err := uc.CreateRating(context.Background(), "u1", CreateRatingInput{
		SwapRequestID: 1,
		RatedID:       "u1",
		Rating:        5,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRatingService_CreateRating_SwapMissing(t *testing.T) {
	uc := NewRatingService(&mockRatingRepo{}, &mockSwapRepo{store: map[int64]repository.SwapRequest{}}, nil)
	_, err := uc.CreateRating(context.Background(), "u1", CreateRatingInput{
		SwapRequestID: 9,
		RatedID:       "u2",
		Rating:        4,
	})
	if !errors.Is(err, ErrSwapRequestNotFound) {
		t.Fatalf("expected ErrSwapRequestNotFound, got %v", err)
	}
}

func TestRatingService_CreateRating_Success(t *testing.T) {
	ratings := &mockRatingRepo{}
	swaps := &mockSwapRepo{store: map[int64]repository.SwapRequest{
		1: {ID: 1, RequesterID: "u1", RecipientID: "u2", Status: StatusCompleted},
	}}
	cache := &mockCache{}
	uc := NewRatingService(ratings, swaps, cache)

	created, err := uc.CreateRating(context.Background(), "u1", CreateRatingInput{
		SwapRequestID: 1,
		RatedID:       "u2",
		Rating:        5,
		Feedback:      strptr("patient and helpful"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Rating != 5 || created.RatedID != "u2" {
		t.Fatalf("unexpected rating: %+v", created)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "users:profile:u2" {
		t.Fatalf("expected rated profile invalidation, got %v", cache.deleted)
	}
}

func TestRatingService_GetUserRatings(t *testing.T) {
	ratings := &mockRatingRepo{
		list: []repository.Rating{
			{ID: 1, RatedID: "u2", Rating: 5},
			{ID: 2, RatedID: "u2", Rating: 4},
		},
		averages: map[string]float64{"u2": 4.5},
	}
	uc := NewRatingService(ratings, &mockSwapRepo{}, nil)

	res, err := uc.GetUserRatings(context.Background(), "u2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(res.Ratings))
	}
	if res.Average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", res.Average)
	}
}

func TestRatingService_GetUserRatings_NoRatings(t *testing.T) {
	uc := NewRatingService(&mockRatingRepo{}, &mockSwapRepo{}, nil)
	res, err := uc.GetUserRatings(context.Background(), "u9")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Average != 0 {
		t.Fatalf("expected average 0 with no ratings, got %v", res.Average)
	}
}
