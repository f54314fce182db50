package dto

import (
	"time"

	"skillswap/internal/repository"
)

type RatingResponse struct {
	ID            int64     `json:"id"`
	SwapRequestID int64     `json:"swapRequestId"`
	RaterID       string    `json:"raterId"`
	RatedID       string    `json:"ratedId"`
	Rating        int       `json:"rating"`
	Feedback      *string   `json:"feedback"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromRating(r repository.Rating) RatingResponse {
	return RatingResponse{
		ID:            r.ID,
		SwapRequestID: r.SwapRequestID,
		RaterID:       r.RaterID,
		RatedID:       r.RatedID,
		Rating:        r.Rating,
		Feedback:      r.Feedback,
		CreatedAt:     r.CreatedAt,
	}
}

func FromRatings(items []repository.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRating(r))
	}
	return out
}

type UserRatingsResponse struct {
	Ratings []RatingResponse `json:"ratings"`
	Average float64          `json:"average"`
}
