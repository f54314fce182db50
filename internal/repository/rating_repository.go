package repository

import (
	"context"
	"time"

	"skillswap/internal/database"
)

type Rating struct {
	ID            int64
	SwapRequestID int64
	RaterID       string
	RatedID       string
	Rating        int
	Feedback      *string
	CreatedAt     time.Time
}

type CreateRating struct {
	SwapRequestID int64
	RaterID       string
	RatedID       string
	Rating        int
	Feedback      *string
}

type RatingRepository interface {
	Create(ctx context.Context, in CreateRating) (Rating, error)
	ListForUser(ctx context.Context, userID string) ([]Rating, error)
	AverageForUser(ctx context.Context, userID string) (float64, error)
}

type PostgresRatingRepository struct {
	db database.DB
}

func NewPostgresRatingRepository(db database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) Create(ctx context.Context, in CreateRating) (Rating, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO ratings (swap_request_id, rater_id, rated_id, rating, feedback)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, swap_request_id, rater_id, rated_id, rating, feedback, created_at`,
		in.SwapRequestID, in.RaterID, in.RatedID, in.Rating, in.Feedback,
	)

	var rt Rating
	if err := row.Scan(&rt.ID, &rt.SwapRequestID, &rt.RaterID, &rt.RatedID, &rt.Rating, &rt.Feedback, &rt.CreatedAt); err != nil {
		return Rating{}, err
	}
	return rt, nil
}

func (r *PostgresRatingRepository) ListForUser(ctx context.Context, userID string) ([]Rating, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, swap_request_id, rater_id, rated_id, rating, feedback, created_at
		 FROM ratings
		 WHERE rated_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Rating, 0)
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.SwapRequestID, &rt.RaterID, &rt.RatedID, &rt.Rating, &rt.Feedback, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AverageForUser rounds to one decimal and reports 0 when the user has no ratings.
func (r *PostgresRatingRepository) AverageForUser(ctx context.Context, userID string) (float64, error) {
	var avg float64
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0) FROM ratings WHERE rated_id = $1`,
		userID,
	)
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}
