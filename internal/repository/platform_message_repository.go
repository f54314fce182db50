package repository

import (
	"context"
	"time"

	"skillswap/internal/database"
)

type PlatformMessage struct {
	ID        int64
	Title     string
	Content   string
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
}

type CreatePlatformMessage struct {
	Title     string
	Content   string
	CreatedBy string
}

type PlatformMessageRepository interface {
	Create(ctx context.Context, in CreatePlatformMessage) (PlatformMessage, error)
	ListActive(ctx context.Context) ([]PlatformMessage, error)
}

type PostgresPlatformMessageRepository struct {
	db database.DB
}

func NewPostgresPlatformMessageRepository(db database.DB) *PostgresPlatformMessageRepository {
	return &PostgresPlatformMessageRepository{db: db}
}

func (r *PostgresPlatformMessageRepository) Create(ctx context.Context, in CreatePlatformMessage) (PlatformMessage, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO platform_messages (title, content, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, content, is_active, created_by, created_at`,
		in.Title, in.Content, in.CreatedBy,
	)

	var m PlatformMessage
	if err := row.Scan(&m.ID, &m.Title, &m.Content, &m.IsActive, &m.CreatedBy, &m.CreatedAt); err != nil {
		return PlatformMessage{}, err
	}
	return m, nil
}

func (r *PostgresPlatformMessageRepository) ListActive(ctx context.Context) ([]PlatformMessage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, is_active, created_by, created_at
		 FROM platform_messages
		 WHERE is_active = TRUE
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PlatformMessage, 0)
	for rows.Next() {
		var m PlatformMessage
		if err := rows.Scan(&m.ID, &m.Title, &m.Content, &m.IsActive, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
