package repository

import (
	"context"

	"skillswap/internal/database"
)

// SkillRef is the reduced skill shape attached to user views.
type SkillRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type UserSkillRepository interface {
	ListOffered(ctx context.Context, userID string) ([]SkillRef, error)
	ListWanted(ctx context.Context, userID string) ([]SkillRef, error)
	AddOffered(ctx context.Context, userID string, skillID int64) error
	AddWanted(ctx context.Context, userID string, skillID int64) error
	RemoveOffered(ctx context.Context, userID string, skillID int64) error
	RemoveWanted(ctx context.Context, userID string, skillID int64) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) ListOffered(ctx context.Context, userID string) ([]SkillRef, error) {
	return r.listLinks(ctx, "user_skills_offered", userID)
}

func (r *PostgresUserSkillRepository) ListWanted(ctx context.Context, userID string) ([]SkillRef, error) {
	return r.listLinks(ctx, "user_skills_wanted", userID)
}

// Duplicate adds are no-ops; the link set has a unique constraint.
func (r *PostgresUserSkillRepository) AddOffered(ctx context.Context, userID string, skillID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills_offered (user_id, skill_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		userID, skillID,
	)
	return err
}

func (r *PostgresUserSkillRepository) AddWanted(ctx context.Context, userID string, skillID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills_wanted (user_id, skill_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, skill_id) DO NOTHING`,
		userID, skillID,
	)
	return err
}

// Removing an absent link is a silent no-op.
func (r *PostgresUserSkillRepository) RemoveOffered(ctx context.Context, userID string, skillID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_skills_offered WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	return err
}

func (r *PostgresUserSkillRepository) RemoveWanted(ctx context.Context, userID string, skillID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM user_skills_wanted WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	return err
}

func (r *PostgresUserSkillRepository) listLinks(ctx context.Context, table, userID string) ([]SkillRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, COALESCE(s.category, '')
		 FROM `+table+` us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillRef, 0)
	for rows.Next() {
		var ref SkillRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Category); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
