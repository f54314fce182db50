package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillswap/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID        int64
	Name      string
	Category  *string
	CreatedAt time.Time
}

type SkillRepository interface {
	GetAll(ctx context.Context) ([]Skill, error)
	GetByNameFold(ctx context.Context, name string) (Skill, error)
	Create(ctx context.Context, name string, category *string) (Skill, error)
	ListNewestFirst(ctx context.Context) ([]Skill, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAll(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, created_at FROM skills ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) GetByNameFold(ctx context.Context, name string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, category, created_at FROM skills WHERE lower(name) = lower($1)`,
		name,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, name string, category *string) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (name, category) VALUES ($1, $2)
		 RETURNING id, name, category, created_at`,
		name, category,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ListNewestFirst(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, created_at FROM skills ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func collectSkills(rows database.Rows) ([]Skill, error) {
	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
