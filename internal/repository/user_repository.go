package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"skillswap/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID                 string
	Email              string
	FirstName          string
	LastName           string
	ProfileImageURL    string
	CustomProfileImage *string
	Location           string
	Availability       string
	IsPublic           bool
	IsAdmin            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UpsertUser carries the provider-verified identity fields written on login.
type UpsertUser struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// ProfileUpdate is a partial patch; nil fields are left untouched.
type ProfileUpdate struct {
	FirstName          *string
	LastName           *string
	Location           *string
	Availability       *string
	IsPublic           *bool
	CustomProfileImage *string
	ClearProfileImage  bool
}

type UserSearchFilter struct {
	Query        string
	Availability string
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	Upsert(ctx context.Context, u UpsertUser) (User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfileUpdate) (User, error)
	Search(ctx context.Context, filter UserSearchFilter) ([]User, error)
	ListPublic(ctx context.Context, limit, offset int) ([]User, error)
	CountPublic(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]User, error)
	SetPublic(ctx context.Context, id string, public bool) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, COALESCE(email, ''), COALESCE(first_name, ''), COALESCE(last_name, ''),
	COALESCE(profile_image_url, ''), custom_profile_image, COALESCE(location, ''),
	COALESCE(availability, 'weekends'), COALESCE(is_public, TRUE), COALESCE(is_admin, FALSE),
	created_at, updated_at`

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) Upsert(ctx context.Context, u UpsertUser) (User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		 RETURNING `+userColumns,
		u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id string, patch ProfileUpdate) (User, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Availability != nil {
		add("availability", *patch.Availability)
	}
	if patch.IsPublic != nil {
		add("is_public", *patch.IsPublic)
	}
	if patch.CustomProfileImage != nil {
		add("custom_profile_image", *patch.CustomProfileImage)
	} else if patch.ClearProfileImage {
		set = append(set, "custom_profile_image = NULL")
	}

	row := r.db.QueryRow(ctx,
		`UPDATE users SET `+strings.Join(set, ", ")+` WHERE id = $1 RETURNING `+userColumns,
		args...,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) Search(ctx context.Context, filter UserSearchFilter) ([]User, error) {
	query := `SELECT ` + userColumns + `
		 FROM users
		 WHERE is_public = TRUE
		   AND (first_name ILIKE $1 OR last_name ILIKE $1 OR location ILIKE $1)`
	args := []any{"%" + filter.Query + "%"}

	if filter.Availability != "" {
		args = append(args, filter.Availability)
		query += ` AND availability = $2`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) ListPublic(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE is_public = TRUE
		 ORDER BY created_at ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) CountPublic(ctx context.Context) (int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_public = TRUE`)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) SetPublic(ctx context.Context, id string, public bool) error {
	affected, err := r.db.Exec(ctx, `UPDATE users SET is_public = $1 WHERE id = $2`, public, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row database.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.CustomProfileImage, &u.Location,
		&u.Availability, &u.IsPublic, &u.IsAdmin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func collectUsers(rows database.Rows) ([]User, error) {
	out := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName,
			&u.ProfileImageURL, &u.CustomProfileImage, &u.Location,
			&u.Availability, &u.IsPublic, &u.IsAdmin,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
