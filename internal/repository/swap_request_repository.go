package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillswap/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrSwapRequestNotFound = errors.New("swap request not found")

type SwapRequest struct {
	ID             int64
	RequesterID    string
	RecipientID    string
	OfferedSkillID int64
	WantedSkillID  int64
	Status         string
	Message        *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PartyRef is the reduced identity shape shown on a swap request card.
type PartyRef struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// SwapRequestDetail joins requester and recipient identities independently,
// so the card shows the right counterpart whichever side is viewing.
type SwapRequestDetail struct {
	ID           int64
	Status       string
	Message      *string
	CreatedAt    time.Time
	Requester    PartyRef
	Recipient    PartyRef
	OfferedSkill SkillRef
	WantedSkill  SkillRef
}

type CreateSwapRequest struct {
	RequesterID    string
	RecipientID    string
	OfferedSkillID int64
	WantedSkillID  int64
	Message        *string
}

type SwapRequestRepository interface {
	Create(ctx context.Context, in CreateSwapRequest) (SwapRequest, error)
	GetByID(ctx context.Context, id int64) (SwapRequest, error)
	ListForUser(ctx context.Context, userID string) ([]SwapRequestDetail, error)
	UpdateStatus(ctx context.Context, id int64, status string) (SwapRequest, error)
	DeleteByRequester(ctx context.Context, id int64, requesterID string) (bool, error)
	ListAll(ctx context.Context) ([]SwapRequest, error)
}

type PostgresSwapRequestRepository struct {
	db database.DB
}

func NewPostgresSwapRequestRepository(db database.DB) *PostgresSwapRequestRepository {
	return &PostgresSwapRequestRepository{db: db}
}

const swapRequestColumns = `id, requester_id, recipient_id, offered_skill_id, wanted_skill_id,
	status, message, created_at, updated_at`

func (r *PostgresSwapRequestRepository) Create(ctx context.Context, in CreateSwapRequest) (SwapRequest, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO swap_requests (requester_id, recipient_id, offered_skill_id, wanted_skill_id, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+swapRequestColumns,
		in.RequesterID, in.RecipientID, in.OfferedSkillID, in.WantedSkillID, in.Message,
	)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) GetByID(ctx context.Context, id int64) (SwapRequest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+swapRequestColumns+` FROM swap_requests WHERE id = $1`, id,
	)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) ListForUser(ctx context.Context, userID string) ([]SwapRequestDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sr.id, sr.status, sr.message, sr.created_at,
			req.id, COALESCE(req.first_name, ''), COALESCE(req.last_name, ''), COALESCE(req.profile_image_url, ''),
			rec.id, COALESCE(rec.first_name, ''), COALESCE(rec.last_name, ''), COALESCE(rec.profile_image_url, ''),
			os.id, os.name, COALESCE(os.category, ''),
			ws.id, ws.name, COALESCE(ws.category, '')
		 FROM swap_requests sr
		 JOIN users req ON req.id = sr.requester_id
		 JOIN users rec ON rec.id = sr.recipient_id
		 JOIN skills os ON os.id = sr.offered_skill_id
		 JOIN skills ws ON ws.id = sr.wanted_skill_id
		 WHERE sr.requester_id = $1 OR sr.recipient_id = $1
		 ORDER BY sr.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SwapRequestDetail, 0)
	for rows.Next() {
		var d SwapRequestDetail
		if err := rows.Scan(
			&d.ID, &d.Status, &d.Message, &d.CreatedAt,
			&d.Requester.ID, &d.Requester.FirstName, &d.Requester.LastName, &d.Requester.ProfileImageURL,
			&d.Recipient.ID, &d.Recipient.FirstName, &d.Recipient.LastName, &d.Recipient.ProfileImageURL,
			&d.OfferedSkill.ID, &d.OfferedSkill.Name, &d.OfferedSkill.Category,
			&d.WantedSkill.ID, &d.WantedSkill.Name, &d.WantedSkill.Category,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSwapRequestRepository) UpdateStatus(ctx context.Context, id int64, status string) (SwapRequest, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE swap_requests SET status = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+swapRequestColumns,
		status, id,
	)
	return scanSwapRequest(row)
}

// DeleteByRequester removes the row only when the caller is the requester and
// the request is still pending. Reports whether a row was deleted.
func (r *PostgresSwapRequestRepository) DeleteByRequester(ctx context.Context, id int64, requesterID string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM swap_requests
		 WHERE id = $1 AND requester_id = $2 AND status = 'pending'`,
		id, requesterID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresSwapRequestRepository) ListAll(ctx context.Context) ([]SwapRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+swapRequestColumns+` FROM swap_requests ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SwapRequest, 0)
	for rows.Next() {
		var sr SwapRequest
		if err := rows.Scan(
			&sr.ID, &sr.RequesterID, &sr.RecipientID, &sr.OfferedSkillID, &sr.WantedSkillID,
			&sr.Status, &sr.Message, &sr.CreatedAt, &sr.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSwapRequest(row database.Row) (SwapRequest, error) {
	var sr SwapRequest
	err := row.Scan(
		&sr.ID, &sr.RequesterID, &sr.RecipientID, &sr.OfferedSkillID, &sr.WantedSkillID,
		&sr.Status, &sr.Message, &sr.CreatedAt, &sr.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return SwapRequest{}, ErrSwapRequestNotFound
		}
		return SwapRequest{}, err
	}
	return sr, nil
}
