package repository

import (
	"context"
	"time"

	"skillswap/internal/database"
)

// Moderation audit tags.
const (
	ActionBanUser      = "ban_user"
	ActionUnbanUser    = "unban_user"
	ActionApproveSkill = "approve_skill"
	ActionRejectSkill  = "reject_skill"
	ActionSendMessage  = "send_message"
)

type AdminAction struct {
	ID        int64
	AdminID   string
	Action    string
	TargetID  string
	Reason    *string
	CreatedAt time.Time
}

type AdminActionRepository interface {
	Log(ctx context.Context, adminID, action, targetID string, reason *string) error
	ListForAdmin(ctx context.Context, adminID string) ([]AdminAction, error)
}

type PostgresAdminActionRepository struct {
	db database.DB
}

func NewPostgresAdminActionRepository(db database.DB) *PostgresAdminActionRepository {
	return &PostgresAdminActionRepository{db: db}
}

// Log appends one audit row; the log is append-only.
func (r *PostgresAdminActionRepository) Log(ctx context.Context, adminID, action, targetID string, reason *string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO admin_actions (admin_id, action, target_id, reason) VALUES ($1, $2, $3, $4)`,
		adminID, action, targetID, reason,
	)
	return err
}

func (r *PostgresAdminActionRepository) ListForAdmin(ctx context.Context, adminID string) ([]AdminAction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, admin_id, action, COALESCE(target_id, ''), reason, created_at
		 FROM admin_actions
		 WHERE admin_id = $1
		 ORDER BY created_at DESC`,
		adminID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AdminAction, 0)
	for rows.Next() {
		var a AdminAction
		if err := rows.Scan(&a.ID, &a.AdminID, &a.Action, &a.TargetID, &a.Reason, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
