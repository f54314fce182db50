package dto

import (
	"time"

	"skillswap/internal/repository"
)

type AdminActionResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"targetId"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAdminActions(items []repository.AdminAction) []AdminActionResponse {
	out := make([]AdminActionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AdminActionResponse{
			ID:        a.ID,
			Action:    a.Action,
			TargetID:  a.TargetID,
			Reason:    a.Reason,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}
