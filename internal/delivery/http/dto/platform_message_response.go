package dto

import (
	"time"

	"skillswap/internal/repository"
)

type PlatformMessageResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPlatformMessage(m repository.PlatformMessage) PlatformMessageResponse {
	return PlatformMessageResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
