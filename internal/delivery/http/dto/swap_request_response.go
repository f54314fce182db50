package dto

import (
	"time"

	"skillswap/internal/repository"
)

type SwapRequestResponse struct {
	ID             int64     `json:"id"`
	RequesterID    string    `json:"requesterId"`
	RecipientID    string    `json:"recipientId"`
	OfferedSkillID int64     `json:"offeredSkillId"`
	WantedSkillID  int64     `json:"wantedSkillId"`
	Status         string    `json:"status"`
	Message        *string   `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromSwapRequest(sr repository.SwapRequest) SwapRequestResponse {
	return SwapRequestResponse{
		ID:             sr.ID,
		RequesterID:    sr.RequesterID,
		RecipientID:    sr.RecipientID,
		OfferedSkillID: sr.OfferedSkillID,
		WantedSkillID:  sr.WantedSkillID,
		Status:         sr.Status,
		Message:        sr.Message,
		CreatedAt:      sr.CreatedAt,
		UpdatedAt:      sr.UpdatedAt,
	}
}

func FromSwapRequests(items []repository.SwapRequest) []SwapRequestResponse {
	out := make([]SwapRequestResponse, 0, len(items))
	for _, sr := range items {
		out = append(out, FromSwapRequest(sr))
	}
	return out
}

type SwapRequestDetailResponse struct {
	ID           int64               `json:"id"`
	Status       string              `json:"status"`
	Message      *string             `json:"message"`
	CreatedAt    time.Time           `json:"createdAt"`
	Requester    repository.PartyRef `json:"requester"`
	Recipient    repository.PartyRef `json:"recipient"`
	OfferedSkill repository.SkillRef `json:"offeredSkill"`
	WantedSkill  repository.SkillRef `json:"wantedSkill"`
}

func FromSwapRequestDetails(items []repository.SwapRequestDetail) []SwapRequestDetailResponse {
	out := make([]SwapRequestDetailResponse, 0, len(items))
	for _, d := range items {
		out = append(out, SwapRequestDetailResponse{
			ID:           d.ID,
			Status:       d.Status,
			Message:      d.Message,
			CreatedAt:    d.CreatedAt,
			Requester:    d.Requester,
			Recipient:    d.Recipient,
			OfferedSkill: d.OfferedSkill,
			WantedSkill:  d.WantedSkill,
		})
	}
	return out
}
