package dto

import (
	"time"

	"skillswap/internal/repository"
)

type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	ProfileImageURL    string    `json:"profileImageUrl"`
	CustomProfileImage *string   `json:"customProfileImage"`
	Location           string    `json:"location"`
	Availability       string    `json:"availability"`
	IsPublic           bool      `json:"isPublic"`
	IsAdmin            bool      `json:"isAdmin"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromUser(u repository.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ProfileImageURL:    u.ProfileImageURL,
		CustomProfileImage: u.CustomProfileImage,
		Location:           u.Location,
		Availability:       u.Availability,
		IsPublic:           u.IsPublic,
		IsAdmin:            u.IsAdmin,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func FromUsers(users []repository.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
