package handler

import (
	"errors"
	"io"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfilePhotoHandler struct {
	uc usecase.ProfilePhotoUsecase
}

type profilePhotoResponse struct {
	ProfileImageURL string           `json:"profileImageUrl"`
	User            dto.UserResponse `json:"user"`
}

func NewProfilePhotoHandler(uc usecase.ProfilePhotoUsecase) *ProfilePhotoHandler {
	return &ProfilePhotoHandler{uc: uc}
}

func (h *ProfilePhotoHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/profile-photo", h.UploadPhoto)
	r.Delete("/profile-photo", h.DeletePhoto)
}

func (h *ProfilePhotoHandler) UploadPhoto(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fileHeader, err := c.FormFile("profilePhoto")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}

	photoURL, u, err := h.uc.UploadPhoto(c.Context(), callerID, usecase.UploadPhotoInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Open: func() (io.ReadCloser, error) {
			return fileHeader.Open()
		},
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Only image files up to 5MB are allowed", nil, err)
		}
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Profile photo updated successfully", profilePhotoResponse{
		ProfileImageURL: photoURL,
		User:            dto.FromUser(u),
	})
}

func (h *ProfilePhotoHandler) DeletePhoto(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	u, err := h.uc.DeletePhoto(c.Context(), callerID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoCustomProfilePhoto) {
			return middleware.NewAppError(fiber.StatusNotFound, "No custom profile photo found", nil, err)
		}
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Profile photo deleted successfully", dto.FromUser(u))
}
