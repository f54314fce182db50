package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

type createRatingRequest struct {
	SwapRequestID int64   `json:"swapRequestId"`
	RatedID       string  `json:"ratedId"`
	Rating        int     `json:"rating"`
	Feedback      *string `json:"feedback"`
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/ratings", h.Create)
}

func (h *RatingHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users/:id/ratings", h.ListForUser)
}

func (h *RatingHandler) Create(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.CreateRating(c.Context(), callerID, usecase.CreateRatingInput{
		SwapRequestID: req.SwapRequestID,
		RatedID:       req.RatedID,
		Rating:        req.Rating,
		Feedback:      req.Feedback,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Rating must be between 1 and 5", nil, err)
		case errors.Is(err, usecase.ErrSwapRequestNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
		case errors.Is(err, usecase.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Rating created", dto.FromRating(created))
}

func (h *RatingHandler) ListForUser(c fiber.Ctx) error {
	result, err := h.uc.GetUserRatings(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserRatingsResponse{
		Ratings: dto.FromRatings(result.Ratings),
		Average: result.Average,
	})
}
