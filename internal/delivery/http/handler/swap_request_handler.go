package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SwapRequestHandler struct {
	uc usecase.SwapUsecase
}

type createSwapRequestRequest struct {
	RecipientID    string  `json:"recipientId"`
	OfferedSkillID int64   `json:"offeredSkillId"`
	WantedSkillID  int64   `json:"wantedSkillId"`
	Message        *string `json:"message"`
}

type updateSwapStatusRequest struct {
	Status string `json:"status"`
}

func NewSwapRequestHandler(uc usecase.SwapUsecase) *SwapRequestHandler {
	return &SwapRequestHandler{uc: uc}
}

func (h *SwapRequestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/swap-requests")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Put("/:id/status", h.UpdateStatus)
	grp.Delete("/:id", h.Delete)
}

func (h *SwapRequestHandler) Create(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createSwapRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.CreateSwapRequest(c.Context(), callerID, usecase.CreateSwapInput{
		RecipientID:    req.RecipientID,
		OfferedSkillID: req.OfferedSkillID,
		WantedSkillID:  req.WantedSkillID,
		Message:        req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		case errors.Is(err, usecase.ErrSelfSwap):
			return middleware.NewAppError(fiber.StatusBadRequest, "Cannot send a swap request to yourself", nil, err)
		case errors.Is(err, usecase.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Recipient not found", nil, err)
		case errors.Is(err, usecase.ErrSkillNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Swap request created", dto.FromSwapRequest(created))
}

func (h *SwapRequestHandler) List(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListSwapRequests(c.Context(), callerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSwapRequestDetails(items))
}

func (h *SwapRequestHandler) UpdateStatus(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid swap request id", nil, err)
	}

	var req updateSwapStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), callerID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
		case errors.Is(err, usecase.ErrSwapRequestNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
		case errors.Is(err, usecase.ErrForbidden):
			return middleware.NewAppError(fiber.StatusForbidden, "Access denied", nil, err)
		case errors.Is(err, usecase.ErrIllegalTransition):
			return middleware.NewAppError(fiber.StatusConflict, "Illegal status transition", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Swap request updated", dto.FromSwapRequest(updated))
}

func (h *SwapRequestHandler) Delete(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid swap request id", nil, err)
	}

	if err := h.uc.DeleteSwapRequest(c.Context(), callerID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid swap request id", nil, err)
		case errors.Is(err, usecase.ErrSwapRequestNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
		case errors.Is(err, usecase.ErrForbidden):
			return middleware.NewAppError(fiber.StatusForbidden, "Access denied", nil, err)
		case errors.Is(err, usecase.ErrSwapNotDeletable):
			return middleware.NewAppError(fiber.StatusConflict, "Only pending swap requests can be deleted", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Swap request deleted", nil)
}
