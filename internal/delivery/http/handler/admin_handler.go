package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

type banUserRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

type unbanUserRequest struct {
	UserID string `json:"userId"`
}

type skillModerationRequest struct {
	SkillID int64  `json:"skillId"`
	Reason  string `json:"reason"`
}

type createPlatformMessageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Post("/ban-user", h.BanUser)
	r.Post("/unban-user", h.UnbanUser)
	r.Get("/pending-skills", h.ListPendingSkills)
	r.Post("/approve-skill", h.ApproveSkill)
	r.Post("/reject-skill", h.RejectSkill)
	r.Get("/swap-requests", h.ListSwapRequests)
	r.Get("/audit-log", h.ListAuditLog)
	r.Post("/platform-message", h.CreatePlatformMessage)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.uc.ListAllUsers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}

func (h *AdminHandler) BanUser(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req banUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.BanUser(c.Context(), adminID, req.UserID, req.Reason); err != nil {
		return h.moderationError(err)
	}
	return response.Success(c, fiber.StatusOK, "User banned", nil)
}

func (h *AdminHandler) UnbanUser(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req unbanUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.UnbanUser(c.Context(), adminID, req.UserID); err != nil {
		return h.moderationError(err)
	}
	return response.Success(c, fiber.StatusOK, "User unbanned", nil)
}

func (h *AdminHandler) ListPendingSkills(c fiber.Ctx) error {
	items, err := h.uc.ListPendingSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *AdminHandler) ApproveSkill(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req skillModerationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.ApproveSkill(c.Context(), adminID, req.SkillID); err != nil {
		return h.moderationError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill approved", nil)
}

func (h *AdminHandler) RejectSkill(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req skillModerationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.RejectSkill(c.Context(), adminID, req.SkillID, req.Reason); err != nil {
		return h.moderationError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill rejected", nil)
}

func (h *AdminHandler) ListSwapRequests(c fiber.Ctx) error {
	items, err := h.uc.ListAllSwapRequests(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSwapRequests(items))
}

func (h *AdminHandler) ListAuditLog(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListAuditLog(c.Context(), adminID)
	if err != nil {
		return h.moderationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAdminActions(items))
}

func (h *AdminHandler) CreatePlatformMessage(c fiber.Ctx) error {
	adminID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createPlatformMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.CreatePlatformMessage(c.Context(), adminID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Title and content are required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Platform message created", dto.FromPlatformMessage(created))
}

func (h *AdminHandler) moderationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSkillInUse):
		return middleware.NewAppError(fiber.StatusConflict, "Skill is in use by swap requests", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
}
