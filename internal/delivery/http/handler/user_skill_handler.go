package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillID int64 `json:"skillId"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/skills-offered", h.addTo(usecase.ListOffered))
	r.Delete("/skills-offered/:skillId", h.removeFrom(usecase.ListOffered))
	r.Post("/skills-wanted", h.addTo(usecase.ListWanted))
	r.Delete("/skills-wanted/:skillId", h.removeFrom(usecase.ListWanted))
}

func (h *UserSkillHandler) addTo(kind usecase.ListKind) fiber.Handler {
	return func(c fiber.Ctx) error {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		var req addUserSkillRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}

		if err := h.uc.AddSkillToList(c.Context(), callerID, req.SkillID, kind); err != nil {
			if errors.Is(err, usecase.ErrInvalidInput) {
				return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
			}
			if errors.Is(err, usecase.ErrSkillNotFound) {
				return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
			}
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		return response.Success(c, fiber.StatusOK, "Skill added", nil)
	}
}

func (h *UserSkillHandler) removeFrom(kind usecase.ListKind) fiber.Handler {
	return func(c fiber.Ctx) error {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		skillID, err := strconv.ParseInt(c.Params("skillId"), 10, 64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
		}

		if err := h.uc.RemoveSkillFromList(c.Context(), callerID, skillID, kind); err != nil {
			if errors.Is(err, usecase.ErrInvalidInput) {
				return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
			}
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		return response.Success(c, fiber.StatusOK, "Skill removed", nil)
	}
}
