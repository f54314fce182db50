package handler

import (
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PlatformMessageHandler struct {
	uc usecase.PlatformMessageUsecase
}

func NewPlatformMessageHandler(uc usecase.PlatformMessageUsecase) *PlatformMessageHandler {
	return &PlatformMessageHandler{uc: uc}
}

func (h *PlatformMessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/platform-messages", h.ListActive)
}

func (h *PlatformMessageHandler) ListActive(c fiber.Ctx) error {
	items, err := h.uc.ListActiveMessages(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
