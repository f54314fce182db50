package handler

import (
	"errors"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	auth  usecase.AuthUsecase
	users usecase.UserUsecase
}

type provisionSessionRequest struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type sessionResponse struct {
	User   dto.UserResponse      `json:"user"`
	Tokens usecase.SessionTokens `json:"tokens"`
}

func NewAuthHandler(auth usecase.AuthUsecase, users usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/session", h.ProvisionSession)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user", h.GetAuthenticatedUser)
}

// ProvisionSession mirrors a provider-verified identity into the local store
// and mints a token pair. The identity provider authenticates upstream.
func (h *AuthHandler) ProvisionSession(c fiber.Ctx) error {
	var req provisionSessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	u, tokens, err := h.auth.ProvisionSession(c.Context(), usecase.ProvisionInput{
		ID:              req.ID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, sessionResponse{
		User:   dto.FromUser(u),
		Tokens: tokens,
	})
}

func (h *AuthHandler) GetAuthenticatedUser(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	view, err := h.users.GetUserWithSkills(c.Context(), callerID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}
