package handler

import (
	"errors"
	"strconv"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Location     *string `json:"location"`
	Availability *string `json:"availability"`
	IsPublic     *bool   `json:"isPublic"`
}

type browseUsersResponse struct {
	Users []usecase.UserView `json:"users"`
	Total int                `json:"total"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.BrowseUsers)
	r.Get("/:id", h.GetUser)
}

func (h *UserHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/profile", h.UpdateProfile)
}

// BrowseUsers serves search results when a query is present and the paginated
// public listing otherwise. Both shapes carry {users, total}.
func (h *UserHandler) BrowseUsers(c fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.uc.BrowseUsers(c.Context(), usecase.BrowseUsersInput{
		Page:         page,
		Limit:        limit,
		Search:       c.Query("search"),
		Availability: c.Query("availability"),
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, browseUsersResponse{
		Users: result.Users,
		Total: result.Total,
	})
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	view, err := h.uc.GetUserWithSkills(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, view)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	view, err := h.uc.UpdateProfile(c.Context(), callerID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Location:     req.Location,
		Availability: req.Availability,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
		}
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated successfully", view)
}
