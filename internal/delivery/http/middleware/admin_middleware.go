package middleware

import (
	"errors"

	"skillswap/internal/repository"

	"github.com/gofiber/fiber/v3"
)

// AdminMiddleware gates moderation routes. The admin flag is re-read from the
// store on every request, so a revoked admin loses access immediately rather
// than at token expiry.
type AdminMiddleware struct {
	users repository.UserRepository
}

func NewAdminMiddleware(users repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{users: users}
}

func (m *AdminMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		callerID, ok := CallerID(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		u, err := m.users.GetByID(c.Context(), callerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return NewAppError(fiber.StatusForbidden, "Access denied", nil, nil)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		if !u.IsAdmin {
			return NewAppError(fiber.StatusForbidden, "Access denied", nil, nil)
		}

		return c.Next()
	}
}
