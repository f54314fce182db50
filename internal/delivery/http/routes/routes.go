package routes

import (
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	User            *handler.UserHandler
	UserSkill       *handler.UserSkillHandler
	ProfilePhoto    *handler.ProfilePhotoHandler
	Skill           *handler.SkillHandler
	SwapRequest     *handler.SwapRequestHandler
	Rating          *handler.RatingHandler
	Admin           *handler.AdminHandler
	PlatformMessage *handler.PlatformMessageHandler
}

// Register mounts the whole API surface. Route-level auth happens here; the
// handlers only assume an authenticated caller where a group applies the
// middleware.
func Register(app *fiber.App, h Handlers, authMw, adminMw fiber.Handler, wsHandler *ws.Handler) {
	if app == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(app)
	}
	if wsHandler != nil {
		app.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
	}

	api := app.Group("/api")

	if h.Auth != nil {
		h.Auth.RegisterRoutes(api.Group("/auth"))
		h.Auth.RegisterProtectedRoutes(api.Group("/auth", authMw))
	}

	if h.User != nil {
		h.User.RegisterPublicRoutes(api.Group("/users"))

		protectedUsers := api.Group("/users", authMw)
		h.User.RegisterProtectedRoutes(protectedUsers)
		if h.ProfilePhoto != nil {
			h.ProfilePhoto.RegisterRoutes(protectedUsers)
		}
		if h.UserSkill != nil {
			h.UserSkill.RegisterRoutes(protectedUsers)
		}
	}

	if h.Skill != nil {
		h.Skill.RegisterPublicRoutes(api.Group("/skills"))
		h.Skill.RegisterProtectedRoutes(api.Group("/skills", authMw))
	}

	if h.Rating != nil {
		h.Rating.RegisterPublicRoutes(api)
		h.Rating.RegisterProtectedRoutes(api.Group("", authMw))
	}

	if h.SwapRequest != nil {
		h.SwapRequest.RegisterRoutes(api.Group("", authMw))
	}

	if h.Admin != nil {
		h.Admin.RegisterRoutes(api.Group("/admin", authMw, adminMw))
	}

	if h.PlatformMessage != nil {
		h.PlatformMessage.RegisterRoutes(api)
	}
}
