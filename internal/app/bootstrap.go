package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database/migration"
	"skillswap/internal/database/seeder"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/routes"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(container); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	if err := runSeeders(container); err != nil {
		_ = container.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: int(cfg.Uploads.MaxFileBytes) + 1<<20,
	})

	registerGlobalMiddleware(f, logger)

	f.Use("/uploads", static.New(container.UploadsDir))

	authMw := middleware.NewAuthMiddleware(container.JWT)
	adminMw := middleware.NewAdminMiddleware(container.Users)

	routes.Register(f, buildHandlers(container), authMw.Middleware(), adminMw.Middleware(), ws.NewHandler(container.Hub, logger))

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func buildHandlers(c *Container) routes.Handlers {
	return routes.Handlers{
		Health:          handler.NewHealthHandler(c.DB),
		Auth:            handler.NewAuthHandler(c.AuthUC, c.UserUC),
		User:            handler.NewUserHandler(c.UserUC),
		UserSkill:       handler.NewUserSkillHandler(c.UserSkillUC),
		ProfilePhoto:    handler.NewProfilePhotoHandler(c.ProfilePhotoUC),
		Skill:           handler.NewSkillHandler(c.SkillUC),
		SwapRequest:     handler.NewSwapRequestHandler(c.SwapUC),
		Rating:          handler.NewRatingHandler(c.RatingUC),
		Admin:           handler.NewAdminHandler(c.AdminUC),
		PlatformMessage: handler.NewPlatformMessageHandler(c.PlatformMessageUC),
	}
}

func runMigrations(c *Container) error {
	sqlDB := c.DB.SQLDB()
	if sqlDB == nil {
		return fmt.Errorf("no sql db for migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	return migration.Runner{Dir: c.Config.App.MigrationsDir}.Run(ctx, sqlDB)
}

func runSeeders(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, c.DB)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
