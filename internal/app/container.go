package app

import (
	"context"
	"log"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/infrastructure/uploads"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	"skillswap/internal/ws"
)

// Container wires infrastructure, repositories and usecases together.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Users repository.UserRepository

	AuthUC            usecase.AuthUsecase
	UserUC            usecase.UserUsecase
	UserSkillUC       usecase.UserSkillUsecase
	SkillUC           usecase.SkillUsecase
	SwapUC            usecase.SwapUsecase
	RatingUC          usecase.RatingUsecase
	AdminUC           usecase.AdminUsecase
	PlatformMessageUC usecase.PlatformMessageUsecase
	ProfilePhotoUC    usecase.ProfilePhotoUsecase

	UploadsDir string
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := uploads.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	users := repository.NewPostgresUserRepository(db)
	skills := repository.NewPostgresSkillRepository(db)
	userSkills := repository.NewPostgresUserSkillRepository(db)
	swaps := repository.NewPostgresSwapRequestRepository(db)
	ratings := repository.NewPostgresRatingRepository(db)
	audit := repository.NewPostgresAdminActionRepository(db)
	messages := repository.NewPostgresPlatformMessageRepository(db)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		Users: users,

		AuthUC:            usecase.NewAuthService(users, jwtSvc, redisCache),
		UserUC:            usecase.NewUserService(users, userSkills, ratings, redisCache),
		UserSkillUC:       usecase.NewUserSkillService(userSkills, redisCache),
		SkillUC:           usecase.NewSkillService(skills, redisCache),
		SwapUC:            usecase.NewSwapService(swaps, users, notifier),
		RatingUC:          usecase.NewRatingService(ratings, swaps, redisCache),
		AdminUC:           usecase.NewAdminService(users, skills, swaps, messages, audit, redisCache, notifier),
		PlatformMessageUC: usecase.NewPlatformMessageService(messages, redisCache),
		ProfilePhotoUC:    usecase.NewProfilePhotoService(users, store, redisCache, cfg.Uploads.MaxFileBytes),

		UploadsDir: store.Dir(),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
