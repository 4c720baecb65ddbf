package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/bodycheck/credential-service/config"
	"github.com/bodycheck/credential-service/db"
	"github.com/bodycheck/credential-service/internal/account/handler"
	repo "github.com/bodycheck/credential-service/internal/account/repository/postgres"
	"github.com/bodycheck/credential-service/internal/account/service"
	"github.com/bodycheck/credential-service/internal/logutil"
	"github.com/bodycheck/credential-service/internal/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logutil.New(os.Getenv("ENV"))
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logutil.New(cfg.Env)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer dbPool.Close()

	hasher, err := password.NewHasher(cfg.HashScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid hash scheme")
	}

	accountRepo := repo.NewAccountRepository(dbPool)
	tokenService := service.NewTokenService(cfg.TokenSigningKey, cfg.TokenTTLMin)
	accountService, err := service.NewAccountService(accountRepo, tokenService, hasher, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize account service")
	}
	authHandler := handler.NewAuthHandler(accountService, tokenService, log)

	app := fiber.New()
	app.Use(handler.RequestLogger(log))
	handler.RegisterRoutes(app, authHandler)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting credential service")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
