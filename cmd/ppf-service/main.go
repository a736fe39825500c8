package main

import (
	"fmt"
	"os"

	"ppf-service/internal/auth"
	"ppf-service/internal/client"
	"ppf-service/internal/config"
	"ppf-service/internal/db"
	httphandler "ppf-service/internal/http"
	"ppf-service/internal/http/middleware"
	"ppf-service/internal/logger"
	"ppf-service/internal/repository"
	"ppf-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	jobRepo := repository.NewJobRepository(database)
	issueRepo := repository.NewIssueRepository(database)
	packageRepo := repository.NewPackageRepository(database)
	productRepo := repository.NewProductRepository(database)
	rollRepo := repository.NewRollRepository(database)
	usageRepo := repository.NewUsageRepository(database)
	userRepo := repository.NewUserRepository(database)

	jobService := service.NewJobService(jobRepo, packageRepo)
	issueService := service.NewIssueService(issueRepo, jobRepo)
	inventoryService := service.NewInventoryService(productRepo, rollRepo, usageRepo, jobRepo)
	catalogService := service.NewCatalogService(packageRepo, userRepo, jobRepo)

	identityClient := client.NewIdentityClient(cfg)
	verifier := auth.NewCachedVerifier(identityClient, cfg.Identity.CacheTTL)

	handler := httphandler.NewHandler(jobService, issueService, inventoryService, catalogService, appLogger)
	authMiddleware := middleware.Auth(verifier)
	router := httphandler.NewRouter(handler, authMiddleware, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting ppf workshop service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
