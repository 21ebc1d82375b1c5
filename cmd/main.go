package main

import (
	"fmt"
	"os"
	"time"

	"github.com/somapath/somapath-backend/internal/clients/openai"
	"github.com/somapath/somapath-backend/internal/clients/rediscache"
	"github.com/somapath/somapath-backend/internal/config"
	"github.com/somapath/somapath-backend/internal/db"
	"github.com/somapath/somapath-backend/internal/handlers"
	"github.com/somapath/somapath-backend/internal/middleware"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/server"
	"github.com/somapath/somapath-backend/internal/services"
	"github.com/somapath/somapath-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	feedbackTimeout := utils.GetEnvAsInt("FEEDBACK_TIMEOUT_SECONDS", 60, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Roadmap phase templates
	roadmapConfig, err := config.LoadRoadmapConfig()
	if err != nil {
		log.Error("Could not load roadmap phase templates", "error", err)
		os.Exit(1)
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	essayRepo := repos.NewEssayRepo(thePG, log)
	essayVersionRepo := repos.NewEssayVersionRepo(thePG, log)
	roadmapRepo := repos.NewRoadmapProgressRepo(thePG, log)
	universityRepo := repos.NewUniversityRepo(thePG, log)
	scholarshipRepo := repos.NewScholarshipRepo(thePG, log)
	achievementRepo := repos.NewAchievementRepo(thePG, log)

	// Clients
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAI client", "error", err)
		os.Exit(1)
	}
	// Redis is optional; the directory endpoints fall back to Postgres reads.
	cache, err := rediscache.New(log)
	if err != nil {
		log.Warn("Running without Redis directory cache", "error", err)
		cache = nil
	}
	if cache != nil {
		defer cache.Close()
	}

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	essayService := services.NewEssayService(thePG, log, essayRepo, essayVersionRepo)
	feedbackService := services.NewFeedbackService(log, openaiClient, time.Duration(feedbackTimeout)*time.Second)
	roadmapService := services.NewRoadmapService(thePG, log, roadmapRepo, roadmapConfig)
	catalogService := services.NewCatalogService(thePG, log, universityRepo, scholarshipRepo, cache)
	achievementService := services.NewAchievementService(thePG, log, achievementRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(log, authService)
	userHandler := handlers.NewUserHandler(log, userService)
	essayHandler := handlers.NewEssayHandler(log, essayService, feedbackService)
	roadmapHandler := handlers.NewRoadmapHandler(log, roadmapService)
	catalogHandler := handlers.NewCatalogHandler(log, catalogService)
	achievementHandler := handlers.NewAchievementHandler(log, achievementService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		UserHandler:        userHandler,
		EssayHandler:       essayHandler,
		RoadmapHandler:     roadmapHandler,
		CatalogHandler:     catalogHandler,
		AchievementHandler: achievementHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
