package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/somapath/somapath-backend/internal/handlers"
	"github.com/somapath/somapath-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	UserHandler        *handlers.UserHandler
	EssayHandler       *handlers.EssayHandler
	RoadmapHandler     *handlers.RoadmapHandler
	CatalogHandler     *handlers.CatalogHandler
	AchievementHandler *handlers.AchievementHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
		api.GET("/universities", cfg.CatalogHandler.ListUniversities)
		api.GET("/scholarships", cfg.CatalogHandler.ListScholarships)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)
	protected.GET("/auth/user", cfg.UserHandler.GetMe)
	// Profile
	protected.PATCH("/profile", cfg.UserHandler.UpdateProfile)
	// Essays
	protected.POST("/essays", cfg.EssayHandler.Create)
	protected.GET("/essays", cfg.EssayHandler.List)
	protected.GET("/essays/:id", cfg.EssayHandler.Get)
	protected.PATCH("/essays/:id", cfg.EssayHandler.Update)
	protected.GET("/essays/:id/versions", cfg.EssayHandler.ListVersions)
	protected.POST("/essays/:id/versions", cfg.EssayHandler.SaveVersion)
	protected.POST("/essays/:id/feedback", cfg.EssayHandler.Feedback)
	// Roadmap
	protected.GET("/roadmap", cfg.RoadmapHandler.List)
	protected.POST("/roadmap", cfg.RoadmapHandler.Upsert)
	// Achievements
	protected.GET("/achievements/user", cfg.AchievementHandler.ListForUser)

	return router
}
