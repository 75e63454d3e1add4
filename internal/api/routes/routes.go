package routes

import (
	"fmt"
	"time"

	"guardops-backend/internal/api/handlers"
	"guardops-backend/internal/api/middleware"
	"guardops-backend/internal/auth"
	"guardops-backend/internal/config"
	"guardops-backend/internal/database/models"
	"guardops-backend/internal/ratelimit"
	"guardops-backend/internal/repository"
	"guardops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. redisClient may
// be nil, in which case roster generation is not rate limited.
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	patternRepo := repository.NewPatternRepository(db)
	patternAssignmentRepo := repository.NewPatternAssignmentRepository(db)
	shiftAssignmentRepo := repository.NewShiftAssignmentRepository(db)

	// Initialize services
	patternService := service.NewPatternService(patternRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, validator)
	patternAssignmentService := service.NewPatternAssignmentService(patternAssignmentRepo, userRepo, patternRepo, validator)
	rosterService := service.NewRosterService(
		patternAssignmentRepo,
		shiftRepo,
		shiftAssignmentRepo,
		patternService,
		service.NewReconciler(),
		validator,
	)

	// Initialize auth
	authConfig, err := loadAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	requireAdmin := authMiddleware.RequireRole(models.UserRoleAdmin)

	// Initialize handlers
	var redisCmd redis.Cmdable
	if redisClient != nil {
		redisCmd = redisClient
	}
	healthHandler := handlers.NewHealthHandler(db, redisCmd)
	patternHandler := handlers.NewPatternHandler(patternService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	patternAssignmentHandler := handlers.NewPatternAssignmentHandler(patternAssignmentService)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	generateChain := []gin.HandlerFunc{requireAdmin}
	if redisClient != nil {
		limiter := ratelimit.NewLimiter(
			redisClient,
			"ratelimit:roster-generate:",
			cfg.RateLimitRequests,
			time.Duration(cfg.RateLimitWindowSec)*time.Second,
		)
		generateChain = append(generateChain, middleware.RateLimit(limiter))
	} else {
		logrus.Warn("Redis not configured, roster generation is not rate limited")
	}
	generateChain = append(generateChain, rosterHandler.GenerateRoster)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Pattern routes
		patterns := v1.Group("/patterns")
		{
			patterns.GET("", patternHandler.ListPatterns)
			patterns.POST("", requireAdmin, patternHandler.CreatePattern)
			patterns.GET("/default/:count", patternHandler.GetDefaultPattern)
			patterns.POST("/validate", patternHandler.ValidatePattern)
			patterns.GET("/:id", patternHandler.GetPattern)
			patterns.PUT("/:id", requireAdmin, patternHandler.UpdatePattern)
			patterns.DELETE("/:id", requireAdmin, patternHandler.DeletePattern)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", requireAdmin, shiftHandler.CreateShift)
			shifts.PUT("/:id", requireAdmin, shiftHandler.UpdateShift)
		}

		// Pattern assignment routes
		patternAssignments := v1.Group("/pattern-assignments")
		{
			patternAssignments.GET("", patternAssignmentHandler.ListPatternAssignments) // Requires month parameter
			patternAssignments.POST("", requireAdmin, patternAssignmentHandler.CreatePatternAssignment)
			patternAssignments.DELETE("/:id", requireAdmin, patternAssignmentHandler.DeletePatternAssignment)
		}

		// Roster routes
		rosterGroup := v1.Group("/roster")
		{
			rosterGroup.POST("/generate", generateChain...)
			rosterGroup.POST("/preview", requireAdmin, rosterHandler.PreviewRoster)
			rosterGroup.GET("/calendar", rosterHandler.GetCalendar)
			rosterGroup.GET("/calendar/export", rosterHandler.ExportCalendar)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// loadAuthConfig reads the auth config file and falls back to the JWT secret
// from the main configuration when the file gives none.
func loadAuthConfig(cfg *config.Config) (*auth.AuthConfig, error) {
	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath)
	if err == nil {
		return authConfig, nil
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("load auth config: %w", err)
	}

	logrus.WithError(err).Warn("Auth config not usable, falling back to JWT_SECRET")
	return &auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    auth.DefaultIssuer,
		TokenTTL:  auth.DefaultTokenTTL,
	}, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
