package main

import (
	"log/slog"
	"os"

	"yin/config"
	"yin/handlers"
	"yin/middleware"
	"yin/models"
	"yin/routes"
	"yin/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logging
	logger := config.NewLogger(cfg)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GamePlayer{},
		&models.Turn{},
	)
	if err != nil {
		logger.Error("failed to migrate database", "err", err)
		os.Exit(1)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	gameService := services.NewGameService(db)
	historyService := services.NewHistoryService(db)
	sessionService := services.NewSessionService(redisClient, cfg.SessionTTL)

	// Bootstrap the admin account
	if cfg.AdminPassword == config.DefaultAdminPassword {
		logger.Warn("admin account uses the default password, set ADMIN_PASSWORD",
			slog.String("username", cfg.AdminUsername))
	}
	if err := authService.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("failed to bootstrap admin user", "err", err)
		os.Exit(1)
	}

	// Initialize WebSocket hub
	hub := services.NewHub(historyService)
	go hub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService, hub)
	historyHandler := handlers.NewHistoryHandler(historyService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, gameHandler, historyHandler, sessionHandler, hub, gameService, cfg.JWTSecret)

	// Start server
	logger.Info("server starting", "addr", cfg.BindAddress+":"+cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		logger.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
