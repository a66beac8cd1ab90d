package routes

import (
	"log/slog"
	"net/http"
	"strconv"

	"yin/handlers"
	"yin/middleware"
	"yin/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // single local user, no cross-origin concerns
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	gameHandler *handlers.GameHandler,
	historyHandler *handlers.HistoryHandler,
	sessionHandler *handlers.SessionHandler,
	hub *services.Hub,
	gameService *services.GameService,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// User profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Game routes (write path)
			games := protected.Group("/games")
			{
				games.POST("", gameHandler.CreateGame)
				games.GET("", gameHandler.ListGames)
				games.GET("/:id", gameHandler.GetScoreboard)
				games.POST("/:id/points", gameHandler.AddPoints)
				games.POST("/:id/finish", gameHandler.FinishGame)
			}

			// History routes (read-only path)
			history := protected.Group("/history")
			{
				history.GET("/games", historyHandler.ListGames)
				history.GET("/games/:id/scoreboard", historyHandler.GetScoreboard)
				history.GET("/games/:id/turns", historyHandler.GetTurns)
			}

			// Session state (pending roster, current game)
			session := protected.Group("/session")
			{
				session.GET("", sessionHandler.GetSession)
				session.POST("/roster", sessionHandler.AddRosterName)
				session.DELETE("/roster", sessionHandler.ClearRoster)
				session.PUT("/current-game", sessionHandler.SetCurrentGame)
			}
		}
	}

	// WebSocket endpoint for live scoreboard updates
	router.GET("/ws/:gameID", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("gameID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}
		gameID := uint(id)

		// Refuse subscriptions to games that do not exist.
		if _, _, err := gameService.GetScoreboard(gameID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "game_id", gameID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
			return
		}

		hub.RegisterClient(conn, gameID)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
