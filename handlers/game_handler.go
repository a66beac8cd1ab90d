package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"yin/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
	hub         *services.Hub
}

func NewGameHandler(gameService *services.GameService, hub *services.Hub) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		hub:         hub,
	}
}

type CreateGameRequest struct {
	Names []string `json:"names" binding:"required"`
}

type AddPointsRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	// Delta may be negative; zero is accepted too, the core does not
	// validate rules beyond "an integer".
	Delta int `json:"delta"`
}

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Store-level failures surface as 500s, untranslated.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func gameIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
		return 0, false
	}
	return uint(id), true
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameID, err := h.gameService.CreateGame(req.Names)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"game_id": gameID})
}

func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetScoreboard(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	players, game, err := h.gameService.GetScoreboard(gameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game, "players": players})
}

func (h *GameHandler) AddPoints(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gameService.AddPoints(gameID, req.PlayerName, req.Delta); err != nil {
		respondServiceError(c, err)
		return
	}

	// Push the fresh scoreboard to anyone watching this game.
	if h.hub != nil {
		h.hub.BroadcastScoreboard(gameID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Points recorded"})
}

func (h *GameHandler) FinishGame(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	if err := h.gameService.FinishGame(gameID); err != nil {
		respondServiceError(c, err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastToGame(gameID, "game_finished", gin.H{"game_id": gameID})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game finished"})
}
