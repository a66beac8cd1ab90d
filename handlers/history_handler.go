package handlers

import (
	"net/http"

	"yin/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) ListGames(c *gin.Context) {
	games, err := h.historyService.ListGames()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *HistoryHandler) GetScoreboard(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	players, err := h.historyService.Scoreboard(gameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

func (h *HistoryHandler) GetTurns(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	turns, err := h.historyService.Turns(gameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, turns)
}
