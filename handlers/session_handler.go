package handlers

import (
	"net/http"

	"yin/services"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the per-user UI session state: the pending
// roster assembled before a game starts and the currently open game.
type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type AddRosterNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetCurrentGameRequest struct {
	GameID uint `json:"game_id" binding:"required"`
}

func sessionUser(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return username.(string), true
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	username, ok := sessionUser(c)
	if !ok {
		return
	}

	state, err := h.sessionService.Get(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *SessionHandler) AddRosterName(c *gin.Context) {
	username, ok := sessionUser(c)
	if !ok {
		return
	}

	var req AddRosterNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.sessionService.AddPendingPlayer(c.Request.Context(), username, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *SessionHandler) ClearRoster(c *gin.Context) {
	username, ok := sessionUser(c)
	if !ok {
		return
	}

	if err := h.sessionService.ClearRoster(c.Request.Context(), username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Roster cleared"})
}

func (h *SessionHandler) SetCurrentGame(c *gin.Context) {
	username, ok := sessionUser(c)
	if !ok {
		return
	}

	var req SetCurrentGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionService.SetCurrentGame(c.Request.Context(), username, req.GameID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Current game updated"})
}
