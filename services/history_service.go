package services

import (
	"yin/models"
	"yin/repositories"

	"gorm.io/gorm"
)

// HistoryService is the read-only path for browsing past games. Pure
// pass-throughs to the repositories, no write-path validation.
type HistoryService struct {
	games   *repositories.GameRepository
	players *repositories.GamePlayerRepository
	turns   *repositories.TurnRepository
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{
		games:   repositories.NewGameRepository(db),
		players: repositories.NewGamePlayerRepository(db),
		turns:   repositories.NewTurnRepository(db),
	}
}

func (s *HistoryService) ListGames() ([]models.Game, error) {
	return s.games.List()
}

func (s *HistoryService) Scoreboard(gameID uint) ([]models.GamePlayer, error) {
	return s.players.List(gameID)
}

func (s *HistoryService) Turns(gameID uint) ([]models.TurnEntry, error) {
	return s.turns.ListForGame(gameID)
}
