package services

import (
	"errors"
	"fmt"
	"strings"

	"yin/models"
	"yin/repositories"

	"gorm.io/gorm"
)

// GameService orchestrates game creation, point recording, scoreboard
// retrieval, and game completion. Every repository call is its own
// short transaction; there is no multi-statement transaction spanning
// calls within a service method.
type GameService struct {
	games   *repositories.GameRepository
	players *repositories.GamePlayerRepository
	turns   *repositories.TurnRepository
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		games:   repositories.NewGameRepository(db),
		players: repositories.NewGamePlayerRepository(db),
		turns:   repositories.NewTurnRepository(db),
	}
}

// CreateGame creates a game with the given roster and returns its id.
// Names are trimmed and blank entries dropped; duplicates within the
// input collapse via the repository's idempotent insert. An empty
// resulting list fails with ErrValidation before any row is written.
func (s *GameService) CreateGame(names []string) (uint, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return 0, fmt.Errorf("at least one player name is required: %w", ErrValidation)
	}

	game, err := s.games.Create()
	if err != nil {
		return 0, err
	}
	if _, err := s.players.AddMany(game.ID, cleaned); err != nil {
		return 0, err
	}
	return game.ID, nil
}

func (s *GameService) ListGames() ([]models.Game, error) {
	return s.games.List()
}

// GetScoreboard returns the roster ordered lowest score first together
// with the game record.
func (s *GameService) GetScoreboard(gameID uint) ([]models.GamePlayer, *models.Game, error) {
	game, err := s.games.Get(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		return nil, nil, err
	}

	players, err := s.players.List(gameID)
	if err != nil {
		return nil, nil, err
	}
	return players, game, nil
}

// AddPoints records a turn for the named player and updates the cached
// running total. The turn log is the source of truth; points is the
// aggregate derived from it. Game status is not checked here, so points
// can still be recorded against a finished game.
func (s *GameService) AddPoints(gameID uint, playerName string, delta int) error {
	player, err := s.players.GetByName(gameID, playerName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("player %q in game %d: %w", playerName, gameID, ErrNotFound)
		}
		return err
	}

	if err := s.turns.Record(player.ID, delta); err != nil {
		return err
	}
	return s.players.AddPoints(player.ID, delta)
}

// FinishGame transitions the game to finished. Calling it again leaves
// the status finished and refreshes the finish timestamp.
func (s *GameService) FinishGame(gameID uint) error {
	if _, err := s.games.Get(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		return err
	}
	return s.games.Finish(gameID)
}
