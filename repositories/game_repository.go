package repositories

import (
	"time"

	"yin/models"

	"gorm.io/gorm"
)

// GameRepository translates between game rows and records. No business
// rules live here; store errors pass through untouched.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create() (*models.Game, error) {
	game := models.Game{Status: "active"}
	if err := r.db.Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// List returns all games, most recent first. The id tie-break keeps the
// order stable when two games share a creation timestamp.
func (r *GameRepository) List() ([]models.Game, error) {
	var games []models.Game
	err := r.db.Order("created_at DESC, id DESC").Find(&games).Error
	return games, err
}

func (r *GameRepository) Get(gameID uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, gameID).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Finish transitions the game to finished with a fresh timestamp. A
// second call overwrites finished_at; an unknown id is a no-op.
func (r *GameRepository) Finish(gameID uint) error {
	now := time.Now()
	return r.db.Model(&models.Game{}).Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"status":      "finished",
			"finished_at": &now,
		}).Error
}
