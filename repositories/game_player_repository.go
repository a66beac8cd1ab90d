package repositories

import (
	"strings"

	"yin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GamePlayerRepository struct {
	db *gorm.DB
}

func NewGamePlayerRepository(db *gorm.DB) *GamePlayerRepository {
	return &GamePlayerRepository{db: db}
}

// AddMany inserts a player row per name, trimming whitespace first.
// Names already present in the game are skipped via ON CONFLICT DO
// NOTHING, so duplicate adds are idempotent rather than errors. The
// full roster is returned ordered alphabetically, regardless of which
// names were newly inserted.
func (r *GamePlayerRepository) AddMany(gameID uint, names []string) ([]models.GamePlayer, error) {
	for _, name := range names {
		player := models.GamePlayer{
			GameID: gameID,
			Name:   strings.TrimSpace(name),
		}
		if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&player).Error; err != nil {
			return nil, err
		}
	}

	var players []models.GamePlayer
	err := r.db.Where("game_id = ?", gameID).Order("name ASC").Find(&players).Error
	return players, err
}

// List returns the scoreboard: lowest score first, names breaking ties.
func (r *GamePlayerRepository) List(gameID uint) ([]models.GamePlayer, error) {
	var players []models.GamePlayer
	err := r.db.Where("game_id = ?", gameID).Order("points ASC, name ASC").Find(&players).Error
	return players, err
}

func (r *GamePlayerRepository) GetByName(gameID uint, name string) (*models.GamePlayer, error) {
	var player models.GamePlayer
	if err := r.db.Where("game_id = ? AND name = ?", gameID, name).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// AddPoints increments the cached running total; delta may be negative.
func (r *GamePlayerRepository) AddPoints(gamePlayerID uint, delta int) error {
	return r.db.Model(&models.GamePlayer{}).Where("id = ?", gamePlayerID).
		Update("points", gorm.Expr("points + ?", delta)).Error
}
