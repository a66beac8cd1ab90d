package repositories

import (
	"yin/models"

	"gorm.io/gorm"
)

type TurnRepository struct {
	db *gorm.DB
}

func NewTurnRepository(db *gorm.DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Record appends an immutable turn row with the current timestamp.
func (r *TurnRepository) Record(gamePlayerID uint, delta int) error {
	turn := models.Turn{
		GamePlayerID: gamePlayerID,
		Delta:        delta,
	}
	return r.db.Create(&turn).Error
}

// ListForGame returns the game's chronological audit log, earliest
// first, with the player's name joined onto each delta. The id
// tie-break keeps turns recorded within the same timestamp in insert
// order.
func (r *TurnRepository) ListForGame(gameID uint) ([]models.TurnEntry, error) {
	var entries []models.TurnEntry
	err := r.db.Table("turns").
		Select("turns.id, game_players.name, turns.delta, turns.created_at").
		Joins("JOIN game_players ON game_players.id = turns.game_player_id").
		Where("game_players.game_id = ?", gameID).
		Order("turns.created_at ASC, turns.id ASC").
		Scan(&entries).Error
	return entries, err
}
