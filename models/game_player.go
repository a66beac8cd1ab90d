package models

type GamePlayer struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	GameID uint   `json:"game_id" gorm:"not null;uniqueIndex:idx_game_players_game_name"`
	Name   string `json:"name" gorm:"not null;uniqueIndex:idx_game_players_game_name"`
	Points int    `json:"points" gorm:"not null;default:0"`

	// Relationships
	Turns []Turn `json:"turns,omitempty" gorm:"foreignKey:GamePlayerID;constraint:OnDelete:CASCADE"`
}
