package models

import (
	"time"
)

// Turn is an append-only point-delta event. Rows are never updated or
// deleted except via cascade when the owning player or game goes away.
type Turn struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	GamePlayerID uint      `json:"game_player_id" gorm:"not null"`
	Delta        int       `json:"delta" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TurnEntry is a turn row joined with the owning player's name, as
// surfaced by the chronological turn log.
type TurnEntry struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}
