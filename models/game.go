package models

import (
	"time"
)

type Game struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Status     string     `json:"status" gorm:"not null;default:'active'"` // active, finished
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at"`

	// Relationships
	Players []GamePlayer `json:"players,omitempty" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}
