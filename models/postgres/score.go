package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points earned by a player in a game
type Score struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PlayerID  string    `gorm:"size:36;not null;index:idx_scores_player" json:"playerId"`
	GameID    string    `gorm:"size:36;not null;index:idx_scores_game" json:"gameId"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Score) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
