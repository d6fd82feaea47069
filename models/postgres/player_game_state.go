package postgres

import "time"

/*
 * 'PlayerGameState' is a player's seat record in a game, used for the
 * ready check before a game can start.
 */
type PlayerGameState struct {
	// NOTE: composite primary key definition
	UserID    string    `gorm:"primaryKey;size:36" json:"user"`
	GameID    string    `gorm:"primaryKey;size:36;index:idx_player_game_states_game" json:"game"`
	Ready     bool      `gorm:"not null" json:"ready"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
