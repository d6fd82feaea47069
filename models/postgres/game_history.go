package postgres

import "time"

/*
 * 'GameHistory' is an append-only log of what happened in a game. The
 * auto-increment ID doubles as the ordering key.
 */
type GameHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameID    string    `gorm:"size:36;not null;index:idx_game_histories_game" json:"gameId"`
	PlayerID  string    `gorm:"size:36;not null" json:"playerId"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
