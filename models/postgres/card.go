package postgres

import (
	"errors"
	"time"

	"Uno/services/uno"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDiscardedCardOwned = errors.New("a discarded card cannot belong to a player")

/*
 * 'Card' is one physical card of a game. It lives in exactly one place:
 *   - the deck (PlayerID nil, Discarded false), drawn by ascending Position
 *   - a hand (PlayerID set)
 *   - the discard pile (Discarded true), the highest DiscardSeq is on top
 */
type Card struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	GameID     string    `gorm:"size:36;not null;index:idx_cards_game_position,priority:1" json:"gameId"`
	Color      string    `gorm:"size:10;not null" json:"color"`
	Value      string    `gorm:"size:15;not null" json:"value"`
	PlayerID   *string   `gorm:"size:36;index:idx_cards_player" json:"playerId"`
	Discarded  bool      `gorm:"not null" json:"discarded"`
	Position   int       `gorm:"not null;index:idx_cards_game_position,priority:2" json:"position"`
	DiscardSeq int64     `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// GORM hook to keep a card in a single place
func (c *Card) BeforeSave(tx *gorm.DB) error {
	return c.CheckState()
}

func (c *Card) CheckState() error {
	if c.Discarded && c.PlayerID != nil {
		return ErrDiscardedCardOwned
	}
	return nil
}

func (c *Card) Face() uno.Card {
	return uno.Card{Color: uno.Color(c.Color), Value: uno.Value(c.Value)}
}

func (c *Card) OwnedBy(userID string) bool {
	return c.PlayerID != nil && *c.PlayerID == userID && !c.Discarded
}

func (c *Card) InDeck() bool {
	return c.PlayerID == nil && !c.Discarded
}
