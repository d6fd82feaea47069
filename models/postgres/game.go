package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Game' is an UNO table. Players holds the seating order (which Reverse
 * flips in place), TurnIndex points into it. Version is bumped on every
 * write so concurrent turns can be detected.
 */
type Game struct {
	ID         string                              `gorm:"primaryKey;size:36" json:"id"`
	Title      string                              `gorm:"size:100;not null" json:"title"`
	Status     string                              `gorm:"size:20;not null;index:idx_games_status" json:"status"`
	MaxPlayers int                                 `gorm:"not null" json:"maxPlayers"`
	Players    datatypes.JSONSlice[string]         `gorm:"type:jsonb;not null" json:"players"`
	TurnIndex  int                                 `gorm:"not null" json:"turnIndex"`
	CreatorID  string                              `gorm:"size:36;not null;index:idx_games_creator" json:"creator"`
	WinnerID   *string                             `gorm:"size:36" json:"winner,omitempty"`
	UnoStatus  datatypes.JSONType[map[string]bool] `gorm:"type:jsonb;not null" json:"unoStatus"`
	DiscardSeq int64                               `gorm:"not null" json:"-"`
	Version    int                                 `gorm:"not null" json:"version"`
	CreatedAt  time.Time                           `json:"createdAt"`
	UpdatedAt  time.Time                           `json:"updatedAt"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	// jsonb columns are NOT NULL, never write a nil collection
	if g.Players == nil {
		g.Players = datatypes.JSONSlice[string]{}
	}
	if g.UnoStatus.Data() == nil {
		g.UnoStatus = datatypes.NewJSONType(map[string]bool{})
	}
	return nil
}

func (g *Game) HasPlayer(userID string) bool {
	return g.SeatOf(userID) >= 0
}

// SeatOf returns the seat index of userID, or -1.
func (g *Game) SeatOf(userID string) int {
	for i, p := range g.Players {
		if p == userID {
			return i
		}
	}
	return -1
}

// CurrentPlayerID returns "" when nobody is seated.
func (g *Game) CurrentPlayerID() string {
	if g.TurnIndex < 0 || g.TurnIndex >= len(g.Players) {
		return ""
	}
	return g.Players[g.TurnIndex]
}

func (g *Game) UnoDeclared(userID string) bool {
	return g.UnoStatus.Data()[userID]
}

// SetUnoDeclared never aliases the map read from the database.
func (g *Game) SetUnoDeclared(userID string, declared bool) {
	current := g.UnoStatus.Data()
	if _, ok := current[userID]; !ok && !declared {
		return
	}
	next := make(map[string]bool, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[userID] = declared
	g.UnoStatus = datatypes.NewJSONType(next)
}

func (g *Game) ForgetPlayer(userID string) {
	seat := g.SeatOf(userID)
	if seat < 0 {
		return
	}
	players := make([]string, 0, len(g.Players)-1)
	players = append(players, g.Players[:seat]...)
	players = append(players, g.Players[seat+1:]...)
	g.Players = players

	current := g.UnoStatus.Data()
	if _, ok := current[userID]; ok {
		next := make(map[string]bool, len(current))
		for k, v := range current {
			if k != userID {
				next[k] = v
			}
		}
		g.UnoStatus = datatypes.NewJSONType(next)
	}
}
