// Package store is the persistence boundary of the game services. Both
// implementations (gormstore for PostgreSQL, memstore for tests and
// single-process runs) honour the same contract.
package store

import (
	"context"
	"errors"
	"time"

	models "Uno/models/postgres"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrStaleVersion means a conditional write lost a race: the game
	// version or the card placement changed since it was read.
	ErrStaleVersion = errors.New("stale version")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindUserByEmailOrName matches either field.
	FindUserByEmailOrName(ctx context.Context, email, name string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListUsersByIDs(ctx context.Context, ids []string) ([]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
}

type GameStore interface {
	CreateGame(ctx context.Context, game *models.Game) error
	FindGame(ctx context.Context, id string) (*models.Game, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	// UpdateGame writes game only if the stored version still equals
	// expectedVersion. On success game.Version is bumped.
	UpdateGame(ctx context.Context, game *models.Game, expectedVersion int) error
	// DeleteGame also removes the game's cards and player states.
	DeleteGame(ctx context.Context, id string) error

	SavePlayerState(ctx context.Context, state *models.PlayerGameState) error
	FindPlayerState(ctx context.Context, gameID, userID string) (*models.PlayerGameState, error)
	ListPlayerStates(ctx context.Context, gameID string) ([]models.PlayerGameState, error)
	DeletePlayerState(ctx context.Context, gameID, userID string) error
}

type CardStore interface {
	CreateCards(ctx context.Context, cards []*models.Card) error
	FindCard(ctx context.Context, id string) (*models.Card, error)
	ListCards(ctx context.Context, gameID string) ([]models.Card, error)
	// ListDeck returns the undealt cards in draw order.
	ListDeck(ctx context.Context, gameID string) ([]models.Card, error)
	// ListHand returns the cards held by playerID. An empty gameID
	// matches every game.
	ListHand(ctx context.Context, gameID, playerID string) ([]models.Card, error)
	TopDiscard(ctx context.Context, gameID string) (*models.Card, error)

	// DrawFromDeck hands the first deck card to playerID, ErrNotFound when
	// the deck is empty.
	DrawFromDeck(ctx context.Context, gameID, playerID string) (*models.Card, error)
	// AssignCard moves a deck card into playerID's hand.
	AssignCard(ctx context.Context, cardID, playerID string) error
	// DiscardCard moves a card from playerID's hand to the discard pile.
	DiscardCard(ctx context.Context, cardID, playerID string, seq int64) error
	// FlipCard moves a deck card straight to the discard pile.
	FlipCard(ctx context.Context, cardID string, seq int64) error
	// ReturnHand puts every card held by playerID back into the deck.
	ReturnHand(ctx context.Context, gameID, playerID string) error
}

type ScoreStore interface {
	CreateScore(ctx context.Context, score *models.Score) error
	FindScore(ctx context.Context, id string) (*models.Score, error)
	ListScores(ctx context.Context) ([]models.Score, error)
	ListScoresByGame(ctx context.Context, gameID string) ([]models.Score, error)
	SaveScore(ctx context.Context, score *models.Score) error
	DeleteScore(ctx context.Context, id string) error
}

type HistoryStore interface {
	AppendHistory(ctx context.Context, entry *models.GameHistory) error
	ListHistory(ctx context.Context, gameID string) ([]models.GameHistory, error)
}

// RequestSample is one served HTTP request.
type RequestSample struct {
	Endpoint   string
	Method     string
	StatusCode int
	Elapsed    time.Duration
	UserID     *string
	At         time.Time
}

type TrackingStore interface {
	// RecordRequest folds sample into the endpoint+method counter row.
	RecordRequest(ctx context.Context, sample RequestSample) error
	ListTracking(ctx context.Context) ([]models.Tracking, error)
}

type Store interface {
	UserStore
	GameStore
	CardStore
	ScoreStore
	HistoryStore
	TrackingStore

	// Atomic runs fn as one unit of work. If fn returns an error nothing
	// it wrote is kept.
	Atomic(ctx context.Context, fn func(tx Store) error) error
}
