// Package gameplay owns the UNO rules applied to persisted games: lobby
// lifecycle, turns, the deck, the UNO declaration protocol and final
// scoring. Every mutating operation runs inside a single store.Atomic unit
// of work and commits with a version check on the game row, so two racing
// turns can never both win.
package gameplay

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"
)

var errStale = uno.ConflictError("The game state changed, please retry.")

type Service struct {
	store store.Store

	mu   sync.Mutex // guards rng
	rng  *rand.Rand
	deck func(r *rand.Rand) []uno.Card

	synthesizePenalty bool
	now               func() time.Time
}

type Option func(*Service)

// WithRand seeds the shuffles and synthesized penalty cards.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithDeck replaces the deck minted when a game starts without cards.
func WithDeck(fn func(r *rand.Rand) []uno.Card) Option {
	return func(s *Service) { s.deck = fn }
}

// WithoutPenaltySynthesis makes challenges draw only what the deck has.
func WithoutPenaltySynthesis() Option {
	return func(s *Service) { s.synthesizePenalty = false }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:             st,
		rng:               rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		deck:              uno.ShuffledDeck,
		synthesizePenalty: true,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) mintDeck() []uno.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck(s.rng)
}

func (s *Service) randomCard() uno.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uno.RandomCard(s.rng)
}

// storeErr maps persistence sentinels that leak out of a unit of work.
func storeErr(err error) error {
	if errors.Is(err, store.ErrStaleVersion) {
		return errStale
	}
	return err
}

func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, store.ErrNotFound) {
		return uno.NotFoundError(format, args...)
	}
	return err
}

func (s *Service) findGame(ctx context.Context, tx store.Store, gameID string) (*models.Game, error) {
	game, err := tx.FindGame(ctx, gameID)
	if err != nil {
		return nil, notFound(err, "Game not found.")
	}
	return game, nil
}

// saveGame commits game against the version it was read at.
func saveGame(ctx context.Context, tx store.Store, game *models.Game) error {
	return storeErr(tx.UpdateGame(ctx, game, game.Version))
}

func (s *Service) record(ctx context.Context, tx store.Store, gameID, playerID, action string) error {
	return tx.AppendHistory(ctx, &models.GameHistory{
		GameID:    gameID,
		PlayerID:  playerID,
		Action:    action,
		Timestamp: s.now(),
	})
}

func required(values ...string) error {
	for _, v := range values {
		if v == "" {
			return uno.ValidationError("Missing required parameters")
		}
	}
	return nil
}
