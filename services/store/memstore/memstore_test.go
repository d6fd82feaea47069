package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	models "Uno/models/postgres"
	"Uno/services/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func seedGame(t *testing.T, s *Store) *models.Game {
	t.Helper()
	game := &models.Game{Title: "table", Status: "started", MaxPlayers: 4, Players: datatypes.JSONSlice[string]{"a", "b"}}
	require.NoError(t, s.CreateGame(context.Background(), game))
	return game
}

func seedDeck(t *testing.T, s *Store, gameID string, n int) []*models.Card {
	t.Helper()
	cards := make([]*models.Card, n)
	for i := range cards {
		cards[i] = &models.Card{GameID: gameID, Color: "red", Value: "1", Position: n - i}
	}
	require.NoError(t, s.CreateCards(context.Background(), cards))
	return cards
}

func TestAtomicRollsBack(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(tx store.Store) error {
		game.Title = "renamed"
		require.NoError(t, tx.UpdateGame(ctx, game, game.Version))
		require.NoError(t, tx.AppendHistory(ctx, &models.GameHistory{GameID: game.ID, PlayerID: "a", Action: "x"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := s.FindGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "table", stored.Title)
	assert.Equal(t, 0, stored.Version)

	history, err := s.ListHistory(ctx, game.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateGameVersion(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)

	first, _ := s.FindGame(ctx, game.ID)
	second, _ := s.FindGame(ctx, game.ID)

	first.TurnIndex = 1
	require.NoError(t, s.UpdateGame(ctx, first, first.Version))
	assert.Equal(t, 1, first.Version)

	second.TurnIndex = 0
	assert.ErrorIs(t, s.UpdateGame(ctx, second, second.Version), store.ErrStaleVersion)
}

func TestReturnedGamesAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)

	found, _ := s.FindGame(ctx, game.ID)
	found.Players[0] = "mallory"
	found.SetUnoDeclared("a", true)

	again, _ := s.FindGame(ctx, game.ID)
	assert.Equal(t, "a", again.Players[0])
	assert.False(t, again.UnoDeclared("a"))
}

func TestDrawFollowsPosition(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)
	cards := seedDeck(t, s, game.ID, 3)

	drawn, err := s.DrawFromDeck(ctx, game.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, cards[2].ID, drawn.ID, "lowest position first")
	assert.True(t, drawn.OwnedBy("a"))

	_, _ = s.DrawFromDeck(ctx, game.ID, "a")
	_, _ = s.DrawFromDeck(ctx, game.ID, "b")
	_, err = s.DrawFromDeck(ctx, game.ID, "b")
	assert.ErrorIs(t, err, store.ErrNotFound)

	hand, _ := s.ListHand(ctx, game.ID, "a")
	assert.Len(t, hand, 2)
	hand, _ = s.ListHand(ctx, "", "b")
	assert.Len(t, hand, 1)
}

func TestDiscardRequiresOwner(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)
	cards := seedDeck(t, s, game.ID, 2)

	require.NoError(t, s.AssignCard(ctx, cards[0].ID, "a"))
	assert.ErrorIs(t, s.AssignCard(ctx, cards[0].ID, "b"), store.ErrStaleVersion)

	assert.ErrorIs(t, s.DiscardCard(ctx, cards[0].ID, "b", 1), store.ErrStaleVersion)
	require.NoError(t, s.DiscardCard(ctx, cards[0].ID, "a", 1))
	assert.ErrorIs(t, s.DiscardCard(ctx, cards[0].ID, "a", 2), store.ErrStaleVersion, "already discarded")

	require.NoError(t, s.FlipCard(ctx, cards[1].ID, 2))
	top, err := s.TopDiscard(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, cards[1].ID, top.ID)
	assert.Nil(t, top.PlayerID)
}

func TestReturnHand(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)
	seedDeck(t, s, game.ID, 2)

	_, _ = s.DrawFromDeck(ctx, game.ID, "a")
	require.NoError(t, s.ReturnHand(ctx, game.ID, "a"))

	deck, _ := s.ListDeck(ctx, game.ID)
	assert.Len(t, deck, 2)
}

func TestUniqueUsers(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateUser(ctx, &models.User{Name: "alice", Email: "a@x.io"}))
	assert.ErrorIs(t, s.CreateUser(ctx, &models.User{Name: "alice", Email: "b@x.io"}), store.ErrDuplicate)
	assert.ErrorIs(t, s.CreateUser(ctx, &models.User{Name: "bob", Email: "a@x.io"}), store.ErrDuplicate)

	found, err := s.FindUserByEmailOrName(ctx, "nobody@x.io", "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", found.Email)
}

func TestRecordRequest(t *testing.T) {
	s := New()
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordRequest(ctx, store.RequestSample{Endpoint: "/games", Method: "GET", StatusCode: 200, Elapsed: 12 * time.Millisecond, At: at}))
	require.NoError(t, s.RecordRequest(ctx, store.RequestSample{Endpoint: "/games", Method: "GET", StatusCode: 404, Elapsed: 4 * time.Millisecond, At: at}))
	require.NoError(t, s.RecordRequest(ctx, store.RequestSample{Endpoint: "/games", Method: "POST", StatusCode: 201, Elapsed: 7 * time.Millisecond, At: at}))

	rows, err := s.ListTracking(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].RequestCount)
	assert.Equal(t, 404, rows[0].StatusCode)
	assert.Equal(t, datatypes.JSONSlice[int64]{12, 4}, rows[0].ResponseTimes)
}

func TestConcurrentDrawsNeverShareACard(t *testing.T) {
	s := New()
	ctx := context.Background()
	game := seedGame(t, s)
	seedDeck(t, s, game.ID, 50)

	var wg sync.WaitGroup
	seen := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Atomic(ctx, func(tx store.Store) error {
				card, err := tx.DrawFromDeck(ctx, game.ID, "a")
				if err != nil {
					return err
				}
				_, dup := seen.LoadOrStore(card.ID, true)
				assert.False(t, dup)
				return nil
			})
		}()
	}
	wg.Wait()

	deck, _ := s.ListDeck(ctx, game.ID)
	assert.Empty(t, deck)
}
