package gameplay

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	game_constants "Uno/constants/game"
	models "Uno/models/postgres"
	"Uno/services/store/memstore"
	"Uno/services/uno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type table struct {
	svc     *Service
	store   *memstore.Store
	game    *models.Game
	players []string
}

// newTable seats players (the first one creates the game), marks everyone
// ready and loads faces as the deck. With the default deal the first face
// opens the discard pile and the next ones go round-robin, two each.
func newTable(t *testing.T, players []string, faces []string, opts ...Option) *table {
	t.Helper()
	ctx := context.Background()
	st := memstore.New()
	svc := New(st, append([]Option{WithRand(rand.New(rand.NewPCG(1, 1)))}, opts...)...)

	for _, p := range players {
		require.NoError(t, st.CreateUser(ctx, &models.User{ID: p, Name: p, Email: p + "@uno.test", Age: 20}))
	}
	game, err := svc.CreateGame(ctx, players[0], "test table", len(players)+1)
	require.NoError(t, err)
	for _, p := range players {
		_, err := svc.JoinGame(ctx, game.ID, p)
		require.NoError(t, err)
		_, err = svc.SetReady(ctx, game.ID, p, true)
		require.NoError(t, err)
	}
	for _, f := range faces {
		parts := strings.SplitN(f, " ", 2)
		_, err := svc.CreateCard(ctx, game.ID, parts[0], parts[1])
		require.NoError(t, err)
	}
	return &table{svc: svc, store: st, game: game, players: players}
}

func (tb *table) start(t *testing.T) *StartResult {
	t.Helper()
	res, err := tb.svc.StartGame(context.Background(), tb.game.ID, tb.players[0])
	require.NoError(t, err)
	return res
}

func (tb *table) hand(t *testing.T, player string) []models.Card {
	t.Helper()
	cards, err := tb.store.ListHand(context.Background(), tb.game.ID, player)
	require.NoError(t, err)
	return cards
}

// card returns the id of the first card matching face in player's hand.
func (tb *table) card(t *testing.T, player, face string) string {
	t.Helper()
	for _, c := range tb.hand(t, player) {
		if c.Face().String() == face {
			return c.ID
		}
	}
	t.Fatalf("%s holds no %q", player, face)
	return ""
}

func (tb *table) reload(t *testing.T) *models.Game {
	t.Helper()
	game, err := tb.store.FindGame(context.Background(), tb.game.ID)
	require.NoError(t, err)
	return game
}

func twoPlayerDeal() []string {
	// top, alice, bob, alice, bob, deck...
	return []string{"red 5", "red 5", "blue 1", "red 7", "yellow 2", "green 4", "green 8"}
}

func TestStartDeals(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	res := tb.start(t)

	assert.Equal(t, "red 5", res.FirstCard.Face().String())
	assert.Equal(t, game_constants.STATUS_STARTED, res.Game.Status)
	assert.Equal(t, 0, res.Game.TurnIndex)

	assert.Len(t, tb.hand(t, "alice"), 2)
	assert.Len(t, tb.hand(t, "bob"), 2)
	tb.card(t, "alice", "red 7")
	tb.card(t, "bob", "yellow 2")

	deck, err := tb.store.ListDeck(context.Background(), tb.game.ID)
	require.NoError(t, err)
	assert.Len(t, deck, 2)
}

func TestStartMintsDeck(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob", "carol"}, nil)
	tb.start(t)

	cards, err := tb.store.ListCards(context.Background(), tb.game.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 108)

	deck, _ := tb.store.ListDeck(context.Background(), tb.game.ID)
	assert.Len(t, deck, 108-1-3*game_constants.CARDS_PER_PLAYER)
}

func TestStartGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("only the creator", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		_, err := tb.svc.StartGame(ctx, tb.game.ID, "bob")
		assert.True(t, uno.IsKind(err, uno.KindUnauthorized))
		assert.EqualError(t, err, "You do not have permission to start this game")
	})

	t.Run("everyone ready", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		_, err := tb.svc.SetReady(ctx, tb.game.ID, "bob", false)
		require.NoError(t, err)
		_, err = tb.svc.StartGame(ctx, tb.game.ID, "alice")
		assert.True(t, uno.IsKind(err, uno.KindValidation))
		assert.EqualError(t, err, "Not all players are ready")
	})

	t.Run("nobody seated", func(t *testing.T) {
		st := memstore.New()
		svc := New(st)
		require.NoError(t, st.CreateUser(ctx, &models.User{ID: "alice", Name: "alice", Email: "a@uno.test"}))
		game, err := svc.CreateGame(ctx, "alice", "empty", 4)
		require.NoError(t, err)
		_, err = svc.StartGame(ctx, game.ID, "alice")
		assert.True(t, uno.IsKind(err, uno.KindValidation))
	})

	t.Run("deck empty after the flip", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, []string{"red 5"})
		_, err := tb.svc.StartGame(ctx, tb.game.ID, "alice")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
		assert.EqualError(t, err, "There are not enough cards in the deck")

		assert.Equal(t, game_constants.STATUS_PENDING, tb.reload(t).Status, "nothing is kept")
		top, err := tb.svc.TopCard(ctx, tb.game.ID)
		assert.Nil(t, top)
		assert.True(t, uno.IsKind(err, uno.KindNotFound))
	})

	t.Run("minted deck too small", func(t *testing.T) {
		empty := func(*rand.Rand) []uno.Card { return nil }
		tb := newTable(t, []string{"alice", "bob"}, nil, WithDeck(empty))
		_, err := tb.svc.StartGame(ctx, tb.game.ID, "alice")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
	})

	t.Run("twice", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		tb.start(t)
		_, err := tb.svc.StartGame(ctx, tb.game.ID, "alice")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
	})
}

func TestPlayMatchingCard(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	res, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
	require.NoError(t, err)
	assert.Equal(t, "Card played successfully.", res.Message)
	assert.Equal(t, "bob", res.NextPlayer)
	assert.Len(t, tb.hand(t, "alice"), 1)

	top, err := tb.svc.TopCard(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, "red 5", top.Face().String())
	assert.Nil(t, top.PlayerID)

	history, err := tb.svc.History(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Played red 5", history[len(history)-1].Action)
}

func TestPlayRejections(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	t.Run("not your turn", func(t *testing.T) {
		_, err := tb.svc.PlayCard(ctx, "bob", tb.game.ID, tb.card(t, "bob", "blue 1"))
		assert.True(t, uno.IsKind(err, uno.KindMethodNotAllowed))
		assert.EqualError(t, err, "It's not your turn.")
	})

	t.Run("card does not match", func(t *testing.T) {
		// green 4 is still in the deck, give it to alice first
		_, err := tb.svc.DrawCard(ctx, "alice", tb.game.ID)
		require.NoError(t, err)
		_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
		require.NoError(t, err)

		before := tb.reload(t)
		_, err = tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "green 4"))
		assert.True(t, uno.IsKind(err, uno.KindValidation))
		assert.EqualError(t, err, "Invalid card. It must match in color or number.")

		after := tb.reload(t)
		assert.Equal(t, before.Version, after.Version)
		assert.Len(t, tb.hand(t, "alice"), 3)
	})

	t.Run("someone else's card", func(t *testing.T) {
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "bob", "blue 1"))
		assert.True(t, uno.IsKind(err, uno.KindUnauthorized))
		assert.EqualError(t, err, "This card does not belong to the player.")
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, "no-such-card")
		assert.True(t, uno.IsKind(err, uno.KindNotFound))
		assert.EqualError(t, err, "The card does not exist.")
	})

	t.Run("missing parameters", func(t *testing.T) {
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, "")
		assert.True(t, uno.IsKind(err, uno.KindValidation))
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := tb.svc.PlayCard(ctx, "alice", "nope", "x")
		assert.True(t, uno.IsKind(err, uno.KindNotFound))
	})
}

func TestPlayBeforeStart(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	_, err := tb.svc.DrawCard(context.Background(), "alice", tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindConflict))
}

func TestWinningPlay(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
	require.NoError(t, err)
	_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
	require.NoError(t, err)

	res, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 7"))
	require.NoError(t, err)
	assert.Equal(t, "¡alice has won the game!", res.Message)
	assert.Equal(t, map[string]int{"alice": 10, "bob": 5}, res.Scores)

	game := tb.reload(t)
	assert.Equal(t, game_constants.STATUS_FINISHED, game.Status)
	require.NotNil(t, game.WinnerID)
	assert.Equal(t, "alice", *game.WinnerID)

	scores, err := tb.store.ListScoresByGame(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Len(t, scores, 2)

	_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindConflict))
	assert.EqualError(t, err, "The game has already ended")

	byName, err := tb.svc.ScoresByGame(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"alice": 10, "bob": 5}, byName.Scores)
}

func TestSkipAndReverse(t *testing.T) {
	faces := []string{
		"red 5",
		"red reverse", "blue 1", "red skip",
		"green 7", "blue 3", "green 6",
		"yellow 9", "yellow 8",
	}
	tb := newTable(t, []string{"alice", "bob", "carol"}, faces)
	tb.start(t)
	ctx := context.Background()

	res, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red reverse"))
	require.NoError(t, err)
	assert.Equal(t, "A Reverse card was played. The player order has been reversed.", res.Message)
	assert.Equal(t, "bob", res.NextPlayer)

	game := tb.reload(t)
	assert.Equal(t, []string{"carol", "bob", "alice"}, []string(game.Players))
	assert.Equal(t, 1, game.TurnIndex)
	assert.Equal(t, game_constants.STATUS_STARTED, game.Status)

	draw, err := tb.svc.DrawCard(ctx, "bob", tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", draw.NextPlayer)
	assert.Equal(t, "yellow 9", draw.DrawnCard.Face().String())

	draw, err = tb.svc.DrawCard(ctx, "alice", tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", draw.NextPlayer)

	res, err = tb.svc.PlayCard(ctx, "carol", tb.game.ID, tb.card(t, "carol", "red skip"))
	require.NoError(t, err)
	assert.Equal(t, "Card played successfully.", res.Message)
	assert.Equal(t, "alice", res.NextPlayer, "skip jumps over bob")
	assert.Equal(t, 2, tb.reload(t).TurnIndex)
}

func TestDrawFromEmptyDeck(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal()[:5])
	tb.start(t)

	_, err := tb.svc.DrawCard(context.Background(), "alice", tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindNotFound))
	assert.Equal(t, 0, tb.reload(t).TurnIndex, "turn stays put")
}

func TestDeclareUno(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	_, err := tb.svc.DeclareUno(ctx, "alice", tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindValidation), "two cards in hand")

	_, err = tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
	require.NoError(t, err)

	res, err := tb.svc.DeclareUno(ctx, "alice", tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, "UNO declared successfully!", res.Message)
	assert.True(t, tb.reload(t).UnoDeclared("alice"))

	_, err = tb.svc.ChallengeUno(ctx, "bob", "alice", tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindConflict))
	assert.EqualError(t, err, "The player did declare 'UNO', you cannot challenge them.")

	_, err = tb.svc.DeclareUno(ctx, "alice", "missing")
	assert.True(t, uno.IsKind(err, uno.KindNotFound))
}

func TestHandChangeClearsUno(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
	require.NoError(t, err)
	_, err = tb.svc.DeclareUno(ctx, "alice", tb.game.ID)
	require.NoError(t, err)
	_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
	require.NoError(t, err)
	_, err = tb.svc.DrawCard(ctx, "alice", tb.game.ID)
	require.NoError(t, err)

	assert.False(t, tb.reload(t).UnoDeclared("alice"))
}

func TestChallengeUno(t *testing.T) {
	ctx := context.Background()

	t.Run("two cards in hand", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		tb.start(t)
		_, err := tb.svc.ChallengeUno(ctx, "alice", "bob", tb.game.ID)
		assert.True(t, uno.IsKind(err, uno.KindConflict))
		assert.EqualError(t, err, "You cannot challenge this player because they do not have exactly one card.")
	})

	t.Run("forgot to declare", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		tb.start(t)
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
		require.NoError(t, err)

		res, err := tb.svc.ChallengeUno(ctx, "bob", "alice", tb.game.ID)
		require.NoError(t, err)
		assert.Equal(t, "Successful challenge! The player forgot to say 'UNO' and has drawn 2 cards.", res.Message)
		assert.Len(t, res.PenaltyCards, 2)
		assert.Len(t, tb.hand(t, "alice"), 3)

		history, _ := tb.svc.History(ctx, tb.game.ID)
		last := history[len(history)-1]
		assert.Equal(t, "bob", last.PlayerID)
		assert.Equal(t, "Challenged UNO of alice", last.Action)
	})

	t.Run("penalty synthesized when the deck runs dry", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal()[:5])
		tb.start(t)
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
		require.NoError(t, err)

		res, err := tb.svc.ChallengeUno(ctx, "bob", "alice", tb.game.ID)
		require.NoError(t, err)
		assert.Len(t, res.PenaltyCards, 2)
		for _, c := range res.PenaltyCards {
			assert.NotEqual(t, string(uno.Wild), c.Color)
		}
		assert.Len(t, tb.hand(t, "alice"), 3)
	})

	t.Run("no synthesis and no deck", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal()[:5], WithoutPenaltySynthesis())
		tb.start(t)
		_, err := tb.svc.PlayCard(ctx, "alice", tb.game.ID, tb.card(t, "alice", "red 5"))
		require.NoError(t, err)

		_, err = tb.svc.ChallengeUno(ctx, "bob", "alice", tb.game.ID)
		assert.True(t, uno.IsKind(err, uno.KindConflict))
		assert.Len(t, tb.hand(t, "alice"), 1)
	})

	t.Run("challenging yourself", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		_, err := tb.svc.ChallengeUno(ctx, "alice", "alice", tb.game.ID)
		assert.True(t, uno.IsKind(err, uno.KindValidation))
	})

	t.Run("empty hand", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		_, err := tb.svc.ChallengeUno(ctx, "alice", "bob", tb.game.ID)
		assert.True(t, uno.IsKind(err, uno.KindNotFound))
	})
}

func TestConcurrentPlaysOnlyOneWins(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()
	cards := []string{tb.card(t, "alice", "red 5"), tb.card(t, "alice", "red 7")}

	var wg sync.WaitGroup
	errs := make([]error, len(cards))
	for i, id := range cards {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = tb.svc.PlayCard(ctx, "alice", tb.game.ID, id)
		}(i, id)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			assert.True(t, uno.IsKind(err, uno.KindMethodNotAllowed))
		}
	}
	assert.Equal(t, 1, failed)
	assert.Len(t, tb.hand(t, "alice"), 1)
	assert.Equal(t, 1, tb.reload(t).TurnIndex)
}

func TestTurnIndexStaysSeated(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob", "carol", "dave"}, nil)
	tb.start(t)
	ctx := context.Background()

	for step := 0; step < 300; step++ {
		game := tb.reload(t)
		if game.Status != game_constants.STATUS_STARTED {
			break
		}
		require.GreaterOrEqual(t, game.TurnIndex, 0)
		require.Less(t, game.TurnIndex, len(game.Players))

		player := game.CurrentPlayerID()
		top, err := tb.svc.TopCard(ctx, game.ID)
		require.NoError(t, err)
		topFace := top.Face()

		played := false
		for _, c := range tb.hand(t, player) {
			if !uno.CanPlayOn(c.Face(), &topFace) {
				continue
			}
			_, err := tb.svc.PlayCard(ctx, player, game.ID, c.ID)
			require.NoError(t, err)
			played = true
			break
		}
		if played {
			continue
		}
		if _, err := tb.svc.DrawCard(ctx, player, game.ID); err != nil {
			require.True(t, uno.IsKind(err, uno.KindNotFound))
			break
		}
	}
}

func TestJoinAndLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("join twice", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, nil)
		_, err := tb.svc.JoinGame(ctx, tb.game.ID, "bob")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
		assert.EqualError(t, err, "You are already in this game")
	})

	t.Run("full table", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, nil)
		require.NoError(t, tb.store.CreateUser(ctx, &models.User{ID: "carol", Name: "carol", Email: "c@uno.test"}))
		require.NoError(t, tb.store.CreateUser(ctx, &models.User{ID: "dave", Name: "dave", Email: "d@uno.test"}))
		_, err := tb.svc.JoinGame(ctx, tb.game.ID, "carol")
		require.NoError(t, err)
		_, err = tb.svc.JoinGame(ctx, tb.game.ID, "dave")
		assert.True(t, uno.IsKind(err, uno.KindValidation))
		assert.EqualError(t, err, "The game is already full")
	})

	t.Run("join after start", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
		tb.start(t)
		require.NoError(t, tb.store.CreateUser(ctx, &models.User{ID: "carol", Name: "carol", Email: "c@uno.test"}))
		_, err := tb.svc.JoinGame(ctx, tb.game.ID, "carol")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
	})

	t.Run("leave", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, nil)
		game, err := tb.svc.LeaveGame(ctx, tb.game.ID, "bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, []string(game.Players))

		_, err = tb.svc.LeaveGame(ctx, tb.game.ID, "bob")
		assert.True(t, uno.IsKind(err, uno.KindConflict))
		assert.EqualError(t, err, "You are not in this game")

		states, _ := tb.store.ListPlayerStates(ctx, tb.game.ID)
		assert.Len(t, states, 1)
	})

	t.Run("malformed game id", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, nil)
		_, err := tb.svc.LeaveGame(ctx, "x", "bob")
		assert.True(t, uno.IsKind(err, uno.KindValidation))
		assert.EqualError(t, err, "Invalid game ID: x")
	})

	t.Run("leave mid game", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob", "carol"}, nil)
		tb.start(t)
		_, err := tb.svc.DrawCard(ctx, "alice", tb.game.ID)
		require.NoError(t, err)
		_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
		require.NoError(t, err)

		game, err := tb.svc.LeaveGame(ctx, tb.game.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, "carol", game.CurrentPlayerID(), "turn stays with carol")
		assert.Empty(t, tb.hand(t, "alice"))

		game, err = tb.svc.LeaveGame(ctx, tb.game.ID, "carol")
		require.NoError(t, err)
		assert.Equal(t, 0, game.TurnIndex)
	})

	t.Run("last player leaves a started game", func(t *testing.T) {
		tb := newTable(t, []string{"alice", "bob"}, nil)
		tb.start(t)
		_, err := tb.svc.LeaveGame(ctx, tb.game.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, game_constants.STATUS_STARTED, tb.reload(t).Status)

		game, err := tb.svc.LeaveGame(ctx, tb.game.ID, "bob")
		require.NoError(t, err)
		assert.Empty(t, game.Players)
		assert.Equal(t, game_constants.STATUS_FINISHED, game.Status)
		assert.Nil(t, game.WinnerID)
		assert.Equal(t, game_constants.STATUS_FINISHED, tb.reload(t).Status)

		_, err = tb.svc.DrawCard(ctx, "bob", tb.game.ID)
		assert.EqualError(t, err, "The game has already ended")
	})
}

func TestEndGame(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	ctx := context.Background()

	_, err := tb.svc.EndGame(ctx, tb.game.ID, "alice")
	assert.True(t, uno.IsKind(err, uno.KindValidation))
	assert.EqualError(t, err, "The game is not in progress")

	tb.start(t)
	_, err = tb.svc.EndGame(ctx, tb.game.ID, "bob")
	assert.True(t, uno.IsKind(err, uno.KindUnauthorized))

	game, err := tb.svc.EndGame(ctx, tb.game.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, game_constants.STATUS_FINISHED, game.Status)
}

func TestCalculateFinalScores(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob", "carol", "dave"}, nil)
	ctx := context.Background()

	scores, err := tb.svc.CalculateFinalScores(ctx, tb.game.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, 10, scores["carol"])
	assert.Equal(t, map[string]int{"carol": 10, "alice": 5, "bob": 3}, scores)

	rows, _ := tb.store.ListScoresByGame(ctx, tb.game.ID)
	assert.Len(t, rows, 3)

	_, err = tb.svc.CalculateFinalScores(ctx, "missing", "carol")
	assert.True(t, uno.IsKind(err, uno.KindValidation))
	_, err = tb.svc.CalculateFinalScores(ctx, tb.game.ID, "")
	assert.True(t, uno.IsKind(err, uno.KindValidation))
}

func TestScoreRecords(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, nil)
	ctx := context.Background()

	_, err := tb.svc.ScoresByGame(ctx, tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindValidation))
	assert.EqualError(t, err, "No scores registered")

	_, err = tb.svc.ListScores(ctx)
	assert.True(t, uno.IsKind(err, uno.KindNotFound))

	base := 7
	score, err := tb.svc.CreateScore(ctx, "alice", tb.game.ID, &base, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, score.Score)

	_, err = tb.svc.CreateScore(ctx, "alice", tb.game.ID, nil, 0)
	assert.True(t, uno.IsKind(err, uno.KindValidation))
	negative := -1
	_, err = tb.svc.CreateScore(ctx, "alice", tb.game.ID, &negative, 0)
	assert.True(t, uno.IsKind(err, uno.KindValidation))

	updated, err := tb.svc.UpdateScore(ctx, score.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Score)

	require.NoError(t, tb.svc.DeleteScore(ctx, score.ID))
	_, err = tb.svc.GetScore(ctx, score.ID)
	assert.True(t, uno.IsKind(err, uno.KindNotFound))
}

func TestCardAdmin(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, nil)
	ctx := context.Background()

	_, err := tb.svc.CreateCard(ctx, tb.game.ID, "purple", "5")
	assert.True(t, uno.IsKind(err, uno.KindValidation))
	_, err = tb.svc.CreateCard(ctx, "missing", "red", "5")
	assert.True(t, uno.IsKind(err, uno.KindNotFound))

	first, err := tb.svc.CreateCard(ctx, tb.game.ID, "red", "5")
	require.NoError(t, err)
	second, err := tb.svc.CreateCard(ctx, tb.game.ID, "wild", "wildDrawFour")
	require.NoError(t, err)
	assert.Greater(t, second.Position, first.Position)

	found, err := tb.svc.GetCard(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "red", found.Color)

	cards, err := tb.svc.GameCards(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestHandAcrossGames(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	tb.start(t)
	ctx := context.Background()

	hand, err := tb.svc.Hand(ctx, "alice", tb.game.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"red 5", "red 7"}, hand)

	all, err := tb.svc.Hand(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, hand, all)
}

func TestReadSide(t *testing.T) {
	tb := newTable(t, []string{"alice", "bob"}, twoPlayerDeal())
	ctx := context.Background()

	_, err := tb.svc.CurrentPlayer(ctx, tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindValidation))

	tb.start(t)
	current, err := tb.svc.CurrentPlayer(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, PlayerRef{ID: "alice", Name: "alice"}, *current)

	players, err := tb.svc.GamePlayers(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	status, err := tb.svc.GameStatus(ctx, tb.game.ID)
	require.NoError(t, err)
	assert.Equal(t, game_constants.STATUS_STARTED, status)

	games, err := tb.svc.ListGames(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	assert.True(t, uno.IsKind(tb.svc.DeleteGame(ctx, tb.game.ID, "bob"), uno.KindUnauthorized))
	require.NoError(t, tb.svc.DeleteGame(ctx, tb.game.ID, "alice"))
	_, err = tb.svc.GetGame(ctx, tb.game.ID)
	assert.True(t, uno.IsKind(err, uno.KindNotFound))
}
