package uno

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardDeckComposition(t *testing.T) {
	deck := StandardDeck()
	assert.Len(t, deck, 108)

	counts := map[Card]int{}
	for _, c := range deck {
		counts[c]++
		assert.True(t, ValidColor(string(c.Color)), "bad color %s", c.Color)
		assert.True(t, ValidValue(string(c.Value)), "bad value %s", c.Value)
	}

	for _, color := range Colors {
		assert.Equal(t, 1, counts[Card{color, "0"}])
		assert.Equal(t, 2, counts[Card{color, "7"}])
		assert.Equal(t, 2, counts[Card{color, Skip}])
		assert.Equal(t, 2, counts[Card{color, Reverse}])
		assert.Equal(t, 2, counts[Card{color, DrawTwo}])
	}
	assert.Equal(t, 4, counts[Card{Wild, WildCard}])
	assert.Equal(t, 4, counts[Card{Wild, WildDrawFour}])
}

func TestShuffleKeepsCards(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	shuffled := ShuffledDeck(r)
	assert.ElementsMatch(t, StandardDeck(), shuffled)
	assert.NotEqual(t, StandardDeck(), shuffled)
}

func TestShuffleIsSeedable(t *testing.T) {
	a := ShuffledDeck(rand.New(rand.NewPCG(7, 7)))
	b := ShuffledDeck(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestRandomCardIsSuited(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		c := RandomCard(r)
		assert.NotEqual(t, Wild, c.Color)
		assert.True(t, ValidValue(string(c.Value)))
	}
}

func TestCanPlayOn(t *testing.T) {
	top := &Card{Color: Red, Value: "5"}
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"same color", Card{Red, "9"}, true},
		{"same value", Card{Blue, "5"}, true},
		{"same card", Card{Red, "5"}, true},
		{"wild", Card{Wild, WildCard}, true},
		{"wild draw four", Card{Wild, WildDrawFour}, true},
		{"no match", Card{Green, "7"}, false},
		{"action on number", Card{Yellow, Skip}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlayOn(tt.card, top))
		})
	}

	assert.True(t, CanPlayOn(Card{Green, "7"}, nil), "empty discard pile accepts anything")
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "red 5", Card{Red, "5"}.String())
	assert.Equal(t, "wild wildDrawFour", Card{Wild, WildDrawFour}.String())
}

func TestNextTurn(t *testing.T) {
	players := []string{"a", "b", "c"}

	t.Run("number advances one seat", func(t *testing.T) {
		order, turn := NextTurn(players, 0, "4")
		assert.Equal(t, players, order)
		assert.Equal(t, 1, turn)
	})

	t.Run("skip advances two seats", func(t *testing.T) {
		_, turn := NextTurn(players, 0, Skip)
		assert.Equal(t, 2, turn)
		_, turn = NextTurn(players, 2, Skip)
		assert.Equal(t, 1, turn)
	})

	t.Run("reverse flips order then advances", func(t *testing.T) {
		order, turn := NextTurn(players, 0, Reverse)
		assert.Equal(t, []string{"c", "b", "a"}, order)
		assert.Equal(t, 1, turn)
		assert.Equal(t, []string{"a", "b", "c"}, players, "input must not be modified")
	})

	t.Run("wraps", func(t *testing.T) {
		_, turn := NextTurn(players, 2, DrawTwo)
		assert.Equal(t, 0, turn)
	})

	t.Run("two players skip comes back", func(t *testing.T) {
		_, turn := NextTurn([]string{"a", "b"}, 0, Skip)
		assert.Equal(t, 0, turn)
	})
}

func TestTurnStaysInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for n := 1; n <= 6; n++ {
		players := make([]string, n)
		for i := range players {
			players[i] = string(rune('a' + i))
		}
		turn := 0
		for i := 0; i < 100; i++ {
			value := Values[r.IntN(len(Values))]
			players, turn = NextTurn(players, turn, value)
			require.GreaterOrEqual(t, turn, 0)
			require.Less(t, turn, n)
		}
	}
}

func TestClampTurn(t *testing.T) {
	assert.Equal(t, 0, ClampTurn(3, 0))
	assert.Equal(t, 0, ClampTurn(2, 2))
	assert.Equal(t, 1, ClampTurn(1, 3))
	assert.Equal(t, 0, ClampTurn(-1, 3))
}

func TestFinalStandings(t *testing.T) {
	t.Run("four players", func(t *testing.T) {
		scores := FinalStandings([]string{"a", "b", "c", "d"}, "c")
		assert.Equal(t, map[string]int{"c": 10, "a": 5, "b": 3}, scores)
	})

	t.Run("two players", func(t *testing.T) {
		scores := FinalStandings([]string{"a", "b"}, "a")
		assert.Equal(t, map[string]int{"a": 10, "b": 5}, scores)
	})

	t.Run("winner alone", func(t *testing.T) {
		scores := FinalStandings([]string{"a"}, "a")
		assert.Equal(t, map[string]int{"a": 10}, scores)
	})

	t.Run("at most three awarded", func(t *testing.T) {
		ranked := RankedPlayers([]string{"a", "b", "c", "d", "e"}, "e")
		assert.Equal(t, []string{"e", "a", "b"}, ranked)
	})
}

func TestErrorKinds(t *testing.T) {
	err := ConflictError("There are not enough cards in the deck")
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindValidation))
	assert.Equal(t, "There are not enough cards in the deck", err.Error())

	wrapped := MethodNotAllowedError("It's not your turn.")
	assert.Equal(t, KindMethodNotAllowed, KindOf(wrapped))
	assert.Equal(t, ErrorKind(0), KindOf(assert.AnError))
	assert.Equal(t, "not_found", KindNotFound.String())
}
