package uno

import (
	"math/rand/v2"
)

// StandardDeck returns the 108 card UNO deck in a fixed, unshuffled order.
func StandardDeck() []Card {
	deck := make([]Card, 0, 108)
	for _, color := range Colors {
		deck = append(deck, Card{Color: color, Value: "0"})
		for copies := 0; copies < 2; copies++ {
			for _, value := range NumberValues[1:] {
				deck = append(deck, Card{Color: color, Value: value})
			}
			for _, value := range ActionValues {
				deck = append(deck, Card{Color: color, Value: value})
			}
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Card{Color: Wild, Value: WildCard})
		deck = append(deck, Card{Color: Wild, Value: WildDrawFour})
	}
	return deck
}

// Shuffle permutes cards in place with a uniform Fisher-Yates shuffle.
func Shuffle(r *rand.Rand, cards []Card) {
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// ShuffledDeck is StandardDeck followed by Shuffle.
func ShuffledDeck(r *rand.Rand) []Card {
	deck := StandardDeck()
	Shuffle(r, deck)
	return deck
}

// RandomCard picks a suited card with any value. It backs the penalty draw
// when the deck runs short.
func RandomCard(r *rand.Rand) Card {
	return Card{
		Color: Colors[r.IntN(len(Colors))],
		Value: Values[r.IntN(len(Values))],
	}
}
