package uno

import "fmt"

type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
	Blue   Color = "blue"
	Wild   Color = "wild"
)

// Colors are the four suits; Wild is not a suit.
var Colors = []Color{Red, Yellow, Green, Blue}

type Value string

const (
	Skip         Value = "skip"
	Reverse      Value = "reverse"
	DrawTwo      Value = "drawTwo"
	WildCard     Value = "wild"
	WildDrawFour Value = "wildDrawFour"
)

// NumberValues are "0" through "9".
var NumberValues = []Value{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// ActionValues appear once per suit per copy.
var ActionValues = []Value{Skip, Reverse, DrawTwo}

// Values lists every value a card can carry.
var Values = append(append(append([]Value{}, NumberValues...), ActionValues...), WildCard, WildDrawFour)

// Card is the face of a card: what legality checks look at.
type Card struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}

func ValidColor(color string) bool {
	if Color(color) == Wild {
		return true
	}
	for _, c := range Colors {
		if string(c) == color {
			return true
		}
	}
	return false
}

func ValidValue(value string) bool {
	for _, v := range Values {
		if string(v) == value {
			return true
		}
	}
	return false
}

// CanPlayOn tells if card may be discarded on top of top. A nil top means the
// discard pile is empty and anything goes.
func CanPlayOn(card Card, top *Card) bool {
	if card.Color == Wild || top == nil {
		return true
	}
	return card.Color == top.Color || card.Value == top.Value
}
