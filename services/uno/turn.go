package uno

// Advance moves turnIndex forward by seats, wrapping around the table.
func Advance(turnIndex, seats, players int) int {
	if players <= 0 {
		return 0
	}
	next := (turnIndex + seats) % players
	if next < 0 {
		next += players
	}
	return next
}

// SeatsFor returns how many seats the turn moves after a non-winning play of
// value.
func SeatsFor(value Value) int {
	if value == Skip {
		return 2
	}
	return 1
}

// Reversed returns a reversed copy of the seating order.
func Reversed(players []string) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[len(players)-1-i] = p
	}
	return out
}

// NextTurn computes the seating order and turn index that follow a
// non-winning play of value. A reverse flips the order and the current index
// is then advanced against the flipped order.
func NextTurn(players []string, turnIndex int, value Value) ([]string, int) {
	if value == Reverse {
		players = Reversed(players)
	}
	return players, Advance(turnIndex, SeatsFor(value), len(players))
}

// ClampTurn keeps a turn index inside the table after a seat was removed.
func ClampTurn(turnIndex, players int) int {
	if players == 0 || turnIndex < 0 {
		return 0
	}
	return turnIndex % players
}
