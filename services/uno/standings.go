package uno

import game_constants "Uno/constants/game"

// Placement points, winner first.
var PlacementPoints = []int{
	game_constants.WINNER_POINTS,
	game_constants.RUNNER_UP_POINTS,
	game_constants.THIRD_PLACE_POINTS,
}

// FinalStandings awards PlacementPoints to the winner and then to the other
// players in seating order. Only awarded players appear in the result.
func FinalStandings(players []string, winnerID string) map[string]int {
	scores := map[string]int{}
	for i, p := range RankedPlayers(players, winnerID) {
		scores[p] = PlacementPoints[i]
	}
	return scores
}

// RankedPlayers returns the awarded players ordered by placement.
// NOTE: seating order stands in for finishing order, nobody tracks who ran
// out of cards second.
func RankedPlayers(players []string, winnerID string) []string {
	ranked := []string{winnerID}
	for _, p := range players {
		if len(ranked) >= len(PlacementPoints) {
			break
		}
		if p != "" && p != winnerID {
			ranked = append(ranked, p)
		}
	}
	return ranked
}
