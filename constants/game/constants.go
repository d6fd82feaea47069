package game_constants

import "time"

// Game statuses
const (
	STATUS_PENDING  = "pending"
	STATUS_STARTED  = "started"
	STATUS_FINISHED = "finished"
)

const MIN_PLAYERS = 2

// NOTE: short hands, not the tabletop 7
const CARDS_PER_PLAYER = 2

// Cards drawn by a player caught without declaring UNO
const UNO_PENALTY_CARDS = 2

// Final standings
const (
	WINNER_POINTS      = 10
	RUNNER_UP_POINTS   = 5
	THIRD_PLACE_POINTS = 3
)

const TOKEN_TTL = time.Hour

// GET response cache (stats, scores)
const RESPONSE_CACHE_TTL = 30 * time.Second
