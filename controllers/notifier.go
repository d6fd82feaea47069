package controllers

// Realtime events mirrored to the game room after a successful request
const (
	EventPlayerJoined  = "player_joined"
	EventPlayerLeft    = "player_left"
	EventGameStarted   = "game_started"
	EventCardPlayed    = "card_played"
	EventCardDrawn     = "card_drawn"
	EventUnoDeclared   = "uno_declared"
	EventUnoChallenged = "uno_challenged"
	EventGameFinished  = "game_finished"
)

// Notifier pushes an event to everyone watching a game. It never decides
// anything: the request already committed when Notify is called.
type Notifier interface {
	Notify(gameID, event string, payload interface{})
}

// NopNotifier drops every event
type NopNotifier struct{}

func (NopNotifier) Notify(gameID, event string, payload interface{}) {}
