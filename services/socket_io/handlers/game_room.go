package handlers

import (
	models "Uno/models/postgres"
	socketio_types "Uno/services/socket_io/types"
	socketio_utils "Uno/services/socket_io/utils"
	"Uno/utils/logger"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

const eventTimeout = 5 * time.Second

// GameDirectory is the slice of the game service the socket layer needs
type GameDirectory interface {
	GetGame(ctx context.Context, gameID string) (*models.Game, error)
	JoinGame(ctx context.Context, gameID, userID string) (*models.Game, error)
}

// EnterGame seats userID if needed. Players already seated just get the
// game back, joined reports whether a seat was taken now.
func EnterGame(ctx context.Context, games GameDirectory, gameID, userID string) (game *models.Game, joined bool, err error) {
	game, err = games.GetGame(ctx, gameID)
	if err != nil {
		return nil, false, err
	}
	if game.HasPlayer(userID) {
		return game, false, nil
	}
	game, err = games.JoinGame(ctx, gameID, userID)
	if err != nil {
		return nil, false, err
	}
	return game, true, nil
}

// HandleJoinGame subscribes the client to the game room, seating the user
// first when the game still accepts players.
func HandleJoinGame(games GameDirectory, client *socket.Socket, userID string,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		gameID, ok := socketio_utils.GameIDFrom(args)
		if !ok {
			client.Emit("join_error", gin.H{"message": "Missing game ID"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()
		game, joined, err := EnterGame(ctx, games, gameID, userID)
		if err != nil {
			logger.Warnf("[JOIN-ERROR] User %s could not join game %s: %v", userID, gameID, err)
			client.Emit("join_error", gin.H{"message": err.Error()})
			return
		}

		client.Join(socket.Room(gameID))
		if joined {
			sio.Sio_server.To(socket.Room(gameID)).Emit("player_joined", gin.H{
				"gameId":   gameID,
				"playerId": userID,
				"players":  game.Players,
			})
		}
		logger.Infof("[JOIN-SUCCESS] User %s watching game %s", userID, gameID)
		client.Emit("join_success", gin.H{"gameId": gameID, "game": game})
	}
}

// HandleLeaveGame only unsubscribes from the room; giving up the seat is
// done over REST.
func HandleLeaveGame(client *socket.Socket, userID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		gameID, ok := socketio_utils.GameIDFrom(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing game ID"})
			return
		}
		client.Leave(socket.Room(gameID))
		logger.Infof("[LEAVE] User %s stopped watching game %s", userID, gameID)
		client.Emit("left_game", gin.H{"gameId": gameID})
	}
}
