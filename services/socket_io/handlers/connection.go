package handlers

import (
	socketio_types "Uno/services/socket_io/types"
	"Uno/utils/logger"

	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle socket.io client disconnections. Seats are kept: a
// dropped connection does not forfeit the game, the player can reconnect.
func HandleDisconnecting(userID string, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		logger.Infof("[DISCONNECT] User %s disconnecting (%v)", userID, args)
		sio.RemoveConnection(userID, client)
	}
}
