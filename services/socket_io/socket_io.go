package socket_io

import (
	"Uno/services/auth"
	"Uno/services/socket_io/handlers"
	socketio_types "Uno/services/socket_io/types"
	socketio_utils "Uno/services/socket_io/utils"
	"Uno/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) server() *socketio_types.SocketServer {
	return (*socketio_types.SocketServer)(sio)
}

// Start mounts the socket.io endpoint on router. Clients authenticate with
// the same JWT as the REST API and subscribe to games with "join_game".
func (sio *MySocketServer) Start(router *gin.Engine, authService *auth.Service, games handlers.GameDirectory, origins []string) {
	log.DEBUG = false
	c := socket.DefaultServerOptions()
	c.SetServeClient(false)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      corsOrigin(origins),
		Credentials: true,
	})

	// KEY: inicializar el map, sino panikea
	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, userID, email := socketio_utils.VerifyUserConnection(client, authService)
		if !success {
			client.Disconnect(true)
			return
		}

		sio.server().AddConnection(userID, client)
		logger.Infof("[SOCKET] %s (%s) connected, %d connections", userID, email, sio.server().ConnectionCount())

		// Subscribe to a game room, seating the user if the game is pending
		client.On("join_game", handlers.HandleJoinGame(games, client, userID, sio.server()))

		// Stop receiving a game's events
		client.On("leave_game", handlers.HandleLeaveGame(client, userID))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(userID, client, sio.server()))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	logger.Info("Socket server started")
}

func corsOrigin(origins []string) any {
	if len(origins) == 1 {
		return origins[0]
	}
	allowed := make([]any, 0, len(origins))
	for _, o := range origins {
		allowed = append(allowed, o)
	}
	return allowed
}

// Notify emits event to every client in the game's room
func (sio *MySocketServer) Notify(gameID, event string, payload interface{}) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	if err := sio.Sio_server.To(socket.Room(gameID)).Emit(event, payload); err != nil {
		logger.Errorf("[SOCKET-ERROR] Emitting %s to game %s: %v", event, gameID, err)
	}
}

// Close disconnects every client
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
