package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It is used to handle socket.io connections.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track user id -> socket connections
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(userID string, conn *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.UserConnections == nil {
		s.UserConnections = make(map[string]*socket.Socket)
	}
	s.UserConnections[userID] = conn
}

// RemoveConnection forgets userID unless a newer socket replaced this one
func (s *SocketServer) RemoveConnection(userID string, conn *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if current, ok := s.UserConnections[userID]; ok && current == conn {
		delete(s.UserConnections, userID)
	}
}

func (s *SocketServer) GetConnection(userID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	conn, exists := s.UserConnections[userID]
	return conn, exists
}

func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.UserConnections)
}
